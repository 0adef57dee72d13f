package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// File parses chapter text that may describe several volumes. Volume
// headers open a new accumulator; chapter lines append to the current
// one (an unnamed volume is opened implicitly when chapters appear
// before any header); everything else is commentary. A file with
// chapters but no headers becomes a single volume named "chapters".
// Malformed timestamps never abort the file: the line is skipped and
// reported in Result.Warnings.
func File(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseVolumes(f)
}

// Single parses a chapter file that describes exactly one video: the
// whole file is one accumulator, and a header line is used only to
// name the volume, never to split it.
func Single(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseSingle(f)
}

func parseVolumes(r io.Reader) (*Result, error) {
	res := &Result{}

	var name string
	var acc []Chapter
	sawHeader := false

	flush := func() {
		if vol := finalizeVolume(name, acc, &res.Warnings); vol != nil {
			res.Volumes = append(res.Volumes, *vol)
		}
		acc = nil
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		ch, err := Line(line)
		if err != nil {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("line %d %q: %v", lineNum, strings.TrimSpace(line), err))
			continue
		}
		if ch != nil {
			acc = append(acc, *ch)
			continue
		}
		if IsHeader(line) {
			flush()
			name = strings.TrimSpace(line)
			sawHeader = true
		}
		// anything else is commentary; skip
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	if !sawHeader && len(res.Volumes) == 1 && res.Volumes[0].Name == "" {
		res.Volumes[0].Name = "chapters"
	}
	return res, nil
}

func parseSingle(r io.Reader) (*Result, error) {
	res := &Result{}

	var name string
	var acc []Chapter

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		ch, err := Line(line)
		if err != nil {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("line %d %q: %v", lineNum, strings.TrimSpace(line), err))
			continue
		}
		if ch != nil {
			acc = append(acc, *ch)
			continue
		}
		if name == "" && len(acc) == 0 && IsHeader(line) {
			name = strings.TrimSpace(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if vol := finalizeVolume(name, acc, &res.Warnings); vol != nil {
		res.Volumes = append(res.Volumes, *vol)
	}
	return res, nil
}

// finalizeVolume turns an accumulator into a Volume: repair suspicious
// ordering, stable-sort by start, and synthesize an opening "Intro"
// chapter when the first one starts late. Returns nil for an empty
// accumulator so headers with no chapters yield no volume.
func finalizeVolume(name string, chapters []Chapter, warnings *[]string) *Volume {
	if len(chapters) == 0 {
		return nil
	}

	repaired, broken := RepairChronology(chapters)
	if broken {
		label := name
		if label == "" {
			label = "chapters"
		}
		*warnings = append(*warnings, fmt.Sprintf(
			"volume %q: chapters are out of order and rereading them as minutes:seconds does not fix it", label))
	}

	sorted := make([]Chapter, len(repaired))
	copy(sorted, repaired)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	if sorted[0].Start > 0 {
		sorted = append([]Chapter{{Title: "Intro", Start: 0}}, sorted...)
	}
	return &Volume{Name: name, Chapters: sorted}
}

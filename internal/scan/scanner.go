package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Video is one candidate video file in a course folder.
type Video struct {
	Path  string
	Base  string // file name without extension
	Order int    // position in the folder's name-sorted listing
}

// Course is a folder holding videos plus the chapter text describing them.
type Course struct {
	Dir        string
	Videos     []Video
	Timestamps string
}

// Videos lists the video files directly inside dir in name order.
// Hidden files and subdirectories are skipped; extension matching is
// case-insensitive.
func Videos(dir string, exts []string) ([]Video, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[strings.ToLower(e)] = true
	}

	var vids []Video
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		ext := filepath.Ext(name)
		if !extSet[strings.ToLower(ext)] {
			continue
		}
		vids = append(vids, Video{
			Path:  filepath.Join(dir, name),
			Base:  strings.TrimSuffix(name, ext),
			Order: len(vids),
		})
	}
	return vids, nil
}

// TimestampFile picks the chapter text file for a folder: the first
// .txt whose name mentions timestamps or chapters, else the first .txt
// in name order. The remaining candidates come back so callers can
// warn about them. A folder with no .txt reports fs.ErrNotExist.
func TimestampFile(dir string) (string, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", nil, err
	}

	var txts []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			txts = append(txts, e.Name())
		}
	}
	if len(txts) == 0 {
		return "", nil, fmt.Errorf("no .txt chapter file in %s: %w", dir, fs.ErrNotExist)
	}

	chosen := ""
	for _, name := range txts {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "timestamp") || strings.Contains(lower, "chapter") {
			chosen = name
			break
		}
	}
	if chosen == "" {
		chosen = txts[0]
	}

	var others []string
	for _, name := range txts {
		if name != chosen {
			others = append(others, filepath.Join(dir, name))
		}
	}
	return filepath.Join(dir, chosen), others, nil
}

// Courses finds the folders under root that hold at least one video and
// a chapter text file. The root itself counts when it holds them
// directly, so flat collections work without extra nesting.
func Courses(root string, exts []string) ([]Course, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}

	var courses []Course
	appendCourse := func(dir string) {
		vids, err := Videos(dir, exts)
		if err != nil || len(vids) == 0 {
			return // unreadable or no videos, not a course folder
		}
		ts, _, err := TimestampFile(dir)
		if err != nil {
			return
		}
		courses = append(courses, Course{Dir: dir, Videos: vids, Timestamps: ts})
	}

	appendCourse(root)
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		appendCourse(filepath.Join(root, e.Name()))
	}
	return courses, nil
}

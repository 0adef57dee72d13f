package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/chapcut/internal/parse"
	"github.com/Zuo-Peng/chapcut/internal/split"
)

const (
	colorReset  = "\033[0m"
	colorVolume = "\033[1;34m" // bold blue
	colorVideo  = "\033[1;32m" // bold green
	colorDim    = "\033[2m"
	colorWarn   = "\033[1;33m" // bold yellow
)

const (
	glyphBranch = "├── "
	glyphLast   = "└── "
)

type Options struct {
	Width int // truncate titles to this many columns (0 = no limit)
}

// Tree renders parsed volumes as a tree: volume names as branches,
// chapters as leaves with their time span. The last chapter's end is
// unknown until the video is probed, so it renders as "end".
func Tree(res *parse.Result, opts Options) string {
	var b strings.Builder
	for vi, vol := range res.Volumes {
		if vi > 0 {
			b.WriteString("\n")
		}
		name := vol.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(&b, "%s%s%s\n", colorVolume, name, colorReset)

		for i, ch := range vol.Chapters {
			end := "end"
			if i+1 < len(vol.Chapters) {
				end = parse.FormatTimestamp(vol.Chapters[i+1].Start)
			}
			writeLeaf(&b, i == len(vol.Chapters)-1, truncate(ch.Title, opts.Width),
				parse.FormatTimestamp(ch.Start), end)
		}
	}
	return b.String()
}

// TaskTree renders one planned task: the output folder with its source
// video, a leaf per output file, and the cuts skipped at planning time.
func TaskTree(t split.Task, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%s  %s<- %s%s\n",
		colorVideo, t.OutDir, colorReset, colorDim, t.Video, colorReset)

	total := len(t.Cuts) + len(t.Skipped)
	for i, c := range t.Cuts {
		end := "end"
		if c.End > 0 {
			end = parse.FormatTimestamp(c.End)
		}
		writeLeaf(&b, i == total-1, truncate(filepath.Base(c.OutPath), opts.Width),
			parse.FormatTimestamp(c.Start), end)
	}
	for j, s := range t.Skipped {
		glyph := glyphBranch
		if len(t.Cuts)+j == total-1 {
			glyph = glyphLast
		}
		fmt.Fprintf(&b, "%s%sskip %s%s\n", glyph, colorWarn, s, colorReset)
	}
	return b.String()
}

func writeLeaf(b *strings.Builder, last bool, title, start, end string) {
	glyph := glyphBranch
	if last {
		glyph = glyphLast
	}
	fmt.Fprintf(b, "%s%s  %s[%s-%s]%s\n", glyph, title, colorDim, start, end, colorReset)
}

// truncate cuts s to max visible columns, wide runes counted properly.
func truncate(s string, max int) string {
	if max <= 0 || runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "")
}

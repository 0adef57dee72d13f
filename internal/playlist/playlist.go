package playlist

import (
	"fmt"
	"os"
	"strings"
)

// Entry is one track in an extended m3u playlist.
type Entry struct {
	File    string // path as written into the playlist, usually just a file name
	Title   string
	Seconds int // track length; negative when unknown
}

// Render produces extended m3u text: the #EXTM3U banner, then an
// #EXTINF line per track. Unknown lengths render as -1, the m3u
// convention.
func Render(entries []Entry) string {
	var b strings.Builder
	b.WriteString("#EXTM3U\n")
	for _, e := range entries {
		secs := e.Seconds
		if secs < 0 {
			secs = -1
		}
		fmt.Fprintf(&b, "#EXTINF:%d,%s\n%s\n", secs, e.Title, e.File)
	}
	return b.String()
}

// Write renders entries into the playlist file at path.
func Write(path string, entries []Entry) error {
	if err := os.WriteFile(path, []byte(Render(entries)), 0o644); err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}
	return nil
}

package split

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Zuo-Peng/chapcut/internal/parse"
	"github.com/Zuo-Peng/chapcut/internal/playlist"
	"github.com/Zuo-Peng/chapcut/internal/util"
)

// Encoder is the ffmpeg surface the splitter needs.
type Encoder interface {
	Duration(ctx context.Context, path string) (int, error)
	Cut(ctx context.Context, in, out string, start, end int) error
}

// Options control planning and execution.
type Options struct {
	OutRoot  string // base output dir; "" puts output next to the video
	Playlist bool
	Jobs     int // parallel cuts per video; <1 means 1
	DryRun   bool
}

// Cut is one planned output file.
type Cut struct {
	Title   string
	Start   int
	End     int // 0 = through to the end of the input
	OutPath string
}

// Task holds everything planned for one video/volume pair.
type Task struct {
	Video    string
	Volume   string // display name, may be ""
	Index    int
	Duration int // probed seconds, 0 when unknown
	OutDir   string
	Cuts     []Cut
	Skipped  []string // cuts dropped at planning time, with reasons
}

// NewTask plans the cuts for one video. Chapter ends are the next
// chapter's start; the last one ends at the probed duration, or runs
// open-ended when the duration is unknown. A chapter that starts at or
// past the known duration fails the whole task: the chapter text does
// not describe this video. Cuts with no time in them (duplicate starts)
// are skipped, not cut.
func NewTask(video string, index int, vol parse.Volume, duration int, opts Options) (Task, error) {
	ext := filepath.Ext(video)
	base := strings.TrimSuffix(filepath.Base(video), ext)

	dirName := util.SafeFileName(vol.Name)
	if dirName == "" {
		dirName = util.SafeFileName(base)
	} else {
		dirName = fmt.Sprintf("%02d %s", index, dirName)
	}
	outRoot := opts.OutRoot
	if outRoot == "" {
		outRoot = filepath.Dir(video)
	}

	t := Task{
		Video:    video,
		Volume:   vol.Name,
		Index:    index,
		Duration: duration,
		OutDir:   filepath.Join(outRoot, dirName),
	}

	for i, ch := range vol.Chapters {
		if duration > 0 && ch.Start >= duration {
			return Task{}, fmt.Errorf("chapter %q starts at %s but %s is only %s long",
				ch.Title, parse.FormatTimestamp(ch.Start),
				filepath.Base(video), parse.FormatTimestamp(duration))
		}

		end := 0
		if i+1 < len(vol.Chapters) {
			end = vol.Chapters[i+1].Start
		} else if duration > 0 {
			end = duration
		}
		if end > 0 && end <= ch.Start {
			t.Skipped = append(t.Skipped, fmt.Sprintf("%q: no time between %s and %s",
				ch.Title, parse.FormatTimestamp(ch.Start), parse.FormatTimestamp(end)))
			continue
		}

		name := util.SafeFileName(ch.Title)
		if name == "" {
			name = fmt.Sprintf("chapter %d", i+1)
		}
		t.Cuts = append(t.Cuts, Cut{
			Title:   ch.Title,
			Start:   ch.Start,
			End:     end,
			OutPath: filepath.Join(t.OutDir, fmt.Sprintf("%02d %s%s", i+1, name, ext)),
		})
	}
	return t, nil
}

// PlaylistEntries lists the planned files as playlist tracks. Paths are
// file names only so the output folder can be moved around freely.
func (t Task) PlaylistEntries() []playlist.Entry {
	entries := make([]playlist.Entry, 0, len(t.Cuts))
	for _, c := range t.Cuts {
		secs := -1
		if c.End > 0 {
			secs = c.End - c.Start
		}
		entries = append(entries, playlist.Entry{
			File:    filepath.Base(c.OutPath),
			Title:   c.Title,
			Seconds: secs,
		})
	}
	return entries
}

// Run executes one task: creates the output folder, cuts every chapter,
// and writes the playlist.
func Run(ctx context.Context, enc Encoder, t Task, opts Options) error {
	if err := os.MkdirAll(t.OutDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", t.OutDir, err)
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, c := range t.Cuts {
		g.Go(func() error {
			if err := enc.Cut(gctx, t.Video, c.OutPath, c.Start, c.End); err != nil {
				return fmt.Errorf("cut %q: %w", c.Title, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if opts.Playlist {
		if err := playlist.Write(filepath.Join(t.OutDir, "playlist.m3u"), t.PlaylistEntries()); err != nil {
			return err
		}
	}
	return nil
}

// Stats summarizes a run across tasks.
type Stats struct {
	Folders   int
	Videos    int
	Unmatched int
	Chapters  int
	Cut       int
	Skipped   int
	Errors    int
}

func (s Stats) String() string {
	return fmt.Sprintf("folders=%d videos=%d unmatched=%d chapters=%d cut=%d skipped=%d errors=%d",
		s.Folders, s.Videos, s.Unmatched, s.Chapters, s.Cut, s.Skipped, s.Errors)
}

// RunAll executes tasks in order, isolating failures: one bad task is
// reported and counted, never fatal for the rest. Dry runs only count.
func RunAll(ctx context.Context, enc Encoder, tasks []Task, opts Options) Stats {
	var stats Stats
	for _, t := range tasks {
		stats.Videos++
		stats.Chapters += len(t.Cuts) + len(t.Skipped)
		stats.Skipped += len(t.Skipped)
		if opts.DryRun {
			continue
		}
		if err := Run(ctx, enc, t, opts); err != nil {
			stats.Errors++
			fmt.Fprintf(os.Stderr, "  WARN: %s: %v\n", filepath.Base(t.Video), err)
			continue
		}
		stats.Cut += len(t.Cuts)
	}
	return stats
}

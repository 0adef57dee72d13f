package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/chapcut/internal/config"
	"github.com/Zuo-Peng/chapcut/internal/encode"
	"github.com/Zuo-Peng/chapcut/internal/match"
	"github.com/Zuo-Peng/chapcut/internal/parse"
	"github.com/Zuo-Peng/chapcut/internal/render"
	"github.com/Zuo-Peng/chapcut/internal/scan"
	"github.com/Zuo-Peng/chapcut/internal/split"
)

func batchCmd() *cobra.Command {
	var outDir string
	var yes, dryRun, noPlaylist bool
	var jobs int

	cmd := &cobra.Command{
		Use:   "batch <root>",
		Short: "Split every course folder under a directory",
		Long: `Walks root and its direct subdirectories looking for course folders:
a folder holding video files plus a .txt chapter file. Each video is
matched to a volume in the chapter file and cut into per-chapter files.
Folders missing either half are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			courses, err := scan.Courses(args[0], cfg.VideoExts)
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				return fmt.Errorf("no course folders under %s", args[0])
			}
			fmt.Fprintf(os.Stderr, "Found %d course folders under %s\n", len(courses), args[0])

			enc := encode.New(cfg.FFmpegPath, cfg.FFprobePath)
			ctx := cmd.Context()

			if jobs <= 0 {
				jobs = cfg.Jobs
			}
			opts := split.Options{
				OutRoot:  outDir,
				Playlist: cfg.Playlist && !noPlaylist,
				Jobs:     jobs,
				DryRun:   dryRun,
			}

			var planStats split.Stats
			var tasks []split.Task
			for _, course := range courses {
				tasks = append(tasks, buildCourseTasks(ctx, enc, course, opts, &planStats)...)
			}
			if len(tasks) == 0 {
				return fmt.Errorf("nothing to split under %s", args[0])
			}

			interactive := term.IsTerminal(int(os.Stdout.Fd())) && !yes && !dryRun
			if interactive {
				var ok bool
				tasks, ok, err = confirmTasks(tasks)
				if err != nil {
					return err
				}
				if !ok || len(tasks) == 0 {
					fmt.Fprintln(os.Stderr, "Cancelled.")
					return nil
				}
			} else {
				for _, t := range tasks {
					fmt.Print(render.TaskTree(t, render.Options{}))
				}
			}

			stats := split.RunAll(ctx, enc, tasks, opts)
			stats.Folders = len(courses)
			stats.Unmatched = planStats.Unmatched
			stats.Errors += planStats.Errors
			fmt.Fprintf(os.Stderr, "Done. %s\n", stats)
			if stats.Errors > 0 {
				return fmt.Errorf("%d videos or chapters failed", stats.Errors)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Write output folders here instead of next to each video")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the plan without cutting anything")
	cmd.Flags().BoolVar(&noPlaylist, "no-playlist", false, "Skip writing .m3u playlists")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "Parallel cuts per video (0 = config value)")

	return cmd
}

// buildCourseTasks parses, matches, and probes one course folder.
// Unmatched videos and probe failures are reported and counted, never
// fatal; a chapter file that fails to parse skips the whole folder.
func buildCourseTasks(ctx context.Context, enc *encode.Runner, course scan.Course, opts split.Options, stats *split.Stats) []split.Task {
	res, err := parse.File(course.Timestamps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  WARN: %s: %v\n", course.Dir, err)
		return nil
	}
	warn(res.Warnings)
	if res.ChapterCount() == 0 {
		fmt.Fprintf(os.Stderr, "  WARN: %s: no chapters in %s\n", course.Dir, filepath.Base(course.Timestamps))
		return nil
	}

	matched := match.Videos(course.Videos, res.Volumes)
	for _, um := range matched.Unmatched {
		stats.Unmatched++
		fmt.Fprintf(os.Stderr, "  WARN: %s: %s\n", um.Video.Base, um.Reason)
	}

	var tasks []split.Task
	for _, pair := range matched.Pairs {
		duration, err := enc.Duration(ctx, pair.Video.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  WARN: probe %s: %v\n", pair.Video.Base, err)
			duration = 0
		}

		task, err := split.NewTask(pair.Video.Path, pair.Index, pair.Volume, duration, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  WARN: %s: %v\n", pair.Video.Base, err)
			stats.Errors++
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks
}

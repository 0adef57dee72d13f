package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/chapcut/internal/config"
	"github.com/Zuo-Peng/chapcut/internal/encode"
	"github.com/Zuo-Peng/chapcut/internal/parse"
	"github.com/Zuo-Peng/chapcut/internal/render"
	"github.com/Zuo-Peng/chapcut/internal/scan"
	"github.com/Zuo-Peng/chapcut/internal/split"
)

func splitCmd() *cobra.Command {
	var outDir string
	var yes, dryRun, noPlaylist bool
	var jobs int

	cmd := &cobra.Command{
		Use:   "split <video> [chapters.txt]",
		Short: "Cut one video into per-chapter files",
		Long: `Cuts a video into one file per chapter, stream-copied with ffmpeg.
The whole chapter file is treated as that video's chapter list. When the
chapter file argument is omitted, the .txt file next to the video is used.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			video := args[0]
			if _, err := os.Stat(video); err != nil {
				return err
			}

			var txt string
			if len(args) == 2 {
				txt = args[1]
			} else {
				found, others, err := scan.TimestampFile(filepath.Dir(video))
				if err != nil {
					return err
				}
				if len(others) > 0 {
					fmt.Fprintf(os.Stderr, "  WARN: several .txt files here, using %s\n", filepath.Base(found))
				}
				txt = found
			}

			res, err := parse.Single(txt)
			if err != nil {
				return err
			}
			warn(res.Warnings)
			if res.ChapterCount() == 0 {
				return fmt.Errorf("no chapters found in %s", txt)
			}

			enc := encode.New(cfg.FFmpegPath, cfg.FFprobePath)
			ctx := cmd.Context()

			duration, err := enc.Duration(ctx, video)
			if err != nil {
				fmt.Fprintf(os.Stderr, "  WARN: probe %s: %v\n", filepath.Base(video), err)
				duration = 0
			}

			if jobs <= 0 {
				jobs = cfg.Jobs
			}
			opts := split.Options{
				OutRoot:  outDir,
				Playlist: cfg.Playlist && !noPlaylist,
				Jobs:     jobs,
				DryRun:   dryRun,
			}

			task, err := split.NewTask(video, 1, res.Volumes[0], duration, opts)
			if err != nil {
				return err
			}

			fmt.Print(render.TaskTree(task, render.Options{}))
			if dryRun {
				return nil
			}

			tasks := []split.Task{task}
			if term.IsTerminal(int(os.Stdout.Fd())) && !yes {
				tasks, _, err = confirmTasks(tasks)
				if err != nil {
					return err
				}
				if len(tasks) == 0 {
					fmt.Fprintln(os.Stderr, "Cancelled.")
					return nil
				}
			}

			stats := split.RunAll(ctx, enc, tasks, opts)
			fmt.Fprintf(os.Stderr, "Done. %s\n", stats)
			if stats.Errors > 0 {
				return fmt.Errorf("%d chapters failed", stats.Errors)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Write the output folder here instead of next to the video")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the plan without cutting anything")
	cmd.Flags().BoolVar(&noPlaylist, "no-playlist", false, "Skip writing the .m3u playlist")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "Parallel cuts per video (0 = config value)")

	return cmd
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/chapcut/internal/config"
	"github.com/Zuo-Peng/chapcut/internal/encode"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, ffmpeg, and ffprobe",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			if path, err := config.Path(); err == nil {
				if _, statErr := os.Stat(path); statErr == nil {
					fmt.Printf("  File: %s (OK)\n", path)
				} else {
					fmt.Printf("  File: %s (not present, using defaults)\n", path)
				}
			}
			fmt.Printf("  Video exts: %s\n", strings.Join(cfg.VideoExts, " "))
			fmt.Printf("  Playlist:   %v\n", cfg.Playlist)
			fmt.Printf("  Jobs:       %d\n", cfg.Jobs)

			fmt.Println("\n=== Binaries ===")
			checkBinary(cmd.Context(), "ffmpeg", cfg.FFmpegPath)
			checkBinary(cmd.Context(), "ffprobe", cfg.FFprobePath)

			return nil
		},
	}
}

func checkBinary(ctx context.Context, name, path string) {
	resolved, err := exec.LookPath(path)
	if err != nil {
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
		return
	}

	ver, err := encode.Version(ctx, resolved)
	if err != nil {
		fmt.Printf("  %s: %s (version check failed: %v)\n", name, resolved, err)
		return
	}
	fmt.Printf("  %s: %s (OK)\n", name, resolved)
	fmt.Printf("    %s\n", ver)
}

package encode

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Runner invokes ffmpeg and ffprobe. Zero-value fields fall back to the
// PATH binaries via New.
type Runner struct {
	FFmpeg  string
	FFprobe string
}

func New(ffmpeg, ffprobe string) *Runner {
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	if ffprobe == "" {
		ffprobe = "ffprobe"
	}
	return &Runner{FFmpeg: ffmpeg, FFprobe: ffprobe}
}

// Duration probes the container duration in whole seconds. An error
// means the duration is unknown; callers decide whether that matters.
func (r *Runner) Duration(ctx context.Context, path string) (int, error) {
	cmd := exec.CommandContext(ctx, r.FFprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}
	secs, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: bad duration %q", strings.TrimSpace(string(out)))
	}
	return int(secs), nil
}

// Cut copies the [start, end) span of in to out without re-encoding.
// end <= 0 copies through to the end of the input.
func (r *Runner) Cut(ctx context.Context, in, out string, start, end int) error {
	cmd := exec.CommandContext(ctx, r.FFmpeg, cutArgs(in, out, start, end)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := firstLine(stderr.String()); msg != "" {
			return fmt.Errorf("ffmpeg: %s", msg)
		}
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

func cutArgs(in, out string, start, end int) []string {
	args := []string{
		"-nostdin", "-hide_banner", "-loglevel", "error",
		"-i", in,
		"-ss", strconv.Itoa(start),
	}
	if end > 0 {
		args = append(args, "-to", strconv.Itoa(end))
	}
	return append(args, "-map", "0", "-c", "copy", "-y", out)
}

// Version returns the first line of `<bin> -version` output.
func Version(ctx context.Context, bin string) (string, error) {
	out, err := exec.CommandContext(ctx, bin, "-version").Output()
	if err != nil {
		return "", err
	}
	return firstLine(string(out)), nil
}

func firstLine(s string) string {
	s, _, _ = strings.Cut(s, "\n")
	return strings.TrimSpace(s)
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/chapcut/internal/render"
	"github.com/Zuo-Peng/chapcut/internal/split"
	"github.com/Zuo-Peng/chapcut/internal/tui"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "chapcut",
		Short:   "Split course videos into per-chapter files using a chapter list",
		Version: version,
	}

	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(splitCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// warn prints parser warnings to stderr.
func warn(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "  WARN: %s\n", w)
	}
}

// confirmTasks shows the interactive checklist and returns the tasks the
// user left selected. ok is false when the user cancelled.
func confirmTasks(tasks []split.Task) ([]split.Task, bool, error) {
	items := make([]tui.Item, len(tasks))
	for i, t := range tasks {
		items[i] = tui.Item{
			Label:    fmt.Sprintf("%s (%d chapters)", filepath.Base(t.Video), len(t.Cuts)),
			Preview:  render.TaskTree(t, render.Options{}),
			Selected: true,
		}
	}

	picked, ok, err := tui.Confirm(items)
	if err != nil || !ok {
		return nil, ok, err
	}

	out := make([]split.Task, 0, len(picked))
	for _, i := range picked {
		out = append(out, tasks[i])
	}
	return out, true, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/chapcut/internal/parse"
	"github.com/Zuo-Peng/chapcut/internal/render"
)

func previewCmd() *cobra.Command {
	var single bool
	var width int

	cmd := &cobra.Command{
		Use:   "preview <chapters.txt>",
		Short: "Parse a chapter file and show the volume tree",
		Long: `Parses a chapter text file and prints the volumes and chapters it
found, with the time span each chapter covers. Nothing is cut; use this
to check a chapter file before splitting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var res *parse.Result
			var err error
			if single {
				res, err = parse.Single(args[0])
			} else {
				res, err = parse.File(args[0])
			}
			if err != nil {
				return err
			}

			warn(res.Warnings)
			if res.ChapterCount() == 0 {
				return fmt.Errorf("no chapters found in %s", args[0])
			}

			fmt.Print(render.Tree(res, render.Options{Width: width}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&single, "single", false, "Treat the whole file as one volume")
	cmd.Flags().IntVar(&width, "width", 0, "Truncate chapter titles to this many columns (0 = no limit)")

	return cmd
}

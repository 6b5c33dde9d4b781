package main

import (
	"strings"

	"github.com/spf13/cobra"

	"silbe/internal/corpus"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Preview a corpus file: line count and leading lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			src, err := corpus.NewSource(cfg.Paths.SourceDir)
			if err != nil {
				return err
			}

			name := args[0]
			content, err := src.Lines(name)
			if err != nil {
				return err
			}

			cmd.Printf("The file %q contains %d lines.\n", name, len(content))
			preview := content
			if len(preview) > lines {
				preview = preview[:lines]
			}
			cmd.Println("Preview:")
			for _, line := range preview {
				cmd.Printf("  %s\n", strings.TrimRight(line, "\n"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&lines, "lines", 5, "Number of leading lines to preview")
	return cmd
}

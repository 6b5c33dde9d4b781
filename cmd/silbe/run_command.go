package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"silbe/internal/history"
	"silbe/internal/logging"
	"silbe/internal/pipeline"
)

// previewRows is how many leading result rows are echoed after each file.
const previewRows = 5

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file...]",
		Short: "Process files: clean, select, rank, and persist syllable counts",
		Long: "Runs the full pipeline over the named files (or [input] files from the\n" +
			"configuration when none are given). Each file is processed independently;\n" +
			"a failing file is reported and the batch continues.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			files := args
			if len(files) == 0 {
				files = cfg.Input.Files
			}
			if len(files) == 0 {
				return errors.New("no input files: pass file names or set input.files in the configuration")
			}

			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			annotator, err := ctx.annotator()
			if err != nil {
				return err
			}

			var store *history.Store
			if cfg.History.Enabled {
				lock := flock.New(filepath.Join(cfg.Paths.LogDir, "silbe.lock"))
				locked, err := lock.TryLock()
				if err != nil {
					return fmt.Errorf("acquire run lock: %w", err)
				}
				if !locked {
					return errors.New("another silbe run is in progress")
				}
				defer func() { _ = lock.Unlock() }()

				store, err = history.Open(filepath.Join(cfg.Paths.LogDir, "history.db"))
				if err != nil {
					return err
				}
				defer store.Close()
			}

			runner, err := pipeline.New(cfg, annotator, store, logger)
			if err != nil {
				return err
			}

			outcomes := runner.ProcessBatch(cmd.Context(), files)
			failed := 0
			for _, outcome := range outcomes {
				printOutcome(cmd, outcome)
				if outcome.Err != nil {
					failed++
				}
			}
			if failed == len(outcomes) {
				return fmt.Errorf("all %d file(s) failed", failed)
			}
			return nil
		},
	}
}

func printOutcome(cmd *cobra.Command, outcome pipeline.Outcome) {
	cmd.Printf("\n%s (%s)\n", outcome.File, logging.FormatDuration(outcome.Duration))
	if outcome.Err != nil {
		cmd.Printf("  failed: %v\n", outcome.Err)
		return
	}

	rows := make([][]string, 0, previewRows)
	for i, entry := range outcome.Entries {
		if i >= previewRows {
			break
		}
		rows = append(rows, []string{strconv.Itoa(i), entry.Sentence, strconv.Itoa(entry.Syllables)})
	}
	if len(rows) > 0 {
		cmd.Println(renderTable(
			[]string{"Num", "Sentence", "Syllables"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignRight},
		))
	}

	if outcome.StatsErr != nil {
		cmd.Printf("  no qualifying sentences (%d ranked)\n", len(outcome.Entries))
	} else {
		cmd.Println(outcome.Stats.String())
	}
	cmd.Printf("  results written to %s\n", outcome.ResultPath)
}

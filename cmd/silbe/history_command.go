package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"silbe/internal/history"
	"silbe/internal/logging"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded pipeline runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(filepath.Join(cfg.Paths.LogDir, "history.db"))
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				cmd.Println("No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				status := "ok"
				if run.ErrMessage != "" {
					status = run.ErrMessage
				}
				rows = append(rows, []string{
					run.StartedAt.Format("2006-01-02 15:04:05"),
					run.FileName,
					strconv.Itoa(run.RawLines),
					strconv.Itoa(run.Cleaned),
					strconv.Itoa(run.Selected),
					strconv.Itoa(run.Ranked),
					fmt.Sprintf("%.2f", run.Mean),
					logging.FormatDuration(run.Duration),
					status,
				})
			}

			cmd.Println(renderTable(
				[]string{"Started", "File", "Raw", "Cleaned", "Selected", "Ranked", "Mean", "Duration", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}

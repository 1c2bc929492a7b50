package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/spf13/cobra"

	"github.com/benjamonnguyen/pomomo-tui"
	"github.com/benjamonnguyen/pomomo-tui/history"
	"github.com/benjamonnguyen/pomomo-tui/sqlite"
)

func newHistoryCmd(opts *globalOptions) *cobra.Command {
	var since time.Duration
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show completed intervals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, closeLog, err := newLogger(opts, os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog() //nolint

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			db, err := sqlite.Open(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close() //nolint

			tx, dbGetter := txStdLib.NewTransactor(db, txStdLib.NestedTransactionsSavepoints)
			recorder := history.NewRecorder(sqlite.NewIntervalRepo(dbGetter, logger), tx, logger)

			from := time.Now().Add(-since)
			summary, err := recorder.Summary(cmd.Context(), from)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "since %s\n", from.Format(time.DateTime)) //nolint
			for _, m := range pomomo.Modes {
				fmt.Fprintf(w, "%s\t%d\n", m, summary[m]) //nolint
			}
			return w.Flush()
		},
	}
	cmd.Flags().DurationVar(&since, "since", 24*time.Hour, "how far back to count")
	return cmd
}

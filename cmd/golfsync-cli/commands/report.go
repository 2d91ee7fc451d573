package commands

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"golfsync-backend/lib/serviceutil"
	"golfsync-backend/services/reports"

	_ "modernc.org/sqlite"
)

var showReportCount *int64

func init() {
	showReportCount = reportShowCmd.Flags().Int64("n", 5, "How many recent cycles to show.")

	reportCmd.AddCommand(reportShowCmd)
	reportCmd.AddCommand(reportSendCmd)
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Inspects and sends ingestion run reports.",
}

var reportShowCmd = &cobra.Command{
	Use:   "show [--n <count>]",
	Short: "Shows the most recent ingestion cycles.",
	Run: func(cmd *cobra.Command, args []string) {
		db, store := openStore(loadConfig())
		defer db.Close()

		runs, err := store.ListRunReports(cmd.Context(), *showReportCount)
		if err != nil {
			serviceutil.Fatal("failed to list run reports", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Run", "Started", "Duration", "Users", "Rounds", "Errors"})
		for _, run := range runs {
			total := 0
			for _, count := range run.SourceCounts {
				total += count
			}
			t.AppendRow(table.Row{
				run.RunID,
				run.StartedAt.Format(time.ANSIC),
				run.Duration().Round(time.Second),
				run.UsersProcessed,
				total,
				len(run.Errors),
			})
		}
		t.Render()

		for _, run := range runs {
			for _, e := range run.Errors {
				fmt.Printf("%s: %s\n", run.RunID, e)
			}
		}
	},
}

var reportSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Builds this week's summary and mails it to the configured recipients.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		db, store := openStore(cfg)
		defer db.Close()

		service := reports.NewService(store, cfg.Reports)
		err := service.SendWeeklySummary(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to send weekly summary", err)
		}
	},
}

package commands

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"golfsync-backend/lib/pagecache"
	"golfsync-backend/lib/serviceutil"
	"golfsync-backend/services/ingest"
	"golfsync-backend/services/keychain"

	_ "modernc.org/sqlite"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs one full ingestion cycle immediately and prints the report.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		db, store := openStore(cfg)
		defer db.Close()

		keys, err := keychain.NewService(db, cfg.Keychain)
		if err != nil {
			serviceutil.Fatal("failed to init keychain", err)
		}

		var captures *pagecache.Store
		if cfg.Captures.Dir != "" {
			capStore, err := pagecache.Open(cfg.Captures.Dir, pagecache.DefaultTTL)
			if err != nil {
				serviceutil.Fatal("failed to open capture store", err)
			}
			defer capStore.Close()
			captures = &capStore
		}

		service := ingest.NewService(store, keys, captures, cfg.Ingest)
		report, err := service.RunCycle(cmd.Context())
		if err != nil {
			serviceutil.Fatal("ingestion cycle failed to run", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Run", "Duration", "Users", "Source", "Rounds"})
		for source, count := range report.SourceCounts {
			t.AppendRow(table.Row{
				report.RunID,
				report.Duration().Round(time.Second),
				report.UsersProcessed,
				source,
				count,
			})
		}
		t.Render()

		if len(report.Errors) > 0 {
			fmt.Printf("\n%d errors:\n", len(report.Errors))
			for _, e := range report.Errors {
				fmt.Printf("  - %s\n", e)
			}
		}
	},
}

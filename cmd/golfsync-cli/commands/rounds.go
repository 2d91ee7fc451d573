package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"golfsync-backend/lib/serviceutil"

	_ "modernc.org/sqlite"
)

func init() {
	roundsCmd.AddCommand(roundsListCmd)
	rootCmd.AddCommand(roundsCmd)
}

var roundsCmd = &cobra.Command{
	Use:   "rounds",
	Short: "Inspects ingested rounds and practice sessions.",
}

var roundsListCmd = &cobra.Command{
	Use:   "list <email>",
	Short: "Lists a user's rounds, newest first.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, store := openStore(loadConfig())
		defer db.Close()

		user := requireUser(cmd.Context(), store, args[0])
		rounds, err := store.ListRounds(cmd.Context(), user.ID)
		if err != nil {
			serviceutil.Fatal("failed to list rounds", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Date", "Course", "Score", "Source", "Native ID"})
		for _, round := range rounds {
			row := table.Row{
				round.ID,
				round.Date.Format("2006-01-02"),
				round.CourseName,
			}
			if round.TotalScore != nil {
				row = append(row, *round.TotalScore)
			} else {
				row = append(row, "-")
			}
			row = append(row, round.Source, round.SourceNativeID)
			t.AppendRow(row)
		}
		t.Render()
	},
}

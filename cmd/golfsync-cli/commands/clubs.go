package commands

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/serviceutil"
	"golfsync-backend/services/rounds"

	_ "modernc.org/sqlite"
)

var (
	addClubType *string
	addClubLoft *float64
)

func init() {
	addClubType = clubsAddCmd.Flags().String("type", "", "Club type, e.g. driver, iron, wedge, putter.")
	addClubLoft = clubsAddCmd.Flags().Float64("loft", 0, "Loft in degrees.")

	clubsCmd.AddCommand(clubsListCmd)
	clubsCmd.AddCommand(clubsAddCmd)
	clubsCmd.AddCommand(clubsDelCmd)
	clubsCmd.AddCommand(clubsRefreshCmd)
	rootCmd.AddCommand(clubsCmd)
}

var clubsCmd = &cobra.Command{
	Use:   "clubs",
	Short: "Manages a user's bag and its computed distances.",
}

func requireUser(ctx context.Context, store *rounds.Store, email string) golf.User {
	user, ok, err := store.GetUserByEmail(ctx, email)
	if err != nil {
		serviceutil.Fatal("failed to look up user", err)
	}
	if !ok {
		serviceutil.Fatal("unknown user", fmt.Errorf("no user with email %q", email))
	}
	return user
}

var clubsListCmd = &cobra.Command{
	Use:   "list <email>",
	Short: "Lists a user's bag with per-club average and max distances.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, store := openStore(loadConfig())
		defer db.Close()

		user := requireUser(cmd.Context(), store, args[0])
		clubs, err := store.ListClubs(cmd.Context(), user.ID)
		if err != nil {
			serviceutil.Fatal("failed to list clubs", err)
		}

		fmtDist := func(v *float64) string {
			if v == nil {
				return "-"
			}
			return fmt.Sprintf("%.1f yd", *v)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Name", "Type", "Loft", "Avg", "Max"})
		for _, club := range clubs {
			loft := "-"
			if club.Loft != nil {
				loft = fmt.Sprintf("%.1f°", *club.Loft)
			}
			t.AppendRow(table.Row{
				club.Name,
				club.Type,
				loft,
				fmtDist(club.AvgDistanceYards),
				fmtDist(club.MaxDistanceYards),
			})
		}
		t.Render()
	},
}

var clubsAddCmd = &cobra.Command{
	Use:   "add <email> <name> [--type <type>] [--loft <degrees>]",
	Short: "Adds a club to a user's bag.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		db, store := openStore(loadConfig())
		defer db.Close()

		user := requireUser(cmd.Context(), store, args[0])
		club := golf.Club{
			UserID: user.ID,
			Name:   args[1],
			Type:   *addClubType,
		}
		if cmd.Flags().Changed("loft") {
			club.Loft = addClubLoft
		}
		_, err := store.AddClub(cmd.Context(), club)
		if err != nil {
			serviceutil.Fatal("failed to add club", err)
		}
	},
}

var clubsDelCmd = &cobra.Command{
	Use:   "del <email> <name>",
	Short: "Removes a club from a user's bag.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		db, store := openStore(loadConfig())
		defer db.Close()

		user := requireUser(cmd.Context(), store, args[0])
		err := store.DeleteClub(cmd.Context(), user.ID, args[1])
		if err != nil {
			serviceutil.Fatal("failed to delete club", err)
		}
	},
}

var clubsRefreshCmd = &cobra.Command{
	Use:   "refresh <email>",
	Short: "Recomputes club distances from the user's ingested shots.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, store := openStore(loadConfig())
		defer db.Close()

		user := requireUser(cmd.Context(), store, args[0])
		err := store.RefreshClubDistances(cmd.Context(), user.ID)
		if err != nil {
			serviceutil.Fatal("failed to refresh club distances", err)
		}
	},
}

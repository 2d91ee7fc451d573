package commands

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/serviceutil"

	_ "modernc.org/sqlite"
)

var addUserName *string

func init() {
	addUserName = usersAddCmd.Flags().String("name", "", "Display name for the user.")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersEnableCmd)
	usersCmd.AddCommand(usersDisableCmd)
	rootCmd.AddCommand(usersCmd)
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manages the users ingestion runs for.",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists every user and whether they are active.",
	Run: func(cmd *cobra.Command, args []string) {
		db, store := openStore(loadConfig())
		defer db.Close()

		users, err := store.ListUsers(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list users", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Email", "Name", "Active", "Created"})
		for _, user := range users {
			t.AppendRow(table.Row{
				user.ID,
				user.Email,
				user.Name,
				user.IsActive,
				user.CreatedAt.Format(time.ANSIC),
			})
		}
		t.Render()
	},
}

var usersAddCmd = &cobra.Command{
	Use:   "add <email> [--name <name>]",
	Short: "Adds a user, or refreshes the profile of an existing one.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, store := openStore(loadConfig())
		defer db.Close()

		id, err := store.CreateUser(cmd.Context(), golf.User{
			Email: args[0],
			Name:  *addUserName,
		})
		if err != nil {
			serviceutil.Fatal("failed to add user", err)
		}
		fmt.Printf("user %d: %s\n", id, args[0])
	},
}

var usersEnableCmd = &cobra.Command{
	Use:   "enable <email>",
	Short: "Includes a user in future ingestion cycles.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, store := openStore(loadConfig())
		defer db.Close()

		err := store.SetUserActive(cmd.Context(), args[0], true)
		if err != nil {
			serviceutil.Fatal("failed to enable user", err)
		}
	},
}

var usersDisableCmd = &cobra.Command{
	Use:   "disable <email>",
	Short: "Excludes a user from future ingestion cycles, keeping their data.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, store := openStore(loadConfig())
		defer db.Close()

		err := store.SetUserActive(cmd.Context(), args[0], false)
		if err != nil {
			serviceutil.Fatal("failed to disable user", err)
		}
	},
}

package commands

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/scrapers"
	"golfsync-backend/lib/serviceutil"
	"golfsync-backend/services/keychain"

	_ "modernc.org/sqlite"
)

func init() {
	keysCmd.AddCommand(keysSetCmd)
	keysCmd.AddCommand(keysDelCmd)
	keysCmd.AddCommand(keysListCmd)
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manages the portal credentials ingestion signs in with.",
}

func openKeychain(cfg Config) keychain.Service {
	db, _ := openStore(cfg)
	service, err := keychain.NewService(db, cfg.Keychain)
	if err != nil {
		serviceutil.Fatal("failed to init keychain", err)
	}
	return service
}

func parseSource(arg string) golf.Source {
	source := golf.Source(arg)
	if !source.Valid() || source == golf.SourceManual {
		serviceutil.Fatal("bad source", fmt.Errorf("%q is not a scrapable source", arg))
	}
	return source
}

var keysSetCmd = &cobra.Command{
	Use:   "set <email> <source> <identifier> <secret>",
	Short: "Stores a user's credential pair for one source.",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		service := openKeychain(loadConfig())

		err := service.Set(cmd.Context(), args[0], parseSource(args[1]), scrapers.Credentials{
			Identifier: args[2],
			Secret:     args[3],
		})
		if err != nil {
			serviceutil.Fatal("failed to store credentials", err)
		}
	},
}

var keysDelCmd = &cobra.Command{
	Use:   "del <email> <source>",
	Short: "Deletes a user's credential pair for one source.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		service := openKeychain(loadConfig())

		err := service.Delete(cmd.Context(), args[0], parseSource(args[1]))
		if err != nil {
			serviceutil.Fatal("failed to delete credentials", err)
		}
	},
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists stored credential pairs. Secrets are never shown.",
	Run: func(cmd *cobra.Command, args []string) {
		service := openKeychain(loadConfig())

		keys, err := service.List(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list credentials", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Source", "Email", "Identifier", "Updated"})
		for _, key := range keys {
			t.AppendRow(table.Row{
				key.Source,
				key.Email,
				key.Identifier,
				key.UpdatedAt.Format(time.ANSIC),
			})
		}
		t.Render()
	},
}

// Package commands implements the golfsync-cli command tree. Every
// command works directly against the configured database, the daemon
// does not need to be running.
package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"golfsync-backend/lib/configutil"
	configlibsql "golfsync-backend/lib/configutil/libsql"
	"golfsync-backend/lib/serviceutil"
	"golfsync-backend/services/ingest"
	"golfsync-backend/services/keychain"
	keychaindb "golfsync-backend/services/keychain/db"
	"golfsync-backend/services/reports"
	"golfsync-backend/services/rounds"
	roundsdb "golfsync-backend/services/rounds/db"
)

var rootCmd = &cobra.Command{
	Use:   "golfsync-cli",
	Short: "golfsync-cli manages users, credentials and ingested rounds.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type CapturesConfig struct {
	Dir string `json:"dir"`
}

type Config struct {
	Database configlibsql.Struct `json:"database"`
	Captures CapturesConfig      `json:"captures"`
	Keychain keychain.Options    `json:"keychain"`
	Ingest   ingest.Options      `json:"ingest"`
	Reports  reports.Options     `json:"reports"`
}

func loadConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func openStore(cfg Config) (*sql.DB, *rounds.Store) {
	db, err := cfg.Database.OpenDB()
	if err != nil {
		serviceutil.Fatal("failed to open db", err)
	}
	_, err = db.Exec(roundsdb.Schema)
	if err != nil {
		serviceutil.Fatal("failed to apply rounds schema", err)
	}
	_, err = db.Exec(keychaindb.Schema)
	if err != nil {
		serviceutil.Fatal("failed to apply keychain schema", err)
	}
	return db, rounds.NewStore(db)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"golfsync-backend/lib/pagecache"
	"golfsync-backend/lib/serviceutil"
)

func init() {
	captureCmd.AddCommand(captureListCmd)
	captureCmd.AddCommand(captureDumpCmd)
	rootCmd.AddCommand(captureCmd)
}

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Inspects archived page snapshots from past scraping runs.",
}

func openCaptures(cfg Config) pagecache.Store {
	if cfg.Captures.Dir == "" {
		serviceutil.Fatal("captures are not configured", fmt.Errorf("captures.dir is empty in the config"))
	}
	store, err := pagecache.Open(cfg.Captures.Dir, pagecache.DefaultTTL)
	if err != nil {
		serviceutil.Fatal("failed to open capture store", err)
	}
	return store
}

var captureListCmd = &cobra.Command{
	Use:   "list [source]",
	Short: "Lists live captures, optionally filtered to one source.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openCaptures(loadConfig())
		defer store.Close()

		source := ""
		if len(args) > 0 {
			source = args[0]
		}
		captures, err := store.List(cmd.Context(), source)
		if err != nil {
			serviceutil.Fatal("failed to list captures", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Source", "Label", "URL", "Size", "Captured"})
		for _, c := range captures {
			t.AppendRow(table.Row{
				c.Source,
				c.Label,
				c.Url,
				c.Size,
				c.CapturedAt.Format(time.ANSIC),
			})
		}
		t.Render()
	},
}

var captureDumpCmd = &cobra.Command{
	Use:   "dump <source> <label> <url>",
	Short: "Writes one capture's raw HTML to stdout.",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		store := openCaptures(loadConfig())
		defer store.Close()

		capture, err := store.Get(cmd.Context(), args[0], args[1], args[2])
		if errors.Is(err, pagecache.CaptureNotFound) {
			serviceutil.Fatal("no such capture", err)
		}
		if err != nil {
			serviceutil.Fatal("failed to read capture", err)
		}
		os.Stdout.Write(capture.Contents)
	},
}

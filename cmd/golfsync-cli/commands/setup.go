package commands

import (
	"github.com/spf13/cobra"

	"golfsync-backend/lib/browser"
	"golfsync-backend/lib/serviceutil"
)

func init() {
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Downloads the browser binaries scraping depends on.",
	Run: func(cmd *cobra.Command, args []string) {
		err := browser.Install()
		if err != nil {
			serviceutil.Fatal("failed to install browser binaries", err)
		}
	},
}

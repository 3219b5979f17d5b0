package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		printResult(map[string]string{
			"version":   Version,
			"commit":    Commit,
			"buildDate": BuildDate,
		}, func() {
			fmt.Printf("snapcheck %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snapcheck/snapcheck/pkg/cli/internal/output"
	"github.com/snapcheck/snapcheck/pkg/config"
	"github.com/snapcheck/snapcheck/pkg/report"
)

var exportsCmd = &cobra.Command{
	Use:   "exports",
	Short: "Count exported components under the configured scan paths",
	Long: `Scans snapshot.paths.scanPaths (glob patterns, ** supported) and counts
naive export statements per file. Report generators compare this against the
resolved story count to estimate coverage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Resolve(resolveOptions(logger, nil))
		if err != nil {
			return err
		}
		if len(cfg.Snapshot.Paths.ScanPaths) == 0 {
			output.Warn("no scan paths configured (snapshot.paths.scanPaths)")
		}

		scan, err := report.ScanExports(cfg.Snapshot.Paths.ScanPaths)
		if err != nil {
			return err
		}

		printResult(scan, func() {
			w := output.Table()
			fmt.Fprintln(w, "FILE\tEXPORTS")
			for _, f := range scan.Files {
				fmt.Fprintf(w, "%s\t%d\n", f.Path, f.Exports)
			}
			w.Flush()
			fmt.Printf("Total: %d exports in %d files\n", scan.TotalExports, len(scan.Files))
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportsCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snapcheck/snapcheck/pkg/cli/internal/output"
	"github.com/snapcheck/snapcheck/pkg/config"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "Show the per-locale run plan",
	Long: `Lists the locale runs an all-locales invocation would execute. Each run
gets its own independently resolved configuration. The locale marked default
is skipped: the baseline desktop run already covers it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		opts := resolveOptions(logger, nil)
		configs, err := config.ResolveAllLocales(opts)
		if err != nil {
			return err
		}

		type localeRun struct {
			Code      string `json:"code"`
			Name      string `json:"name"`
			Direction string `json:"direction"`
		}
		runs := make([]localeRun, 0, len(configs))
		for _, cfg := range configs {
			runs = append(runs, localeRun{
				Code:      cfg.Locale.Code,
				Name:      cfg.Locale.Name,
				Direction: cfg.Locale.Direction,
			})
		}

		printResult(runs, func() {
			if len(runs) == 0 {
				fmt.Println("No locale runs planned.")
				return
			}
			w := output.Table()
			fmt.Fprintln(w, "CODE\tNAME\tDIRECTION")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Code, r.Name, r.Direction)
			}
			w.Flush()
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(localesCmd)
}

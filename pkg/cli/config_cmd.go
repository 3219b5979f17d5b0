package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/snapcheck/snapcheck/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the fully resolved configuration",
	Long: `Resolves the configuration exactly as a test run would (defaults, config
file, overlays, flag overrides) and prints the result. Useful for debugging
precedence: what you see here is what the run uses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Resolve(resolveOptions(logger, nil))
		if err != nil {
			return err
		}

		printResult(cfg, func() {
			data, err := yaml.Marshal(cfg)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			os.Stdout.Write(data)
			if cfg.ActiveViewport != nil {
				fmt.Printf("# active viewport: %dx%d\n", cfg.ActiveViewport.Width, cfg.ActiveViewport.Height)
			}
			if cfg.Locale != nil {
				fmt.Printf("# locale: %s (%s, %s)\n", cfg.Locale.Code, cfg.Locale.Name, cfg.Locale.Direction)
			}
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

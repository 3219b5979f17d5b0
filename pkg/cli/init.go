package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/snapcheck/snapcheck/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter .snapcheckrc.yaml interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := ".snapcheckrc.yaml"
		if !initForce {
			if _, err := os.Stat(target); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", target)
			}
		}

		host := config.DefaultHost
		port := strconv.Itoa(config.DefaultPort)
		matcherTag := "visual-test"
		enableMobile := false
		enableLocale := false

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Storybook host").
					Value(&host),
				huh.NewInput().
					Title("Storybook port").
					Value(&port).
					Validate(func(s string) error {
						n, err := strconv.Atoi(s)
						if err != nil || n < 1 || n > 65535 {
							return errors.New("port must be an integer between 1 and 65535")
						}
						return nil
					}),
				huh.NewInput().
					Title("Tag that marks a story for visual testing").
					Value(&matcherTag),
				huh.NewConfirm().
					Title("Enable mobile viewport runs?").
					Value(&enableMobile),
				huh.NewConfirm().
					Title("Enable per-locale runs?").
					Value(&enableLocale),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}

		cfg := map[string]interface{}{
			"storybook": map[string]interface{}{
				"host": host,
				"port": mustAtoi(port),
			},
			"snapshot": map[string]interface{}{
				"testMatcher": map[string]interface{}{
					"tags": []string{matcherTag},
				},
			},
		}
		snapshotSection := cfg["snapshot"].(map[string]interface{})
		if enableMobile {
			snapshotSection["mobile"] = map[string]interface{}{
				"enabled": true,
				"viewports": []map[string]interface{}{
					{"width": 375, "height": 667, "name": "iphone-se"},
				},
			}
		}
		if enableLocale {
			snapshotSection["locale"] = map[string]interface{}{
				"enabled": true,
				"locales": []map[string]interface{}{
					{"code": "en-US", "name": "English (US)", "default": true},
				},
			}
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", target)
		return nil
	},
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return config.DefaultPort
	}
	return n
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

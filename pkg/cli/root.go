package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/snapcheck/snapcheck/pkg/config"
	"github.com/snapcheck/snapcheck/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	configFile string
	strictMode bool
	mobileMode bool
	localeCode string
	logLevel   string
	logFormat  string
	jsonOutput bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "snapcheck",
	Short: "snapcheck resolves which UI stories get visual snapshot tests",
	Long: `snapcheck decides which component stories are in scope for visual testing
and which snapshot disciplines (pixel image, layout position) apply to each.

It merges defaults, a project config file, and command-line overrides into one
resolved configuration, fetches the story catalog, and filters it through the
configured matcher rules. The resolved story list is what the test runner
executes.

By default, snapcheck looks for .snapcheckrc.yaml (or .yml/.json) in the
working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file (default: search .snapcheckrc.*)")
	rootCmd.PersistentFlags().BoolVar(&strictMode, "strict", false, "Treat an unparseable --config file as a fatal error")
	rootCmd.PersistentFlags().BoolVar(&mobileMode, "mobile", false, "Apply the mobile viewport overlay")
	rootCmd.PersistentFlags().StringVar(&localeCode, "locale", "", "Apply the locale overlay for the given code")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
}

// newLogger builds the logger from the persistent flags. Logs go to
// stderr so --json output on stdout stays machine-readable.
func newLogger() *slog.Logger {
	return logging.New(logging.Config{
		Level:  logging.ParseLevel(logLevel),
		Format: logging.ParseFormat(logFormat),
		Output: os.Stderr,
	})
}

// resolveOptions maps the persistent flags onto config.Options.
func resolveOptions(logger *slog.Logger, overrides *config.Config) config.Options {
	return config.Options{
		ConfigFile: configFile,
		Strict:     strictMode,
		Mobile:     mobileMode,
		Locale:     localeCode,
		Overrides:  overrides,
		Logger:     logger,
	}
}

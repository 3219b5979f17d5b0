package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snapcheck/snapcheck/pkg/cli/internal/output"
	"github.com/snapcheck/snapcheck/pkg/config"
	"github.com/snapcheck/snapcheck/pkg/stories"
)

var (
	storiesAll      bool
	storiesInclude  []string
	storiesIDs      []string
	storiesExclude  []string
	storiesPort     string
	storiesSnapsDir string
)

var storiesCmd = &cobra.Command{
	Use:   "stories",
	Short: "Resolve and list the stories in scope for snapshot testing",
	Long: `Fetches the story catalog, applies the configured matcher rules and
filters, and prints the resolved story list with its per-category flags.

Without --all, only stories that already have a snapshot on disk (an image
or a position file) are listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		overrides := &config.Config{}
		overrides.Snapshot.Filters.IncludePaths = config.StringList(storiesInclude)
		overrides.Snapshot.Filters.StoryIDs = config.StringList(storiesIDs)
		overrides.Snapshot.Filters.Exclusions = config.StringList(storiesExclude)
		overrides.Storybook.Port = config.FlexInt(storiesPort)
		overrides.Snapshot.Paths.SnapshotsDir = storiesSnapsDir

		cfg, err := config.Resolve(resolveOptions(logger, overrides))
		if err != nil {
			return err
		}

		resolver := stories.NewResolver(cfg, stories.WithLogger(logger))
		list, err := resolver.Resolve(cmd.Context(), storiesAll)
		if err != nil {
			return err
		}

		printResult(list, func() {
			if len(list) == 0 {
				fmt.Println("No stories in scope.")
				return
			}
			w := output.Table()
			fmt.Fprintln(w, "ID\tNAME\tIMAGE\tPOSITION")
			for _, s := range list {
				fmt.Fprintf(w, "%s\t%s\t%v\t%v\n", s.ID, s.Name, s.TestOptions.Image, s.TestOptions.Position)
			}
			w.Flush()
		})
		return nil
	},
}

func init() {
	storiesCmd.Flags().BoolVar(&storiesAll, "all", false, "Include stories without an existing snapshot")
	storiesCmd.Flags().StringSliceVar(&storiesInclude, "include-path", nil, "Keep only stories whose import path contains a segment")
	storiesCmd.Flags().StringSliceVar(&storiesIDs, "story-id", nil, "Keep only stories with an exactly matching id")
	storiesCmd.Flags().StringSliceVar(&storiesExclude, "exclude", nil, "Drop stories matching a pattern (id, name, or import path)")
	storiesCmd.Flags().StringVar(&storiesPort, "port", "", "Storybook port override")
	storiesCmd.Flags().StringVar(&storiesSnapsDir, "snapshots-dir", "", "Snapshots directory override")
	rootCmd.AddCommand(storiesCmd)
}

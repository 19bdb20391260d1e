package main

import (
	"os"

	"github.com/spf13/cobra"
)

func createChangelogCmd() *cobra.Command {
	changelogCmd := &cobra.Command{
		Use:   "changelog <version>",
		Short: "Generate the categorized changelog of a release",
		Long: `Generate the categorized changelog of a release as markdown.

Examples:
  relman changelog 2.0.0
  relman changelog 2.1.3 > CHANGELOG-2.1.3.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig()

			rel, err := newRelease(cfg, args[0])
			if err != nil {
				return err
			}

			changelog, err := rel.Changelog()
			if err != nil {
				return err
			}

			return changelog.Render(os.Stdout)
		},
	}

	return changelogCmd
}

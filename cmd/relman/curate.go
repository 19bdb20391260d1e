package main

import (
	"os"

	"github.com/spf13/cobra"
)

func createCurateCmd() *cobra.Command {
	curateCmd := &cobra.Command{
		Use:   "curate <version>",
		Short: "Classify the commits of a release against the issue tracker",
		Long: `Classify the commits of a release against the issue tracker.

Examples:
  relman curate 2.0.0
  relman curate 2.1.3 -c custom-config.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig()

			rel, err := newRelease(cfg, args[0])
			if err != nil {
				return err
			}

			curation, err := rel.Curate()
			if err != nil {
				return err
			}

			return curation.Render(os.Stdout)
		},
	}

	return curateCmd
}

package main

import (
	"github.com/spf13/cobra"
)

func createCherryPickCmd() *cobra.Command {
	var recreateBranch bool
	var dryRun bool

	cherryPickCmd := &cobra.Command{
		Use:   "cherry-pick <version> [--recreate-branch] [--dry-run]",
		Short: "Apply the pending mainline commits onto a maintenance branch",
		Long: `Apply the pending mainline commits of a minor or patch release onto its
maintenance branch, oldest first. The batch aborts on the first conflict.

Examples:
  relman cherry-pick 2.1.3
  relman cherry-pick 2.1.3 --recreate-branch
  relman cherry-pick 2.1.3 --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig()

			rel, err := newRelease(cfg, args[0])
			if err != nil {
				return err
			}

			if dryRun {
				picks, err := rel.CommitsToPick()
				if err != nil {
					return err
				}
				log := newLogger()
				for _, pick := range picks {
					log.Logf("%s %s", pick.Hash(), pick.Title())
				}
				return nil
			}

			return rel.CherryPick(recreateBranch)
		},
	}

	cherryPickCmd.Flags().BoolVar(&recreateBranch, "recreate-branch", false,
		"Recreate the maintenance branch from the previous release tag")
	cherryPickCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"List the commits that would be picked without applying them")

	return cherryPickCmd
}

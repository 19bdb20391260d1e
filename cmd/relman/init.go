package main

import (
	"github.com/lerenn/release-manager/pkg/config"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a default configuration file.

Examples:
  relman init
  relman init -c custom-config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}

			manager := config.NewManager(path)
			if err := manager.SaveConfig(manager.DefaultConfig()); err != nil {
				return err
			}

			newLogger().Logf("Configuration written to %s", path)
			return nil
		},
	}
}

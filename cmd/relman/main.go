// Package main provides the command-line interface for the release-manager application.
package main

import (
	"log"

	"github.com/lerenn/release-manager/pkg/config"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// loadConfig loads the configuration strictly, failing if not found.
func loadConfig() config.Config {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.NewManager(path).GetConfig()
	if err != nil {
		log.Fatalf("Configuration not found at %s. Run: relman init", path)
	}

	return cfg
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "relman",
		Short: "Release Manager - release curation and CI reporting",
		Long: `A CLI tool for curating releases against the issue tracker, generating ` +
			`changelogs, cherry-picking maintenance commits and reporting CI job status.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(
		createInitCmd(),
		createCurateCmd(),
		createChangelogCmd(),
		createCherryPickCmd(),
		createReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

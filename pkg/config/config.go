// Package config provides configuration management functionality for the release-manager application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SMTP holds the mail delivery settings used by the email reporter.
type SMTP struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	Username    string   `yaml:"username"`
	PasswordEnv string   `yaml:"password_env"`
	From        string   `yaml:"from"`
	To          []string `yaml:"to"`
}

// Config represents the application configuration.
type Config struct {
	// Tracker is the issue tracker implementation name ("jira" or "github").
	Tracker string `yaml:"tracker"`
	// TrackerURL is the base URL of the issue tracker.
	TrackerURL string `yaml:"tracker_url"`
	// Project is the primary tracker project key (e.g. "ARROW").
	Project string `yaml:"project"`
	// SecondaryProject is the key of the companion project tracked in the
	// same repository (e.g. "PARQUET").
	SecondaryProject string `yaml:"secondary_project"`
	// GithubOwner and GithubRepo identify the repository on GitHub, used by
	// the github tracker and for commit URLs.
	GithubOwner string `yaml:"github_owner"`
	GithubRepo  string `yaml:"github_repo"`
	// RepositoryPath is the local checkout the release commands operate on.
	RepositoryPath string `yaml:"repository_path"`
	// Mainline is the name of the development branch.
	Mainline string `yaml:"mainline"`
	// TagPrefix is prepended to a version string to form its release tag.
	TagPrefix string `yaml:"tag_prefix"`
	// CacheFile is the path of the on-disk tracker result cache. Empty
	// disables caching.
	CacheFile string `yaml:"cache_file"`
	// SMTP holds mail delivery settings.
	SMTP SMTP `yaml:"smtp"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Tracker == "" {
		return fmt.Errorf("%w: tracker cannot be empty", ErrInvalidConfig)
	}
	if c.Project == "" {
		return fmt.Errorf("%w: project cannot be empty", ErrInvalidConfig)
	}
	if c.RepositoryPath == "" {
		return fmt.Errorf("%w: repository_path cannot be empty", ErrInvalidConfig)
	}
	if c.Mainline == "" {
		return fmt.Errorf("%w: mainline cannot be empty", ErrInvalidConfig)
	}
	return nil
}

// expandTildes expands leading tildes in the configured paths.
func (c *Config) expandTildes() error {
	for _, path := range []*string{&c.RepositoryPath, &c.CacheFile} {
		expanded, err := expandPath(*path)
		if err != nil {
			return err
		}
		*path = expanded
	}
	return nil
}

// expandPath expands a leading tilde to the user home directory.
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

package main

import (
	"fmt"

	"github.com/lerenn/release-manager/pkg/cache"
	"github.com/lerenn/release-manager/pkg/config"
	"github.com/lerenn/release-manager/pkg/fs"
	"github.com/lerenn/release-manager/pkg/gitrepo"
	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/lerenn/release-manager/pkg/release"
	"github.com/lerenn/release-manager/pkg/tracker"
)

// newLogger builds the logger honoring the global verbosity flags.
func newLogger() logger.Logger {
	if quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger()
}

// newTracker builds the configured tracker client, wrapped with the on-disk
// result cache when one is configured.
func newTracker(cfg config.Config, log logger.Logger) (tracker.Client, error) {
	client, err := tracker.NewManager(cfg, log).GetClient(cfg.Tracker)
	if err != nil {
		return nil, err
	}

	if cfg.CacheFile == "" {
		return client, nil
	}
	return tracker.NewCached(client, cache.NewFileCache(fs.NewFS(), cfg.CacheFile)), nil
}

// newRelease resolves a version string into a Release with live collaborators.
func newRelease(cfg config.Config, versionArg string) (*release.Release, error) {
	log := newLogger()

	client, err := newTracker(cfg, log)
	if err != nil {
		return nil, err
	}

	rel, err := release.New(release.NewParams{
		Version: versionArg,
		Tracker: client,
		Git:     gitrepo.NewGit(),
		Config:  cfg,
		Logger:  log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve release %s: %w", versionArg, err)
	}

	return rel, nil
}

// Package tracker provides the issue-tracker collaborators used by release
// curation and changelog generation.
package tracker

import (
	"fmt"

	"github.com/lerenn/release-manager/pkg/config"
	"github.com/lerenn/release-manager/pkg/issue"
	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/lerenn/release-manager/pkg/version"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=tracker.go -destination=mockclient.gen.go -package=tracker

// Client interface defines the read-only tracker operations the release
// commands depend on.
type Client interface {
	// Name returns the name of the tracker implementation.
	Name() string

	// ProjectVersions fetches all versions recorded for a project.
	ProjectVersions(project string) ([]*version.Version, error)

	// ProjectVersion fetches a single version of a project by name.
	ProjectVersion(project, name string) (*version.Version, error)

	// SearchIssues fetches the issues of a project with the given fix version.
	SearchIssues(project, fixVersion string) ([]issue.Issue, error)

	// Issue fetches a single issue by key.
	Issue(key string) (issue.Issue, error)
}

// Manager manages tracker implementations and provides a unified interface.
type Manager struct {
	clients map[string]Client
	logger  logger.Logger
}

// NewManager creates a new tracker manager with registered implementations.
func NewManager(cfg config.Config, log logger.Logger) *Manager {
	m := &Manager{
		clients: make(map[string]Client),
		logger:  log,
	}

	m.register(NewJira(JiraParams{
		BaseURL: cfg.TrackerURL,
		Logger:  log,
	}))
	m.register(NewGitHub(GitHubParams{
		Owner:   cfg.GithubOwner,
		Repo:    cfg.GithubRepo,
		Project: cfg.Project,
		Logger:  log,
	}))

	return m
}

// register registers a tracker implementation under its name.
func (m *Manager) register(client Client) {
	m.clients[client.Name()] = client
}

// GetClient returns the tracker implementation for the given name.
func (m *Manager) GetClient(name string) (Client, error) {
	client, exists := m.clients[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTracker, name)
	}
	return client, nil
}

package tracker

import (
	"fmt"

	"github.com/lerenn/release-manager/pkg/cache"
	"github.com/lerenn/release-manager/pkg/issue"
	"github.com/lerenn/release-manager/pkg/version"
)

// Cached decorates a tracker client with a durable result cache. Each
// operation is keyed by (client name, method, arguments); a cached entry is
// returned without touching the underlying client, permanently.
type Cached struct {
	client Client
	cache  cache.Cache
}

// NewCached wraps a tracker client with the given cache.
func NewCached(client Client, c cache.Cache) *Cached {
	return &Cached{
		client: client,
		cache:  c,
	}
}

// Name returns the name of the underlying tracker implementation.
func (c *Cached) Name() string {
	return c.client.Name()
}

// ProjectVersions fetches all versions recorded for a project.
func (c *Cached) ProjectVersions(project string) ([]*version.Version, error) {
	key := c.key("ProjectVersions", project)

	var versions []*version.Version
	if found, err := c.cache.Get(key, &versions); err != nil {
		return nil, err
	} else if found {
		return versions, nil
	}

	versions, err := c.client.ProjectVersions(project)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Put(key, versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// ProjectVersion fetches a single version of a project by name.
func (c *Cached) ProjectVersion(project, name string) (*version.Version, error) {
	key := c.key("ProjectVersion", project, name)

	var found version.Version
	if exists, err := c.cache.Get(key, &found); err != nil {
		return nil, err
	} else if exists {
		return &found, nil
	}

	result, err := c.client.ProjectVersion(project, name)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Put(key, result); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchIssues fetches the issues of a project with the given fix version.
func (c *Cached) SearchIssues(project, fixVersion string) ([]issue.Issue, error) {
	key := c.key("SearchIssues", project, fixVersion)

	var issues []issue.Issue
	if found, err := c.cache.Get(key, &issues); err != nil {
		return nil, err
	} else if found {
		return issues, nil
	}

	issues, err := c.client.SearchIssues(project, fixVersion)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Put(key, issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// Issue fetches a single issue by key.
func (c *Cached) Issue(issueKey string) (issue.Issue, error) {
	key := c.key("Issue", issueKey)

	var found issue.Issue
	if exists, err := c.cache.Get(key, &found); err != nil {
		return issue.Issue{}, err
	} else if exists {
		return found, nil
	}

	result, err := c.client.Issue(issueKey)
	if err != nil {
		return issue.Issue{}, err
	}

	if err := c.cache.Put(key, result); err != nil {
		return issue.Issue{}, err
	}
	return result, nil
}

// key builds a cache key scoped to the underlying client so switching tracker
// backends cannot alias entries.
func (c *Cached) key(method string, args ...any) string {
	return cache.Key(fmt.Sprintf("%s.%s", c.client.Name(), method), args...)
}

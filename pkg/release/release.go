// Package release implements release curation, changelog generation and
// maintenance cherry-picking against an issue tracker and a git repository.
package release

import (
	"fmt"

	"github.com/lerenn/release-manager/pkg/commit"
	"github.com/lerenn/release-manager/pkg/config"
	"github.com/lerenn/release-manager/pkg/gitrepo"
	"github.com/lerenn/release-manager/pkg/issue"
	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/lerenn/release-manager/pkg/tracker"
	"github.com/lerenn/release-manager/pkg/version"
)

// Release is a tracked release of the project, produced by New. The variant
// (major/minor/patch) determines the maintenance branch naming rule and the
// versions eligible for previous/next navigation.
type Release struct {
	version *version.Version
	tracker tracker.Client
	git     gitrepo.Git
	cfg     config.Config
	logger  logger.Logger
	variant variant

	// Lazily computed fields, cached for the lifetime of the instance.
	// They are immutable once computed; there is no invalidation.
	siblingsMemo []*version.Version
	siblingsDone bool
	issuesMemo   map[string]issue.Issue
	issuesDone   bool
	commitsMemo  []commit.Commit
	commitsDone  bool
}

// NewParams contains parameters for creating a Release.
type NewParams struct {
	// Version is either a version string, resolved against the tracker's
	// known versions, or an already-resolved *version.Version.
	Version any
	Tracker tracker.Client
	Git     gitrepo.Git
	Config  config.Config
	Logger  logger.Logger
}

// New resolves the version and returns the release variant matching it:
// patch == 0 with minor == 0 (or pre-1.0) is a major release, any other
// patch == 0 is a minor release, the rest are patch releases.
func New(params NewParams) (*Release, error) {
	if params.Tracker == nil {
		return nil, fmt.Errorf("%w: tracker", ErrMissingDependency)
	}
	if params.Git == nil {
		return nil, fmt.Errorf("%w: git", ErrMissingDependency)
	}

	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	resolved, err := resolveVersion(params.Version, params.Tracker, params.Config.Project)
	if err != nil {
		return nil, err
	}

	return &Release{
		version: resolved,
		tracker: params.Tracker,
		git:     params.Git,
		cfg:     params.Config,
		logger:  log,
		variant: selectVariant(resolved),
	}, nil
}

// resolveVersion accepts either a version string, looked up against the
// tracker's known versions, or an already-resolved version value.
func resolveVersion(arg any, client tracker.Client, project string) (*version.Version, error) {
	switch v := arg.(type) {
	case string:
		return client.ProjectVersion(project, v)
	case *version.Version:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidVersion, arg)
	}
}

// Version returns the version identifying this release.
func (r *Release) Version() *version.Version {
	return r.version
}

// Kind returns the release variant.
func (r *Release) Kind() Kind {
	return r.variant.kind()
}

// Branch returns the branch tracking this release line: the mainline for a
// major release, the maintenance branch otherwise.
func (r *Release) Branch() string {
	return r.variant.branch(r.version, r.cfg.Mainline)
}

// TagName returns the release tag of this release's version.
func (r *Release) TagName() string {
	return r.tagName(r.version)
}

// tagName returns the release tag of any version.
func (r *Release) tagName(v *version.Version) string {
	return r.cfg.TagPrefix + v.String()
}

// Siblings returns the versions eligible for previous/next navigation,
// sorted in descending order.
func (r *Release) Siblings() ([]*version.Version, error) {
	if r.siblingsDone {
		return r.siblingsMemo, nil
	}

	all, err := r.tracker.ProjectVersions(r.cfg.Project)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracker versions: %w", err)
	}

	siblings := r.variant.siblings(all)
	version.SortDescending(siblings)

	r.siblingsMemo = siblings
	r.siblingsDone = true
	return siblings, nil
}

// Previous returns the next-older sibling, or nil if this release is the
// earliest one recorded.
func (r *Release) Previous() (*version.Version, error) {
	siblings, err := r.Siblings()
	if err != nil {
		return nil, err
	}

	// Siblings are sorted descending; the previous release is the first
	// sibling strictly older than this version.
	for _, sibling := range siblings {
		if sibling.LessThan(r.version) {
			return sibling, nil
		}
	}
	return nil, nil
}

// Next returns the next-newer sibling. ErrNoUpcomingRelease signals that the
// tracker records no newer release.
func (r *Release) Next() (*version.Version, error) {
	siblings, err := r.Siblings()
	if err != nil {
		return nil, err
	}

	// Siblings are sorted descending; the next release is the last sibling
	// strictly newer than this version.
	var next *version.Version
	for _, sibling := range siblings {
		if !sibling.GreaterThan(r.version) {
			break
		}
		next = sibling
	}
	if next == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoUpcomingRelease, r.version)
	}
	return next, nil
}

// Issues returns the tracker issues whose fix version equals this release's
// version, keyed by issue key.
func (r *Release) Issues() (map[string]issue.Issue, error) {
	if r.issuesDone {
		return r.issuesMemo, nil
	}

	found, err := r.tracker.SearchIssues(r.cfg.Project, r.version.String())
	if err != nil {
		return nil, fmt.Errorf("failed to search tracker issues: %w", err)
	}

	issues := make(map[string]issue.Issue, len(found))
	for _, i := range found {
		issues[i.Key] = i
	}

	r.issuesMemo = issues
	r.issuesDone = true
	return issues, nil
}

// Commits returns the commits since the previous release, in
// reverse-chronological order. The upper bound is this release's tag when
// released, otherwise the head of its branch; a missing branch or tag yields
// an empty list with a warning.
func (r *Release) Commits() ([]commit.Commit, error) {
	if r.commitsDone {
		return r.commitsMemo, nil
	}

	lower := ""
	previous, err := r.Previous()
	if err != nil {
		return nil, err
	}
	if previous != nil {
		lower = r.tagName(previous)
	}

	var upper string
	if r.version.Released() {
		tag := r.TagName()
		exists, err := r.git.TagExists(r.cfg.RepositoryPath, tag)
		if err != nil {
			return nil, fmt.Errorf("failed to check tag %s: %w", tag, err)
		}
		if !exists {
			r.logger.Warnf("tag %s not found locally, no commits for release %s", tag, r.version)
			r.commitsMemo = nil
			r.commitsDone = true
			return nil, nil
		}
		upper = tag
	} else {
		branch := r.Branch()
		exists, err := r.git.BranchExists(r.cfg.RepositoryPath, branch)
		if err != nil {
			return nil, fmt.Errorf("failed to check branch %s: %w", branch, err)
		}
		if !exists {
			r.logger.Warnf("branch %s does not exist yet, no commits for release %s", branch, r.version)
			r.commitsMemo = nil
			r.commitsDone = true
			return nil, nil
		}
		upper = branch
	}

	infos, err := r.git.Log(r.cfg.RepositoryPath, lower, upper)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}

	commits := make([]commit.Commit, 0, len(infos))
	for _, info := range infos {
		commits = append(commits, commit.New(info, r.logger))
	}

	r.commitsMemo = commits
	r.commitsDone = true
	return commits, nil
}

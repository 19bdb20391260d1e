package tracker

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/release-manager/pkg/issue"
	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/lerenn/release-manager/pkg/version"
)

const (
	// GitHubName is the name identifier for the GitHub tracker.
	GitHubName = "github"
	// githubPageSize is the page size used for milestone and issue listings.
	githubPageSize = 100
	// githubRequestTimeout bounds each API call.
	githubRequestTimeout = 30 * time.Second
)

// githubTypeLabels maps GitHub type labels to the tracker category names the
// changelog table understands.
var githubTypeLabels = map[string]string{
	"bug":         "Bug",
	"test":        "Test",
	"enhancement": "Improvement",
	"feature":     "New Feature",
	"task":        "Task",
	"wish":        "Wish",
}

// GitHub represents the GitHub tracker implementation, mapping milestones to
// versions and milestone issues to fix-version searches.
type GitHub struct {
	client  *github.Client
	owner   string
	repo    string
	project string
	logger  logger.Logger
}

// GitHubParams contains parameters for creating a GitHub tracker.
type GitHubParams struct {
	Owner   string
	Repo    string
	Project string
	Logger  logger.Logger
}

// NewGitHub creates a new GitHub tracker instance. Authentication is taken
// from the GITHUB_TOKEN environment variable when available.
func NewGitHub(params GitHubParams) *GitHub {
	var client *github.Client
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &GitHub{
		client:  client,
		owner:   params.Owner,
		repo:    params.Repo,
		project: params.Project,
		logger:  log,
	}
}

// Name returns the name of the tracker implementation.
func (g *GitHub) Name() string {
	return GitHubName
}

// ProjectVersions fetches all versions recorded for a project. Milestone
// titles are the version names; a closed milestone is a released version.
func (g *GitHub) ProjectVersions(_ string) ([]*version.Version, error) {
	ctx, cancel := context.WithTimeout(context.Background(), githubRequestTimeout)
	defer cancel()

	var versions []*version.Version
	opts := &github.MilestoneListOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: githubPageSize},
	}
	for {
		milestones, response, err := g.client.Issues.ListMilestones(ctx, g.owner, g.repo, opts)
		if err != nil {
			return nil, g.handleError(err, response)
		}

		for _, milestone := range milestones {
			parsed, err := version.Parse(milestone.GetTitle())
			if err != nil {
				g.logger.Warnf("skipping unparseable milestone %q", milestone.GetTitle())
				continue
			}

			released := milestone.GetState() == "closed"
			var releaseDate *time.Time
			if closedAt := milestone.GetClosedAt(); released && !closedAt.IsZero() {
				date := closedAt.Time
				releaseDate = &date
			}

			versions = append(versions, parsed.WithRelease(released, releaseDate))
		}

		if response.NextPage == 0 {
			break
		}
		opts.Page = response.NextPage
	}

	return versions, nil
}

// ProjectVersion fetches a single version of a project by name.
func (g *GitHub) ProjectVersion(project, name string) (*version.Version, error) {
	versions, err := g.ProjectVersions(project)
	if err != nil {
		return nil, err
	}

	for _, v := range versions {
		if v.String() == name {
			return v, nil
		}
	}

	return nil, fmt.Errorf("%w: %s %s", ErrVersionNotFound, project, name)
}

// SearchIssues fetches the issues of the milestone named after fixVersion.
func (g *GitHub) SearchIssues(project, fixVersion string) ([]issue.Issue, error) {
	milestoneNumber, err := g.milestoneNumber(fixVersion)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), githubRequestTimeout)
	defer cancel()

	var issues []issue.Issue
	opts := &github.IssueListByRepoOptions{
		Milestone:   strconv.Itoa(milestoneNumber),
		State:       "all",
		ListOptions: github.ListOptions{PerPage: githubPageSize},
	}
	for {
		records, response, err := g.client.Issues.ListByRepo(ctx, g.owner, g.repo, opts)
		if err != nil {
			return nil, g.handleError(err, response)
		}

		for _, record := range records {
			if record.IsPullRequest() {
				continue
			}
			issues = append(issues, g.toIssue(project, record))
		}

		if response.NextPage == 0 {
			break
		}
		opts.Page = response.NextPage
	}

	return issues, nil
}

// Issue fetches a single issue by key.
func (g *GitHub) Issue(key string) (issue.Issue, error) {
	project, number, err := issue.ParseKey(key)
	if err != nil {
		return issue.Issue{}, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), githubRequestTimeout)
	defer cancel()

	record, response, err := g.client.Issues.Get(ctx, g.owner, g.repo, number)
	if err != nil {
		return issue.Issue{}, g.handleError(err, response)
	}

	return g.toIssue(project, record), nil
}

// milestoneNumber resolves a milestone number from its title.
func (g *GitHub) milestoneNumber(title string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), githubRequestTimeout)
	defer cancel()

	opts := &github.MilestoneListOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: githubPageSize},
	}
	for {
		milestones, response, err := g.client.Issues.ListMilestones(ctx, g.owner, g.repo, opts)
		if err != nil {
			return 0, g.handleError(err, response)
		}

		for _, milestone := range milestones {
			if milestone.GetTitle() == title {
				return milestone.GetNumber(), nil
			}
		}

		if response.NextPage == 0 {
			break
		}
		opts.Page = response.NextPage
	}

	return 0, fmt.Errorf("%w: no milestone titled %q", ErrVersionNotFound, title)
}

// toIssue converts a GitHub issue record into the typed issue value. The
// issue type is derived from the repository's "Type: <name>" labels.
func (g *GitHub) toIssue(project string, record *github.Issue) issue.Issue {
	issueType := "Task"
	for _, label := range record.Labels {
		name := strings.TrimSpace(strings.TrimPrefix(label.GetName(), "Type:"))
		if name == label.GetName() {
			continue
		}
		if mapped, exists := githubTypeLabels[strings.ToLower(name)]; exists {
			issueType = mapped
		} else {
			issueType = name
		}
		break
	}

	return issue.Issue{
		Key:     fmt.Sprintf("%s-%d", project, record.GetNumber()),
		Type:    issueType,
		Summary: record.GetTitle(),
	}
}

// handleError maps GitHub API errors to tracker errors.
func (g *GitHub) handleError(err error, response *github.Response) error {
	if response != nil {
		switch response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", ErrIssueNotFound, err)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			if response.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
		}
	}
	return fmt.Errorf("tracker request failed: %w", err)
}

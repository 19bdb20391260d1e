package tracker

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/lerenn/release-manager/pkg/issue"
	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/lerenn/release-manager/pkg/version"
)

const (
	// JiraName is the name identifier for the Jira tracker.
	JiraName = "jira"
	// jiraDateFormat is the date layout used by Jira version records.
	jiraDateFormat = "2006-01-02"
	// jiraPageSize is the page size used for issue searches.
	jiraPageSize = 100
)

// Jira represents the Jira tracker implementation, talking to the REST v2 API.
type Jira struct {
	baseURL    string
	httpClient *http.Client
	username   string
	token      string
	logger     logger.Logger
}

// JiraParams contains parameters for creating a Jira tracker.
type JiraParams struct {
	BaseURL string
	Logger  logger.Logger
}

// NewJira creates a new Jira tracker instance. Credentials are read from the
// JIRA_USERNAME and JIRA_TOKEN environment variables; without them requests
// are sent anonymously.
func NewJira(params JiraParams) *Jira {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &Jira{
		baseURL:    params.BaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		username:   os.Getenv("JIRA_USERNAME"),
		token:      os.Getenv("JIRA_TOKEN"),
		logger:     log,
	}
}

// Name returns the name of the tracker implementation.
func (j *Jira) Name() string {
	return JiraName
}

// jiraVersion is a version record of the Jira REST API.
type jiraVersion struct {
	Name        string `json:"name"`
	Released    bool   `json:"released"`
	ReleaseDate string `json:"releaseDate"`
}

// jiraIssue is an issue record of the Jira REST API.
type jiraIssue struct {
	Key    string `json:"key"`
	Fields struct {
		Summary   string `json:"summary"`
		IssueType struct {
			Name string `json:"name"`
		} `json:"issuetype"`
	} `json:"fields"`
}

// jiraSearchResult is a page of the Jira search API.
type jiraSearchResult struct {
	StartAt int         `json:"startAt"`
	Total   int         `json:"total"`
	Issues  []jiraIssue `json:"issues"`
}

// ProjectVersions fetches all versions recorded for a project.
func (j *Jira) ProjectVersions(project string) ([]*version.Version, error) {
	var records []jiraVersion
	path := fmt.Sprintf("/rest/api/2/project/%s/versions", url.PathEscape(project))
	if err := j.get(path, nil, &records); err != nil {
		return nil, err
	}

	versions := make([]*version.Version, 0, len(records))
	for _, record := range records {
		parsed, err := version.Parse(record.Name)
		if err != nil {
			// Tracker hygiene varies; a bad version name must not break
			// navigation for the good ones.
			j.logger.Warnf("skipping unparseable tracker version %q", record.Name)
			continue
		}

		var releaseDate *time.Time
		if record.ReleaseDate != "" {
			date, err := time.Parse(jiraDateFormat, record.ReleaseDate)
			if err != nil {
				return nil, fmt.Errorf("failed to parse release date %q: %w", record.ReleaseDate, err)
			}
			releaseDate = &date
		}

		versions = append(versions, parsed.WithRelease(record.Released, releaseDate))
	}

	return versions, nil
}

// ProjectVersion fetches a single version of a project by name.
func (j *Jira) ProjectVersion(project, name string) (*version.Version, error) {
	versions, err := j.ProjectVersions(project)
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

// SearchIssues fetches the issues of a project with the given fix version.
func (j *Jira) SearchIssues(project, fixVersion string) ([]issue.Issue, error) {
	jql := fmt.Sprintf("project = %s AND fixVersion = %q", project, fixVersion)

	var issues []issue.Issue
	startAt := 0
	for {
		query := url.Values{
			"jql":        []string{jql},
			"fields":     []string{"summary,issuetype"},
			"startAt":    []string{strconv.Itoa(startAt)},
			"maxResults": []string{strconv.Itoa(jiraPageSize)},
		}

		var page jiraSearchResult
		if err := j.get("/rest/api/2/search", query, &page); err != nil {
			return nil, err
		}

		for _, record := range page.Issues {
			issues = append(issues, toIssue(record))
		}

		startAt += len(page.Issues)
		if startAt >= page.Total || len(page.Issues) == 0 {
			break
		}
	}

	return issues, nil
}

// Issue fetches a single issue by key.
func (j *Jira) Issue(key string) (issue.Issue, error) {
	query := url.Values{"fields": []string{"summary,issuetype"}}
	path := fmt.Sprintf("/rest/api/2/issue/%s", url.PathEscape(key))

	var record jiraIssue
	if err := j.get(path, query, &record); err != nil {
		return issue.Issue{}, err
	}

	return toIssue(record), nil
}

// toIssue converts a Jira issue record into the typed issue value.
func toIssue(record jiraIssue) issue.Issue {
	return issue.Issue{
		Key:     record.Key,
		Type:    record.Fields.IssueType.Name,
		Summary: record.Fields.Summary,
	}
}

// get performs a GET request against the Jira REST API and decodes the JSON
// response into result.
func (j *Jira) get(path string, query url.Values, result any) error {
	requestURL := j.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	request, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build tracker request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if j.username != "" {
		request.SetBasicAuth(j.username, j.token)
	}

	response, err := j.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("tracker request failed: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	if err := j.checkStatus(response); err != nil {
		return err
	}

	if err := json.NewDecoder(response.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode tracker response: %w", err)
	}

	return nil
}

// checkStatus maps error status codes to tracker errors.
func (j *Jira) checkStatus(response *http.Response) error {
	switch {
	case response.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrIssueNotFound, response.Request.URL.Path)
	case response.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: check JIRA_USERNAME and JIRA_TOKEN environment variables", ErrUnauthorized)
	case response.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: Jira API rate limit exceeded", ErrRateLimited)
	case response.StatusCode >= 400:
		return fmt.Errorf("tracker request failed with status %d", response.StatusCode)
	}
	return nil
}

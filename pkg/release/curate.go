package release

import (
	"fmt"
	"io"
	"text/template"

	"github.com/lerenn/release-manager/pkg/commit"
	"github.com/lerenn/release-manager/pkg/issue"
	"github.com/lerenn/release-manager/pkg/version"
)

// CuratedCommit pairs a commit with the tracker issue it references.
type CuratedCommit struct {
	Issue  issue.Issue
	Commit commit.Commit
}

// Curation is the partition of a release's commits against its tracker
// issues. It is immutable once returned.
type Curation struct {
	// Version identifies the curated release.
	Version *version.Version
	// Within are commits whose issue belongs to this release.
	Within []CuratedCommit
	// Outside are commits whose issue belongs to another release window.
	Outside []CuratedCommit
	// NoIssue are commits with no parseable issue key.
	NoIssue []commit.Commit
	// Secondary are commits referencing the companion project's tracker.
	Secondary []CuratedCommit
	// NoPatch are tracker issues of this release with no matching commit.
	NoPatch []issue.Issue
	// Remote is the origin URL used to render commit links. Empty when the
	// repository has no origin remote.
	Remote string
}

// CommitURL returns the web URL of a curated commit on the origin remote.
func (c *Curation) CommitURL(cm commit.Commit) string {
	return cm.URL(c.Remote)
}

// Curate partitions the release's commits against its tracker issues.
func (r *Release) Curate() (*Curation, error) {
	issues, err := r.Issues()
	if err != nil {
		return nil, err
	}

	commits, err := r.Commits()
	if err != nil {
		return nil, err
	}

	curation := &Curation{Version: r.version}

	remote, err := r.git.GetRemoteURL(r.cfg.RepositoryPath, "origin")
	if err != nil {
		r.logger.Warnf("no origin remote, commit links omitted: %v", err)
	} else {
		curation.Remote = remote
	}

	within := make(map[string]bool, len(issues))

	for _, c := range commits {
		tracked, inRelease := issues[c.Issue()]
		switch {
		case c.Issue() == "":
			curation.NoIssue = append(curation.NoIssue, c)
		case inRelease:
			within[c.Issue()] = true
			curation.Within = append(curation.Within, CuratedCommit{Issue: tracked, Commit: c})
		case c.Project() == r.cfg.SecondaryProject:
			fetched, err := r.tracker.Issue(c.Issue())
			if err != nil {
				return nil, fmt.Errorf("failed to fetch issue %s: %w", c.Issue(), err)
			}
			curation.Secondary = append(curation.Secondary, CuratedCommit{Issue: fetched, Commit: c})
		default:
			fetched, err := r.tracker.Issue(c.Issue())
			if err != nil {
				return nil, fmt.Errorf("failed to fetch issue %s: %w", c.Issue(), err)
			}
			curation.Outside = append(curation.Outside, CuratedCommit{Issue: fetched, Commit: c})
		}
	}

	for key, i := range issues {
		if !within[key] {
			curation.NoPatch = append(curation.NoPatch, i)
		}
	}
	issue.Sort(curation.NoPatch)

	return curation, nil
}

// curationTemplate renders the curation summary for the console.
var curationTemplate = template.Must(template.New("curation").Parse(
	`Release {{.Version}}

Within the release ({{len .Within}}):
{{- range .Within}}
  {{.Issue.Key}} {{.Commit.Summary}}
{{- end}}

Outside the release ({{len .Outside}}):
{{- range .Outside}}
  {{.Issue.Key}} {{.Commit.Summary}}
{{- end}}

Without issue key ({{len .NoIssue}}):
{{- range .NoIssue}}
  {{.Hash}} {{.Summary}}{{if $.Remote}} {{$.CommitURL .}}{{end}}
{{- end}}

Secondary project ({{len .Secondary}}):
{{- range .Secondary}}
  {{.Issue.Key}} {{.Commit.Summary}}
{{- end}}

Without patch ({{len .NoPatch}}):
{{- range .NoPatch}}
  {{.Key}} {{.Summary}}
{{- end}}
`))

// Render writes a human-readable curation summary.
func (c *Curation) Render(w io.Writer) error {
	return curationTemplate.Execute(w, c)
}

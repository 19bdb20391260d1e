package report

import (
	"fmt"
	"io"
)

// badgeTemplates maps a CI provider name to its status badge markdown. The
// placeholders are the repository slug and the task branch.
var badgeTemplates = map[string]string{
	"github":   "[![GitHub Actions](https://github.com/%[1]s/workflows/Crossbow/badge.svg?branch=%[2]s)](https://github.com/%[1]s/actions?query=branch:%[2]s)",
	"azure":    "[![Azure](https://dev.azure.com/%[1]s/_apis/build/status/%[2]s)](https://dev.azure.com/%[1]s/_build/latest?branchName=%[2]s)",
	"travis":   "[![TravisCI](https://img.shields.io/travis/%[1]s/%[2]s.svg)](https://travis-ci.com/%[1]s/branches)",
	"circle":   "[![CircleCI](https://img.shields.io/circleci/build/github/%[1]s/%[2]s.svg)](https://circleci.com/gh/%[1]s/tree/%[2]s)",
	"appveyor": "[![Appveyor](https://img.shields.io/appveyor/ci/%[1]s/%[2]s.svg)](https://ci.appveyor.com/project/%[1]s/history)",
	"drone":    "[![Drone](https://img.shields.io/drone/build/%[1]s/%[2]s.svg)](https://cloud.drone.io/%[1]s)",
}

// CommentReporter renders a job's status as a PR-comment markdown table.
type CommentReporter struct {
	// Repo is the repository slug (owner/name) the badges point at.
	Repo string
}

// NewCommentReporter creates a new comment reporter for the repository slug.
func NewCommentReporter(repo string) *CommentReporter {
	return &CommentReporter{
		Repo: repo,
	}
}

// Render writes the markdown table, optionally filtered by glob patterns
// against task names. An unsupported provider renders an inline marker
// instead of failing.
func (r *CommentReporter) Render(w io.Writer, job Job, globs ...string) error {
	tasks, err := FilterTasks(job, globs)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Revision: %s\n\n|Task|Status|\n|----|------|\n", job.Name); err != nil {
		return err
	}

	for _, task := range tasks {
		badge := r.badge(task)
		if _, err := fmt.Fprintf(w, "|%s|%s|\n", task.Name, badge); err != nil {
			return err
		}
	}

	return nil
}

// badge renders the provider badge for a task, degrading to an inline marker
// for unsupported providers.
func (r *CommentReporter) badge(task Task) string {
	template, supported := badgeTemplates[task.Provider]
	if !supported {
		return fmt.Sprintf("unsupported CI provider `%s`", task.Provider)
	}
	return fmt.Sprintf(template, r.Repo, task.Branch)
}

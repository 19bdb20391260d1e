package commit

import (
	"strings"

	"github.com/lerenn/release-manager/pkg/gitrepo"
	"github.com/lerenn/release-manager/pkg/logger"
)

// Commit decorates a raw version-control commit with its parsed title. The
// title fields are exposed through explicit forwarding accessors.
type Commit struct {
	info  gitrepo.CommitInfo
	title Title
}

// New wraps a raw commit, parsing its headline.
func New(info gitrepo.CommitInfo, log logger.Logger) Commit {
	return Commit{
		info:  info,
		title: ParseTitle(info.Subject, log),
	}
}

// Info returns the underlying raw commit.
func (c Commit) Info() gitrepo.CommitInfo { return c.info }

// Title returns the parsed headline.
func (c Commit) Title() Title { return c.title }

// Hash returns the commit hash.
func (c Commit) Hash() string { return c.info.Hash }

// Issue returns the issue key parsed from the headline, empty if absent.
func (c Commit) Issue() string { return c.title.Issue }

// Project returns the tracker project key parsed from the headline.
func (c Commit) Project() string { return c.title.Project }

// Components returns the bracketed component tags from the headline.
func (c Commit) Components() []string { return c.title.Components }

// Summary returns the headline summary.
func (c Commit) Summary() string { return c.title.Summary }

// URL computes the web address of the commit from the remote URL.
func (c Commit) URL(remoteURL string) string {
	base := strings.TrimSuffix(remoteURL, ".git")
	return base + "/commit/" + c.info.Hash
}

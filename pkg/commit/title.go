// Package commit provides commit headline parsing and the commit wrapper used
// by release curation.
package commit

import (
	"regexp"
	"strings"

	"github.com/lerenn/release-manager/pkg/logger"
)

// titleRegexp matches headlines of the form
// "<PROJECT>-<NUMBER>: [component][component] summary". The issue prefix is
// optional so component tags survive on headlines without one. The component
// sub-pattern matches bracket groups with no nested brackets.
var titleRegexp = regexp.MustCompile(
	`^\s*(?:(?P<project>[A-Z][A-Z0-9]*)-(?P<number>\d+)[:.]?\s*)?(?P<components>(?:\[[^\[\]]*\]\s*)*)(?P<summary>.*)$`,
)

// componentRegexp extracts the individual bracket tags from the components group.
var componentRegexp = regexp.MustCompile(`\[([^\[\]]*)\]`)

// Title holds the structured fields extracted from a commit headline.
// Equality is structural, including component order.
type Title struct {
	// Summary is the headline text after the issue and component prefix.
	Summary string
	// Project is the tracker project key, empty if no issue prefix matched.
	Project string
	// Issue is the full issue key (e.g. "ARROW-123"), empty if absent.
	Issue string
	// Components are the bracketed tags in insertion order, duplicates kept.
	Components []string
}

// ParseTitle extracts the structured fields from a commit headline. Parsing
// never fails: a headline without an issue prefix still yields its component
// tags and summary, with a diagnostic warning.
func ParseTitle(headline string, log logger.Logger) Title {
	// The prefix and component groups are optional and the summary matches
	// anything, so the pattern cannot fail to match.
	match := titleRegexp.FindStringSubmatch(headline)

	groups := make(map[string]string, len(match))
	for i, name := range titleRegexp.SubexpNames() {
		if name != "" {
			groups[name] = match[i]
		}
	}

	var components []string
	for _, tag := range componentRegexp.FindAllStringSubmatch(groups["components"], -1) {
		components = append(components, tag[1])
	}

	title := Title{
		Summary:    strings.TrimSpace(groups["summary"]),
		Components: components,
	}
	if groups["project"] == "" {
		log.Warnf("no issue key in commit title: %q", headline)
		return title
	}

	title.Project = groups["project"]
	title.Issue = groups["project"] + "-" + groups["number"]
	return title
}

// String renders the title back to headline form. Parsing the result yields
// an equal Title when the original had an issue prefix.
func (t Title) String() string {
	var b strings.Builder
	if t.Issue != "" {
		b.WriteString(t.Issue)
		b.WriteString(": ")
	}
	for _, component := range t.Components {
		b.WriteString("[")
		b.WriteString(component)
		b.WriteString("]")
	}
	if len(t.Components) > 0 && t.Summary != "" {
		b.WriteString(" ")
	}
	b.WriteString(t.Summary)
	return b.String()
}

// Equal reports whether two titles carry identical summary, project, issue
// and component sequence.
func (t Title) Equal(other Title) bool {
	if t.Summary != other.Summary || t.Project != other.Project || t.Issue != other.Issue {
		return false
	}
	if len(t.Components) != len(other.Components) {
		return false
	}
	for i := range t.Components {
		if t.Components[i] != other.Components[i] {
			return false
		}
	}
	return true
}

package release

import (
	"fmt"
	"io"
	"text/template"

	"github.com/lerenn/release-manager/pkg/issue"
	"github.com/lerenn/release-manager/pkg/version"
)

// Changelog section titles.
const (
	sectionBugFixes    = "Bug Fixes"
	sectionNewFeatures = "New Features and Improvements"
)

// changelogCategories maps tracker issue types to changelog sections. The
// table is exhaustive: an unmapped type is a data problem that must surface
// immediately.
var changelogCategories = map[string]string{
	"Bug":         sectionBugFixes,
	"Test":        sectionBugFixes,
	"Improvement": sectionNewFeatures,
	"New Feature": sectionNewFeatures,
	"Sub-task":    sectionNewFeatures,
	"Task":        sectionNewFeatures,
	"Wish":        sectionNewFeatures,
}

// changelogSectionOrder fixes the display order of the sections.
var changelogSectionOrder = []string{sectionBugFixes, sectionNewFeatures}

// Section is one changelog category with its issues, sorted ascending by
// (project, number).
type Section struct {
	Title  string
	Issues []issue.Issue
}

// Changelog is the categorized issue listing of a release. It is immutable
// once returned.
type Changelog struct {
	Version  *version.Version
	Sections []Section
}

// Changelog pools the issues resolved by curation (within, no-patch and
// secondary-project) and groups them into the fixed display categories.
func (r *Release) Changelog() (*Changelog, error) {
	curation, err := r.Curate()
	if err != nil {
		return nil, err
	}

	pooled := make([]issue.Issue, 0, len(curation.Within)+len(curation.NoPatch)+len(curation.Secondary))
	for _, curated := range curation.Within {
		pooled = append(pooled, curated.Issue)
	}
	pooled = append(pooled, curation.NoPatch...)
	for _, curated := range curation.Secondary {
		pooled = append(pooled, curated.Issue)
	}

	grouped := make(map[string][]issue.Issue)
	for _, i := range pooled {
		category, known := changelogCategories[i.Type]
		if !known {
			return nil, fmt.Errorf("%w: %q (issue %s)", ErrUnknownIssueType, i.Type, i.Key)
		}
		grouped[category] = append(grouped[category], i)
	}

	changelog := &Changelog{Version: r.version}
	for _, title := range changelogSectionOrder {
		issues := grouped[title]
		if len(issues) == 0 {
			continue
		}
		issue.Sort(issues)
		changelog.Sections = append(changelog.Sections, Section{
			Title:  title,
			Issues: issues,
		})
	}

	return changelog, nil
}

// changelogTemplate renders the changelog as markdown.
var changelogTemplate = template.Must(template.New("changelog").Parse(
	`# {{.Version}}
{{range .Sections}}
## {{.Title}}
{{range .Issues}}
* {{.Key}} - {{.Summary}}
{{- end}}
{{end}}`))

// Render writes the changelog as markdown.
func (c *Changelog) Render(w io.Writer) error {
	return changelogTemplate.Execute(w, c)
}

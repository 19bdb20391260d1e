//go:build unit

package commit

import (
	"strings"
	"testing"

	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestParseTitle(t *testing.T) {
	title := ParseTitle("ARROW-123: [C++][Python] Fix memory leak", logger.NewNoopLogger())

	assert.Equal(t, "ARROW-123", title.Issue)
	assert.Equal(t, "ARROW", title.Project)
	assert.Equal(t, []string{"C++", "Python"}, title.Components)
	assert.Equal(t, "Fix memory leak", title.Summary)
}

func TestParseTitle_ComponentOrderAndDuplicates(t *testing.T) {
	title := ParseTitle("ARROW-1: [B][A][B] text", logger.NewNoopLogger())

	assert.Equal(t, []string{"B", "A", "B"}, title.Components)
	assert.Equal(t, "text", title.Summary)
}

func TestParseTitle_NoComponents(t *testing.T) {
	title := ParseTitle("PARQUET-5: Support nested schemas", logger.NewNoopLogger())

	assert.Equal(t, "PARQUET-5", title.Issue)
	assert.Equal(t, "PARQUET", title.Project)
	assert.Empty(t, title.Components)
	assert.Equal(t, "Support nested schemas", title.Summary)
}

func TestParseTitle_NoIssuePrefix(t *testing.T) {
	var diagnostics strings.Builder
	headline := "Fix the flaky integration test"

	title := ParseTitle(headline, logger.NewWriterLogger(&diagnostics))

	assert.Empty(t, title.Issue)
	assert.Empty(t, title.Project)
	assert.Empty(t, title.Components)
	assert.Equal(t, headline, title.Summary)
	assert.Contains(t, diagnostics.String(), "no issue key in commit title")
}

func TestParseTitle_SingleCharacterProject(t *testing.T) {
	title := ParseTitle("A-1: short key", logger.NewNoopLogger())

	assert.Equal(t, "A-1", title.Issue)
	assert.Equal(t, "A", title.Project)
	assert.Equal(t, "short key", title.Summary)
}

func TestParseTitle_ComponentsWithoutIssuePrefix(t *testing.T) {
	var diagnostics strings.Builder

	title := ParseTitle("[C++][Python] tidy the build scripts", logger.NewWriterLogger(&diagnostics))

	assert.Empty(t, title.Issue)
	assert.Empty(t, title.Project)
	assert.Equal(t, []string{"C++", "Python"}, title.Components)
	assert.Equal(t, "tidy the build scripts", title.Summary)
	assert.Contains(t, diagnostics.String(), "no issue key in commit title")
}

func TestParseTitle_RoundTrip(t *testing.T) {
	original := ParseTitle("ARROW-42: [Go][CI] Enable race detector", logger.NewNoopLogger())

	reparsed := ParseTitle(original.String(), logger.NewNoopLogger())

	assert.True(t, original.Equal(reparsed))
}

func TestTitle_Equal(t *testing.T) {
	left := Title{Summary: "text", Project: "ARROW", Issue: "ARROW-1", Components: []string{"A", "B"}}
	right := Title{Summary: "text", Project: "ARROW", Issue: "ARROW-1", Components: []string{"A", "B"}}

	assert.True(t, left.Equal(right))
	assert.Equal(t, left.String(), right.String())
}

func TestTitle_Equal_ComponentOrderMatters(t *testing.T) {
	left := Title{Summary: "text", Project: "ARROW", Issue: "ARROW-1", Components: []string{"A", "B"}}
	right := Title{Summary: "text", Project: "ARROW", Issue: "ARROW-1", Components: []string{"B", "A"}}

	assert.False(t, left.Equal(right))
}

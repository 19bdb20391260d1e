//go:build unit

package gitrepo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLog(t *testing.T) {
	output := "abc\x1fARROW-1: [C++] Fix\x1fDev One\x1f2025-03-01T10:00:00+01:00\n" +
		"def\x1fplain subject\x1fDev Two\x1f2025-02-28T09:30:00Z\n"

	commits, err := parseLog(output)

	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "abc", commits[0].Hash)
	assert.Equal(t, "ARROW-1: [C++] Fix", commits[0].Subject)
	assert.Equal(t, "Dev One", commits[0].Author)
	assert.Equal(t, 2025, commits[0].Date.Year())
	assert.Equal(t, "def", commits[1].Hash)
	assert.True(t, commits[0].Date.After(commits[1].Date))
}

func TestParseLog_Empty(t *testing.T) {
	commits, err := parseLog("\n")

	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestParseLog_MalformedLine(t *testing.T) {
	_, err := parseLog("abc\x1fonly-two-fields\n")

	assert.Error(t, err)
}

func TestParseLog_BadDate(t *testing.T) {
	_, err := parseLog("abc\x1fsubject\x1fauthor\x1fnot-a-date\n")

	assert.Error(t, err)
}

func TestParseLog_DateParsing(t *testing.T) {
	commits, err := parseLog("abc\x1fs\x1fa\x1f2025-01-02T03:04:05Z\n")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), commits[0].Date)
}

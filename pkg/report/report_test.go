//go:build unit

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJob() Job {
	return Job{
		Name: "build-abc123",
		Tasks: map[string]Task{
			"wheel-linux": {
				Name:     "wheel-linux",
				Provider: "github",
				Branch:   "build-abc123-wheel-linux",
				State:    StateSuccess,
				Artifacts: []Artifact{
					{Pattern: "*.whl", UploadedURL: "https://example.com/a.whl"},
					{Pattern: "*.tar.gz"},
				},
			},
			"wheel-macos": {
				Name:     "wheel-macos",
				Provider: "travis",
				Branch:   "build-abc123-wheel-macos",
				State:    StateFailure,
			},
			"conda-linux": {
				Name:     "conda-linux",
				Provider: "azure",
				Branch:   "build-abc123-conda-linux",
				State:    StatePending,
			},
		},
	}
}

func TestTask_UploadedArtifacts(t *testing.T) {
	task := testJob().Tasks["wheel-linux"]

	assert.Equal(t, 2, len(task.Artifacts))
	assert.Equal(t, 1, task.UploadedArtifacts())
	assert.True(t, task.Artifacts[0].Uploaded())
	assert.False(t, task.Artifacts[1].Uploaded())
}

func TestJob_SortedTaskNames(t *testing.T) {
	names := testJob().SortedTaskNames()

	assert.Equal(t, []string{"conda-linux", "wheel-linux", "wheel-macos"}, names)
}

func TestFilterTasks(t *testing.T) {
	job := testJob()

	all, err := FilterTasks(job, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	wheels, err := FilterTasks(job, []string{"wheel-*"})
	require.NoError(t, err)
	require.Len(t, wheels, 2)
	assert.Equal(t, "wheel-linux", wheels[0].Name)
	assert.Equal(t, "wheel-macos", wheels[1].Name)

	none, err := FilterTasks(job, []string{"rpm-*"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFilterTasks_BadPattern(t *testing.T) {
	_, err := FilterTasks(testJob(), []string{"[unclosed"})

	assert.Error(t, err)
}

func TestConsoleReporter_Render(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewConsoleReporter().Render(&buf, testJob()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "TASK")
	assert.Contains(t, lines[0], "ARTIFACTS")
	assert.Contains(t, lines[1], "conda-linux")
	assert.Contains(t, lines[1], "pending")
	assert.Contains(t, lines[2], "wheel-linux")
	assert.Contains(t, lines[2], "1/2")
	assert.Contains(t, lines[3], "wheel-macos")
	assert.Contains(t, lines[3], "failure")
}

func TestConsoleReporter_RenderFiltered(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewConsoleReporter().Render(&buf, testJob(), "conda-*"))

	assert.Contains(t, buf.String(), "conda-linux")
	assert.NotContains(t, buf.String(), "wheel-linux")
}

func TestEmailReporter_Render_GroupsByStateInOrder(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewEmailReporter().Render(&buf, testJob()))

	output := buf.String()
	assert.Contains(t, output, "CI report for job build-abc123")

	failure := strings.Index(output, "failure (1):")
	pending := strings.Index(output, "pending (1):")
	success := strings.Index(output, "success (1):")
	require.GreaterOrEqual(t, failure, 0)
	require.GreaterOrEqual(t, pending, 0)
	require.GreaterOrEqual(t, success, 0)
	assert.Less(t, failure, pending)
	assert.Less(t, pending, success)

	// No tasks errored, so the error group is skipped entirely.
	assert.NotContains(t, output, "error (")

	assert.Contains(t, output, "wheel-linux [github] artifacts 1/2")
}

func TestCommentReporter_Render(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewCommentReporter("apache/arrow").Render(&buf, testJob()))

	output := buf.String()
	assert.Contains(t, output, "Revision: build-abc123")
	assert.Contains(t, output, "|Task|Status|")
	assert.Contains(t, output, "|wheel-linux|")
	assert.Contains(t, output, "https://github.com/apache/arrow/workflows/Crossbow/badge.svg?branch=build-abc123-wheel-linux")
	assert.Contains(t, output, "img.shields.io/travis/apache/arrow/build-abc123-wheel-macos.svg")
	assert.Contains(t, output, "dev.azure.com/apache/arrow")
}

func TestCommentReporter_UnsupportedProvider(t *testing.T) {
	job := Job{
		Name: "build-abc123",
		Tasks: map[string]Task{
			"exotic": {Name: "exotic", Provider: "buildbot", Branch: "b", State: StatePending},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewCommentReporter("apache/arrow").Render(&buf, job))

	assert.Contains(t, buf.String(), "unsupported CI provider `buildbot`")
}

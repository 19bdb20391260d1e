//go:build unit

package commit

import (
	"testing"

	"github.com/lerenn/release-manager/pkg/gitrepo"
	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestCommit_Forwarding(t *testing.T) {
	info := gitrepo.CommitInfo{
		Hash:    "abc123",
		Subject: "ARROW-7: [Java] Fix build",
		Author:  "Dev",
	}

	c := New(info, logger.NewNoopLogger())

	assert.Equal(t, "abc123", c.Hash())
	assert.Equal(t, "ARROW-7", c.Issue())
	assert.Equal(t, "ARROW", c.Project())
	assert.Equal(t, []string{"Java"}, c.Components())
	assert.Equal(t, "Fix build", c.Summary())
	assert.Equal(t, info, c.Info())
}

func TestCommit_URL(t *testing.T) {
	c := New(gitrepo.CommitInfo{Hash: "abc123", Subject: "ARROW-1: fix"}, logger.NewNoopLogger())

	assert.Equal(t,
		"https://github.com/apache/arrow/commit/abc123",
		c.URL("https://github.com/apache/arrow.git"))
}

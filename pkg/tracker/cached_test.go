//go:build unit

package tracker

import (
	"path/filepath"
	"testing"

	"github.com/lerenn/release-manager/pkg/cache"
	"github.com/lerenn/release-manager/pkg/fs"
	"github.com/lerenn/release-manager/pkg/issue"
	"github.com/lerenn/release-manager/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCache(t *testing.T) (cache.Cache, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.json")
	return cache.NewFileCache(fs.NewFS(), path), path
}

func TestCached_Issue_HitsClientOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockClient(ctrl)
	mockClient.EXPECT().Name().Return(JiraName).AnyTimes()
	mockClient.EXPECT().Issue("ARROW-1").
		Return(issue.Issue{Key: "ARROW-1", Type: "Bug", Summary: "Fix"}, nil).
		Times(1)

	fileCache, _ := newTestCache(t)
	cached := NewCached(mockClient, fileCache)

	first, err := cached.Issue("ARROW-1")
	require.NoError(t, err)

	second, err := cached.Issue("ARROW-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCached_Issue_ReturnsPersistedValueOverLiveAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "cache.json")
	fileCache := cache.NewFileCache(fs.NewFS(), path)

	firstClient := NewMockClient(ctrl)
	firstClient.EXPECT().Name().Return(JiraName).AnyTimes()
	firstClient.EXPECT().Issue("ARROW-1").
		Return(issue.Issue{Key: "ARROW-1", Type: "Bug", Summary: "original"}, nil).
		Times(1)

	original, err := NewCached(firstClient, fileCache).Issue("ARROW-1")
	require.NoError(t, err)

	// The live answer now differs; the cached value must win and the client
	// must not be queried again.
	secondClient := NewMockClient(ctrl)
	secondClient.EXPECT().Name().Return(JiraName).AnyTimes()

	cached, err := NewCached(secondClient, cache.NewFileCache(fs.NewFS(), path)).Issue("ARROW-1")
	require.NoError(t, err)

	assert.Equal(t, original, cached)
	assert.Equal(t, "original", cached.Summary)
}

func TestCached_ProjectVersions_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockClient(ctrl)
	mockClient.EXPECT().Name().Return(JiraName).AnyTimes()
	mockClient.EXPECT().ProjectVersions("ARROW").
		Return([]*version.Version{
			version.MustParse("2.0.0").WithRelease(true, nil),
			version.MustParse("3.0.0"),
		}, nil).
		Times(1)

	fileCache, _ := newTestCache(t)
	cached := NewCached(mockClient, fileCache)

	first, err := cached.ProjectVersions("ARROW")
	require.NoError(t, err)

	second, err := cached.ProjectVersions("ARROW")
	require.NoError(t, err)

	require.Len(t, second, 2)
	assert.True(t, first[0].Equal(second[0]))
	assert.True(t, second[0].Released())
	assert.False(t, second[1].Released())
}

func TestCached_SearchIssues_KeyedByArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockClient(ctrl)
	mockClient.EXPECT().Name().Return(JiraName).AnyTimes()
	mockClient.EXPECT().SearchIssues("ARROW", "2.0.0").
		Return([]issue.Issue{{Key: "ARROW-1"}}, nil).
		Times(1)
	mockClient.EXPECT().SearchIssues("ARROW", "2.1.0").
		Return([]issue.Issue{{Key: "ARROW-2"}}, nil).
		Times(1)

	fileCache, _ := newTestCache(t)
	cached := NewCached(mockClient, fileCache)

	first, err := cached.SearchIssues("ARROW", "2.0.0")
	require.NoError(t, err)
	second, err := cached.SearchIssues("ARROW", "2.1.0")
	require.NoError(t, err)

	assert.Equal(t, "ARROW-1", first[0].Key)
	assert.Equal(t, "ARROW-2", second[0].Key)
}

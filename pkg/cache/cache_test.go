//go:build unit

package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/release-manager/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestKey_Deterministic(t *testing.T) {
	first := Key("jira.Issue", "ARROW-1")
	second := Key("jira.Issue", "ARROW-1")

	assert.Equal(t, first, second)
	assert.Equal(t, `jira.Issue("ARROW-1")`, first)
}

func TestKey_DistinguishesArguments(t *testing.T) {
	assert.NotEqual(t, Key("m", "a", "b"), Key("m", "ab"))
	assert.NotEqual(t, Key("m", "a"), Key("n", "a"))
	assert.NotEqual(t, Key("m", 1), Key("m", "1"))
}

func TestFileCache_GetMissing(t *testing.T) {
	c := NewFileCache(fs.NewFS(), filepath.Join(t.TempDir(), "cache.json"))

	var value string
	found, err := c.Get("missing", &value)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileCache_PutThenGet(t *testing.T) {
	c := NewFileCache(fs.NewFS(), filepath.Join(t.TempDir(), "cache.json"))

	require.NoError(t, c.Put(Key("m", "a"), []string{"x", "y"}))

	var value []string
	found, err := c.Get(Key("m", "a"), &value)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"x", "y"}, value)
}

func TestFileCache_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.json")

	require.NoError(t, NewFileCache(fs.NewFS(), path).Put("k", 42))

	var value int
	found, err := NewFileCache(fs.NewFS(), path).Get("k", &value)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 42, value)
}

func TestFileCache_Overwrite(t *testing.T) {
	c := NewFileCache(fs.NewFS(), filepath.Join(t.TempDir(), "cache.json"))

	require.NoError(t, c.Put("k", "old"))
	require.NoError(t, c.Put("k", "new"))

	var value string
	found, err := c.Get("k", &value)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "new", value)
}

func TestFileCache_Put_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	diskFull := errors.New("no space left on device")

	mockFS := fs.NewMockFS(ctrl)
	mockFS.EXPECT().Exists("/cache.json").Return(false, nil)
	mockFS.EXPECT().MkdirAll("/", os.FileMode(0755)).Return(nil)
	mockFS.EXPECT().WriteFile("/cache.json", gomock.Any(), os.FileMode(0644)).Return(diskFull)

	err := NewFileCache(mockFS, "/cache.json").Put("k", "v")

	assert.ErrorIs(t, err, diskFull)
}

func TestFileCache_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	fsys := fs.NewFS()
	require.NoError(t, fsys.WriteFile(path, []byte("not json"), 0644))

	var value string
	_, err := NewFileCache(fsys, path).Get("k", &value)

	assert.ErrorIs(t, err, ErrCorruptCache)
}

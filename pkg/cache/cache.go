// Package cache provides the durable key-value cache used to persist issue
// tracker query results across invocations.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lerenn/release-manager/pkg/fs"
)

// Cache interface provides durable storage of serializable values by key.
// Entries are permanent: there is no TTL or invalidation.
type Cache interface {
	// Get looks up a key and unmarshals the stored value into value.
	// The boolean reports whether the key was present.
	Get(key string, value any) (bool, error)

	// Put stores a value under a key, overwriting any previous entry.
	Put(key string, value any) error
}

// Key builds the deterministic cache key for a method call from the method
// identifier and its serialized arguments.
func Key(method string, args ...any) string {
	serialized := make([]string, 0, len(args))
	for _, arg := range args {
		data, err := json.Marshal(arg)
		if err != nil {
			// Arguments are plain strings and numbers; an unserializable one
			// is a programming error.
			panic(fmt.Sprintf("unserializable cache key argument: %v", err))
		}
		serialized = append(serialized, string(data))
	}
	return method + "(" + strings.Join(serialized, ",") + ")"
}

// fileCache stores all entries as a JSON object in a single file. The file is
// read and written within each call, never held open across calls, so
// repeated process invocations do not contend on a lock.
type fileCache struct {
	fs   fs.FS
	path string
}

// NewFileCache creates a Cache backed by a single JSON file.
func NewFileCache(fsys fs.FS, path string) Cache {
	return &fileCache{
		fs:   fsys,
		path: path,
	}
}

// Get looks up a key and unmarshals the stored value into value.
func (c *fileCache) Get(key string, value any) (bool, error) {
	entries, err := c.load()
	if err != nil {
		return false, fmt.Errorf("failed to load cache: %w", err)
	}

	raw, exists := entries[key]
	if !exists {
		return false, nil
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return false, fmt.Errorf("%w: key %q: %w", ErrCorruptEntry, key, err)
	}

	return true, nil
}

// Put stores a value under a key, overwriting any previous entry.
func (c *fileCache) Put(key string, value any) error {
	entries, err := c.load()
	if err != nil {
		return fmt.Errorf("failed to load cache: %w", err)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value for key %q: %w", key, err)
	}
	entries[key] = raw

	if err := c.save(entries); err != nil {
		return fmt.Errorf("failed to save cache: %w", err)
	}

	return nil
}

// load reads the cache file, returning an empty map if it does not exist yet.
func (c *fileCache) load() (map[string]json.RawMessage, error) {
	exists, err := c.fs.Exists(c.path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return make(map[string]json.RawMessage), nil
	}

	data, err := c.fs.ReadFile(c.path)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptCache, err)
	}

	return entries, nil
}

// save writes the cache file, creating its directory if needed.
func (c *fileCache) save(entries map[string]json.RawMessage) error {
	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return c.fs.WriteFile(c.path, data, os.FileMode(0644))
}

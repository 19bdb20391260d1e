package cache

import "errors"

// Cache-specific error types.
var (
	ErrCorruptCache = errors.New("corrupt cache file")
	ErrCorruptEntry = errors.New("corrupt cache entry")
)

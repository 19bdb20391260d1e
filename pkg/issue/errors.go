package issue

import "errors"

// Issue-specific error types.
var (
	ErrInvalidKey = errors.New("invalid issue key")
)

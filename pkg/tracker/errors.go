package tracker

import "errors"

// Tracker-specific error types.
var (
	ErrUnsupportedTracker = errors.New("unsupported tracker")
	ErrVersionNotFound    = errors.New("version not found in tracker")
	ErrIssueNotFound      = errors.New("issue not found")
	ErrUnauthorized       = errors.New("unauthorized access to tracker API")
	ErrRateLimited        = errors.New("rate limited by tracker API")
)

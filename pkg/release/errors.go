package release

import "errors"

// Release-specific error types.
var (
	ErrNoUpcomingRelease     = errors.New("no upcoming release scheduled in tracker")
	ErrNoPreviousRelease     = errors.New("no previous release recorded in tracker")
	ErrUnknownIssueType      = errors.New("unknown issue type")
	ErrNotMaintenanceRelease = errors.New("operation requires a minor or patch release")
	ErrInvalidVersion        = errors.New("version must be a string or *version.Version")
	ErrMissingDependency     = errors.New("missing dependency")
)

package gitrepo

import "errors"

// Git-specific error types.
var (
	ErrBranchNotFound  = errors.New("branch not found")
	ErrTagNotFound     = errors.New("tag not found")
	ErrCherryPickFailed = errors.New("cherry-pick failed")
)

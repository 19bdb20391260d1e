package gitrepo

import "time"

// CommitInfo represents a single commit as reported by git log.
type CommitInfo struct {
	Hash    string
	Subject string
	Author  string
	Date    time.Time
}

// CreateBranchFromParams contains parameters for CreateBranchFrom.
type CreateBranchFromParams struct {
	RepoPath   string
	Branch     string
	StartPoint string
}

// Package gitrepo provides Git command execution capabilities for release operations.
package gitrepo

//go:generate go run go.uber.org/mock/mockgen@latest -source=gitrepo.go -destination=mockgitrepo.gen.go -package=gitrepo

// Git interface provides the version-control operations used by the release commands.
type Git interface {
	// BranchExists checks if a local branch exists.
	BranchExists(repoPath, branch string) (bool, error)

	// TagExists checks if a tag exists.
	TagExists(repoPath, tag string) (bool, error)

	// Log lists commits reachable from upper and not from lower, in
	// reverse-chronological order. An empty lower starts at the root.
	Log(repoPath, lower, upper string) ([]CommitInfo, error)

	// CreateBranchFrom creates a new branch starting at a specific revision.
	CreateBranchFrom(params CreateBranchFromParams) error

	// DeleteBranch deletes a local branch.
	DeleteBranch(repoPath, branch string) error

	// CheckoutBranch checks out a branch in the repository.
	CheckoutBranch(repoPath, branch string) error

	// CherryPick applies a commit by hash onto the current branch.
	CherryPick(repoPath, hash string) error

	// GetRemoteURL gets the URL of a remote.
	GetRemoteURL(repoPath, remoteName string) (string, error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}

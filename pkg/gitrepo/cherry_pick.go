package gitrepo

import (
	"fmt"
	"os/exec"
)

// CherryPick applies a commit by hash onto the current branch. A conflict is
// returned as ErrCherryPickFailed; the conflicted state is left in place for
// the operator to resolve.
func (g *realGit) CherryPick(repoPath, hash string) error {
	cmd := exec.Command("git", "cherry-pick", hash)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s (output: %s)", ErrCherryPickFailed, hash, string(output))
	}

	return nil
}

package gitrepo

import (
	"fmt"
	"os/exec"
)

// CreateBranchFrom creates a new branch starting at a specific revision.
func (g *realGit) CreateBranchFrom(params CreateBranchFromParams) error {
	cmd := exec.Command("git", "branch", params.Branch, params.StartPoint)
	cmd.Dir = params.RepoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git branch failed: %w (command: git branch %s %s, output: %s)",
			err, params.Branch, params.StartPoint, string(output))
	}

	return nil
}

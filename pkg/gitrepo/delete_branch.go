package gitrepo

import (
	"fmt"
	"os/exec"
)

// DeleteBranch deletes a local branch.
func (g *realGit) DeleteBranch(repoPath, branch string) error {
	cmd := exec.Command("git", "branch", "-D", branch)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git branch -D failed: %w (command: git branch -D %s, output: %s)",
			err, branch, string(output))
	}

	return nil
}

package gitrepo

import (
	"os/exec"
)

// BranchExists checks if a local branch exists.
func (g *realGit) BranchExists(repoPath, branch string) (bool, error) {
	cmd := exec.Command("git", "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	cmd.Dir = repoPath

	if err := cmd.Run(); err != nil {
		if _, isExit := err.(*exec.ExitError); isExit {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

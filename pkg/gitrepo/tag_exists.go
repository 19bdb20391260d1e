package gitrepo

import (
	"os/exec"
)

// TagExists checks if a tag exists.
func (g *realGit) TagExists(repoPath, tag string) (bool, error) {
	cmd := exec.Command("git", "show-ref", "--verify", "--quiet", "refs/tags/"+tag)
	cmd.Dir = repoPath

	if err := cmd.Run(); err != nil {
		if _, isExit := err.(*exec.ExitError); isExit {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

package release

import (
	"fmt"

	"github.com/lerenn/release-manager/pkg/commit"
	"github.com/lerenn/release-manager/pkg/gitrepo"
	"github.com/lerenn/release-manager/pkg/version"
)

// CommitsToPick computes the mainline commits since the root of the current
// major version that belong to this release but are not yet on its branch.
// Matching is by title, not hash, since cherry-picking rewrites hashes.
// Commits are returned oldest-first to minimize merge conflicts.
func (r *Release) CommitsToPick() ([]commit.Commit, error) {
	if r.Kind() == KindMajor {
		return nil, fmt.Errorf("%w: %s is a major release", ErrNotMaintenanceRelease, r.version)
	}

	issues, err := r.Issues()
	if err != nil {
		return nil, err
	}

	own, err := r.Commits()
	if err != nil {
		return nil, err
	}
	picked := make(map[string]bool, len(own))
	for _, c := range own {
		picked[c.Title().String()] = true
	}

	// Pre-1.0 minor releases act as major releases, so their maintenance
	// range roots at the minor tag.
	root := version.New(r.version.Major(), 0, 0)
	if r.version.Major() == 0 {
		root = version.New(0, r.version.Minor(), 0)
	}
	infos, err := r.git.Log(r.cfg.RepositoryPath, r.tagName(root), r.cfg.Mainline)
	if err != nil {
		return nil, fmt.Errorf("failed to list mainline commits: %w", err)
	}

	var picks []commit.Commit
	for _, info := range infos {
		c := commit.New(info, r.logger)
		if picked[c.Title().String()] {
			continue
		}
		if _, inRelease := issues[c.Issue()]; !inRelease {
			continue
		}
		picks = append(picks, c)
	}

	// git log is reverse-chronological; picks apply oldest-first.
	for left, right := 0, len(picks)-1; left < right; left, right = left+1, right-1 {
		picks[left], picks[right] = picks[right], picks[left]
	}

	return picks, nil
}

// CherryPick applies the selected mainline commits onto the maintenance
// branch, oldest-first. When recreateBranch is set, the branch is first
// recreated from the previous release's tag. The batch aborts on the first
// failed pick: conflict resolution is a human operation.
func (r *Release) CherryPick(recreateBranch bool) error {
	if r.Kind() == KindMajor {
		return fmt.Errorf("%w: %s is a major release", ErrNotMaintenanceRelease, r.version)
	}

	branch := r.Branch()

	if recreateBranch {
		previous, err := r.Previous()
		if err != nil {
			return err
		}
		if previous == nil {
			return fmt.Errorf("%w: cannot recreate branch %s", ErrNoPreviousRelease, branch)
		}

		exists, err := r.git.BranchExists(r.cfg.RepositoryPath, branch)
		if err != nil {
			return fmt.Errorf("failed to check branch %s: %w", branch, err)
		}
		if exists {
			if err := r.git.DeleteBranch(r.cfg.RepositoryPath, branch); err != nil {
				return err
			}
		}

		if err := r.git.CreateBranchFrom(gitrepo.CreateBranchFromParams{
			RepoPath:   r.cfg.RepositoryPath,
			Branch:     branch,
			StartPoint: r.tagName(previous),
		}); err != nil {
			return err
		}
	}

	if err := r.git.CheckoutBranch(r.cfg.RepositoryPath, branch); err != nil {
		return err
	}

	picks, err := r.CommitsToPick()
	if err != nil {
		return err
	}

	for _, pick := range picks {
		if err := r.git.CherryPick(r.cfg.RepositoryPath, pick.Hash()); err != nil {
			return fmt.Errorf("aborting batch at %s: %w", pick.Hash(), err)
		}
		r.logger.Logf("picked %s %s", pick.Hash(), pick.Title())
	}

	return nil
}

package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	"github.com/rios0rios0/hookrunner/internal/domain/repositories"
)

const remoteName = "origin"

// GoGitRepository implements repositories.VersionControlRepository in-process
// with go-git, for hosts that do not ship a git executable.
type GoGitRepository struct{}

var _ repositories.VersionControlRepository = (*GoGitRepository)(nil)

// NewGoGitRepository creates the go-git engine.
func NewGoGitRepository() *GoGitRepository {
	return &GoGitRepository{}
}

// NewBuiltinVersionControlRepository adapts NewGoGitRepository to the engine registry.
func NewBuiltinVersionControlRepository() (repositories.VersionControlRepository, error) {
	return NewGoGitRepository(), nil
}

func (r *GoGitRepository) Clone(
	ctx context.Context,
	parentDir, reference, remoteURL, targetName string,
) (string, error) {
	target := filepath.Join(parentDir, targetName)
	logger.Debugf("Cloning %s into %s (builtin engine)", remoteURL, target)

	//nolint:exhaustruct // defaults are fine for everything but the URL
	repo, err := gogit.PlainCloneContext(ctx, target, false, &gogit.CloneOptions{
		URL:        remoteURL,
		RemoteName: remoteName,
		Tags:       gogit.AllTags,
	})
	if err != nil {
		return "", executionError(err, "clone", "-b", reference, remoteURL, targetName)
	}

	hash, err := checkoutReference(repo, reference)
	if err != nil {
		return "", executionError(err, "clone", "-b", reference, remoteURL, targetName)
	}
	return hash.String(), nil
}

func (r *GoGitRepository) Fetch(ctx context.Context, dir string) (string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", executionError(err, "fetch")
	}

	//nolint:exhaustruct // remote and tags only
	err = repo.FetchContext(ctx, &gogit.FetchOptions{
		RemoteName: remoteName,
		Tags:       gogit.AllTags,
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return "", executionError(err, "fetch")
	}
	return "", nil
}

func (r *GoGitRepository) Checkout(_ context.Context, dir, reference string) (string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", executionError(err, "checkout", reference)
	}

	hash, err := checkoutReference(repo, reference)
	if err != nil {
		return "", executionError(err, "checkout", reference)
	}
	return hash.String(), nil
}

func (r *GoGitRepository) Pull(ctx context.Context, dir string) (string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", executionError(err, "pull")
	}

	head, err := repo.Head()
	if err != nil {
		return "", executionError(err, "pull")
	}
	if !head.Name().IsBranch() {
		return "", executionError(errors.New("You are not currently on a branch."), "pull") //nolint:staticcheck // mirrors git
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", executionError(err, "pull")
	}

	//nolint:exhaustruct // remote and branch only
	err = worktree.PullContext(ctx, &gogit.PullOptions{
		RemoteName:    remoteName,
		ReferenceName: head.Name(),
		SingleBranch:  true,
	})
	if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return "Already up to date.", nil
	}
	if err != nil {
		return "", executionError(err, "pull")
	}

	updated, err := repo.Head()
	if err != nil {
		return "", executionError(err, "pull")
	}
	return updated.Hash().String(), nil
}

// checkoutReference switches the worktree to a local branch, a remote branch
// (creating a tracking branch) or a tag (detached), in that order.
func checkoutReference(repo *gogit.Repository, reference string) (plumbing.Hash, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, err
	}

	local := plumbing.NewBranchReferenceName(reference)
	if ref, refErr := repo.Reference(local, true); refErr == nil {
		//nolint:exhaustruct // branch switch
		if err = worktree.Checkout(&gogit.CheckoutOptions{Branch: local}); err != nil {
			return plumbing.ZeroHash, err
		}
		return ref.Hash(), nil
	}

	remote := plumbing.NewRemoteReferenceName(remoteName, reference)
	if ref, refErr := repo.Reference(remote, true); refErr == nil {
		//nolint:exhaustruct // create the local branch at the remote commit
		err = worktree.Checkout(&gogit.CheckoutOptions{
			Branch: local,
			Hash:   ref.Hash(),
			Create: true,
		})
		if err != nil {
			return plumbing.ZeroHash, err
		}
		trackErr := repo.CreateBranch(&config.Branch{Name: reference, Remote: remoteName, Merge: local})
		if trackErr != nil && !errors.Is(trackErr, gogit.ErrBranchExists) {
			return plumbing.ZeroHash, trackErr
		}
		return ref.Hash(), nil
	}

	if ref, refErr := repo.Tag(reference); refErr == nil {
		hash := ref.Hash()
		if tag, tagErr := repo.TagObject(hash); tagErr == nil {
			commit, commitErr := tag.Commit()
			if commitErr != nil {
				return plumbing.ZeroHash, commitErr
			}
			hash = commit.Hash
		}
		//nolint:exhaustruct // detached checkout
		if err = worktree.Checkout(&gogit.CheckoutOptions{Hash: hash}); err != nil {
			return plumbing.ZeroHash, err
		}
		return hash, nil
	}

	return plumbing.ZeroHash, fmt.Errorf("pathspec '%s' did not match any file(s) known to git", reference)
}

func executionError(err error, args ...string) error {
	return &entities.ExecutionError{Args: args, Output: err.Error()}
}

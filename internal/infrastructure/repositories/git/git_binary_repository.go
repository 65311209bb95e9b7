package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	"github.com/rios0rios0/hookrunner/internal/domain/repositories"
)

const binaryName = "git"

// GitBinaryRepository implements repositories.VersionControlRepository by
// running the git executable found on PATH.
type GitBinaryRepository struct {
	binary string
}

var _ repositories.VersionControlRepository = (*GitBinaryRepository)(nil)

// NewGitBinaryRepository locates git on PATH and fails with
// entities.ErrMissingBinary when it is not installed.
func NewGitBinaryRepository() (*GitBinaryRepository, error) {
	path, err := exec.LookPath(binaryName)
	if err != nil {
		return nil, entities.ErrMissingBinary
	}
	return &GitBinaryRepository{binary: path}, nil
}

// NewVersionControlRepository adapts NewGitBinaryRepository to the engine registry.
func NewVersionControlRepository() (repositories.VersionControlRepository, error) {
	return NewGitBinaryRepository()
}

func (r *GitBinaryRepository) Clone(
	ctx context.Context,
	parentDir, reference, remoteURL, targetName string,
) (string, error) {
	return r.run(ctx, parentDir, "clone", "-b", reference, remoteURL, targetName)
}

func (r *GitBinaryRepository) Fetch(ctx context.Context, dir string) (string, error) {
	return r.run(ctx, dir, "fetch")
}

func (r *GitBinaryRepository) Checkout(ctx context.Context, dir, reference string) (string, error) {
	return r.run(ctx, dir, "checkout", reference)
}

func (r *GitBinaryRepository) Pull(ctx context.Context, dir string) (string, error) {
	return r.run(ctx, dir, "pull")
}

// run executes git in dir. A non-zero exit becomes an *entities.ExecutionError
// holding the captured stderr; failing to start the process is an I/O error.
func (r *GitBinaryRepository) run(ctx context.Context, dir string, args ...string) (string, error) {
	logger.Debugf("Running git %s in %s", strings.Join(args, " "), dir)

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &entities.ExecutionError{
				Args:   args,
				Output: strings.TrimSpace(stderr.String()),
			}
		}
		return "", &entities.IOError{Err: err}
	}

	return strings.TrimSpace(stdout.String()), nil
}

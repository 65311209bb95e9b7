package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	"github.com/rios0rios0/hookrunner/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/hookrunner/internal/infrastructure/repositories"
)

const parentDirMode = 0o755

// Synchronize drives a local working copy to the requested reference.
type Synchronize interface {
	Execute(ctx context.Context, settings *entities.Settings, opts SynchronizeOptions) error
}

// SynchronizeOptions selects what to synchronize.
type SynchronizeOptions struct {
	Backend    entities.Backend
	Repository entities.RepositoryPath
	Reference  entities.Reference
}

// SynchronizeCommand clones a repository when its working copy is absent and
// otherwise runs fetch, checkout and pull. Runs against the same directory are serialized.
type SynchronizeCommand struct {
	engines *infraRepos.VersionControlRegistry
	locks   *pathLocks
}

// NewSynchronizeCommand creates a new SynchronizeCommand.
func NewSynchronizeCommand(engines *infraRepos.VersionControlRegistry) *SynchronizeCommand {
	return &SynchronizeCommand{
		engines: engines,
		locks:   newPathLocks(),
	}
}

// Execute synchronizes opts.Repository at opts.Reference.
func (it *SynchronizeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts SynchronizeOptions,
) error {
	dir, err := resolveTargetDirectory(settings, opts.Repository)
	if err != nil {
		return err
	}
	remoteURL := opts.Backend.CloneURL(opts.Repository)

	vcs, err := it.engines.Get(settings.GitEngine)
	if err != nil {
		return err
	}

	release, err := it.locks.acquire(ctx, dir)
	if err != nil {
		return fmt.Errorf("waiting for %s: %w", dir, err)
	}
	defer release()

	_, statErr := os.Stat(dir)
	switch {
	case errors.Is(statErr, fs.ErrNotExist):
		return cloneWorkingCopy(ctx, vcs, dir, remoteURL, opts.Reference)
	case statErr != nil:
		return &entities.IOError{Err: statErr}
	default:
		return updateWorkingCopy(ctx, vcs, dir, opts.Reference)
	}
}

func cloneWorkingCopy(
	ctx context.Context,
	vcs repositories.VersionControlRepository,
	dir, remoteURL string,
	reference entities.Reference,
) error {
	parent, leaf := filepath.Dir(dir), filepath.Base(dir)
	logger.Infof("Cloning %s (%s %s) into %s", remoteURL, reference.Kind(), reference.Name(), dir)

	if err := os.MkdirAll(parent, parentDirMode); err != nil {
		return &entities.IOError{Err: err}
	}

	output, err := vcs.Clone(ctx, parent, reference.Name(), remoteURL, leaf)
	if err != nil {
		return err
	}
	logOutput("clone", output)
	return nil
}

func updateWorkingCopy(
	ctx context.Context,
	vcs repositories.VersionControlRepository,
	dir string,
	reference entities.Reference,
) error {
	logger.Infof("Updating %s to %s %s", dir, reference.Kind(), reference.Name())

	output, err := vcs.Fetch(ctx, dir)
	if err != nil {
		return err
	}
	logOutput("fetch", output)

	if output, err = vcs.Checkout(ctx, dir, reference.Name()); err != nil {
		return err
	}
	logOutput("checkout", output)

	if output, err = vcs.Pull(ctx, dir); err != nil {
		return err
	}
	logOutput("pull", output)
	return nil
}

// resolveTargetDirectory returns the absolute working copy directory: the
// mapped path when configured, otherwise <working dir or cwd>/<name>.
func resolveTargetDirectory(settings *entities.Settings, path entities.RepositoryPath) (string, error) {
	dir, mapped := settings.RepositoryMapping.Lookup(path)
	if !mapped {
		base := settings.WorkingDir
		if base == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return "", &entities.IOError{Err: err}
			}
			base = cwd
		}
		dir = filepath.Join(base, path.Name)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &entities.IOError{Err: err}
	}
	return abs, nil
}

func logOutput(step, output string) {
	if output != "" {
		logger.Debugf("git %s: %s", step, output)
	}
}

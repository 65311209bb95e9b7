//go:build integration

package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	"github.com/rios0rios0/hookrunner/internal/domain/repositories"
	"github.com/rios0rios0/hookrunner/internal/infrastructure/repositories/git"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}
}

func TestVersionControlEngines(t *testing.T) {
	t.Parallel()
	requireGit(t)

	engines := map[string]func() (repositories.VersionControlRepository, error){
		entities.GitEngineBinary:  git.NewVersionControlRepository,
		entities.GitEngineBuiltin: git.NewBuiltinVersionControlRepository,
	}

	for name, factory := range engines {
		t.Run("should clone then follow new commits with the "+name+" engine", func(t *testing.T) {
			t.Parallel()

			// given
			origin, repo, _ := fixtureRepository(t)
			engine, err := factory()
			require.NoError(t, err)
			parent := t.TempDir()
			ctx := context.Background()

			// when
			_, err = engine.Clone(ctx, parent, "master", origin, "widgets")
			require.NoError(t, err)
			commitFile(t, repo, "VERSION", "1.1.0")
			_, fetchErr := engine.Fetch(ctx, filepath.Join(parent, "widgets"))
			_, checkoutErr := engine.Checkout(ctx, filepath.Join(parent, "widgets"), "master")
			_, pullErr := engine.Pull(ctx, filepath.Join(parent, "widgets"))

			// then
			require.NoError(t, fetchErr)
			require.NoError(t, checkoutErr)
			require.NoError(t, pullErr)
			assert.Equal(t, "1.1.0", readVersion(t, filepath.Join(parent, "widgets")))
		})

		t.Run("should clone a tag with the "+name+" engine", func(t *testing.T) {
			t.Parallel()

			// given
			origin, _, _ := fixtureRepository(t)
			engine, err := factory()
			require.NoError(t, err)
			parent := t.TempDir()

			// when
			_, err = engine.Clone(context.Background(), parent, "v1.0.0", origin, "widgets")

			// then
			require.NoError(t, err)
			assert.Equal(t, "1.0.0", readVersion(t, filepath.Join(parent, "widgets")))
		})
	}
}

func TestGitBinaryRepositoryRun(t *testing.T) {
	t.Parallel()
	requireGit(t)

	t.Run("should report stderr when git exits with an error", func(t *testing.T) {
		t.Parallel()

		// given
		engine, err := git.NewGitBinaryRepository()
		require.NoError(t, err)

		// when
		_, err = engine.Fetch(context.Background(), t.TempDir())

		// then
		var execErr *entities.ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Contains(t, execErr.Output, "not a git repository")
		assert.Contains(t, execErr.Error(), "Error while executing git: ")
	})

	t.Run("should report an I/O error when the directory is missing", func(t *testing.T) {
		t.Parallel()

		// given
		engine, err := git.NewGitBinaryRepository()
		require.NoError(t, err)
		missing := filepath.Join(t.TempDir(), "gone")

		// when
		_, err = engine.Pull(context.Background(), missing)

		// then
		var ioErr *entities.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.ErrorIs(t, ioErr.Err, os.ErrNotExist)
	})
}

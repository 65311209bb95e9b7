//go:build unit || integration

package git_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func signature() *object.Signature {
	return &object.Signature{Name: "Hook Runner", Email: "hookrunner@example.com", When: time.Now()}
}

// commitFile writes name with content into the worktree and commits it.
func commitFile(t *testing.T, repo *gogit.Repository, name, content string) plumbing.Hash {
	t.Helper()

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(worktree.Filesystem.Root(), name), []byte(content), 0o600))
	_, err = worktree.Add(name)
	require.NoError(t, err)

	//nolint:exhaustruct // author only
	hash, err := worktree.Commit("update "+name, &gogit.CommitOptions{Author: signature()})
	require.NoError(t, err)
	return hash
}

// fixtureRepository builds a repository with a "release" branch and an annotated "v1.0.0" tag.
func fixtureRepository(t *testing.T) (string, *gogit.Repository, plumbing.Hash) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	tagged := commitFile(t, repo, "VERSION", "1.0.0")
	//nolint:exhaustruct // annotated tag
	_, err = repo.CreateTag("v1.0.0", tagged, &gogit.CreateTagOptions{Tagger: signature(), Message: "v1.0.0"})
	require.NoError(t, err)
	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewBranchReferenceName("release"), tagged),
	))

	commitFile(t, repo, "VERSION", "1.1.0-dev")
	return dir, repo, tagged
}

func readVersion(t *testing.T, dir string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(dir, "VERSION"))
	require.NoError(t, err)
	return string(content)
}

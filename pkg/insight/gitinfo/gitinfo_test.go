package gitinfo_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/gitinfo"
)

func testHandler() slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
}

// initRepo creates a repository with one commit touching name and returns
// the file path and commit hash.
func initRepo(t *testing.T, dir, name string) (string, string) {
	t.Helper()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("content\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(name)
	require.NoError(t, err)

	hash, err := wt.Commit("add "+name, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	return path, hash.String()
}

func TestGoGitResolverDescribe(t *testing.T) {
	dir := t.TempDir()
	path, hash := initRepo(t, dir, "notes.txt")

	resolver := gitinfo.NewGoGitResolver(testHandler())
	snap, err := resolver.Describe(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, hash, snap.Commit)
	assert.Equal(t, "Test Author", snap.Author)
	assert.NotEmpty(t, snap.Branch)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), snap.When)
}

func TestGoGitResolverOutsideRepository(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))

	resolver := gitinfo.NewGoGitResolver(testHandler())
	_, err := resolver.Describe(context.Background(), path)
	assert.ErrorIs(t, err, gitinfo.ErrNotRepository)
}

func TestGoGitResolverEmptyRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	path := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))

	resolver := gitinfo.NewGoGitResolver(testHandler())
	_, err = resolver.Describe(context.Background(), path)
	assert.ErrorIs(t, err, gitinfo.ErrNotRepository)
}

func TestGoGitResolverCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resolver := gitinfo.NewGoGitResolver(testHandler())
	_, err := resolver.Describe(ctx, "anywhere")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNoopResolver(t *testing.T) {
	resolver := &gitinfo.NoopResolver{}
	_, err := resolver.Describe(context.Background(), "anything")
	assert.ErrorIs(t, err, gitinfo.ErrNotRepository)
}

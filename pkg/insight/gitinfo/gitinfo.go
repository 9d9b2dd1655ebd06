// Package gitinfo resolves optional git provenance for processed files.
// Provenance is advisory: enhanced outputs embed it when available, and
// resolution failures never fail the pipeline.
package gitinfo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
)

// ErrNotRepository indicates the input path lies outside any git repository.
var ErrNotRepository = errors.New("path is not inside a git repository")

// Snapshot is the HEAD state of the repository containing a file.
type Snapshot struct {
	Branch string    `json:"branch" yaml:"branch" toml:"branch"`
	Commit string    `json:"commit" yaml:"commit" toml:"commit"`
	Author string    `json:"author" yaml:"author" toml:"author"`
	When   time.Time `json:"when" yaml:"when" toml:"when"`
}

// Resolver describes the repository state around a path.
type Resolver interface {
	// Describe returns the HEAD snapshot of the repository containing
	// path, or ErrNotRepository when path is outside any repository.
	Describe(ctx context.Context, path string) (*Snapshot, error)
}

// NoopResolver never finds a repository. Used when provenance is disabled.
type NoopResolver struct{}

// Describe implements Resolver. It always returns ErrNotRepository.
func (*NoopResolver) Describe(context.Context, string) (*Snapshot, error) {
	return nil, ErrNotRepository
}

// GoGitResolver resolves provenance with the go-git library, without
// shelling out to a git binary.
type GoGitResolver struct {
	logger *slog.Logger
}

// NewGoGitResolver returns a Resolver backed by go-git.
func NewGoGitResolver(handler slog.Handler) *GoGitResolver {
	return &GoGitResolver{
		logger: slog.New(handler).With(slog.String("component", "gitinfo")),
	}
}

// Describe opens the repository containing path (walking up for a .git
// directory) and reads HEAD. Detached HEADs report the short hash as the
// branch name.
func (r *GoGitResolver) Describe(ctx context.Context, path string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", path, err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(absPath), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %q", ErrNotRepository, path)
		}
		return nil, fmt.Errorf("opening repository for %q: %w", path, err)
	}

	head, err := repo.Head()
	if err != nil {
		// A repository with no commits has no HEAD to describe.
		r.logger.Debug("repository has no resolvable HEAD", slog.String("path", path), slog.Any("error", err))
		return nil, fmt.Errorf("%w: repository at %q has no HEAD", ErrNotRepository, path)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("reading HEAD commit for %q: %w", path, err)
	}

	branch := head.Name().Short()
	if !head.Name().IsBranch() {
		branch = head.Hash().String()[:7]
	}

	return &Snapshot{
		Branch: branch,
		Commit: commit.Hash.String(),
		Author: commit.Author.Name,
		When:   commit.Author.When.UTC(),
	}, nil
}

// Package git provides repository initialization for generated projects
package git

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/tildaslashalef/codenest/internal/loggy"
)

// InitRequest describes a repository to initialize
type InitRequest struct {
	Dir           string
	AuthorName    string
	AuthorEmail   string
	CommitMessage string
}

// InitResult reports the outcome of an init+commit sequence
type InitResult struct {
	CommitHash string
	FilesAdded int
}

// Service provides Git operations
type Service struct {
	logger *loggy.Logger
}

// NewService creates a new Git service
func NewService(logger *loggy.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// HasRepo checks whether the path already contains a Git repository
func (s *Service) HasRepo(path string) bool {
	_, err := git.PlainOpen(path)
	if err != nil {
		s.logger.Debug("Not a Git repository", "path", path, "error", err)
		return false
	}
	return true
}

// InitAndCommit initializes a repository in the given directory, stages
// everything in it, and creates the initial commit.
func (s *Service) InitAndCommit(req InitRequest) (*InitResult, error) {
	repo, err := git.PlainInit(req.Dir, false)
	if err != nil {
		return nil, fmt.Errorf("initializing repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return nil, fmt.Errorf("staging files: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}
	if status.IsClean() {
		return nil, fmt.Errorf("nothing to commit in %s", req.Dir)
	}

	hash, err := worktree.Commit(req.CommitMessage, &git.CommitOptions{
		Author: &object.Signature{
			Name:  req.AuthorName,
			Email: req.AuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating initial commit: %w", err)
	}

	s.logger.Info("Initialized repository",
		"dir", req.Dir,
		"commit", hash.String(),
		"files", len(status),
	)

	return &InitResult{
		CommitHash: hash.String(),
		FilesAdded: len(status),
	}, nil
}

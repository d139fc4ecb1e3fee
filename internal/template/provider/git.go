package provider

import (
	"context"
	"errors"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/tacogips/kickstart/internal/logging"
)

// GitProvider implements Provider for remote git repositories.
type GitProvider struct {
	// Depth limits the clone history; 0 clones the full history.
	Depth int
}

// NewGitProvider creates a git provider cloning with the given depth.
func NewGitProvider(depth int) *GitProvider {
	return &GitProvider{Depth: depth}
}

// Name returns the provider name.
func (p *GitProvider) Name() string {
	return "git"
}

// Fetch clones the repository into a temporary directory owned by the
// returned checkout.
func (p *GitProvider) Fetch(ctx context.Context, source string) (*Checkout, error) {
	logger := logging.GetLogger("provider")

	dir, err := os.MkdirTemp("", "kickstart-*")
	if err != nil {
		return nil, NewFetchError(p.Name(), source, err)
	}

	logger.Debug().
		Str("url", source).
		Str("dir", dir).
		Int("depth", p.Depth).
		Msg("Cloning template repository")

	_, err = git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:   source,
		Depth: p.Depth,
	})
	if err != nil {
		os.RemoveAll(dir)
		switch {
		case errors.Is(err, transport.ErrAuthenticationRequired):
			return nil, NewAuthError(p.Name(), source)
		case errors.Is(err, transport.ErrRepositoryNotFound):
			return nil, NewNotFoundError(p.Name(), source)
		}
		return nil, NewFetchError(p.Name(), source, err)
	}

	return &Checkout{Dir: dir, temporary: true}, nil
}

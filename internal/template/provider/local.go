package provider

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tacogips/kickstart/internal/logging"
)

// LocalProvider implements Provider for template directories already on
// the filesystem.
type LocalProvider struct{}

// NewLocalProvider creates a new local filesystem provider.
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

// Name returns the provider name.
func (p *LocalProvider) Name() string {
	return "local"
}

// Fetch resolves the path to an absolute directory. Whether the directory
// actually holds a template definition is the definition loader's concern;
// with a --directory flag the definition may live in a subdirectory. The
// directory is used in place and never written to.
func (p *LocalProvider) Fetch(ctx context.Context, source string) (*Checkout, error) {
	logger := logging.GetLogger("provider")

	abs, err := filepath.Abs(source)
	if err != nil {
		return nil, NewInvalidSourceError(p.Name(), source, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewNotFoundError(p.Name(), source)
		}
		return nil, NewFetchError(p.Name(), source, err)
	}
	if !info.IsDir() {
		return nil, NewInvalidTemplateError(p.Name(), source, "path must be a directory", nil)
	}

	logger.Debug().Str("dir", abs).Msg("Using local template directory")
	return &Checkout{Dir: abs}, nil
}

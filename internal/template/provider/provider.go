// Package provider makes template sources available on the local
// filesystem, from a git remote or a directory already on disk.
package provider

import (
	"context"
	"os"
)

// Provider abstracts template source locations (git remotes, local
// filesystem).
type Provider interface {
	// Name returns the provider name (e.g., "git", "local").
	Name() string

	// Fetch makes the template source available as a local directory.
	Fetch(ctx context.Context, source string) (*Checkout, error)
}

// Checkout is a template source materialized on the local filesystem.
type Checkout struct {
	// Dir is the directory holding the template files.
	Dir string

	// temporary marks provider-owned directories removed by Cleanup.
	temporary bool
}

// Cleanup removes the checkout directory if the provider owns it.
// Checkouts pointing at user directories are left untouched.
func (c *Checkout) Cleanup() error {
	if !c.temporary {
		return nil
	}
	return os.RemoveAll(c.Dir)
}

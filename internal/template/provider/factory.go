package provider

import (
	"errors"
	"strings"
)

// gitPrefixes mark sources handled by the git provider.
var gitPrefixes = []string{"http://", "https://", "git://", "ssh://", "git@"}

// NewProvider creates the appropriate provider for the source. Sources
// that look like a git remote get the git provider; everything else is
// treated as a local path.
func NewProvider(source string, cloneDepth int) (Provider, error) {
	if source == "" {
		return nil, NewInvalidSourceError("", source, errors.New("source cannot be empty"))
	}

	if IsGitSource(source) {
		return NewGitProvider(cloneDepth), nil
	}
	return NewLocalProvider(), nil
}

// IsGitSource reports whether the source looks like a git remote.
func IsGitSource(source string) bool {
	for _, prefix := range gitPrefixes {
		if strings.HasPrefix(source, prefix) {
			return true
		}
	}
	return false
}

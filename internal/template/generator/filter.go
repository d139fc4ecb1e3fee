package generator

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/tacogips/kickstart/internal/template/model"
)

// ShouldIgnore reports whether a template entry is excluded from the
// output: the template definition file, anything under .git, and anything
// matching one of the definition's ignore patterns.
func ShouldIgnore(rel string, patterns []string) bool {
	rel = filepath.ToSlash(rel)

	if rel == model.TemplateConfigFile {
		return true
	}

	if rel == model.GitDir || strings.HasPrefix(rel, model.GitDir+"/") {
		return true
	}

	return MatchesAny(rel, patterns)
}

// MatchesAny reports whether rel matches any of the glob patterns.
func MatchesAny(rel string, patterns []string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if matchesPattern(rel, pattern) {
			return true
		}
	}
	return false
}

// matchesPattern matches a glob pattern against the full relative path and
// against the base name, so "*.md" excludes markdown files at any depth.
func matchesPattern(rel, pattern string) bool {
	pattern = filepath.ToSlash(pattern)

	if matched, err := path.Match(pattern, rel); err == nil && matched {
		return true
	}

	if matched, err := path.Match(pattern, path.Base(rel)); err == nil && matched {
		return true
	}

	return false
}

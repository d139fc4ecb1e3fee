package model

import (
	"fmt"
	"os"
	"path/filepath"
)

// Template is a template fetched onto the local filesystem.
type Template struct {
	// Source is the path or URL the template was fetched from.
	Source string
	// Root is the directory containing template.toml.
	Root string
	// Definition is the parsed template.toml.
	Definition *Definition
}

// ContentRoot returns the directory whose tree is rendered into the output:
// Root, or the subdirectory named by the definition's directory field.
func (t *Template) ContentRoot() string {
	if t.Definition != nil && t.Definition.Directory != "" {
		return filepath.Join(t.Root, filepath.FromSlash(t.Definition.Directory))
	}
	return t.Root
}

// HookFile is an external executable run before or after generation.
type HookFile struct {
	// Name is the file name shown in progress and failure messages.
	Name string
	// Path is the absolute path of the executable.
	Path string
}

// PreGenHooks resolves the pre-generation hook list against the template
// root, in declaration order.
func (t *Template) PreGenHooks() ([]HookFile, error) {
	return t.resolveHooks(t.Definition.PreGenHooks)
}

// PostGenHooks resolves the post-generation hook list against the template
// root, in declaration order.
func (t *Template) PostGenHooks() ([]HookFile, error) {
	return t.resolveHooks(t.Definition.PostGenHooks)
}

// resolveHooks turns relative hook paths into HookFile entries, verifying
// each file exists.
func (t *Template) resolveHooks(paths []string) ([]HookFile, error) {
	hooks := make([]HookFile, 0, len(paths))
	for _, p := range paths {
		abs := filepath.Join(t.Root, filepath.FromSlash(p))
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("hook file %q not found: %w", p, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("hook path %q is a directory", p)
		}
		hooks = append(hooks, HookFile{Name: filepath.Base(abs), Path: abs})
	}
	return hooks, nil
}

package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tacogips/kickstart/internal/template/definition"
	"github.com/tacogips/kickstart/internal/template/model"
)

// ValidateOptions holds options for validating a template definition.
type ValidateOptions struct {
	// Path is a template directory or the definition file itself.
	Path string
}

// ValidateResult holds the problems found in a template definition.
type ValidateResult struct {
	// Path is the definition file that was checked.
	Path string
	// Problems lists structural problems in document order. Empty means
	// the definition is valid.
	Problems []string
}

// Validate structurally checks a template definition, including the hook
// paths it references. An unreadable or unparsable file is an error;
// structural problems are data in the result.
func Validate(ctx context.Context, opts ValidateOptions) (*ValidateResult, error) {
	if opts.Path == "" {
		return nil, NewOptionsError("template path cannot be empty", nil)
	}

	path := opts.Path
	info, err := os.Stat(path)
	if err != nil {
		return nil, NewDefinitionError(fmt.Sprintf("cannot access %s", path), err)
	}
	if info.IsDir() {
		path = filepath.Join(path, model.TemplateConfigFile)
	}

	problems, err := definition.ValidateFile(path)
	if err != nil {
		return nil, NewDefinitionError("failed to load template definition", err)
	}

	return &ValidateResult{Path: path, Problems: problems}, nil
}

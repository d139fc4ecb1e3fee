package generator

import (
	"path/filepath"
	"strings"
)

// renderPath renders a template-relative path with the resolved values and
// validates the result stays inside the output directory. Returns the
// cleaned relative path in the platform's separator.
func (g *Generator) renderPath(rel string, data map[string]any) (string, error) {
	rendered, err := g.engine.Render("path:"+rel, rel, data)
	if err != nil {
		return "", newGeneratorError(GeneratorRenderFailed,
			"failed to render path",
			rel,
			err)
	}
	return validateRenderedPath(rendered, rel)
}

// validateRenderedPath rejects rendered paths that are empty, absolute, or
// escape the output directory after cleaning.
func validateRenderedPath(rendered, original string) (string, error) {
	trimmed := strings.TrimSpace(rendered)
	if trimmed == "" {
		return "", newGeneratorError(GeneratorInvalidPath,
			"rendered path is empty",
			original,
			nil)
	}

	if filepath.IsAbs(trimmed) {
		return "", newGeneratorError(GeneratorInvalidPath,
			"rendered path is absolute",
			original,
			nil)
	}

	cleaned := filepath.Clean(filepath.FromSlash(trimmed))
	if cleaned == "." {
		return "", newGeneratorError(GeneratorInvalidPath,
			"rendered path resolves to the output directory itself",
			original,
			nil)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", newGeneratorError(GeneratorInvalidPath,
			"rendered path escapes the output directory",
			original,
			nil)
	}

	return cleaned, nil
}

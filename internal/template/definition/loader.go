// Package definition loads, validates and evaluates template.toml files.
package definition

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/tacogips/kickstart/internal/logging"
	"github.com/tacogips/kickstart/internal/template/model"
)

// Load reads and parses a template definition file. Unknown TOML keys are
// tolerated so templates can carry extra metadata.
func Load(path string) (*model.Definition, error) {
	logger := logging.GetLogger("definition")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewNotFoundError(path, err)
	}

	var def model.Definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, NewParseFailedError(path, err)
	}

	logger.Debug().
		Str("path", path).
		Str("template", def.Name).
		Int("variables", len(def.Variables)).
		Msg("Template definition loaded")

	return &def, nil
}

// LoadFromDir loads the definition from a template root directory.
func LoadFromDir(dir string) (*model.Definition, error) {
	return Load(filepath.Join(dir, model.TemplateConfigFile))
}

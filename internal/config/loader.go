// Package config loads the user-level kickstart configuration from
// config.toml.
package config

import (
	"errors"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/tacogips/kickstart/internal/logging"
)

// Load reads and validates the configuration file at path. Keys absent
// from the file keep their built-in defaults; unknown keys are tolerated.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid TOML in configuration file", err)
	}

	cfg := DefaultConfig()
	raw.apply(cfg)

	if err := Validate(cfg, path); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("outputDir", cfg.Defaults.OutputDir).
		Bool("runHooks", cfg.Defaults.RunHooks).
		Int("cloneDepth", cfg.Git.CloneDepth).
		Msg("Loaded configuration")

	return cfg, nil
}

// LoadOrDefault loads the configuration at path, falling back to the
// built-in defaults when the file does not exist. Any other failure is
// fatal: a broken config file should be fixed, not silently ignored.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// EnvConfigPath is the environment variable overriding the configuration
// file location.
const EnvConfigPath = "KICKSTART_CONFIG"

// DefaultConfig returns the built-in configuration used when no
// configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			OutputDir: ".",
			RunHooks:  true,
		},
		Git: GitConfig{
			CloneDepth: 1,
		},
	}
}

// DefaultConfigPath returns the configuration file path: $KICKSTART_CONFIG
// when set, otherwise config.toml under the XDG config home.
func DefaultConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return filepath.Join(xdg.ConfigHome, "kickstart", "config.toml")
}

package config

// Config is the user-level kickstart configuration.
type Config struct {
	// Defaults supplies fallback values for generation flags the user did
	// not set explicitly.
	Defaults DefaultsConfig `toml:"defaults"`
	// Git configures how remote templates are fetched.
	Git GitConfig `toml:"git"`
}

// DefaultsConfig holds fallback values for generation flags.
type DefaultsConfig struct {
	// OutputDir is the default output directory.
	OutputDir string `toml:"output_dir"`
	// RunHooks controls whether lifecycle hooks run by default.
	RunHooks bool `toml:"run_hooks"`
}

// GitConfig holds git fetch settings.
type GitConfig struct {
	// CloneDepth is the history depth for git clones (0 = full history).
	CloneDepth int `toml:"clone_depth"`
}

// fileConfig mirrors Config with optional fields so keys absent from the
// file can be told apart from explicit false or empty values.
type fileConfig struct {
	Defaults struct {
		OutputDir *string `toml:"output_dir"`
		RunHooks  *bool   `toml:"run_hooks"`
	} `toml:"defaults"`
	Git struct {
		CloneDepth *int `toml:"clone_depth"`
	} `toml:"git"`
}

// apply overlays the file's explicitly set values onto cfg.
func (f *fileConfig) apply(cfg *Config) {
	if f.Defaults.OutputDir != nil {
		cfg.Defaults.OutputDir = *f.Defaults.OutputDir
	}
	if f.Defaults.RunHooks != nil {
		cfg.Defaults.RunHooks = *f.Defaults.RunHooks
	}
	if f.Git.CloneDepth != nil {
		cfg.Git.CloneDepth = *f.Git.CloneDepth
	}
}

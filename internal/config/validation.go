package config

// Validate checks the configuration for unusable values.
func Validate(cfg *Config, file string) error {
	if cfg.Defaults.OutputDir == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, file, "defaults.output_dir", "output directory cannot be empty")
	}
	if cfg.Git.CloneDepth < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, file, "git.clone_depth", "clone depth cannot be negative")
	}
	return nil
}

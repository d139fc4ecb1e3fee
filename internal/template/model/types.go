package model

// Special file and directory names used by kickstart.
const (
	// TemplateConfigFile is the template definition file name in the
	// template root.
	TemplateConfigFile = "template.toml"
	// GitDir is the version-control directory skipped during generation.
	GitDir = ".git"
)

package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagOutputDir  = "output-dir"
	FlagDirectory  = "directory"
	FlagInputFile  = "input-file"
	FlagNoInput    = "no-input"
	FlagRunHooks   = "run-hooks"
	FlagCloneDepth = "clone-depth"
	FlagConfig     = "config"
	FlagVerbose    = "verbose"
	FlagNoColor    = "no-color"
	FlagQuiet      = "quiet"

	// Flag descriptions
	DescOutputDir  = "Directory receiving the generated project"
	DescDirectory  = "Subdirectory of the template source holding the template"
	DescInputFile  = "JSON file supplying variable values (disables prompting)"
	DescNoInput    = "Use variable defaults without prompting"
	DescRunHooks   = "Run pre/post generation hooks"
	DescCloneDepth = "Git history depth for remote templates (0 for full history)"
	DescConfig     = "Path to config file"
	DescVerbose    = "Increase log verbosity (repeatable)"
	DescNoColor    = "Disable colored output"
	DescQuiet      = "Suppress non-error output"
)

package model

// Condition gates a variable on the resolved value of an earlier variable.
type Condition struct {
	// Name is the variable whose resolved value is examined.
	Name string `toml:"name"`
	// Value is the literal the resolved value must equal for the condition
	// to hold (a string, boolean, or integer).
	Value any `toml:"value"`
}

// CleanupRule removes paths from the generated output when a variable
// resolved to a given value.
type CleanupRule struct {
	// Name is the variable examined after resolution.
	Name string `toml:"name"`
	// Value is the literal the resolved value must equal.
	Value any `toml:"value"`
	// Paths are template expressions yielding paths relative to the output
	// directory.
	Paths []string `toml:"paths"`
}

// Variable declares one template variable. Declarations form an ordered
// sequence: a variable's condition and default may reference the resolved
// values of variables declared before it, never after it.
type Variable struct {
	// Name uniquely identifies the variable.
	Name string `toml:"name"`
	// Prompt is the question shown when asking interactively.
	Prompt string `toml:"prompt"`
	// Default is the default value: a template-expression string, a
	// boolean, or an integer. Required; its type decides how the variable
	// is asked.
	Default any `toml:"default"`
	// Choices restricts a string variable to a fixed set of answers.
	Choices []string `toml:"choices"`
	// Validation is a regular expression free-form string input must match.
	// Only meaningful for string variables without choices.
	Validation string `toml:"validation"`
	// OnlyIf makes the variable applicable only when an earlier variable
	// resolved to the given value.
	OnlyIf *Condition `toml:"only_if"`
}

// Definition is the parsed template.toml.
type Definition struct {
	// Name is the template's display name.
	Name string `toml:"name"`
	// Description is an optional one-line description.
	Description string `toml:"description"`
	// KickstartVersion is the definition format version (currently 1).
	KickstartVersion int `toml:"kickstart_version"`
	// Directory optionally names the subdirectory holding the files to
	// render; when empty the template root itself is rendered.
	Directory string `toml:"directory"`
	// Ignore lists glob patterns of entries never copied to the output.
	Ignore []string `toml:"ignore"`
	// CopyWithoutRender lists glob patterns of files copied verbatim.
	CopyWithoutRender []string `toml:"copy_without_render"`
	// Cleanup lists conditional deletions applied after generation.
	Cleanup []CleanupRule `toml:"cleanup"`
	// PreGenHooks lists hook paths run before generation, in order.
	PreGenHooks []string `toml:"pre_gen_hooks"`
	// PostGenHooks lists hook paths run after generation, in order.
	PostGenHooks []string `toml:"post_gen_hooks"`
	// Variables are the declarations, in resolution order.
	Variables []Variable `toml:"variables"`
}

// Variable returns the declaration with the given name, or nil when the
// name is not declared.
func (d *Definition) Variable(name string) *Variable {
	for i := range d.Variables {
		if d.Variables[i].Name == name {
			return &d.Variables[i]
		}
	}
	return nil
}

// VariableNames returns the declared names in declaration order.
func (d *Definition) VariableNames() []string {
	names := make([]string, 0, len(d.Variables))
	for i := range d.Variables {
		names = append(names, d.Variables[i].Name)
	}
	return names
}

package definition

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tacogips/kickstart/internal/template/model"
)

// SupportedVersion is the highest kickstart_version this build understands.
const SupportedVersion = 1

// variableNameRe constrains names to what the render engine can reference
// as {{.name}}.
var variableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks a definition for structural problems and returns all of
// them, not just the first. An empty result means the definition is sound.
func Validate(def *model.Definition) []string {
	var problems []string

	if def.Name == "" {
		problems = append(problems, "missing required field: name")
	}
	if def.KickstartVersion == 0 {
		problems = append(problems, "missing required field: kickstart_version")
	} else if def.KickstartVersion > SupportedVersion {
		problems = append(problems, fmt.Sprintf("unsupported kickstart_version %d (supported: %d)", def.KickstartVersion, SupportedVersion))
	}

	if def.Directory != "" {
		if filepath.IsAbs(def.Directory) || escapesRoot(def.Directory) {
			problems = append(problems, fmt.Sprintf("directory %q must stay inside the template root", def.Directory))
		}
	}

	for _, pattern := range def.Ignore {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			problems = append(problems, fmt.Sprintf("ignore pattern %q: invalid glob", pattern))
		}
	}
	for _, pattern := range def.CopyWithoutRender {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			problems = append(problems, fmt.Sprintf("copy_without_render pattern %q: invalid glob", pattern))
		}
	}

	problems = append(problems, validateVariables(def)...)
	problems = append(problems, validateCleanup(def)...)

	return problems
}

func validateVariables(def *model.Definition) []string {
	var problems []string

	seen := make(map[string]bool, len(def.Variables))
	for i, v := range def.Variables {
		if v.Name == "" {
			problems = append(problems, fmt.Sprintf("variable at position %d: missing name", i+1))
			continue
		}
		if !variableNameRe.MatchString(v.Name) {
			problems = append(problems, fmt.Sprintf("variable %q: name must match %s", v.Name, variableNameRe.String()))
		}
		if seen[v.Name] {
			problems = append(problems, fmt.Sprintf("variable %q: duplicate declaration", v.Name))
		}
		seen[v.Name] = true

		if v.Prompt == "" {
			problems = append(problems, fmt.Sprintf("variable %q: missing prompt", v.Name))
		}

		var defValue model.Value
		hasDefault := false
		if v.Default == nil {
			problems = append(problems, fmt.Sprintf("variable %q: missing default", v.Name))
		} else {
			value, err := model.ValueFromTOML(v.Default)
			if err != nil {
				problems = append(problems, fmt.Sprintf("variable %q: unsupported default: %v", v.Name, err))
			} else {
				defValue = value
				hasDefault = true
			}
		}

		if len(v.Choices) > 0 {
			if hasDefault && defValue.Kind() != model.KindString {
				problems = append(problems, fmt.Sprintf("variable %q: choices require a string default", v.Name))
			}
			// A default carrying a template expression is only checkable
			// once rendered, so membership is enforced for literals only.
			if hasDefault && defValue.Kind() == model.KindString &&
				!strings.Contains(defValue.Str(), "{{") && !containsChoice(v.Choices, defValue.Str()) {
				problems = append(problems, fmt.Sprintf("variable %q: default %q is not one of the choices", v.Name, defValue.Str()))
			}
		}

		if v.Validation != "" {
			if hasDefault && defValue.Kind() != model.KindString {
				problems = append(problems, fmt.Sprintf("variable %q: validation applies only to string variables", v.Name))
			}
			if len(v.Choices) > 0 {
				problems = append(problems, fmt.Sprintf("variable %q: validation cannot be combined with choices", v.Name))
			}
			if _, err := regexp.Compile(v.Validation); err != nil {
				problems = append(problems, fmt.Sprintf("variable %q: invalid validation pattern: %v", v.Name, err))
			}
		}

		if v.OnlyIf != nil {
			problems = append(problems, validateOnlyIf(def, i, v)...)
		}
	}

	return problems
}

// validateOnlyIf enforces the declaration-order dependency rule: a condition
// may reference earlier declarations only.
func validateOnlyIf(def *model.Definition, pos int, v model.Variable) []string {
	var problems []string

	if v.OnlyIf.Name == "" {
		return append(problems, fmt.Sprintf("variable %q: only_if is missing the referenced variable name", v.Name))
	}

	ref := -1
	for j := range def.Variables {
		if def.Variables[j].Name == v.OnlyIf.Name {
			ref = j
			break
		}
	}
	switch {
	case ref == -1:
		msg := fmt.Sprintf("variable %q: only_if references unknown variable %q", v.Name, v.OnlyIf.Name)
		if suggestion := model.Closest(v.OnlyIf.Name, def.VariableNames()); suggestion != "" {
			msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
		}
		problems = append(problems, msg)
	case ref >= pos:
		problems = append(problems, fmt.Sprintf("variable %q: only_if references %q which is not declared earlier", v.Name, v.OnlyIf.Name))
	}

	if v.OnlyIf.Value == nil {
		problems = append(problems, fmt.Sprintf("variable %q: only_if is missing the expected value", v.Name))
	} else if _, err := model.ValueFromTOML(v.OnlyIf.Value); err != nil {
		problems = append(problems, fmt.Sprintf("variable %q: unsupported only_if value: %v", v.Name, err))
	}

	return problems
}

func validateCleanup(def *model.Definition) []string {
	var problems []string

	for i, rule := range def.Cleanup {
		if rule.Name == "" {
			problems = append(problems, fmt.Sprintf("cleanup rule %d: missing variable name", i+1))
			continue
		}
		if def.Variable(rule.Name) == nil {
			msg := fmt.Sprintf("cleanup rule %d: references unknown variable %q", i+1, rule.Name)
			if suggestion := model.Closest(rule.Name, def.VariableNames()); suggestion != "" {
				msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
			}
			problems = append(problems, msg)
		}
		if rule.Value == nil {
			problems = append(problems, fmt.Sprintf("cleanup rule %d: missing value", i+1))
		} else if _, err := model.ValueFromTOML(rule.Value); err != nil {
			problems = append(problems, fmt.Sprintf("cleanup rule %d: unsupported value: %v", i+1, err))
		}
		if len(rule.Paths) == 0 {
			problems = append(problems, fmt.Sprintf("cleanup rule %d: no paths listed", i+1))
		}
	}

	return problems
}

// ValidateFile loads a definition and checks it, including the hook paths
// that only make sense relative to the file on disk. The error return is
// for unreadable or unparsable files; structural problems come back in the
// list.
func ValidateFile(path string) ([]string, error) {
	def, err := Load(path)
	if err != nil {
		return nil, err
	}

	problems := Validate(def)

	root := filepath.Dir(path)
	problems = append(problems, validateHookPaths(root, "pre_gen_hooks", def.PreGenHooks)...)
	problems = append(problems, validateHookPaths(root, "post_gen_hooks", def.PostGenHooks)...)

	return problems, nil
}

func validateHookPaths(root, key string, paths []string) []string {
	var problems []string

	for _, p := range paths {
		if filepath.IsAbs(p) {
			problems = append(problems, fmt.Sprintf("%s entry %q: path must be relative to the template root", key, p))
			continue
		}
		if escapesRoot(p) {
			problems = append(problems, fmt.Sprintf("%s entry %q: path escapes the template root", key, p))
			continue
		}
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s entry %q: file not found", key, p))
			continue
		}
		if info.IsDir() {
			problems = append(problems, fmt.Sprintf("%s entry %q: path is a directory", key, p))
		}
	}

	return problems
}

// escapesRoot reports whether a slash-separated relative path climbs out of
// the directory it is joined to.
func escapesRoot(p string) bool {
	clean := filepath.Clean(filepath.FromSlash(p))
	return clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator))
}

func containsChoice(choices []string, def string) bool {
	for _, c := range choices {
		if c == def {
			return true
		}
	}
	return false
}

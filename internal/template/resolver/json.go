package resolver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tacogips/kickstart/internal/logging"
	"github.com/tacogips/kickstart/internal/template/model"
)

// ResolveFromJSON acquires values from a pre-supplied JSON document instead
// of prompting. The document must be a single flat object mapping variable
// names to strings, booleans or integers; every applicable variable must be
// present, there is no default fallback in this mode.
//
// Supplied values are trusted once type-matched: neither choice membership
// nor the validation pattern is re-checked, so an input file can carry
// values an interactive session could never produce.
func (r *Resolver) ResolveFromJSON(decls []model.Variable, data []byte) (*Result, error) {
	logger := logging.GetLogger("resolver")

	supplied, err := decodeInputObject(data)
	if err != nil {
		return nil, err
	}

	declared := make(map[string]bool, len(decls))
	names := make([]string, 0, len(decls))
	for _, decl := range decls {
		declared[decl.Name] = true
		names = append(names, decl.Name)
	}

	var warnings []Warning

	// Unknown keys first, sorted so repeated runs report identically.
	var unknown []string
	for key := range supplied {
		if !declared[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		msg := fmt.Sprintf("variable %q is not defined in the template", key)
		if suggestion := model.Closest(key, names); suggestion != "" {
			msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
		}
		warnings = append(warnings, Warning{Type: WarningUnknownVariable, Variable: key, Message: msg})
	}

	values := make(model.ResolvedValues, len(decls))
	for _, decl := range decls {
		ask, err := r.evaluator.ShouldAsk(decl.Name, values)
		if err != nil {
			return nil, NewEvaluatorError(decl.Name, err)
		}

		raw, ok := supplied[decl.Name]
		if !ask {
			if ok {
				logger.Debug().Str("variable", decl.Name).Msg("Supplied value ignored, condition not satisfied")
				warnings = append(warnings, Warning{
					Type:     WarningNotApplicable,
					Variable: decl.Name,
					Message:  fmt.Sprintf("variable %q provided in input but its condition is not satisfied; ignoring", decl.Name),
				})
			}
			continue
		}
		if !ok {
			return nil, NewMissingVariableError(decl.Name)
		}

		value, err := model.ValueFromJSON(raw)
		if err != nil {
			return nil, NewInvalidValueError(decl.Name, err)
		}
		values[decl.Name] = value
	}

	return &Result{Values: values, Warnings: warnings}, nil
}

// decodeInputObject parses the document with integer precision preserved
// and enforces the flat-object shape.
func decodeInputObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, NewInvalidInputError("input file is not valid JSON", err)
	}
	if dec.More() {
		return nil, NewInvalidInputError("unexpected trailing data after JSON object", nil)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, NewInvalidInputError("input must be an object", nil)
	}
	return obj, nil
}

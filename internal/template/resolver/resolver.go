// Package resolver acquires a concrete value for every applicable variable
// declaration, from an interactive prompt, a JSON input file, or computed
// defaults.
package resolver

import (
	"github.com/tacogips/kickstart/internal/logging"
	"github.com/tacogips/kickstart/internal/template/model"
)

// Evaluator reports variable applicability and computes defaults against
// the values resolved so far.
type Evaluator interface {
	// ShouldAsk reports whether the named variable applies given the
	// already-resolved values.
	ShouldAsk(name string, resolved model.ResolvedValues) (bool, error)
	// DefaultFor computes the named variable's default. The default's kind
	// also carries the variable's type: it decides how a value is acquired.
	DefaultFor(name string, resolved model.ResolvedValues) (model.Value, error)
}

// Prompter renders interactive prompts and returns typed answers.
// Implementations may re-prompt locally on malformed input; any error they
// return aborts resolution.
type Prompter interface {
	// AskString asks for free-form text. A non-empty pattern constrains the
	// accepted answers.
	AskString(prompt, def, pattern string) (string, error)
	// AskBool asks a yes/no question.
	AskBool(prompt string, def bool) (bool, error)
	// AskInteger asks for an integer.
	AskInteger(prompt string, def int64) (int64, error)
	// AskChoice asks to pick one of choices.
	AskChoice(prompt, def string, choices []string) (string, error)
}

// Options control how values are acquired.
type Options struct {
	// NoInput short-circuits every prompt with the computed default.
	NoInput bool
}

// Result is a completed resolution: the value mapping plus the non-fatal
// warnings collected along the way.
type Result struct {
	// Values maps variable names to their resolved values. Variables whose
	// condition was not satisfied have no entry.
	Values model.ResolvedValues
	// Warnings lists non-fatal notices in the order they were collected.
	Warnings []Warning
}

// Resolver walks variable declarations in declaration order and fills in
// one value per applicable declaration.
//
// Declaration order is the dependency order: a declaration's condition and
// default may reference values of earlier declarations, never later ones.
// Each loop iteration must therefore see the values of all iterations
// before it, which rules out any reordering or concurrent resolution.
type Resolver struct {
	evaluator Evaluator
	prompter  Prompter
}

// New creates a Resolver. The prompter may be nil when resolution only
// ever runs in automatic or input-file mode.
func New(evaluator Evaluator, prompter Prompter) *Resolver {
	return &Resolver{evaluator: evaluator, prompter: prompter}
}

// Resolve acquires a value for every applicable declaration, prompting
// interactively unless opts.NoInput is set. Automatic mode still consults
// the evaluator per declaration so conditions and defaults that depend on
// earlier defaulted values stay consistent.
func (r *Resolver) Resolve(decls []model.Variable, opts Options) (*Result, error) {
	logger := logging.GetLogger("resolver")

	values := make(model.ResolvedValues, len(decls))
	for _, decl := range decls {
		ask, err := r.evaluator.ShouldAsk(decl.Name, values)
		if err != nil {
			return nil, NewEvaluatorError(decl.Name, err)
		}
		if !ask {
			logger.Debug().Str("variable", decl.Name).Msg("Condition not satisfied, skipping")
			continue
		}

		def, err := r.evaluator.DefaultFor(decl.Name, values)
		if err != nil {
			return nil, NewEvaluatorError(decl.Name, err)
		}

		value, err := r.acquire(decl, def, opts)
		if err != nil {
			return nil, err
		}

		logger.Debug().Str("variable", decl.Name).Stringer("kind", value.Kind()).Msg("Variable resolved")
		values[decl.Name] = value
	}

	return &Result{Values: values}, nil
}

// acquire picks the acquisition strategy once per declaration, from the
// kind of its computed default. In automatic mode the default is trusted
// unchanged, so string validation is bypassed.
func (r *Resolver) acquire(decl model.Variable, def model.Value, opts Options) (model.Value, error) {
	if opts.NoInput {
		return def, nil
	}

	switch def.Kind() {
	case model.KindString:
		if len(decl.Choices) > 0 {
			answer, err := r.prompter.AskChoice(decl.Prompt, def.Str(), decl.Choices)
			if err != nil {
				return model.Value{}, NewPromptError(decl.Name, err)
			}
			return model.NewString(answer), nil
		}
		answer, err := r.prompter.AskString(decl.Prompt, def.Str(), decl.Validation)
		if err != nil {
			return model.Value{}, NewPromptError(decl.Name, err)
		}
		return model.NewString(answer), nil
	case model.KindBool:
		answer, err := r.prompter.AskBool(decl.Prompt, def.Bool())
		if err != nil {
			return model.Value{}, NewPromptError(decl.Name, err)
		}
		return model.NewBool(answer), nil
	default:
		answer, err := r.prompter.AskInteger(decl.Prompt, def.Int())
		if err != nil {
			return model.Value{}, NewPromptError(decl.Name, err)
		}
		return model.NewInt(answer), nil
	}
}

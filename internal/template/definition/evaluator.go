package definition

import (
	"fmt"

	"github.com/tacogips/kickstart/internal/template/model"
	"github.com/tacogips/kickstart/internal/template/render"
)

// Evaluator decides variable applicability and computes defaults for one
// template definition. It implements resolver.Evaluator.
type Evaluator struct {
	def    *model.Definition
	engine *render.Engine
}

// NewEvaluator creates an evaluator over def using engine for string
// default expressions.
func NewEvaluator(def *model.Definition, engine *render.Engine) *Evaluator {
	return &Evaluator{def: def, engine: engine}
}

// ShouldAsk reports whether the variable's only_if condition is satisfied.
// A condition referencing a variable without a resolved value is not
// satisfied, so skipping cascades through dependent variables instead of
// failing.
func (e *Evaluator) ShouldAsk(name string, resolved model.ResolvedValues) (bool, error) {
	decl := e.def.Variable(name)
	if decl == nil {
		return false, fmt.Errorf("variable %q is not declared in the template", name)
	}
	if decl.OnlyIf == nil {
		return true, nil
	}

	actual, ok := resolved[decl.OnlyIf.Name]
	if !ok {
		return false, nil
	}
	expected, err := model.ValueFromTOML(decl.OnlyIf.Value)
	if err != nil {
		return false, fmt.Errorf("only_if for variable %q: %w", name, err)
	}
	return actual.Equal(expected), nil
}

// DefaultFor computes the variable's default value. String defaults are
// template expressions rendered against the values resolved so far;
// boolean and integer defaults are used literally.
func (e *Evaluator) DefaultFor(name string, resolved model.ResolvedValues) (model.Value, error) {
	decl := e.def.Variable(name)
	if decl == nil {
		return model.Value{}, fmt.Errorf("variable %q is not declared in the template", name)
	}
	if decl.Default == nil {
		return model.Value{}, fmt.Errorf("variable %q has no default", name)
	}

	value, err := model.ValueFromTOML(decl.Default)
	if err != nil {
		return model.Value{}, fmt.Errorf("default for variable %q: %w", name, err)
	}
	if value.Kind() != model.KindString {
		return value, nil
	}

	rendered, err := e.engine.Render("default:"+name, value.Str(), resolved.TemplateData())
	if err != nil {
		return model.Value{}, fmt.Errorf("default for variable %q: %w", name, err)
	}
	return model.NewString(rendered), nil
}

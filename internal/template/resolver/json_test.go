package resolver

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tacogips/kickstart/internal/template/model"
)

func TestResolveFromJSON(t *testing.T) {
	r := New(scenarioEvaluator(false), nil)

	result, err := r.ResolveFromJSON(scenarioDecls(), []byte(`{"name":"x","use_docker":true,"port":9000}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v := result.Values["name"]; !v.Equal(model.NewString("x")) {
		t.Errorf("name: expected String(x), got %v", v)
	}
	if v := result.Values["use_docker"]; !v.Equal(model.NewBool(true)) {
		t.Errorf("use_docker: expected Boolean(true), got %v", v)
	}
	if v := result.Values["port"]; !v.Equal(model.NewInt(9000)) {
		t.Errorf("port: expected Integer(9000), got %v", v)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
}

func TestResolveFromJSON_InputShape(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"array root", `[{"name":"x"}]`},
		{"scalar root", `"name"`},
		{"number root", `42`},
		{"invalid json", `{"name":`},
		{"trailing data", `{"name":"x"}{"extra":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := scenarioEvaluator(false)
			_, err := New(ev, nil).ResolveFromJSON(scenarioDecls(), []byte(tt.input))
			if err == nil {
				t.Fatal("expected error, got none")
			}
			var rerr *ResolveError
			if !errors.As(err, &rerr) {
				t.Fatalf("expected *ResolveError, got %T", err)
			}
			if rerr.Type != ErrInvalidInput {
				t.Errorf("expected ErrInvalidInput, got %v", rerr.Type)
			}
			// Shape failures abort before any declaration is evaluated.
			if len(ev.askedFor) != 0 {
				t.Errorf("expected no evaluator calls, got %v", ev.askedFor)
			}
		})
	}
}

func TestResolveFromJSON_MissingRequired(t *testing.T) {
	_, err := New(scenarioEvaluator(false), nil).ResolveFromJSON(scenarioDecls(), []byte(`{"name":"x"}`))
	if err == nil {
		t.Fatal("expected error, got none")
	}
	var rerr *ResolveError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *ResolveError, got %T", err)
	}
	if rerr.Type != ErrMissingVariable {
		t.Errorf("expected ErrMissingVariable, got %v", rerr.Type)
	}
	if rerr.Variable != "use_docker" {
		t.Errorf("expected variable use_docker, got %q", rerr.Variable)
	}
}

func TestResolveFromJSON_InapplicableSupplied(t *testing.T) {
	r := New(scenarioEvaluator(false), nil)

	result, err := r.ResolveFromJSON(scenarioDecls(), []byte(`{"name":"x","use_docker":false,"port":9000}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Values) != 2 {
		t.Fatalf("expected 2 values, got %v", result.Values)
	}
	if _, ok := result.Values["port"]; ok {
		t.Error("port: expected supplied value discarded for inapplicable variable")
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", result.Warnings)
	}
	if result.Warnings[0].Type != WarningNotApplicable {
		t.Errorf("expected WarningNotApplicable, got %v", result.Warnings[0].Type)
	}
	if result.Warnings[0].Variable != "port" {
		t.Errorf("expected warning for port, got %q", result.Warnings[0].Variable)
	}
}

func TestResolveFromJSON_UnknownKeys(t *testing.T) {
	r := New(scenarioEvaluator(false), nil)

	input := []byte(`{"name":"x","use_docker":false,"zzz":1,"nam":"y"}`)
	result, err := r.ResolveFromJSON(scenarioDecls(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", result.Warnings)
	}
	// Sorted by key: "nam" before "zzz".
	if result.Warnings[0].Variable != "nam" || result.Warnings[1].Variable != "zzz" {
		t.Errorf("expected warnings for nam then zzz, got %v", result.Warnings)
	}
	for _, w := range result.Warnings {
		if w.Type != WarningUnknownVariable {
			t.Errorf("expected WarningUnknownVariable, got %v", w.Type)
		}
	}
	// A near-miss key gets a suggestion.
	if want := `variable "nam" is not defined in the template (did you mean "name"?)`; result.Warnings[0].Message != want {
		t.Errorf("expected %q, got %q", want, result.Warnings[0].Message)
	}

	// Unknown keys never enter the mapping.
	if len(result.Values) != 2 {
		t.Errorf("expected 2 values, got %v", result.Values)
	}
}

func TestResolveFromJSON_ValueErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		variable string
	}{
		{"float", `{"name":"x","use_docker":true,"port":9000.5}`, "port"},
		{"integral float literal", `{"name":"x","use_docker":true,"port":9000.0}`, "port"},
		{"exponent", `{"name":"x","use_docker":true,"port":1e3}`, "port"},
		{"null", `{"name":null,"use_docker":false}`, "name"},
		{"nested array", `{"name":["x"],"use_docker":false}`, "name"},
		{"nested object", `{"name":{"v":"x"},"use_docker":false}`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(scenarioEvaluator(false), nil).ResolveFromJSON(scenarioDecls(), []byte(tt.input))
			if err == nil {
				t.Fatal("expected error, got none")
			}
			var rerr *ResolveError
			if !errors.As(err, &rerr) {
				t.Fatalf("expected *ResolveError, got %T", err)
			}
			if rerr.Type != ErrInvalidValue {
				t.Errorf("expected ErrInvalidValue, got %v", rerr.Type)
			}
			if rerr.Variable != tt.variable {
				t.Errorf("expected variable %q named, got %q", tt.variable, rerr.Variable)
			}
			var verr *model.ValueError
			if !errors.As(err, &verr) {
				t.Error("expected underlying *model.ValueError to be wrapped")
			}
		})
	}
}

func TestResolveFromJSON_ChoicesNotRechecked(t *testing.T) {
	// JSON-sourced values skip the choice-membership and validation checks
	// interactive input goes through. The input file is trusted once
	// type-matched.
	decls := []model.Variable{
		{Name: "license", Prompt: "License", Choices: []string{"MIT", "Apache-2.0"}},
		{Name: "slug", Prompt: "Slug", Validation: "^[a-z]+$"},
	}
	ev := &fakeEvaluator{
		defaultForFn: func(name string, resolved model.ResolvedValues) (model.Value, error) {
			return model.NewString(""), nil
		},
	}

	result, err := New(ev, nil).ResolveFromJSON(decls, []byte(`{"license":"WTFPL","slug":"NOT VALID"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := result.Values["license"]; !v.Equal(model.NewString("WTFPL")) {
		t.Errorf("license: expected trusted String(WTFPL), got %v", v)
	}
	if v := result.Values["slug"]; !v.Equal(model.NewString("NOT VALID")) {
		t.Errorf("slug: expected trusted String(NOT VALID), got %v", v)
	}
}

func TestResolveFromJSON_RoundTrip(t *testing.T) {
	// Serializing a resolved mapping and feeding it back through the JSON
	// path reproduces the identical mapping.
	first, err := New(scenarioEvaluator(true), nil).Resolve(scenarioDecls(), Options{NoInput: true})
	if err != nil {
		t.Fatalf("automatic resolution: %v", err)
	}

	data, err := json.Marshal(first.Values)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	second, err := New(scenarioEvaluator(true), nil).ResolveFromJSON(scenarioDecls(), data)
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}

	if len(second.Values) != len(first.Values) {
		t.Fatalf("expected %v, got %v", first.Values, second.Values)
	}
	for name, v := range first.Values {
		if !second.Values[name].Equal(v) {
			t.Errorf("%s: expected %v, got %v", name, v, second.Values[name])
		}
	}
	if len(second.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", second.Warnings)
	}
}

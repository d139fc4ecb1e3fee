package model

import (
	"encoding/json"
	"strconv"
)

// Kind identifies the concrete type carried by a Value.
type Kind int

const (
	// KindString is a text value.
	KindString Kind = iota
	// KindBool is a boolean value.
	KindBool
	// KindInt is a 64-bit integer value.
	KindInt
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	default:
		return "unknown"
	}
}

// Value is a resolved variable value: a string, a boolean, or an integer.
// There are no other variants and no nested structure; every input boundary
// (template.toml defaults, JSON input files) enforces this. Values are
// immutable once constructed. The zero Value is the empty string.
type Value struct {
	kind Kind
	str  string
	b    bool
	n    int64
}

// NewString creates a string Value.
func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewBool creates a boolean Value.
func NewBool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// NewInt creates an integer Value.
func NewInt(n int64) Value {
	return Value{kind: KindInt, n: n}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the text content. It is the zero string for non-string values.
func (v Value) Str() string {
	return v.str
}

// Bool returns the boolean content. It is false for non-boolean values.
func (v Value) Bool() bool {
	return v.b
}

// Int returns the integer content. It is zero for non-integer values.
func (v Value) Int() int64 {
	return v.n
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	return v == o
}

// String formats the value the way it appears in rendered output.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.n, 10)
	default:
		return v.str
	}
}

// Native returns the underlying Go value (string, bool, or int64), suitable
// as template execution data.
func (v Value) Native() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.n
	default:
		return v.str
	}
}

// MarshalJSON writes the value as the corresponding JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Native())
}

// ValueFromJSON converts a decoded JSON value into a Value. The input must
// come from a decoder with UseNumber enabled so that numbers arrive as
// json.Number and non-integer numbers can be told apart from integers.
// Floats, null, arrays, and objects are each rejected with a distinct
// ValueError.
func ValueFromJSON(raw any) (Value, error) {
	switch val := raw.(type) {
	case string:
		return NewString(val), nil
	case bool:
		return NewBool(val), nil
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return Value{}, newValueError(ValueNotInteger, "only integer numbers are supported")
		}
		return NewInt(n), nil
	case float64:
		// Reached only when the caller decoded without UseNumber.
		return Value{}, newValueError(ValueNotInteger, "only integer numbers are supported")
	case nil:
		return Value{}, newValueError(ValueNull, "null is not supported")
	case []any:
		return Value{}, newValueError(ValueNested, "nested arrays/objects are not supported")
	case map[string]any:
		return Value{}, newValueError(ValueNested, "nested arrays/objects are not supported")
	default:
		return Value{}, newValueError(ValueUnsupported, "unsupported value type")
	}
}

// ValueFromTOML converts a decoded TOML scalar into a Value. TOML floats
// and non-scalar values have no Value counterpart and are rejected.
func ValueFromTOML(raw any) (Value, error) {
	switch val := raw.(type) {
	case string:
		return NewString(val), nil
	case bool:
		return NewBool(val), nil
	case int64:
		return NewInt(val), nil
	case int:
		return NewInt(int64(val)), nil
	case float64:
		return Value{}, newValueError(ValueNotInteger, "only integer numbers are supported")
	case []any:
		return Value{}, newValueError(ValueNested, "nested arrays/objects are not supported")
	case map[string]any:
		return Value{}, newValueError(ValueNested, "nested arrays/objects are not supported")
	default:
		return Value{}, newValueError(ValueUnsupported, "unsupported value type")
	}
}

// ResolvedValues maps variable names to their resolved values. It is built
// in declaration order: while declaration i is being resolved it holds
// exactly the values of the applicable declarations before i. After the run
// completes, ordering is irrelevant.
type ResolvedValues map[string]Value

// TemplateData converts the resolved values into plain Go values for
// template execution.
func (rv ResolvedValues) TemplateData() map[string]any {
	data := make(map[string]any, len(rv))
	for name, v := range rv {
		data[name] = v.Native()
	}
	return data
}

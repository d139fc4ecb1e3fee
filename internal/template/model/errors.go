package model

// ValueErrorType classifies a failed conversion into a Value.
type ValueErrorType int

const (
	// ValueNotInteger indicates a number that is not an integer.
	ValueNotInteger ValueErrorType = iota
	// ValueNull indicates a JSON null.
	ValueNull
	// ValueNested indicates a nested array or object.
	ValueNested
	// ValueUnsupported indicates a representation with no Value counterpart.
	ValueUnsupported
)

// String returns the string representation of the error type.
func (t ValueErrorType) String() string {
	switch t {
	case ValueNotInteger:
		return "NotInteger"
	case ValueNull:
		return "Null"
	case ValueNested:
		return "Nested"
	case ValueUnsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// ValueError reports why an external representation could not become a Value.
type ValueError struct {
	// Type is the failure classification.
	Type ValueErrorType
	// Message is the human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	return e.Message
}

// newValueError creates a new ValueError.
func newValueError(typ ValueErrorType, message string) *ValueError {
	return &ValueError{
		Type:    typ,
		Message: message,
	}
}

package definition

import "fmt"

// DefinitionErrorType represents the type of definition error.
type DefinitionErrorType int

const (
	// DefinitionNotFound indicates the definition file could not be read.
	DefinitionNotFound DefinitionErrorType = iota
	// DefinitionParseFailed indicates the file is not valid TOML.
	DefinitionParseFailed
)

// String returns the string representation of the error type.
func (t DefinitionErrorType) String() string {
	switch t {
	case DefinitionNotFound:
		return "NotFound"
	case DefinitionParseFailed:
		return "ParseFailed"
	default:
		return "Unknown"
	}
}

// DefinitionError represents a failure to load a template definition.
type DefinitionError struct {
	// Type is the error type classification.
	Type DefinitionErrorType
	// Path is the definition file path.
	Path string
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Path, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (caused by: %v)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for error wrapping.
func (e *DefinitionError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates a definition-not-found error.
func NewNotFoundError(path string, cause error) *DefinitionError {
	return &DefinitionError{
		Type:    DefinitionNotFound,
		Path:    path,
		Message: "cannot read template definition",
		Cause:   cause,
	}
}

// NewParseFailedError creates an invalid-TOML error.
func NewParseFailedError(path string, cause error) *DefinitionError {
	return &DefinitionError{
		Type:    DefinitionParseFailed,
		Path:    path,
		Message: "invalid TOML in template definition",
		Cause:   cause,
	}
}

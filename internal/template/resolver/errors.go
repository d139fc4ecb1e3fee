package resolver

import "fmt"

// ResolveErrorType represents the type of resolution error.
type ResolveErrorType int

const (
	// ErrInvalidInput indicates the input document has an unusable shape.
	ErrInvalidInput ResolveErrorType = iota
	// ErrInvalidValue indicates a supplied value has an unsupported type.
	ErrInvalidValue
	// ErrMissingVariable indicates an applicable variable was not supplied.
	ErrMissingVariable
	// ErrEvaluator indicates applicability or default computation failed.
	ErrEvaluator
	// ErrPrompt indicates an interactive prompt failed or was aborted.
	ErrPrompt
)

// String returns the string representation of the error type.
func (t ResolveErrorType) String() string {
	switch t {
	case ErrInvalidInput:
		return "InvalidInput"
	case ErrInvalidValue:
		return "InvalidValue"
	case ErrMissingVariable:
		return "MissingVariable"
	case ErrEvaluator:
		return "Evaluator"
	case ErrPrompt:
		return "Prompt"
	default:
		return "Unknown"
	}
}

// ResolveError represents a fatal variable-resolution failure.
type ResolveError struct {
	// Type is the error type classification.
	Type ResolveErrorType
	// Variable is the variable being resolved, if any.
	Variable string
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	msg := fmt.Sprintf("resolution error [%s]", e.Type.String())
	if e.Variable != "" {
		msg = fmt.Sprintf("%s for variable '%s'", msg, e.Variable)
	}
	msg = fmt.Sprintf("%s: %s", msg, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (caused by: %v)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ResolveError) Unwrap() error {
	return e.Cause
}

// NewInvalidInputError creates an input-shape error.
func NewInvalidInputError(message string, cause error) *ResolveError {
	return &ResolveError{Type: ErrInvalidInput, Message: message, Cause: cause}
}

// NewInvalidValueError creates an unsupported-value error for a variable.
func NewInvalidValueError(variable string, cause error) *ResolveError {
	return &ResolveError{
		Type:     ErrInvalidValue,
		Variable: variable,
		Message:  "unsupported value in input file",
		Cause:    cause,
	}
}

// NewMissingVariableError creates a missing-required-variable error.
func NewMissingVariableError(variable string) *ResolveError {
	return &ResolveError{
		Type:     ErrMissingVariable,
		Variable: variable,
		Message:  "required variable missing from input file",
	}
}

// NewEvaluatorError creates an evaluator-failure error.
func NewEvaluatorError(variable string, cause error) *ResolveError {
	return &ResolveError{
		Type:     ErrEvaluator,
		Variable: variable,
		Message:  "failed to evaluate variable",
		Cause:    cause,
	}
}

// NewPromptError creates a prompt-failure error.
func NewPromptError(variable string, cause error) *ResolveError {
	return &ResolveError{
		Type:     ErrPrompt,
		Variable: variable,
		Message:  "prompt failed",
		Cause:    cause,
	}
}

package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// OptionsInvalid indicates the options for a workflow are unusable.
	OptionsInvalid AppErrorType = iota
	// TemplateFetchFailed indicates template fetching failed.
	TemplateFetchFailed
	// DefinitionInvalid indicates the template definition could not be
	// loaded or failed validation.
	DefinitionInvalid
	// ResolveFailed indicates variable resolution failed.
	ResolveFailed
	// GenerateFailed indicates file tree generation failed.
	GenerateFailed
	// HookFailed indicates a lifecycle hook could not be resolved or
	// exited non-zero.
	HookFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewOptionsError creates an invalid-options error.
func NewOptionsError(message string, cause error) *AppError {
	return NewAppError(OptionsInvalid, message, cause)
}

// NewTemplateFetchError creates a template fetch error.
func NewTemplateFetchError(message string, cause error) *AppError {
	return NewAppError(TemplateFetchFailed, message, cause)
}

// NewDefinitionError creates a definition error.
func NewDefinitionError(message string, cause error) *AppError {
	return NewAppError(DefinitionInvalid, message, cause)
}

// NewResolveError creates a resolution error.
func NewResolveError(message string, cause error) *AppError {
	return NewAppError(ResolveFailed, message, cause)
}

// NewGenerateError creates a generation error.
func NewGenerateError(message string, cause error) *AppError {
	return NewAppError(GenerateFailed, message, cause)
}

// NewHookError creates a hook error.
func NewHookError(message string, cause error) *AppError {
	return NewAppError(HookFailed, message, cause)
}

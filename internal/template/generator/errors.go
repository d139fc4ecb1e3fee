package generator

import "fmt"

// GeneratorErrorType categorizes generator errors.
type GeneratorErrorType int

const (
	// GeneratorWalkFailed indicates the template tree could not be read.
	GeneratorWalkFailed GeneratorErrorType = iota
	// GeneratorRenderFailed indicates a path or file content failed to render.
	GeneratorRenderFailed
	// GeneratorInvalidPath indicates a rendered path left the output
	// directory or degenerated to nothing.
	GeneratorInvalidPath
	// GeneratorWriteFailed indicates a file or directory write failed.
	GeneratorWriteFailed
	// GeneratorCleanupFailed indicates a cleanup rule could not be applied.
	GeneratorCleanupFailed
)

// GeneratorError represents generator-specific errors.
type GeneratorError struct {
	// Type categorizes the error.
	Type GeneratorErrorType
	// Message is the error message.
	Message string
	// Path is the template or output path related to the error.
	Path string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (path: %s): %v", e.Message, e.Path, e.Cause)
		}
		return fmt.Sprintf("%s (path: %s)", e.Message, e.Path)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// newGeneratorError creates a new GeneratorError.
func newGeneratorError(typ GeneratorErrorType, message, path string, cause error) *GeneratorError {
	return &GeneratorError{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

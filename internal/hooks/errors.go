package hooks

import "fmt"

// HookErrorType categorizes hook execution errors.
type HookErrorType int

const (
	// HookStartFailed indicates the hook process could not be started.
	HookStartFailed HookErrorType = iota
	// HookExitError indicates the hook ran and exited non-zero.
	HookExitError
)

// HookError represents a hook execution failure. Hook is the file name of
// the failing hook so callers can report which hook broke the run.
type HookError struct {
	// Type categorizes the error.
	Type HookErrorType
	// Hook is the failing hook's file name.
	Hook string
	// Message is the error message.
	Message string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *HookError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("hook %q %s: %v", e.Hook, e.Message, e.Cause)
	}
	return fmt.Sprintf("hook %q %s", e.Hook, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *HookError) Unwrap() error {
	return e.Cause
}

// newHookError creates a new HookError.
func newHookError(typ HookErrorType, hook, message string, cause error) *HookError {
	return &HookError{
		Type:    typ,
		Hook:    hook,
		Message: message,
		Cause:   cause,
	}
}

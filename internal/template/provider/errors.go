package provider

import "fmt"

// ProviderErrorType represents the type of provider error.
type ProviderErrorType int

const (
	// ProviderFetchFailed indicates the template could not be fetched.
	ProviderFetchFailed ProviderErrorType = iota
	// ProviderNotFound indicates the template was not found at the source.
	ProviderNotFound
	// ProviderAuthFailed indicates authentication failed (e.g., private repo).
	ProviderAuthFailed
	// ProviderInvalidSource indicates the source string is unusable.
	ProviderInvalidSource
	// ProviderInvalidTemplate indicates the source is not a template.
	ProviderInvalidTemplate
)

// String returns the string representation of the error type.
func (t ProviderErrorType) String() string {
	switch t {
	case ProviderFetchFailed:
		return "FetchFailed"
	case ProviderNotFound:
		return "NotFound"
	case ProviderAuthFailed:
		return "AuthFailed"
	case ProviderInvalidSource:
		return "InvalidSource"
	case ProviderInvalidTemplate:
		return "InvalidTemplate"
	default:
		return "Unknown"
	}
}

// ProviderError represents a provider-specific error.
type ProviderError struct {
	// Type is the error type classification.
	Type ProviderErrorType
	// Message is the human-readable error message.
	Message string
	// Provider is the provider name (e.g., "git", "local").
	Provider string
	// Source is the template source that caused the error.
	Source string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider error [%s] for source '%s': %s (caused by: %v)",
			e.Provider, e.Type.String(), e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider error [%s] for source '%s': %s",
		e.Provider, e.Type.String(), e.Source, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a new ProviderError.
func NewProviderError(typ ProviderErrorType, provider, source, message string, cause error) *ProviderError {
	return &ProviderError{
		Type:     typ,
		Message:  message,
		Provider: provider,
		Source:   source,
		Cause:    cause,
	}
}

// NewFetchError creates a fetch failed error.
func NewFetchError(provider, source string, cause error) *ProviderError {
	return NewProviderError(ProviderFetchFailed, provider, source, "failed to fetch template", cause)
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(provider, source string) *ProviderError {
	return NewProviderError(ProviderNotFound, provider, source, "template not found", nil)
}

// NewAuthError creates an authentication failed error.
func NewAuthError(provider, source string) *ProviderError {
	return NewProviderError(ProviderAuthFailed, provider, source, "authentication failed (private repository?)", nil)
}

// NewInvalidSourceError creates an invalid source error.
func NewInvalidSourceError(provider, source string, cause error) *ProviderError {
	return NewProviderError(ProviderInvalidSource, provider, source, "invalid template source", cause)
}

// NewInvalidTemplateError creates an invalid template error.
func NewInvalidTemplateError(provider, source, message string, cause error) *ProviderError {
	return NewProviderError(ProviderInvalidTemplate, provider, source, message, cause)
}

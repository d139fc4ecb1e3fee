package resolver

// WarningType represents the type of non-fatal resolution notice.
type WarningType int

const (
	// WarningUnknownVariable flags an input key matching no declaration.
	WarningUnknownVariable WarningType = iota
	// WarningNotApplicable flags a supplied value for a variable whose
	// condition is not satisfied.
	WarningNotApplicable
)

// String returns the string representation of the warning type.
func (t WarningType) String() string {
	switch t {
	case WarningUnknownVariable:
		return "UnknownVariable"
	case WarningNotApplicable:
		return "NotApplicable"
	default:
		return "Unknown"
	}
}

// Warning is a non-fatal notice collected while resolving variables. The
// pipeline never prints warnings; the caller decides how to surface them.
type Warning struct {
	// Type is the warning classification.
	Type WarningType
	// Variable is the input key or variable name the warning refers to.
	Variable string
	// Message is the human-readable warning text.
	Message string
}

// String returns the warning message.
func (w Warning) String() string {
	return w.Message
}

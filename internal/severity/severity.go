// Package severity provides severity level constants for issues reported
// while generating a client.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

// Severity indicates the severity level of a generation issue.
type Severity int

const (
	// SeverityError indicates a problem that aborted generation.
	SeverityError Severity = iota

	// SeverityWarning indicates a best-effort substitution or a construct
	// that was skipped; the output is still produced.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

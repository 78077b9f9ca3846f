// Package issues provides the issue type collected during generation.
package issues

import (
	"fmt"

	"github.com/openapigen/openapigen/internal/severity"
)

// Issue represents a single non-fatal problem found during generation.
type Issue struct {
	// Path locates the issue (e.g. "components.schemas.Pet" or "paths./pets.get")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Operation identifies the operation being emitted, if any
	Operation *OperationContext
}

// OperationContext identifies the operation an issue was raised for.
type OperationContext struct {
	Method string
	Path   string
	Tag    string
}

// String returns "METHOD path", or "" for an empty context.
func (c *OperationContext) String() string {
	if c == nil || (c.Method == "" && c.Path == "") {
		return ""
	}
	return fmt.Sprintf("%s %s", c.Method, c.Path)
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	where := i.Path
	if op := i.Operation.String(); op != "" {
		if where == "" {
			where = op
		} else {
			where = fmt.Sprintf("%s (%s)", where, op)
		}
	}
	if where == "" {
		return fmt.Sprintf("%s %s", symbol, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, where, i.Message)
}

// Warning builds a warning-level issue.
func Warning(path, format string, args ...any) Issue {
	return Issue{Path: path, Message: fmt.Sprintf(format, args...), Severity: severity.SeverityWarning}
}

// Count returns the number of issues at the given severity.
func Count(list []Issue, s severity.Severity) int {
	n := 0
	for _, i := range list {
		if i.Severity == s {
			n++
		}
	}
	return n
}

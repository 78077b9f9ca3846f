// Package cliutil provides output helpers for the openapigen command.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/openapigen/openapigen/internal/issues"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteIssues prints one line per issue, prefixed with its severity.
// Nothing is written for an empty list.
func WriteIssues(w io.Writer, list []issues.Issue) {
	for _, i := range list {
		Writef(w, "%s: %s\n", i.Severity, i.String())
	}
}

// Plural returns word with an "s" appended unless n is 1.
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

package schemautil

import (
	"fmt"

	"github.com/openapigen/openapigen/parser"
)

type sharedEntry struct {
	name      string
	canonical string
}

// SharedTypes matches schemas against a table of named shared types.
type SharedTypes struct {
	entries []sharedEntry
	byText  map[string]string
}

// NewSharedTypes precomputes the canonical text of every table entry.
// A nil table yields a matcher that never matches.
func NewSharedTypes(table *parser.OrderedMap[parser.Schema]) (*SharedTypes, error) {
	st := &SharedTypes{byText: make(map[string]string, table.Len())}
	for name, s := range table.All() {
		text, err := Canonical(s)
		if err != nil {
			return nil, fmt.Errorf("shared type %s: %w", name, err)
		}
		st.entries = append(st.entries, sharedEntry{name: name, canonical: text})
		if _, dup := st.byText[text]; !dup {
			st.byText[text] = name
		}
	}
	return st, nil
}

// Match returns the name of the first declared shared type structurally
// equal to s, ignoring nullability.
func (st *SharedTypes) Match(s parser.Schema) (string, bool, error) {
	if st == nil || len(st.entries) == 0 || s == nil {
		return "", false, nil
	}
	text, err := Canonical(s)
	if err != nil {
		return "", false, err
	}
	name, ok := st.byText[text]
	return name, ok, nil
}

// Names returns the shared type names in declared order.
func (st *SharedTypes) Names() []string {
	if st == nil {
		return nil
	}
	names := make([]string, len(st.entries))
	for i, e := range st.entries {
		names[i] = e.name
	}
	return names
}

// Len returns the number of shared types.
func (st *SharedTypes) Len() int {
	if st == nil {
		return 0
	}
	return len(st.entries)
}

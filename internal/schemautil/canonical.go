package schemautil

import (
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-json"

	"github.com/openapigen/openapigen/parser"
)

// Canonical returns the canonical text of s with its nullable keyword
// cleared. Two schemas are structurally equal exactly when their canonical
// texts are equal: object keys are sorted and numbers normalized (RFC 8785),
// while array order, such as alternatives and required lists, is kept.
func Canonical(s parser.Schema) (string, error) {
	if s == nil {
		return "", fmt.Errorf("schemautil: cannot canonicalize a nil schema")
	}
	data, err := json.Marshal(parser.WithNullable(s, nil))
	if err != nil {
		return "", fmt.Errorf("schemautil: encoding schema: %w", err)
	}
	v := jsontext.Value(data)
	if err := v.Canonicalize(); err != nil {
		return "", fmt.Errorf("schemautil: canonicalizing schema: %w", err)
	}
	return string(v), nil
}

// Package schemautil provides the structural comparison behind shared-type
// deduplication and small helpers for primitive type tags.
package schemautil

import "github.com/openapigen/openapigen/parser"

// GetSchemaTypes returns the declared type tags of a primitive schema. Other
// variants and nil return nil.
//
// Examples:
//   - OAS 3.0: {"type": "string"} returns ["string"]
//   - OAS 3.1: {"type": ["string", "null"]} returns ["string", "null"]
func GetSchemaTypes(s parser.Schema) []string {
	p, ok := s.(*parser.Primitive)
	if !ok {
		return nil
	}
	return p.Types
}

// GetPrimaryType returns the first non-null type tag, "null" when that is
// the only tag, or "" when no tag is declared.
func GetPrimaryType(s parser.Schema) string {
	types := GetSchemaTypes(s)
	for _, t := range types {
		if t != parser.TypeNull {
			return t
		}
	}
	if len(types) > 0 {
		return types[0]
	}
	return ""
}

// HasType checks if the schema includes the specified type tag.
func HasType(s parser.Schema, targetType string) bool {
	for _, t := range GetSchemaTypes(s) {
		if t == targetType {
			return true
		}
	}
	return false
}

// IsUntyped reports whether s is a primitive with no type tag.
func IsUntyped(s parser.Schema) bool {
	p, ok := s.(*parser.Primitive)
	return ok && p.IsUntyped()
}

// IsBinary reports whether s is a string primitive with format binary.
func IsBinary(s parser.Schema) bool {
	p, ok := s.(*parser.Primitive)
	return ok && p.IsBinary()
}

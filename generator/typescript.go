// This file maps schema nodes to TypeScript type expressions.

package generator

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/openapigen/openapigen/internal/naming"
	"github.com/openapigen/openapigen/oaserrors"
	"github.com/openapigen/openapigen/parser"
	"github.com/openapigen/openapigen/resolver"
)

// indentStep is the width of one nesting level in generated object types.
const indentStep = 4

const nullPrefix = "null | "

// Fallback type names used when a schema carries no usable shape.
const (
	tsAny   = "any"
	tsNever = "never"
	tsVoid  = "void"
	tsBlob  = "Blob"
	tsFile  = "File"
)

// emitType renders s at the given indentation. A schema structurally equal
// to a shared type is emitted as that type's name; the check runs on s as
// written and again on every schema reached through a reference.
func (e *emitter) emitType(s parser.Schema, indent int, in resolver.Inherited) (string, error) {
	if s == nil {
		return tsAny, nil
	}
	name, ok, err := e.shared.Match(s)
	if err != nil {
		return "", err
	}
	if ok {
		return withNull(s, name), nil
	}
	body, err := e.rawType(s, indent, in)
	if err != nil {
		return "", err
	}
	return withNull(s, body), nil
}

// withNull prefixes t with a null member when s is nullable. The prefix is
// never doubled.
func withNull(s parser.Schema, t string) string {
	if !parser.IsNullable(s) || strings.HasPrefix(t, nullPrefix) || t == "null" {
		return t
	}
	return nullPrefix + t
}

// rawType renders s without the shared-type lookup on s itself.
func (e *emitter) rawType(s parser.Schema, indent int, in resolver.Inherited) (string, error) {
	switch v := s.(type) {
	case *parser.Ref:
		return e.refType(v, indent, in)
	case *parser.Composed:
		return e.composedType(v, indent, in)
	case *parser.Array:
		item, err := e.emitType(v.Items, indent, resolver.Inherited{})
		if err != nil {
			return "", err
		}
		return "Array<" + item + ">", nil
	case *parser.Object:
		return e.objectType(v, indent, in)
	case *parser.Enum:
		return enumType(v)
	case *parser.Primitive:
		return primitiveType(v), nil
	default:
		return "", &oaserrors.UnsupportedShapeError{Message: fmt.Sprintf("schema variant %T", s)}
	}
}

func (e *emitter) refType(ref *parser.Ref, indent int, in resolver.Inherited) (string, error) {
	name, target, err := e.resolver.Component(e.rctx, ref)
	if err != nil {
		return "", err
	}
	// A component that re-enters its own expansion is emitted as any at the
	// point of re-entry; the outer levels keep their structure.
	if e.expanding[name] {
		e.logger.Debug("recursive reference emitted as any", "component", name)
		return tsAny, nil
	}
	e.expanding[name] = true
	defer delete(e.expanding, name)
	return e.emitType(target, indent, in)
}

func (e *emitter) composedType(c *parser.Composed, indent int, in resolver.Inherited) (string, error) {
	alts, inner := e.resolver.Alternatives(c, in)
	if len(alts) == 0 {
		return tsNever, nil
	}
	parts := make([]string, 0, len(alts))
	for _, alt := range alts {
		t, err := e.emitType(alt, indent, inner)
		if err != nil {
			return "", err
		}
		parts = append(parts, t)
	}
	return strings.Join(parts, " | "), nil
}

func (e *emitter) objectType(o *parser.Object, indent int, in resolver.Inherited) (string, error) {
	var b strings.Builder
	b.WriteString("{\n")
	for _, f := range e.resolver.Fields(o, in) {
		t, err := e.emitType(f.Schema, indent+indentStep, resolver.Inherited{})
		if err != nil {
			return "", err
		}
		b.WriteString(pad(indent))
		b.WriteString(naming.PropertyKey(f.Name))
		if !f.Required {
			b.WriteByte('?')
		}
		b.WriteString(": ")
		b.WriteString(t)
		b.WriteByte('\n')
	}
	if o.AdditionalProperties != nil {
		t, err := e.emitType(o.AdditionalProperties, indent+indentStep, resolver.Inherited{})
		if err != nil {
			return "", err
		}
		b.WriteString(pad(indent))
		b.WriteString("[key: string]: ")
		b.WriteString(t)
		b.WriteByte('\n')
	}
	b.WriteString(pad(indent - indentStep))
	b.WriteByte('}')
	return b.String(), nil
}

// enumType renders one literal type per value. Null entries are skipped.
func enumType(en *parser.Enum) (string, error) {
	parts := make([]string, 0, len(en.Values))
	for _, v := range en.Values {
		if v == nil {
			continue
		}
		lit, err := literal(v)
		if err != nil {
			return "", err
		}
		parts = append(parts, lit)
	}
	if len(parts) == 0 {
		return tsNever, nil
	}
	return strings.Join(parts, " | "), nil
}

// literal renders a decoded JSON value as a TypeScript literal.
func literal(v any) (string, error) {
	if s, ok := v.(string); ok {
		return naming.Quote(s), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding literal %v: %w", v, err)
	}
	return string(b), nil
}

func primitiveType(p *parser.Primitive) string {
	if p.IsUntyped() {
		return tsAny
	}
	parts := make([]string, 0, len(p.Types))
	seen := make(map[string]bool, len(p.Types))
	for _, kind := range p.Types {
		t := kindType(kind, p.Format)
		if seen[t] {
			continue
		}
		seen[t] = true
		parts = append(parts, t)
	}
	return strings.Join(parts, " | ")
}

func kindType(kind, format string) string {
	switch kind {
	case parser.TypeString:
		if format == parser.FormatBinary {
			return tsFile
		}
		return "string"
	case parser.TypeInteger, parser.TypeNumber:
		return "number"
	case parser.TypeBoolean:
		return "boolean"
	case parser.TypeNull:
		return "null"
	case parser.TypeArray:
		return "Array<any>"
	case parser.TypeObject:
		return "{ [key: string]: any }"
	default:
		return tsAny
	}
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

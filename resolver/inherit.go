package resolver

import (
	"slices"

	"github.com/openapigen/openapigen/parser"
)

// Inherited is the required list and property map a composed schema passes
// down to each of its alternatives.
type Inherited struct {
	Required   []string
	Properties *parser.OrderedMap[parser.Schema]
}

// IsEmpty reports whether nothing is inherited.
func (in Inherited) IsEmpty() bool {
	return len(in.Required) == 0 && in.Properties.Len() == 0
}

// Extend returns the concatenation of in with required and props. The
// receiver is not modified and the result never loses an entry of in; a
// property redeclared by props keeps its inherited position.
func (in Inherited) Extend(required []string, props *parser.OrderedMap[parser.Schema]) Inherited {
	out := Inherited{Required: slices.Concat(in.Required, required)}
	if in.Properties.Len() == 0 && props.Len() == 0 {
		return out
	}
	out.Properties = parser.NewOrderedMap[parser.Schema]()
	for k, v := range in.Properties.All() {
		out.Properties.Set(k, v)
	}
	for k, v := range props.All() {
		out.Properties.Set(k, v)
	}
	return out
}

// Alternatives returns the alternatives of c and the sets each of them
// inherits.
func (r *Resolver) Alternatives(c *parser.Composed, in Inherited) ([]parser.Schema, Inherited) {
	return c.Alternatives, in.Extend(c.Required, c.Properties)
}

// Field is one property of an object after inheritance is applied.
type Field struct {
	Name     string
	Schema   parser.Schema
	Required bool
}

// Fields lists the properties of o, inherited ones first. An own property
// with an inherited name replaces the inherited schema in place. A field is
// required when it appears in either required list.
func (r *Resolver) Fields(o *parser.Object, in Inherited) []Field {
	merged := in.Extend(o.Required, o.Properties)
	fields := make([]Field, 0, merged.Properties.Len())
	for name, s := range merged.Properties.All() {
		fields = append(fields, Field{
			Name:     name,
			Schema:   s,
			Required: o.IsRequired(name) || slices.Contains(in.Required, name),
		})
	}
	return fields
}

package parser

import (
	"slices"
	"strings"
)

// Kind identifies which variant of the Schema union a node is.
type Kind string

const (
	// KindRef is a $ref to a named component.
	KindRef Kind = "ref"
	// KindComposed is an anyOf/oneOf union.
	KindComposed Kind = "composed"
	// KindArray is a homogeneous sequence.
	KindArray Kind = "array"
	// KindObject is a record with named properties.
	KindObject Kind = "object"
	// KindEnum is a set of literal values.
	KindEnum Kind = "enum"
	// KindPrimitive is a scalar with zero or more type tags.
	KindPrimitive Kind = "primitive"
)

// Primitive type tags.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeNull    = "null"
	TypeArray   = "array"
	TypeObject  = "object"
)

// FormatBinary marks a string schema carrying file content.
const FormatBinary = "binary"

// Schema is one node of the schema language. It is a closed union: the only
// implementations are *Ref, *Composed, *Array, *Object, *Enum and *Primitive.
// Consumers switch on the concrete type.
type Schema interface {
	// Kind reports the variant.
	Kind() Kind
	// MarshalJSON encodes the node in OpenAPI form with declaration order kept.
	MarshalJSON() ([]byte, error)

	meta() *Meta
	clone() Schema
}

// Meta holds the keywords every variant carries regardless of its shape.
type Meta struct {
	// Nullable is nil when the keyword is absent.
	Nullable *bool
	// Default is the declared default value, valid when HasDefault is set.
	Default    any
	HasDefault bool
}

func (m *Meta) meta() *Meta { return m }

// Ref points at a named entry in components/schemas.
type Ref struct {
	Meta
	Ref string
}

// Name returns the component name, the last segment of the reference.
func (r *Ref) Name() string {
	if i := strings.LastIndexByte(r.Ref, '/'); i >= 0 {
		return r.Ref[i+1:]
	}
	return r.Ref
}

// Discriminator is carried through for round trips only.
type Discriminator struct {
	PropertyName string
	Mapping      *OrderedMap[string]
}

// Composed is an anyOf or oneOf union. Required and Properties are inherited
// by every alternative.
type Composed struct {
	Meta
	// Keyword is "anyOf" or "oneOf"; both emit the same union.
	Keyword       string
	Alternatives  []Schema
	Required      []string
	Properties    *OrderedMap[Schema]
	Discriminator *Discriminator
}

// Array is a sequence of Items.
type Array struct {
	Meta
	Items Schema
}

// Object is a record. AdditionalProperties, when set, describes an open map.
type Object struct {
	Meta
	Properties           *OrderedMap[Schema]
	Required             []string
	AdditionalProperties Schema
}

// IsRequired reports whether name is in the required list.
func (o *Object) IsRequired(name string) bool {
	return slices.Contains(o.Required, name)
}

// Enum is a list of literal values. Nil entries are JSON null.
type Enum struct {
	Meta
	Values []any
}

// Primitive is a scalar. Types is empty when the document gave no type.
type Primitive struct {
	Meta
	Types  []string
	Format string
}

// HasType reports whether t is one of the declared type tags.
func (p *Primitive) HasType(t string) bool {
	return slices.Contains(p.Types, t)
}

// IsUntyped reports whether no type tag was declared.
func (p *Primitive) IsUntyped() bool {
	return len(p.Types) == 0
}

// IsBinary reports whether the primitive is a string carrying file content.
func (p *Primitive) IsBinary() bool {
	return p.HasType(TypeString) && p.Format == FormatBinary
}

func (s *Ref) Kind() Kind       { return KindRef }
func (s *Composed) Kind() Kind  { return KindComposed }
func (s *Array) Kind() Kind     { return KindArray }
func (s *Object) Kind() Kind    { return KindObject }
func (s *Enum) Kind() Kind      { return KindEnum }
func (s *Primitive) Kind() Kind { return KindPrimitive }

func (s *Ref) clone() Schema       { c := *s; return &c }
func (s *Composed) clone() Schema  { c := *s; return &c }
func (s *Array) clone() Schema     { c := *s; return &c }
func (s *Object) clone() Schema    { c := *s; return &c }
func (s *Enum) clone() Schema      { c := *s; return &c }
func (s *Primitive) clone() Schema { c := *s; return &c }

// MetaOf returns the shared keywords of s. The result aliases s.
func MetaOf(s Schema) *Meta {
	return s.meta()
}

// IsNullable reports whether s is explicitly marked nullable.
func IsNullable(s Schema) bool {
	if s == nil {
		return false
	}
	n := s.meta().Nullable
	return n != nil && *n
}

// WithNullable returns a shallow copy of s with its nullable keyword set to
// nullable. The original node is not modified. A nil schema stays nil.
func WithNullable(s Schema, nullable *bool) Schema {
	if s == nil {
		return nil
	}
	c := s.clone()
	c.meta().Nullable = nullable
	return c
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openapigen/openapigen/oaserrors"
)

func decodeSchemaString(t *testing.T, src string) (Schema, error) {
	t.Helper()
	node, err := DecodeNode([]byte(src))
	require.NoError(t, err)
	return DecodeSchema(node)
}

func mustDecodeSchema(t *testing.T, src string) Schema {
	t.Helper()
	s, err := decodeSchemaString(t, src)
	require.NoError(t, err)
	return s
}

func TestDecodeSchemaVariants(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind Kind
	}{
		{"ref", `{"$ref": "#/components/schemas/Pet"}`, KindRef},
		{"ref wins over type", `{"$ref": "#/components/schemas/Pet", "type": "object"}`, KindRef},
		{"anyOf", `{"anyOf": [{"type": "string"}]}`, KindComposed},
		{"oneOf", `{"oneOf": [{"type": "string"}]}`, KindComposed},
		{"items without type", `{"items": {"type": "string"}}`, KindArray},
		{"type array without items", `{"type": "array"}`, KindArray},
		{"enum", `{"type": "string", "enum": ["a"]}`, KindEnum},
		{"type object", `{"type": "object"}`, KindObject},
		{"properties only", `{"properties": {"a": {}}}`, KindObject},
		{"required only", `{"required": ["a"]}`, KindObject},
		{"additionalProperties only", `{"additionalProperties": {"type": "string"}}`, KindObject},
		{"string", `{"type": "string"}`, KindPrimitive},
		{"empty", `{}`, KindPrimitive},
		{"true schema", `true`, KindPrimitive},
		{"yaml", "type: integer\nformat: int64\n", KindPrimitive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustDecodeSchema(t, tt.src)
			assert.Equal(t, tt.kind, s.Kind())
		})
	}
}

func TestDecodeSchemaDetails(t *testing.T) {
	t.Run("ref name", func(t *testing.T) {
		s := mustDecodeSchema(t, `{"$ref": "#/components/schemas/Pet"}`)
		ref := s.(*Ref)
		assert.Equal(t, "Pet", ref.Name())
	})

	t.Run("composed carries inherited sets", func(t *testing.T) {
		s := mustDecodeSchema(t, `{
			"oneOf": [{"$ref": "#/components/schemas/Cat"}, {"$ref": "#/components/schemas/Dog"}],
			"required": ["kind"],
			"properties": {"kind": {"type": "string"}},
			"discriminator": {"propertyName": "kind", "mapping": {"cat": "#/components/schemas/Cat"}}
		}`)
		c := s.(*Composed)
		assert.Equal(t, "oneOf", c.Keyword)
		assert.Len(t, c.Alternatives, 2)
		assert.Equal(t, []string{"kind"}, c.Required)
		assert.Equal(t, []string{"kind"}, c.Properties.Keys())
		require.NotNil(t, c.Discriminator)
		assert.Equal(t, "kind", c.Discriminator.PropertyName)
		assert.Equal(t, []string{"cat"}, c.Discriminator.Mapping.Keys())
	})

	t.Run("array without items gets untyped item", func(t *testing.T) {
		a := mustDecodeSchema(t, `{"type": "array"}`).(*Array)
		item, ok := a.Items.(*Primitive)
		require.True(t, ok)
		assert.True(t, item.IsUntyped())
	})

	t.Run("enum keeps null entries", func(t *testing.T) {
		e := mustDecodeSchema(t, `{"enum": ["a", null, "b"]}`).(*Enum)
		assert.Equal(t, []any{"a", nil, "b"}, e.Values)
	})

	t.Run("object property order", func(t *testing.T) {
		o := mustDecodeSchema(t, `{"type": "object", "properties": {"zeta": {}, "alpha": {}, "mid": {}}, "required": ["alpha"]}`).(*Object)
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, o.Properties.Keys())
		assert.True(t, o.IsRequired("alpha"))
		assert.False(t, o.IsRequired("zeta"))
	})

	t.Run("additionalProperties true is an open map", func(t *testing.T) {
		o := mustDecodeSchema(t, `{"type": "object", "additionalProperties": true}`).(*Object)
		require.NotNil(t, o.AdditionalProperties)
		assert.Equal(t, KindPrimitive, o.AdditionalProperties.Kind())
	})

	t.Run("additionalProperties false is closed", func(t *testing.T) {
		o := mustDecodeSchema(t, `{"type": "object", "additionalProperties": false}`).(*Object)
		assert.Nil(t, o.AdditionalProperties)
	})

	t.Run("type array on primitive", func(t *testing.T) {
		p := mustDecodeSchema(t, `{"type": ["string", "null"]}`).(*Primitive)
		assert.Equal(t, []string{"string", "null"}, p.Types)
		assert.False(t, IsNullable(p))
	})

	t.Run("null in type array marks containers nullable", func(t *testing.T) {
		a := mustDecodeSchema(t, `{"type": ["array", "null"], "items": {"type": "string"}}`)
		assert.True(t, IsNullable(a))
		o := mustDecodeSchema(t, `{"type": ["object", "null"]}`)
		assert.True(t, IsNullable(o))
	})

	t.Run("meta keywords", func(t *testing.T) {
		p := mustDecodeSchema(t, `{"type": "string", "format": "binary", "nullable": true, "default": "x"}`).(*Primitive)
		assert.True(t, p.IsBinary())
		assert.True(t, IsNullable(p))
		assert.True(t, p.HasDefault)
		assert.Equal(t, "x", p.Default)
	})

	t.Run("explicit nullable false is kept", func(t *testing.T) {
		s := mustDecodeSchema(t, `{"type": "string", "nullable": false}`)
		require.NotNil(t, MetaOf(s).Nullable)
		assert.False(t, IsNullable(s))
	})
}

func TestDecodeSchemaErrors(t *testing.T) {
	t.Run("false schema", func(t *testing.T) {
		_, err := decodeSchemaString(t, `false`)
		assert.ErrorIs(t, err, oaserrors.ErrUnsupportedShape)
	})

	t.Run("allOf", func(t *testing.T) {
		_, err := decodeSchemaString(t, `{"allOf": [{"type": "string"}]}`)
		assert.ErrorIs(t, err, oaserrors.ErrUnsupportedShape)
	})

	t.Run("scalar", func(t *testing.T) {
		_, err := decodeSchemaString(t, `"string"`)
		assert.ErrorIs(t, err, oaserrors.ErrParse)
	})

	t.Run("bad nested property carries location", func(t *testing.T) {
		_, err := decodeSchemaString(t, `{"properties": {"a": {"nullable": "maybe"}}}`)
		require.ErrorIs(t, err, oaserrors.ErrParse)
		assert.Contains(t, err.Error(), "properties.a.nullable")
	})
}

func TestWithNullable(t *testing.T) {
	orig := &Object{Meta: Meta{Nullable: BoolPtr(true)}, Required: []string{"a"}}

	cleared := WithNullable(orig, nil)

	assert.Nil(t, MetaOf(cleared).Nullable)
	assert.True(t, IsNullable(orig), "original must not change")
	assert.Equal(t, orig.Required, cleared.(*Object).Required)
	assert.Nil(t, WithNullable(nil, BoolPtr(true)))
	assert.False(t, IsNullable(nil))
}

func TestSchemaMarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		want   string
	}{
		{
			"object keeps property order",
			&Object{
				Properties: func() *OrderedMap[Schema] {
					m := NewOrderedMap[Schema]()
					m.Set("b", &Primitive{Types: []string{"string"}})
					m.Set("a", &Primitive{Types: []string{"integer"}})
					return m
				}(),
				Required: []string{"b"},
			},
			`{"type":"object","properties":{"b":{"type":"string"},"a":{"type":"integer"}},"required":["b"]}`,
		},
		{"ref with nullable", &Ref{Ref: "#/components/schemas/A", Meta: Meta{Nullable: BoolPtr(true)}}, `{"$ref":"#/components/schemas/A","nullable":true}`},
		{"type array", &Primitive{Types: []string{"string", "null"}}, `{"type":["string","null"]}`},
		{"untyped", &Primitive{}, `{}`},
		{"enum with default", &Enum{Values: []any{"a", nil}, Meta: Meta{HasDefault: true, Default: "a"}}, `{"enum":["a",null],"default":"a"}`},
		{"array", &Array{Items: &Primitive{Types: []string{"string"}, Format: "binary"}}, `{"type":"array","items":{"type":"string","format":"binary"}}`},
		{"composed", &Composed{Keyword: "oneOf", Alternatives: []Schema{&Ref{Ref: "#/x/A"}}}, `{"oneOf":[{"$ref":"#/x/A"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.schema.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestSchemaRoundTrip(t *testing.T) {
	srcs := []string{
		`{"type":"object","properties":{"b":{"type":"string","nullable":true},"a":{"type":"array","items":{"$ref":"#/components/schemas/A"}}},"required":["a"],"additionalProperties":{"type":"integer"}}`,
		`{"anyOf":[{"type":"string"},{"enum":["x","y"]}],"required":["id"],"properties":{"id":{"type":"integer","default":0}}}`,
		`{"type":["number","null"],"format":"double"}`,
	}
	for _, src := range srcs {
		first := mustDecodeSchema(t, src)
		data, err := first.MarshalJSON()
		require.NoError(t, err)
		second := mustDecodeSchema(t, string(data))
		again, err := second.MarshalJSON()
		require.NoError(t, err)
		assert.JSONEq(t, src, string(data))
		assert.Equal(t, string(data), string(again))
	}
}

package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openapigen/openapigen/parser"
)

func props(pairs ...any) *parser.OrderedMap[parser.Schema] {
	m := parser.NewOrderedMap[parser.Schema]()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1].(parser.Schema))
	}
	return m
}

func str() parser.Schema { return &parser.Primitive{Types: []string{"string"}} }
func num() parser.Schema { return &parser.Primitive{Types: []string{"number"}} }

func TestInheritedExtend(t *testing.T) {
	base := Inherited{Required: []string{"a"}, Properties: props("a", str())}

	ext := base.Extend([]string{"b"}, props("b", num()))

	assert.Equal(t, []string{"a", "b"}, ext.Required)
	assert.Equal(t, []string{"a", "b"}, ext.Properties.Keys())
	assert.Equal(t, []string{"a"}, base.Required, "receiver is unchanged")
	assert.Equal(t, []string{"a"}, base.Properties.Keys(), "receiver is unchanged")

	assert.True(t, Inherited{}.IsEmpty())
	assert.True(t, Inherited{}.Extend(nil, nil).IsEmpty())
	assert.False(t, ext.IsEmpty())
}

func TestAlternatives(t *testing.T) {
	r := New(nil)
	c := &parser.Composed{
		Alternatives: []parser.Schema{&parser.Object{}, &parser.Object{}},
		Required:     []string{"kind"},
		Properties:   props("kind", str()),
	}
	alts, in := r.Alternatives(c, Inherited{Required: []string{"id"}, Properties: props("id", num())})

	assert.Len(t, alts, 2)
	assert.Equal(t, []string{"id", "kind"}, in.Required)
	assert.Equal(t, []string{"id", "kind"}, in.Properties.Keys())
}

func TestFields(t *testing.T) {
	r := New(nil)
	o := &parser.Object{
		Properties: props("name", str(), "id", str()),
		Required:   []string{"name"},
	}
	in := Inherited{Required: []string{"kind"}, Properties: props("kind", str(), "id", num())}

	fields := r.Fields(o, in)

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"kind", "id", "name"}, names, "inherited first, own overrides in place")
	assert.True(t, fields[0].Required)
	assert.False(t, fields[1].Required)
	assert.True(t, fields[2].Required)
	assert.Equal(t, []string{"string"}, fields[1].Schema.(*parser.Primitive).Types, "own schema wins")

	assert.Empty(t, r.Fields(&parser.Object{}, Inherited{}))
}

package parser

import (
	"fmt"
	"slices"

	"go.yaml.in/yaml/v4"

	"github.com/openapigen/openapigen/oaserrors"
)

// DecodeSchema decodes one schema node. The variant is chosen in this order:
// $ref, anyOf/oneOf, array (items or type array), enum, object (type object,
// properties, required or additionalProperties), primitive.
func DecodeSchema(node *yaml.Node) (Schema, error) {
	return decodeSchema(node, "")
}

func decodeSchema(node *yaml.Node, path string) (Schema, error) {
	n := resolveNode(node)
	if n == nil {
		return nil, nodeError(node, path, "expected a schema")
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!bool" {
		if n.Value == "true" {
			return &Primitive{}, nil
		}
		return nil, &oaserrors.UnsupportedShapeError{Location: path, Message: "the false schema has no TypeScript rendering"}
	}
	m, err := asMap(n, path)
	if err != nil {
		return nil, err
	}
	if m.has("allOf") {
		return nil, &oaserrors.UnsupportedShapeError{Location: path, Message: "allOf is not supported"}
	}

	var meta Meta
	if meta.Nullable, err = m.boolPtr("nullable", path); err != nil {
		return nil, err
	}
	if m.has("default") {
		meta.HasDefault = true
		if meta.Default, err = decodeValue(m.get("default"), joinPath(path, "default")); err != nil {
			return nil, err
		}
	}

	types, err := m.strings("type", path)
	if err != nil {
		return nil, err
	}

	switch {
	case m.has("$ref"):
		ref, err := m.str("$ref", path)
		if err != nil {
			return nil, err
		}
		return &Ref{Meta: meta, Ref: ref}, nil

	case m.has("anyOf") || m.has("oneOf"):
		return decodeComposed(m, meta, path)

	case m.has("items") || slices.Contains(types, TypeArray):
		markNullableFromTypes(&meta, types)
		s := &Array{Meta: meta}
		if isNull(m.get("items")) {
			s.Items = &Primitive{}
		} else if s.Items, err = decodeSchema(m.get("items"), joinPath(path, "items")); err != nil {
			return nil, err
		}
		return s, nil

	case m.has("enum"):
		return decodeEnum(m, meta, path)

	case slices.Contains(types, TypeObject) || m.has("properties") || m.has("required") || m.has("additionalProperties"):
		markNullableFromTypes(&meta, types)
		return decodeObject(m, meta, path)

	default:
		format, err := m.str("format", path)
		if err != nil {
			return nil, err
		}
		return &Primitive{Meta: meta, Types: types, Format: format}, nil
	}
}

// markNullableFromTypes applies a 3.1 "null" type tag to a non-primitive
// variant, which has nowhere else to keep it.
func markNullableFromTypes(meta *Meta, types []string) {
	if slices.Contains(types, TypeNull) && meta.Nullable == nil {
		meta.Nullable = BoolPtr(true)
	}
}

func decodeComposed(m *nodeMap, meta Meta, path string) (Schema, error) {
	s := &Composed{Meta: meta, Keyword: "anyOf"}
	if !m.has("anyOf") {
		s.Keyword = "oneOf"
	}
	items, err := m.seq(s.Keyword, path)
	if err != nil {
		return nil, err
	}
	for i, item := range items {
		alt, err := decodeSchema(item, fmt.Sprintf("%s[%d]", joinPath(path, s.Keyword), i))
		if err != nil {
			return nil, err
		}
		s.Alternatives = append(s.Alternatives, alt)
	}
	if s.Required, err = m.strings("required", path); err != nil {
		return nil, err
	}
	if s.Properties, err = decodeProperties(m, path); err != nil {
		return nil, err
	}
	d, err := m.optMap("discriminator", path)
	if err != nil {
		return nil, err
	}
	if d != nil {
		dpath := joinPath(path, "discriminator")
		s.Discriminator = &Discriminator{}
		if s.Discriminator.PropertyName, err = d.str("propertyName", dpath); err != nil {
			return nil, err
		}
		mapping, err := d.optMap("mapping", dpath)
		if err != nil {
			return nil, err
		}
		if mapping != nil {
			s.Discriminator.Mapping = NewOrderedMap[string]()
			for _, k := range mapping.keys {
				v, err := mapping.str(k, joinPath(dpath, "mapping"))
				if err != nil {
					return nil, err
				}
				s.Discriminator.Mapping.Set(k, v)
			}
		}
	}
	return s, nil
}

func decodeEnum(m *nodeMap, meta Meta, path string) (Schema, error) {
	items, err := m.seq("enum", path)
	if err != nil {
		return nil, err
	}
	s := &Enum{Meta: meta, Values: make([]any, 0, len(items))}
	for i, item := range items {
		v, err := decodeValue(item, fmt.Sprintf("%s[%d]", joinPath(path, "enum"), i))
		if err != nil {
			return nil, err
		}
		s.Values = append(s.Values, v)
	}
	return s, nil
}

func decodeObject(m *nodeMap, meta Meta, path string) (Schema, error) {
	s := &Object{Meta: meta}
	var err error
	if s.Properties, err = decodeProperties(m, path); err != nil {
		return nil, err
	}
	if s.Required, err = m.strings("required", path); err != nil {
		return nil, err
	}
	ap := resolveNode(m.get("additionalProperties"))
	switch {
	case isNull(ap):
	case ap.Kind == yaml.ScalarNode && ap.Tag == "!!bool":
		if ap.Value == "true" {
			s.AdditionalProperties = &Primitive{}
		}
	default:
		if s.AdditionalProperties, err = decodeSchema(ap, joinPath(path, "additionalProperties")); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func decodeProperties(m *nodeMap, path string) (*OrderedMap[Schema], error) {
	props, err := m.optMap("properties", path)
	if err != nil || props == nil {
		return nil, err
	}
	ppath := joinPath(path, "properties")
	out := NewOrderedMap[Schema]()
	for _, name := range props.keys {
		s, err := decodeSchema(props.get(name), joinPath(ppath, name))
		if err != nil {
			return nil, err
		}
		out.Set(name, s)
	}
	return out, nil
}

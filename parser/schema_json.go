package parser

import (
	"bytes"
)

// objectWriter builds a JSON object field by field, keeping the order in
// which fields are written.
type objectWriter struct {
	buf bytes.Buffer
	n   int
	err error
}

func (w *objectWriter) field(key string, v any) {
	if w.err != nil {
		return
	}
	if w.n == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}
	w.n++
	if w.err = writeJSON(&w.buf, key); w.err != nil {
		return
	}
	w.buf.WriteByte(':')
	w.err = writeJSON(&w.buf, v)
}

func (w *objectWriter) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.n == 0 {
		return []byte("{}"), nil
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}

func (w *objectWriter) meta(m *Meta) {
	if m.Nullable != nil {
		w.field("nullable", *m.Nullable)
	}
	if m.HasDefault {
		w.field("default", m.Default)
	}
}

// MarshalJSON implements Schema.
func (s *Ref) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.field("$ref", s.Ref)
	w.meta(&s.Meta)
	return w.bytes()
}

// MarshalJSON implements Schema.
func (s *Composed) MarshalJSON() ([]byte, error) {
	var w objectWriter
	keyword := s.Keyword
	if keyword == "" {
		keyword = "anyOf"
	}
	alts := s.Alternatives
	if alts == nil {
		alts = []Schema{}
	}
	w.field(keyword, alts)
	if len(s.Required) > 0 {
		w.field("required", s.Required)
	}
	if s.Properties != nil {
		w.field("properties", s.Properties)
	}
	if d := s.Discriminator; d != nil {
		var dw objectWriter
		dw.field("propertyName", d.PropertyName)
		if d.Mapping != nil {
			dw.field("mapping", d.Mapping)
		}
		raw, err := dw.bytes()
		if err != nil {
			return nil, err
		}
		w.field("discriminator", rawJSON(raw))
	}
	w.meta(&s.Meta)
	return w.bytes()
}

// MarshalJSON implements Schema.
func (s *Array) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.field("type", TypeArray)
	if s.Items != nil {
		w.field("items", s.Items)
	}
	w.meta(&s.Meta)
	return w.bytes()
}

// MarshalJSON implements Schema.
func (s *Object) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.field("type", TypeObject)
	if s.Properties != nil {
		w.field("properties", s.Properties)
	}
	if len(s.Required) > 0 {
		w.field("required", s.Required)
	}
	if s.AdditionalProperties != nil {
		w.field("additionalProperties", s.AdditionalProperties)
	}
	w.meta(&s.Meta)
	return w.bytes()
}

// MarshalJSON implements Schema.
func (s *Enum) MarshalJSON() ([]byte, error) {
	var w objectWriter
	values := s.Values
	if values == nil {
		values = []any{}
	}
	w.field("enum", values)
	w.meta(&s.Meta)
	return w.bytes()
}

// MarshalJSON implements Schema.
func (s *Primitive) MarshalJSON() ([]byte, error) {
	var w objectWriter
	switch len(s.Types) {
	case 0:
	case 1:
		w.field("type", s.Types[0])
	default:
		w.field("type", s.Types)
	}
	if s.Format != "" {
		w.field("format", s.Format)
	}
	w.meta(&s.Meta)
	return w.bytes()
}

// rawJSON is pre-encoded JSON written through unchanged.
type rawJSON []byte

func (r rawJSON) MarshalJSON() ([]byte, error) {
	return r, nil
}

package parser

// MarshalJSON encodes the document with declaration order kept. Referenced
// parameters, request bodies and responses appear inlined.
func (d *Document) MarshalJSON() ([]byte, error) {
	var w objectWriter
	if d.OpenAPI != "" {
		w.field("openapi", d.OpenAPI)
	}
	if d.Info != nil {
		w.field("info", d.Info)
	}
	if d.Security != nil {
		w.field("security", d.Security)
	}
	paths := d.Paths
	if paths == nil {
		paths = NewOrderedMap[*PathItem]()
	}
	w.field("paths", paths)
	if d.Components != nil {
		w.field("components", d.Components)
	}
	return w.bytes()
}

// MarshalJSON implements json.Marshaler.
func (i *Info) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.field("title", i.Title)
	w.field("version", i.Version)
	if i.Description != "" {
		w.field("description", i.Description)
	}
	return w.bytes()
}

// MarshalJSON implements json.Marshaler.
func (c *Components) MarshalJSON() ([]byte, error) {
	var w objectWriter
	if c.Schemas != nil {
		w.field("schemas", c.Schemas)
	}
	if c.SecuritySchemes != nil {
		w.field("securitySchemes", c.SecuritySchemes)
	}
	if c.Parameters != nil {
		w.field("parameters", c.Parameters)
	}
	if c.RequestBodies != nil {
		w.field("requestBodies", c.RequestBodies)
	}
	if c.Responses != nil {
		w.field("responses", c.Responses)
	}
	return w.bytes()
}

// MarshalJSON implements json.Marshaler.
func (s *SecurityScheme) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.field("type", s.Type)
	for _, f := range []struct{ key, val string }{
		{"scheme", s.Scheme},
		{"bearerFormat", s.BearerFormat},
		{"name", s.Name},
		{"in", s.In},
		{"description", s.Description},
	} {
		if f.val != "" {
			w.field(f.key, f.val)
		}
	}
	return w.bytes()
}

// MarshalJSON implements json.Marshaler.
func (p *PathItem) MarshalJSON() ([]byte, error) {
	var w objectWriter
	if p.Summary != "" {
		w.field("summary", p.Summary)
	}
	if p.Description != "" {
		w.field("description", p.Description)
	}
	if len(p.Parameters) > 0 {
		w.field("parameters", p.Parameters)
	}
	for method, op := range p.Operations() {
		w.field(method, op)
	}
	return w.bytes()
}

// MarshalJSON implements json.Marshaler.
func (o *Operation) MarshalJSON() ([]byte, error) {
	var w objectWriter
	if o.OperationID != "" {
		w.field("operationId", o.OperationID)
	}
	if o.Summary != "" {
		w.field("summary", o.Summary)
	}
	if o.Description != "" {
		w.field("description", o.Description)
	}
	if len(o.Tags) > 0 {
		w.field("tags", o.Tags)
	}
	if o.Deprecated {
		w.field("deprecated", true)
	}
	if len(o.Parameters) > 0 {
		w.field("parameters", o.Parameters)
	}
	if o.RequestBody != nil {
		w.field("requestBody", o.RequestBody)
	}
	responses := o.Responses
	if responses == nil {
		responses = NewOrderedMap[*Response]()
	}
	w.field("responses", responses)
	if o.Security != nil {
		w.field("security", o.Security)
	}
	return w.bytes()
}

// MarshalJSON implements json.Marshaler.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.field("name", p.Name)
	w.field("in", p.In)
	if p.Description != "" {
		w.field("description", p.Description)
	}
	if p.Required {
		w.field("required", true)
	}
	if p.Deprecated {
		w.field("deprecated", true)
	}
	if p.Schema != nil {
		w.field("schema", p.Schema)
	}
	return w.bytes()
}

// MarshalJSON implements json.Marshaler.
func (b *RequestBody) MarshalJSON() ([]byte, error) {
	var w objectWriter
	if b.Description != "" {
		w.field("description", b.Description)
	}
	if b.Required {
		w.field("required", true)
	}
	content := b.Content
	if content == nil {
		content = NewOrderedMap[*MediaType]()
	}
	w.field("content", content)
	return w.bytes()
}

// MarshalJSON implements json.Marshaler.
func (m *MediaType) MarshalJSON() ([]byte, error) {
	var w objectWriter
	if m.Schema != nil {
		w.field("schema", m.Schema)
	}
	return w.bytes()
}

// MarshalJSON implements json.Marshaler.
func (r *Response) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.field("description", r.Description)
	if r.Content != nil {
		w.field("content", r.Content)
	}
	return w.bytes()
}

package parser

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/openapigen/openapigen/oaserrors"
)

// documentDecoder decodes a document tree. Components are decoded first so
// that parameter, request body and response references can be inlined.
type documentDecoder struct {
	components *Components
	// inlining is false while components themselves are being decoded.
	inlining bool
}

// DecodeDocument decodes an OpenAPI 3.x document from a YAML node tree.
func DecodeDocument(root *yaml.Node) (*Document, error) {
	m, err := asMap(root, "")
	if err != nil {
		return nil, err
	}
	if m.has("swagger") {
		return nil, nodeError(m.get("swagger"), "swagger", "OpenAPI 2.0 documents are not supported")
	}

	doc := &Document{}
	if doc.OpenAPI, err = m.str("openapi", ""); err != nil {
		return nil, err
	}
	if doc.OpenAPI != "" && !strings.HasPrefix(doc.OpenAPI, "3.") {
		return nil, nodeError(m.get("openapi"), "openapi", fmt.Sprintf("unsupported OpenAPI version %q", doc.OpenAPI))
	}

	info, err := m.optMap("info", "")
	if err != nil {
		return nil, err
	}
	if info != nil {
		doc.Info = &Info{}
		if doc.Info.Title, err = info.str("title", "info"); err != nil {
			return nil, err
		}
		if doc.Info.Version, err = info.str("version", "info"); err != nil {
			return nil, err
		}
		if doc.Info.Description, err = info.str("description", "info"); err != nil {
			return nil, err
		}
	}

	d := &documentDecoder{}
	if doc.Components, err = d.decodeComponents(m); err != nil {
		return nil, err
	}
	d.components = doc.Components
	d.inlining = true
	if d.components == nil {
		d.components = &Components{}
	}

	if doc.Security, err = decodeSecurity(m, ""); err != nil {
		return nil, err
	}

	paths, err := m.optMap("paths", "")
	if err != nil {
		return nil, err
	}
	doc.Paths = NewOrderedMap[*PathItem]()
	if paths != nil {
		for _, p := range paths.keys {
			item, err := d.decodePathItem(paths.get(p), joinPath("paths", p))
			if err != nil {
				return nil, err
			}
			doc.Paths.Set(p, item)
		}
	}
	return doc, nil
}

func (d *documentDecoder) decodeComponents(doc *nodeMap) (*Components, error) {
	m, err := doc.optMap("components", "")
	if err != nil || m == nil {
		return nil, err
	}
	c := &Components{}
	const path = "components"

	if schemas, err := m.optMap("schemas", path); err != nil {
		return nil, err
	} else if schemas != nil {
		c.Schemas = NewOrderedMap[Schema]()
		for _, name := range schemas.keys {
			s, err := decodeSchema(schemas.get(name), joinPath(path+".schemas", name))
			if err != nil {
				return nil, err
			}
			c.Schemas.Set(name, s)
		}
	}

	if schemes, err := m.optMap("securitySchemes", path); err != nil {
		return nil, err
	} else if schemes != nil {
		c.SecuritySchemes = NewOrderedMap[*SecurityScheme]()
		for _, name := range schemes.keys {
			s, err := decodeSecurityScheme(schemes.get(name), joinPath(path+".securitySchemes", name))
			if err != nil {
				return nil, err
			}
			c.SecuritySchemes.Set(name, s)
		}
	}

	// A reusable object that is itself a reference is rejected.
	if params, err := m.optMap("parameters", path); err != nil {
		return nil, err
	} else if params != nil {
		c.Parameters = NewOrderedMap[*Parameter]()
		for _, name := range params.keys {
			p, err := d.decodeParameter(params.get(name), joinPath(path+".parameters", name))
			if err != nil {
				return nil, err
			}
			c.Parameters.Set(name, p)
		}
	}
	if bodies, err := m.optMap("requestBodies", path); err != nil {
		return nil, err
	} else if bodies != nil {
		c.RequestBodies = NewOrderedMap[*RequestBody]()
		for _, name := range bodies.keys {
			b, err := d.decodeRequestBody(bodies.get(name), joinPath(path+".requestBodies", name))
			if err != nil {
				return nil, err
			}
			c.RequestBodies.Set(name, b)
		}
	}
	if responses, err := m.optMap("responses", path); err != nil {
		return nil, err
	} else if responses != nil {
		c.Responses = NewOrderedMap[*Response]()
		for _, name := range responses.keys {
			r, err := d.decodeResponse(responses.get(name), joinPath(path+".responses", name))
			if err != nil {
				return nil, err
			}
			c.Responses.Set(name, r)
		}
	}
	return c, nil
}

// componentRef returns the component name of a local reference into the
// given components section, or an error when the node's $ref points elsewhere.
func componentRef(m *nodeMap, section, path string) (string, bool, error) {
	if !m.has("$ref") {
		return "", false, nil
	}
	ref, err := m.str("$ref", path)
	if err != nil {
		return "", false, err
	}
	prefix := "#/components/" + section + "/"
	if !strings.HasPrefix(ref, prefix) {
		return "", false, &oaserrors.ReferenceError{Ref: ref, Message: "expected a reference into components." + section}
	}
	return strings.TrimPrefix(ref, prefix), true, nil
}

func lookupComponent[V any](table *OrderedMap[V], section, name string) (V, error) {
	v, ok := table.Get(name)
	if !ok {
		var zero V
		return zero, &oaserrors.ReferenceError{Ref: "#/components/" + section + "/" + name, Message: "target not found"}
	}
	return v, nil
}

func (d *documentDecoder) decodePathItem(node *yaml.Node, path string) (*PathItem, error) {
	m, err := asMap(node, path)
	if err != nil {
		return nil, err
	}
	item := &PathItem{}
	if item.Summary, err = m.str("summary", path); err != nil {
		return nil, err
	}
	if item.Description, err = m.str("description", path); err != nil {
		return nil, err
	}
	if item.Parameters, err = d.decodeParameters(m, path); err != nil {
		return nil, err
	}
	for _, method := range []string{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch} {
		if isNull(m.get(method)) {
			continue
		}
		op, err := d.decodeOperation(m.get(method), joinPath(path, method))
		if err != nil {
			return nil, err
		}
		*item.operation(method) = op
	}
	return item, nil
}

func (d *documentDecoder) decodeOperation(node *yaml.Node, path string) (*Operation, error) {
	m, err := asMap(node, path)
	if err != nil {
		return nil, err
	}
	op := &Operation{}
	if op.OperationID, err = m.str("operationId", path); err != nil {
		return nil, err
	}
	if op.Summary, err = m.str("summary", path); err != nil {
		return nil, err
	}
	if op.Description, err = m.str("description", path); err != nil {
		return nil, err
	}
	if op.Tags, err = m.strings("tags", path); err != nil {
		return nil, err
	}
	if op.Deprecated, err = m.boolean("deprecated", path); err != nil {
		return nil, err
	}
	if op.Parameters, err = d.decodeParameters(m, path); err != nil {
		return nil, err
	}
	if !isNull(m.get("requestBody")) {
		if op.RequestBody, err = d.decodeRequestBody(m.get("requestBody"), joinPath(path, "requestBody")); err != nil {
			return nil, err
		}
	}
	responses, err := m.optMap("responses", path)
	if err != nil {
		return nil, err
	}
	op.Responses = NewOrderedMap[*Response]()
	if responses != nil {
		for _, status := range responses.keys {
			r, err := d.decodeResponse(responses.get(status), joinPath(path+".responses", status))
			if err != nil {
				return nil, err
			}
			op.Responses.Set(status, r)
		}
	}
	if op.Security, err = decodeSecurity(m, path); err != nil {
		return nil, err
	}
	return op, nil
}

func (d *documentDecoder) decodeParameters(m *nodeMap, path string) ([]*Parameter, error) {
	items, err := m.seq("parameters", path)
	if err != nil {
		return nil, err
	}
	var out []*Parameter
	for i, item := range items {
		p, err := d.decodeParameter(item, fmt.Sprintf("%s[%d]", joinPath(path, "parameters"), i))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (d *documentDecoder) decodeParameter(node *yaml.Node, path string) (*Parameter, error) {
	m, err := asMap(node, path)
	if err != nil {
		return nil, err
	}
	if name, ok, err := componentRef(m, "parameters", path); err != nil {
		return nil, err
	} else if ok {
		if !d.inlining {
			return nil, &oaserrors.ReferenceError{Ref: "#/components/parameters/" + name, Message: "parameters cannot reference each other"}
		}
		return lookupComponent(d.components.Parameters, "parameters", name)
	}
	p := &Parameter{}
	if p.Name, err = m.str("name", path); err != nil {
		return nil, err
	}
	if p.In, err = m.str("in", path); err != nil {
		return nil, err
	}
	if p.Description, err = m.str("description", path); err != nil {
		return nil, err
	}
	if p.Required, err = m.boolean("required", path); err != nil {
		return nil, err
	}
	if p.Deprecated, err = m.boolean("deprecated", path); err != nil {
		return nil, err
	}
	if !isNull(m.get("schema")) {
		if p.Schema, err = decodeSchema(m.get("schema"), joinPath(path, "schema")); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (d *documentDecoder) decodeRequestBody(node *yaml.Node, path string) (*RequestBody, error) {
	m, err := asMap(node, path)
	if err != nil {
		return nil, err
	}
	if name, ok, err := componentRef(m, "requestBodies", path); err != nil {
		return nil, err
	} else if ok {
		if !d.inlining {
			return nil, &oaserrors.ReferenceError{Ref: "#/components/requestBodies/" + name, Message: "request bodies cannot reference each other"}
		}
		return lookupComponent(d.components.RequestBodies, "requestBodies", name)
	}
	b := &RequestBody{}
	if b.Description, err = m.str("description", path); err != nil {
		return nil, err
	}
	if b.Required, err = m.boolean("required", path); err != nil {
		return nil, err
	}
	if b.Content, err = decodeContent(m, path); err != nil {
		return nil, err
	}
	return b, nil
}

func (d *documentDecoder) decodeResponse(node *yaml.Node, path string) (*Response, error) {
	m, err := asMap(node, path)
	if err != nil {
		return nil, err
	}
	if name, ok, err := componentRef(m, "responses", path); err != nil {
		return nil, err
	} else if ok {
		if !d.inlining {
			return nil, &oaserrors.ReferenceError{Ref: "#/components/responses/" + name, Message: "responses cannot reference each other"}
		}
		return lookupComponent(d.components.Responses, "responses", name)
	}
	r := &Response{}
	if r.Description, err = m.str("description", path); err != nil {
		return nil, err
	}
	if r.Content, err = decodeContent(m, path); err != nil {
		return nil, err
	}
	return r, nil
}

func decodeContent(m *nodeMap, path string) (*OrderedMap[*MediaType], error) {
	content, err := m.optMap("content", path)
	if err != nil || content == nil {
		return nil, err
	}
	cpath := joinPath(path, "content")
	out := NewOrderedMap[*MediaType]()
	for _, mt := range content.keys {
		mpath := joinPath(cpath, mt)
		entry, err := content.optMap(mt, cpath)
		if err != nil {
			return nil, err
		}
		media := &MediaType{}
		if entry != nil && !isNull(entry.get("schema")) {
			if media.Schema, err = decodeSchema(entry.get("schema"), joinPath(mpath, "schema")); err != nil {
				return nil, err
			}
		}
		out.Set(mt, media)
	}
	return out, nil
}

func decodeSecurityScheme(node *yaml.Node, path string) (*SecurityScheme, error) {
	m, err := asMap(node, path)
	if err != nil {
		return nil, err
	}
	s := &SecurityScheme{}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"type", &s.Type},
		{"scheme", &s.Scheme},
		{"bearerFormat", &s.BearerFormat},
		{"name", &s.Name},
		{"in", &s.In},
		{"description", &s.Description},
	} {
		if *f.dst, err = m.str(f.key, path); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// decodeSecurity keeps an absent list (nil) distinct from an empty one.
func decodeSecurity(m *nodeMap, path string) ([]SecurityRequirement, error) {
	if !m.has("security") || isNull(m.get("security")) {
		return nil, nil
	}
	items, err := m.seq("security", path)
	if err != nil {
		return nil, err
	}
	out := make([]SecurityRequirement, 0, len(items))
	for i, item := range items {
		ipath := fmt.Sprintf("%s[%d]", joinPath(path, "security"), i)
		req, err := asMap(item, ipath)
		if err != nil {
			return nil, err
		}
		sr := make(SecurityRequirement, len(req.keys))
		for _, name := range req.keys {
			scopes, err := req.strings(name, ipath)
			if err != nil {
				return nil, err
			}
			if scopes == nil {
				scopes = []string{}
			}
			sr[name] = scopes
		}
		out = append(out, sr)
	}
	return out, nil
}

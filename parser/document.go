package parser

import (
	"iter"
	"strings"
)

// HTTP methods the generator emits, in emission order.
const (
	MethodGet    = "get"
	MethodPost   = "post"
	MethodPut    = "put"
	MethodDelete = "delete"
	MethodPatch  = "patch"
)

// Parameter locations.
const (
	ParamInPath   = "path"
	ParamInQuery  = "query"
	ParamInHeader = "header"
	ParamInCookie = "cookie"
)

// Common media types.
const (
	MediaTypeJSON      = "application/json"
	MediaTypeText      = "text/plain"
	MediaTypeMultipart = "multipart/form-data"
)

// DefaultTag is the module name for operations without tags.
const DefaultTag = "Default"

// StatusDefault is the response key matching any undeclared status.
const StatusDefault = "default"

// Document is an OpenAPI 3.x description.
type Document struct {
	OpenAPI    string
	Info       *Info
	Paths      *OrderedMap[*PathItem]
	Components *Components
	// Security is the document-wide requirement list. Nil when absent.
	Security []SecurityRequirement
}

// Info is the document metadata.
type Info struct {
	Title       string
	Version     string
	Description string
}

// SecurityRequirement maps security scheme names to scopes.
type SecurityRequirement map[string][]string

// Components holds the reusable objects of a document. Parameters, request
// bodies and responses are inlined at their use sites during decoding.
type Components struct {
	Schemas         *OrderedMap[Schema]
	SecuritySchemes *OrderedMap[*SecurityScheme]
	Parameters      *OrderedMap[*Parameter]
	RequestBodies   *OrderedMap[*RequestBody]
	Responses       *OrderedMap[*Response]
}

// SecurityScheme is an entry of components/securitySchemes.
type SecurityScheme struct {
	Type         string
	Scheme       string
	BearerFormat string
	Name         string
	In           string
	Description  string
}

// IsBearer reports whether the scheme is HTTP bearer authentication.
func (s *SecurityScheme) IsBearer() bool {
	return s != nil && strings.EqualFold(s.Type, "http") && strings.EqualFold(s.Scheme, "bearer")
}

// IsAPIKey reports whether the scheme is an API key.
func (s *SecurityScheme) IsAPIKey() bool {
	return s != nil && s.Type == "apiKey"
}

// PathItem holds the operations available on one path template.
type PathItem struct {
	Summary     string
	Description string
	// Parameters apply to every operation on the path.
	Parameters []*Parameter
	Get        *Operation
	Post       *Operation
	Put        *Operation
	Delete     *Operation
	Patch      *Operation
}

// Operations yields the defined operations in get, post, put, delete, patch order.
func (p *PathItem) Operations() iter.Seq2[string, *Operation] {
	return func(yield func(string, *Operation) bool) {
		if p == nil {
			return
		}
		for _, e := range []struct {
			method string
			op     *Operation
		}{
			{MethodGet, p.Get},
			{MethodPost, p.Post},
			{MethodPut, p.Put},
			{MethodDelete, p.Delete},
			{MethodPatch, p.Patch},
		} {
			if e.op == nil {
				continue
			}
			if !yield(e.method, e.op) {
				return
			}
		}
	}
}

// operation returns a pointer to the slot for method, or nil.
func (p *PathItem) operation(method string) **Operation {
	switch method {
	case MethodGet:
		return &p.Get
	case MethodPost:
		return &p.Post
	case MethodPut:
		return &p.Put
	case MethodDelete:
		return &p.Delete
	case MethodPatch:
		return &p.Patch
	}
	return nil
}

// Operation is one HTTP method on a path.
type Operation struct {
	OperationID string
	Summary     string
	Description string
	Tags        []string
	Deprecated  bool
	Parameters  []*Parameter
	RequestBody *RequestBody
	// Responses is keyed by status code or "default", in declared order.
	Responses *OrderedMap[*Response]
	// Security is nil to inherit the document requirement, empty for none.
	Security []SecurityRequirement
}

// Tag returns the first non-empty tag, or DefaultTag.
func (o *Operation) Tag() string {
	for _, t := range o.Tags {
		if t != "" {
			return t
		}
	}
	return DefaultTag
}

// EffectiveSecurity returns the operation's requirements, falling back to
// the document-wide list when the operation declares none.
func (o *Operation) EffectiveSecurity(doc *Document) []SecurityRequirement {
	if o.Security != nil || doc == nil {
		return o.Security
	}
	return doc.Security
}

// Parameter is a path, query, header or cookie parameter.
type Parameter struct {
	Name        string
	In          string
	Description string
	Required    bool
	Deprecated  bool
	Schema      Schema
}

// RequestBody is keyed by media type in declared order.
type RequestBody struct {
	Description string
	Required    bool
	Content     *OrderedMap[*MediaType]
}

// MediaType carries the schema of one content type. Schema is nil when absent.
type MediaType struct {
	Schema Schema
}

// Response is one entry of an operation's responses.
type Response struct {
	Description string
	Content     *OrderedMap[*MediaType]
}

// HasContent reports whether the response declares any media type.
func (r *Response) HasContent() bool {
	return r != nil && r.Content.Len() > 0
}

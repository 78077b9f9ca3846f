// This file renders one operation as request/response type aliases plus an
// async axios wrapper whose result is a status-tagged tuple union.

package generator

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/openapigen/openapigen/internal/issues"
	"github.com/openapigen/openapigen/internal/naming"
	"github.com/openapigen/openapigen/internal/schemautil"
	"github.com/openapigen/openapigen/oaserrors"
	"github.com/openapigen/openapigen/parser"
	"github.com/openapigen/openapigen/resolver"
)

// Identifiers reserved for the generated function body.
const (
	varQuery       = "__query__"
	varQueryString = "__queryString__"
	varForm        = "__form__"
	varResponse    = "__response__"
	varItem        = "__item__"
	argAxios       = "axios"
	argBearer      = "bearer"
	argRequest     = "request"
)

var pathPlaceholder = regexp.MustCompile(`\{([^{}]+)\}`)

type requestKind int

const (
	requestNone requestKind = iota
	requestJSON
	requestText
	requestMultipart
)

// operationTarget identifies one operation during emission.
type operationTarget struct {
	Path     string
	Method   string
	Tag      string
	Item     *parser.PathItem
	Op       *parser.Operation
	Function string
	TypeBase string
}

func (t *operationTarget) unsupported(location, mediaType, format string, args ...any) error {
	return &oaserrors.UnsupportedShapeError{
		Method:    t.Method,
		Path:      t.Path,
		Location:  location,
		MediaType: mediaType,
		Message:   fmt.Sprintf(format, args...),
	}
}

func (t *operationTarget) issuePath() string {
	return "paths." + t.Path + "." + t.Method
}

func (t *operationTarget) context() *issues.OperationContext {
	return &issues.OperationContext{Method: t.Method, Path: t.Path, Tag: t.Tag}
}

// responseEntry is one declared status of an operation.
type responseEntry struct {
	Status   string
	Code     string
	TypeName string
	Binary   bool
	Content  bool
}

// argument is one parameter of the generated function.
type argument struct {
	Param    *parser.Parameter
	Ident    string
	Type     string
	Optional bool
	Resolved parser.Schema
}

// OperationSummary describes a generated function.
type OperationSummary struct {
	Method   string
	Path     string
	Tag      string
	Function string
	Statuses []string
	Bearer   bool
}

// emitOperation writes the type declarations and the function for t to buf.
func (e *emitter) emitOperation(buf *bytes.Buffer, t *operationTarget) (*OperationSummary, error) {
	fmt.Fprintf(buf, "// === %s %s ===\n", t.Method, t.Path)

	kind, reqSchema, err := e.emitRequest(buf, t)
	if err != nil {
		return nil, err
	}
	responses, err := e.emitResponses(buf, t)
	if err != nil {
		return nil, err
	}
	pathArgs, queryArgs, err := e.arguments(t)
	if err != nil {
		return nil, err
	}
	route, err := routeTemplate(t, pathArgs)
	if err != nil {
		return nil, err
	}
	bearer := e.usesBearer(t.Op)

	// Signature.
	sig := []string{argAxios + ": AxiosInstance"}
	if bearer {
		sig = append(sig, argBearer+": string")
	}
	for _, a := range pathArgs {
		sig = append(sig, a.Ident+": "+a.Type)
	}
	if kind != requestNone {
		sig = append(sig, argRequest+": "+t.TypeBase+"Request")
	}
	for _, a := range queryArgs {
		opt := ""
		if a.Optional {
			opt = "?"
		}
		sig = append(sig, a.Ident+opt+": "+a.Type)
	}
	fmt.Fprintf(buf, "export async function %s(%s): Promise<%s> {\n",
		t.Function, strings.Join(sig, ", "), returnType(responses))

	body := pad(indentStep)
	if len(queryArgs) > 0 {
		buf.WriteString(body + "const " + varQuery + ": string[] = [];\n")
		for _, a := range queryArgs {
			buf.WriteString(body + queryAppend(a) + "\n")
		}
		buf.WriteString(body + "const " + varQueryString + " = " + varQuery + ".length ? `?${" + varQuery + ".join(\"&\")}` : \"\";\n")
	} else {
		buf.WriteString(body + "const " + varQueryString + " = \"\";\n")
	}

	payload := ""
	switch kind {
	case requestMultipart:
		lines, err := e.formAppends(t, reqSchema)
		if err != nil {
			return nil, err
		}
		buf.WriteString(body + "const " + varForm + " = new FormData()\n")
		for _, line := range lines {
			buf.WriteString(body + line + "\n")
		}
		payload = varForm
	case requestJSON, requestText:
		payload = argRequest
	}

	call := requestCall(t.Method, "`"+route+"${"+varQueryString+"}`", payload, requestConfig(kind, bearer, responses))
	buf.WriteString(body + "const " + varResponse + " = await " + call + "\n")

	buf.WriteString(body + "switch (" + varResponse + ".status) {\n")
	branch := pad(2 * indentStep)
	hasDefault := false
	for _, r := range responses {
		if r.Status == parser.StatusDefault {
			hasDefault = true
			continue
		}
		fmt.Fprintf(buf, "%scase %s: return [%s, %s.data as %s]\n", branch, r.Code, r.Code, varResponse, r.TypeName)
	}
	if hasDefault {
		for _, r := range responses {
			if r.Status == parser.StatusDefault {
				fmt.Fprintf(buf, "%sdefault: return [%s, %s.data as %s]\n", branch, r.Code, varResponse, r.TypeName)
			}
		}
	} else {
		fmt.Fprintf(buf, "%sdefault: throw new Error(`Unexpected status ${%s.status}`)\n", branch, varResponse)
	}
	buf.WriteString(body + "}\n")
	buf.WriteString("}\n\n")

	summary := &OperationSummary{
		Method:   t.Method,
		Path:     t.Path,
		Tag:      t.Tag,
		Function: t.Function,
		Bearer:   bearer,
	}
	for _, r := range responses {
		summary.Statuses = append(summary.Statuses, r.Status)
	}
	e.logger.Debug("emitted operation", "method", t.Method, "path", t.Path, "function", t.Function, "tag", t.Tag)
	return summary, nil
}

// emitRequest writes the request type alias and reports the body kind.
func (e *emitter) emitRequest(buf *bytes.Buffer, t *operationTarget) (requestKind, parser.Schema, error) {
	rb := t.Op.RequestBody
	if rb == nil {
		return requestNone, nil, nil
	}
	if rb.Content.Len() == 0 {
		return requestNone, nil, t.unsupported("request body", "", "request body declares no content")
	}

	var (
		kind   requestKind
		media  *parser.MediaType
		schema parser.Schema
	)
	switch {
	case rb.Content.Has(parser.MediaTypeJSON):
		kind = requestJSON
		media, _ = rb.Content.Get(parser.MediaTypeJSON)
	case rb.Content.Has(parser.MediaTypeText):
		kind = requestText
		media, _ = rb.Content.Get(parser.MediaTypeText)
	case rb.Content.Has(parser.MediaTypeMultipart):
		kind = requestMultipart
		media, _ = rb.Content.Get(parser.MediaTypeMultipart)
	default:
		mt := rb.Content.Keys()[0]
		return requestNone, nil, t.unsupported("request body", mt, "media type %s", mt)
	}
	if media != nil {
		schema = media.Schema
	}

	var (
		ts  string
		err error
	)
	switch {
	case schema == nil && kind == requestText:
		ts = "string"
	case schema == nil && kind == requestMultipart:
		return requestNone, nil, t.unsupported("request body", parser.MediaTypeMultipart, "multipart body has no schema")
	default:
		ts, err = e.emitType(schema, indentStep, resolver.Inherited{})
		if err != nil {
			return requestNone, nil, fmt.Errorf("%s %s request body: %w", t.Method, t.Path, err)
		}
	}
	fmt.Fprintf(buf, "export type %sRequest = %s\n", t.TypeBase, ts)
	e.typeCount++
	return kind, schema, nil
}

// emitResponses writes one type alias per declared status in declared order.
func (e *emitter) emitResponses(buf *bytes.Buffer, t *operationTarget) ([]responseEntry, error) {
	var out []responseEntry
	for status, resp := range t.Op.Responses.All() {
		entry := responseEntry{
			Status:   status,
			Code:     status,
			TypeName: t.TypeBase + naming.StatusName(status) + "Response",
		}
		if status == parser.StatusDefault {
			entry.Code = "0"
		} else if code, err := strconv.Atoi(status); err != nil || code < 100 || code > 599 || len(status) != 3 {
			return nil, t.unsupported("responses", "", "status %q is not an HTTP status code", status)
		}

		ts := tsVoid
		if resp.HasContent() {
			entry.Content = true
			switch {
			case resp.Content.Has(parser.MediaTypeJSON):
				media, _ := resp.Content.Get(parser.MediaTypeJSON)
				s := mediaSchema(media)
				var err error
				if ts, err = e.emitType(s, indentStep, resolver.Inherited{}); err != nil {
					return nil, fmt.Errorf("%s %s response %s: %w", t.Method, t.Path, status, err)
				}
			case resp.Content.Has(parser.MediaTypeText):
				media, _ := resp.Content.Get(parser.MediaTypeText)
				s := mediaSchema(media)
				if s == nil {
					ts = "string"
					break
				}
				var err error
				if ts, err = e.emitType(s, indentStep, resolver.Inherited{}); err != nil {
					return nil, fmt.Errorf("%s %s response %s: %w", t.Method, t.Path, status, err)
				}
			default:
				ts = tsBlob
				entry.Binary = true
			}
		}
		fmt.Fprintf(buf, "export type %s = %s\n", entry.TypeName, ts)
		e.typeCount++
		out = append(out, entry)
	}
	return out, nil
}

func mediaSchema(m *parser.MediaType) parser.Schema {
	if m == nil {
		return nil
	}
	return m.Schema
}

func returnType(responses []responseEntry) string {
	if len(responses) == 0 {
		return tsNever
	}
	parts := make([]string, len(responses))
	for i, r := range responses {
		parts[i] = "[" + r.Code + ", " + r.TypeName + "]"
	}
	return strings.Join(parts, " | ")
}

// mergeParameters returns the path-level parameters overridden by the
// operation's own ones on name and location.
func mergeParameters(item *parser.PathItem, op *parser.Operation) []*parser.Parameter {
	var out []*parser.Parameter
	own := func(p *parser.Parameter) bool {
		return slices.ContainsFunc(op.Parameters, func(o *parser.Parameter) bool {
			return o != nil && o.Name == p.Name && o.In == p.In
		})
	}
	if item != nil {
		for _, p := range item.Parameters {
			if p != nil && !own(p) {
				out = append(out, p)
			}
		}
	}
	for _, p := range op.Parameters {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// arguments splits the parameters of t into path and query arguments. Query
// arguments are ordered required first.
func (e *emitter) arguments(t *operationTarget) (pathArgs, queryArgs []argument, err error) {
	used := map[string]bool{argAxios: true, argBearer: true, argRequest: true}
	unique := func(name string) string {
		id := naming.Identifier(name)
		if !used[id] {
			used[id] = true
			return id
		}
		for i := 2; ; i++ {
			candidate := id + strconv.Itoa(i)
			if !used[candidate] {
				used[candidate] = true
				return candidate
			}
		}
	}

	var required, optional []argument
	for _, p := range mergeParameters(t.Item, t.Op) {
		switch p.In {
		case parser.ParamInPath, parser.ParamInQuery:
		default:
			e.logger.Debug("parameter not modeled", "method", t.Method, "path", t.Path, "name", p.Name, "in", p.In)
			e.issues = append(e.issues, issues.Issue{
				Path:      t.issuePath() + ".parameters." + p.Name,
				Message:   fmt.Sprintf("%s parameter %s is not passed by the generated client", p.In, p.Name),
				Severity:  SeverityInfo,
				Operation: t.context(),
			})
			continue
		}

		ts := "string"
		var resolved parser.Schema
		if p.Schema != nil {
			if ts, err = e.emitType(p.Schema, indentStep, resolver.Inherited{}); err != nil {
				return nil, nil, fmt.Errorf("%s %s parameter %s: %w", t.Method, t.Path, p.Name, err)
			}
			if resolved, err = e.resolver.Resolve(e.rctx, p.Schema); err != nil {
				return nil, nil, fmt.Errorf("%s %s parameter %s: %w", t.Method, t.Path, p.Name, err)
			}
		}
		a := argument{Param: p, Ident: unique(p.Name), Type: ts, Resolved: resolved}
		if p.In == parser.ParamInPath {
			pathArgs = append(pathArgs, a)
			continue
		}
		if p.Required {
			required = append(required, a)
		} else {
			a.Optional = true
			optional = append(optional, a)
		}
	}
	return pathArgs, append(required, optional...), nil
}

// routeTemplate turns the path template into the body of a template
// literal. Every placeholder must name a declared path parameter.
func routeTemplate(t *operationTarget, pathArgs []argument) (string, error) {
	var b strings.Builder
	last := 0
	for _, m := range pathPlaceholder.FindAllStringSubmatchIndex(t.Path, -1) {
		b.WriteString(escapeTemplate(t.Path[last:m[0]]))
		name := t.Path[m[2]:m[3]]
		idx := slices.IndexFunc(pathArgs, func(a argument) bool { return a.Param.Name == name })
		if idx < 0 {
			return "", t.unsupported("path", "", "path parameter %s is not declared", name)
		}
		b.WriteString("${encodeURIComponent(" + pathArgs[idx].Ident + ")}")
		last = m[1]
	}
	b.WriteString(escapeTemplate(t.Path[last:]))
	return b.String(), nil
}

// escapeTemplate escapes literal text for a JavaScript template literal.
func escapeTemplate(s string) string {
	r := strings.NewReplacer("\\", "\\\\", "`", "\\`", "$", "\\$")
	return r.Replace(s)
}

// queryAppend renders the statement adding one query parameter.
func queryAppend(a argument) string {
	key := escapeTemplate(url.QueryEscape(a.Param.Name))
	value := a.Ident
	guarded := true
	if def, ok := defaultLiteral(a.Param.Schema); ok {
		value = "(" + a.Ident + " ?? " + def + ")"
		guarded = false
	}

	var stmt string
	if _, isArray := a.Resolved.(*parser.Array); isArray {
		item := encodeExpr(itemSchema(a.Resolved), varItem)
		stmt = "for (const " + varItem + " of " + value + ") " + varQuery + ".push(`" + key + "=${" + item + "}`);"
	} else {
		stmt = varQuery + ".push(`" + key + "=${" + encodeExpr(a.Resolved, value) + "}`);"
	}
	if guarded {
		return "if (" + a.Ident + " !== undefined) " + stmt
	}
	return stmt
}

// defaultLiteral returns the declared non-null default of s as a literal.
func defaultLiteral(s parser.Schema) (string, bool) {
	if s == nil {
		return "", false
	}
	m := parser.MetaOf(s)
	if !m.HasDefault || m.Default == nil {
		return "", false
	}
	def, err := literal(m.Default)
	if err != nil {
		return "", false
	}
	return def, true
}

func itemSchema(s parser.Schema) parser.Schema {
	if arr, ok := s.(*parser.Array); ok {
		return arr.Items
	}
	return nil
}

// encodeExpr URL-encodes expr. Structured values are sent as JSON text.
func encodeExpr(s parser.Schema, expr string) string {
	switch s.(type) {
	case *parser.Object, *parser.Composed, *parser.Array:
		return "encodeURIComponent(JSON.stringify(" + expr + "))"
	}
	return "encodeURIComponent(" + expr + ")"
}

// formAppends lists the statements copying request fields into the form.
func (e *emitter) formAppends(t *operationTarget, schema parser.Schema) ([]string, error) {
	resolved, err := e.resolver.Resolve(e.rctx, schema)
	if err != nil {
		return nil, fmt.Errorf("%s %s multipart body: %w", t.Method, t.Path, err)
	}
	obj, ok := resolved.(*parser.Object)
	if !ok {
		return nil, t.unsupported("request body", parser.MediaTypeMultipart, "multipart body must be an object, got %s", resolved.Kind())
	}

	var lines []string
	for _, f := range e.resolver.Fields(obj, resolver.Inherited{}) {
		field, err := e.resolver.Resolve(e.rctx, f.Schema)
		if err != nil {
			return nil, fmt.Errorf("%s %s multipart field %s: %w", t.Method, t.Path, f.Name, err)
		}
		acc := naming.Accessor(argRequest, f.Name)
		key := naming.Quote(f.Name)
		guard := "if (" + acc + " !== undefined) "
		if arr, ok := field.(*parser.Array); ok {
			item, err := e.resolver.Resolve(e.rctx, arr.Items)
			if err != nil {
				return nil, fmt.Errorf("%s %s multipart field %s: %w", t.Method, t.Path, f.Name, err)
			}
			lines = append(lines, guard+"for (const "+varItem+" of "+acc+") "+varForm+".append("+key+", "+formValue(item, varItem)+")")
			continue
		}
		lines = append(lines, guard+varForm+".append("+key+", "+formValue(field, acc)+")")
	}
	return lines, nil
}

// formValue converts expr to a FormData value. Files and strings pass
// through; structured values become JSON text; other scalars are stringified.
func formValue(s parser.Schema, expr string) string {
	switch s.(type) {
	case *parser.Primitive:
		if schemautil.IsBinary(s) {
			return expr
		}
		if schemautil.GetPrimaryType(s) == parser.TypeString && len(schemautil.GetSchemaTypes(s)) == 1 {
			return expr
		}
	case *parser.Object, *parser.Composed, *parser.Array:
		return "JSON.stringify(" + expr + ")"
	}
	return "String(" + expr + ")"
}

// usesBearer reports whether the effective security requirements of op
// reference an HTTP bearer scheme.
func (e *emitter) usesBearer(op *parser.Operation) bool {
	if e.doc.Components == nil {
		return false
	}
	schemes := e.doc.Components.SecuritySchemes
	for _, req := range op.EffectiveSecurity(e.doc) {
		for name := range req {
			if s, ok := schemes.Get(name); ok && s.IsBearer() {
				return true
			}
		}
	}
	return false
}

// requestConfig renders the axios request config object.
func requestConfig(kind requestKind, bearer bool, responses []responseEntry) string {
	fields := []string{"validateStatus: () => true"}
	var headers []string
	if kind == requestText {
		headers = append(headers, `"Content-Type": "text/plain"`)
	}
	if bearer {
		headers = append(headers, "Authorization: `Bearer ${"+argBearer+"}`")
	}
	if len(headers) > 0 {
		fields = append(fields, "headers: { "+strings.Join(headers, ", ")+" }")
	}
	if blobOnly(responses) {
		fields = append(fields, `responseType: "blob"`)
	}
	return "{ " + strings.Join(fields, ", ") + " }"
}

// blobOnly reports whether every response with content is binary.
func blobOnly(responses []responseEntry) bool {
	found := false
	for _, r := range responses {
		if !r.Content {
			continue
		}
		if !r.Binary {
			return false
		}
		found = true
	}
	return found
}

// requestCall renders the axios invocation. Methods without a body
// parameter carry the payload in the config.
func requestCall(method, url, payload, config string) string {
	switch method {
	case parser.MethodGet, parser.MethodDelete:
		if payload != "" {
			config = "{ data: " + payload + ", " + strings.TrimPrefix(config, "{ ")
		}
		return argAxios + "." + method + "(" + url + ", " + config + ")"
	default:
		if payload == "" {
			payload = "undefined"
		}
		return argAxios + "." + method + "(" + url + ", " + payload + ", " + config + ")"
	}
}

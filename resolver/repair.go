package resolver

import (
	"slices"
	"strings"

	"github.com/openapigen/openapigen/internal/naming"
	"github.com/openapigen/openapigen/internal/schemautil"
	"github.com/openapigen/openapigen/parser"
)

// repaired returns the schema to use for the component called name. When a
// replacement has already been recorded it is reused; otherwise broken
// components are matched against a typed sibling once.
func (r *Resolver) repaired(ctx *Context, name string, s parser.Schema) parser.Schema {
	if to, ok := ctx.Replacement(name); ok {
		if target, ok := r.components.Get(to); ok {
			return parser.WithNullable(target, parser.MetaOf(s).Nullable)
		}
		return s
	}

	obj, ok := s.(*parser.Object)
	if !ok || !isBroken(obj) {
		return s
	}
	candidate, target, ok := r.findCandidate(name, obj)
	if !ok {
		r.logger.Debug("no repair candidate for untyped component", "component", name)
		return s
	}
	if ctx.record(name, candidate) {
		r.logger.Debug("component reference repaired", "component", name, "replacement", candidate)
	}
	return parser.WithNullable(target, parser.MetaOf(s).Nullable)
}

// isBroken reports whether any property of o is a primitive with no type.
func isBroken(o *parser.Object) bool {
	for _, p := range o.Properties.All() {
		if schemautil.IsUntyped(p) {
			return true
		}
	}
	return false
}

// isFullyTyped reports whether every property of o is a typed primitive or
// a reference.
func isFullyTyped(o *parser.Object) bool {
	if o.Properties == nil {
		return false
	}
	for _, p := range o.Properties.All() {
		switch v := p.(type) {
		case *parser.Ref:
		case *parser.Primitive:
			if schemautil.IsUntyped(v) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// findCandidate returns the first component, in declaration order, whose
// name starts with the letters of the broken name and which is a fully typed
// object with the same property names in the same order.
func (r *Resolver) findCandidate(name string, broken *parser.Object) (string, parser.Schema, bool) {
	prefix := naming.LettersOnly(name)
	members := broken.Properties.Keys()
	for key, s := range r.components.All() {
		if key == name || !strings.HasPrefix(key, prefix) {
			continue
		}
		obj, ok := s.(*parser.Object)
		if !ok || !isFullyTyped(obj) {
			continue
		}
		if slices.Equal(obj.Properties.Keys(), members) {
			return key, obj, true
		}
	}
	return "", nil, false
}

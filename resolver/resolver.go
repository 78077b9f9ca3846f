package resolver

import (
	"github.com/openapigen/openapigen/oaserrors"
	"github.com/openapigen/openapigen/parser"
)

// Resolver follows references against a fixed set of component schemas.
type Resolver struct {
	components *parser.OrderedMap[parser.Schema]
	repair     bool
	logger     parser.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRepair enables or disables the reference repair pass.
// Default: true
func WithRepair(enabled bool) Option {
	return func(r *Resolver) {
		r.repair = enabled
	}
}

// WithLogger sets the structured logger.
func WithLogger(l parser.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a resolver over the component schemas of a document.
// components may be nil.
func New(components *parser.OrderedMap[parser.Schema], opts ...Option) *Resolver {
	r := &Resolver{
		components: components,
		repair:     true,
		logger:     parser.NopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the concrete schema behind s. Non-reference schemas are
// returned unchanged; references are followed through chains of references
// to the first non-reference component.
func (r *Resolver) Resolve(ctx *Context, s parser.Schema) (parser.Schema, error) {
	ref, ok := s.(*parser.Ref)
	if !ok {
		return s, nil
	}
	_, target, err := r.Component(ctx, ref)
	return target, err
}

// Component follows ref to a non-reference component and returns the name
// of that component along with its schema. A reference chain that returns
// to a component it already visited is a circular ReferenceError.
func (r *Resolver) Component(ctx *Context, ref *parser.Ref) (string, parser.Schema, error) {
	seen := make(map[string]bool)
	for {
		name := ref.Name()
		if seen[name] {
			return "", nil, &oaserrors.ReferenceError{Ref: ref.Ref, IsCircular: true, Message: "reference chain never reaches a schema"}
		}
		seen[name] = true

		target, ok := r.lookup(ctx, name)
		if !ok {
			return "", nil, &oaserrors.ReferenceError{Ref: ref.Ref, Message: "target not found in components.schemas"}
		}
		next, isRef := target.(*parser.Ref)
		if !isRef {
			return name, target, nil
		}
		ref = next
	}
}

// lookup returns the component called name, applying the repair pass.
func (r *Resolver) lookup(ctx *Context, name string) (parser.Schema, bool) {
	s, ok := r.components.Get(name)
	if !ok {
		return nil, false
	}
	if r.repair {
		s = r.repaired(ctx, name, s)
	}
	return s, true
}

package resolver

import "github.com/openapigen/openapigen/parser"

// Replacement records one repair substitution.
type Replacement struct {
	From string
	To   string
}

// Context carries the state of one generation run.
type Context struct {
	replacements *parser.OrderedMap[string]
}

// NewContext returns a context with an empty replacement table.
func NewContext() *Context {
	return &Context{replacements: parser.NewOrderedMap[string]()}
}

// Replacement returns the component substituted for name, if any.
func (c *Context) Replacement(name string) (string, bool) {
	return c.replacements.Get(name)
}

// Replacements lists the substitutions in the order they were first made.
func (c *Context) Replacements() []Replacement {
	out := make([]Replacement, 0, c.replacements.Len())
	for from, to := range c.replacements.All() {
		out = append(out, Replacement{From: from, To: to})
	}
	return out
}

// record stores a substitution. Entries are write-once; it reports whether
// the entry is new.
func (c *Context) record(from, to string) bool {
	if c.replacements.Has(from) {
		return false
	}
	c.replacements.Set(from, to)
	return true
}

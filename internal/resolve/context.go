package resolve

import "github.com/siftlab/sift/internal/schema"

// Context is the immutable per-root-expression state threaded through
// recursive translation: the lambda parameters currently in scope, each
// bound to the serializer of the document it ranges over.
//
// A Context is never mutated in place. WithParameter returns an extended
// copy for nested scopes; the original stays valid for the enclosing
// scope. Contexts are cheap, transient, and scoped to one translation
// call.
type Context struct {
	params map[string]schema.Serializer
}

// NewContext creates an empty Context.
func NewContext() Context {
	return Context{}
}

// WithParameter returns a Context extended with a parameter binding.
// Rebinding an existing name shadows it in the returned Context only.
func (c Context) WithParameter(name string, root schema.Serializer) Context {
	params := make(map[string]schema.Serializer, len(c.params)+1)
	for k, v := range c.params {
		params[k] = v
	}
	params[name] = root
	return Context{params: params}
}

// Parameter returns the serializer bound to a parameter name.
func (c Context) Parameter(name string) (schema.Serializer, bool) {
	s, ok := c.params[name]
	return s, ok
}

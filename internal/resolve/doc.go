// Package resolve turns member/indexer-access expressions into
// translated fields: fully resolved paths paired with the serializer
// governing the addressed values.
//
// The Context carries the lambda parameter bindings in scope; it is
// immutable and extended (never mutated) for nested scopes. Resolve is a
// pure function over (context, expression, model metadata) and fails
// with UnresolvedError when an expression involves anything other than a
// deterministic chain of member and constant-indexer steps from a bound
// parameter.
package resolve

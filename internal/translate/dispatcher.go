package translate

import (
	"errors"

	"github.com/siftlab/sift/internal/expr"
	"github.com/siftlab/sift/internal/filter"
	"github.com/siftlab/sift/internal/resolve"
	"github.com/siftlab/sift/internal/schema"
)

// Translator is a stateless unit claiming one expression shape and
// producing one filter fragment, or failing.
//
// Claims is a purely structural guard: node kind and, for method calls,
// the method signature. It must not resolve fields or touch serializer
// metadata. The deeper applicability checks happen inside Translate,
// where a failure is terminal: once a translator claims an expression,
// no other translator is consulted.
type Translator interface {
	// Name identifies the translator in diagnostics.
	Name() string

	// Claims reports whether the expression has this translator's shape.
	Claims(e expr.Expr) bool

	// Translate produces the filter fragment for a claimed expression,
	// recursing into the dispatcher for sub-expressions.
	Translate(d *Dispatcher, ctx resolve.Context, e expr.Expr) (filter.Filter, error)
}

// Dispatcher walks a source expression top-down, selecting and invoking
// at most one translator per node. It performs no fallback heuristics:
// an unsupported expression is a hard failure, never a best-effort
// approximation, because a wrong filter would silently change query
// semantics.
//
// A Dispatcher is immutable after construction and safe for concurrent
// use; translations of independent root expressions share it freely.
type Dispatcher struct {
	translators []Translator
}

// NewDispatcher creates a Dispatcher over an ordered translator set.
// The first translator whose Claims accepts a node wins.
func NewDispatcher(translators ...Translator) *Dispatcher {
	return &Dispatcher{translators: translators}
}

// NewDefaultDispatcher creates a Dispatcher with the standard translator
// registry.
func NewDefaultDispatcher() *Dispatcher {
	return NewDispatcher(
		logicalTranslator{},
		notTranslator{},
		comparisonTranslator{},
		containsKeyTranslator{},
		membershipTranslator{},
		containsTranslator{},
		stringPredicateTranslator{},
	)
}

// Dispatch selects the single translator claiming e and invokes it.
// Zero claims surface as an unsupported-expression error naming the
// expression; a claiming translator's failure propagates unchanged.
func (d *Dispatcher) Dispatch(ctx resolve.Context, e expr.Expr) (filter.Filter, error) {
	if e == nil {
		return nil, newError(ErrCodeUnsupportedExpression, nil, "nil expression")
	}
	for _, t := range d.translators {
		if t.Claims(e) {
			return t.Translate(d, ctx, e)
		}
	}
	return nil, newError(ErrCodeUnsupportedExpression, e, "no translator recognizes this expression shape")
}

// Translate translates a root predicate. A root Lambda binds its
// parameter to the document serializer before the body is dispatched; a
// bare body translates against a caller-populated context.
//
// The call is synchronous and pure: it either returns a complete filter
// AST or a translation error, and leaves no shared state behind.
func (d *Dispatcher) Translate(ctx resolve.Context, root schema.Serializer, e expr.Expr) (filter.Filter, error) {
	if lam, ok := e.(expr.Lambda); ok {
		ctx = ctx.WithParameter(lam.Param.Name, root)
		return d.Dispatch(ctx, lam.Body)
	}
	return d.Dispatch(ctx, e)
}

// Translate is the package-level entry point: it translates a root
// predicate over the given document model with the standard registry.
func Translate(root schema.Serializer, e expr.Expr) (filter.Filter, error) {
	return NewDefaultDispatcher().Translate(resolve.NewContext(), root, e)
}

// resolveField resolves an operand to a translated field, mapping
// resolver failures into the translation error taxonomy.
func resolveField(ctx resolve.Context, operand expr.Expr) (resolve.Field, error) {
	fld, err := resolve.Resolve(ctx, operand)
	if err != nil {
		var ue *resolve.UnresolvedError
		if errors.As(err, &ue) {
			return resolve.Field{}, newError(ErrCodeUnresolvedField, ue.Expr, "%s", ue.Reason)
		}
		return resolve.Field{}, newError(ErrCodeUnresolvedField, operand, "%s", err.Error())
	}
	if fld.Path.IsEmpty() {
		return resolve.Field{}, newError(ErrCodeUnresolvedField, operand, "expression denotes the document root, not a field")
	}
	return fld, nil
}

package translate

import (
	"github.com/siftlab/sift/internal/expr"
	"github.com/siftlab/sift/internal/filter"
	"github.com/siftlab/sift/internal/resolve"
)

// logicalTranslator translates && and || into And/Or nodes. Children
// keep the left-to-right order of the source expression; the engine
// never reorders for optimization.
type logicalTranslator struct{}

func (logicalTranslator) Name() string { return "logical" }

func (logicalTranslator) Claims(e expr.Expr) bool {
	bin, ok := e.(expr.Binary)
	return ok && bin.Op.IsLogical()
}

func (logicalTranslator) Translate(d *Dispatcher, ctx resolve.Context, e expr.Expr) (filter.Filter, error) {
	bin := e.(expr.Binary)

	left, err := d.Dispatch(ctx, bin.Left)
	if err != nil {
		return nil, err
	}
	right, err := d.Dispatch(ctx, bin.Right)
	if err != nil {
		return nil, err
	}

	switch bin.Op {
	case expr.OpAnd:
		return filter.And{Children: []filter.Filter{left, right}}, nil
	case expr.OpOr:
		return filter.Or{Children: []filter.Filter{left, right}}, nil
	default:
		return nil, newError(ErrCodeUnsupportedExpression, e, "operator %s is not a logical combinator", bin.Op)
	}
}

// notTranslator translates logical negation into a Not node.
type notTranslator struct{}

func (notTranslator) Name() string { return "not" }

func (notTranslator) Claims(e expr.Expr) bool {
	un, ok := e.(expr.Unary)
	return ok && un.Op == expr.OpNot
}

func (notTranslator) Translate(d *Dispatcher, ctx resolve.Context, e expr.Expr) (filter.Filter, error) {
	un := e.(expr.Unary)
	child, err := d.Dispatch(ctx, un.Operand)
	if err != nil {
		return nil, err
	}
	return filter.Not{Child: child}, nil
}

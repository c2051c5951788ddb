package translate

import (
	"github.com/siftlab/sift/internal/expr"
	"github.com/siftlab/sift/internal/filter"
	"github.com/siftlab/sift/internal/resolve"
)

// comparisonTranslator translates field-versus-constant comparisons.
// The constant may be on either side; a constant on the left mirrors the
// operator (5 > x becomes x < 5). The constant is encoded through the
// resolved field's serializer, so the emitted operand is always the
// field's wire-level form.
type comparisonTranslator struct{}

func (comparisonTranslator) Name() string { return "comparison" }

func (comparisonTranslator) Claims(e expr.Expr) bool {
	bin, ok := e.(expr.Binary)
	return ok && bin.Op.IsComparison()
}

func (comparisonTranslator) Translate(d *Dispatcher, ctx resolve.Context, e expr.Expr) (filter.Filter, error) {
	bin := e.(expr.Binary)

	fieldExpr, konst, op, err := comparisonOperands(bin)
	if err != nil {
		return nil, err
	}

	fld, err := resolveField(ctx, fieldExpr)
	if err != nil {
		return nil, err
	}

	value, encErr := fld.Serializer.Encode(konst.Value)
	if encErr != nil {
		return nil, newError(ErrCodeUnsupportedExpression, e, "cannot serialize comparison operand: %s", encErr.Error())
	}

	switch op {
	case expr.OpEq:
		return filter.Eq{Field: fld.Path, Value: value}, nil
	case expr.OpNe:
		return filter.Compare{Op: filter.CompareNe, Field: fld.Path, Value: value}, nil
	case expr.OpGt:
		return filter.Compare{Op: filter.CompareGt, Field: fld.Path, Value: value}, nil
	case expr.OpGte:
		return filter.Compare{Op: filter.CompareGte, Field: fld.Path, Value: value}, nil
	case expr.OpLt:
		return filter.Compare{Op: filter.CompareLt, Field: fld.Path, Value: value}, nil
	case expr.OpLte:
		return filter.Compare{Op: filter.CompareLte, Field: fld.Path, Value: value}, nil
	default:
		return nil, newError(ErrCodeUnsupportedExpression, e, "operator %s is not a comparison", op)
	}
}

// comparisonOperands splits a comparison into (field expression,
// constant, effective operator), mirroring the operator when the
// constant is on the left.
func comparisonOperands(bin expr.Binary) (expr.Expr, expr.Constant, expr.BinaryOp, error) {
	if konst, ok := bin.Right.(expr.Constant); ok {
		return bin.Left, konst, bin.Op, nil
	}
	if konst, ok := bin.Left.(expr.Constant); ok {
		return bin.Right, konst, bin.Op.Flip(), nil
	}
	return nil, expr.Constant{}, bin.Op, newError(ErrCodeUnsupportedExpression, bin,
		"comparison requires one compile-time constant operand")
}

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftlab/sift/internal/expr"
	"github.com/siftlab/sift/internal/filter"
	"github.com/siftlab/sift/internal/ir"
)

func eq(left, right expr.Expr) expr.Expr {
	return expr.Binary{Op: expr.OpEq, Left: left, Right: right}
}

func and(left, right expr.Expr) expr.Expr {
	return expr.Binary{Op: expr.OpAnd, Left: left, Right: right}
}

func or(left, right expr.Expr) expr.Expr {
	return expr.Binary{Op: expr.OpOr, Left: left, Right: right}
}

func not(operand expr.Expr) expr.Expr {
	return expr.Unary{Op: expr.OpNot, Operand: operand}
}

func TestLogical_AndPreservesSourceOrder(t *testing.T) {
	body := and(
		eq(member("Name"), constant(ir.String("bolt"))),
		eq(member("Qty"), constant(ir.Int64(5))),
	)

	f, err := translateItem(t, body)
	require.NoError(t, err)

	conj, ok := f.(filter.And)
	require.True(t, ok)
	require.Len(t, conj.Children, 2)

	left, ok := conj.Children[0].(filter.Eq)
	require.True(t, ok)
	assert.True(t, left.Field.Equal(filter.NewPath("name")), "left operand renders first")

	right, ok := conj.Children[1].(filter.Eq)
	require.True(t, ok)
	assert.True(t, right.Field.Equal(filter.NewPath("qty")))
}

func TestLogical_OrRendering(t *testing.T) {
	requireRendered(t,
		or(
			eq(member("Name"), constant(ir.String("bolt"))),
			eq(member("Active"), constant(ir.Bool(true))),
		),
		`{"$or":[{"name":"bolt"},{"active":true}]}`,
	)
}

func TestLogical_Nesting(t *testing.T) {
	requireRendered(t,
		and(
			eq(member("Name"), constant(ir.String("bolt"))),
			or(
				expr.Binary{Op: expr.OpGt, Left: member("Qty"), Right: constant(ir.Int64(5))},
				not(eq(member("Name"), constant(ir.String("x")))),
			),
		),
		`{"$and":[{"name":"bolt"},{"$or":[{"qty":{"$gt":5}},{"$nor":[{"name":"x"}]}]}]}`,
	)
}

func TestLogical_FailurePropagatesFromEitherSide(t *testing.T) {
	bad := eq(member("Bogus"), constant(ir.Int64(1)))
	good := eq(member("Qty"), constant(ir.Int64(1)))

	_, err := translateItem(t, and(bad, good))
	require.Error(t, err)
	assert.True(t, IsUnresolvedField(err))

	_, err = translateItem(t, and(good, bad))
	require.Error(t, err)
	assert.True(t, IsUnresolvedField(err))
}

func TestNot_WrapsChild(t *testing.T) {
	f, err := translateItem(t, not(eq(member("Name"), constant(ir.String("x")))))
	require.NoError(t, err)

	neg, ok := f.(filter.Not)
	require.True(t, ok)
	_, ok = neg.Child.(filter.Eq)
	assert.True(t, ok)
}

func TestNot_FailurePropagates(t *testing.T) {
	_, err := translateItem(t, not(eq(member("Bogus"), constant(ir.Int64(1)))))
	require.Error(t, err)
	assert.True(t, IsUnresolvedField(err))
}

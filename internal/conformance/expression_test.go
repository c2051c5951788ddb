package conformance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftlab/sift/internal/expr"
	"github.com/siftlab/sift/internal/ir"
)

func TestBuildExpression_Lambda(t *testing.T) {
	spec := ExprSpec{Lambda: &LambdaSpec{
		Param: "x",
		Body: &ExprSpec{Binary: &BinarySpec{
			Op:    "eq",
			Left:  &ExprSpec{Member: &MemberSpec{Target: &ExprSpec{Param: "x"}, Name: "Name"}},
			Right: &ExprSpec{Const: &ConstSpec{Value: "bolt"}},
		}},
	}}

	e, err := BuildExpression(&spec)
	require.NoError(t, err)

	lam, ok := e.(expr.Lambda)
	require.True(t, ok)
	assert.Equal(t, "x", lam.Param.Name)

	bin, ok := lam.Body.(expr.Binary)
	require.True(t, ok)
	assert.Equal(t, expr.OpEq, bin.Op)

	konst, ok := bin.Right.(expr.Constant)
	require.True(t, ok)
	assert.Equal(t, ir.String("bolt"), konst.Value)
}

func TestBuildExpression_CallDefaults(t *testing.T) {
	spec := ExprSpec{Call: &CallSpec{
		Method:   "ContainsKey",
		Receiver: &ExprSpec{Member: &MemberSpec{Target: &ExprSpec{Param: "x"}, Name: "Tags"}},
		Args:     []ExprSpec{{Const: &ConstSpec{Value: "red"}}},
	}}

	e, err := BuildExpression(&spec)
	require.NoError(t, err)

	call, ok := e.(expr.Call)
	require.True(t, ok)
	assert.Equal(t, "ContainsKey", call.Method.Name)
	assert.False(t, call.Method.Static)
	assert.True(t, call.Method.Exported)
	assert.Equal(t, 1, call.Method.NumArgs)
	assert.Equal(t, expr.TypeBool, call.Method.Returns)
}

func TestBuildExpression_ConstKinds(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want ir.Value
	}{
		{"string", "a", ir.String("a")},
		{"int", 5, ir.Int64(5)},
		{"bool", true, ir.Bool(true)},
		{"float", 1.5, ir.Double(1.5)},
		{"null", nil, ir.Null{}},
		{"array", []any{"a", 2}, ir.Array{ir.String("a"), ir.Int64(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := BuildExpression(&ExprSpec{Const: &ConstSpec{Value: tt.in}})
			require.NoError(t, err)
			assert.Equal(t, expr.Constant{Value: tt.want}, e)
		})
	}
}

func TestBuildExpression_Index(t *testing.T) {
	spec := ExprSpec{Index: &IndexSpec{
		Target: &ExprSpec{Member: &MemberSpec{Target: &ExprSpec{Param: "x"}, Name: "Tags"}},
		Key:    &ExprSpec{Const: &ConstSpec{Value: "red"}},
	}}

	e, err := BuildExpression(&spec)
	require.NoError(t, err)
	_, ok := e.(expr.Index)
	assert.True(t, ok)
}

func TestBuildExpression_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec ExprSpec
		want string
	}{
		{"empty node", ExprSpec{}, "exactly one kind"},
		{"two kinds", ExprSpec{Param: "x", Const: &ConstSpec{Value: 1}}, "exactly one kind"},
		{"unknown binary op", ExprSpec{Binary: &BinarySpec{Op: "xor",
			Left: &ExprSpec{Param: "x"}, Right: &ExprSpec{Param: "x"}}}, "unknown binary operator"},
		{"unknown unary op", ExprSpec{Unary: &UnarySpec{Op: "neg",
			Operand: &ExprSpec{Param: "x"}}}, "unknown unary operator"},
		{"member without name", ExprSpec{Member: &MemberSpec{Target: &ExprSpec{Param: "x"}}}, "requires a name"},
		{"call without method", ExprSpec{Call: &CallSpec{}}, "requires a method name"},
		{"lambda without param", ExprSpec{Lambda: &LambdaSpec{Body: &ExprSpec{Param: "x"}}}, "requires a param"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildExpression(&tt.spec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

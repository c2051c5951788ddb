package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siftlab/sift/internal/ir"
)

func TestSprint(t *testing.T) {
	x := Parameter{Name: "x"}
	tags := Member{Target: x, Name: "Tags"}

	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{"parameter", x, "x"},
		{"member", tags, "x.Tags"},
		{
			"index",
			Index{Target: tags, Key: Constant{Value: ir.String("red")}},
			`x.Tags["red"]`,
		},
		{
			"call",
			Call{
				Receiver: tags,
				Method:   MethodSig{Name: "ContainsKey", Exported: true, NumArgs: 1, Returns: TypeBool},
				Args:     []Expr{Constant{Value: ir.String("red")}},
			},
			`x.Tags.ContainsKey("red")`,
		},
		{
			"binary",
			Binary{Op: OpGt, Left: Member{Target: x, Name: "Qty"}, Right: Constant{Value: ir.Int64(5)}},
			"(x.Qty > 5)",
		},
		{
			"unary",
			Unary{Op: OpNot, Operand: Member{Target: x, Name: "Active"}},
			"!(x.Active)",
		},
		{
			"lambda",
			Lambda{Param: x, Body: Binary{Op: OpAnd, Left: Member{Target: x, Name: "A"}, Right: Member{Target: x, Name: "B"}}},
			"x => (x.A && x.B)",
		},
		{"nil", nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sprint(tt.expr))
		})
	}
}

func TestBinaryOp_Flip(t *testing.T) {
	tests := []struct {
		op, want BinaryOp
	}{
		{OpGt, OpLt},
		{OpGte, OpLte},
		{OpLt, OpGt},
		{OpLte, OpGte},
		{OpEq, OpEq},
		{OpNe, OpNe},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.Flip(), "flip of %s", tt.op)
	}
}

func TestBinaryOp_Classification(t *testing.T) {
	assert.True(t, OpAnd.IsLogical())
	assert.True(t, OpOr.IsLogical())
	assert.False(t, OpEq.IsLogical())

	for _, op := range []BinaryOp{OpEq, OpNe, OpGt, OpGte, OpLt, OpLte} {
		assert.True(t, op.IsComparison(), "%s should be a comparison", op)
	}
	assert.False(t, OpAnd.IsComparison())
}

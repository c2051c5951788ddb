package expr

import "github.com/siftlab/sift/internal/ir"

// Expr is a sealed interface over the source predicate expression tree.
//
// Only types in this package implement it. The marker method pattern
// prevents external implementations and enables exhaustive type switches
// in the translation dispatcher.
//
// Expression trees are immutable: the engine reads them, never rewrites
// them. A tree outlives any number of translation calls.
type Expr interface {
	expr() // Marker method - seals interface to this package
}

// Parameter references a lambda parameter: the document root inside a
// predicate body.
type Parameter struct {
	Name string
}

func (Parameter) expr() {}

// Member accesses a named member of the target expression, e.g. x.Tags.
type Member struct {
	Target Expr
	Name   string
}

func (Member) expr() {}

// Index accesses a keyed/indexed element of the target expression,
// e.g. x.Tags["red"] or x.Items[0].
type Index struct {
	Target Expr
	Key    Expr
}

func (Index) expr() {}

// Constant is a compile-time literal. The payload is the model-level
// value; serializers map it to its wire-level form during translation.
type Constant struct {
	Value ir.Value
}

func (Constant) expr() {}

// MethodSig describes the structural signature of a called method.
// Translators claim calls by signature alone, never by receiver type:
// the deeper applicability checks happen after the claim.
type MethodSig struct {
	Name     string
	Static   bool
	Exported bool
	NumArgs  int
	Returns  string // type name of the return value, e.g. "bool"
}

// TypeBool is the return type name of boolean-valued methods.
const TypeBool = "bool"

// Call invokes a method on a receiver expression, e.g.
// x.Tags.ContainsKey("red"). Receiver is nil for static calls.
type Call struct {
	Receiver Expr
	Method   MethodSig
	Args     []Expr
}

func (Call) expr() {}

// BinaryOp enumerates binary operators over predicate operands.
type BinaryOp int

const (
	OpAnd BinaryOp = iota // logical &&
	OpOr                  // logical ||
	OpEq                  // ==
	OpNe                  // !=
	OpGt                  // >
	OpGte                 // >=
	OpLt                  // <
	OpLte                 // <=
)

// String returns the source-level operator token.
func (op BinaryOp) String() string {
	switch op {
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	default:
		return "op(?)"
	}
}

// IsLogical reports whether the operator combines boolean operands.
func (op BinaryOp) IsLogical() bool {
	return op == OpAnd || op == OpOr
}

// IsComparison reports whether the operator compares a field to a value.
func (op BinaryOp) IsComparison() bool {
	switch op {
	case OpEq, OpNe, OpGt, OpGte, OpLt, OpLte:
		return true
	default:
		return false
	}
}

// Flip mirrors a comparison operator for swapped operands:
// 5 > x is x < 5. Equality operators are their own mirror.
func (op BinaryOp) Flip() BinaryOp {
	switch op {
	case OpGt:
		return OpLt
	case OpGte:
		return OpLte
	case OpLt:
		return OpGt
	case OpLte:
		return OpGte
	default:
		return op
	}
}

// Binary applies a binary operator to two sub-expressions.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (Binary) expr() {}

// UnaryOp enumerates unary operators.
type UnaryOp int

const (
	// OpNot is logical negation.
	OpNot UnaryOp = iota
)

// String returns the source-level operator token.
func (op UnaryOp) String() string {
	if op == OpNot {
		return "!"
	}
	return "op(?)"
}

// Unary applies a unary operator to an operand.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

func (Unary) expr() {}

// Lambda is a root predicate: a parameter binding plus a boolean body,
// e.g. x => x.Tags.ContainsKey("red").
type Lambda struct {
	Param Parameter
	Body  Expr
}

func (Lambda) expr() {}

package conformance

import (
	"fmt"

	"github.com/siftlab/sift/internal/expr"
	"github.com/siftlab/sift/internal/ir"
)

// binaryOps maps case-file operator names to expression operators.
var binaryOps = map[string]expr.BinaryOp{
	"and": expr.OpAnd,
	"or":  expr.OpOr,
	"eq":  expr.OpEq,
	"ne":  expr.OpNe,
	"gt":  expr.OpGt,
	"gte": expr.OpGte,
	"lt":  expr.OpLt,
	"lte": expr.OpLte,
}

// BuildExpression compiles an expression declaration into an expression
// tree. Exactly one node kind must be set per spec node.
func BuildExpression(s *ExprSpec) (expr.Expr, error) {
	if s == nil {
		return nil, fmt.Errorf("missing expression node")
	}
	if err := requireOneKind(s); err != nil {
		return nil, err
	}

	switch {
	case s.Param != "":
		return expr.Parameter{Name: s.Param}, nil

	case s.Member != nil:
		target, err := BuildExpression(s.Member.Target)
		if err != nil {
			return nil, fmt.Errorf("member target: %w", err)
		}
		if s.Member.Name == "" {
			return nil, fmt.Errorf("member requires a name")
		}
		return expr.Member{Target: target, Name: s.Member.Name}, nil

	case s.Index != nil:
		target, err := BuildExpression(s.Index.Target)
		if err != nil {
			return nil, fmt.Errorf("index target: %w", err)
		}
		key, err := BuildExpression(s.Index.Key)
		if err != nil {
			return nil, fmt.Errorf("index key: %w", err)
		}
		return expr.Index{Target: target, Key: key}, nil

	case s.Const != nil:
		v, err := ir.FromGo(s.Const.Value)
		if err != nil {
			return nil, fmt.Errorf("const: %w", err)
		}
		return expr.Constant{Value: v}, nil

	case s.Call != nil:
		return buildCall(s.Call)

	case s.Binary != nil:
		op, ok := binaryOps[s.Binary.Op]
		if !ok {
			return nil, fmt.Errorf("unknown binary operator %q", s.Binary.Op)
		}
		left, err := BuildExpression(s.Binary.Left)
		if err != nil {
			return nil, fmt.Errorf("binary left: %w", err)
		}
		right, err := BuildExpression(s.Binary.Right)
		if err != nil {
			return nil, fmt.Errorf("binary right: %w", err)
		}
		return expr.Binary{Op: op, Left: left, Right: right}, nil

	case s.Unary != nil:
		if s.Unary.Op != "not" {
			return nil, fmt.Errorf("unknown unary operator %q", s.Unary.Op)
		}
		operand, err := BuildExpression(s.Unary.Operand)
		if err != nil {
			return nil, fmt.Errorf("unary operand: %w", err)
		}
		return expr.Unary{Op: expr.OpNot, Operand: operand}, nil

	case s.Lambda != nil:
		if s.Lambda.Param == "" {
			return nil, fmt.Errorf("lambda requires a param")
		}
		body, err := BuildExpression(s.Lambda.Body)
		if err != nil {
			return nil, fmt.Errorf("lambda body: %w", err)
		}
		return expr.Lambda{Param: expr.Parameter{Name: s.Lambda.Param}, Body: body}, nil

	default:
		return nil, fmt.Errorf("empty expression node")
	}
}

func buildCall(c *CallSpec) (expr.Expr, error) {
	if c.Method == "" {
		return nil, fmt.Errorf("call requires a method name")
	}

	var receiver expr.Expr
	if c.Receiver != nil {
		var err error
		receiver, err = BuildExpression(c.Receiver)
		if err != nil {
			return nil, fmt.Errorf("call receiver: %w", err)
		}
	}

	args := make([]expr.Expr, len(c.Args))
	for i := range c.Args {
		arg, err := BuildExpression(&c.Args[i])
		if err != nil {
			return nil, fmt.Errorf("call arg %d: %w", i, err)
		}
		args[i] = arg
	}

	returns := c.Returns
	if returns == "" {
		returns = expr.TypeBool
	}

	return expr.Call{
		Receiver: receiver,
		Method: expr.MethodSig{
			Name:     c.Method,
			Static:   c.Static,
			Exported: true,
			NumArgs:  len(args),
			Returns:  returns,
		},
		Args: args,
	}, nil
}

// requireOneKind rejects spec nodes with zero or multiple kinds set.
func requireOneKind(s *ExprSpec) error {
	n := 0
	if s.Param != "" {
		n++
	}
	for _, set := range []bool{
		s.Member != nil, s.Index != nil, s.Const != nil,
		s.Call != nil, s.Binary != nil, s.Unary != nil, s.Lambda != nil,
	} {
		if set {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("expression node must set exactly one kind, found %d", n)
	}
	return nil
}

package expr

import (
	"fmt"
	"strings"

	"github.com/siftlab/sift/internal/ir"
)

// Sprint renders an expression in source-like notation for error
// messages. The output is for diagnostics only: it is not parsed back.
func Sprint(e Expr) string {
	var sb strings.Builder
	sprint(&sb, e)
	return sb.String()
}

func sprint(sb *strings.Builder, e Expr) {
	switch node := e.(type) {
	case nil:
		sb.WriteString("<nil>")
	case Parameter:
		sb.WriteString(node.Name)
	case Member:
		sprint(sb, node.Target)
		sb.WriteByte('.')
		sb.WriteString(node.Name)
	case Index:
		sprint(sb, node.Target)
		sb.WriteByte('[')
		sprint(sb, node.Key)
		sb.WriteByte(']')
	case Constant:
		sb.WriteString(sprintConstant(node.Value))
	case Call:
		if node.Receiver != nil {
			sprint(sb, node.Receiver)
			sb.WriteByte('.')
		}
		sb.WriteString(node.Method.Name)
		sb.WriteByte('(')
		for i, arg := range node.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sprint(sb, arg)
		}
		sb.WriteByte(')')
	case Binary:
		sb.WriteByte('(')
		sprint(sb, node.Left)
		sb.WriteByte(' ')
		sb.WriteString(node.Op.String())
		sb.WriteByte(' ')
		sprint(sb, node.Right)
		sb.WriteByte(')')
	case Unary:
		sb.WriteString(node.Op.String())
		sb.WriteByte('(')
		sprint(sb, node.Operand)
		sb.WriteByte(')')
	case Lambda:
		sb.WriteString(node.Param.Name)
		sb.WriteString(" => ")
		sprint(sb, node.Body)
	default:
		fmt.Fprintf(sb, "<unknown %T>", e)
	}
}

func sprintConstant(v ir.Value) string {
	b, err := ir.MarshalCanonical(v)
	if err != nil {
		return fmt.Sprintf("<const %T>", v)
	}
	return string(b)
}

package filterdoc

import (
	"fmt"

	"github.com/siftlab/sift/internal/filter"
	"github.com/siftlab/sift/internal/ir"
)

// Render converts a filter AST into the query-filter document of the
// target grammar. The AST is validated first: a node shape unreachable
// from the valid grammar is an error, never a best-effort document.
//
// Rendering is deterministic: structurally identical ASTs produce
// identical documents, entry for entry.
func Render(f filter.Filter) (ir.Document, error) {
	if err := filter.Validate(f); err != nil {
		return nil, err
	}
	return render(f)
}

// RenderCanonical renders a filter AST to canonical JSON bytes, the form
// golden tests and diagnostics compare against.
func RenderCanonical(f filter.Filter) ([]byte, error) {
	doc, err := Render(f)
	if err != nil {
		return nil, err
	}
	return ir.MarshalCanonical(doc)
}

func render(f filter.Filter) (ir.Document, error) {
	switch node := f.(type) {
	case filter.Exists:
		return ir.NewDocument(
			ir.E(node.Field.Dotted(), ir.NewDocument(ir.E("$exists", ir.Bool(node.Exists)))),
		), nil

	case filter.Eq:
		return ir.NewDocument(ir.E(node.Field.Dotted(), node.Value)), nil

	case filter.Compare:
		return ir.NewDocument(
			ir.E(node.Field.Dotted(), ir.NewDocument(ir.E(node.Op.Operator(), node.Value))),
		), nil

	case filter.In:
		values := node.Values
		if values == nil {
			values = ir.Array{}
		}
		return ir.NewDocument(
			ir.E(node.Field.Dotted(), ir.NewDocument(ir.E("$in", values))),
		), nil

	case filter.And:
		children, err := renderChildren(node.Children)
		if err != nil {
			return nil, err
		}
		return ir.NewDocument(ir.E("$and", children)), nil

	case filter.Or:
		children, err := renderChildren(node.Children)
		if err != nil {
			return nil, err
		}
		return ir.NewDocument(ir.E("$or", children)), nil

	case filter.Not:
		// The grammar has no general top-level $not; a single-child
		// $nor is its standard rendering.
		child, err := render(node.Child)
		if err != nil {
			return nil, err
		}
		return ir.NewDocument(ir.E("$nor", ir.Array{child})), nil

	case filter.Regex:
		operator := ir.NewDocument(ir.E("$regex", ir.String(node.Pattern)))
		if node.Options != "" {
			operator = operator.Append("$options", ir.String(node.Options))
		}
		return ir.NewDocument(ir.E(node.Field.Dotted(), operator)), nil

	default:
		return nil, fmt.Errorf("unsupported filter node type: %T", f)
	}
}

func renderChildren(children []filter.Filter) (ir.Array, error) {
	out := make(ir.Array, len(children))
	for i, child := range children {
		doc, err := render(child)
		if err != nil {
			return nil, err
		}
		out[i] = doc
	}
	return out, nil
}

package resolve

import (
	"fmt"
	"strconv"

	"github.com/siftlab/sift/internal/expr"
	"github.com/siftlab/sift/internal/filter"
	"github.com/siftlab/sift/internal/ir"
	"github.com/siftlab/sift/internal/schema"
)

// Field is a translated field: a fully resolved path from the document
// root plus the serializer governing values at that path.
type Field struct {
	Path       filter.Path
	Serializer schema.Serializer
}

// UnresolvedError reports that an expression does not denote a
// deterministic field path from the document root.
type UnresolvedError struct {
	Expr   expr.Expr
	Reason string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("cannot resolve %s to a document field: %s", expr.Sprint(e.Expr), e.Reason)
}

// Resolve translates a member/indexer-access expression into a Field.
//
// Resolution is compositional: a.b[k] resolves a, then extends the path
// with the serializer-aware step for member b, then for indexer k. It is
// a pure function of (context, expression, model metadata): no side
// effects, no retained state.
func Resolve(ctx Context, e expr.Expr) (Field, error) {
	switch node := e.(type) {
	case expr.Parameter:
		root, ok := ctx.Parameter(node.Name)
		if !ok {
			return Field{}, &UnresolvedError{Expr: e, Reason: fmt.Sprintf("parameter %q is not bound in this scope", node.Name)}
		}
		return Field{Path: filter.NewPath(), Serializer: root}, nil

	case expr.Member:
		parent, err := Resolve(ctx, node.Target)
		if err != nil {
			return Field{}, err
		}
		doc, ok := parent.Serializer.(schema.DocumentCapable)
		if !ok {
			return Field{}, &UnresolvedError{
				Expr:   e,
				Reason: fmt.Sprintf("serializer %s has no named members", parent.Serializer.TypeName()),
			}
		}
		fi, ok := doc.Field(node.Name)
		if !ok {
			return Field{}, &UnresolvedError{
				Expr:   e,
				Reason: fmt.Sprintf("member %q is not part of model %s", node.Name, parent.Serializer.TypeName()),
			}
		}
		return Field{Path: parent.Path.Child(fi.Key), Serializer: fi.Serializer}, nil

	case expr.Index:
		parent, err := Resolve(ctx, node.Target)
		if err != nil {
			return Field{}, err
		}
		return resolveIndex(e, parent, node.Key)

	default:
		return Field{}, &UnresolvedError{
			Expr:   e,
			Reason: fmt.Sprintf("expression kind %T does not denote a field", e),
		}
	}
}

// resolveIndex extends a resolved field by one indexer step. Mapping
// fields are key-addressable only under Document representation; array
// fields accept constant non-negative positions.
func resolveIndex(e expr.Expr, parent Field, key expr.Expr) (Field, error) {
	konst, ok := key.(expr.Constant)
	if !ok {
		return Field{}, &UnresolvedError{Expr: e, Reason: "indexer key is not a compile-time constant"}
	}

	switch ser := parent.Serializer.(type) {
	case schema.MappingCapable:
		if rep := ser.Representation(); rep != schema.RepresentationDocument {
			return Field{}, &UnresolvedError{
				Expr:   e,
				Reason: fmt.Sprintf("mapping with %s representation is not key-addressable", rep),
			}
		}
		encoded, err := ser.KeySerializer().Encode(konst.Value)
		if err != nil {
			return Field{}, &UnresolvedError{Expr: e, Reason: err.Error()}
		}
		name, ok := encoded.(ir.String)
		if !ok {
			return Field{}, &UnresolvedError{
				Expr:   e,
				Reason: fmt.Sprintf("key serializer %s yields %T, not a string element name", ser.KeySerializer().TypeName(), encoded),
			}
		}
		return Field{Path: parent.Path.Child(string(name)), Serializer: ser.ValueSerializer()}, nil

	case schema.ArrayCapable:
		pos, err := constantPosition(konst.Value)
		if err != nil {
			return Field{}, &UnresolvedError{Expr: e, Reason: err.Error()}
		}
		return Field{Path: parent.Path.Child(strconv.Itoa(pos)), Serializer: ser.ElementSerializer()}, nil

	default:
		return Field{}, &UnresolvedError{
			Expr:   e,
			Reason: fmt.Sprintf("serializer %s is not indexable", parent.Serializer.TypeName()),
		}
	}
}

func constantPosition(v ir.Value) (int, error) {
	var pos int64
	switch n := v.(type) {
	case ir.Int32:
		pos = int64(n)
	case ir.Int64:
		pos = int64(n)
	default:
		return 0, fmt.Errorf("array position must be an integer constant, got %T", v)
	}
	if pos < 0 {
		return 0, fmt.Errorf("array position must be non-negative, got %d", pos)
	}
	return int(pos), nil
}

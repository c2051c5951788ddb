package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftlab/sift/internal/expr"
	"github.com/siftlab/sift/internal/filter"
	"github.com/siftlab/sift/internal/filterdoc"
	"github.com/siftlab/sift/internal/ir"
	"github.com/siftlab/sift/internal/schema"
)

// itemModel is the document model shared by the translator tests: one
// mapping field per representation, plus scalar, enum-keyed, and array
// fields.
func itemModel() *schema.StructSerializer {
	return schema.MustStruct("Item",
		schema.FieldDef{Member: "Name", Key: "name", Serializer: schema.StringSerializer{}},
		schema.FieldDef{Member: "Qty", Key: "qty", Serializer: schema.Int64Serializer{}},
		schema.FieldDef{Member: "Active", Key: "active", Serializer: schema.BoolSerializer{}},
		schema.FieldDef{Member: "Tags", Serializer: schema.MapSerializer{
			Rep:    schema.RepresentationDocument,
			Keys:   schema.StringSerializer{},
			Values: schema.StringSerializer{},
		}},
		schema.FieldDef{Member: "PairTags", Serializer: schema.MapSerializer{
			Rep:    schema.RepresentationArrayOfDocuments,
			Keys:   schema.StringSerializer{},
			Values: schema.StringSerializer{},
		}},
		schema.FieldDef{Member: "ListTags", Serializer: schema.MapSerializer{
			Rep:    schema.RepresentationArrayOfArrays,
			Keys:   schema.StringSerializer{},
			Values: schema.StringSerializer{},
		}},
		schema.FieldDef{Member: "EnumTags", Serializer: schema.MapSerializer{
			Rep:    schema.RepresentationDocument,
			Keys:   schema.EnumStringSerializer{Enum: "Color", Names: map[int64]string{0: "red", 1: "blue"}},
			Values: schema.Int64Serializer{},
		}},
		schema.FieldDef{Member: "NumTags", Serializer: schema.MapSerializer{
			Rep:    schema.RepresentationDocument,
			Keys:   schema.Int64Serializer{},
			Values: schema.StringSerializer{},
		}},
		schema.FieldDef{Member: "Labels", Serializer: schema.ArraySerializer{Elements: schema.StringSerializer{}}},
	)
}

func param() expr.Parameter { return expr.Parameter{Name: "x"} }

func member(name string) expr.Expr {
	return expr.Member{Target: param(), Name: name}
}

func lambda(body expr.Expr) expr.Expr {
	return expr.Lambda{Param: param(), Body: body}
}

func boolMethod(name string) expr.MethodSig {
	return expr.MethodSig{Name: name, Exported: true, NumArgs: 1, Returns: expr.TypeBool}
}

func call(receiver expr.Expr, method string, arg expr.Expr) expr.Expr {
	return expr.Call{Receiver: receiver, Method: boolMethod(method), Args: []expr.Expr{arg}}
}

func constant(v ir.Value) expr.Expr { return expr.Constant{Value: v} }

// translateItem translates a predicate body over the item model.
func translateItem(t *testing.T, body expr.Expr) (filter.Filter, error) {
	t.Helper()
	return Translate(itemModel(), lambda(body))
}

// requireRendered translates and renders, asserting the canonical form.
func requireRendered(t *testing.T, body expr.Expr, expected string) {
	t.Helper()
	f, err := translateItem(t, body)
	require.NoError(t, err)
	b, err := filterdoc.RenderCanonical(f)
	require.NoError(t, err)
	assert.Equal(t, expected, string(b))
}

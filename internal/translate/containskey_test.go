package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftlab/sift/internal/expr"
	"github.com/siftlab/sift/internal/filter"
	"github.com/siftlab/sift/internal/ir"
)

func containsKey(receiver expr.Expr, key expr.Expr) expr.Expr {
	return call(receiver, "ContainsKey", key)
}

func TestContainsKey_DocumentRepresentation(t *testing.T) {
	f, err := translateItem(t, containsKey(member("Tags"), constant(ir.String("red"))))
	require.NoError(t, err)

	exists, ok := f.(filter.Exists)
	require.True(t, ok, "expected an Exists node, got %T", f)
	assert.True(t, exists.Field.Equal(filter.NewPath("Tags", "red")))
	assert.True(t, exists.Exists)
}

func TestContainsKey_EndToEndRendering(t *testing.T) {
	requireRendered(t,
		containsKey(member("Tags"), constant(ir.String("red"))),
		`{"Tags.red":{"$exists":true}}`,
	)
}

func TestContainsKey_RejectsArrayOfDocuments(t *testing.T) {
	f, err := translateItem(t, containsKey(member("PairTags"), constant(ir.String("red"))))

	require.Error(t, err)
	assert.Nil(t, f, "no AST on failure")
	assert.True(t, IsUnsupportedRepresentation(err))
	assert.Contains(t, err.Error(), "ArrayOfDocuments", "failure names the representation")
}

func TestContainsKey_RejectsArrayOfArrays(t *testing.T) {
	f, err := translateItem(t, containsKey(member("ListTags"), constant(ir.String("red"))))

	require.Error(t, err)
	assert.Nil(t, f)
	assert.True(t, IsUnsupportedRepresentation(err))
	assert.Contains(t, err.Error(), "ArrayOfArrays")
}

func TestContainsKey_RepresentationFlipChangesOutcome(t *testing.T) {
	// The same expression shape over the same key: only the field's
	// representation differs, and only the Document one translates.
	doc := containsKey(member("Tags"), constant(ir.String("red")))
	pairs := containsKey(member("PairTags"), constant(ir.String("red")))

	_, err := translateItem(t, doc)
	require.NoError(t, err)

	_, err = translateItem(t, pairs)
	require.Error(t, err)
	assert.True(t, IsUnsupportedRepresentation(err))
	assert.Contains(t, err.Error(), "Array")
}

func TestContainsKey_RejectsNonConstantKey(t *testing.T) {
	f, err := translateItem(t, containsKey(member("Tags"), member("Name")))

	require.Error(t, err)
	assert.Nil(t, f)
	assert.True(t, IsInvalidKey(err))
	assert.Contains(t, err.Error(), "compile-time constant")
}

func TestContainsKey_RejectsNonStringSerializingKey(t *testing.T) {
	// NumTags has Document representation but int-serialized keys: the
	// encoded key cannot name a subfield.
	f, err := translateItem(t, containsKey(member("NumTags"), constant(ir.Int64(5))))

	require.Error(t, err)
	assert.Nil(t, f)
	assert.True(t, IsInvalidKey(err))
	assert.Contains(t, err.Error(), "Int64Serializer")
}

func TestContainsKey_EnumKeySerializesToString(t *testing.T) {
	// An enum ordinal is not a string constant, but its key serializer
	// yields a string scalar, which is what Document addressing needs.
	requireRendered(t,
		containsKey(member("EnumTags"), constant(ir.Int64(0))),
		`{"EnumTags.red":{"$exists":true}}`,
	)
}

func TestContainsKey_RejectsUnknownEnumKey(t *testing.T) {
	_, err := translateItem(t, containsKey(member("EnumTags"), constant(ir.Int64(9))))
	require.Error(t, err)
	assert.True(t, IsInvalidKey(err))
}

func TestContainsKey_NotADictionary(t *testing.T) {
	// Name resolves fine but its serializer has no mapping capability.
	f, err := translateItem(t, containsKey(member("Name"), constant(ir.String("red"))))

	require.Error(t, err)
	assert.Nil(t, f)
	assert.True(t, IsNotADictionary(err))
	assert.Contains(t, err.Error(), "StringSerializer", "failure names the concrete serializer kind")
}

func TestContainsKey_UnresolvedReceiver(t *testing.T) {
	f, err := translateItem(t, containsKey(member("Bogus"), constant(ir.String("red"))))

	require.Error(t, err)
	assert.Nil(t, f)
	assert.True(t, IsUnresolvedField(err))
}

func TestContainsKey_StructuralRejection(t *testing.T) {
	// Calls that do not match the "non-static, exported, bool-returning,
	// one-argument" shape are never claimed by this translator and fall
	// through to unsupported-expression handling.
	key := []expr.Expr{constant(ir.String("red"))}

	tests := []struct {
		name string
		call expr.Expr
	}{
		{
			"static",
			expr.Call{Receiver: member("Tags"), Method: expr.MethodSig{Name: "ContainsKey", Static: true, Exported: true, NumArgs: 1, Returns: expr.TypeBool}, Args: key},
		},
		{
			"unexported",
			expr.Call{Receiver: member("Tags"), Method: expr.MethodSig{Name: "ContainsKey", NumArgs: 1, Returns: expr.TypeBool}, Args: key},
		},
		{
			"two arguments",
			expr.Call{Receiver: member("Tags"), Method: expr.MethodSig{Name: "ContainsKey", Exported: true, NumArgs: 2, Returns: expr.TypeBool}, Args: append(key, constant(ir.String("x")))},
		},
		{
			"non-bool return",
			expr.Call{Receiver: member("Tags"), Method: expr.MethodSig{Name: "ContainsKey", Exported: true, NumArgs: 1, Returns: "string"}, Args: key},
		},
		{
			"different name",
			expr.Call{Receiver: member("Tags"), Method: boolMethod("HasKey"), Args: key},
		},
		{
			"no receiver",
			expr.Call{Method: boolMethod("ContainsKey"), Args: key},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := translateItem(t, tt.call)
			require.Error(t, err)
			assert.Nil(t, f)
			assert.True(t, IsUnsupportedExpression(err),
				"structural mismatch must surface as unsupported expression, got: %v", err)
		})
	}
}

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftlab/sift/internal/filter"
	"github.com/siftlab/sift/internal/ir"
)

func TestStartsWith_AnchorsAtStart(t *testing.T) {
	f, err := translateItem(t, call(member("Name"), "StartsWith", constant(ir.String("bo"))))
	require.NoError(t, err)

	re, ok := f.(filter.Regex)
	require.True(t, ok)
	assert.True(t, re.Field.Equal(filter.NewPath("name")))
	assert.Equal(t, "^bo", re.Pattern)
}

func TestStartsWith_EmptyConstantKeepsAnchor(t *testing.T) {
	// The anchor alone is a valid, if vacuous, pattern.
	f, err := translateItem(t, call(member("Name"), "StartsWith", constant(ir.String(""))))
	require.NoError(t, err)

	re := f.(filter.Regex)
	assert.Equal(t, "^", re.Pattern)
}

func TestEndsWith_AnchorsAtEnd(t *testing.T) {
	f, err := translateItem(t, call(member("Name"), "EndsWith", constant(ir.String("lt"))))
	require.NoError(t, err)

	re := f.(filter.Regex)
	assert.Equal(t, "lt$", re.Pattern)
}

func TestStringPredicate_LiteralIsEscaped(t *testing.T) {
	f, err := translateItem(t, call(member("Name"), "StartsWith", constant(ir.String("a.b"))))
	require.NoError(t, err)

	re := f.(filter.Regex)
	assert.Equal(t, `^a\.b`, re.Pattern, "metacharacters in the literal must not act as regex syntax")
}

func TestQuoteRegex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a.b", `a\.b`},
		{"1+1=2", `1\+1=2`},
		{"(x)*[y]?", `\(x\)\*\[y\]\?`},
		{`back\slash`, `back\\slash`},
		{"^start$", `\^start\$`},
		{"{n}|alt", `\{n\}\|alt`},
		{"unicodé π", "unicodé π"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, quoteRegex(tt.in), "input %q", tt.in)
	}
}

func TestStringPredicate_RequiresConstantArgument(t *testing.T) {
	_, err := translateItem(t, call(member("Name"), "StartsWith", member("Qty")))
	require.Error(t, err)
	assert.True(t, IsUnsupportedExpression(err))
}

func TestStringPredicate_RequiresStringSerializedField(t *testing.T) {
	_, err := translateItem(t, call(member("Qty"), "EndsWith", constant(ir.Int64(5))))
	require.Error(t, err)
	assert.True(t, IsUnsupportedExpression(err))
	assert.Contains(t, err.Error(), "Int64Serializer")
}

func TestStringPredicate_UnresolvedReceiver(t *testing.T) {
	_, err := translateItem(t, call(member("Bogus"), "StartsWith", constant(ir.String("x"))))
	require.Error(t, err)
	assert.True(t, IsUnresolvedField(err))
}

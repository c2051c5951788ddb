package translate

import (
	"strings"

	"github.com/siftlab/sift/internal/expr"
	"github.com/siftlab/sift/internal/filter"
	"github.com/siftlab/sift/internal/ir"
	"github.com/siftlab/sift/internal/resolve"
)

// stringPredicateTranslator translates StartsWith and EndsWith on
// string-serialized fields into anchored regex filters with the constant
// escaped, the standard rendering of prefix/suffix predicates in the
// target grammar.
type stringPredicateTranslator struct{}

func (stringPredicateTranslator) Name() string { return "string-predicate" }

func (stringPredicateTranslator) Claims(e expr.Expr) bool {
	call, ok := e.(expr.Call)
	if !ok {
		return false
	}
	m := call.Method
	if m.Name != "StartsWith" && m.Name != "EndsWith" {
		return false
	}
	return !m.Static &&
		m.Exported &&
		m.NumArgs == 1 &&
		m.Returns == expr.TypeBool &&
		call.Receiver != nil &&
		len(call.Args) == 1
}

func (stringPredicateTranslator) Translate(d *Dispatcher, ctx resolve.Context, e expr.Expr) (filter.Filter, error) {
	call := e.(expr.Call)

	fld, err := resolveField(ctx, call.Receiver)
	if err != nil {
		return nil, err
	}

	konst, ok := call.Args[0].(expr.Constant)
	if !ok {
		return nil, newError(ErrCodeUnsupportedExpression, e,
			"%s argument must be a compile-time constant", call.Method.Name)
	}

	encoded, encErr := fld.Serializer.Encode(konst.Value)
	if encErr != nil {
		return nil, newError(ErrCodeUnsupportedExpression, e,
			"cannot serialize %s argument: %s", call.Method.Name, encErr.Error())
	}
	s, ok := encoded.(ir.String)
	if !ok {
		return nil, newError(ErrCodeUnsupportedExpression, e,
			"%s requires a string-serialized field; serializer %s yields %T",
			call.Method.Name, fld.Serializer.TypeName(), encoded)
	}

	var pattern string
	switch call.Method.Name {
	case "StartsWith":
		pattern = "^" + quoteRegex(string(s))
	case "EndsWith":
		pattern = quoteRegex(string(s)) + "$"
	}

	return filter.Regex{Field: fld.Path, Pattern: pattern}, nil
}

// regexSpecials are the metacharacters escaped when a literal string is
// embedded in a filter regex.
const regexSpecials = `\.+*?()[]{}|^$`

// quoteRegex escapes a literal string for embedding in the target
// grammar's regex dialect.
func quoteRegex(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r < 0x80 && strings.ContainsRune(regexSpecials, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

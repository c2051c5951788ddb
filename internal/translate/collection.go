package translate

import (
	"github.com/siftlab/sift/internal/expr"
	"github.com/siftlab/sift/internal/filter"
	"github.com/siftlab/sift/internal/ir"
	"github.com/siftlab/sift/internal/resolve"
	"github.com/siftlab/sift/internal/schema"
)

// membershipTranslator translates constant-set membership tests,
// constants.Contains(x.Field), into In filters. The receiver is the
// constant set; the argument is the field expression.
type membershipTranslator struct{}

func (membershipTranslator) Name() string { return "membership" }

func (membershipTranslator) Claims(e expr.Expr) bool {
	call, ok := e.(expr.Call)
	if !ok || !claimsContainsShape(call) {
		return false
	}
	_, constReceiver := call.Receiver.(expr.Constant)
	return constReceiver
}

func (membershipTranslator) Translate(d *Dispatcher, ctx resolve.Context, e expr.Expr) (filter.Filter, error) {
	call := e.(expr.Call)

	set, ok := call.Receiver.(expr.Constant).Value.(ir.Array)
	if !ok {
		return nil, newError(ErrCodeUnsupportedExpression, e,
			"membership test requires a constant array receiver")
	}

	fld, err := resolveField(ctx, call.Args[0])
	if err != nil {
		return nil, err
	}

	values := make(ir.Array, len(set))
	for i, elem := range set {
		encoded, encErr := fld.Serializer.Encode(elem)
		if encErr != nil {
			return nil, newError(ErrCodeUnsupportedExpression, e,
				"cannot serialize set element %d: %s", i, encErr.Error())
		}
		values[i] = encoded
	}

	return filter.In{Field: fld.Path, Values: values}, nil
}

// containsTranslator translates field.Contains(constant) where the
// receiver resolves to a field. Array-capable fields get the target
// grammar's native array-membership equality; string-serialized fields
// get a substring regex. Anything else is refused.
type containsTranslator struct{}

func (containsTranslator) Name() string { return "contains" }

func (containsTranslator) Claims(e expr.Expr) bool {
	call, ok := e.(expr.Call)
	if !ok || !claimsContainsShape(call) {
		return false
	}
	_, constReceiver := call.Receiver.(expr.Constant)
	return !constReceiver
}

func (containsTranslator) Translate(d *Dispatcher, ctx resolve.Context, e expr.Expr) (filter.Filter, error) {
	call := e.(expr.Call)

	fld, err := resolveField(ctx, call.Receiver)
	if err != nil {
		return nil, err
	}

	konst, ok := call.Args[0].(expr.Constant)
	if !ok {
		return nil, newError(ErrCodeUnsupportedExpression, e,
			"Contains argument must be a compile-time constant")
	}

	if arr, ok := fld.Serializer.(schema.ArrayCapable); ok {
		// {field: value} matches documents whose array field contains
		// the value; no $elemMatch needed for scalar elements.
		encoded, encErr := arr.ElementSerializer().Encode(konst.Value)
		if encErr != nil {
			return nil, newError(ErrCodeUnsupportedExpression, e,
				"cannot serialize element: %s", encErr.Error())
		}
		return filter.Eq{Field: fld.Path, Value: encoded}, nil
	}

	// Not an array: string containment if the field serializes strings.
	encoded, encErr := fld.Serializer.Encode(konst.Value)
	if encErr != nil {
		return nil, newError(ErrCodeUnsupportedExpression, e,
			"Contains requires an array or string field; serializer %s cannot encode the argument: %s",
			fld.Serializer.TypeName(), encErr.Error())
	}
	s, ok := encoded.(ir.String)
	if !ok {
		return nil, newError(ErrCodeUnsupportedExpression, e,
			"Contains requires an array or string field; serializer %s yields %T", fld.Serializer.TypeName(), encoded)
	}
	if len(s) == 0 {
		// An empty substring would render as an empty regex pattern,
		// which the filter grammar forbids.
		return nil, newError(ErrCodeUnsupportedExpression, e,
			"Contains argument must be a non-empty string")
	}
	return filter.Regex{Field: fld.Path, Pattern: quoteRegex(string(s))}, nil
}

// claimsContainsShape is the shared structural guard for Contains calls:
// non-static, exported, boolean-returning, single-argument.
func claimsContainsShape(call expr.Call) bool {
	m := call.Method
	return m.Name == "Contains" &&
		!m.Static &&
		m.Exported &&
		m.NumArgs == 1 &&
		m.Returns == expr.TypeBool &&
		call.Receiver != nil &&
		len(call.Args) == 1
}

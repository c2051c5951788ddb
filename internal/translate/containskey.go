package translate

import (
	"github.com/siftlab/sift/internal/expr"
	"github.com/siftlab/sift/internal/filter"
	"github.com/siftlab/sift/internal/ir"
	"github.com/siftlab/sift/internal/resolve"
	"github.com/siftlab/sift/internal/schema"
)

// containsKeyTranslator translates key-membership tests on mapping-typed
// fields into key-existence filters.
//
// The emitted filter's shape is representation-dependent because the
// physical document layout differs: existence-of-key has a natural
// subfield-exists meaning only when the mapping is literally encoded as
// a document keyed by the mapping's own keys. Under the array
// representations the same predicate would need an element-wise
// membership test this translator does not model, so it refuses rather
// than emit a filter with the wrong meaning.
type containsKeyTranslator struct{}

func (containsKeyTranslator) Name() string { return "contains-key" }

// Claims recognizes the call shape purely from the method signature:
// a non-static, exported, boolean-returning, single-argument ContainsKey
// invocation. The guard is independent of the receiver's concrete
// mapping implementation; that check happens in Translate.
func (containsKeyTranslator) Claims(e expr.Expr) bool {
	call, ok := e.(expr.Call)
	if !ok {
		return false
	}
	m := call.Method
	return m.Name == "ContainsKey" &&
		!m.Static &&
		m.Exported &&
		m.NumArgs == 1 &&
		m.Returns == expr.TypeBool &&
		call.Receiver != nil &&
		len(call.Args) == 1
}

func (containsKeyTranslator) Translate(d *Dispatcher, ctx resolve.Context, e expr.Expr) (filter.Filter, error) {
	call := e.(expr.Call)

	fld, err := resolveField(ctx, call.Receiver)
	if err != nil {
		return nil, err
	}

	mapping, ok := fld.Serializer.(schema.MappingCapable)
	if !ok {
		return nil, newError(ErrCodeNotADictionary, e,
			"serializer %s does not provide key/value mapping semantics", fld.Serializer.TypeName())
	}

	if rep := mapping.Representation(); rep != schema.RepresentationDocument {
		return nil, newError(ErrCodeUnsupportedRepresentation, e,
			"ContainsKey requires the Document representation; a mapping encoded as %s is not key-addressable", rep)
	}

	konst, ok := call.Args[0].(expr.Constant)
	if !ok {
		return nil, newError(ErrCodeInvalidKey, e,
			"key argument must be a compile-time constant")
	}

	encoded, encErr := mapping.KeySerializer().Encode(konst.Value)
	if encErr != nil {
		return nil, newError(ErrCodeInvalidKey, e,
			"cannot serialize key: %s", encErr.Error())
	}

	name, ok := encoded.(ir.String)
	if !ok {
		return nil, newError(ErrCodeInvalidKey, e,
			"key serializer %s yields %T, not a string scalar; the key cannot name a subfield", mapping.KeySerializer().TypeName(), encoded)
	}

	return filter.Exists{Field: fld.Path.Child(string(name)), Exists: true}, nil
}

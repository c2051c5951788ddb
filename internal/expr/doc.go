// Package expr defines the source language of the filter translation
// engine: an immutable tree of boolean-valued predicate expressions over
// a document model, the shape an embedded query DSL produces.
//
// Node kinds cover member access, keyed/indexed access, method calls,
// constants, binary and unary operators, and lambda parameter references.
// The Expr interface is sealed (marker method pattern) so the dispatcher
// can type-switch exhaustively over all recognized shapes.
//
// Method calls carry a structural MethodSig (name, arity, staticness,
// exportedness, return type name). Translators claim calls from the
// signature alone; whether the claim then succeeds depends on the
// receiver's resolved serializer, which is not this package's concern.
//
// Trees are never mutated after construction and are safe to translate
// concurrently from multiple goroutines.
package expr

// Package ir defines the literal value types shared by the filter
// translation pipeline.
//
// A Value is the wire-level form of a constant: what a serializer emits
// for a model-level literal, and what appears as an operand inside a
// filter document. The set of types is sealed (marker method pattern) so
// consumers can type-switch exhaustively:
//
//	switch v := val.(type) {
//	case ir.String:
//	    // ...
//	case ir.Document:
//	    // ...
//	}
//
// Documents are ordered key/value sequences, matching the target
// grammar's document model, where entry order is part of the document's
// identity. MarshalCanonical renders any Value to deterministic bytes
// (NFC-normalized strings, no HTML escaping, shortest-form doubles) for
// golden tests and diagnostics.
//
// The package is pure data: no I/O, no mutation of shared state. All
// Values are safe to share across goroutines once constructed.
package ir

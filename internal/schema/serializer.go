package schema

import "github.com/siftlab/sift/internal/ir"

// Serializer is the opaque handle the translation engine holds for a
// resolved field. It exposes exactly two things: a concrete kind name
// for diagnostics, and the mapping from model-level constants to their
// wire-level form.
//
// The engine never inspects concrete serializer implementations beyond
// the capability interfaces below. Serializers are immutable after model
// configuration and safe for concurrent use.
type Serializer interface {
	// TypeName names the serializer's concrete kind. Failure messages
	// include it so a developer can see which serializer declined.
	TypeName() string

	// Encode maps a model-level constant to its wire-level Value.
	// Encode fails when the constant is not of the serialized type.
	Encode(v ir.Value) (ir.Value, error)
}

// MappingCapable is the capability interface of serializers with
// key/value mapping semantics. Translators that need mapping behavior
// query for this capability rather than inspecting concrete types.
type MappingCapable interface {
	Serializer

	// Representation returns the field's on-wire encoding tag.
	Representation() Representation

	// KeySerializer serializes the mapping's keys.
	KeySerializer() Serializer

	// ValueSerializer serializes the mapping's values.
	ValueSerializer() Serializer
}

// DocumentCapable is the capability interface of serializers for
// document-shaped (struct) values: those whose members resolve to named
// subfields. The field resolver walks member accesses through it.
type DocumentCapable interface {
	Serializer

	// Field returns the field info for a model member name, or false
	// when the member is not part of the model.
	Field(name string) (FieldInfo, bool)
}

// ArrayCapable is the capability interface of serializers for
// array-shaped values, exposing the element serializer. The
// collection-contains translator requires it.
type ArrayCapable interface {
	Serializer

	// ElementSerializer serializes the array's elements.
	ElementSerializer() Serializer
}

// FieldInfo binds a model member to its wire name and serializer.
type FieldInfo struct {
	// Key is the member's element name in the encoded document. It may
	// differ from the model member name.
	Key string

	// Serializer governs the member's value encoding.
	Serializer Serializer
}

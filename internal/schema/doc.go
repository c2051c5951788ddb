// Package schema defines the serializer and representation metadata the
// translation engine reads while resolving fields.
//
// A Serializer is an opaque handle: a concrete kind name plus the
// mapping from model-level constants to wire-level values. What the
// engine may additionally do with a field is expressed as capability
// interfaces a serializer either implements or not:
//
//   - MappingCapable: key/value mapping semantics, with a Representation
//     tag and key/value serializers
//   - DocumentCapable: named-member lookup for document-shaped types
//   - ArrayCapable: element serializer for ordered collections
//
// Translators query capabilities and never inspect concrete types; error
// messages still name the concrete kind (TypeName) for diagnosability.
//
// The Representation tag is the load-bearing piece of metadata: it fixes
// the legal shape of filters over a mapping field. A mapping encoded as
// a document is key-addressable; one encoded as an array of pairs is
// not, and translators must refuse rather than emit a filter with the
// wrong meaning.
//
// All metadata is declared once at model-definition time via explicit,
// statically-typed registries (NewStruct), is immutable afterwards, and
// is shared by reference across concurrent translations.
package schema

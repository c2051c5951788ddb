package schema

import "fmt"

// Representation enumerates the on-wire encoding strategies for a
// mapping-typed field. The representation is fixed when the model is
// configured and never changes for the lifetime of the serializer; all
// translations of the field share it by reference.
type Representation int

const (
	// RepresentationDocument encodes the mapping as a document keyed by
	// the mapping's own keys: {"red": v1, "blue": v2}. Keys must
	// serialize to string scalars.
	RepresentationDocument Representation = iota

	// RepresentationArrayOfDocuments encodes the mapping as an array of
	// {"k": key, "v": value} documents.
	RepresentationArrayOfDocuments

	// RepresentationArrayOfArrays encodes the mapping as an array of
	// two-element [key, value] arrays.
	RepresentationArrayOfArrays
)

// String returns the representation's configuration-time name.
func (r Representation) String() string {
	switch r {
	case RepresentationDocument:
		return "Document"
	case RepresentationArrayOfDocuments:
		return "ArrayOfDocuments"
	case RepresentationArrayOfArrays:
		return "ArrayOfArrays"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// ParseRepresentation maps a configuration-time name to its tag.
// Used by the CUE model loader and the conformance case loader.
func ParseRepresentation(name string) (Representation, error) {
	switch name {
	case "Document":
		return RepresentationDocument, nil
	case "ArrayOfDocuments":
		return RepresentationArrayOfDocuments, nil
	case "ArrayOfArrays":
		return RepresentationArrayOfArrays, nil
	default:
		return 0, fmt.Errorf("unknown representation %q: must be one of Document, ArrayOfDocuments, ArrayOfArrays", name)
	}
}

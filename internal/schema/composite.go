package schema

import (
	"fmt"

	"github.com/siftlab/sift/internal/ir"
)

// MapSerializer serializes a key/value mapping field under one of the
// three mapping representations. It is the canonical MappingCapable
// implementation.
type MapSerializer struct {
	Rep    Representation
	Keys   Serializer
	Values Serializer
}

func (s MapSerializer) TypeName() string {
	return fmt.Sprintf("MapSerializer<%s,%s>", s.Keys.TypeName(), s.Values.TypeName())
}

func (s MapSerializer) Representation() Representation { return s.Rep }
func (s MapSerializer) KeySerializer() Serializer      { return s.Keys }
func (s MapSerializer) ValueSerializer() Serializer    { return s.Values }

// Encode renders a mapping constant in the configured representation.
// The model-level constant is a Document (entry order preserved).
//
// Document representation requires every encoded key to be a string
// scalar; the array representations carry keys of any encodable kind.
func (s MapSerializer) Encode(v ir.Value) (ir.Value, error) {
	doc, ok := v.(ir.Document)
	if !ok {
		return nil, encodeTypeError(s, v, "mapping")
	}

	switch s.Rep {
	case RepresentationDocument:
		out := make(ir.Document, 0, len(doc))
		for _, e := range doc {
			key, err := s.encodeKey(ir.String(e.Key))
			if err != nil {
				return nil, err
			}
			ks, ok := key.(ir.String)
			if !ok {
				return nil, fmt.Errorf("%s: Document representation requires string keys, got %T", s.TypeName(), key)
			}
			val, err := s.Values.Encode(e.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: value for key %q: %w", s.TypeName(), e.Key, err)
			}
			out = append(out, ir.Entry{Key: string(ks), Value: val})
		}
		return out, nil

	case RepresentationArrayOfDocuments:
		out := make(ir.Array, 0, len(doc))
		for _, e := range doc {
			key, err := s.encodeKey(ir.String(e.Key))
			if err != nil {
				return nil, err
			}
			val, err := s.Values.Encode(e.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: value for key %q: %w", s.TypeName(), e.Key, err)
			}
			out = append(out, ir.NewDocument(ir.E("k", key), ir.E("v", val)))
		}
		return out, nil

	case RepresentationArrayOfArrays:
		out := make(ir.Array, 0, len(doc))
		for _, e := range doc {
			key, err := s.encodeKey(ir.String(e.Key))
			if err != nil {
				return nil, err
			}
			val, err := s.Values.Encode(e.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: value for key %q: %w", s.TypeName(), e.Key, err)
			}
			out = append(out, ir.Array{key, val})
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%s: unknown representation %s", s.TypeName(), s.Rep)
	}
}

func (s MapSerializer) encodeKey(k ir.Value) (ir.Value, error) {
	key, err := s.Keys.Encode(k)
	if err != nil {
		return nil, fmt.Errorf("%s: key: %w", s.TypeName(), err)
	}
	return key, nil
}

// ArraySerializer serializes an ordered collection field. It is the
// canonical ArrayCapable implementation.
type ArraySerializer struct {
	Elements Serializer
}

func (s ArraySerializer) TypeName() string {
	return fmt.Sprintf("ArraySerializer<%s>", s.Elements.TypeName())
}

func (s ArraySerializer) ElementSerializer() Serializer { return s.Elements }

func (s ArraySerializer) Encode(v ir.Value) (ir.Value, error) {
	arr, ok := v.(ir.Array)
	if !ok {
		return nil, encodeTypeError(s, v, "array")
	}
	out := make(ir.Array, len(arr))
	for i, elem := range arr {
		ev, err := s.Elements.Encode(elem)
		if err != nil {
			return nil, fmt.Errorf("%s: element %d: %w", s.TypeName(), i, err)
		}
		out[i] = ev
	}
	return out, nil
}

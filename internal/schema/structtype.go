package schema

import (
	"fmt"

	"github.com/siftlab/sift/internal/ir"
)

// FieldDef declares one member of a document model at configuration
// time: the model member name, its wire element name, and the serializer
// governing its values.
type FieldDef struct {
	Member     string
	Key        string
	Serializer Serializer
}

// StructSerializer serializes a document-shaped model type. It is the
// canonical DocumentCapable implementation and the root serializer of a
// translation: the registry of members is explicit and statically typed,
// built once at model-definition time, never looked up by name from
// ambient state.
type StructSerializer struct {
	name   string
	order  []string
	fields map[string]FieldInfo
}

// NewStruct builds a StructSerializer from explicit field definitions.
// Duplicate member names and nil serializers are configuration errors.
func NewStruct(name string, fields ...FieldDef) (*StructSerializer, error) {
	s := &StructSerializer{
		name:   name,
		order:  make([]string, 0, len(fields)),
		fields: make(map[string]FieldInfo, len(fields)),
	}
	for _, f := range fields {
		if f.Member == "" {
			return nil, fmt.Errorf("struct %s: field with empty member name", name)
		}
		if f.Serializer == nil {
			return nil, fmt.Errorf("struct %s: field %s has no serializer", name, f.Member)
		}
		if _, dup := s.fields[f.Member]; dup {
			return nil, fmt.Errorf("struct %s: duplicate field %s", name, f.Member)
		}
		key := f.Key
		if key == "" {
			key = f.Member
		}
		s.order = append(s.order, f.Member)
		s.fields[f.Member] = FieldInfo{Key: key, Serializer: f.Serializer}
	}
	return s, nil
}

// MustStruct is NewStruct that panics on configuration errors. Intended
// for statically declared models and tests.
func MustStruct(name string, fields ...FieldDef) *StructSerializer {
	s, err := NewStruct(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *StructSerializer) TypeName() string {
	return fmt.Sprintf("StructSerializer<%s>", s.name)
}

// Name returns the model type name.
func (s *StructSerializer) Name() string { return s.name }

// Field returns the field info for a model member name.
func (s *StructSerializer) Field(name string) (FieldInfo, bool) {
	fi, ok := s.fields[name]
	return fi, ok
}

// Members returns member names in declaration order.
func (s *StructSerializer) Members() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Encode renders a member-keyed document constant as its wire document,
// fields in declaration order.
func (s *StructSerializer) Encode(v ir.Value) (ir.Value, error) {
	doc, ok := v.(ir.Document)
	if !ok {
		return nil, encodeTypeError(s, v, "document")
	}

	out := make(ir.Document, 0, len(doc))
	for _, member := range s.order {
		mv, present := doc.Get(member)
		if !present {
			continue
		}
		fi := s.fields[member]
		ev, err := fi.Serializer.Encode(mv)
		if err != nil {
			return nil, fmt.Errorf("%s: field %s: %w", s.TypeName(), member, err)
		}
		out = append(out, ir.Entry{Key: fi.Key, Value: ev})
	}

	for _, e := range doc {
		if _, known := s.fields[e.Key]; !known {
			return nil, fmt.Errorf("%s: unknown member %q", s.TypeName(), e.Key)
		}
	}
	return out, nil
}

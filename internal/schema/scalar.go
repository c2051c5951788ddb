package schema

import (
	"fmt"

	"github.com/siftlab/sift/internal/ir"
)

// StringSerializer encodes string constants as wire strings.
type StringSerializer struct{}

func (StringSerializer) TypeName() string { return "StringSerializer" }

func (s StringSerializer) Encode(v ir.Value) (ir.Value, error) {
	if sv, ok := v.(ir.String); ok {
		return sv, nil
	}
	return nil, encodeTypeError(s, v, "string")
}

// Int32Serializer encodes 32-bit integer constants.
// Int64 constants in 32-bit range are narrowed.
type Int32Serializer struct{}

func (Int32Serializer) TypeName() string { return "Int32Serializer" }

func (s Int32Serializer) Encode(v ir.Value) (ir.Value, error) {
	switch nv := v.(type) {
	case ir.Int32:
		return nv, nil
	case ir.Int64:
		if int64(int32(nv)) != int64(nv) {
			return nil, fmt.Errorf("%s: value %d overflows int32", s.TypeName(), int64(nv))
		}
		return ir.Int32(nv), nil
	default:
		return nil, encodeTypeError(s, v, "int32")
	}
}

// Int64Serializer encodes 64-bit integer constants.
type Int64Serializer struct{}

func (Int64Serializer) TypeName() string { return "Int64Serializer" }

func (s Int64Serializer) Encode(v ir.Value) (ir.Value, error) {
	switch nv := v.(type) {
	case ir.Int64:
		return nv, nil
	case ir.Int32:
		return ir.Int64(nv), nil
	default:
		return nil, encodeTypeError(s, v, "int64")
	}
}

// DoubleSerializer encodes floating point constants. Integer constants
// widen to double, matching the model type, not the literal's spelling.
type DoubleSerializer struct{}

func (DoubleSerializer) TypeName() string { return "DoubleSerializer" }

func (s DoubleSerializer) Encode(v ir.Value) (ir.Value, error) {
	switch nv := v.(type) {
	case ir.Double:
		return nv, nil
	case ir.Int64:
		return ir.Double(nv), nil
	case ir.Int32:
		return ir.Double(nv), nil
	default:
		return nil, encodeTypeError(s, v, "double")
	}
}

// BoolSerializer encodes boolean constants.
type BoolSerializer struct{}

func (BoolSerializer) TypeName() string { return "BoolSerializer" }

func (s BoolSerializer) Encode(v ir.Value) (ir.Value, error) {
	if bv, ok := v.(ir.Bool); ok {
		return bv, nil
	}
	return nil, encodeTypeError(s, v, "bool")
}

// EnumStringSerializer encodes integer-valued enum constants as their
// configured string names. It is the standard example of a serializer
// whose wire form differs in kind from its model form: an enum-keyed
// mapping under Document representation is key-addressable because its
// keys serialize to strings.
type EnumStringSerializer struct {
	// Enum names the enum type for diagnostics.
	Enum string

	// Names maps enum ordinals to wire names.
	Names map[int64]string
}

func (s EnumStringSerializer) TypeName() string {
	return fmt.Sprintf("EnumStringSerializer<%s>", s.Enum)
}

func (s EnumStringSerializer) Encode(v ir.Value) (ir.Value, error) {
	var ordinal int64
	switch nv := v.(type) {
	case ir.Int64:
		ordinal = int64(nv)
	case ir.Int32:
		ordinal = int64(nv)
	case ir.String:
		// Already a name; pass through if it is a known member.
		for _, name := range s.Names {
			if name == string(nv) {
				return nv, nil
			}
		}
		return nil, fmt.Errorf("%s: %q is not a member of %s", s.TypeName(), string(nv), s.Enum)
	default:
		return nil, encodeTypeError(s, v, "enum ordinal")
	}

	name, ok := s.Names[ordinal]
	if !ok {
		return nil, fmt.Errorf("%s: ordinal %d is not a member of %s", s.TypeName(), ordinal, s.Enum)
	}
	return ir.String(name), nil
}

func encodeTypeError(s Serializer, v ir.Value, want string) error {
	return fmt.Errorf("%s: cannot encode %T as %s", s.TypeName(), v, want)
}

package conformance

import (
	"fmt"

	"github.com/siftlab/sift/internal/schema"
)

// BuildModel compiles a model declaration into a struct serializer.
func BuildModel(m ModelSpec) (*schema.StructSerializer, error) {
	defs := make([]schema.FieldDef, 0, len(m.Fields))
	for i, f := range m.Fields {
		ser, err := buildSerializer(&f)
		if err != nil {
			return nil, fmt.Errorf("model %s, field %d (%s): %w", m.Name, i, f.Member, err)
		}
		defs = append(defs, schema.FieldDef{
			Member:     f.Member,
			Key:        f.Key,
			Serializer: ser,
		})
	}
	return schema.NewStruct(m.Name, defs...)
}

// buildSerializer compiles a field declaration into its serializer.
func buildSerializer(f *FieldSpec) (schema.Serializer, error) {
	switch f.Type {
	case "string":
		return schema.StringSerializer{}, nil
	case "int32":
		return schema.Int32Serializer{}, nil
	case "int64":
		return schema.Int64Serializer{}, nil
	case "double":
		return schema.DoubleSerializer{}, nil
	case "bool":
		return schema.BoolSerializer{}, nil
	case "enum":
		if f.Enum == "" {
			return nil, fmt.Errorf("enum field requires an enum name")
		}
		if len(f.Names) == 0 {
			return nil, fmt.Errorf("enum field requires a names table")
		}
		return schema.EnumStringSerializer{Enum: f.Enum, Names: f.Names}, nil
	case "map":
		rep, err := schema.ParseRepresentation(f.Representation)
		if err != nil {
			return nil, err
		}
		if f.Keys == nil || f.Values == nil {
			return nil, fmt.Errorf("map field requires keys and values")
		}
		keys, err := buildSerializer(f.Keys)
		if err != nil {
			return nil, fmt.Errorf("keys: %w", err)
		}
		values, err := buildSerializer(f.Values)
		if err != nil {
			return nil, fmt.Errorf("values: %w", err)
		}
		return schema.MapSerializer{Rep: rep, Keys: keys, Values: values}, nil
	case "array":
		if f.Elements == nil {
			return nil, fmt.Errorf("array field requires elements")
		}
		elems, err := buildSerializer(f.Elements)
		if err != nil {
			return nil, fmt.Errorf("elements: %w", err)
		}
		return schema.ArraySerializer{Elements: elems}, nil
	default:
		return nil, fmt.Errorf("unknown field type %q", f.Type)
	}
}

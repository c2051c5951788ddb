package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftlab/sift/internal/ir"
)

func stringMap(rep Representation) MapSerializer {
	return MapSerializer{Rep: rep, Keys: StringSerializer{}, Values: StringSerializer{}}
}

func TestMapSerializer_Capability(t *testing.T) {
	ser := stringMap(RepresentationDocument)

	// The engine consumes MapSerializer exclusively through the
	// capability interface.
	var mapping MappingCapable = ser
	assert.Equal(t, RepresentationDocument, mapping.Representation())
	assert.Equal(t, "StringSerializer", mapping.KeySerializer().TypeName())
	assert.Equal(t, "StringSerializer", mapping.ValueSerializer().TypeName())
}

func TestMapSerializer_EncodeDocumentRepresentation(t *testing.T) {
	ser := stringMap(RepresentationDocument)
	in := ir.NewDocument(ir.E("red", ir.String("x")), ir.E("blue", ir.String("y")))

	v, err := ser.Encode(in)
	require.NoError(t, err)
	assert.True(t, ir.Equal(in, v), "document representation is the identity for string maps")
}

func TestMapSerializer_EncodeArrayOfDocuments(t *testing.T) {
	ser := stringMap(RepresentationArrayOfDocuments)
	in := ir.NewDocument(ir.E("red", ir.String("x")))

	v, err := ser.Encode(in)
	require.NoError(t, err)

	expected := ir.Array{
		ir.NewDocument(ir.E("k", ir.String("red")), ir.E("v", ir.String("x"))),
	}
	assert.True(t, ir.Equal(expected, v))
}

func TestMapSerializer_EncodeArrayOfArrays(t *testing.T) {
	ser := stringMap(RepresentationArrayOfArrays)
	in := ir.NewDocument(ir.E("red", ir.String("x")))

	v, err := ser.Encode(in)
	require.NoError(t, err)

	expected := ir.Array{ir.Array{ir.String("red"), ir.String("x")}}
	assert.True(t, ir.Equal(expected, v))
}

func TestMapSerializer_DocumentRepresentationRequiresStringKeys(t *testing.T) {
	// Int keys cannot name subfields under Document representation.
	ser := MapSerializer{Rep: RepresentationDocument, Keys: Int64Serializer{}, Values: StringSerializer{}}
	in := ir.NewDocument(ir.E("1", ir.String("x")))

	_, err := ser.Encode(in)
	assert.Error(t, err)
}

func TestMapSerializer_EncodeRejectsNonMapping(t *testing.T) {
	ser := stringMap(RepresentationDocument)
	_, err := ser.Encode(ir.String("not a mapping"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ser.TypeName())
}

func TestArraySerializer(t *testing.T) {
	ser := ArraySerializer{Elements: StringSerializer{}}

	var arr ArrayCapable = ser
	assert.Equal(t, "StringSerializer", arr.ElementSerializer().TypeName())

	v, err := ser.Encode(ir.Array{ir.String("a"), ir.String("b")})
	require.NoError(t, err)
	assert.True(t, ir.Equal(ir.Array{ir.String("a"), ir.String("b")}, v))

	_, err = ser.Encode(ir.Array{ir.Int64(1)})
	assert.Error(t, err, "element type mismatch surfaces")

	_, err = ser.Encode(ir.String("not an array"))
	assert.Error(t, err)
}

func TestRepresentation_String(t *testing.T) {
	assert.Equal(t, "Document", RepresentationDocument.String())
	assert.Equal(t, "ArrayOfDocuments", RepresentationArrayOfDocuments.String())
	assert.Equal(t, "ArrayOfArrays", RepresentationArrayOfArrays.String())
}

func TestParseRepresentation(t *testing.T) {
	for _, name := range []string{"Document", "ArrayOfDocuments", "ArrayOfArrays"} {
		rep, err := ParseRepresentation(name)
		require.NoError(t, err)
		assert.Equal(t, name, rep.String())
	}

	_, err := ParseRepresentation("Blob")
	assert.Error(t, err)
}

// Package g3d implements the G3D geometry-attribute format: a BFAST
// container whose first buffer is a free-form metadata string and whose
// remaining buffers each hold one typed attribute, named by a structured
// descriptor string. See the g3d.h original at vimaec/g3d for the format
// this package is a Go port of.
package g3d

import (
	"strconv"
	"strings"
)

// Association identifies what geometric element an attribute's values are
// attached to.
type Association int

const (
	AssocVertex Association = iota
	AssocFace
	AssocCorner
	AssocEdge
	AssocGroup
	AssocAll
	AssocNone
)

var associationNames = map[Association]string{
	AssocVertex: "vertex",
	AssocFace:   "face",
	AssocCorner: "corner",
	AssocEdge:   "edge",
	AssocGroup:  "group",
	AssocAll:    "all",
	AssocNone:   "none",
}

var associationsByName = reverseAssociations(associationNames)

func reverseAssociations(m map[Association]string) map[string]Association {
	r := make(map[string]Association, len(m))
	for k, v := range m {
		r[v] = k
	}
	return r
}

func (a Association) String() string {
	if s, ok := associationNames[a]; ok {
		return s
	}
	return "unknown"
}

func associationFromString(s string) (Association, bool) {
	a, ok := associationsByName[s]
	return a, ok
}

// DataType identifies the primitive numeric type of one attribute element.
type DataType int

const (
	DataTypeInt8 DataType = iota
	DataTypeInt16
	DataTypeInt32
	DataTypeInt64
	DataTypeInt128
	DataTypeFloat16
	DataTypeFloat32
	DataTypeFloat64
	DataTypeFloat128
)

var dataTypeNames = map[DataType]string{
	DataTypeInt8:     "int8",
	DataTypeInt16:    "int16",
	DataTypeInt32:    "int32",
	DataTypeInt64:    "int64",
	DataTypeInt128:   "int128",
	DataTypeFloat16:  "float16",
	DataTypeFloat32:  "float32",
	DataTypeFloat64:  "float64",
	DataTypeFloat128: "float128",
}

var dataTypeSizes = map[DataType]int{
	DataTypeInt8:     1,
	DataTypeInt16:    2,
	DataTypeInt32:    4,
	DataTypeInt64:    8,
	DataTypeInt128:   16,
	DataTypeFloat16:  2,
	DataTypeFloat32:  4,
	DataTypeFloat64:  8,
	DataTypeFloat128: 16,
}

var dataTypesByName = reverseDataTypes(dataTypeNames)

func reverseDataTypes(m map[DataType]string) map[string]DataType {
	r := make(map[string]DataType, len(m))
	for k, v := range m {
		r[v] = k
	}
	return r
}

func (d DataType) String() string {
	if s, ok := dataTypeNames[d]; ok {
		return s
	}
	return "unknown"
}

// Size returns the byte size of one value of this data type.
func (d DataType) Size() int {
	return dataTypeSizes[d]
}

func dataTypeFromString(s string) (DataType, bool) {
	d, ok := dataTypesByName[s]
	return d, ok
}

// Descriptor identifies a G3D attribute: what geometric element it's
// attached to, its semantic role, a disambiguating index, and its element
// layout. Its string form is the BFAST buffer name the attribute is stored
// under (spec §3.2, §6.2).
type Descriptor struct {
	Association Association
	// Semantic is a free-form label (e.g. "position", "normal", "uv");
	// unlike Association and DataType it is not drawn from a fixed
	// lexicon (spec §9's Open Question resolution favors the later,
	// free-form revision over a closed Semantic enum).
	Semantic  string
	Index     int
	DataType  DataType
	DataArity int
}

const descriptorPrefix = "g3d"

// String formats the descriptor back into its six-token colon-delimited
// wire form. It is the exact inverse of ParseDescriptor.
func (d Descriptor) String() string {
	return strings.Join([]string{
		descriptorPrefix,
		d.Association.String(),
		d.Semantic,
		strconv.Itoa(d.Index),
		d.DataType.String(),
		strconv.Itoa(d.DataArity),
	}, ":")
}

// ElementSize is the byte size of one element: DataType.Size() * DataArity.
func (d Descriptor) ElementSize() int {
	return d.DataType.Size() * d.DataArity
}

// ParseDescriptor parses a BFAST buffer name as a G3D descriptor string.
// The grammar is strict: exactly six colon-delimited tokens, the first
// literally "g3d" (spec §3.2, §6.2).
func ParseDescriptor(s string) (Descriptor, error) {
	tokens := strings.Split(s, ":")
	if len(tokens) < 6 {
		return Descriptor{}, newErr(KindInsufficientTokens, s, "")
	}
	if len(tokens) > 6 {
		return Descriptor{}, newErr(KindTooManyTokens, s, "")
	}

	if tokens[0] != descriptorPrefix {
		return Descriptor{}, newErr(KindExpectedG3dPrefix, s, tokens[0])
	}

	assoc, ok := associationFromString(tokens[1])
	if !ok {
		return Descriptor{}, newErr(KindUnknownAssociation, s, tokens[1])
	}

	semantic := tokens[2]

	index, err := strconv.Atoi(tokens[3])
	if err != nil {
		return Descriptor{}, newErr(KindMalformedInteger, s, tokens[3])
	}

	dt, ok := dataTypeFromString(tokens[4])
	if !ok {
		return Descriptor{}, newErr(KindUnknownDataType, s, tokens[4])
	}

	arity, err := strconv.Atoi(tokens[5])
	if err != nil {
		return Descriptor{}, newErr(KindMalformedInteger, s, tokens[5])
	}

	return Descriptor{
		Association: assoc,
		Semantic:     semantic,
		Index:        index,
		DataType:     dt,
		DataArity:    arity,
	}, nil
}

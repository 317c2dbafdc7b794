package vim

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/vimaec/vim/bfast"
)

// propertyRecordSize is the fixed byte size of one SerializableProperty:
// entity_id, name_string_idx, value_string_idx, each i32 (spec §3.3, §4.3).
const propertyRecordSize = 3 * 4

// Property links an entity to a name/value pair, both string-pool indices.
type Property struct {
	EntityID   int32
	NameIndex  int32
	ValueIndex int32
}

// EntityTable is one decoded entity table: the literal "properties"
// column plus arbitrarily many named numeric/index/string columns (spec
// §3.3, §4.3, §6.4).
type EntityTable struct {
	Name           string
	Properties     []Property
	NumericColumns map[string][]float64
	IndexColumns   map[string][]int32
	StringColumns  map[string][]int32
}

func newEntityTable(name string) EntityTable {
	return EntityTable{
		Name:           name,
		NumericColumns: map[string][]float64{},
		IndexColumns:   map[string][]int32{},
		StringColumns:  map[string][]int32{},
	}
}

func decodeProperties(data []byte) []Property {
	n := len(data) / propertyRecordSize
	props := make([]Property, n)
	for i := 0; i < n; i++ {
		rec := data[i*propertyRecordSize : (i+1)*propertyRecordSize]
		props[i] = Property{
			EntityID:   int32(binary.LittleEndian.Uint32(rec[0:4])),
			NameIndex:  int32(binary.LittleEndian.Uint32(rec[4:8])),
			ValueIndex: int32(binary.LittleEndian.Uint32(rec[8:12])),
		}
	}
	return props
}

func decodeFloat64Column(data []byte) []float64 {
	n := len(data) / 8
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint64(data[i*8 : (i+1)*8])
		out[i] = math.Float64frombits(bits)
	}
	return out
}

func decodeInt32Column(data []byte) []int32 {
	n := len(data) / 4
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		out[i] = int32(binary.LittleEndian.Uint32(data[i*4 : (i+1)*4]))
	}
	return out
}

// decodeEntityTable unpacks one entity table's nested BFAST and dispatches
// each inner buffer by its name pattern (spec §4.3, §6.4): the literal
// "properties", or "<type>:<column>" where type is one of numeric/index/
// string.
func decodeEntityTable(name string, data []byte) (EntityTable, error) {
	table := newEntityTable(name)

	inner, err := bfast.Unpack(data)
	if err != nil {
		return EntityTable{}, err
	}

	for _, buf := range inner.Buffers {
		if buf.Name == "properties" {
			table.Properties = decodeProperties(buf.Data)
			continue
		}

		typ, col, ok := strings.Cut(buf.Name, ":")
		if !ok {
			return EntityTable{}, fmt.Errorf("entity table %q: malformed column name %q", name, buf.Name)
		}
		switch typ {
		case "numeric":
			table.NumericColumns[col] = decodeFloat64Column(buf.Data)
		case "index":
			table.IndexColumns[col] = decodeInt32Column(buf.Data)
		case "string":
			table.StringColumns[col] = decodeInt32Column(buf.Data)
		default:
			return EntityTable{}, fmt.Errorf("entity table %q: unknown column type %q", name, typ)
		}
	}

	return table, nil
}

// decodeEntities unpacks the "entities" section's nested BFAST, decoding
// each inner buffer as one entity table, in order.
func decodeEntities(data []byte) (map[string]EntityTable, []string, error) {
	outer, err := bfast.Unpack(data)
	if err != nil {
		return nil, nil, err
	}

	tables := make(map[string]EntityTable, len(outer.Buffers))
	order := make([]string, 0, len(outer.Buffers))
	for _, buf := range outer.Buffers {
		table, err := decodeEntityTable(buf.Name, buf.Data)
		if err != nil {
			return nil, nil, err
		}
		tables[buf.Name] = table
		order = append(order, buf.Name)
	}
	return tables, order, nil
}

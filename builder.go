package vim

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/vimaec/vim/bfast"
	"github.com/vimaec/vim/g3d"
	"github.com/vimaec/vim/internal/intern"
)

// Builder assembles a new VIM scene in memory: header fields, nodes,
// geometry, assets, and entity tables, deduplicating every string that
// goes into the shared string pool via internal/intern. It mirrors
// bfast.Bfast's incremental Add-then-Pack shape, generalized to VIM's
// multi-section, recursively-nested container (spec §3.3, §4.3).
type Builder struct {
	header map[string]string
	nodes  []Node
	geom   *g3d.G3d
	assets []bfast.Buffer
	tables []entityTableBuilder

	strings *intern.Interner
}

type entityTableBuilder struct {
	name       string
	properties []Property
	numeric    map[string][]float64
	index      map[string][]int32
	str        map[string][]int32
}

// NewBuilder creates an empty scene builder.
func NewBuilder() *Builder {
	return &Builder{
		header:  map[string]string{},
		strings: intern.New(),
	}
}

// SetHeaderField sets a key/value pair the emitted header will contain.
// The "vim" version key must be set explicitly by the caller.
func (b *Builder) SetHeaderField(key, value string) *Builder {
	b.header[key] = value
	return b
}

// AddNode appends one node record.
func (b *Builder) AddNode(n Node) *Builder {
	b.nodes = append(b.nodes, n)
	return b
}

// SetGeometry attaches the scene's geometry, already assembled as a G3d.
func (b *Builder) SetGeometry(g *g3d.G3d) *Builder {
	b.geom = g
	return b
}

// AddAsset adds one opaque named asset blob.
func (b *Builder) AddAsset(name string, data []byte) *Builder {
	b.assets = append(b.assets, bfast.Buffer{Name: name, Data: data})
	return b
}

// Intern deduplicates s into the scene's shared string pool, returning its
// stable 0-based index.
func (b *Builder) Intern(s string) int {
	return b.strings.Intern(s)
}

// EntityTable returns a handle for building the named entity table,
// creating it on first use. Column values are given as already-interned
// string indices for "string" columns.
func (b *Builder) EntityTable(name string) *EntityTableHandle {
	for i := range b.tables {
		if b.tables[i].name == name {
			return &EntityTableHandle{builder: b, index: i}
		}
	}
	b.tables = append(b.tables, entityTableBuilder{
		name:    name,
		numeric: map[string][]float64{},
		index:   map[string][]int32{},
		str:     map[string][]int32{},
	})
	return &EntityTableHandle{builder: b, index: len(b.tables) - 1}
}

// EntityTableHandle lets callers append rows and columns to one entity
// table without re-resolving it by name on every call.
type EntityTableHandle struct {
	builder *Builder
	index   int
}

func (h *EntityTableHandle) table() *entityTableBuilder {
	return &h.builder.tables[h.index]
}

// AddProperty appends one entity/name/value property triple. name and
// value are string-pool indices (see Builder.Intern).
func (h *EntityTableHandle) AddProperty(entityID, nameIndex, valueIndex int32) *EntityTableHandle {
	t := h.table()
	t.properties = append(t.properties, Property{EntityID: entityID, NameIndex: nameIndex, ValueIndex: valueIndex})
	return h
}

// AppendNumeric appends one value to the named numeric column.
func (h *EntityTableHandle) AppendNumeric(column string, value float64) *EntityTableHandle {
	t := h.table()
	t.numeric[column] = append(t.numeric[column], value)
	return h
}

// AppendIndex appends one value to the named index column.
func (h *EntityTableHandle) AppendIndex(column string, value int32) *EntityTableHandle {
	t := h.table()
	t.index[column] = append(t.index[column], value)
	return h
}

// AppendString appends one string-pool index to the named string column.
func (h *EntityTableHandle) AppendString(column string, stringIndex int32) *EntityTableHandle {
	t := h.table()
	t.str[column] = append(t.str[column], stringIndex)
	return h
}

func encodeNode(n Node) []byte {
	buf := make([]byte, nodeRecordSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(n.Parent))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(n.Geometry))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(n.Instance))
	for j, f := range n.Transform {
		off := 12 + j*4
		binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(f))
	}
	return buf
}

func encodeProperties(props []Property) []byte {
	buf := make([]byte, len(props)*propertyRecordSize)
	for i, p := range props {
		off := i * propertyRecordSize
		binary.LittleEndian.PutUint32(buf[off:off+4], uint32(p.EntityID))
		binary.LittleEndian.PutUint32(buf[off+4:off+8], uint32(p.NameIndex))
		binary.LittleEndian.PutUint32(buf[off+8:off+12], uint32(p.ValueIndex))
	}
	return buf
}

func encodeFloat64Column(values []float64) []byte {
	buf := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:(i+1)*8], math.Float64bits(v))
	}
	return buf
}

func encodeInt32Column(values []int32) []byte {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], uint32(v))
	}
	return buf
}

func (t *entityTableBuilder) pack() (bfast.Buffer, error) {
	inner := &bfast.Bfast{}
	if len(t.properties) > 0 {
		inner.Add("properties", encodeProperties(t.properties))
	}

	addSorted := func(keys map[string]bool, emit func(col string)) {
		cols := make([]string, 0, len(keys))
		for k := range keys {
			cols = append(cols, k)
		}
		sort.Strings(cols)
		for _, col := range cols {
			emit(col)
		}
	}

	numericKeys := make(map[string]bool, len(t.numeric))
	for k := range t.numeric {
		numericKeys[k] = true
	}
	addSorted(numericKeys, func(col string) {
		inner.Add("numeric:"+col, encodeFloat64Column(t.numeric[col]))
	})

	indexKeys := make(map[string]bool, len(t.index))
	for k := range t.index {
		indexKeys[k] = true
	}
	addSorted(indexKeys, func(col string) {
		inner.Add("index:"+col, encodeInt32Column(t.index[col]))
	})

	stringKeys := make(map[string]bool, len(t.str))
	for k := range t.str {
		stringKeys[k] = true
	}
	addSorted(stringKeys, func(col string) {
		inner.Add("string:"+col, encodeInt32Column(t.str[col]))
	})

	blob, err := inner.Pack()
	if err != nil {
		return bfast.Buffer{}, fmt.Errorf("entity table %q: %w", t.name, err)
	}
	return bfast.Buffer{Name: t.name, Data: blob}, nil
}

// Build assembles every section collected so far into a top-level BFAST
// ready for Pack/WriteFile.
func (b *Builder) Build() (*bfast.Bfast, error) {
	out := &bfast.Bfast{}

	var headerBuf bytes.Buffer
	headerBuf.Write(vimTag[:])
	keys := make([]string, 0, len(b.header))
	for k := range b.header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&headerBuf, "%s=%s\n", k, b.header[k])
	}
	out.Add("header", headerBuf.Bytes())

	if len(b.nodes) > 0 {
		nodeBuf := make([]byte, 0, len(b.nodes)*nodeRecordSize)
		for _, n := range b.nodes {
			nodeBuf = append(nodeBuf, encodeNode(n)...)
		}
		out.Add("nodes", nodeBuf)
	}

	if b.strings.Len() > 0 {
		var sb bytes.Buffer
		for _, s := range b.strings.Strings() {
			sb.WriteString(s)
			sb.WriteByte(0)
		}
		out.Add("strings", sb.Bytes())
	}

	if b.geom != nil {
		blob, err := b.geom.ToBFast().Pack()
		if err != nil {
			return nil, fmt.Errorf("geometry: %w", err)
		}
		out.Add("geometry", blob)
	}

	if len(b.assets) > 0 {
		assets := &bfast.Bfast{Buffers: b.assets}
		blob, err := assets.Pack()
		if err != nil {
			return nil, fmt.Errorf("assets: %w", err)
		}
		out.Add("assets", blob)
	}

	if len(b.tables) > 0 {
		entities := &bfast.Bfast{}
		for i := range b.tables {
			buf, err := b.tables[i].pack()
			if err != nil {
				return nil, err
			}
			entities.Add(buf.Name, buf.Data)
		}
		blob, err := entities.Pack()
		if err != nil {
			return nil, fmt.Errorf("entities: %w", err)
		}
		out.Add("entities", blob)
	}

	return out, nil
}

// WriteFile builds the scene and writes it to path.
func (b *Builder) WriteFile(path string) error {
	out, err := b.Build()
	if err != nil {
		return err
	}
	return out.WriteFile(path)
}

package vim

import (
	"encoding/binary"
	"math"
)

// nodeRecordSize is the fixed byte size of one node record: parent (i32),
// geometry (i32), instance (i32), transform (16 x f32) — spec §3.3, §4.4.
const nodeRecordSize = 3*4 + 16*4

// Node is one scene-graph node: a parent link, a geometry index, an
// instance index, and a row-major 4x4 transform. -1 in Parent, Geometry,
// or Instance means "absent" (spec §3.3).
type Node struct {
	Parent    int32
	Geometry  int32
	Instance  int32
	Transform [16]float32
}

// decodeNodes reinterprets the "nodes" section's payload as a contiguous
// array of fixed-layout node records, reading each field explicitly with
// little-endian byte order and a 4-byte stride rather than relying on any
// particular in-memory struct layout (spec §4.4).
func decodeNodes(data []byte) []Node {
	n := len(data) / nodeRecordSize
	nodes := make([]Node, n)
	for i := 0; i < n; i++ {
		rec := data[i*nodeRecordSize : (i+1)*nodeRecordSize]
		nodes[i].Parent = int32(binary.LittleEndian.Uint32(rec[0:4]))
		nodes[i].Geometry = int32(binary.LittleEndian.Uint32(rec[4:8]))
		nodes[i].Instance = int32(binary.LittleEndian.Uint32(rec[8:12]))
		for j := 0; j < 16; j++ {
			off := 12 + j*4
			nodes[i].Transform[j] = math.Float32frombits(binary.LittleEndian.Uint32(rec[off : off+4]))
		}
	}
	return nodes
}

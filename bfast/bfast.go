// Package bfast implements the BFAST container format: an ordered list of
// named byte arrays serialized into one self-describing, 64-byte aligned
// blob. See the bfast.h original at vimaec/bfast for the format this
// package is a Go port of.
package bfast

const (
	// Magic identifies a same-endian BFAST blob.
	Magic uint64 = 0xBFA5

	// swappedMagic is Magic with its 8 bytes reversed; a blob whose first
	// 8 bytes equal this value was produced on a machine of the opposite
	// endianness (detected, not converted).
	swappedMagic uint64 = 0xA5BF000000000000

	// headerSize is the fixed size, in bytes, of the BFAST header.
	headerSize = 32

	// offsetEntrySize is the size, in bytes, of one (begin, end) pair in
	// the offset table.
	offsetEntrySize = 16

	// offsetTableStart is the byte offset at which the offset table
	// begins — immediately after the header. Producers MUST emit 32;
	// readers MUST accept 32 (see spec's Open Question about an
	// alternate 64 seen in some revisions — treated as a bug, not
	// supported here).
	offsetTableStart = headerSize

	// alignment is the byte alignment every array's start offset, and the
	// total blob size, must satisfy.
	alignment = 64
)

// alignUp rounds n up to the next multiple of alignment.
func alignUp(n uint64) uint64 {
	if n%alignment == 0 {
		return n
	}
	return n + alignment - (n % alignment)
}

// isAligned reports whether n is a multiple of alignment.
func isAligned(n uint64) bool {
	return n%alignment == 0
}

// header is the fixed 32-byte BFAST header.
type header struct {
	magic     uint64
	dataStart uint64
	dataEnd   uint64
	numArrays uint64
}

// offsetEntry is one (begin, end) pair in the offset table, byte offsets
// relative to the start of the blob.
type offsetEntry struct {
	begin uint64
	end   uint64
}

// Buffer is a named byte range: BFAST's fundamental unit of storage.
type Buffer struct {
	Name string
	Data []byte
}

// Bfast is a parsed or to-be-packed BFAST container: an ordered list of
// named buffers. The first buffer is conventionally the name buffer (see
// Unpack); Buffers returned by Unpack/UnpackOwned already has the name
// buffer split out and paired with its following data buffers.
type Bfast struct {
	Buffers []Buffer

	// owned holds the backing blob when the container was produced by
	// UnpackOwned, keeping it reachable for the lifetime of the Bfast.
	// Go's garbage collector already keeps the backing array alive for
	// as long as any Buffer.Data slice references it, so this field
	// exists to mirror the ownership distinction the format's contract
	// describes (see Unpack/UnpackOwned), not because Go
	// needs it to avoid a dangling pointer.
	owned []byte
}

// Add appends a named buffer to the container, mirroring the original
// Bfast::add builder method: buffers may be assembled incrementally before
// a single call to Pack/WriteFile.
func (b *Bfast) Add(name string, data []byte) *Bfast {
	b.Buffers = append(b.Buffers, Buffer{Name: name, Data: data})
	return b
}

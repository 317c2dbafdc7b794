package bfast

import (
	"encoding/binary"

	"github.com/vimaec/vim/internal/utils"
)

// nameBuffer concatenates every buffer's name as a NUL-terminated string,
// in order — this becomes buffer 0 on the wire (spec §3.1, §4.1 step 1).
func (b *Bfast) nameBuffer() []byte {
	size := 0
	for _, buf := range b.Buffers {
		size += len(buf.Name) + 1
	}

	scratch := utils.GetBuffer(0)
	defer utils.ReleaseBuffer(scratch)
	for _, buf := range b.Buffers {
		scratch = append(scratch, buf.Name...)
		scratch = append(scratch, 0)
	}

	out := make([]byte, len(scratch))
	copy(out, scratch)
	return out
}

// ranges returns the full ordered list of byte ranges to pack: the name
// buffer first, followed by each buffer's data.
func (b *Bfast) ranges() [][]byte {
	out := make([][]byte, 0, len(b.Buffers)+1)
	out = append(out, b.nameBuffer())
	for _, buf := range b.Buffers {
		out = append(out, buf.Data)
	}
	return out
}

// dataStartFor computes the aligned byte offset of the first array payload
// given n total arrays (name buffer included), per spec §4.1 step 2.
func dataStartFor(n int) uint64 {
	return alignUp(uint64(headerSize) + uint64(offsetEntrySize)*uint64(n))
}

// computeOffsets lays out each range at a 64-aligned cursor, in order
// (spec §4.1 step 3).
func computeOffsets(ranges [][]byte) []offsetEntry {
	cur := dataStartFor(len(ranges))
	offsets := make([]offsetEntry, len(ranges))
	for i, r := range ranges {
		begin := cur
		end := begin + uint64(len(r))
		offsets[i] = offsetEntry{begin: begin, end: end}
		cur = alignUp(end)
	}
	return offsets
}

// Pack serializes the container into a single BFAST blob (spec §4.1).
func (b *Bfast) Pack() ([]byte, error) {
	if err := utils.ValidateBufferSize(uint64(len(b.Buffers))+1, utils.MaxArrayCount, "bfast array count"); err != nil {
		return nil, wrapErr(KindOffsetOutOfRange, -1, "pack", err)
	}

	// An empty container has no arrays at all, not even a name buffer.
	var ranges [][]byte
	if len(b.Buffers) > 0 {
		ranges = b.ranges()
	}
	n := len(ranges)

	var dataStart, dataEnd, total uint64
	var offsets []offsetEntry

	if n == 0 {
		dataStart, dataEnd = 0, 0
		total = dataStartFor(0)
	} else {
		offsets = computeOffsets(ranges)
		dataStart = offsets[0].begin
		dataEnd = offsets[n-1].end
		total = alignUp(dataEnd)
	}

	out := make([]byte, total)
	binary.LittleEndian.PutUint64(out[0:8], Magic)
	binary.LittleEndian.PutUint64(out[8:16], dataStart)
	binary.LittleEndian.PutUint64(out[16:24], dataEnd)
	binary.LittleEndian.PutUint64(out[24:32], uint64(n))

	for i, off := range offsets {
		pos := offsetTableStart + i*offsetEntrySize
		binary.LittleEndian.PutUint64(out[pos:pos+8], off.begin)
		binary.LittleEndian.PutUint64(out[pos+8:pos+16], off.end)
	}
	for i, r := range ranges {
		copy(out[offsets[i].begin:offsets[i].end], r)
	}

	return out, nil
}

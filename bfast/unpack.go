package bfast

import (
	"bytes"
	"encoding/binary"

	"github.com/vimaec/vim/internal/utils"
)

// readHeader parses the fixed 32-byte header from the start of data.
func readHeader(data []byte) header {
	return header{
		magic:     binary.LittleEndian.Uint64(data[0:8]),
		dataStart: binary.LittleEndian.Uint64(data[8:16]),
		dataEnd:   binary.LittleEndian.Uint64(data[16:24]),
		numArrays: binary.LittleEndian.Uint64(data[24:32]),
	}
}

// Unpack parses a BFAST blob, returning buffers whose Data slices borrow
// directly from data (spec §4.1's "unpack" entry point). The caller must
// keep data reachable for as long as the returned Bfast (or any of its
// buffers) is in use; in practice Go's GC already guarantees this for any
// slice derived from data, so this is a documentation contract rather than
// one this function enforces at runtime.
func Unpack(data []byte) (*Bfast, error) {
	if len(data) < headerSize {
		return nil, newErr(KindTruncated, int64(len(data)), "header")
	}

	h := readHeader(data)
	if h.magic != Magic {
		if h.magic == swappedMagic {
			return nil, newErr(KindDifferentEndian, 0, "header")
		}
		return nil, newErr(KindBadMagic, 0, "header")
	}
	if h.dataEnd < h.dataStart {
		return nil, newErr(KindOffsetOutOfRange, 16, "header")
	}
	if h.dataEnd > uint64(len(data)) {
		return nil, newErr(KindOffsetOutOfRange, 16, "header")
	}
	if err := utils.ValidateBufferSize(h.numArrays+1, utils.MaxArrayCount, "bfast array count"); err != nil {
		return nil, wrapErr(KindOffsetOutOfRange, 24, "header", err)
	}

	tableEnd, err := utils.SafeMultiply(h.numArrays, offsetEntrySize)
	if err != nil {
		return nil, wrapErr(KindOffsetOutOfRange, 24, "offset table", err)
	}
	tableEnd += offsetTableStart
	if tableEnd > uint64(len(data)) {
		return nil, newErr(KindTruncated, int64(len(data)), "offset table")
	}

	ranges := make([][]byte, h.numArrays)
	var prevEnd uint64
	for i := uint64(0); i < h.numArrays; i++ {
		pos := offsetTableStart + i*offsetEntrySize
		begin := binary.LittleEndian.Uint64(data[pos : pos+8])
		end := binary.LittleEndian.Uint64(data[pos+8 : pos+16])

		if begin > end {
			return nil, newErr(KindOffsetOutOfRange, int64(pos), "offset table")
		}
		if end > uint64(len(data)) {
			return nil, newErr(KindOffsetOutOfRange, int64(pos)+8, "offset table")
		}
		if i > 0 && begin < prevEnd {
			return nil, newErr(KindOffsetOrder, int64(pos), "offset table")
		}
		ranges[i] = data[begin:end]
		prevEnd = end
	}

	if h.numArrays == 0 {
		return &Bfast{}, nil
	}

	names := splitNames(ranges[0])
	if len(names) != len(ranges)-1 {
		return nil, newErr(KindNameCountMismatch, int64(offsetTableStart), "name buffer")
	}

	buffers := make([]Buffer, len(names))
	for i, name := range names {
		buffers[i] = Buffer{Name: name, Data: ranges[i+1]}
	}
	return &Bfast{Buffers: buffers}, nil
}

// UnpackOwned parses a BFAST blob exactly like Unpack, additionally
// retaining data on the returned container so it stays reachable for as
// long as the container lives, without relying on the caller to keep its
// own reference (spec §4.1's "unpack_owned").
func UnpackOwned(data []byte) (*Bfast, error) {
	b, err := Unpack(data)
	if err != nil {
		return nil, err
	}
	b.owned = data
	return b, nil
}

// splitNames splits a NUL-terminated sequence of strings (the name buffer)
// into its component names, in order.
func splitNames(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	// Trailing NUL (if any) would otherwise produce a spurious empty
	// trailing name; the format always terminates every name including
	// the last, so strip exactly one trailing NUL before splitting.
	trimmed := data
	if len(trimmed) > 0 && trimmed[len(trimmed)-1] == 0 {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if len(trimmed) == 0 {
		return nil
	}
	parts := bytes.Split(trimmed, []byte{0})
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = string(p)
	}
	return names
}

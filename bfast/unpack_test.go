package bfast

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnpack_TooShort(t *testing.T) {
	_, err := Unpack(make([]byte, 31))
	require.Error(t, err)
	var bfastErr *Error
	require.ErrorAs(t, err, &bfastErr)
	require.Equal(t, KindTruncated, bfastErr.Kind)
}

func TestUnpack_BadMagic(t *testing.T) {
	data := make([]byte, 32)
	binary.LittleEndian.PutUint64(data[0:8], 0xDEADBEEF)
	_, err := Unpack(data)
	require.Error(t, err)
	var bfastErr *Error
	require.ErrorAs(t, err, &bfastErr)
	require.Equal(t, KindBadMagic, bfastErr.Kind)
}

func TestUnpack_SwappedMagic(t *testing.T) {
	data := make([]byte, 32)
	binary.LittleEndian.PutUint64(data[0:8], swappedMagic)
	_, err := Unpack(data)
	require.Error(t, err)
	var bfastErr *Error
	require.ErrorAs(t, err, &bfastErr)
	require.Equal(t, KindDifferentEndian, bfastErr.Kind)
}

func TestUnpack_EmptyContainer(t *testing.T) {
	var b Bfast
	blob, err := b.Pack()
	require.NoError(t, err)

	out, err := Unpack(blob)
	require.NoError(t, err)
	require.Empty(t, out.Buffers)
}

func TestUnpack_DataEndBeforeDataStart(t *testing.T) {
	data := make([]byte, 64)
	binary.LittleEndian.PutUint64(data[0:8], Magic)
	binary.LittleEndian.PutUint64(data[8:16], 64)
	binary.LittleEndian.PutUint64(data[16:24], 32)
	_, err := Unpack(data)
	require.Error(t, err)
	var bfastErr *Error
	require.ErrorAs(t, err, &bfastErr)
	require.Equal(t, KindOffsetOutOfRange, bfastErr.Kind)
}

func TestUnpack_DataEndBeyondBlob(t *testing.T) {
	data := make([]byte, 64)
	binary.LittleEndian.PutUint64(data[0:8], Magic)
	binary.LittleEndian.PutUint64(data[8:16], 32)
	binary.LittleEndian.PutUint64(data[16:24], 1000)
	_, err := Unpack(data)
	require.Error(t, err)
	var bfastErr *Error
	require.ErrorAs(t, err, &bfastErr)
	require.Equal(t, KindOffsetOutOfRange, bfastErr.Kind)
}

func TestUnpack_OffsetTableTruncated(t *testing.T) {
	data := make([]byte, 40)
	binary.LittleEndian.PutUint64(data[0:8], Magic)
	binary.LittleEndian.PutUint64(data[8:16], 0)
	binary.LittleEndian.PutUint64(data[16:24], 0)
	binary.LittleEndian.PutUint64(data[24:32], 5) // claims 5 arrays but blob has no room
	_, err := Unpack(data)
	require.Error(t, err)
	var bfastErr *Error
	require.ErrorAs(t, err, &bfastErr)
	require.Equal(t, KindTruncated, bfastErr.Kind)
}

func TestUnpack_OffsetEntryBeginAfterEnd(t *testing.T) {
	var b Bfast
	b.Add("a", []byte{1, 2, 3, 4})
	blob, err := b.Pack()
	require.NoError(t, err)

	// Corrupt the first offset entry (the name buffer's) to have begin > end.
	binary.LittleEndian.PutUint64(blob[offsetTableStart:offsetTableStart+8], 1000)

	_, err = Unpack(blob)
	require.Error(t, err)
	var bfastErr *Error
	require.ErrorAs(t, err, &bfastErr)
	require.Equal(t, KindOffsetOutOfRange, bfastErr.Kind)
}

func TestUnpack_OffsetEntriesOutOfOrder(t *testing.T) {
	var b Bfast
	b.Add("a", []byte{1, 2, 3, 4})
	b.Add("b", []byte{5, 6, 7, 8})
	blob, err := b.Pack()
	require.NoError(t, err)

	// Swap the second and third offset entries (buffers for "a" and "b"),
	// which breaks the non-decreasing begin ordering invariant.
	entry1 := offsetTableStart + offsetEntrySize
	entry2 := offsetTableStart + 2*offsetEntrySize
	var tmp [offsetEntrySize]byte
	copy(tmp[:], blob[entry1:entry1+offsetEntrySize])
	copy(blob[entry1:entry1+offsetEntrySize], blob[entry2:entry2+offsetEntrySize])
	copy(blob[entry2:entry2+offsetEntrySize], tmp[:])

	_, err = Unpack(blob)
	require.Error(t, err)
	var bfastErr *Error
	require.ErrorAs(t, err, &bfastErr)
	require.Equal(t, KindOffsetOrder, bfastErr.Kind)
}

func TestUnpack_NameCountMismatch(t *testing.T) {
	// Build a blob by hand whose header claims 3 arrays (2 data buffers)
	// but whose name buffer only contains one name.
	names := []byte("only-one\x00")
	d0 := []byte{1, 2, 3, 4}
	d1 := []byte{5, 6, 7, 8}

	ranges := [][]byte{names, d0, d1}
	offsets := computeOffsets(ranges)
	total := alignUp(offsets[len(offsets)-1].end)

	data := make([]byte, total)
	binary.LittleEndian.PutUint64(data[0:8], Magic)
	binary.LittleEndian.PutUint64(data[8:16], offsets[0].begin)
	binary.LittleEndian.PutUint64(data[16:24], offsets[len(offsets)-1].end)
	binary.LittleEndian.PutUint64(data[24:32], uint64(len(ranges)))
	for i, off := range offsets {
		pos := offsetTableStart + i*offsetEntrySize
		binary.LittleEndian.PutUint64(data[pos:pos+8], off.begin)
		binary.LittleEndian.PutUint64(data[pos+8:pos+16], off.end)
	}
	for i, r := range ranges {
		copy(data[offsets[i].begin:offsets[i].end], r)
	}

	_, err := Unpack(data)
	require.Error(t, err)
	var bfastErr *Error
	require.ErrorAs(t, err, &bfastErr)
	require.Equal(t, KindNameCountMismatch, bfastErr.Kind)
}

func TestSplitNames(t *testing.T) {
	require.Nil(t, splitNames(nil))
	require.Nil(t, splitNames([]byte{}))
	require.Equal(t, []string{"a", "bb", "ccc"}, splitNames([]byte("a\x00bb\x00ccc\x00")))
	// Missing trailing NUL on the last name is tolerated the same way.
	require.Equal(t, []string{"a", "bb"}, splitNames([]byte("a\x00bb")))
}

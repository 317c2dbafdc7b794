package bfast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundtrip_PreservesBuffersAndOrder(t *testing.T) {
	var in Bfast
	in.Add("positions", []byte{0, 1, 2, 3, 4, 5, 6, 7})
	in.Add("indices", []byte{10, 11, 12})
	in.Add("meta", []byte("hello"))

	blob, err := in.Pack()
	require.NoError(t, err)

	out, err := Unpack(blob)
	require.NoError(t, err)
	require.Len(t, out.Buffers, 3)
	for i, buf := range in.Buffers {
		require.Equal(t, buf.Name, out.Buffers[i].Name)
		require.Equal(t, buf.Data, out.Buffers[i].Data)
	}
}

func TestRoundtrip_EmptyBuffers(t *testing.T) {
	var in Bfast
	in.Add("empty", nil)
	in.Add("also-empty", []byte{})

	blob, err := in.Pack()
	require.NoError(t, err)

	out, err := Unpack(blob)
	require.NoError(t, err)
	require.Len(t, out.Buffers, 2)
	require.Equal(t, "empty", out.Buffers[0].Name)
	require.Empty(t, out.Buffers[0].Data)
	require.Equal(t, "also-empty", out.Buffers[1].Name)
	require.Empty(t, out.Buffers[1].Data)
}

func TestRoundtrip_UnpackIsIdempotent(t *testing.T) {
	var in Bfast
	in.Add("a", []byte{1, 2, 3})
	blob, err := in.Pack()
	require.NoError(t, err)

	first, err := Unpack(blob)
	require.NoError(t, err)
	second, err := Unpack(blob)
	require.NoError(t, err)
	require.Equal(t, first.Buffers, second.Buffers)
}

func TestRoundtrip_UnpackOwnedKeepsDataReachable(t *testing.T) {
	var in Bfast
	in.Add("a", []byte{9, 8, 7})
	blob, err := in.Pack()
	require.NoError(t, err)

	out, err := UnpackOwned(blob)
	require.NoError(t, err)
	require.Equal(t, []byte{9, 8, 7}, out.Buffers[0].Data)
}

func TestRoundtrip_LargeBufferCount(t *testing.T) {
	var in Bfast
	const n = 200
	for i := 0; i < n; i++ {
		in.Add(string(rune('a'+(i%26)))+string(rune('0'+(i%10))), []byte{byte(i)})
	}
	blob, err := in.Pack()
	require.NoError(t, err)

	out, err := Unpack(blob)
	require.NoError(t, err)
	require.Len(t, out.Buffers, n)
	for i := range in.Buffers {
		require.Equal(t, in.Buffers[i].Name, out.Buffers[i].Name)
		require.Equal(t, in.Buffers[i].Data, out.Buffers[i].Data)
	}
}

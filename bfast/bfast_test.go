package bfast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	cases := []struct {
		in, want uint64
	}{
		{0, 0},
		{1, 64},
		{63, 64},
		{64, 64},
		{65, 128},
		{128, 128},
	}
	for _, c := range cases {
		require.Equal(t, c.want, alignUp(c.in))
	}
}

func TestIsAligned(t *testing.T) {
	require.True(t, isAligned(0))
	require.True(t, isAligned(64))
	require.True(t, isAligned(128))
	require.False(t, isAligned(1))
	require.False(t, isAligned(63))
}

func TestAdd(t *testing.T) {
	var b Bfast
	b.Add("one", []byte{1}).Add("two", []byte{2, 2})

	require.Len(t, b.Buffers, 2)
	require.Equal(t, "one", b.Buffers[0].Name)
	require.Equal(t, []byte{1}, b.Buffers[0].Data)
	require.Equal(t, "two", b.Buffers[1].Name)
	require.Equal(t, []byte{2, 2}, b.Buffers[1].Data)
}

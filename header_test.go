package vim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHeader_Tagged(t *testing.T) {
	data := append([]byte{'V', 'I', 'M', '1'}, []byte("vim=1.2.3\n")...)
	h := parseHeader(data)
	require.True(t, h.HasVersion)
	require.Equal(t, uint32(1), h.Major)
	require.Equal(t, uint32(2), h.Minor)
	require.Equal(t, uint32(3), h.Patch)
}

func TestParseHeader_TaggedMultipleFields(t *testing.T) {
	data := append([]byte{'V', 'I', 'M', '1'}, []byte("vim=1.2.3\nsource=revit\n")...)
	h := parseHeader(data)
	require.Equal(t, "revit", h.Fields["source"])
	require.True(t, h.HasVersion)
}

func TestParseHeader_Legacy(t *testing.T) {
	// spec §8.2 scenario 6: "vim:1.0:objectmodel:2.3" -> major=0, minor=1, patch=230
	h := parseHeader([]byte("vim:1.0:objectmodel:2.3"))
	require.True(t, h.HasVersion)
	require.Equal(t, uint32(0), h.Major)
	require.Equal(t, uint32(1), h.Minor)
	require.Equal(t, uint32(230), h.Patch)
}

func TestParseHeader_LegacyNoObjectModel(t *testing.T) {
	h := parseHeader([]byte("vim:2.5"))
	require.True(t, h.HasVersion)
	require.Equal(t, uint32(0), h.Major)
	require.Equal(t, uint32(2), h.Minor)
	require.Equal(t, uint32(0), h.Patch) // objectmodel missing -> [""] padded to ["","0","0"] -> "00"
}

func TestParseHeader_MissingVimKey(t *testing.T) {
	data := append([]byte{'V', 'I', 'M', '1'}, []byte("source=revit\n")...)
	h := parseHeader(data)
	require.False(t, h.HasVersion)
	require.Equal(t, uint32(unknownVersion), h.Major)
}

func TestParseHeader_TaggedDetectionIsExact(t *testing.T) {
	// "VIM2" must not be mistaken for the tagged form.
	h := parseHeader([]byte("VIM2vim=1.0.0"))
	// Parsed as legacy: colon-split on "VIM2vim=1.0.0" yields one token, no pairs.
	require.False(t, h.HasVersion)
}

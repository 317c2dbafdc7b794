package vim

import (
	"bytes"
	"fmt"

	"github.com/vimaec/vim/internal/utils"
)

// decodeStrings scans the "strings" section's payload for back-to-back
// NUL-terminated UTF-8 strings, returning one slice per string in
// on-disk order (spec §3.3). Scene data references these by 0-based index.
// Each entry is bounds-checked against utils.MaxStringSize to guard
// against a corrupt or hostile pool claiming an implausibly large entry.
func decodeStrings(data []byte) ([]string, error) {
	var out []string
	for len(data) > 0 {
		var entry []byte
		if i := bytes.IndexByte(data, 0); i >= 0 {
			entry = data[:i]
			data = data[i+1:]
		} else {
			// Tolerate a final string missing its terminator, matching
			// the permissive scan the source's pointer-walk performs
			// (it only stops at the buffer's end, never requires a
			// trailing NUL).
			entry = data
			data = nil
		}

		if err := utils.ValidateBufferSize(uint64(len(entry))+1, utils.MaxStringSize, "vim string pool entry"); err != nil {
			return nil, fmt.Errorf("strings: %w", err)
		}
		out = append(out, string(entry))
	}
	return out, nil
}

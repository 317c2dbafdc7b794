package bfast

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile reads and unpacks a BFAST blob from disk. Buffers in the
// returned container own their backing memory (equivalent to UnpackOwned),
// since the file's contents are not otherwise kept alive by the caller.
func ReadFile(path string) (*Bfast, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapErr(KindIO, -1, "read "+path, err)
	}
	b, err := UnpackOwned(data)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// WriteFile packs the container and writes it to path. The write is
// performed to a temporary file in the same directory followed by a rename,
// so a crash or interrupted write never leaves a half-written file at path
// (spec §7).
func (b *Bfast) WriteFile(path string) error {
	blob, err := b.Pack()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".bfast-*.tmp")
	if err != nil {
		return wrapErr(KindIO, -1, "create temp file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return wrapErr(KindIO, -1, "write "+tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return wrapErr(KindIO, -1, "sync "+tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return wrapErr(KindIO, -1, "close "+tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return wrapErr(KindIO, -1, fmt.Sprintf("rename %s to %s", tmpPath, path), err)
	}
	return nil
}

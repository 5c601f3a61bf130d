package store

import (
	"os"
	"path/filepath"
)

// renameRecord finalizes a record write. Tests swap it to inject medium
// faults, which no privilege level can provoke reliably through the
// filesystem alone.
var renameRecord = os.Rename

// writeRecord writes the concatenated buffers via a temp file, then
// atomically replaces the target. A crash or write error never leaves a torn
// or partially visible record behind.
func writeRecord(path string, bufs [][]byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	for _, b := range bufs {
		if _, err := f.Write(b); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return renameRecord(tmp, path)
}

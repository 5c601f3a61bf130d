package store

import "testing"

// SwapRenameForTest replaces the rename step of record writes for the
// duration of a test, so medium faults can be injected regardless of the
// privileges the tests run with.
func SwapRenameForTest(t *testing.T, fn func(oldpath, newpath string) error) {
	t.Helper()
	prev := renameRecord
	renameRecord = fn
	t.Cleanup(func() { renameRecord = prev })
}

package domain

import "errors"

// Sentinel errors for store and transform operations. Failed operations leave
// the store's observable state exactly as it was before the call: a failed
// Put stores nothing, a failed Remove deletes nothing.
var (
	// ErrNotFound is returned by Get for a key with no stored record. It is
	// an expected condition during recovery races, not a medium fault.
	ErrNotFound = errors.New("key not found")

	// ErrPersistence covers medium faults: unreachable, corrupted, or an
	// operation that could not complete.
	ErrPersistence = errors.New("persistence failure")

	// ErrTransform covers encode/decode failures such as tampered
	// ciphertext. Session owners treat it like ErrPersistence: a record
	// that cannot be decoded is as lost as one that cannot be read.
	ErrTransform = errors.New("transform failure")

	// ErrNotOpen is returned for operations on a store with no successful
	// Open, or after a failed one.
	ErrNotOpen = errors.New("store not open")

	// ErrEmptyRecord is returned by Put when the buffer set is empty.
	ErrEmptyRecord = errors.New("record has no buffers")
)

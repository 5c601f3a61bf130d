package domain

// Store is a durable key-to-record store scoped to one (clientID, serverURI)
// session. It keeps in-flight protocol messages across process restarts so
// the acknowledgment handshake can resume after recovery.
//
// The contract is single-writer: one session owner drives one store instance
// sequentially. Concurrent callers need external synchronization, though
// implementations in this module are internally locked anyway.
type Store interface {
	// Open establishes the namespace for the identity pair. After a failed
	// Open the store is unusable until a later Open succeeds.
	Open(clientID ClientID, serverURI ServerURI) error

	// Close releases any live handle without deleting data. A later Open
	// with the same identity sees everything previously stored. Safe to
	// call when Open never succeeded.
	Close() error

	// Clear deletes every record in the namespace.
	Clear() error

	// ContainsKey reports whether a record is stored under key. Absence is
	// false, never an error; errors are reserved for medium faults.
	ContainsKey(key Key) (bool, error)

	// Keys returns a snapshot of all stored keys in no particular order.
	Keys() ([]Key, error)

	// Put stores bufs under key, fully replacing any prior record. The
	// record becomes visible atomically: readers see either the prior
	// state or the complete new record, never a mixture. An empty buffer
	// set is rejected with ErrEmptyRecord.
	Put(key Key, bufs [][]byte) error

	// Get returns the stored record as one contiguous byte slice, the
	// concatenation of the buffers given to Put. Buffer boundaries are not
	// preserved; callers re-split if they need structure. Returns
	// ErrNotFound for an absent key.
	Get(key Key) ([]byte, error)

	// Remove deletes the record under key. Removing an absent key is a
	// no-op success, so recovery can race external cleanup.
	Remove(key Key) error
}

// Transform is an optional symmetric hook run by the session owner around
// store access, typically for encryption at rest. Encode runs immediately
// before Put, Decode immediately after Get.
//
// Ownership: both calls may mutate their input in place and return it, or
// return freshly allocated replacements. Callers must use only the returned
// slices and never touch the inputs again.
type Transform interface {
	// Encode transforms the outbound buffer set. The returned buffers are
	// what gets stored.
	Encode(bufs [][]byte) ([][]byte, error)

	// Decode inverts Encode given the single contiguous record returned by
	// Get, reconstructing the exact byte sequence originally passed to
	// Encode (concatenated).
	Decode(buf []byte) ([]byte, error)
}

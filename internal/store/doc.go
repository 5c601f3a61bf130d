// Package store provides the concrete persistence backends for mqstore.
//
// It contains implementations of the domain.Store contract:
//   - FileStore: one directory per (clientID, serverURI) session, one file
//     per record, written atomically via temp file + rename
//   - MemoryStore: volatile map-backed store for tests and sessions that do
//     not need to survive a restart
//
// Record payloads are opaque bytes; any encryption happens in the session
// owner's transform before the bytes reach a backend. All methods are
// concurrency-safe via internal locking even though the contract only
// promises single-writer behavior.
package store

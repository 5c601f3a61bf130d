// Package commands defines the mqstorectl CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - ls       List persisted records for a session
//   - cat      Print one record, decoding it when a passphrase is set
//   - put      Store files as one record (testing aid)
//   - rm       Remove one record
//   - clear    Remove every record in the session
//
// # Implementation
//
// The root command loads mqstorectl.toml, applies flag overrides, and opens
// the file store for the session before any subcommand runs, so handlers
// share one open store and one transform.
package commands

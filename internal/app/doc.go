// Package app wires application dependencies for the CLI.
//
// It loads Config from a TOML file and builds the concrete store, transform
// and logger from it, exposing them via the Wire struct for commands to use.
package app

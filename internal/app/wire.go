package app

import (
	"github.com/rs/zerolog"

	"mqstore/internal/codec"
	"mqstore/internal/domain"
	"mqstore/internal/logging"
	"mqstore/internal/store"
)

// Wire bundles the store, transform, and logger for the CLI.
type Wire struct {
	Store     *store.FileStore
	Transform domain.Transform
	Log       zerolog.Logger
}

// NewWire constructs the dependency graph from cfg. An empty passphrase
// selects the pass-through transform; records are stored raw.
func NewWire(cfg Config, passphrase string) *Wire {
	log := logging.New(cfg.LogLevel)

	var transform domain.Transform = codec.NopTransform{}
	if passphrase != "" {
		transform = codec.NewAEADTransform(passphrase)
	}

	return &Wire{
		Store:     store.NewFileStore(cfg.Root).WithLogger(log),
		Transform: transform,
		Log:       log,
	}
}

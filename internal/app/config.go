package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFilename is the file Load looks for inside a config directory.
const ConfigFilename = "mqstorectl.toml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Root      string `toml:"root"`       // store root, e.g. $HOME/.mqstore
	ClientID  string `toml:"client_id"`  // default session client id
	ServerURI string `toml:"server_uri"` // default session server URI
	LogLevel  string `toml:"log_level"`  // trace|debug|info|warn|error|disabled
}

// Default returns a Config with sensible default values.
func Default() Config {
	root := ".mqstore"
	if home, err := os.UserHomeDir(); err == nil {
		root = filepath.Join(home, ".mqstore")
	}
	return Config{
		Root:     root,
		LogLevel: "info",
	}
}

// Load reads ConfigFilename from dir on top of Default. A missing file is
// not an error; a malformed one is.
func Load(dir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(dir, ConfigFilename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

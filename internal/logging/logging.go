// Package logging configures the zerolog logger shared by the CLI and the
// file store. Library code takes a zerolog.Logger value and defaults to
// zerolog.Nop(), so only binaries need this package.
package logging

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Environment overrides, applied on top of the configured level.
const (
	EnvLevel   = "MQSTORE_LOG_LEVEL"
	EnvNoColor = "MQSTORE_LOG_NOCOLOR"
)

// New returns a console logger at the given level name. Unknown or empty
// names fall back to info.
func New(level string) zerolog.Logger {
	lvl, ok := parseLevel(level)
	if !ok {
		lvl = zerolog.InfoLevel
	}
	if env, ok := parseLevel(os.Getenv(EnvLevel)); ok {
		lvl = env
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor()}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func noColor() bool {
	v, err := strconv.ParseBool(os.Getenv(EnvNoColor))
	return err == nil && v
}

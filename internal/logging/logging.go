// Package logging constructs the application logger. The terminal belongs
// to the TUI, so logs go to a file in the data directory.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger writing to the given file, creating parent
// directories as needed. When the file cannot be opened the returned
// logger discards everything; a broken log destination must never take
// the app down.
func New(path string) zerolog.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nop()
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nop()
	}
	return zerolog.New(file).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}

func nop() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}

// Logger aliases zerolog.Logger so callers can depend on the logging
// contract without importing the third-party module directly.
type Logger = zerolog.Logger

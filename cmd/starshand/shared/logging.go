package shared

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// SetupLogger builds a logger writing to w. Format "json" gives structured
// output; anything else a human console.
func SetupLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}

	if format == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		return zerolog.New(w).
			Level(lvl).
			With().
			Timestamp().
			Logger(), nil
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

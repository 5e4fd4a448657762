// Package logging builds the process logger and adapts it to the ports the
// content and server packages log through.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a zerolog logger writing to w (stderr when nil). format is
// "json" or "console"; unknown levels fall back to info.
func New(level, format string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if strings.EqualFold(format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("app", "wordpress-content").Logger()
}

// ContentLogger writes one error event per failed content operation.
type ContentLogger struct {
	Log zerolog.Logger
}

func (c ContentLogger) Failure(_ context.Context, op string, err error, fields map[string]any) {
	c.Log.Error().
		Err(err).
		Str("op", op).
		Fields(fields).
		Msg("content fetch failed")
}

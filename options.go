package alns

import (
	"io"
	"log/slog"
)

// Option configures an ALNS engine at construction time.
type Option func(*ALNS)

// WithLogger routes the engine's diagnostics (operator selection at debug,
// new bests at info, registration conflicts at warn) to log. The default
// engine logger discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(a *ALNS) {
		if log != nil {
			a.log = log
		}
	}
}

// discardLogger returns a logger that drops every record; search hot loops
// should not pay for logging unless the caller opts in.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

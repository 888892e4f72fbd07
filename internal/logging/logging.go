// internal/logging/logging.go
package logging

import (
	"io"
	"log/slog"
	"time"
)

type Config struct {
	Debug bool
	Quiet bool
}

// New returns a text logger on w. Warnings and errors are shown by default,
// debug records only with Debug, nothing with Quiet.
func New(w io.Writer, cfg Config) *slog.Logger {
	if cfg.Quiet || w == nil {
		return Discard()
	}

	level := slog.LevelWarn
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}

func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

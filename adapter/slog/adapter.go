// Package slogadapter forwards picolog dispatches to the standard log/slog
// API.
package slogadapter

import (
	"context"
	"log/slog"

	"github.com/trickstertwo/picolog"
)

// Subscriber bridges picolog to an *slog.Logger.
type Subscriber struct {
	l *slog.Logger
}

// New returns a Subscriber writing to l; nil selects slog.Default().
func New(l *slog.Logger) *Subscriber {
	if l == nil {
		l = slog.Default()
	}
	return &Subscriber{l: l}
}

func (s *Subscriber) Log(level picolog.Level, msg string) {
	s.l.LogAttrs(context.Background(), toSlog(level), msg)
}

// toSlog maps picolog severities onto slog's numeric scale. Critical and
// Always land above slog.LevelError so handlers can still tell them apart.
func toSlog(l picolog.Level) slog.Level {
	switch l {
	case picolog.LevelTrace:
		return slog.LevelDebug - 4
	case picolog.LevelDebug:
		return slog.LevelDebug
	case picolog.LevelInfo:
		return slog.LevelInfo
	case picolog.LevelWarning:
		return slog.LevelWarn
	case picolog.LevelError:
		return slog.LevelError
	case picolog.LevelCritical:
		return slog.LevelError + 4
	default:
		return slog.LevelError + 8
	}
}

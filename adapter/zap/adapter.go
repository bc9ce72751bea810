// Package zap forwards picolog dispatches to go.uber.org/zap.
package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/picolog"
)

// Subscriber bridges picolog to a *zap.Logger.
type Subscriber struct {
	l *zap.Logger
}

// New returns a Subscriber writing to l; nil selects zap.NewNop().
func New(l *zap.Logger) *Subscriber {
	if l == nil {
		l = zap.NewNop()
	}
	return &Subscriber{l: l}
}

func (s *Subscriber) Log(level picolog.Level, msg string) {
	s.l.Log(mapLevel(level), msg)
}

// mapLevel converts picolog.Level to zapcore.Level. Trace has no zap
// counterpart and maps to Debug; Critical and Always map to Error to avoid
// zap's Panic/Fatal side effects.
func mapLevel(l picolog.Level) zapcore.Level {
	switch {
	case l <= picolog.LevelDebug:
		return zapcore.DebugLevel
	case l <= picolog.LevelInfo:
		return zapcore.InfoLevel
	case l <= picolog.LevelWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

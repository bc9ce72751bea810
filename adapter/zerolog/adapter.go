// Package zerolog forwards picolog dispatches to rs/zerolog.
package zerolog

import (
	"github.com/rs/zerolog"

	"github.com/trickstertwo/picolog"
)

// Subscriber bridges picolog to a zerolog.Logger.
type Subscriber struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Subscriber { return &Subscriber{l: l} }

// Log emits one entry.
// Fast path: drop early if below the zerolog logger's own level so disabled
// entries allocate no Event.
func (s *Subscriber) Log(level picolog.Level, msg string) {
	zlvl := mapLevel(level)
	if zlvl < s.l.GetLevel() {
		return
	}
	s.l.WithLevel(zlvl).Msg(msg)
}

// mapLevel converts picolog.Level to zerolog.Level.
// Critical and Always map to Error to avoid zerolog.Fatal (which would exit
// the process).
func mapLevel(l picolog.Level) zerolog.Level {
	switch {
	case l <= picolog.LevelTrace:
		return zerolog.TraceLevel
	case l <= picolog.LevelDebug:
		return zerolog.DebugLevel
	case l <= picolog.LevelInfo:
		return zerolog.InfoLevel
	case l <= picolog.LevelWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

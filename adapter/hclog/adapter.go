// Package hclog forwards picolog dispatches to hashicorp/go-hclog.
package hclog

import (
	"github.com/hashicorp/go-hclog"

	"github.com/trickstertwo/picolog"
)

// Subscriber bridges picolog to an hclog.Logger.
type Subscriber struct {
	l hclog.Logger
}

// New returns a Subscriber writing to l; nil selects hclog.Default().
func New(l hclog.Logger) *Subscriber {
	if l == nil {
		l = hclog.Default()
	}
	return &Subscriber{l: l}
}

func (s *Subscriber) Log(level picolog.Level, msg string) {
	s.l.Log(mapLevel(level), msg)
}

// mapLevel converts picolog.Level to hclog.Level. Critical and Always map
// to Error, hclog's most severe level.
func mapLevel(l picolog.Level) hclog.Level {
	switch {
	case l <= picolog.LevelTrace:
		return hclog.Trace
	case l <= picolog.LevelDebug:
		return hclog.Debug
	case l <= picolog.LevelInfo:
		return hclog.Info
	case l <= picolog.LevelWarning:
		return hclog.Warn
	default:
		return hclog.Error
	}
}

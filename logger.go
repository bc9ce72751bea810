package picolog

import (
	"fmt"
	"sync/atomic"
)

// Logger dispatches formatted messages to its registered subscribers.
//
// A Logger is built for single-threaded, cooperative use: registry and
// buffer state carry no locks. Callers that log from more than one
// goroutine must serialize access externally, e.g. by routing all logging
// through a single goroutine. Subscribers must not call back into
// Subscribe, Unsubscribe, or Message while a dispatch is in progress.
type Logger struct {
	reg    *registry
	buf    []byte // reused across calls; rendered text is copied out
	maxLen int
}

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal installs l as the process-wide logger used by the package-level
// functions.
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("picolog: global logger not set. Call picolog.Init or picolog.SetGlobal first")
	}
	return l
}

// Subscribe registers sub under name at the given threshold. Re-subscribing
// an existing name updates its subscriber and threshold in place without
// consuming another slot. When the table is full, ErrSubscribersExceeded is
// returned and nothing changes.
func (l *Logger) Subscribe(name string, sub Subscriber, threshold Level) error {
	return l.reg.subscribe(name, sub, threshold)
}

// Unsubscribe removes the subscriber registered under name. It returns
// ErrNotSubscribed when name has no active slot.
func (l *Logger) Unsubscribe(name string) error {
	return l.reg.unsubscribe(name)
}

// Subscribers returns the names of all active subscribers in slot order.
func (l *Logger) Subscribers() []string { return l.reg.names() }

// Message renders format+args and synchronously invokes every active
// subscriber whose threshold is at or below level, in slot order. It never
// fails: text longer than the configured maximum is truncated, and a
// malformed format/argument pairing is delivered with fmt's usual %! error
// annotations rather than reported. Rendering is skipped entirely when no
// subscriber qualifies; it is a pure function of its arguments, so nothing
// can observe the difference.
func (l *Logger) Message(level Level, format string, args ...any) {
	if !enabled {
		return
	}
	qualified := false
	for i := range l.reg.slots {
		s := &l.reg.slots[i]
		if s.sub != nil && s.min <= level {
			qualified = true
			break
		}
	}
	if !qualified {
		return
	}

	buf := fmt.Appendf(l.buf[:0], format, args...)
	if len(buf) > l.maxLen {
		buf = buf[:l.maxLen]
	}
	msg := string(buf)
	// Keep the backing array for the next call unless rendering outgrew the
	// configured cap.
	if cap(buf) <= l.maxLen {
		l.buf = buf[:0]
	}

	for i := range l.reg.slots {
		s := &l.reg.slots[i]
		if s.sub != nil && s.min <= level {
			s.sub.Log(level, msg)
		}
	}
}

// Per-level entry points mirroring the classic TRACE..ALWAYS family.

func (l *Logger) Tracef(format string, args ...any)    { l.Message(LevelTrace, format, args...) }
func (l *Logger) Debugf(format string, args ...any)    { l.Message(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)     { l.Message(LevelInfo, format, args...) }
func (l *Logger) Warningf(format string, args ...any)  { l.Message(LevelWarning, format, args...) }
func (l *Logger) Errorf(format string, args ...any)    { l.Message(LevelError, format, args...) }
func (l *Logger) Criticalf(format string, args ...any) { l.Message(LevelCritical, format, args...) }
func (l *Logger) Alwaysf(format string, args ...any)   { l.Message(LevelAlways, format, args...) }

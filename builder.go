package picolog

import (
	"fmt"
	"io"

	"github.com/trickstertwo/xclock"
)

// Defaults mirror the classic embedded configuration: a handful of
// subscriber slots and a short single-line message cap.
const (
	DefaultCapacity         = 6
	DefaultMaxMessageLength = 120
	DefaultThreshold        = LevelWarning

	// ConsoleName is the registry name of the built-in console subscriber.
	ConsoleName = "console"
)

// Config for constructing a Logger (Factory data structure).
type Config struct {
	Capacity         int          // subscriber table size; must be positive
	MaxMessageLength int          // rendered message cap in bytes; must be positive
	Threshold        Level        // threshold of the built-in console subscriber
	Console          bool         // register the built-in console subscriber
	ConsoleWriter    io.Writer    // console destination; nil means color.Output
	Clock            xclock.Clock // console timestamp source; nil means the process clock
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{
		Capacity:         DefaultCapacity,
		MaxMessageLength: DefaultMaxMessageLength,
		Threshold:        DefaultThreshold,
		Console:          true,
	}}
}

func (b *Builder) WithCapacity(n int) *Builder {
	b.cfg.Capacity = n
	return b
}

func (b *Builder) WithMaxMessageLength(n int) *Builder {
	b.cfg.MaxMessageLength = n
	return b
}

func (b *Builder) WithThreshold(l Level) *Builder {
	b.cfg.Threshold = l
	return b
}

func (b *Builder) WithConsoleWriter(w io.Writer) *Builder {
	b.cfg.ConsoleWriter = w
	return b
}

func (b *Builder) WithoutConsole() *Builder {
	b.cfg.Console = false
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

// Build validates the configuration and constructs the Logger. All slots
// start empty; unless WithoutConsole was used, the built-in console
// subscriber is then registered under ConsoleName at cfg.Threshold.
func (b *Builder) Build() (*Logger, error) {
	if b.cfg.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, b.cfg.Capacity)
	}
	if b.cfg.MaxMessageLength <= 0 {
		return nil, fmt.Errorf("%w: max message length must be positive, got %d", ErrInvalidConfig, b.cfg.MaxMessageLength)
	}
	l := &Logger{
		reg:    newRegistry(b.cfg.Capacity),
		buf:    make([]byte, 0, b.cfg.MaxMessageLength),
		maxLen: b.cfg.MaxMessageLength,
	}
	if b.cfg.Console {
		c := NewConsole(b.cfg.ConsoleWriter)
		c.Clock = b.cfg.Clock
		if err := l.Subscribe(ConsoleName, c, b.cfg.Threshold); err != nil {
			return nil, err
		}
	}
	return l, nil
}

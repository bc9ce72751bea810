package picolog

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/trickstertwo/xclock"
)

// Console is the built-in output subscriber: one line per message with a
// timestamp and a color-coded severity tag. It is an ordinary Subscriber
// with no special standing; it can be left out, replaced, or registered
// under several names with different thresholds.
type Console struct {
	W          io.Writer
	TimeFormat string
	Clock      xclock.Clock // nil means the process default clock
}

// NewConsole returns a Console writing to w. A nil w selects color.Output,
// which handles platform color quirks and disables color off-TTY.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = color.Output
	}
	return &Console{W: w, TimeFormat: time.RFC3339}
}

var levelColors = map[Level]*color.Color{
	LevelAlways:   color.New(color.FgBlue),
	LevelCritical: color.New(color.FgMagenta),
	LevelError:    color.New(color.FgRed),
	LevelWarning:  color.New(color.FgYellow),
	LevelInfo:     color.New(color.FgGreen),
	LevelDebug:    color.New(color.FgWhite),
}

func levelColor(l Level) *color.Color {
	if c, ok := levelColors[l]; ok {
		return c
	}
	return color.New()
}

// Log writes one line. Write errors are swallowed per the subscriber
// contract; failing logging itself helps nobody.
func (c *Console) Log(level Level, msg string) {
	at := xclock.Now()
	if c.Clock != nil {
		at = c.Clock.Now()
	}
	fmt.Fprintf(c.W, "%s %s %s\n",
		at.Format(c.TimeFormat),
		levelColor(level).Sprintf("[%s]", level),
		msg,
	)
}

package picolog

import (
	"fmt"
	"strings"
)

// Level is the ordered severity of a log message. Higher values are more
// severe; LevelAlways is a sentinel maximum no threshold can exceed.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
	LevelAlways
)

// String returns the stable label for l. It is total: out-of-range values
// yield "UNKNOWN" rather than failing.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	case LevelAlways:
		return "ALWAYS"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a label back to its Level, ignoring case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(s) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	case "ALWAYS":
		return LevelAlways, nil
	default:
		return 0, fmt.Errorf("%w: unknown level %q", ErrInvalidConfig, s)
	}
}

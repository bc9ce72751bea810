package picolog

// Facade helpers using the global Singleton logger.
// Usage: picolog.Init(picolog.LevelWarning); picolog.Infof("x=%d", 5)

// Init builds a Logger with default capacity and message length, the
// built-in console subscriber registered at threshold, and installs it as
// the global logger. Calling Init again installs a fresh logger, resetting
// the subscriber table. It returns the new logger for convenience.
func Init(threshold Level) *Logger {
	l, err := NewBuilder().WithThreshold(threshold).Build()
	if err != nil {
		// Unreachable with the package defaults.
		panic(err)
	}
	SetGlobal(l)
	return l
}

// Subscribe registers sub on the global logger.
func Subscribe(name string, sub Subscriber, threshold Level) error {
	return L().Subscribe(name, sub, threshold)
}

// Unsubscribe removes name from the global logger.
func Unsubscribe(name string) error { return L().Unsubscribe(name) }

// Message dispatches on the global logger.
func Message(level Level, format string, args ...any) { L().Message(level, format, args...) }

func Tracef(format string, args ...any)    { L().Message(LevelTrace, format, args...) }
func Debugf(format string, args ...any)    { L().Message(LevelDebug, format, args...) }
func Infof(format string, args ...any)     { L().Message(LevelInfo, format, args...) }
func Warningf(format string, args ...any)  { L().Message(LevelWarning, format, args...) }
func Errorf(format string, args ...any)    { L().Message(LevelError, format, args...) }
func Criticalf(format string, args ...any) { L().Message(LevelCritical, format, args...) }
func Alwaysf(format string, args ...any)   { L().Message(LevelAlways, format, args...) }

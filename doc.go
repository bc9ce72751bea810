// Package picolog is a minimal subscriber-dispatch logging core.
//
// A Logger holds a fixed-capacity table of named subscribers, each with its
// own severity threshold. Message renders a printf-style message once and
// hands it synchronously to every subscriber whose threshold it meets:
//
//	l, err := picolog.NewBuilder().
//		WithThreshold(picolog.LevelWarning).
//		Build()
//	if err != nil {
//		panic(err)
//	}
//	l.Subscribe("file", picolog.SubscriberFunc(func(level picolog.Level, msg string) {
//		fmt.Fprintf(f, "[%s] %s\n", level, msg)
//	}), picolog.LevelDebug)
//
//	arg := 42
//	l.Infof("arg is %d", arg) // reaches "file" but not the console
//
// The built-in console subscriber (colorized, timestamped) is registered by
// Build under the name "console" unless WithoutConsole is used. Subscribers
// receive the rendered text as an immutable string and may keep it.
//
// Init installs a default Logger as the process-wide global used by the
// package-level functions (picolog.Infof and friends). Capacity and the
// rendered message length are hard caps: a full table reports
// ErrSubscribersExceeded, an over-long message is truncated.
//
// The core is single-threaded by design. Registry and dispatch state carry
// no locks; callers logging from more than one goroutine must serialize
// access externally. Building with -tags picolog_off compiles Message and
// the per-level helpers down to no-ops.
package picolog

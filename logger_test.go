package picolog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder is a minimal Subscriber for tests. It records every dispatched
// (level, message) pair.
type recorder struct {
	entries []recorded
}

type recorded struct {
	level Level
	msg   string
}

func (r *recorder) Log(level Level, msg string) {
	r.entries = append(r.entries, recorded{level: level, msg: msg})
}

func TestDispatchRespectsThresholds(t *testing.T) {
	t.Parallel()

	l := newTestLogger(t, 4)
	loud := &recorder{}
	quiet := &recorder{}

	require.NoError(t, l.Subscribe("loud", loud, LevelDebug))
	require.NoError(t, l.Subscribe("quiet", quiet, LevelError))

	l.Message(LevelInfo, "x=%d", 5)

	require.Len(t, loud.entries, 1)
	require.Equal(t, LevelInfo, loud.entries[0].level)
	require.Equal(t, "x=5", loud.entries[0].msg)
	require.Empty(t, quiet.entries)

	l.Message(LevelCritical, "y=%d", 7)
	require.Len(t, loud.entries, 2)
	require.Len(t, quiet.entries, 1)
	require.Equal(t, "y=7", quiet.entries[0].msg)
}

func TestMessageTruncates(t *testing.T) {
	t.Parallel()

	l, err := NewBuilder().WithMaxMessageLength(8).WithoutConsole().Build()
	require.NoError(t, err)
	rec := &recorder{}
	require.NoError(t, l.Subscribe("rec", rec, LevelTrace))

	l.Message(LevelInfo, "%s", strings.Repeat("a", 40))
	require.Len(t, rec.entries, 1)
	require.Equal(t, strings.Repeat("a", 8), rec.entries[0].msg)

	// A later short message is unaffected by the earlier overflow.
	l.Message(LevelInfo, "ok")
	require.Equal(t, "ok", rec.entries[1].msg)
}

func TestMessageNeverFails(t *testing.T) {
	t.Parallel()

	l := newTestLogger(t, 2)
	rec := &recorder{}
	require.NoError(t, l.Subscribe("rec", rec, LevelTrace))

	// Mismatched verb: delivered with fmt's error annotation, not dropped.
	require.NotPanics(t, func() { l.Message(LevelInfo, "x=%d", "oops") })
	require.Len(t, rec.entries, 1)
	require.NotEmpty(t, rec.entries[0].msg)
}

func TestDefaultConsoleDoesNotFireBelowThreshold(t *testing.T) {
	t.Parallel()

	var console bytes.Buffer
	l, err := NewBuilder().
		WithThreshold(LevelWarning).
		WithConsoleWriter(&console).
		Build()
	require.NoError(t, err)

	logA := &recorder{}
	require.NoError(t, l.Subscribe("a", logA, LevelDebug))

	l.Message(LevelInfo, "x=%d", 5)

	require.Len(t, logA.entries, 1)
	require.Equal(t, LevelInfo, logA.entries[0].level)
	require.Equal(t, "x=5", logA.entries[0].msg)
	require.Zero(t, console.Len())

	l.Message(LevelError, "boom")
	require.Contains(t, console.String(), "boom")
}

func TestGlobalFacade(t *testing.T) {
	old := global.Load()
	defer global.Store(old)

	l := newTestLogger(t, 2)
	rec := &recorder{}
	require.NoError(t, l.Subscribe("rec", rec, LevelDebug))
	SetGlobal(l)

	Infof("x=%d", 5)
	Tracef("below threshold")
	require.NoError(t, Subscribe("extra", &recorder{}, LevelInfo))
	require.NoError(t, Unsubscribe("extra"))
	Message(LevelWarning, "w")

	require.Len(t, rec.entries, 2)
	require.Equal(t, recorded{level: LevelInfo, msg: "x=5"}, rec.entries[0])
	require.Equal(t, recorded{level: LevelWarning, msg: "w"}, rec.entries[1])
}

func TestInitResetsRegistry(t *testing.T) {
	old := global.Load()
	defer global.Store(old)

	Init(LevelAlways)
	require.NoError(t, Subscribe("extra", &recorder{}, LevelInfo))
	require.Len(t, L().Subscribers(), 2)

	// Init again: fresh table, only the console remains.
	Init(LevelAlways)
	require.Equal(t, []string{ConsoleName}, L().Subscribers())
}

func TestLPanicsWhenUnset(t *testing.T) {
	old := global.Load()
	defer global.Store(old)

	global.Store(nil)
	require.Panics(t, func() { L() })
}

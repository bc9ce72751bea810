package hclog

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/picolog"
)

func TestForwardsToHclog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(hclog.New(&hclog.LoggerOptions{
		Output: &buf,
		Level:  hclog.Trace,
	}))

	s.Log(picolog.LevelInfo, "x=5")
	require.Contains(t, buf.String(), "[INFO]")
	require.Contains(t, buf.String(), "x=5")

	buf.Reset()
	s.Log(picolog.LevelAlways, "boom")
	require.Contains(t, buf.String(), "[ERROR]")
	require.Contains(t, buf.String(), "boom")
}

func TestLevelMapping(t *testing.T) {
	t.Parallel()

	require.Equal(t, hclog.Trace, mapLevel(picolog.LevelTrace))
	require.Equal(t, hclog.Debug, mapLevel(picolog.LevelDebug))
	require.Equal(t, hclog.Info, mapLevel(picolog.LevelInfo))
	require.Equal(t, hclog.Warn, mapLevel(picolog.LevelWarning))
	require.Equal(t, hclog.Error, mapLevel(picolog.LevelError))
	require.Equal(t, hclog.Error, mapLevel(picolog.LevelCritical))
	require.Equal(t, hclog.Error, mapLevel(picolog.LevelAlways))
}

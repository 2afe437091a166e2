package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]Level{
		"debug": Debug,
		"INFO":  Info,
		"Warn":  Warn,
		"error": Error,
		"fatal": Fatal,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}

func TestStreamSink(t *testing.T) {
	t.Parallel()

	t.Run("filters by logger level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New("app", Warn, NewStreamSink(&buf, Debug))
		l.now = fixedClock

		l.Info("ignored")
		l.Warn("disk at %d%%", 91)
		assert.Equal(t, "[2024-03-01 12:30:00] WARN  [app] disk at 91%\n", buf.String())
	})
	t.Run("filters by sink level", func(t *testing.T) {
		t.Parallel()
		var quiet, loud bytes.Buffer
		l := New("", Debug, NewStreamSink(&quiet, Error), NewStreamSink(&loud, Debug))
		l.now = fixedClock

		l.Debug("details")
		l.Error("boom")
		assert.Equal(t, "[2024-03-01 12:30:00] ERROR boom\n", quiet.String())
		assert.Equal(t, 2, strings.Count(loud.String(), "\n"))
	})
	t.Run("named child shares sinks", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New("app", Info, NewStreamSink(&buf, Info))
		l.now = fixedClock

		l.Named("parser").Info("hello")
		assert.Contains(t, buf.String(), "[app/parser] hello")
	})
}

func TestFileSink(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l := New("app", Debug, NewFileSink(path, Info, nil))
	l.now = fixedClock

	l.Debug("dropped")
	l.Info("starting application")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var got record
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, record{
		Timestamp: "2024-03-01 12:30:00",
		Level:     "INFO",
		Logger:    "app",
		Message:   "starting application",
	}, got)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	l := Discard()
	assert.False(t, l.Enabled(Fatal))
	l.Fatal("nothing happens")
	require.NoError(t, l.Close())
}

func TestSinkWithoutDestination(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New("app", Debug, Sink{}, Sink{kind: FileSink}, NewStreamSink(&buf, Debug))
	l.now = fixedClock

	require.NotPanics(t, func() { l.Info("still delivered") })
	assert.Equal(t, "[2024-03-01 12:30:00] INFO  [app] still delivered\n", buf.String())
	require.NoError(t, l.Close())
}

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"component": "stackcards", "cards": 5})
	log.Info("widget mounted")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "widget mounted", entry["message"])
	require.Equal(t, "stackcards", entry["component"])
	require.EqualValues(t, 5, entry["cards"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerWithSingleField(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("active_index", 2).Debug("active index changed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.EqualValues(t, 2, entry["active_index"])
	require.Equal(t, "debug", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	require.False(t, log.Enabled(zerolog.DebugLevel))
	require.True(t, log.Enabled(zerolog.WarnLevel))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"file": "deck.yaml"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "deck.yaml", entry["file"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Warn("cooldown restarted")
	require.Contains(t, buf.String(), "cooldown restarted")
	require.Contains(t, buf.String(), "WRN")
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSilent(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.Debug("ignored")
		nilLogger.Warn("ignored")
		nilLogger.Error(errors.New("ignored"), "ignored")
	})
	require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
	require.Nil(t, nilLogger.With("a", 1))
	require.False(t, nilLogger.Enabled(zerolog.ErrorLevel))

	require.False(t, Nop().Enabled(zerolog.ErrorLevel))
	require.NotPanics(t, func() { Nop().Info("ignored") })
}

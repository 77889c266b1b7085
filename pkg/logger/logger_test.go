package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestNewWithWriter_RunIDExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo, RunIDExtractor)

	log.InfoContext(WithRunID(context.Background(), "run-1"), "email sent", slog.String("name", "Tosh"))
	log.InfoContext(context.Background(), "no run")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	require.Equal(t, "run-1", lines[0]["run_id"])
	require.Equal(t, "Tosh", lines[0]["name"])
	require.NotContains(t, lines[1], "run_id")
}

func TestNewWithWriter_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelWarn)

	log.Info("dropped")
	log.Warn("kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "kept", lines[0]["msg"])
}

func TestRunIDFromContext_Empty(t *testing.T) {
	t.Parallel()

	_, ok := RunIDFromContext(WithRunID(context.Background(), ""))
	require.False(t, ok)

	_, ok = RunIDFromContext(context.Background())
	require.False(t, ok)
}

func TestNewLogHandlerDecorator_SkipsNilExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewLogHandlerDecorator(jsonHandler(&buf, slog.LevelInfo), nil, RunIDExtractor, nil)
	log := slog.New(h).With(slog.String("component", "dispatch"))

	log.InfoContext(WithRunID(context.Background(), "run-2"), "hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "dispatch", lines[0]["component"])
	require.Equal(t, "run-2", lines[0]["run_id"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelInfo, ParseLevel("INFO"))
	require.Equal(t, slog.LevelWarn, ParseLevel(" warn "))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestLogHandlerDecorator_ExplicitAttrWins(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo, RunIDExtractor)

	log.InfoContext(WithRunID(context.Background(), "from-ctx"), "hello", slog.String("run_id", "explicit"))

	raw := buf.String()
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "explicit", lines[0]["run_id"])
	require.Equal(t, 1, strings.Count(raw, `"run_id"`))
}

func TestSentryConfig_Levels(t *testing.T) {
	t.Parallel()

	events, logs := SentryConfig{MinLevel: slog.LevelWarn}.levels()
	require.Equal(t, []slog.Level{slog.LevelError}, events)
	require.Equal(t, []slog.Level{slog.LevelWarn, slog.LevelError}, logs)

	_, logs = SentryConfig{MinLevel: slog.LevelError}.levels()
	require.Equal(t, []slog.Level{slog.LevelError}, logs)
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("boom") }

func TestMultiHandler_DeliversPastFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	failing := failingHandler{Handler: jsonHandler(&bytes.Buffer{}, slog.LevelInfo)}
	h := newMultiHandler(failing, jsonHandler(&buf, slog.LevelInfo))

	err := h.Handle(context.Background(), slog.NewRecord(testTime, slog.LevelInfo, "hello", 0))

	require.EqualError(t, err, "boom")
	require.Len(t, decodeLines(t, &buf), 1)
}

func TestNewWithSentry_NoDSNFallsBack(t *testing.T) {
	t.Parallel()

	log := NewWithSentry(SentryConfig{Level: slog.LevelInfo})

	require.NotNil(t, log)
	require.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	require.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	require.False(t, NewNope().Enabled(context.Background(), slog.LevelError))
}
var testTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

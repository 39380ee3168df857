package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLog_WritesCategorizedEntry(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	Info(CatAPI, "request finished", "status", 201, "id", "abc")

	out := buf.String()
	require.Contains(t, out, "[INFO] [api] request finished")
	require.Contains(t, out, "status=201")
	require.Contains(t, out, "id=abc")
}

func TestLog_OddFieldCount(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	Warn(CatApp, "dangling", "orphan")

	require.Contains(t, buf.String(), "orphan=<missing>")
}

func TestLog_MinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	SetMinLevel(LevelWarn)
	Debug(CatUI, "hidden")
	Info(CatUI, "hidden too")
	Warn(CatUI, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestLog_Disabled(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	SetEnabled(false)
	Error(CatAPI, "nothing")

	require.Empty(t, buf.String())
}

func TestLog_ErrorErr(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	ErrorErr(CatAPI, "list failed", errors.New("connection refused"))
	ErrorErr(CatAPI, "nil error", nil)

	require.Contains(t, buf.String(), "error=connection refused")
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_NoLoggerIsSilent(t *testing.T) {
	defaultLogger = nil
	require.NotPanics(t, func() {
		Info(CatApp, "no logger")
	})
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"", LevelDebug},
		{"debug", LevelDebug},
		{" Info ", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	require.ErrorContains(t, err, "verbose")
}

func TestFormatEntry(t *testing.T) {
	at := time.Date(2026, 10, 14, 10, 45, 0, 0, time.UTC)
	got := formatEntry(at, LevelWarn, CatApp, "toast dismissed", []any{"seq", 3, "stale"})
	require.Equal(t, "2026-10-14T10:45:00 [WARN] [app] toast dismissed seq=3 stale=<missing>\n", got)
}

func TestInit_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Init(path, "talentdb", LevelInfo)
	require.NoError(t, err)
	t.Cleanup(func() { defaultLogger = nil })

	Debug(CatConfig, "below threshold")
	Info(CatConfig, "loaded", "path", "config.yaml")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] loaded path=config.yaml")
	require.NotContains(t, string(data), "below threshold")
}

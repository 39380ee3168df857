// Package log writes categorized debug entries for talentdb.
//
// Entries only ever go to a file, never to the terminal the TUI draws on.
// Nothing is written until Init (or InitWriter in tests) installs a sink.
package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level orders entries by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if l < LevelDebug || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel maps a level name such as "warn" to its Level.
// Blank input means LevelDebug.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LevelDebug, nil
	}
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelDebug, fmt.Errorf("unknown log level %q", s)
}

// Category tags an entry with the part of the client that produced it.
type Category string

const (
	CatAPI    Category = "api"    // REST calls
	CatConfig Category = "config" // config loading and edits
	CatUI     Category = "ui"
	CatApp    Category = "app"   // controller events
	CatTrace  Category = "trace" // tracing provider lifecycle
)

const timeLayout = "2006-01-02T15:04:05"

type sink struct {
	mu       sync.Mutex
	w        io.Writer
	enabled  bool
	minLevel Level
}

var defaultLogger *sink

// Init opens path through tea.LogToFile and installs it as the log sink.
// The returned func closes the file.
func Init(path, prefix string, minLevel Level) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}
	defaultLogger = &sink{w: f, enabled: true, minLevel: minLevel}
	return func() { _ = f.Close() }, nil
}

// InitWriter sends entries to w at LevelDebug.
func InitWriter(w io.Writer) {
	defaultLogger = &sink{w: w, enabled: true, minLevel: LevelDebug}
}

// SetEnabled pauses or resumes output.
func SetEnabled(enabled bool) {
	withSink(func(s *sink) { s.enabled = enabled })
}

// SetMinLevel drops entries below level.
func SetMinLevel(level Level) {
	withSink(func(s *sink) { s.minLevel = level })
}

func withSink(fn func(*sink)) {
	s := defaultLogger
	if s == nil {
		return
	}
	s.mu.Lock()
	fn(s)
	s.mu.Unlock()
}

func Debug(cat Category, msg string, fields ...any) { write(LevelDebug, cat, msg, fields) }

func Info(cat Category, msg string, fields ...any) { write(LevelInfo, cat, msg, fields) }

func Warn(cat Category, msg string, fields ...any) { write(LevelWarn, cat, msg, fields) }

func Error(cat Category, msg string, fields ...any) { write(LevelError, cat, msg, fields) }

// ErrorErr logs at LevelError with err attached as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	text := "<nil>"
	if err != nil {
		text = err.Error()
	}
	write(LevelError, cat, msg, append(fields, "error", text))
}

func write(level Level, cat Category, msg string, fields []any) {
	s := defaultLogger
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled || level < s.minLevel || s.w == nil {
		return
	}
	_, _ = io.WriteString(s.w, formatEntry(time.Now(), level, cat, msg, fields))
}

// formatEntry renders one line:
//
//	2026-10-14T10:45:00 [ERROR] [api] create failed status=400 error=...
func formatEntry(at time.Time, level Level, cat Category, msg string, fields []any) string {
	var b strings.Builder
	b.WriteString(at.Format(timeLayout))
	fmt.Fprintf(&b, " [%s] [%s] %s", level, cat, msg)
	for i := 0; i < len(fields); i += 2 {
		if i+1 == len(fields) {
			fmt.Fprintf(&b, " %v=<missing>", fields[i])
			break
		}
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	b.WriteByte('\n')
	return b.String()
}

// Package log provides structured logging for the text input host.
// It writes through tea.LogToFile with level, category and timestamp, and
// stays silent until Init, InitWithTeaLog or InitWriter is called.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info", "":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

// Category groups related log messages.
type Category string

const (
	CatChannel Category = "channel" // method calls and outbound messages
	CatEditor  Category = "editor"  // key handling and clipboard
	CatConfig  Category = "config"  // configuration loading
	CatApp     Category = "app"     // program lifecycle
)

type logger struct {
	mu       sync.Mutex
	file     io.Closer
	writer   io.Writer
	enabled  bool
	minLevel Level
}

var (
	mu            sync.Mutex
	defaultLogger *logger
)

func install(l *logger) func() {
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
	return func() {
		mu.Lock()
		if defaultLogger == l {
			defaultLogger = nil
		}
		mu.Unlock()
		if l.file != nil {
			_ = l.file.Close()
		}
	}
}

// Init opens path for appending and makes it the log destination.
// The returned function closes the file.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G304: user-selected log path
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return install(&logger{file: f, writer: f, enabled: true, minLevel: LevelDebug}), nil
}

// InitWithTeaLog uses tea.LogToFile for initialization.
func InitWithTeaLog(path string, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}
	return install(&logger{file: f, writer: f, enabled: true, minLevel: LevelDebug}), nil
}

// InitWriter logs to w. It is meant for tests and embedding hosts.
func InitWriter(w io.Writer) func() {
	return install(&logger{writer: w, enabled: true, minLevel: LevelDebug})
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func current() *logger {
	mu.Lock()
	defer mu.Unlock()
	return defaultLogger
}

func write(level Level, cat Category, msg string, fields ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.minLevel || l.writer == nil {
		return
	}

	// 2026-01-02T15:04:05 [INFO] [channel] message key=value
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] [%s] %s", time.Now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&sb, " %v=<missing>", fields[len(fields)-1])
	}
	sb.WriteByte('\n')
	_, _ = io.WriteString(l.writer, sb.String())
}

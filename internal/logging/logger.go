// Package logging provides the activity logger for cursorwatch.
//
// Every line has the shape "[<timestamp>] <message>" with the same
// millisecond-precision timestamp layout the cursor model uses. Levels
// filter which messages are written; they do not change the line shape.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// timestampLayout matches cursor.TimestampLayout; milliseconds are
// truncated, never rounded.
const timestampLayout = "2006-01-02 15:04:05.000"

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is for detailed diagnostics, e.g. skipped ticks.
	LevelDebug Level = iota
	// LevelInfo is for activity lines.
	LevelInfo
	// LevelWarn is for recoverable problems.
	LevelWarn
	// LevelError is for failures.
	LevelError
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name. Unrecognized names fall back to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO":
		return LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes timestamped activity lines.
type Logger struct {
	mu       sync.Mutex
	level    Level
	out      io.Writer
	now      func() time.Time
	disabled bool
}

// New creates a logger writing to out at the given minimum level.
// A nil out defaults to os.Stderr.
func New(out io.Writer, level Level) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level: level,
		out:   out,
		now:   time.Now,
	}
}

// Nop returns a logger that discards everything. Useful in tests.
func Nop() *Logger {
	return &Logger{disabled: true, now: time.Now}
}

// SetLevel sets the minimum level to write.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// Debugf logs a debug message.
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

// Infof logs an info message.
func (l *Logger) Infof(format string, args ...any) {
	l.logf(LevelInfo, format, args...)
}

// Warnf logs a warning message.
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(LevelWarn, format, args...)
}

// Errorf logs an error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(LevelError, format, args...)
}

func (l *Logger) logf(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disabled || level < l.level {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	line := fmt.Sprintf("[%s] %s\n", l.now().Format(timestampLayout), msg)
	_, _ = l.out.Write([]byte(line))
}

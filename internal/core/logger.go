package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Logger is the leveled logging surface injected into simulations and
// frontends.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// LogLevel represents the logging level.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a case-insensitive level name. Unknown names map to info.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// StdLogger filters messages by level and writes them through a *log.Logger.
type StdLogger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a logger writing to w (stderr when nil) at the given level.
func NewLogger(level string, w io.Writer) *StdLogger {
	if w == nil {
		w = os.Stderr
	}
	return &StdLogger{
		level: ParseLogLevel(level),
		out:   log.New(w, "", log.LstdFlags),
	}
}

// Level reports the active threshold.
func (l *StdLogger) Level() LogLevel { return l.level }

func (l *StdLogger) logf(level LogLevel, format string, v ...any) {
	if level < l.level {
		return
	}
	l.out.Printf("[%s] %s", strings.ToUpper(level.String()), fmt.Sprintf(format, v...))
}

func (l *StdLogger) Debugf(format string, v ...any) { l.logf(LogLevelDebug, format, v...) }
func (l *StdLogger) Infof(format string, v ...any)  { l.logf(LogLevelInfo, format, v...) }
func (l *StdLogger) Warnf(format string, v ...any)  { l.logf(LogLevelWarn, format, v...) }
func (l *StdLogger) Errorf(format string, v ...any) { l.logf(LogLevelError, format, v...) }

// NopLogger discards everything. Useful for tests and headless tools.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

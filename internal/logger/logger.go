// Package logger provides the leveled logger used across macroplate. It is
// silent unless a log file is configured, so it never draws over the TUI.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents a log level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of a log level
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

// ParseLevel parses a log level string
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

// Logger is a leveled logger writing to a file or discarding output.
type Logger struct {
	mu     sync.Mutex
	level  Level
	logger *log.Logger
	file   *os.File
	prefix string
}

// Default is the process-wide logger used by the package-level functions.
var Default *Logger

func init() {
	Default = New()
}

// New creates a logger configured from MACROPLATE_LOG_LEVEL and
// MACROPLATE_LOG_FILE.
func New() *Logger {
	l := &Logger{
		level:  LevelInfo,
		logger: log.New(io.Discard, "", log.LstdFlags),
	}
	_ = l.Configure(os.Getenv("MACROPLATE_LOG_LEVEL"), os.Getenv("MACROPLATE_LOG_FILE"))
	return l
}

// Configure applies a level and log file. Empty values leave the current
// setting in place. An unparseable level is reported but the file is still
// opened.
func (l *Logger) Configure(level, file string) error {
	var levelErr error
	if level != "" {
		lv, err := ParseLevel(level)
		if err != nil {
			levelErr = err
		} else {
			l.SetLevel(lv)
		}
	}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		l.mu.Lock()
		if l.file != nil {
			_ = l.file.Close()
		}
		l.file = f
		l.logger.SetOutput(f)
		l.mu.Unlock()
	}
	return levelErr
}

// With returns a logger sharing this logger's output that tags every line
// with component.
func (l *Logger) With(component string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		level:  l.level,
		logger: l.logger,
		prefix: l.prefix + "[" + component + "] ",
	}
}

// Close closes the logger and any open file handles
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.logger.SetOutput(io.Discard)
		return err
	}
	return nil
}

// SetLevel sets the log level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput sets the output writer
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...any) {
	l.log(LevelDebug, format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...any) {
	l.log(LevelInfo, format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...any) {
	l.log(LevelWarn, format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...any) {
	l.log(LevelError, format, v...)
}

func (l *Logger) log(level Level, format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	l.logger.Printf("[%s] %s%s", level, l.prefix, fmt.Sprintf(format, v...))
}

// Debug logs a debug message using the default logger
func Debug(format string, v ...any) {
	Default.Debug(format, v...)
}

// Info logs an info message using the default logger
func Info(format string, v ...any) {
	Default.Info(format, v...)
}

// Warn logs a warning message using the default logger
func Warn(format string, v ...any) {
	Default.Warn(format, v...)
}

// Error logs an error message using the default logger
func Error(format string, v ...any) {
	Default.Error(format, v...)
}

// Configure applies level and file to the default logger.
func Configure(level, file string) error {
	return Default.Configure(level, file)
}

// Close closes the default logger
func Close() error {
	return Default.Close()
}

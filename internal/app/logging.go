package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) logrus() logrus.Level {
	switch l {
	case LogLevelDebug:
		return logrus.DebugLevel
	case LogLevelWarn:
		return logrus.WarnLevel
	case LogLevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// ParseLogLevel parses a string into a LogLevel. Unknown names map to
// LogLevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error", "fatal", "panic":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger provides structured logging for the application.
// It is safe for concurrent use.
type Logger struct {
	entry  *logrus.Entry
	closer io.Closer
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level LogLevel
	// Output is where logs are written. Nil discards output.
	Output io.Writer
	// Session identifies the editing session. Empty generates a new id.
	Session string
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}
	if cfg.Session == "" {
		cfg.Session = uuid.NewString()
	}

	base := logrus.New()
	base.SetOutput(cfg.Output)
	base.SetLevel(cfg.Level.logrus())
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})

	return &Logger{entry: base.WithField("session", cfg.Session)}
}

// OpenLogger creates a logger that appends to the file at path. An empty
// path returns a logger that discards output.
func OpenLogger(path string, level LogLevel) (*Logger, error) {
	if path == "" {
		return NewLogger(LoggerConfig{Level: level}), nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, NewOperationError("open log", path, err)
	}

	l := NewLogger(LoggerConfig{Level: level, Output: f})
	l.closer = f
	return l, nil
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value), closer: l.closer}
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields)), closer: l.closer}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// Entry returns the underlying logrus entry for packages that take a
// logrus.FieldLogger.
func (l *Logger) Entry() *logrus.Entry {
	return l.entry
}

// Session returns the session id carried by the logger.
func (l *Logger) Session() string {
	s, _ := l.entry.Data["session"].(string)
	return s
}

// SetLevel changes the minimum log level.
func (l *Logger) SetLevel(level LogLevel) {
	l.entry.Logger.SetLevel(level.logrus())
}

// Debug logs a debug message. Args are applied with fmt.Sprintf.
func (l *Logger) Debug(msg string, args ...any) {
	l.entry.Debug(format(msg, args))
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.entry.Info(format(msg, args))
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.entry.Warn(format(msg, args))
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.entry.Error(format(msg, args))
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func format(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// NullLogger is a logger that discards all output.
var NullLogger = NewLogger(LoggerConfig{Session: "null"})

var (
	appLoggerMu sync.Mutex
	appLogger   *Logger
)

// GetLogger returns the application logger, or NullLogger if none is set.
func GetLogger() *Logger {
	appLoggerMu.Lock()
	defer appLoggerMu.Unlock()
	if appLogger == nil {
		return NullLogger
	}
	return appLogger
}

// SetLogger sets the application-wide logger.
func SetLogger(l *Logger) {
	appLoggerMu.Lock()
	defer appLoggerMu.Unlock()
	appLogger = l
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	if app.log == nil {
		return GetLogger()
	}
	return app.log
}

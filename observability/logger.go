// Package observability provides the logging interface shared by all
// promptlab components.
package observability

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

const (
	// ErrorLogField is the key used for error fields in logs
	ErrorLogField string = "error"
)

// Logger interface - defines the common logging methods
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})

	WithFields(fields map[string]interface{}) Logger
	WithErr(err error) Logger
}

// DefaultLogger - a basic implementation using Go's standard log package
type DefaultLogger struct {
	*log.Logger
	fields map[string]interface{}
	err    error
}

// NewDefaultLogger creates a new DefaultLogger that logs to standard output
func NewDefaultLogger() Logger {
	return &DefaultLogger{
		Logger: log.New(os.Stdout, "", log.LstdFlags),
		fields: make(map[string]interface{}),
	}
}

// Debug logs at debug level
func (l *DefaultLogger) Debug(args ...interface{}) { l.output("DEBUG", fmt.Sprint(args...)) }

// Info logs at info level
func (l *DefaultLogger) Info(args ...interface{}) { l.output("INFO", fmt.Sprint(args...)) }

// Warn logs at warn level
func (l *DefaultLogger) Warn(args ...interface{}) { l.output("WARN", fmt.Sprint(args...)) }

// Error logs at error level
func (l *DefaultLogger) Error(args ...interface{}) { l.output("ERROR", fmt.Sprint(args...)) }

// Debugf logs a formatted message at debug level
func (l *DefaultLogger) Debugf(format string, args ...interface{}) {
	l.output("DEBUG", fmt.Sprintf(format, args...))
}

// Infof logs a formatted message at info level
func (l *DefaultLogger) Infof(format string, args ...interface{}) {
	l.output("INFO", fmt.Sprintf(format, args...))
}

// Warnf logs a formatted message at warn level
func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	l.output("WARN", fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at error level
func (l *DefaultLogger) Errorf(format string, args ...interface{}) {
	l.output("ERROR", fmt.Sprintf(format, args...))
}

// WithFields - allows adding structured fields to the log
func (l *DefaultLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &DefaultLogger{Logger: l.Logger, fields: merged, err: l.err}
}

// WithErr - allows adding an error to the log
func (l *DefaultLogger) WithErr(err error) Logger {
	return &DefaultLogger{Logger: l.Logger, fields: l.fields, err: err}
}

func (l *DefaultLogger) output(level, message string) {
	var parts []string
	for k, v := range l.fields {
		parts = append(parts, fmt.Sprintf("%v=%v", k, v))
	}
	if l.err != nil {
		parts = append(parts, fmt.Sprintf("%s=%v", ErrorLogField, l.err))
	}

	prefix := ""
	if len(parts) > 0 {
		prefix = fmt.Sprintf("[%s] ", strings.Join(parts, " "))
	}

	l.Logger.Printf("%s[%s] %s", prefix, level, message)
}

// NullLogger - a logger that does nothing
type NullLogger struct{}

// NewNullLogger creates a new NullLogger
func NewNullLogger() Logger {
	return &NullLogger{}
}

// Debug is a no-op for NullLogger
func (l *NullLogger) Debug(args ...interface{}) {}

// Info is a no-op for NullLogger
func (l *NullLogger) Info(args ...interface{}) {}

// Warn is a no-op for NullLogger
func (l *NullLogger) Warn(args ...interface{}) {}

// Error is a no-op for NullLogger
func (l *NullLogger) Error(args ...interface{}) {}

// Debugf is a no-op for NullLogger
func (l *NullLogger) Debugf(format string, args ...interface{}) {}

// Infof is a no-op for NullLogger
func (l *NullLogger) Infof(format string, args ...interface{}) {}

// Warnf is a no-op for NullLogger
func (l *NullLogger) Warnf(format string, args ...interface{}) {}

// Errorf is a no-op for NullLogger
func (l *NullLogger) Errorf(format string, args ...interface{}) {}

// WithFields is a no-op for NullLogger
func (l *NullLogger) WithFields(fields map[string]interface{}) Logger { return l }

// WithErr is a no-op for NullLogger
func (l *NullLogger) WithErr(err error) Logger { return l }

// LogrusLogger implements the Logger interface using logrus
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger creates a new LogrusLogger with the provided logrus.Logger
func NewLogrusLogger(logger *logrus.Logger) Logger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusLogger{
		entry: logrus.NewEntry(logger),
	}
}

// Debug log for LogrusLogger
func (l *LogrusLogger) Debug(args ...interface{}) { l.entry.Debug(args...) }

// Info log for LogrusLogger
func (l *LogrusLogger) Info(args ...interface{}) { l.entry.Info(args...) }

// Warn log for LogrusLogger
func (l *LogrusLogger) Warn(args ...interface{}) { l.entry.Warn(args...) }

// Error log for LogrusLogger
func (l *LogrusLogger) Error(args ...interface{}) { l.entry.Error(args...) }

// Debugf log for LogrusLogger
func (l *LogrusLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

// Infof log for LogrusLogger
func (l *LogrusLogger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }

// Warnf log for LogrusLogger
func (l *LogrusLogger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }

// Errorf log for LogrusLogger
func (l *LogrusLogger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// WithFields adds fields to the logger and returns a new LogrusLogger
func (l *LogrusLogger) WithFields(fields map[string]interface{}) Logger {
	return &LogrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithErr adds an error to the logger and returns a new LogrusLogger
func (l *LogrusLogger) WithErr(err error) Logger {
	return &LogrusLogger{entry: l.entry.WithError(err)}
}

// ZapLogger implements the Logger interface using uber-go/zap
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger creates a new ZapLogger with the provided zap.Logger
func NewZapLogger(logger *zap.Logger) Logger {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &ZapLogger{
		sugar: logger.Sugar(),
	}
}

// Debug log for ZapLogger
func (l *ZapLogger) Debug(args ...interface{}) { l.sugar.Debug(args...) }

// Info log for ZapLogger
func (l *ZapLogger) Info(args ...interface{}) { l.sugar.Info(args...) }

// Warn log for ZapLogger
func (l *ZapLogger) Warn(args ...interface{}) { l.sugar.Warn(args...) }

// Error log for ZapLogger
func (l *ZapLogger) Error(args ...interface{}) { l.sugar.Error(args...) }

// Debugf log for ZapLogger
func (l *ZapLogger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }

// Infof log for ZapLogger
func (l *ZapLogger) Infof(format string, args ...interface{}) { l.sugar.Infof(format, args...) }

// Warnf log for ZapLogger
func (l *ZapLogger) Warnf(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }

// Errorf log for ZapLogger
func (l *ZapLogger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// WithFields adds fields to the logger and returns a new ZapLogger
func (l *ZapLogger) WithFields(fields map[string]interface{}) Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &ZapLogger{sugar: l.sugar.With(args...)}
}

// WithErr adds an error to the logger and returns a new ZapLogger
func (l *ZapLogger) WithErr(err error) Logger {
	return &ZapLogger{sugar: l.sugar.With(ErrorLogField, err)}
}

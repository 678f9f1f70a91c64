// Package log provides the logger used across the emulator core. It wraps
// logrus so that every component logs through the same structured
// interface instead of reaching for fmt.Printf.
package log

import "github.com/sirupsen/logrus"

// Logger is the logging surface components depend on. Keeping it as an
// interface (rather than *logrus.Logger) lets tests substitute NewNull.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a logrus-backed Logger with plain, timestamp-free output
// suitable for terminal emulation sessions.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: true,
		DisableSorting:   true,
	}
	return &logrusLogger{l}
}

type logrusLogger struct {
	l *logrus.Logger
}

func (lg *logrusLogger) Infof(format string, args ...interface{})  { lg.l.Infof(format, args...) }
func (lg *logrusLogger) Warnf(format string, args ...interface{})  { lg.l.Warnf(format, args...) }
func (lg *logrusLogger) Errorf(format string, args ...interface{}) { lg.l.Errorf(format, args...) }
func (lg *logrusLogger) Debugf(format string, args ...interface{}) { lg.l.Debugf(format, args...) }

// nullLogger discards everything. Used by tests and by embedders that
// want silent operation.
type nullLogger struct{}

// NewNull returns a Logger that discards all output.
func NewNull() Logger { return nullLogger{} }

func (nullLogger) Infof(string, ...interface{})  {}
func (nullLogger) Warnf(string, ...interface{})  {}
func (nullLogger) Errorf(string, ...interface{}) {}
func (nullLogger) Debugf(string, ...interface{}) {}

// ABOUTME: Logrus-backed implementation of the core Logger interface
// ABOUTME: Structured fields map directly onto logrus fields

package logrus

import (
	"os"

	"github.com/sirupsen/logrus"

	"newsverify-api/core/interfaces"
)

// Logger implements the core Logger interface on top of logrus.
type Logger struct {
	log *logrus.Logger
}

// New creates a logger writing structured entries to stdout. The level
// string accepts the usual logrus names; unknown values fall back to info.
func New(level string) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return &Logger{log: log}
}

var _ interfaces.Logger = (*Logger)(nil)

// Debug logs a debug message with structured fields
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}

package tracing

import (
	"go.uber.org/zap"
)

// log struct expected by jaeger client logger
type log struct {
	l *zap.SugaredLogger
}

// Error implements error reporter required by jaeger client
func (l *log) Error(msg string) {
	l.l.Error(msg)
}

// Infof logs a message at info priority. Required by jaeger client
func (l *log) Infof(msg string, args ...interface{}) {
	l.l.Infof(msg, args...)
}

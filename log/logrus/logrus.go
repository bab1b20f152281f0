// Package logrus adapts a *logrus.Entry to codecs.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/codecs"
)

var _ codecs.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New derives an entry tagged component=codecs from l.
func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: l.WithField("component", "codecs")}
}

func (l LogrusLogger) Debug(msg string, f codecs.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f codecs.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f codecs.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f codecs.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}

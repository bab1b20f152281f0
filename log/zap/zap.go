// Package zap adapts a *zap.Logger to codecs.Logger.
package zap

import (
	"github.com/unkn0wn-root/codecs"
	"go.uber.org/zap"
)

var _ codecs.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

// New names the logger "codecs" so codec events are easy to filter.
func New(l *zap.Logger) ZapLogger { return ZapLogger{L: l.Named("codecs")} }

func (z ZapLogger) Debug(msg string, f codecs.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f codecs.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f codecs.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f codecs.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f codecs.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}

//go:build go1.21

package slog

import (
	"context"
	stdslog "log/slog"
	"sort"
	"sync/atomic"

	"github.com/unkn0wn-root/codecs"
)

var _ codecs.Logger = (*Logger)(nil)

type Options struct {
	// Sampling to avoid floods from hot codecs; 0/1 = log every debug event.
	// Info and above are never sampled.
	DebugEvery uint64
	// Group nests all fields under this attribute group when non-empty.
	Group string
}

type Logger struct {
	l    *stdslog.Logger
	opts Options

	debugCtr atomic.Uint64
}

func New(l *stdslog.Logger, opts Options) *Logger {
	return &Logger{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (s *Logger) Debug(msg string, f codecs.Fields) {
	if !sample(s.opts.DebugEvery, &s.debugCtr) {
		return
	}
	s.log(stdslog.LevelDebug, msg, f)
}
func (s *Logger) Info(msg string, f codecs.Fields)  { s.log(stdslog.LevelInfo, msg, f) }
func (s *Logger) Warn(msg string, f codecs.Fields)  { s.log(stdslog.LevelWarn, msg, f) }
func (s *Logger) Error(msg string, f codecs.Fields) { s.log(stdslog.LevelError, msg, f) }

func (s *Logger) log(level stdslog.Level, msg string, f codecs.Fields) {
	if s.l == nil {
		return
	}
	ctx := context.Background()
	if !s.l.Enabled(ctx, level) {
		return
	}
	as := attrs(f)
	if s.opts.Group != "" && len(as) > 0 {
		args := make([]any, len(as))
		for i, a := range as {
			args[i] = a
		}
		as = []stdslog.Attr{stdslog.Group(s.opts.Group, args...)}
	}
	s.l.LogAttrs(ctx, level, msg, as...)
}

// attrs converts f in key order so output is stable.
func attrs(f codecs.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]stdslog.Attr, 0, len(f))
	for _, k := range keys {
		out = append(out, stdslog.Any(k, f[k]))
	}
	return out
}

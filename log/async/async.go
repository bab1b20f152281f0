// Package async delivers codec log events on background workers.
//
// usage:
//
//	raw := slog.New(stdslog.Default(), slog.Options{DebugEvery: 10})
//	l := async.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer l.Close()
//
//	chain.SetLogger(l)
package async

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/codecs"
)

// Logger moves delivery off the encode/decode path. Events are queued and
// handed to inner by background workers; when the queue is full the event
// is dropped and counted.
type Logger struct {
	inner codecs.Logger
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ codecs.Logger = (*Logger)(nil)

func New(inner codecs.Logger, workers, qlen int) *Logger {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	l := &Logger{inner: inner, q: make(chan func(), qlen)}
	l.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer l.wg.Done()
			for f := range l.q {
				f()
			}
		}()
	}
	return l
}

// Close stops accepting events and waits until queued ones are delivered.
func (l *Logger) Close() {
	l.once.Do(func() {
		l.mu.Lock()
		l.closed = true
		close(l.q)
		l.mu.Unlock()
		l.wg.Wait()
	})
}

// Dropped reports how many events were discarded.
func (l *Logger) Dropped() uint64 { return l.dropped.Load() }

func (l *Logger) try(f func()) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		l.dropped.Add(1)
		return
	}
	select {
	case l.q <- f:
	default: // drop
		l.dropped.Add(1)
	}
}

func (l *Logger) Debug(msg string, f codecs.Fields) { l.try(func() { l.inner.Debug(msg, f) }) }
func (l *Logger) Info(msg string, f codecs.Fields)  { l.try(func() { l.inner.Info(msg, f) }) }
func (l *Logger) Warn(msg string, f codecs.Fields)  { l.try(func() { l.inner.Warn(msg, f) }) }
func (l *Logger) Error(msg string, f codecs.Fields) { l.try(func() { l.inner.Error(msg, f) }) }

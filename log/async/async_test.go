package async

import (
	"sync"
	"testing"

	"github.com/unkn0wn-root/codecs"
)

type countLogger struct {
	mu   sync.Mutex
	msgs []string
	gate chan struct{}
}

func (c *countLogger) rec(msg string) {
	if c.gate != nil {
		<-c.gate
	}
	c.mu.Lock()
	c.msgs = append(c.msgs, msg)
	c.mu.Unlock()
}

func (c *countLogger) Debug(msg string, _ codecs.Fields) { c.rec(msg) }
func (c *countLogger) Info(msg string, _ codecs.Fields)  { c.rec(msg) }
func (c *countLogger) Warn(msg string, _ codecs.Fields)  { c.rec(msg) }
func (c *countLogger) Error(msg string, _ codecs.Fields) { c.rec(msg) }

func (c *countLogger) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.msgs)
}

func TestAsyncDeliversOnClose(t *testing.T) {
	inner := &countLogger{}
	l := New(inner, 2, 64)

	c := codecs.Func[string]("id",
		func(s string) (string, error) { return s, nil },
		func(s string) (string, error) { return s, nil })
	c.SetLogger(l)
	for i := 0; i < 10; i++ {
		_, _ = c.Encode("x")
	}
	l.Close()

	if got := inner.count(); got != 20 {
		t.Fatalf("delivered=%d want 20", got)
	}
	if l.Dropped() != 0 {
		t.Fatalf("dropped=%d want 0", l.Dropped())
	}
}

func TestAsyncDropsWhenFull(t *testing.T) {
	inner := &countLogger{gate: make(chan struct{})}
	l := New(inner, 1, 1)

	// the worker blocks on the first event; one more fits in the queue
	for i := 0; i < 10; i++ {
		l.Info("e", nil)
	}
	close(inner.gate)
	l.Close()

	delivered := uint64(inner.count())
	if delivered+l.Dropped() != 10 {
		t.Fatalf("delivered=%d dropped=%d should add up to 10", delivered, l.Dropped())
	}
	if l.Dropped() == 0 {
		t.Fatalf("expected drops with a blocked worker and queue of 1")
	}
}

func TestAsyncAfterCloseDrops(t *testing.T) {
	inner := &countLogger{}
	l := New(inner, 0, 0)
	l.Close()
	l.Close() // idempotent
	l.Warn("late", nil)
	if inner.count() != 0 || l.Dropped() != 1 {
		t.Fatalf("count=%d dropped=%d", inner.count(), l.Dropped())
	}
}

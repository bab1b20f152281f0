package codecs

import (
	"strings"
	"sync"
)

type logEntry struct {
	level string
	msg   string
	f     Fields
}

// recLogger records every event it receives.
type recLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (r *recLogger) add(level, msg string, f Fields) {
	r.mu.Lock()
	r.entries = append(r.entries, logEntry{level: level, msg: msg, f: f})
	r.mu.Unlock()
}

func (r *recLogger) Debug(msg string, f Fields) { r.add("debug", msg, f) }
func (r *recLogger) Info(msg string, f Fields)  { r.add("info", msg, f) }
func (r *recLogger) Warn(msg string, f Fields)  { r.add("warn", msg, f) }
func (r *recLogger) Error(msg string, f Fields) { r.add("error", msg, f) }

func (r *recLogger) byUnit(unit string) []logEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []logEntry
	for _, e := range r.entries {
		if e.f[FieldUnit] == unit {
			out = append(out, e)
		}
	}
	return out
}

func (r *recLogger) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.msg
	}
	return out
}

// upper is lossy: case is not recoverable, so Decode passes through.
type upper struct{}

func (upper) Name() string                      { return "upper" }
func (upper) Encode(s string) (string, error)    { return strings.ToUpper(s), nil }
func (upper) Decode(code string) (string, error) { return code, nil }

// reverse is its own inverse.
type reverse struct{}

func (reverse) Name() string                      { return "reverse" }
func (reverse) Encode(s string) (string, error)    { return rev(s), nil }
func (reverse) Decode(code string) (string, error) { return rev(code), nil }

func rev(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// tag appends a marker on encode and strips it on decode (faithful, not
// commutative with other tags).
func tag(marker string) *Base[string] {
	return Func[string]("tag"+marker,
		func(s string) (string, error) { return s + marker, nil },
		func(code string) (string, error) {
			if !strings.HasSuffix(code, marker) {
				return "", NewDecodeError("tag"+marker, nil)
			}
			return strings.TrimSuffix(code, marker), nil
		})
}

// callLog records the order in which codecs are invoked.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(s string) {
	l.mu.Lock()
	l.calls = append(l.calls, s)
	l.mu.Unlock()
}

func (l *callLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

func (l *callLog) reset() {
	l.mu.Lock()
	l.calls = nil
	l.mu.Unlock()
}

// traced is an identity codec that records its invocations in l.
func traced(name string, l *callLog) *Base[string] {
	return Func[string](name,
		func(s string) (string, error) { l.add(name + ".enc"); return s, nil },
		func(code string) (string, error) { l.add(name + ".dec"); return code, nil })
}

// failing returns err from the given direction.
func failing(name string, encErr, decErr error, l *callLog) *Base[string] {
	return Func[string](name,
		func(s string) (string, error) {
			l.add(name + ".enc")
			if encErr != nil {
				return "", encErr
			}
			return s, nil
		},
		func(code string) (string, error) {
			l.add(name + ".dec")
			if decErr != nil {
				return "", decErr
			}
			return code, nil
		})
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

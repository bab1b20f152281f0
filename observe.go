package codecs

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unicode/utf8"
)

var lastID atomic.Uint64

func nextID() uint64 { return lastID.Add(1) }

// loggerRef holds the optional logger of a single codec instance.
type loggerRef struct {
	mu sync.RWMutex
	l  Logger
}

func (r *loggerRef) get() Logger {
	r.mu.RLock()
	l := r.l
	r.mu.RUnlock()
	return l
}

func (r *loggerRef) set(l Logger) {
	r.mu.Lock()
	r.l = l
	r.mu.Unlock()
}

func typeTag(v any) string { return fmt.Sprintf("%T", v) }

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// observeEncode runs fn between the pre-encode and post-encode events.
// Errors from fn are returned as is and suppress the post event.
func observeEncode[V any](ref *loggerRef, unit string, v V, fn func(V) (string, error)) (string, error) {
	l := ref.get()
	if l != nil {
		l.Debug("pre-encode", Fields{FieldType: typeTag(v), FieldUnit: unit})
	}
	code, err := fn(v)
	if err != nil {
		return "", err
	}
	if l != nil {
		l.Debug("post-encode", Fields{FieldLength: runeLen(code), FieldUnit: unit})
	}
	return code, nil
}

func observeDecode[V any](ref *loggerRef, unit string, code string, fn func(string) (V, error)) (V, error) {
	l := ref.get()
	if l != nil {
		l.Debug("pre-decode", Fields{FieldLength: runeLen(code), FieldUnit: unit})
	}
	v, err := fn(code)
	if err != nil {
		var zero V
		return zero, err
	}
	if l != nil {
		l.Debug("post-decode", Fields{FieldType: typeTag(v), FieldUnit: unit})
	}
	return v, nil
}

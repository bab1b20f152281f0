package codecs

import (
	"fmt"
	"sync"
)

const compoundName = "compound"

// Compound chains codecs into one. Encode runs head first and then every tail
// member in insertion order; Decode walks the same list backwards and ends
// with head.Decode. Only head sees a V, every later member works on strings.
//
// The member list is never empty. Members are referenced, not copied, so the
// same codec may appear in several compounds (or several times in one).
type Compound[V any] struct {
	id  uint64
	log loggerRef

	mu   sync.RWMutex
	head Codec[V]
	tail []Codec[string]
}

var _ Codec[string] = (*Compound[string])(nil)

// NewCompound builds a compound from at least one codec, in encode order.
func NewCompound[V any](head Codec[V], rest ...Codec[string]) (*Compound[V], error) {
	if head == nil {
		return nil, &ConfigurationError{Reason: "compound member 0 is nil"}
	}
	for i, m := range rest {
		if m == nil {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("compound member %d is nil", i+1)}
		}
	}
	tail := make([]Codec[string], len(rest))
	copy(tail, rest)
	return &Compound[V]{id: nextID(), head: head, tail: tail}, nil
}

// MustCompound is like NewCompound but panics on error.
// Handy for package-level variables.
func MustCompound[V any](head Codec[V], rest ...Codec[string]) *Compound[V] {
	c, err := NewCompound[V](head, rest...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Compound[V]) Name() string { return compoundName }
func (c *Compound[V]) ID() uint64   { return c.id }

// Len returns the number of members.
func (c *Compound[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return 1 + len(c.tail)
}

func (c *Compound[V]) Encode(v V) (string, error) {
	return observeEncode(&c.log, compoundName+".Encode", v, c.encode)
}

func (c *Compound[V]) Decode(code string) (V, error) {
	return observeDecode(&c.log, compoundName+".Decode", code, c.decode)
}

func (c *Compound[V]) encode(v V) (string, error) {
	head, tail := c.members()
	code, err := head.Encode(v)
	if err != nil {
		return "", err
	}
	for _, m := range tail {
		if code, err = m.Encode(code); err != nil {
			return "", err
		}
	}
	return code, nil
}

func (c *Compound[V]) decode(code string) (V, error) {
	head, tail := c.members()
	var err error
	for i := len(tail) - 1; i >= 0; i-- {
		if code, err = tail[i].Decode(code); err != nil {
			var zero V
			return zero, err
		}
	}
	return head.Decode(code)
}

// members snapshots the list so a concurrent Append/Prepend never changes
// the sequence under a running fold.
func (c *Compound[V]) members() (Codec[V], []Codec[string]) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.head, c.tail[:len(c.tail):len(c.tail)]
}

// Append adds m as the last encode step (first decode step).
// It panics with a *ConfigurationError when m is nil or c itself.
func (c *Compound[V]) Append(m Codec[string]) *Compound[V] {
	if m == nil {
		panic(&ConfigurationError{Reason: "append of nil codec"})
	}
	if m.ID() == c.id {
		panic(&ConfigurationError{Reason: "cannot append a compound to itself"})
	}
	c.mu.Lock()
	c.tail = append(c.tail, m)
	c.mu.Unlock()
	c.adopt("append", m)
	return c
}

// Prepend adds m as the first encode step (last decode step). The previous
// head then receives strings, so it must be a Codec[string]; otherwise the
// compound is left untouched and a *ConfigurationError is returned.
func (c *Compound[V]) Prepend(m Codec[V]) (*Compound[V], error) {
	if m == nil {
		return c, &ConfigurationError{Reason: "prepend of nil codec"}
	}
	if m.ID() == c.id {
		return c, &ConfigurationError{Reason: "cannot prepend a compound to itself"}
	}
	c.mu.Lock()
	prev, ok := any(c.head).(Codec[string])
	if !ok {
		c.mu.Unlock()
		return c, &ConfigurationError{
			Reason: fmt.Sprintf("cannot prepend to %s: head %s (%T) does not accept strings", compoundName, c.head.Name(), c.head),
		}
	}
	tail := make([]Codec[string], 0, len(c.tail)+1)
	tail = append(tail, prev)
	c.tail = append(tail, c.tail...)
	c.head = m
	c.mu.Unlock()
	c.adopt("prepend", m)
	return c, nil
}

type member interface {
	Name() string
	ID() uint64
	Observable
}

// adopt hands the compound's logger to a new member. Called without c.mu
// held, so members and loggers may call back into c.
func (c *Compound[V]) adopt(op string, m member) {
	l := c.log.get()
	if l == nil {
		return
	}
	m.SetLogger(l)
	l.Info(op, Fields{FieldType: m.Name(), FieldID: m.ID(), FieldUnit: compoundName + "." + op})
}

// SetLogger attaches l to the compound and to every member, recursing into
// nested compounds. nil detaches everywhere.
func (c *Compound[V]) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.set(l)
	c.head.SetLogger(l)
	for _, m := range c.tail {
		m.SetLogger(l)
	}
}

func (c *Compound[V]) Logger() Logger { return c.log.get() }

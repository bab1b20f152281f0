package codec

import (
	"fmt"

	"github.com/unkn0wn-root/codecs"
)

const limitName = "limit"

// Limit wraps another transformer to enforce a maximum allowed payload size
// at Decode time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
//
// Typical use: protect against oversized/malicious inputs coming from a
// shared store or untrusted source before they reach an expensive decoder.
type Limit[V any] struct {
	// Inner is the underlying transformer being wrapped. It must be set.
	Inner codecs.Transformer[V]
	// MaxDecode is the maximum permitted length (in bytes) of the incoming
	// code for Decode. If the code is longer, Decode returns a
	// *codecs.DecodeError without invoking Inner.
	MaxDecode int
}

func (c Limit[V]) Name() string {
	if n, ok := c.Inner.(interface{ Name() string }); ok {
		return limitName + "(" + n.Name() + ")"
	}
	return limitName
}

func (c Limit[V]) Encode(v V) (string, error) { return c.Inner.Encode(v) }

func (c Limit[V]) Decode(code string) (V, error) {
	if c.MaxDecode > 0 && len(code) > c.MaxDecode {
		var zero V
		return zero, codecs.NewDecodeError(c.Name(), fmt.Errorf("payload too large: %d > %d", len(code), c.MaxDecode))
	}
	return c.Inner.Decode(code)
}

// SetLogger forwards l when Inner is itself observable (e.g. a codecs.Codec).
func (c Limit[V]) SetLogger(l codecs.Logger) {
	if o, ok := c.Inner.(codecs.Observable); ok {
		o.SetLogger(l)
	}
}

func (c Limit[V]) Logger() codecs.Logger {
	if o, ok := c.Inner.(codecs.Observable); ok {
		return o.Logger()
	}
	return nil
}

package codec

import (
	"errors"

	"github.com/fxamacker/cbor/v2"
	"github.com/unkn0wn-root/codecs"
)

const cborName = "cbor"

var errCBORZero = errors.New("cbor transformer not initialised, use NewCBOR")

// CBOR is a transformer that serializes values using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when you need byte-for-byte stable outputs (e.g., hashing/content addressing
// or memoization keyed by the encoded string).
// Otherwise PreferredUnsortedEncOptions are used (sensible defaults).
// Time values are encoded as RFC3339Nano for stable, human-readable timestamps.
type CBOR[V any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCBOR constructs a CBOR transformer.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions (smaller/faster defaults).
//
// Also sets time encoding to RFC3339Nano.
func NewCBOR[V any](deterministic bool) (CBOR[V], error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Should not use for prod just handy for package-level variables in tests/examples.
func MustCBOR[V any](deterministic bool) CBOR[V] {
	c, err := NewCBOR[V](deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (CBOR[V]) Name() string { return cborName }

// Encode encodes v as CBOR using the configured EncMode.
func (c CBOR[V]) Encode(v V) (string, error) {
	if c.enc == nil {
		return "", codecs.NewEncodeError(cborName, errCBORZero)
	}
	b, err := c.enc.Marshal(v)
	if err != nil {
		return "", codecs.NewEncodeError(cborName, err)
	}
	return string(b), nil
}

// Decode decodes code into a V using the configured DecMode.
func (c CBOR[V]) Decode(code string) (V, error) {
	var v V
	if c.dec == nil {
		return v, codecs.NewDecodeError(cborName, errCBORZero)
	}
	if err := c.dec.Unmarshal([]byte(code), &v); err != nil {
		return v, codecs.NewDecodeError(cborName, err)
	}
	return v, nil
}

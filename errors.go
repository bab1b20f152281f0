package codecs

import (
	"errors"
	"fmt"
)

var (
	ErrEncode        = errors.New("codecs: encode failed")
	ErrDecode        = errors.New("codecs: decode failed")
	ErrConfiguration = errors.New("codecs: invalid configuration")
)

// EncodeError reports that a codec could not represent its input.
// Base and Compound return it exactly as the failing transformer produced it.
type EncodeError struct {
	Codec string
	Err   error
}

// NewEncodeError is a shorthand for leaf transformers.
func NewEncodeError(codec string, err error) error {
	return &EncodeError{Codec: codec, Err: err}
}

func (e *EncodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("codecs: %s: encode failed", e.Codec)
	}
	return fmt.Sprintf("codecs: %s: encode: %v", e.Codec, e.Err)
}

func (e *EncodeError) Unwrap() error        { return e.Err }
func (e *EncodeError) Is(target error) bool { return target == ErrEncode }

// DecodeError reports malformed, truncated or foreign input.
type DecodeError struct {
	Codec string
	Err   error
}

func NewDecodeError(codec string, err error) error {
	return &DecodeError{Codec: codec, Err: err}
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("codecs: %s: decode failed", e.Codec)
	}
	return fmt.Sprintf("codecs: %s: decode: %v", e.Codec, e.Err)
}

func (e *DecodeError) Unwrap() error        { return e.Err }
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// ConfigurationError is returned when a codec cannot be assembled as asked,
// e.g. a nil compound member.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "codecs: invalid configuration: " + e.Reason
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

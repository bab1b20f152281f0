package codec

import (
	"github.com/unkn0wn-root/codecs"
	"github.com/unkn0wn-root/codecs/internal/wire"
)

const frameName = "frame"

// Frame wraps its input in a small versioned header (magic, version, length)
// and validates it on the way back. Put it right after a serializer to turn
// truncated or foreign input into a clean *codecs.DecodeError instead of a
// confusing parser failure.
type Frame struct{}

func (Frame) Name() string { return frameName }

func (Frame) Encode(s string) (string, error) {
	b, err := wire.Encode([]byte(s))
	if err != nil {
		return "", codecs.NewEncodeError(frameName, err)
	}
	return string(b), nil
}

func (Frame) Decode(code string) (string, error) {
	payload, err := wire.Decode([]byte(code))
	if err != nil {
		return "", codecs.NewDecodeError(frameName, err)
	}
	return string(payload), nil
}

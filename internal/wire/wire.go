// Package wire implements the envelope used by codec.Frame.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
)

const (
	version byte = 1
	hdrLen       = 4 + 1 + 4
)

var (
	ErrCorrupt  = errors.New("codecs: corrupt frame")
	ErrTooLarge = errors.New("codecs: payload too large for frame")
	magic4      = [...]byte{'C', 'D', 'E', 'C'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Frame: magic(4) | ver(1) | plen(u32 be) | payload(plen)
func Encode(payload []byte) ([]byte, error) {
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}
	var buf bytes.Buffer
	buf.Grow(hdrLen + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes(), nil
}

// Decode validates the envelope and returns the payload as a subslice of b.
// Trailing bytes after the announced payload are treated as corruption.
func Decode(b []byte) ([]byte, error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version {
		return nil, ErrCorrupt
	}
	off := 5

	plen := uint64(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if plen != uint64(len(b)-off) {
		return nil, ErrCorrupt
	}
	return b[off:], nil
}

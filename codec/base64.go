package codec

import (
	"encoding/base64"

	"github.com/unkn0wn-root/codecs"
)

const base64Name = "base64"

// Base64 maps arbitrary strings (including binary serializer output) to
// printable text. Encoding defaults to base64.StdEncoding when nil.
type Base64 struct {
	Encoding *base64.Encoding
}

func (c Base64) enc() *base64.Encoding {
	if c.Encoding == nil {
		return base64.StdEncoding
	}
	return c.Encoding
}

func (Base64) Name() string { return base64Name }

func (c Base64) Encode(s string) (string, error) {
	return c.enc().EncodeToString([]byte(s)), nil
}

func (c Base64) Decode(code string) (string, error) {
	b, err := c.enc().DecodeString(code)
	if err != nil {
		return "", codecs.NewDecodeError(base64Name, err)
	}
	return string(b), nil
}

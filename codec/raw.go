package codec

// Identity passes strings through unchanged in both directions.
type Identity struct{}

func (Identity) Name() string                      { return "identity" }
func (Identity) Encode(s string) (string, error)    { return s, nil }
func (Identity) Decode(code string) (string, error) { return code, nil }

// Bytes is a trivial transformer for []byte values. Encode converts to a
// string and Decode converts back. No UTF-8 validation is performed.
type Bytes struct{}

func (Bytes) Name() string                      { return "bytes" }
func (Bytes) Encode(b []byte) (string, error)    { return string(b), nil }
func (Bytes) Decode(code string) ([]byte, error) { return []byte(code), nil }

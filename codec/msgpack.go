package codec

import (
	"github.com/unkn0wn-root/codecs"
	"github.com/vmihailenco/msgpack/v5"
)

const msgpackName = "msgpack"

// Msgpack is a transformer that serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// Msgpack is compact and fast; be mindful of struct tag differences vs JSON.
// Use `msgpack:"fieldName"` tags if you need explicit control.
type Msgpack[V any] struct{}

func (Msgpack[V]) Name() string { return msgpackName }

func (Msgpack[V]) Encode(v V) (string, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return "", codecs.NewEncodeError(msgpackName, err)
	}
	return string(b), nil
}

func (Msgpack[V]) Decode(code string) (V, error) {
	var v V
	if err := msgpack.Unmarshal([]byte(code), &v); err != nil {
		return v, codecs.NewDecodeError(msgpackName, err)
	}
	return v, nil
}

package codec

import (
	"encoding/json"

	"github.com/unkn0wn-root/codecs"
)

const jsonName = "json"

type JSON[V any] struct{}

func (JSON[V]) Name() string { return jsonName }

func (JSON[V]) Encode(v V) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", codecs.NewEncodeError(jsonName, err)
	}
	return string(b), nil
}

func (JSON[V]) Decode(code string) (V, error) {
	var v V
	if err := json.Unmarshal([]byte(code), &v); err != nil {
		return v, codecs.NewDecodeError(jsonName, err)
	}
	return v, nil
}

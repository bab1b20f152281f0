package codec

import (
	"errors"

	"github.com/unkn0wn-root/codecs"
	"google.golang.org/protobuf/proto"
)

const protobufName = "protobuf"

type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *mypb.User { return &mypb.User{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (Protobuf[T]) Name() string { return protobufName }

func (c Protobuf[T]) Encode(v T) (string, error) {
	b, err := proto.Marshal(v)
	if err != nil {
		return "", codecs.NewEncodeError(protobufName, err)
	}
	return string(b), nil
}

func (c Protobuf[T]) Decode(code string) (T, error) {
	if c.new == nil {
		var zero T
		return zero, codecs.NewDecodeError(protobufName, errors.New("no message constructor, use NewProtobuf"))
	}
	m := c.new()
	if err := proto.Unmarshal([]byte(code), m); err != nil {
		return m, codecs.NewDecodeError(protobufName, err)
	}
	return m, nil
}

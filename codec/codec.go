// Package codec provides leaf transformers for codecs.Compound chains.
//
// Every type here is a codecs.NamedTransformer; wrap it to get a logging
// codecs.Codec:
//
//	users := codecs.Wrap[User](codec.JSON[User]{})
//	chain := codecs.MustCompound[User](users, codecs.Wrap[string](codec.Frame{}), codecs.Wrap[string](codec.Base64{}))
//
// Binary serializers (msgpack, CBOR, protobuf) return their raw bytes as a Go
// string. Follow them with Base64 when the result must be printable text.
package codec

import "github.com/unkn0wn-root/codecs"

// Interface guards.
var (
	_ codecs.NamedTransformer[struct{}] = JSON[struct{}]{}
	_ codecs.NamedTransformer[struct{}] = Msgpack[struct{}]{}
	_ codecs.NamedTransformer[struct{}] = CBOR[struct{}]{}
	_ codecs.NamedTransformer[string]   = Identity{}
	_ codecs.NamedTransformer[[]byte]   = Bytes{}
	_ codecs.NamedTransformer[string]   = Base64{}
	_ codecs.NamedTransformer[string]   = Frame{}
	_ codecs.NamedTransformer[string]   = Limit[string]{}
)

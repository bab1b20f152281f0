package codecs

// Transformer is the bare V <-> string transform a concrete codec provides.
// It does not log; wrap it with New or Wrap to get a Codec.
type Transformer[V any] interface {
	Encode(V) (string, error)
	Decode(string) (V, error)
}

// NamedTransformer is a Transformer that knows its own diagnostic name.
type NamedTransformer[V any] interface {
	Transformer[V]
	Name() string
}

// Codec encodes values V to a string and back.
//
// Name is a short kind label ("json", "base64", "compound") and ID a
// process-unique instance token; both only feed diagnostics.
type Codec[V any] interface {
	Encode(v V) (string, error)
	Decode(code string) (V, error)
	Name() string
	ID() uint64
	Observable
}

package codecs

// Base turns a Transformer into a Codec. Every Encode/Decode is surrounded by
// debug events on the attached Logger; the transformer only sees its input.
// The zero value is NOT ready to use. Construct with New, Wrap or Func.
type Base[V any] struct {
	name string
	id   uint64
	t    Transformer[V]
	log  loggerRef
}

var _ Codec[string] = (*Base[string])(nil)

// New wraps t under the given diagnostic name.
func New[V any](name string, t Transformer[V]) *Base[V] {
	return &Base[V]{name: name, id: nextID(), t: t}
}

// Wrap is New using the transformer's own name.
func Wrap[V any](t NamedTransformer[V]) *Base[V] {
	return New[V](t.Name(), t)
}

type funcTransformer[V any] struct {
	enc func(V) (string, error)
	dec func(string) (V, error)
}

func (f funcTransformer[V]) Encode(v V) (string, error)    { return f.enc(v) }
func (f funcTransformer[V]) Decode(code string) (V, error) { return f.dec(code) }

// Func builds a codec from a pair of plain functions.
func Func[V any](name string, enc func(V) (string, error), dec func(string) (V, error)) *Base[V] {
	return New[V](name, funcTransformer[V]{enc: enc, dec: dec})
}

func (b *Base[V]) Name() string { return b.name }
func (b *Base[V]) ID() uint64   { return b.id }

func (b *Base[V]) Encode(v V) (string, error) {
	return observeEncode(&b.log, b.name+".Encode", v, b.t.Encode)
}

func (b *Base[V]) Decode(code string) (V, error) {
	return observeDecode(&b.log, b.name+".Decode", code, b.t.Decode)
}

// SetLogger replaces the logger used by subsequent calls; nil detaches it.
// Observable transformers (decorators) receive the same logger.
func (b *Base[V]) SetLogger(l Logger) {
	b.log.set(l)
	if o, ok := b.t.(Observable); ok {
		o.SetLogger(l)
	}
}

func (b *Base[V]) Logger() Logger { return b.log.get() }

// Package memo caches the results of a string transformer in a provider.
//
// Codecs are referentially transparent, so once "x" encoded to "y" it always
// will. Memo exploits that for expensive members of a chain (hashing,
// encryption, remote lookups): results live in a provider.Provider under
//
//	memo:<ns>:e:<sha256(input)>  - Encode results
//	memo:<ns>:d:<sha256(input)>  - Decode results
//
// The store is an optimisation only. Provider failures are logged and
// bypassed, and errors from the inner transformer are never cached.
package memo

import (
	"context"
	"sync"
	"time"

	"github.com/unkn0wn-root/codecs"
	"github.com/unkn0wn-root/codecs/internal/util"
	pr "github.com/unkn0wn-root/codecs/provider"
)

const (
	defaultTTL     = 10 * time.Minute
	defaultTimeout = 100 * time.Millisecond

	opEncode = "e"
	opDecode = "d"
)

type CostFunc func(key string, value []byte) int64

// Options tune a Memo. Only Namespace and Provider are required.
type Options struct {
	// Required
	Namespace string // separates memo entries of different chains, e.g. "session-token"
	Provider  pr.Provider

	TTL     time.Duration // 0 => 10m
	Timeout time.Duration // per provider call; 0 => 100ms
	// Bidirectional also records code -> input after each computed Encode,
	// so Decode(Encode(x)) is served from the store. Decode results never
	// seed Encode: a decoder that accepts non-canonical input (base64 with
	// line breaks) would otherwise make Encode return that input. Enable it
	// only when the inner transformer is faithful.
	Bidirectional bool
	ComputeCost   CostFunc // default: len(value)
}

// Memo is a codecs.Transformer[string]; wrap it with codecs.Wrap to place it
// in a chain.
type Memo struct {
	inner    codecs.Transformer[string]
	name     string
	prefix   string
	provider pr.Provider
	ttl      time.Duration
	timeout  time.Duration
	bidi     bool
	cost     CostFunc

	mu  sync.RWMutex
	log codecs.Logger
}

var (
	_ codecs.NamedTransformer[string] = (*Memo)(nil)
	_ codecs.Observable               = (*Memo)(nil)
)

func New(inner codecs.Transformer[string], opts Options) (*Memo, error) {
	if inner == nil {
		return nil, &codecs.ConfigurationError{Reason: "memo: inner transformer is required"}
	}
	if opts.Provider == nil {
		return nil, &codecs.ConfigurationError{Reason: "memo: provider is required"}
	}
	if opts.Namespace == "" {
		return nil, &codecs.ConfigurationError{Reason: "memo: namespace is required"}
	}

	name := "memo"
	if n, ok := inner.(interface{ Name() string }); ok {
		name += "(" + n.Name() + ")"
	}

	m := &Memo{
		inner:    inner,
		name:     name,
		prefix:   "memo:" + opts.Namespace,
		provider: opts.Provider,
		bidi:     opts.Bidirectional,
	}
	m.ttl = coalesce[time.Duration](opts.TTL, defaultTTL)
	m.timeout = coalesce[time.Duration](opts.Timeout, defaultTimeout)
	if opts.ComputeCost != nil {
		m.cost = opts.ComputeCost
	} else {
		m.cost = func(_ string, v []byte) int64 { return int64(len(v)) }
	}
	return m, nil
}

func (m *Memo) Name() string { return m.name }

func (m *Memo) Encode(s string) (string, error) {
	return m.through(opEncode, s, m.inner.Encode)
}

func (m *Memo) Decode(code string) (string, error) {
	return m.through(opDecode, code, m.inner.Decode)
}

func (m *Memo) through(op, in string, fn func(string) (string, error)) (string, error) {
	key := util.Key(m.prefix, op, in)
	if out, ok := m.lookup(key); ok {
		return out, nil
	}
	out, err := fn(in)
	if err != nil {
		return "", err
	}
	m.store(key, out)
	if m.bidi && op == opEncode {
		m.store(util.Key(m.prefix, opDecode, out), in)
	}
	return out, nil
}

func (m *Memo) lookup(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	b, ok, err := m.provider.Get(ctx, key)
	if err != nil {
		m.logger().Warn("memo get failed", codecs.Fields{"key": key, "err": err, codecs.FieldUnit: m.name + ".lookup"})
		return "", false
	}
	if !ok {
		return "", false
	}
	m.logger().Debug("memo hit", codecs.Fields{"key": key, codecs.FieldUnit: m.name + ".lookup"})
	return string(b), true
}

func (m *Memo) store(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	b := []byte(value)
	ok, err := m.provider.Set(ctx, key, b, m.cost(key, b), m.ttl)
	if err != nil {
		m.logger().Warn("memo set failed", codecs.Fields{"key": key, "err": err, codecs.FieldUnit: m.name + ".store"})
		return
	}
	if !ok {
		m.logger().Debug("memo set rejected by provider (pressure)", codecs.Fields{"key": key, codecs.FieldUnit: m.name + ".store"})
	}
}

// Forget drops both cached results whose input is s.
func (m *Memo) Forget(ctx context.Context, s string) error {
	if err := m.provider.Del(ctx, util.Key(m.prefix, opEncode, s)); err != nil {
		return err
	}
	return m.provider.Del(ctx, util.Key(m.prefix, opDecode, s))
}

// Close closes the provider.
func (m *Memo) Close(ctx context.Context) error {
	return m.provider.Close(ctx)
}

// SetLogger records l for provider diagnostics and forwards it to an
// observable inner transformer.
func (m *Memo) SetLogger(l codecs.Logger) {
	m.mu.Lock()
	m.log = l
	m.mu.Unlock()
	if o, ok := m.inner.(codecs.Observable); ok {
		o.SetLogger(l)
	}
}

func (m *Memo) Logger() codecs.Logger {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.log
}

func (m *Memo) logger() codecs.Logger {
	if l := m.Logger(); l != nil {
		return l
	}
	return codecs.NopLogger{}
}

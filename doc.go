// Package codecs implements composable, observable string codecs.
//
// A Codec[V] turns a V into a string and back. Concrete transforms only
// implement Transformer[V]; New/Wrap/Func turn them into codecs that emit
// structured debug events around every call when a Logger is attached.
//
// Components:
//   - Transformer[V]: the bare transform (see package codec for JSON, msgpack,
//     CBOR, protobuf, base64, framing and size limits).
//   - Base[V]: the logging wrapper around a Transformer.
//   - Compound[V]: an ordered, non-empty chain of codecs. The first member maps
//     V to a string, every following member maps string to string.
//   - Logger: a tiny leveled logger (adapters in log/zap, log/logrus, log/slog).
//
// Ordering:
//
//	c := codecs.MustCompound[User](jsonC, frameC, b64C)
//	c.Encode(u)   // b64(frame(json(u)))
//	c.Decode(s)   // json⁻¹(frame⁻¹(b64⁻¹(s)))
//
// decode(encode(v)) == v holds whenever every member is faithful on its own.
// Errors are never wrapped on the way out: the caller receives exactly what
// the failing member returned, and members after it are not invoked.
package codecs

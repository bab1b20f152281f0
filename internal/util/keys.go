package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key returns "<prefix>:<op>:<hash>" where hash is the first 32 hex chars of
// sha256(input). Codec inputs can be arbitrarily large and binary, so they
// are never used as store keys directly.
func Key(prefix, op, input string) string {
	sum := sha256.Sum256([]byte(input))
	return prefix + ":" + op + ":" + hex.EncodeToString(sum[:16])
}

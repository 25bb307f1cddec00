package project

import (
	"crypto/sha256"
)

// Digest is a 256-bit hash, the same shape as source.File.Hash.
type Digest [32]byte

// Combine builds a cache key: H( content || part1 || part2 ... ).
// The order of parts must be deterministic.
func Combine(content Digest, parts ...[]byte) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

package core

import (
	"encoding/binary"
	"slices"

	"github.com/go-crypt/x/blake2b"
)

// ID is a content-derived identifier.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// SimFunc scores a pair of strings. Measures that compose a SimFunc decide
// which output range they accept.
type SimFunc func(a, b string) float64

// IdentitySim returns 1 for identical strings and 0 otherwise.
func IdentitySim(a, b string) float64 {
	if a == b {
		return 1
	}
	return 0
}

// TokensEqual reports whether two token sequences are identical, element by element.
func TokensEqual(a, b []string) bool {
	return slices.Equal(a, b)
}

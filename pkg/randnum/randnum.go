// Package randnum generates cryptographic-strength random integers.
//
// It is used for utm session IDs and as the entropy half of visitor IDs.
// Callers that need reproducible values should inject their own source
// instead of calling this package directly.
package randnum

import (
	"crypto/rand"
	"encoding/binary"
)

// Uint32 returns a uniformly distributed random 32-bit unsigned integer.
func Uint32() uint32 {
	var b [4]byte
	// crypto/rand.Read never returns an error since Go 1.24.
	_, _ = rand.Read(b[:])
	return binary.BigEndian.Uint32(b[:])
}


package dict

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// HashBytes computes the case-sensitive seeded keyed hash of b
// (§4.2 "Hash function"). seed is the 16-byte process-wide value; it
// is split into the two 64-bit keys SipHash-2-4 expects.
func HashBytes(seed [16]byte, b []byte) uint64 {
	k0 := binary.LittleEndian.Uint64(seed[0:8])
	k1 := binary.LittleEndian.Uint64(seed[8:16])
	return siphash.Hash(k0, k1, b)
}

// HashBytesCI computes the case-insensitive variant of HashBytes,
// ASCII-folding the input before hashing (§4.2, "case-insensitive
// ASCII fold").
func HashBytesCI(seed [16]byte, b []byte) uint64 {
	folded := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		folded[i] = c
	}
	return HashBytes(seed, folded)
}

// HashString is the string convenience form of HashBytes.
func HashString(seed [16]byte, s string) uint64 {
	return HashBytes(seed, []byte(s))
}

// HashStringCI is the string convenience form of HashBytesCI.
func HashStringCI(seed [16]byte, s string) uint64 {
	return HashBytesCI(seed, []byte(s))
}

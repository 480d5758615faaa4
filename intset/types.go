// Package intset implements a compact, sorted, encoding-adaptive set of
// signed integers backed by a single contiguous byte buffer.
//
// An IntSet never shrinks its encoding: once a value wider than the
// current width is inserted, every element (including ones removed
// later) is stored at the new width for the lifetime of the set.
package intset

import "encoding/binary"

// Encoding is the per-element storage width of an IntSet.
type Encoding uint8

const (
	// Enc16 stores each element in 2 bytes (int16 range).
	Enc16 Encoding = 2
	// Enc32 stores each element in 4 bytes (int32 range).
	Enc32 Encoding = 4
	// Enc64 stores each element in 8 bytes (int64 range).
	Enc64 Encoding = 8
)

var order = binary.LittleEndian

// IntSet is a sorted set of int64 values stored at the narrowest
// encoding that fits every member. See the package doc for the
// widen-never-shrink invariant.
type IntSet struct {
	encoding Encoding
	length   uint32
	contents []byte
}

// New returns an empty IntSet at the narrowest encoding, Enc16.
func New() *IntSet {
	return &IntSet{encoding: Enc16}
}

// Encoding reports the set's current storage width.
func (s *IntSet) Encoding() Encoding {
	return s.encoding
}

// Len reports the number of elements currently stored.
func (s *IntSet) Len() uint32 {
	return s.length
}

// BlobSize reports the size in bytes of the underlying buffer.
func (s *IntSet) BlobSize() int {
	return len(s.contents)
}

// requiredEncoding returns the narrowest encoding whose signed range
// contains v.
func requiredEncoding(v int64) Encoding {
	switch {
	case v >= -32768 && v <= 32767:
		return Enc16
	case v >= -2147483648 && v <= 2147483647:
		return Enc32
	default:
		return Enc64
	}
}

// at reads the element stored at buffer position pos under the given
// encoding. pos is an element index, not a byte offset.
func (s *IntSet) at(pos uint32) int64 {
	off := int(pos) * int(s.encoding)
	switch s.encoding {
	case Enc16:
		return int64(int16(order.Uint16(s.contents[off:])))
	case Enc32:
		return int64(int32(order.Uint32(s.contents[off:])))
	default:
		return int64(order.Uint64(s.contents[off:]))
	}
}

// set writes v at element position pos under the set's current
// encoding.
func (s *IntSet) set(pos uint32, v int64) {
	off := int(pos) * int(s.encoding)
	switch s.encoding {
	case Enc16:
		order.PutUint16(s.contents[off:], uint16(int16(v)))
	case Enc32:
		order.PutUint32(s.contents[off:], uint32(int32(v)))
	default:
		order.PutUint64(s.contents[off:], uint64(v))
	}
}

// readAt and writeAt operate on an arbitrary buffer at an explicit
// encoding, independent of any IntSet's current field. They exist so
// upgrade-and-append can read the old (narrower) buffer while writing
// the new (wider) one.
func readAt(buf []byte, enc Encoding, pos uint32) int64 {
	off := int(pos) * int(enc)
	switch enc {
	case Enc16:
		return int64(int16(order.Uint16(buf[off:])))
	case Enc32:
		return int64(int32(order.Uint32(buf[off:])))
	default:
		return int64(order.Uint64(buf[off:]))
	}
}

func writeAt(buf []byte, enc Encoding, pos uint32, v int64) {
	off := int(pos) * int(enc)
	switch enc {
	case Enc16:
		order.PutUint16(buf[off:], uint16(int16(v)))
	case Enc32:
		order.PutUint32(buf[off:], uint32(int32(v)))
	default:
		order.PutUint64(buf[off:], uint64(v))
	}
}

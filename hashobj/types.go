// Package hashobj implements the polymorphic field→value map: small
// hashes stay a linear-scan PackedPairList, larger or wider ones
// convert once to a dict.Dict and never convert back (§3.3, §4.3).
package hashobj

import (
	"github.com/jifukui/redis/dict"
	"github.com/jifukui/redis/hcconfig"
)

// Representation is a HashObject's current storage tag.
type Representation int

const (
	// Packed backs the HashObject with a PairList: cheap for the
	// common case of a few short fields.
	Packed Representation = iota
	// Table backs the HashObject with a dict.Dict, used once the
	// PACKED thresholds are exceeded.
	Table
)

func (r Representation) String() string {
	if r == Table {
		return "table"
	}
	return "packed"
}

// SetFlags controls whether Set takes ownership of the field/value
// byte slices it is given (no defensive copy) or must copy them
// because the caller retains and may mutate its buffer afterward.
type SetFlags uint8

const (
	// FieldOwned means the caller relinquishes field: HashObject may
	// retain the slice without copying it.
	FieldOwned SetFlags = 1 << iota
	// ValueOwned means the caller relinquishes value.
	ValueOwned
)

// PairList is the black-box collaborator behind the PACKED
// representation (§3.3, §6): a compact list of alternating field,
// value byte strings in insertion order. hashobj depends only on this
// interface; packed.go supplies the concrete default.
type PairList interface {
	Len() int
	Find(field []byte) (idx int, found bool)
	FieldAt(i int) []byte
	ValueAt(i int) []byte
	Append(field, value []byte)
	ReplaceValueAt(i int, value []byte)
	DeleteAt(i int)
	ByteSize() int
}

// HashObject is a field→value map that starts PACKED and may convert
// once to TABLE; it never converts back.
type HashObject struct {
	cfg    *hcconfig.Config
	repr   Representation
	packed PairList
	table  *dict.Dict
}

// New returns an empty PACKED HashObject. A nil cfg uses
// hcconfig.New()'s defaults.
func New(cfg *hcconfig.Config) *HashObject {
	if cfg == nil {
		cfg = hcconfig.New()
	}
	return &HashObject{cfg: cfg, repr: Packed, packed: NewPackedPairList()}
}

// Representation reports the HashObject's current storage tag.
func (h *HashObject) Representation() Representation {
	return h.repr
}

// Len reports the number of fields currently stored.
func (h *HashObject) Len() int {
	if h.repr == Packed {
		return h.packed.Len()
	}
	return int(h.table.Len())
}

func (h *HashObject) fieldType() *dict.Type {
	seed := h.cfg.HashSeed
	return &dict.Type{
		Hash: func(key interface{}) uint64 {
			return dict.HashString(seed, key.(string))
		},
	}
}

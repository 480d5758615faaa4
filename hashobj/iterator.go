package hashobj

import "github.com/jifukui/redis/dict"

// Component is which half of a pair Iterator.Current returns.
type Component int

const (
	// KeyComponent selects the field.
	KeyComponent Component = iota
	// ValueComponent selects the value.
	ValueComponent
)

// Iterator adapts either a PairList position or a Dict safe iterator
// into a single field/value walk (§4.4 "HashIterator").
type Iterator struct {
	h         *HashObject
	packedIdx int
	tableIt   *dict.SafeIterator
	cur       *dict.Entry
}

// NewIterator opens an iterator over h. For a TABLE HashObject this
// pins the underlying Dict against rehashing until Close.
func (h *HashObject) NewIterator() *Iterator {
	it := &Iterator{h: h, packedIdx: -1}
	if h.repr == Table {
		it.tableIt = h.table.NewSafeIterator()
	}
	return it
}

// Next advances the iterator, reporting whether a pair was produced.
func (it *Iterator) Next() bool {
	if it.h.repr == Packed {
		it.packedIdx++
		return it.packedIdx < it.h.packed.Len()
	}
	e, ok := it.tableIt.Next()
	it.cur = e
	return ok
}

// Current returns the field or value of the pair Next most recently
// produced.
func (it *Iterator) Current(which Component) []byte {
	if it.h.repr == Packed {
		if which == KeyComponent {
			return it.h.packed.FieldAt(it.packedIdx)
		}
		return it.h.packed.ValueAt(it.packedIdx)
	}
	if which == KeyComponent {
		return []byte(it.cur.Key.(string))
	}
	return it.cur.Value.([]byte)
}

// Close releases any Dict pin held by the iterator. Safe to call more
// than once and on a PACKED iterator, which holds no pin.
func (it *Iterator) Close() {
	if it.tableIt != nil {
		it.tableIt.Close()
	}
}

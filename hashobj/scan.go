package hashobj

import "github.com/jifukui/redis/dict"

// Scan delivers every pair through emit. A PACKED HashObject delivers
// all pairs in one call and returns cursor 0, since it is small enough
// to fit in one pass; a TABLE HashObject delegates to the underlying
// Dict's reversed-bit cursor (§4.4 "External scan over a HashObject").
func (h *HashObject) Scan(cursor uint64, emit func(field, value []byte)) uint64 {
	if h.repr == Packed {
		for i := 0; i < h.packed.Len(); i++ {
			emit(h.packed.FieldAt(i), h.packed.ValueAt(i))
		}
		return 0
	}

	return h.table.Scan(cursor, func(e *dict.Entry) {
		emit([]byte(e.Key.(string)), e.Value.([]byte))
	}, nil)
}

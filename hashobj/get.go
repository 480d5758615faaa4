package hashobj

// Get returns field's value and true, or (nil, false) if absent.
func (h *HashObject) Get(field []byte) ([]byte, bool) {
	if h.repr == Packed {
		idx, found := h.packed.Find(field)
		if !found {
			return nil, false
		}
		return h.packed.ValueAt(idx), true
	}
	e, ok := h.table.Find(string(field))
	if !ok {
		return nil, false
	}
	return e.Value.([]byte), true
}

// Exists reports whether field is present.
func (h *HashObject) Exists(field []byte) bool {
	_, ok := h.Get(field)
	return ok
}

// ValueLength reports the byte length of field's value, 0 if absent
// (§4.3 "value_length").
func (h *HashObject) ValueLength(field []byte) int {
	v, ok := h.Get(field)
	if !ok {
		return 0
	}
	return len(v)
}

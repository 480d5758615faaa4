package hashobj

import "github.com/jifukui/redis/dict"

// Delete removes field, reporting whether it was present. A TABLE
// deletion that drops the load factor below DefaultShrinkRatio
// requests a shrink, mirroring the Dict-level shrink policy (§4.3
// "delete", §4.2 "Sizing policy").
func (h *HashObject) Delete(field []byte) bool {
	if h.repr == Packed {
		idx, found := h.packed.Find(field)
		if !found {
			return false
		}
		h.packed.DeleteAt(idx)
		return true
	}

	if !h.table.Delete(string(field)) {
		return false
	}
	h.maybeRequestShrink()
	return true
}

func (h *HashObject) maybeRequestShrink() {
	st := h.table.Stats()
	if st.Table0Size <= dict.InitialSize {
		return
	}
	if float64(st.Table0Used)/float64(st.Table0Size) < dict.DefaultShrinkRatio {
		_ = h.table.ShrinkToFit()
	}
}

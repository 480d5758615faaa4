package hashobj

import "github.com/jifukui/redis/dict"

// convertToTable creates an empty Dict sized from the current PACKED
// length, copies every pair across, and swaps the representation tag
// (§4.3 "Conversion PACKED → TABLE"). It is a no-op if already TABLE,
// enforcing the monotonicity invariant (§8.3).
func (h *HashObject) convertToTable() {
	if h.repr == Table {
		return
	}

	opts := []dict.Option{dict.WithSeed(h.cfg.HashSeed), dict.WithForceResizeRatio(h.cfg.DictForceResizeRatio)}
	if !h.cfg.DictCanResize {
		opts = append(opts, dict.WithResizeDisabled())
	}
	d := dict.New(h.fieldType(), opts...)
	n := h.packed.Len()
	if n > 0 {
		_ = d.Expand(uint64(n))
	}
	for i := 0; i < n; i++ {
		field := string(h.packed.FieldAt(i))
		value := append([]byte(nil), h.packed.ValueAt(i)...)
		d.Add(field, value)
	}

	h.table = d
	h.packed = nil
	h.repr = Table
}

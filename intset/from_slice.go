package intset

import "sort"

// NewFromSlice builds an IntSet from an arbitrary slice of values,
// sorting and deduping them and picking the narrowest encoding that
// fits the widest value. It is the intset counterpart to the teacher's
// "adopt existing data" constructors (LoadMap, LoadStrMap, ...).
func NewFromSlice(values []int64) *IntSet {
	s := New()
	if len(values) == 0 {
		return s
	}

	sorted := append([]int64(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	deduped := sorted[:1]
	for _, v := range sorted[1:] {
		if v != deduped[len(deduped)-1] {
			deduped = append(deduped, v)
		}
	}

	enc := Enc16
	for _, v := range deduped {
		if req := requiredEncoding(v); req > enc {
			enc = req
		}
	}

	s.encoding = enc
	s.length = uint32(len(deduped))
	s.contents = make([]byte, len(deduped)*int(enc))
	for i, v := range deduped {
		s.set(uint32(i), v)
	}
	return s
}

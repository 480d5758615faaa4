package intset

// search performs a binary search for v over the current encoding.
// It reports whether v is present and, if not, the position at which
// it would have to be inserted to keep the set sorted.
func (s *IntSet) search(v int64) (pos uint32, found bool) {
	if s.length == 0 {
		return 0, false
	}

	if v > s.at(s.length-1) {
		return s.length, false
	}
	if v < s.at(0) {
		return 0, false
	}

	lo, hi := uint32(0), s.length-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		cur := s.at(mid)
		switch {
		case cur == v:
			return mid, true
		case cur < v:
			lo = mid + 1
		default:
			if mid == 0 {
				return 0, false
			}
			hi = mid - 1
		}
	}
	return lo, false
}

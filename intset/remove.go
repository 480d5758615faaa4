package intset

// Remove deletes v if present, reporting whether it was removed.
// Removing never changes the set's encoding (downgrade is never
// performed).
func (s *IntSet) Remove(v int64) (removed bool) {
	if requiredEncoding(v) > s.encoding {
		return false
	}

	pos, found := s.search(v)
	if !found {
		return false
	}

	width := int(s.encoding)
	buf := make([]byte, int(s.length-1)*width)
	copy(buf, s.contents[:int(pos)*width])
	copy(buf[int(pos)*width:], s.contents[int(pos+1)*width:])
	s.contents = buf
	s.length--
	return true
}

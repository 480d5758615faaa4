package intset

// Add inserts v, reporting whether it was newly added. Adding a value
// already present is a no-op and reports false.
func (s *IntSet) Add(v int64) (added bool) {
	need := requiredEncoding(v)
	if need > s.encoding {
		s.upgradeAndAppend(v)
		return true
	}

	pos, found := s.search(v)
	if found {
		return false
	}

	s.insertAt(pos, v)
	return true
}

// upgradeAndAppend widens the set's encoding to fit v and appends it.
// v, being outside the current encoding's range, is strictly less
// than every existing element (if negative) or strictly greater (if
// positive), so no search is needed: it lands at position 0 or at the
// new last position.
func (s *IntSet) upgradeAndAppend(v int64) {
	oldEnc := s.encoding
	oldBuf := s.contents
	oldLen := s.length
	newEnc := requiredEncoding(v)
	newLen := oldLen + 1

	newBuf := make([]byte, int(newLen)*int(newEnc))
	prepend := v < 0

	// Copy into the new, wider buffer back to front; when v is
	// prepended, every old element moves one slot to the right.
	for i := int(oldLen) - 1; i >= 0; i-- {
		val := readAt(oldBuf, oldEnc, uint32(i))
		dest := uint32(i)
		if prepend {
			dest++
		}
		writeAt(newBuf, newEnc, dest, val)
	}

	if prepend {
		writeAt(newBuf, newEnc, 0, v)
	} else {
		writeAt(newBuf, newEnc, oldLen, v)
	}

	s.encoding = newEnc
	s.contents = newBuf
	s.length = newLen
}

// insertAt inserts v at element position pos, shifting [pos, length)
// one slot to the right.
func (s *IntSet) insertAt(pos uint32, v int64) {
	width := int(s.encoding)
	newLen := s.length + 1
	buf := make([]byte, int(newLen)*width)
	copy(buf, s.contents[:int(pos)*width])
	copy(buf[int(pos+1)*width:], s.contents[int(pos)*width:])
	s.contents = buf
	s.length = newLen
	s.set(pos, v)
}

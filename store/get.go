package store

// Get returns key's value and true, or (nil, false) if absent.
func (s *Store) Get(key []byte) ([]byte, bool) {
	return s.obj.Get(key)
}

// Delete removes key, reporting whether it was present.
func (s *Store) Delete(key []byte) bool {
	removed := s.obj.Delete(key)
	s.log.Debugw("store.Delete", "key", string(key), "removed", removed)
	return removed
}

// Len reports the number of keys currently stored.
func (s *Store) Len() int {
	return s.obj.Len()
}

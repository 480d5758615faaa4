package store

// Put stores value under key, copying both byte slices (the caller
// retains ownership of its buffers).
func (s *Store) Put(key, value []byte) {
	existed := s.obj.Set(key, value, 0)
	s.log.Debugw("store.Put", "key", string(key), "replaced", existed)
}

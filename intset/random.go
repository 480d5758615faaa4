package intset

import "math/rand"

// Random returns a uniformly chosen member of the set. It panics on
// an empty set, mirroring the teacher's allocator-failure-is-fatal
// posture toward programmer errors that should never happen in
// correct callers.
func (s *IntSet) Random() int64 {
	if s.length == 0 {
		panic("intset: Random called on empty set")
	}
	return s.at(uint32(rand.Int63n(int64(s.length))))
}

package dict

import "github.com/pkg/errors"

// ErrIteratorViolated is returned by UnsafeIterator.Close when the
// Dict was mutated during unsafe iteration (§4.2 "Unsafe iterator",
// §7 ContractViolation). It carries a stack trace via pkg/errors so a
// release build can log it instead of aborting outright.
var ErrIteratorViolated = errors.New("dict: unsafe iterator detected concurrent mutation")

// cursor walks T0 then, while rehashing, T1, yielding every entry
// exactly once (§4.2 "Safe iterator"). It is the traversal shared by
// SafeIterator and UnsafeIterator.
type cursor struct {
	d         *Dict
	table     int
	index     int64
	entry     *Entry
	nextEntry *Entry
	started   bool
}

func newCursor(d *Dict) cursor {
	return cursor{d: d, index: -1}
}

func (c *cursor) next() (*Entry, bool) {
	for {
		if c.entry == nil {
			tb := &c.d.tables[c.table]
			c.index++
			for uint64(c.index) >= tb.size() {
				if c.table == 0 && c.d.Rehashing() {
					c.table = 1
					c.index = 0
					tb = &c.d.tables[c.table]
					continue
				}
				return nil, false
			}
			c.entry = tb.buckets[c.index]
		} else {
			c.entry = c.nextEntry
		}
		if c.entry != nil {
			c.nextEntry = c.entry.next
			return c.entry, true
		}
	}
}

// SafeIterator yields every live entry exactly once. It is safe to
// delete the entry most recently returned by Next. While a safe
// iterator is open, the Dict runs no rehash steps (§5 "Iterator
// pinning").
type SafeIterator struct {
	c      cursor
	closed bool
}

// NewSafeIterator opens a safe iterator, pinning the Dict's shape for
// the iterator's lifetime.
func (d *Dict) NewSafeIterator() *SafeIterator {
	d.safeIterators++
	return &SafeIterator{c: newCursor(d)}
}

// Next advances the iterator, returning (nil, false) once exhausted.
func (it *SafeIterator) Next() (*Entry, bool) {
	return it.c.next()
}

// Close releases the iterator's pin on rehashing. It is safe to call
// more than once.
func (it *SafeIterator) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.c.d.safeIterators--
}

// UnsafeIterator yields every live entry exactly once but, unlike
// SafeIterator, does not pin rehashing: a rehash step may run between
// calls to Next. It captures a fingerprint of the Dict's shape at
// creation and verifies it at Close, detecting any mutation the
// caller performed during iteration (§4.2 "Unsafe iterator").
type UnsafeIterator struct {
	c           cursor
	fingerprint uint64
	closed      bool
}

// NewUnsafeIterator opens an unsafe iterator.
func (d *Dict) NewUnsafeIterator() *UnsafeIterator {
	return &UnsafeIterator{c: newCursor(d), fingerprint: d.fingerprint()}
}

// Next advances the iterator, returning (nil, false) once exhausted.
func (it *UnsafeIterator) Next() (*Entry, bool) {
	return it.c.next()
}

// Close verifies the Dict's shape fingerprint is unchanged since
// creation, returning ErrIteratorViolated if the caller mutated the
// Dict (inserted, deleted, or resized) during iteration.
func (it *UnsafeIterator) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	if it.c.d.fingerprint() != it.fingerprint {
		return ErrIteratorViolated
	}
	return nil
}

package dict

// Unlink detaches key's entry from its chain without releasing it,
// returning the detached entry for deferred cleanup (§4.2 "delete /
// unlink"). It probes both tables while rehashing.
func (d *Dict) Unlink(key interface{}) (*Entry, bool) {
	d.maybeRehashStep()

	if d.tables[0].size() == 0 && d.tables[1].size() == 0 {
		return nil, false
	}

	h := d.typ.hash(key)
	for ti := 0; ti < 2; ti++ {
		tb := &d.tables[ti]
		if tb.size() == 0 {
			continue
		}
		idx := h & tb.mask
		var prev *Entry
		for e := tb.buckets[idx]; e != nil; e = e.next {
			if d.typ.equal(key, e.Key) {
				if prev == nil {
					tb.buckets[idx] = e.next
				} else {
					prev.next = e.next
				}
				tb.used--
				e.next = nil
				return e, true
			}
			prev = e
		}
		if !d.Rehashing() {
			break
		}
	}
	return nil, false
}

// Delete removes key, releasing its key and value via the Dict's
// Type callbacks. It reports whether key was present.
func (d *Dict) Delete(key interface{}) bool {
	e, found := d.Unlink(key)
	if !found {
		return false
	}
	d.typ.destroyKey(e.Key)
	d.typ.destroyVal(e.Value)
	return true
}

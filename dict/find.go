package dict

// Find looks up key, probing both tables while a rehash is in
// progress (§4.2 "Lookup, insert, replace, delete").
func (d *Dict) Find(key interface{}) (*Entry, bool) {
	d.maybeRehashStep()
	return d.findNoRehash(key)
}

// findNoRehash is Find without the leading rehash step, used
// internally by operations that have already charged one.
func (d *Dict) findNoRehash(key interface{}) (*Entry, bool) {
	if d.tables[0].size() == 0 && d.tables[1].size() == 0 {
		return nil, false
	}

	h := d.typ.hash(key)
	for ti := 0; ti < 2; ti++ {
		tb := &d.tables[ti]
		if tb.size() == 0 {
			continue
		}
		for e := tb.buckets[h&tb.mask]; e != nil; e = e.next {
			if d.typ.equal(key, e.Key) {
				return e, true
			}
		}
		if !d.Rehashing() {
			break
		}
	}
	return nil, false
}

// Exists reports whether key is present.
func (d *Dict) Exists(key interface{}) bool {
	_, ok := d.Find(key)
	return ok
}

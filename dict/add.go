package dict

// AddRaw inserts key with no value set, returning the existing entry
// and false if key is already present, or a freshly linked entry and
// true otherwise (§4.2 "add_raw"). Callers of a true result must set
// Value themselves.
func (d *Dict) AddRaw(key interface{}) (entry *Entry, isNew bool) {
	d.maybeRehashStep()

	if existing, found := d.findNoRehash(key); found {
		return existing, false
	}

	d.expandIfNeeded()

	ti := 0
	if d.Rehashing() {
		ti = 1
	}
	tb := &d.tables[ti]
	idx := d.typ.hash(key) & tb.mask

	e := &Entry{Key: d.typ.dupKey(key)}
	e.next = tb.buckets[idx]
	tb.buckets[idx] = e
	tb.used++
	return e, true
}

// Add inserts key/value, reporting whether the key was newly
// inserted (Duplicate per §7 is not an error: it is simply false).
func (d *Dict) Add(key, value interface{}) (added bool) {
	e, isNew := d.AddRaw(key)
	if !isNew {
		return false
	}
	e.Value = d.typ.dupVal(value)
	return true
}

// Replace sets key to value, inserting it if absent. It reports true
// if the key was newly inserted and false if an existing value was
// overwritten (§4.2 "replace" — order of operations matters so that
// setting a key to its own current value behaves correctly under
// reference-counted values).
func (d *Dict) Replace(key, value interface{}) (isNew bool) {
	e, isNew := d.AddRaw(key)
	if isNew {
		e.Value = d.typ.dupVal(value)
		return true
	}

	oldVal := e.Value
	e.Value = d.typ.dupVal(value)
	d.typ.destroyVal(oldVal)
	return false
}

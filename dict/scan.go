package dict

import "math/bits"

func rev(v uint64) uint64 {
	return bits.Reverse64(v)
}

// scanBucket emits every entry in tb's bucket idx, plus the bucket's
// head once (for relocation-style callbacks such as a defragmenter),
// if emitBucket is non-nil.
func (d *Dict) scanBucket(tb *table, idx uint64, emitEntry func(*Entry), emitBucket func(*Entry)) {
	head := tb.buckets[idx]
	if emitBucket != nil {
		emitBucket(head)
	}
	for e := head; e != nil; e = e.next {
		emitEntry(e)
	}
}

// Scan implements the stateless reversed-bit-order cursor (§4.2
// "Scan"). Pass cursor 0 to begin; a returned 0 signals completion.
// The Dict may be mutated (including resized) between calls: every
// key present for the entire scan is visited at least once, though a
// key may be visited more than once across an interleaved resize.
//
// emitEntry is called once per emitted entry. emitBucket, if
// non-nil, is called once per emitted bucket with that bucket's head
// entry (or nil for an empty bucket) — used by callers such as a
// defragmenter that need to relocate an entire chain at once.
func (d *Dict) Scan(cur uint64, emitEntry func(*Entry), emitBucket func(*Entry)) uint64 {
	if d.tables[0].size() == 0 {
		return 0
	}

	if !d.Rehashing() {
		m := d.tables[0].mask
		d.scanBucket(&d.tables[0], cur&m, emitEntry, emitBucket)
		return rev(rev(cur|^m) + 1)
	}

	small, large := &d.tables[0], &d.tables[1]
	if small.size() > large.size() {
		small, large = large, small
	}
	ms, ml := small.mask, large.mask

	d.scanBucket(small, cur&ms, emitEntry, emitBucket)
	for {
		d.scanBucket(large, cur&ml, emitEntry, emitBucket)
		cur = rev(rev(cur|^ml) + 1)
		if cur&(ms^ml) == 0 {
			break
		}
	}
	return cur
}

package dict

import "time"

// rehashStepWidth is the bucket-migration batch size charged against
// every mutating call (§4.2 "Incremental rehash").
const rehashStepWidth = 1

// timedRehashBatch is the batch size used by TimedRehash between
// wall-clock checks.
const timedRehashBatch = 100

// rehashStep migrates up to n nonempty T0 buckets into T1, visiting at
// most 10*n empty buckets before yielding. It reports how many
// nonempty buckets were actually migrated.
func (d *Dict) rehashStep(n int) (migrated int) {
	if !d.Rehashing() {
		return 0
	}

	emptyVisits := 10 * n
	for migrated < n {
		if d.tables[0].used == 0 {
			break
		}
		for uint64(d.rehashidx) < d.tables[0].size() && d.tables[0].buckets[d.rehashidx] == nil {
			d.rehashidx++
			emptyVisits--
			if emptyVisits == 0 {
				return migrated
			}
		}
		if uint64(d.rehashidx) >= d.tables[0].size() {
			break
		}

		entry := d.tables[0].buckets[d.rehashidx]
		for entry != nil {
			next := entry.next
			idx := d.typ.hash(entry.Key) & d.tables[1].mask
			entry.next = d.tables[1].buckets[idx]
			d.tables[1].buckets[idx] = entry
			d.tables[0].used--
			d.tables[1].used++
			entry = next
		}
		d.tables[0].buckets[d.rehashidx] = nil
		d.rehashidx++
		migrated++
	}

	if d.tables[0].used == 0 {
		d.finishRehash()
	}
	return migrated
}

// finishRehash promotes T1 to T0 once T0 has been fully drained.
func (d *Dict) finishRehash() {
	d.tables[0] = d.tables[1]
	d.tables[1] = table{}
	d.rehashidx = -1
}

// maybeRehashStep runs a single rehash step ahead of any
// lookup/mutation, provided no safe iterator is currently live
// (§4.2, §5 "Iterator pinning").
func (d *Dict) maybeRehashStep() {
	if d.safeIterators > 0 {
		return
	}
	d.rehashStep(rehashStepWidth)
}

// TimedRehash performs batches of 100 migrations until either the
// rehash completes or the budget of wall-clock time has elapsed,
// cooperating only between batches (never mid-migration). It does
// nothing while a safe iterator is open. It returns the total number
// of bucket migrations performed.
func (d *Dict) TimedRehash(budget time.Duration) int {
	if !d.Rehashing() || d.safeIterators > 0 {
		return 0
	}

	start := d.clock.Now()
	total := 0
	for d.Rehashing() {
		total += d.rehashStep(timedRehashBatch)
		if d.clock.Since(start) >= budget {
			break
		}
	}
	return total
}

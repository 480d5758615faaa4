package dict

import "reflect"

// mix64 is a Thomas Wang style 64-bit integer avalanche mix.
func mix64(x uint64) uint64 {
	x = (^x) + (x << 21)
	x ^= x >> 24
	x += (x << 3) + (x << 8)
	x ^= x >> 14
	x += (x << 2) + (x << 4)
	x ^= x >> 28
	x += x << 31
	return x
}

func bucketsAddr(b []*Entry) uint64 {
	if b == nil {
		return 0
	}
	return uint64(reflect.ValueOf(b).Pointer())
}

// fingerprint folds the 6-tuple (T0 address, T0 size, T0 used, T1
// address, T1 size, T1 used) through six mix64 rounds, one per tuple
// element, in order — so two tables with the same shape "bag" but a
// different order produce different fingerprints (§4.2 "Fingerprint").
func (d *Dict) fingerprint() uint64 {
	tuple := [6]uint64{
		bucketsAddr(d.tables[0].buckets),
		d.tables[0].size(),
		d.tables[0].used,
		bucketsAddr(d.tables[1].buckets),
		d.tables[1].size(),
		d.tables[1].used,
	}

	var hash uint64
	for _, v := range tuple {
		hash ^= v
		hash = mix64(hash)
	}
	return hash
}

package dict

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intType() *Type {
	return &Type{
		Hash: func(key interface{}) uint64 {
			return HashString([16]byte{}, fmt.Sprintf("%d", key.(int)))
		},
		CompareKeys: func(a, b interface{}) bool {
			return a.(int) == b.(int)
		},
	}
}

func TestAddFindDelete(t *testing.T) {
	d := New(intType())
	added := d.Add(1, "one")
	assert.True(t, added)
	added = d.Add(1, "uno")
	assert.False(t, added, "re-adding an existing key must not report a new insertion")

	e, ok := d.Find(1)
	require.True(t, ok)
	assert.Equal(t, "one", e.Value, "Add must not overwrite an existing value")

	assert.True(t, d.Delete(1))
	_, ok = d.Find(1)
	assert.False(t, ok)
	assert.False(t, d.Delete(1))
}

func TestReplaceReportsInsertVsOverwrite(t *testing.T) {
	d := New(intType())
	isNew := d.Replace(1, "a")
	assert.True(t, isNew)
	isNew = d.Replace(1, "b")
	assert.False(t, isNew)

	e, ok := d.Find(1)
	require.True(t, ok)
	assert.Equal(t, "b", e.Value)
}

func TestNoDuplicateKeys(t *testing.T) {
	d := New(intType())
	for i := 0; i < 500; i++ {
		d.Add(i, i)
	}
	seen := map[int]int{}
	it := d.NewSafeIterator()
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		seen[e.Key.(int)]++
	}
	it.Close()
	assert.Len(t, seen, 500)
	for k, n := range seen {
		assert.Equalf(t, 1, n, "key %d visited %d times", k, n)
	}
}

func TestRehashAcrossBothTables(t *testing.T) {
	d := New(intType())
	const n = 10000
	for i := 0; i < n; i++ {
		d.Add(i, i)
	}

	require.True(t, d.Rehashing())
	d.rehashStep(1)
	require.True(t, d.Rehashing(), "one step must not finish a 10000-entry rehash")

	// Mid-rehash, lookups must consult both tables (§8.4 "Dict rehash
	// across both tables").
	for i := 0; i < n; i++ {
		_, ok := d.Find(i)
		require.Truef(t, ok, "key %d missing mid-rehash", i)
	}

	for d.Rehashing() {
		d.rehashStep(100)
	}
	for i := 0; i < n; i++ {
		_, ok := d.Find(i)
		require.Truef(t, ok, "key %d missing after full rehash", i)
	}
	assert.Equal(t, uint64(n), d.Len())
}

func TestConservationOfUsedAcrossRehash(t *testing.T) {
	d := New(intType())
	const n = 3000
	for i := 0; i < n; i++ {
		d.Add(i, nil)
	}
	for d.Rehashing() {
		assert.Equal(t, uint64(n), d.tables[0].used+d.tables[1].used)
		d.rehashStep(1)
	}
	assert.Equal(t, uint64(n), d.tables[0].used)
}

func TestSafeIteratorPinsRehash(t *testing.T) {
	d := New(intType())
	for i := 0; i < 1500; i++ {
		d.Add(i, nil)
	}
	require.True(t, d.Rehashing())

	it := d.NewSafeIterator()
	before := d.Stats()
	d.maybeRehashStep()
	after := d.Stats()
	assert.Equal(t, before, after, "a live safe iterator must suppress rehash steps")
	it.Close()
}

func TestUnsafeIteratorFingerprint(t *testing.T) {
	d := New(intType())
	for i := 0; i < 10; i++ {
		d.Add(i, nil)
	}

	it := d.NewUnsafeIterator()
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
	}
	assert.NoError(t, it.Close(), "closing without mutation must succeed")

	it2 := d.NewUnsafeIterator()
	it2.Next()
	d.Add(999, nil)
	for {
		_, ok := it2.Next()
		if !ok {
			break
		}
	}
	assert.ErrorIs(t, it2.Close(), ErrIteratorViolated)
}

func TestScanCompletenessUnderRandomMutation(t *testing.T) {
	d := New(intType())
	for i := 0; i < 1000; i++ {
		d.Add(i, nil)
	}

	seen := make(map[int]bool, 1000)
	var cur uint64
	r := rand.New(rand.NewSource(1))
	for {
		cur = d.Scan(cur, func(e *Entry) {
			if k := e.Key.(int); k < 1000 {
				seen[k] = true
			}
		}, nil)
		d.Add(1000+r.Intn(1000), nil)
		if cur == 0 {
			break
		}
	}

	for i := 0; i < 1000; i++ {
		assert.Truef(t, seen[i], "scan missed original key %d", i)
	}
}

func TestScanVisitsEveryKeyWithoutMutation(t *testing.T) {
	d := New(intType())
	for i := 0; i < 777; i++ {
		d.Add(i, nil)
	}

	seen := make(map[int]int, 777)
	var cur uint64
	for {
		cur = d.Scan(cur, func(e *Entry) {
			seen[e.Key.(int)]++
		}, nil)
		if cur == 0 {
			break
		}
	}

	assert.Len(t, seen, 777)
	for k, n := range seen {
		assert.Equalf(t, 1, n, "key %d visited %d times in a stable table", k, n)
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	d := New(intType())
	for i := 0; i < 50; i++ {
		d.Add(i, nil)
	}
	a := d.fingerprint()
	b := d.fingerprint()
	assert.Equal(t, a, b)

	d.Add(51, nil)
	assert.NotEqual(t, a, d.fingerprint())
}

func TestRandomEntryReturnsMember(t *testing.T) {
	d := New(intType())
	keys := map[int]bool{}
	for i := 0; i < 200; i++ {
		d.Add(i, nil)
		keys[i] = true
	}
	for i := 0; i < 100; i++ {
		e, ok := d.RandomEntry()
		require.True(t, ok)
		assert.True(t, keys[e.Key.(int)])
	}
}

func TestSampleStaysWithinBounds(t *testing.T) {
	d := New(intType())
	for i := 0; i < 500; i++ {
		d.Add(i, nil)
	}
	sample := d.Sample(50)
	assert.LessOrEqual(t, len(sample), 50)
	for _, e := range sample {
		_, ok := d.Find(e.Key)
		assert.True(t, ok)
	}
}

func TestShrinkToFit(t *testing.T) {
	d := New(intType())
	for i := 0; i < 1000; i++ {
		d.Add(i, nil)
	}
	for d.Rehashing() {
		d.rehashStep(100)
	}
	for i := 0; i < 990; i++ {
		d.Delete(i)
	}
	require.NoError(t, d.ShrinkToFit())
	for d.Rehashing() {
		d.rehashStep(100)
	}
	assert.Less(t, d.Stats().Table0Size, uint64(1024))
	for i := 990; i < 1000; i++ {
		_, ok := d.Find(i)
		assert.True(t, ok)
	}
}

// Package dict implements an incrementally resizable chained hash
// table: two live tables (T0, T1), a rehash cursor, and a stateless
// reversed-bit-order scan cursor that tolerates interleaved resizes.
//
// Keys and values are opaque to the Dict; all type-specific behavior
// (hashing, duplication, comparison, destruction) is supplied through
// a Type descriptor whose callbacks, other than Hash, may be nil — a nil dup callback
// means "store the passed value", a nil destroy callback means
// "nothing to free", a nil compare callback means pointer/== equality.
package dict

import "github.com/benbjohnson/clock"

// InitialSize is the minimum bucket-array length (a power of two).
const InitialSize = 4

// DefaultForceResizeRatio is the load ratio above which growth
// proceeds even when resizing has been disabled (§4.2 "Grow trigger").
const DefaultForceResizeRatio = 5

// DefaultShrinkRatio is the load ratio below which a shrink is
// requested after a TABLE-representation hash deletion (§4.3, §9).
const DefaultShrinkRatio = 0.10

// Entry is one key/value binding, chained within its bucket.
type Entry struct {
	Key   interface{}
	Value interface{}
	next  *Entry
}

// Type is the pluggable key/value descriptor (§6.2). Any function
// except Hash may be nil (a nil Hash panics on first use); see the
// package doc for the fallback semantics.
type Type struct {
	Hash        func(key interface{}) uint64
	DupKey      func(key interface{}) interface{}
	DupVal      func(val interface{}) interface{}
	CompareKeys func(a, b interface{}) bool
	DestroyKey  func(key interface{})
	DestroyVal  func(val interface{})
}

func (t *Type) hash(key interface{}) uint64 {
	if t == nil || t.Hash == nil {
		panic("dict: Type.Hash must not be nil")
	}
	return t.Hash(key)
}

func (t *Type) equal(a, b interface{}) bool {
	if t == nil || t.CompareKeys == nil {
		return a == b
	}
	return t.CompareKeys(a, b)
}

func (t *Type) dupKey(key interface{}) interface{} {
	if t == nil || t.DupKey == nil {
		return key
	}
	return t.DupKey(key)
}

func (t *Type) dupVal(val interface{}) interface{} {
	if t == nil || t.DupVal == nil {
		return val
	}
	return t.DupVal(val)
}

func (t *Type) destroyKey(key interface{}) {
	if t == nil || t.DestroyKey == nil {
		return
	}
	t.DestroyKey(key)
}

func (t *Type) destroyVal(val interface{}) {
	if t == nil || t.DestroyVal == nil {
		return
	}
	t.DestroyVal(val)
}

// table is one of the Dict's two live hash tables.
type table struct {
	buckets []*Entry
	mask    uint64
	used    uint64
}

func newTable(size uint64) table {
	if size == 0 {
		return table{}
	}
	return table{buckets: make([]*Entry, size), mask: size - 1}
}

func (tb *table) size() uint64 {
	return uint64(len(tb.buckets))
}

// Dict is an incrementally resizable chained hash table.
type Dict struct {
	typ    *Type
	tables [2]table

	// rehashidx is -1 when no rehash is in progress, otherwise the
	// index of the next T0 bucket to migrate.
	rehashidx int64

	// safeIterators counts live safe iterators; while positive, no
	// rehash step runs (§4.2, §5 "Iterator pinning").
	safeIterators int64

	seed             [16]byte
	canResize        bool
	forceResizeRatio uint32
	clock            clock.Clock
}

// Option configures a Dict at construction time.
type Option func(*Dict)

// WithSeed records seed on the Dict. The Dict never reads it: all
// hashing goes through Type.Hash, so a seeded hash comes from a Hash
// callback that passes its own seed to HashString/HashStringCI.
func WithSeed(seed [16]byte) Option {
	return func(d *Dict) { d.seed = seed }
}

// WithResizeDisabled turns off automatic growth on load factor 1.0,
// leaving only the force-resize-ratio escape hatch (§4.2).
func WithResizeDisabled() Option {
	return func(d *Dict) { d.canResize = false }
}

// WithForceResizeRatio overrides DefaultForceResizeRatio.
func WithForceResizeRatio(ratio uint32) Option {
	return func(d *Dict) { d.forceResizeRatio = ratio }
}

// WithClock injects a clock, primarily so tests can drive
// TimedRehash deterministically with clock.NewMock().
func WithClock(c clock.Clock) Option {
	return func(d *Dict) { d.clock = c }
}

// New returns an empty Dict (both tables empty, rehashidx -1).
func New(typ *Type, opts ...Option) *Dict {
	d := &Dict{
		typ:              typ,
		rehashidx:        -1,
		canResize:        true,
		forceResizeRatio: DefaultForceResizeRatio,
		clock:            clock.New(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Rehashing reports whether an incremental rehash is in progress.
func (d *Dict) Rehashing() bool {
	return d.rehashidx != -1
}

// Len reports the number of live entries across both tables.
func (d *Dict) Len() uint64 {
	return d.tables[0].used + d.tables[1].used
}

// Stats reports a snapshot of both tables' shape, useful for tests
// and operational introspection.
type Stats struct {
	Table0Size, Table0Used uint64
	Table1Size, Table1Used uint64
	RehashIdx              int64
}

// Stats returns a snapshot of the Dict's current shape.
func (d *Dict) Stats() Stats {
	return Stats{
		Table0Size: d.tables[0].size(),
		Table0Used: d.tables[0].used,
		Table1Size: d.tables[1].size(),
		Table1Used: d.tables[1].used,
		RehashIdx:  d.rehashidx,
	}
}

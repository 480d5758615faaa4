// Package hcconfig holds the runtime-settable knobs that size and seed
// the core engines (§6): the hash seed, the Dict resize policy, and
// the HashObject PACKED/TABLE conversion thresholds. There is no
// file-based configuration format; callers build a Config with New
// and functional options, the same shape as the teacher's cache.New.
package hcconfig

// Default threshold and sizing values (§4.3, §9).
const (
	DefaultMaxPackedEntries = 128
	DefaultMaxPackedValue   = 64
	DefaultInitialSize      = 4
	DefaultForceResizeRatio = 5
	DefaultDictCanResize    = true
)

// Config holds the knobs the engines read at construction time.
// InitialSize is stored but no engine reads it: a dict.Dict always
// starts from the dict.InitialSize constant.
type Config struct {
	HashSeed [16]byte

	DictCanResize        bool
	DictForceResizeRatio uint32
	InitialSize          uint64

	MaxPackedEntries int
	MaxPackedValue   int
}

// Option configures a Config at construction time.
type Option func(*Config)

// WithHashSeed sets the process-wide seed used by the Dict's default
// hash functions.
func WithHashSeed(seed [16]byte) Option {
	return func(c *Config) { c.HashSeed = seed }
}

// WithDictResizeDisabled turns off automatic Dict growth on load
// factor 1.0, leaving only the force-resize-ratio escape hatch.
func WithDictResizeDisabled() Option {
	return func(c *Config) { c.DictCanResize = false }
}

// WithDictForceResizeRatio overrides DefaultForceResizeRatio.
func WithDictForceResizeRatio(ratio uint32) Option {
	return func(c *Config) { c.DictForceResizeRatio = ratio }
}

// WithMaxPackedEntries overrides DefaultMaxPackedEntries.
func WithMaxPackedEntries(n int) Option {
	return func(c *Config) { c.MaxPackedEntries = n }
}

// WithMaxPackedValue overrides DefaultMaxPackedValue.
func WithMaxPackedValue(n int) Option {
	return func(c *Config) { c.MaxPackedValue = n }
}

// New returns a Config populated with the package defaults, then
// applies opts.
func New(opts ...Option) *Config {
	c := &Config{
		DictCanResize:        DefaultDictCanResize,
		DictForceResizeRatio: DefaultForceResizeRatio,
		InitialSize:          DefaultInitialSize,
		MaxPackedEntries:     DefaultMaxPackedEntries,
		MaxPackedValue:       DefaultMaxPackedValue,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

package hcconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, DefaultMaxPackedEntries, c.MaxPackedEntries)
	assert.Equal(t, DefaultMaxPackedValue, c.MaxPackedValue)
	assert.Equal(t, uint64(DefaultInitialSize), c.InitialSize)
	assert.True(t, c.DictCanResize)
}

func TestOptionsOverrideDefaults(t *testing.T) {
	seed := [16]byte{1, 2, 3}
	c := New(
		WithHashSeed(seed),
		WithDictResizeDisabled(),
		WithDictForceResizeRatio(10),
		WithMaxPackedEntries(3),
		WithMaxPackedValue(8),
	)
	assert.Equal(t, seed, c.HashSeed)
	assert.False(t, c.DictCanResize)
	assert.Equal(t, uint32(10), c.DictForceResizeRatio)
	assert.Equal(t, 3, c.MaxPackedEntries)
	assert.Equal(t, 8, c.MaxPackedValue)
}

package hashobj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackedAppendFind(t *testing.T) {
	p := NewPackedPairList()
	p.Append([]byte("a"), []byte("1"))
	p.Append([]byte("b"), []byte("22"))
	p.Append([]byte("c"), []byte("333"))

	require.Equal(t, 3, p.Len())
	idx, found := p.Find([]byte("b"))
	require.True(t, found)
	assert.Equal(t, []byte("22"), p.ValueAt(idx))
	assert.Equal(t, []byte("b"), p.FieldAt(idx))

	_, found = p.Find([]byte("missing"))
	assert.False(t, found)
}

func TestPackedReplaceValueGrowAndShrink(t *testing.T) {
	p := NewPackedPairList()
	p.Append([]byte("a"), []byte("1"))
	p.Append([]byte("b"), []byte("2"))
	p.Append([]byte("c"), []byte("3"))

	p.ReplaceValueAt(0, []byte("a much longer replacement value"))
	assert.Equal(t, []byte("a much longer replacement value"), p.ValueAt(0))
	assert.Equal(t, []byte("b"), p.FieldAt(1))
	assert.Equal(t, []byte("2"), p.ValueAt(1))
	assert.Equal(t, []byte("c"), p.FieldAt(2))
	assert.Equal(t, []byte("3"), p.ValueAt(2))

	p.ReplaceValueAt(0, []byte("x"))
	assert.Equal(t, []byte("x"), p.ValueAt(0))
	assert.Equal(t, []byte("b"), p.FieldAt(1))
	assert.Equal(t, []byte("2"), p.ValueAt(1))
}

func TestPackedDeleteAt(t *testing.T) {
	p := NewPackedPairList()
	p.Append([]byte("a"), []byte("1"))
	p.Append([]byte("b"), []byte("2"))
	p.Append([]byte("c"), []byte("3"))

	p.DeleteAt(1)
	require.Equal(t, 2, p.Len())
	assert.Equal(t, []byte("a"), p.FieldAt(0))
	assert.Equal(t, []byte("c"), p.FieldAt(1))
	assert.Equal(t, []byte("3"), p.ValueAt(1))

	_, found := p.Find([]byte("b"))
	assert.False(t, found)
}

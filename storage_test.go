package pawlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageGrowthPadding(t *testing.T) {
	var s storage

	s.resize(1)
	assert.Equal(t, 1, s.length)
	assert.Equal(t, 16, s.allocated(), "small lists get the flat pad")

	// growing within capacity does not reallocate
	before := &s.slots[0]
	s.resize(15)
	assert.Equal(t, 16, s.allocated())
	assert.Same(t, before, &s.slots[0])

	s.resize(100)
	assert.Equal(t, 125, s.allocated(), "large lists pad by a quarter")
	for i := 0; i < s.allocated(); i++ {
		assert.Nil(t, s.slots[i])
	}
}

func TestStorageShrinkIsSoft(t *testing.T) {
	var s storage
	s.resize(40)
	capacity := s.allocated()

	s.resize(3)
	assert.Equal(t, 3, s.length)
	assert.Equal(t, capacity, s.allocated())
}

func TestStorageShrinkOverOwnedSlotPanics(t *testing.T) {
	h, _ := newTestHeap(t)
	var s storage
	*s.slot(2) = h.Int(7)

	assert.Panics(t, func() { s.resize(1) })
	assert.Panics(t, func() { s.resize(-1) })

	(*s.slot(2)).Release(nil)
	s.slots[2] = nil
	s.resize(1)
	assert.Equal(t, 1, s.length)
}

func TestStorageSlotGrows(t *testing.T) {
	var s storage
	p := s.slot(4)
	require.NotNil(t, p)
	assert.Equal(t, 5, s.length)
	assert.Nil(t, *p)
}

func TestStorageCompact(t *testing.T) {
	var s storage
	s.resize(200)
	s.resize(0)
	s.compact()
	assert.Equal(t, 0, s.allocated())

	s.resize(200)
	s.resize(4)
	s.compact()
	assert.Equal(t, padFor(4), s.allocated())
	assert.Equal(t, 4, s.length)
}

func TestStorageTakeAllAndFree(t *testing.T) {
	h, _ := newTestHeap(t)
	var s storage
	*s.slot(0) = h.Int(1)
	*s.slot(1) = h.Int(2)

	assert.Panics(t, func() { s.free() })

	vals := s.takeAll()
	require.Len(t, vals, 2)
	assert.Equal(t, 0, s.length)
	assert.Nil(t, s.slots[0])

	s.free()
	assert.Equal(t, 0, s.allocated())

	for _, v := range vals {
		v.Release(nil)
	}
	requireBalanced(t, h)
}

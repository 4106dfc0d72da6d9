//go:build pawlistdebug

package pawlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorDetectsResize(t *testing.T) {
	h, _ := newTestHeap(t)
	l := h.Ints(1, 2, 3)
	it := NewIterator(l)
	require.True(t, it.Next())

	l.Push(h.Int(4))
	assert.Panics(t, func() { it.Next() })
	assert.Panics(t, func() { it.Get() })

	// Reset re-arms the check for the current length
	it.Reset()
	assert.NotPanics(t, func() { it.Next() })

	require.NoError(t, l.Destroy())
	requireBalanced(t, h)
}

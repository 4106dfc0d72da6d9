package pawlist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpliceRemoves(t *testing.T) {
	h, _ := newTestHeap(t)
	l := h.Ints(3, 2, 1)

	l.SpliceN(1, 1)
	assert.Equal(t, []int64{3, 1}, ints(t, l))

	require.NoError(t, l.Destroy())
	requireBalanced(t, h)
}

func TestSpliceInsertsList(t *testing.T) {
	h, _ := newTestHeap(t)
	l := h.Ints(3, 1)
	nines := h.ListValue(h.Ints(9, 9))

	l.SpliceReplace(1, 0, nines)
	assert.Equal(t, []int64{3, 9, 9, 1}, ints(t, l))
	assert.Equal(t, []int64{9, 9}, ints(t, nines.Contents()), "replacement is unaffected")

	nines.Release(nil)
	require.NoError(t, l.Destroy())
	requireBalanced(t, h)
}

func TestSpliceNormalization(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		length int
		toEnd  bool
		want   []int64
	}{
		{"to end", 2, 0, true, []int64{1, 2}},
		{"negative offset", -2, 1, false, []int64{1, 2, 3, 5}},
		{"offset clamped low", -10, 1, false, []int64{2, 3, 4, 5}},
		{"offset past end", 10, 3, false, []int64{1, 2, 3, 4, 5}},
		{"length clamped to tail", 3, 99, false, []int64{1, 2, 3}},
		{"negative length", 1, -1, false, []int64{1, 5}},
		{"negative length past offset", 3, -4, false, []int64{1, 2, 3, 4, 5}},
		{"zero length", 2, 0, false, []int64{1, 2, 3, 4, 5}},
		{"to end at length", 5, 0, true, []int64{1, 2, 3, 4, 5}},
		{"to end past length", 10, 0, true, []int64{1, 2, 3, 4, 5}},
		{"max length", 1, math.MaxInt, false, []int64{1}},
		{"max length at end", 5, math.MaxInt, false, []int64{1, 2, 3, 4, 5}},
		{"min length", 1, math.MinInt, false, []int64{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHeap(t)
			l := h.Ints(1, 2, 3, 4, 5)
			if tt.toEnd {
				l.Splice(tt.offset)
			} else {
				l.SpliceN(tt.offset, tt.length)
			}
			assert.Equal(t, tt.want, ints(t, l))
			require.NoError(t, l.Destroy())
			requireBalanced(t, h)
		})
	}
}

func TestSpliceHugeLengthClampsToTail(t *testing.T) {
	h, _ := newTestHeap(t)
	l := h.Ints(3, 2, 1)

	l.SpliceN(1, math.MaxInt)
	assert.Equal(t, []int64{3}, ints(t, l))

	cut := l.Extract(0, math.MaxInt)
	assert.Equal(t, []int64{3}, ints(t, cut))
	assert.Zero(t, l.Len())

	require.NoError(t, cut.Destroy())
	require.NoError(t, l.Destroy())
	requireBalanced(t, h)
}

func TestSpliceKeepsHoles(t *testing.T) {
	h, _ := newTestHeap(t)
	l := h.Ints(1, 2, 3, 4)
	inner := h.Ints(8, 0, 9)
	require.True(t, inner.DeleteEntry(1))
	patch := h.ListValue(inner)

	l.SpliceReplace(1, 1, patch)
	assert.Equal(t, "(1, 8, _, 9, 3, 4)", l.String())
	assert.Equal(t, 1, l.Holes())

	removed := l.Extract(1, 3)
	assert.Equal(t, 3, removed.Len())
	assert.Equal(t, "(8, _, 9)", removed.String())
	assert.Equal(t, "(1, 3, 4)", l.String())

	patch.Release(nil)
	require.NoError(t, removed.Destroy())
	require.NoError(t, l.Destroy())
	requireBalanced(t, h)
}

func TestSpliceScalarReplacement(t *testing.T) {
	h, _ := newTestHeap(t)
	l := h.Ints(1, 2, 3, 4)
	seven := h.Int(7)

	l.SpliceReplace(1, 2, seven)
	assert.Equal(t, []int64{1, 7, 4}, ints(t, l))
	assert.Equal(t, 2, seven.RefCount())

	seven.Release(nil)
	require.NoError(t, l.Destroy())
	requireBalanced(t, h)
}

func TestSpliceGrowsAcrossCapacity(t *testing.T) {
	h, _ := newTestHeap(t)
	l := h.Ints(1, 2)
	big := h.NewList()
	for i := 0; i < 40; i++ {
		big.Push(h.Int(100))
	}
	bigValue := h.ListValue(big)

	l.SpliceReplace(1, 0, bigValue)
	require.Equal(t, 42, l.Len())
	n, _ := l.Get(41).(*Object).AsInt()
	assert.Equal(t, int64(2), n)

	bigValue.Release(nil)
	require.NoError(t, l.Destroy())
	requireBalanced(t, h)
}

func TestSpliceIntoItself(t *testing.T) {
	h, _ := newTestHeap(t)
	l := h.Ints(1, 2, 3)
	self := h.ListValue(l)

	l.SpliceReplace(1, 1, self)
	assert.Equal(t, []int64{1, 1, 2, 3, 3}, ints(t, l))

	self.Release(nil)
	requireBalanced(t, h)
}

func TestExtractRoundTrip(t *testing.T) {
	cases := []struct{ offset, length int }{
		{0, 0}, {0, 2}, {1, 3}, {3, 5}, {4, 1}, {5, 1},
	}
	for _, c := range cases {
		h, _ := newTestHeap(t)
		l := h.Ints(10, 20, 30, 40, 50)
		want := ints(t, l)

		removed := l.Extract(c.offset, c.length)
		back := h.ListValue(removed)
		l.SpliceReplace(c.offset, 0, back)

		assert.Equal(t, want, ints(t, l), "offset %d length %d", c.offset, c.length)

		back.Release(nil)
		require.NoError(t, l.Destroy())
		requireBalanced(t, h)
	}
}

func TestExtractRoundTripWithHoles(t *testing.T) {
	cases := []struct{ offset, length int }{
		{0, 0}, {0, 3}, {1, 1}, {1, 3}, {3, 2}, {4, 1}, {0, math.MaxInt},
	}
	for _, c := range cases {
		h, _ := newTestHeap(t)
		l := h.Ints(10, 20, 30, 40, 50)
		require.True(t, l.DeleteEntry(1))
		require.True(t, l.DeleteEntry(3))
		want := l.String()
		require.Equal(t, "(10, _, 30, _, 50)", want)

		removed := l.Extract(c.offset, c.length)
		assert.Equal(t, min(c.length, 5-c.offset), removed.Len(), "offset %d length %d", c.offset, c.length)
		back := h.ListValue(removed)
		l.SpliceReplace(c.offset, 0, back)

		assert.Equal(t, want, l.String(), "offset %d length %d", c.offset, c.length)

		back.Release(nil)
		require.NoError(t, l.Destroy())
		requireBalanced(t, h)
	}
}

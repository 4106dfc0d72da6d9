package pawlist

import (
	"bytes"
	"testing"
)

// newTestHeap returns a heap whose logger writes into buffers instead of
// the console
func newTestHeap(t *testing.T) (*Heap, *bytes.Buffer) {
	t.Helper()
	h := NewHeap(nil)
	var errOut bytes.Buffer
	h.Logger().SetOutput(&bytes.Buffer{}, &errOut)
	return h, &errOut
}

// ints returns the integer contents of l, failing on anything else
func ints(t *testing.T, l *List) []int64 {
	t.Helper()
	out := make([]int64, 0, l.Len())
	for i, v := range l.Values() {
		obj, ok := v.(*Object)
		if !ok {
			t.Fatalf("entry %d is %v, not an object", i, v)
		}
		n, ok := obj.AsInt()
		if !ok {
			t.Fatalf("entry %d is %s, not an int", i, FormatValue(v))
		}
		out = append(out, n)
	}
	return out
}

// requireBalanced fails unless every object has been freed exactly once
func requireBalanced(t *testing.T, h *Heap) {
	t.Helper()
	stats := h.Stats()
	if stats.Live != 0 {
		t.Errorf("expected no live objects, got %d", stats.Live)
	}
	if stats.Overreleased != 0 {
		t.Errorf("expected no over-releases, got %d", stats.Overreleased)
	}
	if stats.Invalid != 0 {
		t.Errorf("expected no acquires of freed objects, got %d", stats.Invalid)
	}
}

// intCompare is a callback comparator over integer objects
func intCompare(left, right Value) (int, error) {
	a, _ := left.(*Object).AsInt()
	b, _ := right.(*Object).AsInt()
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	}
	return 0, nil
}

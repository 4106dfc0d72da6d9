package pawlist

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestroyReleasesEverythingDespiteFailures(t *testing.T) {
	h, errOut := newTestHeap(t)
	errFirst := errors.New("first finalizer failed")
	errSecond := errors.New("second finalizer failed")

	var ran []string
	hook := func(name string, err error) func(*Object) error {
		return func(*Object) error {
			ran = append(ran, name)
			return err
		}
	}

	l := h.NewList(
		h.Int(1),
		h.Instance("a", hook("a", errFirst)),
		h.Instance("b", hook("b", nil)),
		h.Instance("c", hook("c", errSecond)),
		h.Int(2),
	)

	err := l.Destroy()
	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.NotErrorIs(t, err, errSecond)
	assert.Equal(t, []string{"a", "b", "c"}, ran)
	assert.Contains(t, errOut.String(), "Destructor for object")
	requireBalanced(t, h)
}

func TestTeardownIsOnce(t *testing.T) {
	h, errOut := newTestHeap(t)
	l := h.Ints(1, 2)

	require.NoError(t, l.Destroy())
	err := l.Destroy()
	assert.ErrorIs(t, err, ErrFreed)
	assert.Contains(t, errOut.String(), "already torn down")

	sink := &FailureSink{}
	l.ReleaseAll(sink)
	assert.ErrorIs(t, sink.FirstError(), ErrFreed)
	requireBalanced(t, h)
}

func TestTeardownReentry(t *testing.T) {
	// a finalizer that inspects the list being torn down sees it empty
	h, _ := newTestHeap(t)
	l := h.NewList()
	seen := -1
	l.Push(h.Int(1))
	l.Push(h.Instance("inspector", func(*Object) error {
		seen = l.Len()
		return nil
	}))

	require.NoError(t, l.Destroy())
	assert.Equal(t, 0, seen)
	requireBalanced(t, h)
}

func TestMutatorReleaseFailuresGoToListSink(t *testing.T) {
	h, _ := newTestHeap(t)
	boom := errors.New("boom")
	l := h.NewList(h.Instance("x", func(*Object) error { return boom }), h.Int(1))

	require.True(t, l.PopEntry(0))
	assert.ErrorIs(t, l.Failures().FirstError(), boom)

	require.NoError(t, l.Destroy())
	requireBalanced(t, h)
}

func TestOverReleaseIsCounted(t *testing.T) {
	h, errOut := newTestHeap(t)
	v := h.Int(3)
	v.Release(nil)
	v.Release(nil)
	v.Acquire()

	stats := h.Stats()
	assert.Equal(t, 1, stats.Overreleased)
	assert.Equal(t, 1, stats.Invalid)
	assert.Equal(t, 2, strings.Count(errOut.String(), "freed object 1"))
}

func TestTornDownListRejectsNewElements(t *testing.T) {
	h, errOut := newTestHeap(t)
	l := h.Ints(1)
	l.ReleaseAll(nil)

	v := h.Int(2)
	assert.False(t, l.Push(v))
	assert.False(t, l.Set(0, v))
	assert.False(t, l.Insert(v))
	assert.Equal(t, 1, v.RefCount(), "caller keeps ownership")

	other := h.Ints(3, 4)
	l.Merge(other)
	patch := h.ListValue(other.Copy())
	l.SpliceReplace(0, 0, patch)
	assert.Zero(t, l.Len())
	assert.Contains(t, errOut.String(), "Set on a list that was already torn down")
	assert.Contains(t, errOut.String(), "Merge on a list that was already torn down")

	v.Release(nil)
	patch.Release(nil)
	require.NoError(t, other.Destroy())
	l.Free()
	requireBalanced(t, h)
}

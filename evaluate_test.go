package pawlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	h, _ := newTestHeap(t)
	l := NewListNeedsEval()
	l.SetLogger(h.Logger())
	l.Push(h.Int(2))
	l.Push(h.Int(5))
	l.Set(3, h.Int(7))

	double := EvaluatorFunc(func(v Value) (Value, error) {
		n, _ := v.(*Object).AsInt()
		return h.Int(n * 2), nil
	})

	out, err := l.Evaluate(double, nil)
	require.NoError(t, err)
	assert.Equal(t, "(4, 10, _, 14)", out.String())
	assert.False(t, out.NeedsEvaluation())
	assert.Equal(t, "(2, 5, _, 7)", l.String())

	require.NoError(t, out.Destroy())
	require.NoError(t, l.Destroy())
	requireBalanced(t, h)
}

func TestEvaluateAbortsOnFailure(t *testing.T) {
	h, _ := newTestHeap(t)
	l := h.Ints(1, 2, 3, 4)
	bad := errors.New("cannot evaluate 3")

	calls := 0
	ev := EvaluatorFunc(func(v Value) (Value, error) {
		calls++
		n, _ := v.(*Object).AsInt()
		if n == 3 {
			// a partial result handed back with the error is still released
			return h.Int(-1), bad
		}
		return v.Acquire(), nil
	})

	sink := &FailureSink{}
	out, err := l.Evaluate(ev, sink)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, bad)
	assert.Equal(t, 3, calls)
	assert.True(t, sink.IsSet())

	_, err = l.Evaluate(ev, sink)
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, 3, calls)

	require.NoError(t, l.Destroy())
	requireBalanced(t, h)
}

func TestFailureSinkFirstWins(t *testing.T) {
	var sink FailureSink
	first, second := errors.New("first"), errors.New("second")

	assert.False(t, sink.Report(nil))
	assert.True(t, sink.Report(first))
	assert.False(t, sink.Report(second))
	assert.Equal(t, first, sink.FirstError())
	assert.Equal(t, 1, sink.Dropped())

	err := sink.Err("sort")
	assert.EqualError(t, err, "pawlist: sort: first")

	sink.Reset()
	assert.False(t, sink.IsSet())
	assert.NoError(t, sink.Err("sort"))

	var nilSink *FailureSink
	assert.False(t, nilSink.IsSet())
	assert.False(t, nilSink.Report(first))
}

package pawlist

// List is a growable sequence of reference-counted values. It owns one
// reference to every value it holds. A List is single-owner and not safe
// for concurrent use.
type List struct {
	store     storage
	needsEval bool
	logger    *Logger
	sink      *FailureSink
	released  bool
	freed     bool
}

// NewList creates an empty list
func NewList() *List {
	return &List{logger: defaultLogger}
}

// NewListNeedsEval creates an empty list flagged for lazy evaluation. The
// flag is stored for the evaluator and has no effect on list operations.
func NewListNeedsEval() *List {
	l := NewList()
	l.needsEval = true
	return l
}

// newListOwning creates a list that takes over vals without acquiring
func newListOwning(vals []Value, logger *Logger, sink *FailureSink) *List {
	l := &List{logger: logger, sink: sink}
	if len(vals) > 0 {
		l.store.resize(len(vals))
		copy(l.store.slots, vals)
	}
	return l
}

// derive returns an empty list that shares l's logger and failure sink
func (l *List) derive() *List {
	return &List{logger: l.logger, sink: l.sink}
}

// NeedsEvaluation reports whether the list was created for lazy evaluation
func (l *List) NeedsEvaluation() bool { return l.needsEval }

// SetLogger routes the list's debug output through logger
func (l *List) SetLogger(logger *Logger) {
	if logger == nil {
		logger = defaultLogger
	}
	l.logger = logger
}

// Failures returns the sink that collects teardown failures raised while
// this list releases elements
func (l *List) Failures() *FailureSink {
	if l.sink == nil {
		l.sink = &FailureSink{}
	}
	return l.sink
}

// SetFailureSink replaces the list's failure sink
func (l *List) SetFailureSink(sink *FailureSink) { l.sink = sink }

// Len returns the number of slots in use
func (l *List) Len() int { return l.store.length }

// IsEmpty reports whether the list has no elements
func (l *List) IsEmpty() bool { return l.store.length == 0 }

// Cap returns the allocated capacity
func (l *List) Cap() int { return l.store.allocated() }

// dead reports whether l has been torn down, warning about op if so. A
// torn down list takes no new elements.
func (l *List) dead(op string) bool {
	if !l.released && !l.freed {
		return false
	}
	l.logger.WarnCat(CatMemory, "%s on a list that was already torn down", op)
	return true
}

// release gives up one reference, collecting failures in the list's sink
func (l *List) release(v Value) {
	if v == nil {
		return
	}
	v.Release(l.Failures())
}

// slot wraps storage.slot with growth logging
func (l *List) slot(index int) *Value {
	before := l.store.allocated()
	p := l.store.slot(index)
	if after := l.store.allocated(); after != before {
		l.logger.DebugCat(CatList, "Grew storage from %d to %d slots (length %d)", before, after, l.store.length)
	}
	return p
}

// grow extends the logical length by n
func (l *List) grow(n int) {
	if n <= 0 {
		return
	}
	l.slot(l.store.length + n - 1)
}

// Get returns the value at index without changing ownership. Out of range
// indexes and holes return nil.
func (l *List) Get(index int) Value {
	if index < 0 || index >= l.store.length {
		return nil
	}
	return l.store.slots[index]
}

// Set stores v at index, growing the list if needed and releasing any
// value already there. Ownership of v moves into the list. Set returns
// false, leaving ownership with the caller, for a negative index, a nil v
// or a torn down list.
func (l *List) Set(index int, v Value) bool {
	if index < 0 || v == nil || l.dead("Set") {
		return false
	}
	p := l.slot(index)
	old := *p
	*p = v
	l.release(old)
	return true
}

// Push appends v, taking ownership of it. It reports false, leaving
// ownership with the caller, when Set would.
func (l *List) Push(v Value) bool {
	return l.Set(l.store.length, v)
}

// Pop removes the last element and hands ownership to the caller.
// An empty list returns nil.
func (l *List) Pop() Value {
	n := l.store.length
	if n == 0 {
		return nil
	}
	v := l.store.slots[n-1]
	l.store.slots[n-1] = nil
	l.store.resize(n - 1)
	return v
}

// Shift removes the first element and hands ownership to the caller.
// Remaining elements move down by one. An empty list returns nil.
func (l *List) Shift() Value {
	n := l.store.length
	if n == 0 {
		return nil
	}
	v := l.store.slots[0]
	copy(l.store.slots[0:n-1], l.store.slots[1:n])
	l.store.slots[n-1] = nil
	l.store.resize(n - 1)
	return v
}

// Insert prepends v, taking ownership of it. It reports false, leaving
// ownership with the caller, for a nil v or a torn down list.
func (l *List) Insert(v Value) bool {
	if v == nil || l.dead("Insert") {
		return false
	}
	n := l.store.length
	l.grow(1)
	copy(l.store.slots[1:n+1], l.store.slots[0:n])
	l.store.slots[0] = v
	return true
}

// Merge appends a new reference to every element of other. other is left
// untouched.
func (l *List) Merge(other *List) {
	if other == nil || l.dead("Merge") {
		return
	}
	// snapshot first so merging a list into itself terminates
	vals := other.Values()
	for _, v := range vals {
		if v == nil {
			l.grow(1)
			continue
		}
		l.Push(v.Acquire())
	}
}

// DeleteEntry releases the element at index. Only deleting the last
// element shrinks the list; anywhere else the slot is left as a hole so
// the indexes of later elements stay stable.
func (l *List) DeleteEntry(index int) bool {
	n := l.store.length
	if index < 0 || index >= n {
		return false
	}
	v := l.store.slots[index]
	l.store.slots[index] = nil
	if index == n-1 {
		l.store.resize(n - 1)
	}
	l.release(v)
	return true
}

// PopEntry releases the element at index and moves later elements down,
// so no hole is left.
func (l *List) PopEntry(index int) bool {
	n := l.store.length
	if index < 0 || index >= n {
		return false
	}
	v := l.store.slots[index]
	copy(l.store.slots[index:n-1], l.store.slots[index+1:n])
	l.store.slots[n-1] = nil
	l.store.resize(n - 1)
	l.release(v)
	return true
}

// Copy returns a new list holding a new reference to every element.
// Elements are shared with l, not cloned.
func (l *List) Copy() *List {
	return l.CopyFrom(0)
}

// CopyFrom copies the elements from offset to the end. A negative offset
// counts back from the end; offsets are clamped to the list.
func (l *List) CopyFrom(offset int) *List {
	n := l.store.length
	offset = normalizeOffset(offset, n)
	out := l.derive()
	out.needsEval = l.needsEval
	if offset == n {
		return out
	}
	out.store.resize(n - offset)
	for i := offset; i < n; i++ {
		if v := l.store.slots[i]; v != nil {
			out.store.slots[i-offset] = v.Acquire()
		}
	}
	return out
}

// Reverse returns a new list with l's elements in reverse order
func (l *List) Reverse() *List {
	n := l.store.length
	out := l.derive()
	if n == 0 {
		return out
	}
	out.store.resize(n)
	for i, v := range l.store.slots[:n] {
		if v != nil {
			out.store.slots[n-1-i] = v.Acquire()
		}
	}
	return out
}

// Values returns a borrowed snapshot of the elements. The values stay
// owned by the list.
func (l *List) Values() []Value {
	vals := make([]Value, l.store.length)
	copy(vals, l.store.slots[:l.store.length])
	return vals
}

// TakeAll moves every element out of the list and hands ownership to the
// caller. The list is left empty and no longer claims those references.
func (l *List) TakeAll() []Value {
	return l.store.takeAll()
}

// Compact releases spare capacity. It is the only operation that shrinks
// the allocation.
func (l *List) Compact() {
	before := l.store.allocated()
	l.store.compact()
	if after := l.store.allocated(); after != before {
		l.logger.DebugCat(CatList, "Compacted storage from %d to %d slots", before, after)
	}
}

// String returns a display representation like (1, 2, "a")
func (l *List) String() string {
	return FormatList(l)
}

// pushOwned appends v, which may be a hole, taking ownership
func (l *List) pushOwned(v Value) {
	*l.slot(l.store.length) = v
}

// Holes counts empty slots inside the logical length, left behind by
// DeleteEntry or by Set past the end
func (l *List) Holes() int {
	count := 0
	for _, v := range l.store.slots[:l.store.length] {
		if v == nil {
			count++
		}
	}
	return count
}

package pawlist

import "fmt"

// Iterator is a cursor over a list that does not own the elements.
// Position -1 is before the first element and Len() is after the last.
//
// The list must not be resized while an iterator is in use. Builds with
// the pawlistdebug tag check this on every call and panic on violation.
type Iterator struct {
	list   *List
	pos    int
	cyclic bool
	length int
}

// NewIterator returns an iterator that stops after the last element
func NewIterator(l *List) *Iterator {
	return &Iterator{list: l, pos: -1, length: l.Len()}
}

// NewCyclicIterator returns an iterator whose Next restarts at the first
// element once it has moved past the last
func NewCyclicIterator(l *List) *Iterator {
	it := NewIterator(l)
	it.cyclic = true
	return it
}

func (it *Iterator) check() {
	if !checkIterators {
		return
	}
	if n := it.list.Len(); n != it.length {
		panic(fmt.Sprintf("pawlist: list resized from %d to %d during iteration", it.length, n))
	}
}

// Next advances the cursor and reports whether it is on an element
func (it *Iterator) Next() bool {
	it.check()
	n := it.list.Len()
	if n == 0 {
		return false
	}
	if it.pos >= n {
		if !it.cyclic {
			return false
		}
		it.pos = 0
		return true
	}
	it.pos++
	return it.pos < n
}

// Prev moves the cursor back and reports whether it is on an element.
// Moving back past the first element wraps to after-last and returns false.
func (it *Iterator) Prev() bool {
	it.check()
	n := it.list.Len()
	if n == 0 {
		return false
	}
	it.pos--
	if it.pos < 0 {
		it.pos = n
		return false
	}
	if it.pos >= n {
		it.pos = n - 1
	}
	return true
}

// First reports whether the cursor is on the first element
func (it *Iterator) First() bool {
	it.check()
	return it.pos == 0 && it.list.Len() > 0
}

// Last reports whether the cursor is on the last element
func (it *Iterator) Last() bool {
	it.check()
	n := it.list.Len()
	return n > 0 && it.pos == n-1
}

// Position returns the cursor index
func (it *Iterator) Position() int { return it.pos }

// Reset moves the cursor back before the first element
func (it *Iterator) Reset() {
	it.pos = -1
	it.length = it.list.Len()
	it.list.logger.DebugCat(CatIter, "Iterator reset over %d entries", it.length)
}

// Get returns the current element without changing ownership, or nil if
// the cursor is not on an element
func (it *Iterator) Get() Value {
	it.check()
	return it.list.Get(it.pos)
}

// Slot returns the storage cell under the cursor for in-place writes, or
// nil if the cursor is not on an element. It is valid until the list is
// next resized.
func (it *Iterator) Slot() *Value {
	it.check()
	if it.pos < 0 || it.pos >= it.list.Len() {
		return nil
	}
	return &it.list.store.slots[it.pos]
}

// Replace stores v under the cursor, taking ownership of it and releasing
// the previous element. It reports false if the cursor is not on an
// element, in which case ownership stays with the caller.
func (it *Iterator) Replace(v Value) bool {
	p := it.Slot()
	if p == nil || v == nil {
		return false
	}
	old := *p
	*p = v
	it.list.release(old)
	return true
}

package pawlist

// normalizeOffset maps a possibly negative offset onto [0, n]. Negative
// offsets count back from the end.
func normalizeOffset(offset, n int) int {
	if offset < 0 {
		return max(0, n+offset)
	}
	return min(offset, n)
}

// Splice removes every element from offset to the end
func (l *List) Splice(offset int) {
	l.releaseAll(l.splice(offset, 0, true, nil))
}

// SpliceN removes up to length elements starting at offset. A negative
// length stops that many elements before the end.
func (l *List) SpliceN(offset, length int) {
	l.releaseAll(l.splice(offset, length, false, nil))
}

// SpliceReplace removes up to length elements at offset and inserts
// replacement in their place. If replacement holds a list its elements
// are inserted, otherwise the value itself is. The list acquires its own
// references; the caller keeps replacement.
func (l *List) SpliceReplace(offset, length int, replacement Value) {
	l.releaseAll(l.splice(offset, length, false, replacement))
}

// Extract works like SpliceN but moves the removed elements into a new list
// instead of releasing them.
func (l *List) Extract(offset, length int) *List {
	return newListOwning(l.splice(offset, length, false, nil), l.logger, l.sink)
}

// releaseAll releases values removed by a splice. It runs after the
// storage is consistent again.
func (l *List) releaseAll(vals []Value) {
	for _, v := range vals {
		l.release(v)
	}
}

// replacementValues returns newly acquired references for the values a
// splice inserts. A list replacement contributes one slot per entry, holes
// included. They are collected before any slot moves so a list can be
// spliced into itself.
func replacementValues(replacement Value) []Value {
	if replacement == nil {
		return nil
	}
	src := contentsOf(replacement)
	if src == nil {
		return []Value{replacement.Acquire()}
	}
	vals := make([]Value, src.Len())
	for i, v := range src.store.slots[:src.store.length] {
		if v != nil {
			vals[i] = v.Acquire()
		}
	}
	return vals
}

// splice rearranges the storage and returns the removed slots, holes
// included, which the caller now owns.
func (l *List) splice(offset, length int, toEnd bool, replacement Value) []Value {
	if l.dead("Splice") {
		return nil
	}
	size := l.store.length
	offset = normalizeOffset(offset, size)
	switch {
	case toEnd:
		length = size - offset
	case length < 0:
		length = max(0, size+length-offset)
	}
	length = min(length, size-offset)
	end := offset + length
	removedCount := length

	inserts := replacementValues(replacement)

	removed := make([]Value, removedCount)
	copy(removed, l.store.slots[offset:end])
	clear(l.store.slots[offset:end])

	n := len(inserts)
	switch {
	case n > removedCount:
		delta := n - removedCount
		l.grow(delta)
		slots := l.store.slots
		for i := size - 1; i >= end; i-- {
			slots[i+delta] = slots[i]
			slots[i] = nil
		}
	case removedCount > n:
		delta := removedCount - n
		slots := l.store.slots
		for i := end; i < size; i++ {
			slots[i-delta] = slots[i]
			slots[i] = nil
		}
		l.store.resize(size - delta)
	}

	copy(l.store.slots[offset:offset+n], inserts)

	if l.logger.Enabled(CatList) {
		l.logger.DebugCat(CatList, "Spliced %d out, %d in at offset %d (length %d -> %d)",
			removedCount, n, offset, size, l.store.length)
	}
	return removed
}

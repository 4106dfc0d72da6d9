package pawlist

// mergeSort stably sorts src with the callback comparator. The elements
// are split into two borrower lists that take ownership without
// acquiring, sorted recursively and merged back into src. Whether it
// finishes or aborts, src ends up owning exactly the elements it started
// with, so the caller's single teardown releases each one once.
func mergeSort(src *List, c Comparator) bool {
	n := src.store.length
	if n <= 1 {
		return true
	}
	mid := n / 2

	vals := src.TakeAll()
	left := newListOwning(vals[:mid], src.logger, src.sink)
	right := newListOwning(vals[mid:], src.logger, src.sink)

	if !mergeSort(left, c) || !mergeSort(right, c) {
		restore(src, left.TakeAll(), 0)
		restore(src, right.TakeAll(), 0)
		return false
	}

	ls, rs := left.TakeAll(), right.TakeAll()
	li, ri := 0, 0
	for li < len(ls) && ri < len(rs) {
		r, ok := c.call(ls[li], rs[ri])
		if !ok {
			restore(src, ls, li)
			restore(src, rs, ri)
			return false
		}
		if c.takeLeft(r) {
			src.pushOwned(ls[li])
			ls[li] = nil
			li++
		} else {
			src.pushOwned(rs[ri])
			rs[ri] = nil
			ri++
		}
	}
	restore(src, ls, li)
	restore(src, rs, ri)
	return true
}

// restore appends vals[from:] to dst, moving ownership back
func restore(dst *List, vals []Value, from int) {
	for i := from; i < len(vals); i++ {
		dst.pushOwned(vals[i])
		vals[i] = nil
	}
}

package pawlist

// span is a closed index range still waiting to be partitioned
type span struct{ left, right int }

// quickSort sorts a in place with the callback comparator. It returns
// false as soon as a callback fails. Every element of a stays in exactly
// one slot whether the sort finishes or aborts.
//
// Partitions are kept on an explicit stack, larger half pushed first, so
// depth stays logarithmic on sorted or reversed input. Each range is
// partitioned exactly as a recursive version would, so the output order
// does not depend on the traversal.
func quickSort(a []Value, c Comparator) bool {
	if len(a) < 2 {
		return true
	}
	stack := []span{{0, len(a) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p, ok := partition(a, s.left, s.right, c)
		if !ok {
			return false
		}

		lo := span{s.left, p - 1}
		hi := span{p + 1, s.right}
		if lo.right-lo.left < hi.right-hi.left {
			lo, hi = hi, lo
		}
		if lo.right > lo.left {
			stack = append(stack, lo)
		}
		if hi.right > hi.left {
			stack = append(stack, hi)
		}
	}
	return true
}

// partition splits a[left..right] around the leftmost element and returns
// its final index. hole tracks the slot whose value currently lives twice
// in a, so an abort can put the pivot back and leave no duplicates.
func partition(a []Value, left, right int, c Comparator) (int, bool) {
	pivot := a[left]
	hole := left
	abort := func() (int, bool) {
		a[hole] = pivot
		return 0, false
	}

	for left < right {
		for left < right {
			r, ok := c.call(a[right], pivot)
			if !ok {
				return abort()
			}
			if !keepRight(c.dir, r) {
				break
			}
			right--
		}
		if left != right {
			a[left] = a[right]
			hole = right
			left++
		}

		for left < right {
			r, ok := c.call(a[left], pivot)
			if !ok {
				return abort()
			}
			if !keepLeft(c.dir, r) {
				break
			}
			left++
		}
		if left != right {
			a[right] = a[left]
			hole = left
			right--
		}
	}
	a[left] = pivot
	return left, true
}

// keepRight reports whether an element comparing r against the pivot may
// stay in the right part
func keepRight(dir Direction, r int) bool {
	if dir == Descending {
		return r < 0
	}
	return r >= 0
}

// keepLeft reports whether an element comparing r against the pivot may
// stay in the left part
func keepLeft(dir Direction, r int) bool {
	if dir == Descending {
		return r > 0
	}
	return r <= 0
}

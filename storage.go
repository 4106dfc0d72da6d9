package pawlist

import "fmt"

// fixedPad is the minimum number of spare slots added on every growth so
// small lists don't reallocate on each push.
const fixedPad = 15

// storage is the growable slot buffer behind a List.
//
// Slots [0, length) each hold exactly one owned reference; slots
// [length, len(slots)) are nil. len(slots) is the allocated capacity.
type storage struct {
	slots  []Value
	length int
}

// allocated returns the number of slots currently allocated
func (s *storage) allocated() int {
	return len(s.slots)
}

// padFor returns the capacity allocated when growing to n
func padFor(n int) int {
	return n + max(n/4, fixedPad)
}

// resize sets the logical length to n. Shrinking keeps capacity and
// requires the vacated slots to be released by the caller already.
func (s *storage) resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("pawlist: resize to negative length %d", n))
	}
	if n < s.length {
		for i := n; i < s.length; i++ {
			if s.slots[i] != nil {
				panic(fmt.Sprintf("pawlist: shrinking to %d would drop owned slot %d", n, i))
			}
		}
		s.length = n
		return
	}
	if n >= s.allocated() {
		grown := make([]Value, padFor(n))
		copy(grown, s.slots[:s.length])
		s.slots = grown
	}
	s.length = n
}

// slot returns a pointer to slot index, growing the storage first if
// index is at or past the end. It is the single growth entry point.
func (s *storage) slot(index int) *Value {
	if index >= s.length {
		s.resize(index + 1)
	}
	return &s.slots[index]
}

// takeAll moves every element out and leaves the storage empty. The
// storage no longer claims the returned references.
func (s *storage) takeAll() []Value {
	vals := make([]Value, s.length)
	copy(vals, s.slots[:s.length])
	clear(s.slots[:s.length])
	s.length = 0
	return vals
}

// compact reallocates so that capacity is the padded size of length
func (s *storage) compact() {
	target := padFor(s.length)
	if s.length == 0 {
		target = 0
	}
	if target >= s.allocated() {
		return
	}
	shrunk := make([]Value, target)
	copy(shrunk, s.slots[:s.length])
	s.slots = shrunk
}

// free drops the buffer. The storage must be empty.
func (s *storage) free() {
	if s.length != 0 {
		panic(fmt.Sprintf("pawlist: freeing storage that still owns %d slots", s.length))
	}
	s.slots = nil
}

package pawlist

import "sort"

// Sort returns a copy of l in ascending default order. Missing values
// sort last.
func (l *List) Sort() *List {
	out, _ := l.SortWith(DefaultComparator(Ascending), false)
	return out
}

// SortDescending returns a copy of l in descending default order. Missing
// values still sort last.
func (l *List) SortDescending() *List {
	out, _ := l.SortWith(DefaultComparator(Descending), false)
	return out
}

// SortStable is Sort with equal elements kept in their original order
func (l *List) SortStable() *List {
	out, _ := l.SortWith(DefaultComparator(Ascending), true)
	return out
}

// SortDescendingStable is SortDescending with equal elements kept in
// their original order
func (l *List) SortDescendingStable() *List {
	out, _ := l.SortWith(DefaultComparator(Descending), true)
	return out
}

// SortFunc returns a copy of l sorted ascending by fn with quicksort.
// Failures go into sink (nil means a fresh one); the first aborts the
// sort and no list is returned.
func (l *List) SortFunc(sink *FailureSink, fn CompareFunc) (*List, error) {
	return l.SortWith(CallbackComparator(fn, Ascending, sink), false)
}

// SortDescendingFunc is SortFunc in descending order
func (l *List) SortDescendingFunc(sink *FailureSink, fn CompareFunc) (*List, error) {
	return l.SortWith(CallbackComparator(fn, Descending, sink), false)
}

// SortStableFunc returns a copy of l sorted ascending by fn with
// mergesort. Elements fn reports as equal keep their original order.
func (l *List) SortStableFunc(sink *FailureSink, fn CompareFunc) (*List, error) {
	return l.SortWith(CallbackComparator(fn, Ascending, sink), true)
}

// SortDescendingStableFunc is SortStableFunc in descending order
func (l *List) SortDescendingStableFunc(sink *FailureSink, fn CompareFunc) (*List, error) {
	return l.SortWith(CallbackComparator(fn, Descending, sink), true)
}

// SortWith sorts a copy of l with c. l itself is never reordered. A
// default comparator cannot fail. A callback comparator whose sink is
// already set returns ErrAborted without calling it.
func (l *List) SortWith(c Comparator, stable bool) (*List, error) {
	if !c.IsCallback() || c.fn == nil {
		out := l.Copy()
		a := out.store.slots[:out.store.length]
		less := func(i, j int) bool { return c.less(a[i], a[j]) }
		if stable {
			sort.SliceStable(a, less)
		} else {
			sort.Slice(a, less)
		}
		return out, nil
	}

	if c.sink.IsSet() {
		l.logger.DebugCat(CatSort, "Sort skipped, failure already pending: %v", c.sink.FirstError())
		return nil, &ListError{Op: "sort", Err: ErrAborted}
	}

	out := l.Copy()
	var ok bool
	if stable {
		ok = mergeSort(out, c)
	} else {
		ok = quickSort(out.store.slots[:out.store.length], c)
	}
	if !ok {
		l.logger.DebugCat(CatSort, "%s %s sort of %d entries aborted: %v",
			sortName(stable), c.dir, out.Len(), c.sink.FirstError())
		out.ReleaseAll(c.sink)
		out.Free()
		return nil, c.sink.Err("sort")
	}
	return out, nil
}

func sortName(stable bool) string {
	if stable {
		return "merge"
	}
	return "quick"
}

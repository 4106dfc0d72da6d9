package pawlist

// ReleaseAll is the first teardown phase: it releases every element,
// collecting failures into sink (nil means the list's own sink). A failing
// release does not stop the rest. The elements are moved out before any
// is released, so teardown code that reaches back into the list finds it
// empty.
func (l *List) ReleaseAll(sink *FailureSink) {
	if l.released {
		l.logger.WarnCat(CatMemory, "ReleaseAll called twice on list")
		sink.Report(ErrFreed)
		return
	}
	if sink == nil {
		sink = l.Failures()
	}
	vals := l.store.takeAll()
	l.released = true
	for _, v := range vals {
		if v != nil {
			v.Release(sink)
		}
	}
	if len(vals) > 0 {
		l.logger.DebugCat(CatMemory, "Released %d list entries", len(vals))
	}
}

// Free is the second teardown phase: it drops the slot buffer. The list
// must already be empty, either drained or torn down by ReleaseAll.
func (l *List) Free() {
	if l.freed {
		l.logger.WarnCat(CatMemory, "Free called twice on list")
		return
	}
	l.store.free()
	l.freed = true
}

// Destroy runs both teardown phases and returns the first failure raised
// while releasing elements, if any
func (l *List) Destroy() error {
	if l.released || l.freed {
		l.logger.WarnCat(CatMemory, "Destroy called on a list that was already torn down")
		return &ListError{Op: "destroy", Err: ErrFreed}
	}
	sink := &FailureSink{}
	l.ReleaseAll(sink)
	l.Free()
	return sink.Err("destroy")
}

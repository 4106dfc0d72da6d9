package pawlist

// Min returns a new reference to the smallest element by default order,
// or nil for a list with no elements. Missing values are only returned when
// nothing else is present. The earliest of equal elements wins.
func (l *List) Min() Value {
	return l.extreme(DefaultComparator(Ascending))
}

// Max returns a new reference to the largest element by default order.
// Missing values are skipped as in Min.
func (l *List) Max() Value {
	return l.extreme(DefaultComparator(Descending))
}

// MinFunc returns a new reference to the smallest element according to fn
func (l *List) MinFunc(sink *FailureSink, fn CompareFunc) (Value, error) {
	return l.extremeFunc(CallbackComparator(fn, Ascending, sink), "min")
}

// MaxFunc returns a new reference to the largest element according to fn
func (l *List) MaxFunc(sink *FailureSink, fn CompareFunc) (Value, error) {
	return l.extremeFunc(CallbackComparator(fn, Descending, sink), "max")
}

func (l *List) extreme(c Comparator) Value {
	var best Value
	for _, v := range l.store.slots[:l.store.length] {
		if v == nil {
			continue
		}
		if best == nil || c.less(v, best) {
			best = v
		}
	}
	if best == nil {
		return nil
	}
	return best.Acquire()
}

func (l *List) extremeFunc(c Comparator, op string) (Value, error) {
	if c.fn == nil {
		return l.extreme(DefaultComparator(c.dir)), nil
	}
	if c.sink.IsSet() {
		return nil, &ListError{Op: op, Err: ErrAborted}
	}
	var best Value
	for _, v := range l.store.slots[:l.store.length] {
		if v == nil {
			continue
		}
		if best == nil {
			best = v
			continue
		}
		if isMissing(v) {
			continue
		}
		if isMissing(best) {
			best = v
			continue
		}
		r, ok := c.call(v, best)
		if !ok {
			l.logger.DebugCat(CatSort, "%s aborted: %v", op, c.sink.FirstError())
			return nil, c.sink.Err(op)
		}
		if c.better(r) {
			best = v
		}
	}
	if best == nil {
		return nil, nil
	}
	return best.Acquire(), nil
}

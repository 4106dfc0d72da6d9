package pawlist

// Direction selects ascending or descending order
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// CompareFunc is a resolved user comparison callback. It returns a
// negative number if left sorts before right, zero if they are equal and
// a positive number if left sorts after right. A non-nil error aborts the
// algorithm that called it.
type CompareFunc func(left, right Value) (int, error)

type comparatorKind int

const (
	kindDefault comparatorKind = iota
	kindCallback
)

// Comparator is either the default value ordering or a user callback,
// each with a direction
type Comparator struct {
	kind comparatorKind
	dir  Direction
	fn   CompareFunc
	sink *FailureSink
}

// DefaultComparator orders values with their built-in ordering. Missing
// values sort last in either direction.
func DefaultComparator(dir Direction) Comparator {
	return Comparator{kind: kindDefault, dir: dir}
}

// CallbackComparator orders values with fn. Failures returned by fn are
// reported into sink, which the sorting code polls after every call.
func CallbackComparator(fn CompareFunc, dir Direction, sink *FailureSink) Comparator {
	if sink == nil {
		sink = &FailureSink{}
	}
	return Comparator{kind: kindCallback, dir: dir, fn: fn, sink: sink}
}

// Direction returns the comparator's direction
func (c Comparator) Direction() Direction { return c.dir }

// IsCallback reports whether c calls user code
func (c Comparator) IsCallback() bool { return c.kind == kindCallback }

// Sink returns the failure sink of a callback comparator
func (c Comparator) Sink() *FailureSink { return c.sink }

// call invokes the callback and reports whether the algorithm may go on
func (c Comparator) call(left, right Value) (int, bool) {
	r, err := c.fn(left, right)
	if err != nil {
		c.sink.Report(err)
	}
	if c.sink.IsSet() {
		return 0, false
	}
	return r, true
}

// less is the default ordering with missing values placed last
func (c Comparator) less(a, b Value) bool {
	if isMissing(a) {
		return false
	}
	if isMissing(b) {
		return true
	}
	if c.dir == Descending {
		return orderOf(a, b) > 0
	}
	return orderOf(a, b) < 0
}

// takeLeft reports whether a merge picks the left head for result r.
// Ties go left in both directions so merging stays stable.
func (c Comparator) takeLeft(r int) bool {
	if c.dir == Descending {
		return r >= 0
	}
	return r <= 0
}

// better reports whether r, the result of comparing a candidate with the
// current best, makes the candidate the new extreme
func (c Comparator) better(r int) bool {
	if c.dir == Descending {
		return r > 0
	}
	return r < 0
}

// orderOf compares with the receiver's ordering, treating holes as nil
func orderOf(a, b Value) int {
	if a == nil {
		return compareValues(a, b)
	}
	return a.Order(b)
}

package pawlist

// Value is an opaque, reference-counted element stored in a List.
//
// Ownership moves explicitly: Acquire returns a new owned handle to the
// same value, and Release gives one up. The last Release runs the value's
// teardown, which may call user code; failures it produces go into sink.
type Value interface {
	Acquire() Value
	Release(sink *FailureSink)

	// Order is the built-in tri-state ordering: negative if the receiver
	// sorts before other, zero if equal, positive if after.
	Order(other Value) int

	// IsMissing reports whether this is the absent sentinel.
	IsMissing() bool

	// IsObjectLike reports whether teardown runs a pre-destruction hook.
	IsObjectLike() bool
}

// Container is implemented by values that hold a list. Splice inserts the
// contents of a Container replacement instead of the value itself.
type Container interface {
	Value
	Contents() *List
}

type missingValue struct{}

// Missing is the absent sentinel. It is distinct from a present nil value,
// is never reference counted, and always sorts last.
var Missing Value = missingValue{}

func (missingValue) Acquire() Value { return Missing }
func (missingValue) Release(*FailureSink) {}
func (missingValue) IsMissing() bool { return true }
func (missingValue) IsObjectLike() bool { return false }
func (missingValue) String() string { return "missing" }
func (missingValue) Order(other Value) int {
	if isMissing(other) {
		return 0
	}
	return 1
}

func isMissing(v Value) bool {
	return v != nil && v.IsMissing()
}

// contentsOf returns the list held by v, if any
func contentsOf(v Value) *List {
	if c, ok := v.(Container); ok {
		return c.Contents()
	}
	return nil
}

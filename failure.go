package pawlist

import (
	"errors"
	"fmt"
)

var (
	// ErrAborted is returned when a callback-driven operation starts with
	// a sink that already holds a failure.
	ErrAborted = errors.New("aborted by earlier failure")

	// ErrFreed is reported when teardown is requested twice.
	ErrFreed = errors.New("list already torn down")
)

// ListError wraps the first failure surfaced by a list operation
type ListError struct {
	Op  string
	Err error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("pawlist: %s: %v", e.Op, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// FailureSink accumulates at most one failure. The first report wins;
// later reports are counted but otherwise dropped. Algorithms that call
// external code poll IsSet after every invocation.
type FailureSink struct {
	first   error
	dropped int
}

// Report records err if no failure is held yet and reports whether it was
// the one kept. A nil err is ignored.
func (s *FailureSink) Report(err error) bool {
	if s == nil || err == nil {
		return false
	}
	if s.first != nil {
		s.dropped++
		return false
	}
	s.first = err
	return true
}

// IsSet reports whether a failure has been recorded
func (s *FailureSink) IsSet() bool {
	return s != nil && s.first != nil
}

// FirstError returns the recorded failure, or nil
func (s *FailureSink) FirstError() error {
	if s == nil {
		return nil
	}
	return s.first
}

// Dropped returns how many failures arrived after the first
func (s *FailureSink) Dropped() int {
	if s == nil {
		return 0
	}
	return s.dropped
}

// Reset clears the sink for reuse
func (s *FailureSink) Reset() {
	if s == nil {
		return
	}
	s.first = nil
	s.dropped = 0
}

// Err returns the held failure wrapped as a *ListError for op, or nil
func (s *FailureSink) Err(op string) error {
	if !s.IsSet() {
		return nil
	}
	return &ListError{Op: op, Err: s.first}
}

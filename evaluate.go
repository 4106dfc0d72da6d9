package pawlist

// Evaluator computes the value an element stands for in a lazily
// evaluated list. The returned value is owned by the caller.
type Evaluator interface {
	Evaluate(v Value) (Value, error)
}

// EvaluatorFunc adapts a function to Evaluator
type EvaluatorFunc func(v Value) (Value, error)

// Evaluate calls f(v)
func (f EvaluatorFunc) Evaluate(v Value) (Value, error) { return f(v) }

// Evaluate returns a new list holding the evaluation of every element of
// l, in order. Holes stay holes. The first failure, returned by ev or
// already held in sink, stops evaluation; the partial result is torn down
// and only the failure is returned. l is not changed.
func (l *List) Evaluate(ev Evaluator, sink *FailureSink) (*List, error) {
	if sink == nil {
		sink = &FailureSink{}
	}
	if sink.IsSet() {
		return nil, &ListError{Op: "evaluate", Err: ErrAborted}
	}
	vals := l.Values()
	out := l.derive()
	for i, v := range vals {
		if v == nil {
			out.grow(1)
			continue
		}
		res, err := ev.Evaluate(v)
		if err != nil {
			sink.Report(err)
		}
		if sink.IsSet() {
			if res != nil {
				res.Release(sink)
			}
			l.logger.DebugCat(CatEval, "Evaluation aborted at entry %d of %d: %v", i, len(vals), sink.FirstError())
			out.ReleaseAll(sink)
			out.Free()
			return nil, sink.Err("evaluate")
		}
		if res == nil {
			res = Missing
		}
		out.pushOwned(res)
	}
	return out, nil
}

package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/phroun/pawlist"
)

// errComparatorFailed is what fail@K comparators and evaluators return
var errComparatorFailed = errors.New("callback failed on purpose")

// comparatorFactory builds a compare callback. Factories get a fresh
// counter per use so fail@K counts calls of a single sort.
type comparatorFactory func(arg string) (pawlist.CompareFunc, error)

var comparators = map[string]comparatorFactory{
	"numeric": func(string) (pawlist.CompareFunc, error) { return compareNumeric, nil },
	"length":  func(string) (pawlist.CompareFunc, error) { return compareLength, nil },
	"reverse": func(string) (pawlist.CompareFunc, error) { return compareReverse, nil },
	"equal":   func(string) (pawlist.CompareFunc, error) { return compareEqual, nil },
	"fail": func(arg string) (pawlist.CompareFunc, error) {
		k, err := strconv.Atoi(arg)
		if err != nil || k < 1 {
			return nil, fmt.Errorf("fail@K needs a positive call number, got %q", arg)
		}
		calls := 0
		return func(left, right pawlist.Value) (int, error) {
			calls++
			if calls == k {
				return 0, fmt.Errorf("call %d: %w", calls, errComparatorFailed)
			}
			return compareNumeric(left, right)
		}, nil
	},
}

// lookupComparator resolves a comparator name of the form name or name@arg
func lookupComparator(ref string) (pawlist.CompareFunc, error) {
	name, arg, _ := strings.Cut(ref, "@")
	factory, ok := comparators[name]
	if !ok {
		return nil, fmt.Errorf("unknown comparator %q (have %s)", name, strings.Join(comparatorNames(), ", "))
	}
	return factory(arg)
}

func comparatorNames() []string {
	names := make([]string, 0, len(comparators))
	for name := range comparators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// numberOf returns the numeric value of v, if it has one
func numberOf(v pawlist.Value) (float64, bool) {
	obj, ok := v.(*pawlist.Object)
	if !ok {
		return 0, false
	}
	return obj.AsFloat()
}

// compareNumeric orders numbers by value and everything else after them
// by the default ordering
func compareNumeric(left, right pawlist.Value) (int, error) {
	a, aNum := numberOf(left)
	b, bNum := numberOf(right)
	switch {
	case aNum && bNum:
		switch {
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		}
		return 0, nil
	case aNum:
		return -1, nil
	case bNum:
		return 1, nil
	}
	return defaultOrder(left, right), nil
}

// lengthOf is the rune count of a string, the size of a list and zero for
// anything else
func lengthOf(v pawlist.Value) int {
	obj, ok := v.(*pawlist.Object)
	if !ok {
		return 0
	}
	if s, ok := obj.AsString(); ok {
		return utf8.RuneCountInString(s)
	}
	if l := obj.Contents(); l != nil {
		return l.Len()
	}
	return 0
}

func compareLength(left, right pawlist.Value) (int, error) {
	return lengthOf(left) - lengthOf(right), nil
}

func compareReverse(left, right pawlist.Value) (int, error) {
	return -defaultOrder(left, right), nil
}

func compareEqual(pawlist.Value, pawlist.Value) (int, error) {
	return 0, nil
}

// defaultOrder applies the built-in ordering, placing holes first
func defaultOrder(left, right pawlist.Value) int {
	switch {
	case left == nil && right == nil:
		return 0
	case left == nil:
		return -1
	case right == nil:
		return 1
	}
	return left.Order(right)
}

// evaluatorFactory builds an element evaluator for the eval command
type evaluatorFactory func(sh *Shell, arg string) (pawlist.Evaluator, error)

var evaluators = map[string]evaluatorFactory{
	"double": func(sh *Shell, _ string) (pawlist.Evaluator, error) {
		return pawlist.EvaluatorFunc(func(v pawlist.Value) (pawlist.Value, error) {
			obj, ok := v.(*pawlist.Object)
			if !ok {
				return v.Acquire(), nil
			}
			if n, ok := obj.AsInt(); ok {
				return sh.heap.Int(n * 2), nil
			}
			if f, ok := obj.AsFloat(); ok {
				return sh.heap.Float(f * 2), nil
			}
			if s, ok := obj.AsString(); ok {
				return sh.heap.Str(s + s), nil
			}
			return v.Acquire(), nil
		}), nil
	},
	"str": func(sh *Shell, _ string) (pawlist.Evaluator, error) {
		return pawlist.EvaluatorFunc(func(v pawlist.Value) (pawlist.Value, error) {
			if obj, ok := v.(*pawlist.Object); ok {
				if s, ok := obj.AsString(); ok {
					return sh.heap.Str(s), nil
				}
			}
			return sh.heap.Str(pawlist.FormatValue(v)), nil
		}), nil
	},
	"fail": func(sh *Shell, arg string) (pawlist.Evaluator, error) {
		k, err := strconv.Atoi(arg)
		if err != nil || k < 1 {
			return nil, fmt.Errorf("fail@K needs a positive call number, got %q", arg)
		}
		calls := 0
		return pawlist.EvaluatorFunc(func(v pawlist.Value) (pawlist.Value, error) {
			calls++
			if calls == k {
				return nil, fmt.Errorf("call %d: %w", calls, errComparatorFailed)
			}
			return v.Acquire(), nil
		}), nil
	},
}

func lookupEvaluator(sh *Shell, ref string) (pawlist.Evaluator, error) {
	name, arg, _ := strings.Cut(ref, "@")
	factory, ok := evaluators[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator %q", name)
	}
	return factory(sh, arg)
}

package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/phroun/pawlist"
)

var errUsage = errors.New("wrong arguments")

func usageError(ctx *Context) error {
	return fmt.Errorf("%w, usage: %s", errUsage, ctx.shell.commands[ctx.Name].usage)
}

// arity checks the positional argument count
func arity(ctx *Context, args []token, minArgs, maxArgs int) error {
	if len(args) < minArgs || (maxArgs >= 0 && len(args) > maxArgs) {
		return usageError(ctx)
	}
	return nil
}

func (sh *Shell) registerBuiltins() {
	sh.RegisterCommand("new", "new NAME [VALUE...]", "create a list, replacing any list of that name", cmdNew)
	sh.RegisterCommand("push", "push NAME VALUE...", "append values", cmdPush)
	sh.RegisterCommand("pop", "pop NAME", "remove and print the last element", cmdPop)
	sh.RegisterCommand("shift", "shift NAME", "remove and print the first element", cmdShift)
	sh.RegisterCommand("insert", "insert NAME VALUE", "prepend a value", cmdInsert)
	sh.RegisterCommand("set", "set NAME INDEX VALUE", "store a value, growing the list if needed", cmdSet)
	sh.RegisterCommand("get", "get NAME INDEX", "print one element", cmdGet)
	sh.RegisterCommand("del", "del NAME INDEX", "release an element, leaving a hole", cmdDel)
	sh.RegisterCommand("popat", "popat NAME INDEX", "release an element and close the gap", cmdPopAt)
	sh.RegisterCommand("merge", "merge DST SRC", "append references to every element of SRC", cmdMerge)
	sh.RegisterCommand("copy", "copy DST SRC", "shallow copy", cmdCopy)
	sh.RegisterCommand("from", "from DST SRC OFFSET", "copy from OFFSET to the end", cmdFrom)
	sh.RegisterCommand("reverse", "reverse DST SRC", "reversed copy", cmdReverse)
	sh.RegisterCommand("splice", "splice NAME OFFSET [LENGTH [VALUE]]", "remove a range, optionally replacing it", cmdSplice)
	sh.RegisterCommand("cut", "cut DST NAME OFFSET LENGTH", "move a range out into DST", cmdCut)
	sh.RegisterCommand("sort", "sort DST SRC [desc] [stable] [by=COMPARATOR]", "sorted copy", cmdSort)
	sh.RegisterCommand("min", "min NAME [by=COMPARATOR]", "print the smallest element", cmdMin)
	sh.RegisterCommand("max", "max NAME [by=COMPARATOR]", "print the largest element", cmdMax)
	sh.RegisterCommand("eval", "eval DST SRC by=EVALUATOR", "evaluate every element into DST", cmdEval)
	sh.RegisterCommand("each", "each NAME [back] [cycle=N]", "walk the list with an iterator", cmdEach)
	sh.RegisterCommand("count", "count NAME TYPE", "count elements of a type", cmdCount)
	sh.RegisterCommand("compact", "compact NAME", "release spare capacity", cmdCompact)
	sh.RegisterCommand("show", "show [NAME...]", "print lists", cmdShow)
	sh.RegisterCommand("len", "len NAME", "print length and capacity", cmdLen)
	sh.RegisterCommand("drop", "drop NAME", "tear a list down", cmdDrop)
	sh.RegisterCommand("stats", "stats", "print heap counters", cmdStats)
	sh.RegisterCommand("help", "help [COMMAND]", "list commands", cmdHelp)
}

func cmdNew(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 1, -1); err != nil {
		return err
	}
	sh := ctx.shell
	vals, err := sh.parseValues(ctx.Args[1:])
	if err != nil {
		return err
	}
	return sh.storeList(ctx.Args[0].text, sh.heap.NewList(vals...))
}

func cmdPush(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 2, -1); err != nil {
		return err
	}
	sh := ctx.shell
	l, err := sh.list(ctx.Args[0].text)
	if err != nil {
		return err
	}
	vals, err := sh.parseValues(ctx.Args[1:])
	if err != nil {
		return err
	}
	for _, v := range vals {
		l.Push(v)
	}
	return nil
}

// printTaken prints a value handed over by the list and releases it
func (sh *Shell) printTaken(l *pawlist.List, v pawlist.Value) {
	if v == nil {
		sh.printf("nothing\n")
		return
	}
	sh.printf("%s\n", pawlist.FormatValue(v))
	v.Release(l.Failures())
}

func cmdPop(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 1, 1); err != nil {
		return err
	}
	l, err := ctx.shell.list(ctx.Args[0].text)
	if err != nil {
		return err
	}
	ctx.shell.printTaken(l, l.Pop())
	return takeFailure(l, "pop")
}

func cmdShift(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 1, 1); err != nil {
		return err
	}
	l, err := ctx.shell.list(ctx.Args[0].text)
	if err != nil {
		return err
	}
	ctx.shell.printTaken(l, l.Shift())
	return takeFailure(l, "shift")
}

// takeFailure surfaces and clears a failure raised while a mutator
// released elements
func takeFailure(l *pawlist.List, op string) error {
	sink := l.Failures()
	err := sink.Err(op)
	sink.Reset()
	return err
}

func cmdInsert(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 2, 2); err != nil {
		return err
	}
	sh := ctx.shell
	l, err := sh.list(ctx.Args[0].text)
	if err != nil {
		return err
	}
	v, err := sh.parseValue(ctx.Args[1])
	if err != nil {
		return err
	}
	l.Insert(v)
	return nil
}

func cmdSet(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 3, 3); err != nil {
		return err
	}
	sh := ctx.shell
	l, err := sh.list(ctx.Args[0].text)
	if err != nil {
		return err
	}
	index, err := parseIndex(ctx.Args[1])
	if err != nil {
		return err
	}
	v, err := sh.parseValue(ctx.Args[2])
	if err != nil {
		return err
	}
	if !l.Set(index, v) {
		v.Release(nil)
		return fmt.Errorf("index %d out of range", index)
	}
	return takeFailure(l, "set")
}

func cmdGet(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 2, 2); err != nil {
		return err
	}
	sh := ctx.shell
	l, err := sh.list(ctx.Args[0].text)
	if err != nil {
		return err
	}
	index, err := parseIndex(ctx.Args[1])
	if err != nil {
		return err
	}
	if v := l.Get(index); v != nil {
		sh.printf("%s\n", pawlist.FormatValue(v))
	} else {
		sh.printf("nothing\n")
	}
	return nil
}

func indexCommand(ctx *Context, op func(l *pawlist.List, index int) bool) error {
	if err := arity(ctx, ctx.Args, 2, 2); err != nil {
		return err
	}
	l, err := ctx.shell.list(ctx.Args[0].text)
	if err != nil {
		return err
	}
	index, err := parseIndex(ctx.Args[1])
	if err != nil {
		return err
	}
	if !op(l, index) {
		return fmt.Errorf("index %d out of range", index)
	}
	return takeFailure(l, ctx.Name)
}

func cmdDel(ctx *Context) error {
	return indexCommand(ctx, (*pawlist.List).DeleteEntry)
}

func cmdPopAt(ctx *Context) error {
	return indexCommand(ctx, (*pawlist.List).PopEntry)
}

func cmdMerge(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 2, 2); err != nil {
		return err
	}
	dst, err := ctx.shell.list(ctx.Args[0].text)
	if err != nil {
		return err
	}
	src, err := ctx.shell.list(ctx.Args[1].text)
	if err != nil {
		return err
	}
	dst.Merge(src)
	return nil
}

// deriveCommand stores transform(SRC) under DST
func deriveCommand(ctx *Context, nargs int, transform func(src *pawlist.List, args []token) (*pawlist.List, error)) error {
	if err := arity(ctx, ctx.Args, nargs, nargs); err != nil {
		return err
	}
	sh := ctx.shell
	src, err := sh.list(ctx.Args[1].text)
	if err != nil {
		return err
	}
	out, err := transform(src, ctx.Args[2:])
	if err != nil {
		return err
	}
	return sh.storeList(ctx.Args[0].text, out)
}

func cmdCopy(ctx *Context) error {
	return deriveCommand(ctx, 2, func(src *pawlist.List, _ []token) (*pawlist.List, error) {
		return src.Copy(), nil
	})
}

func cmdFrom(ctx *Context) error {
	return deriveCommand(ctx, 3, func(src *pawlist.List, args []token) (*pawlist.List, error) {
		offset, err := parseIndex(args[0])
		if err != nil {
			return nil, err
		}
		return src.CopyFrom(offset), nil
	})
}

func cmdReverse(ctx *Context) error {
	return deriveCommand(ctx, 2, func(src *pawlist.List, _ []token) (*pawlist.List, error) {
		return src.Reverse(), nil
	})
}

func cmdSplice(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 2, 4); err != nil {
		return err
	}
	sh := ctx.shell
	l, err := sh.list(ctx.Args[0].text)
	if err != nil {
		return err
	}
	offset, err := parseIndex(ctx.Args[1])
	if err != nil {
		return err
	}
	switch len(ctx.Args) {
	case 2:
		l.Splice(offset)
	case 3:
		length, err := parseIndex(ctx.Args[2])
		if err != nil {
			return err
		}
		l.SpliceN(offset, length)
	default:
		length, err := parseIndex(ctx.Args[2])
		if err != nil {
			return err
		}
		repl, err := sh.parseValue(ctx.Args[3])
		if err != nil {
			return err
		}
		l.SpliceReplace(offset, length, repl)
		repl.Release(l.Failures())
	}
	return takeFailure(l, "splice")
}

func cmdCut(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 4, 4); err != nil {
		return err
	}
	sh := ctx.shell
	l, err := sh.list(ctx.Args[1].text)
	if err != nil {
		return err
	}
	offset, err := parseIndex(ctx.Args[2])
	if err != nil {
		return err
	}
	length, err := parseIndex(ctx.Args[3])
	if err != nil {
		return err
	}
	return sh.storeList(ctx.Args[0].text, l.Extract(offset, length))
}

func cmdSort(ctx *Context) error {
	args, opts := options(ctx.Args, "desc", "stable", "by")
	if err := arity(ctx, args, 2, 2); err != nil {
		return err
	}
	sh := ctx.shell
	src, err := sh.list(args[1].text)
	if err != nil {
		return err
	}
	dir := pawlist.Ascending
	if _, ok := opts["desc"]; ok {
		dir = pawlist.Descending
	}
	_, stable := opts["stable"]

	cmp := pawlist.DefaultComparator(dir)
	if by, ok := opts["by"]; ok {
		fn, err := lookupComparator(by)
		if err != nil {
			return err
		}
		cmp = pawlist.CallbackComparator(fn, dir, nil)
	}
	sorted, err := src.SortWith(cmp, stable)
	if err != nil {
		return err
	}
	return sh.storeList(args[0].text, sorted)
}

func extremeCommand(ctx *Context, byDefault func(*pawlist.List) pawlist.Value,
	byFunc func(*pawlist.List, *pawlist.FailureSink, pawlist.CompareFunc) (pawlist.Value, error)) error {
	args, opts := options(ctx.Args, "by")
	if err := arity(ctx, args, 1, 1); err != nil {
		return err
	}
	sh := ctx.shell
	l, err := sh.list(args[0].text)
	if err != nil {
		return err
	}
	var v pawlist.Value
	if by, ok := opts["by"]; ok {
		fn, err := lookupComparator(by)
		if err != nil {
			return err
		}
		if v, err = byFunc(l, nil, fn); err != nil {
			return err
		}
	} else {
		v = byDefault(l)
	}
	sh.printTaken(l, v)
	return nil
}

func cmdMin(ctx *Context) error {
	return extremeCommand(ctx, (*pawlist.List).Min, (*pawlist.List).MinFunc)
}

func cmdMax(ctx *Context) error {
	return extremeCommand(ctx, (*pawlist.List).Max, (*pawlist.List).MaxFunc)
}

func cmdEval(ctx *Context) error {
	args, opts := options(ctx.Args, "by")
	if err := arity(ctx, args, 2, 2); err != nil {
		return err
	}
	by, ok := opts["by"]
	if !ok {
		return usageError(ctx)
	}
	sh := ctx.shell
	src, err := sh.list(args[1].text)
	if err != nil {
		return err
	}
	ev, err := lookupEvaluator(sh, by)
	if err != nil {
		return err
	}
	out, err := src.Evaluate(ev, nil)
	if err != nil {
		return err
	}
	return sh.storeList(args[0].text, out)
}

func cmdEach(ctx *Context) error {
	args, opts := options(ctx.Args, "back", "cycle")
	if err := arity(ctx, args, 1, 1); err != nil {
		return err
	}
	sh := ctx.shell
	l, err := sh.list(args[0].text)
	if err != nil {
		return err
	}

	show := func(it *pawlist.Iterator) {
		marker := ""
		if it.First() {
			marker = " first"
		}
		if it.Last() {
			marker += " last"
		}
		sh.printf("%d: %s%s\n", it.Position(), formatEntry(it.Get()), marker)
	}

	if n, ok := opts["cycle"]; ok {
		steps, err := parseIndex(token{text: n})
		if err != nil || steps < 0 {
			return fmt.Errorf("cycle needs a step count, got %q", n)
		}
		it := pawlist.NewCyclicIterator(l)
		for i := 0; i < steps; i++ {
			if it.Next() {
				show(it)
			}
		}
		return nil
	}

	it := pawlist.NewIterator(l)
	if _, back := opts["back"]; back {
		it.Prev() // before-first wraps to after-last
		for it.Prev() {
			show(it)
		}
		return nil
	}
	for it.Next() {
		show(it)
	}
	return nil
}

// formatEntry formats a borrowed element, showing holes as _
func formatEntry(v pawlist.Value) string {
	if v == nil {
		return "_"
	}
	return pawlist.FormatValue(v)
}

func cmdCount(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 2, 2); err != nil {
		return err
	}
	sh := ctx.shell
	l, err := sh.list(ctx.Args[0].text)
	if err != nil {
		return err
	}
	typ := pawlist.ObjectTypeFromString(ctx.Args[1].text)
	if typ == pawlist.ObjNone && ctx.Args[1].text != "missing" {
		return fmt.Errorf("unknown type %q", ctx.Args[1].text)
	}
	count := 0
	for _, v := range l.Values() {
		switch {
		case v == nil:
		case v.IsMissing():
			if typ == pawlist.ObjNone {
				count++
			}
		default:
			if obj, ok := v.(*pawlist.Object); ok && obj.Type() == typ {
				count++
			}
		}
	}
	sh.printf("%d\n", count)
	return nil
}

func cmdCompact(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 1, 1); err != nil {
		return err
	}
	l, err := ctx.shell.list(ctx.Args[0].text)
	if err != nil {
		return err
	}
	l.Compact()
	return nil
}

func cmdShow(ctx *Context) error {
	sh := ctx.shell
	names := make([]string, 0, len(ctx.Args))
	for _, tok := range ctx.Args {
		names = append(names, tok.text)
	}
	if len(names) == 0 {
		names = sh.listNames()
	}
	for _, name := range names {
		l, err := sh.list(name)
		if err != nil {
			return err
		}
		sh.printf("%s = %s\n", name, l)
	}
	return nil
}

func cmdLen(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 1, 1); err != nil {
		return err
	}
	l, err := ctx.shell.list(ctx.Args[0].text)
	if err != nil {
		return err
	}
	ctx.shell.printf("%d (capacity %d, holes %d)\n", l.Len(), l.Cap(), l.Holes())
	return nil
}

func cmdDrop(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 1, 1); err != nil {
		return err
	}
	return ctx.shell.dropList(ctx.Args[0].text)
}

func cmdStats(ctx *Context) error {
	if err := arity(ctx, ctx.Args, 0, 0); err != nil {
		return err
	}
	sh := ctx.shell
	s := sh.heap.Stats()
	sh.printf("lists %d, live %d, stored %d, freed %d, acquires %d, releases %d, overreleased %d, invalid %d\n",
		len(sh.lists), s.Live, s.Stored, s.Freed, s.Acquires, s.Releases, s.Overreleased, s.Invalid)
	return nil
}

func cmdHelp(ctx *Context) error {
	sh := ctx.shell
	if len(ctx.Args) > 0 {
		name := strings.ToLower(ctx.Args[0].text)
		cmd, ok := sh.commands[name]
		if !ok {
			return fmt.Errorf("unknown command %q", name)
		}
		sh.printf("%s\n  %s\n", cmd.usage, cmd.summary)
		return nil
	}
	names := make([]string, 0, len(sh.commands))
	for name := range sh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := sh.commands[name]
		sh.printf("  %-44s %s\n", cmd.usage, cmd.summary)
	}
	sh.printf("Values: 12 -3.5 \"text\" true false nil missing @list obj:Class bad:Class\n")
	sh.printf("Comparators: %s (fail@K fails on call K)\n", strings.Join(comparatorNames(), ", "))
	return nil
}

package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/phroun/pawlist"
)

// token is one word of a shell line
type token struct {
	text   string
	quoted bool
}

// Context carries one parsed command into its handler
type Context struct {
	shell *Shell
	Name  string
	Args  []token
}

// Handler runs a shell command
type Handler func(ctx *Context) error

type command struct {
	usage   string
	summary string
	handler Handler
}

// Shell holds named lists over one heap and dispatches commands to them
type Shell struct {
	heap     *pawlist.Heap
	logger   *pawlist.Logger
	lists    map[string]*pawlist.List
	commands map[string]command
	out      io.Writer
	config   *CLIConfig
}

// NewShell creates a shell with every builtin command registered
func NewShell(cfg *CLIConfig, out io.Writer) *Shell {
	if cfg == nil {
		cfg = DefaultCLIConfig()
	}
	heap := pawlist.NewHeap(&cfg.Config)
	sh := &Shell{
		heap:     heap,
		logger:   heap.Logger(),
		lists:    make(map[string]*pawlist.List),
		commands: make(map[string]command),
		out:      out,
		config:   cfg,
	}
	sh.registerBuiltins()
	return sh
}

// RegisterCommand adds or replaces a command
func (sh *Shell) RegisterCommand(name, usage, summary string, handler Handler) {
	sh.commands[name] = command{usage: usage, summary: summary, handler: handler}
}

// SetOutput redirects command and log output
func (sh *Shell) SetOutput(out io.Writer) {
	sh.out = out
	sh.logger.SetOutput(out, out)
}

// Heap returns the heap the shell's values live in
func (sh *Shell) Heap() *pawlist.Heap { return sh.heap }

// Execute runs one line, which may hold several commands separated by
// semicolons. It stops at the first failing command.
func (sh *Shell) Execute(line string) error {
	toks, err := tokenize(line)
	if err != nil {
		return err
	}
	for _, stmt := range splitStatements(toks) {
		if len(stmt) == 0 {
			continue
		}
		name := strings.ToLower(stmt[0].text)
		cmd, ok := sh.commands[name]
		if !ok {
			return fmt.Errorf("unknown command %q (try help)", stmt[0].text)
		}
		sh.logger.DebugCat(pawlist.CatCommand, "Executing %s with %d args", name, len(stmt)-1)
		if err := cmd.handler(&Context{shell: sh, Name: name, Args: stmt[1:]}); err != nil {
			return &CommandError{Command: name, Err: err}
		}
	}
	return nil
}

// Close tears down every named list
func (sh *Shell) Close() error {
	var first error
	for _, name := range sh.listNames() {
		if err := sh.dropList(name); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// CommandError is returned when a command fails
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func (sh *Shell) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(sh.out, format, args...)
}

func (sh *Shell) listNames() []string {
	names := make([]string, 0, len(sh.lists))
	for name := range sh.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// list returns the named list
func (sh *Shell) list(name string) (*pawlist.List, error) {
	l, ok := sh.lists[name]
	if !ok {
		return nil, fmt.Errorf("no list named %q", name)
	}
	return l, nil
}

// storeList binds l to name, tearing down any list bound there before
func (sh *Shell) storeList(name string, l *pawlist.List) error {
	if !validListName(name) {
		if err := l.Destroy(); err != nil {
			return fmt.Errorf("invalid list name %q (discarding it: %w)", name, err)
		}
		return fmt.Errorf("invalid list name %q", name)
	}
	var err error
	if _, exists := sh.lists[name]; exists {
		err = sh.dropList(name)
	}
	sh.lists[name] = l
	return err
}

func (sh *Shell) dropList(name string) error {
	l, ok := sh.lists[name]
	if !ok {
		return fmt.Errorf("no list named %q", name)
	}
	delete(sh.lists, name)
	return l.Destroy()
}

func validListName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r != '_' && r != '-' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// tokenize splits a line into words. Double quotes group a word and allow
// \" \\ \n and \t escapes, a semicolon ends a command and # starts a
// comment.
func tokenize(line string) ([]token, error) {
	var toks []token
	runes := []rune(line)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			i++
		case r == '#':
			return toks, nil
		case r == ';':
			toks = append(toks, token{text: ";"})
			i++
		case r == '"':
			var sb strings.Builder
			i++
			closed := false
			for i < len(runes) {
				c := runes[i]
				if c == '"' {
					closed = true
					i++
					break
				}
				if c == '\\' && i+1 < len(runes) {
					i++
					switch runes[i] {
					case 'n':
						c = '\n'
					case 't':
						c = '\t'
					default:
						c = runes[i]
					}
				}
				sb.WriteRune(c)
				i++
			}
			if !closed {
				return nil, fmt.Errorf("unterminated string")
			}
			toks = append(toks, token{text: sb.String(), quoted: true})
		default:
			start := i
			for i < len(runes) && !strings.ContainsRune(" \t\r\n;\"", runes[i]) {
				i++
			}
			toks = append(toks, token{text: string(runes[start:i])})
		}
	}
	return toks, nil
}

func splitStatements(toks []token) [][]token {
	var stmts [][]token
	var cur []token
	for _, tok := range toks {
		if !tok.quoted && tok.text == ";" {
			stmts = append(stmts, cur)
			cur = nil
			continue
		}
		cur = append(cur, tok)
	}
	return append(stmts, cur)
}

// parseValue turns a word into a new owned value
func (sh *Shell) parseValue(tok token) (pawlist.Value, error) {
	h := sh.heap
	if tok.quoted {
		return h.Str(tok.text), nil
	}
	text := tok.text
	switch text {
	case "nil":
		return h.Nil(), nil
	case "missing":
		return pawlist.Missing, nil
	case "true":
		return h.Bool(true), nil
	case "false":
		return h.Bool(false), nil
	}
	if strings.HasPrefix(text, "@") {
		src, err := sh.list(text[1:])
		if err != nil {
			return nil, err
		}
		return h.ListValue(src.Copy()), nil
	}
	if class, ok := strings.CutPrefix(text, "obj:"); ok && class != "" {
		return h.Instance(class, func(obj *pawlist.Object) error {
			sh.printf("finalized %s #%d\n", obj.Class(), obj.ID())
			return nil
		}), nil
	}
	if class, ok := strings.CutPrefix(text, "bad:"); ok && class != "" {
		return h.Instance(class, func(obj *pawlist.Object) error {
			return fmt.Errorf("finalizer of %s refused", obj.Class())
		}), nil
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return h.Int(n), nil
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return h.Float(f), nil
	}
	return nil, fmt.Errorf("cannot parse value %q", text)
}

// parseValues parses every word, releasing what was built on failure
func (sh *Shell) parseValues(toks []token) ([]pawlist.Value, error) {
	vals := make([]pawlist.Value, 0, len(toks))
	for _, tok := range toks {
		v, err := sh.parseValue(tok)
		if err != nil {
			for _, built := range vals {
				built.Release(nil)
			}
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parseIndex(tok token) (int, error) {
	n, err := strconv.Atoi(tok.text)
	if err != nil || tok.quoted {
		return 0, fmt.Errorf("expected an integer, got %q", tok.text)
	}
	return n, nil
}

// options separates key=value and bare flag words from positional args
func options(args []token, flags ...string) (positional []token, opts map[string]string) {
	opts = make(map[string]string)
	known := make(map[string]bool, len(flags))
	for _, f := range flags {
		known[f] = true
	}
	for _, tok := range args {
		if !tok.quoted {
			if key, value, ok := strings.Cut(tok.text, "="); ok && known[key] {
				opts[key] = value
				continue
			}
			if known[tok.text] {
				opts[tok.text] = ""
				continue
			}
		}
		positional = append(positional, tok)
	}
	return positional, opts
}

package pawlist

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// LogLevel orders messages by severity. Debug output is opt-in, the rest
// always prints.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelWarn
	LevelError
	LevelFatal
)

var levelTags = [...]string{
	LevelDebug: "DEBUG",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "ERROR",
}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelTags) {
		return "UNKNOWN"
	}
	return levelTags[l]
}

// LogCategory names the part of the module a message comes from
type LogCategory string

const (
	CatNone    LogCategory = ""
	CatList    LogCategory = "list"    // storage growth, compaction
	CatMemory  LogCategory = "memory"  // refcounts and teardown
	CatSort    LogCategory = "sort"    // sorts and min/max
	CatIter    LogCategory = "iter"    // iterators
	CatEval    LogCategory = "eval"    // Evaluate
	CatConfig  LogCategory = "config"  // config files
	CatCommand LogCategory = "command" // shell commands
	CatIO      LogCategory = "io"      // shell input
)

// AllCategories is what the "all" log category expands to
var AllCategories = []LogCategory{
	CatList, CatMemory, CatSort, CatIter, CatEval, CatConfig, CatCommand, CatIO,
}

const (
	ansiYellow = "\x1b[93m"
	ansiReset  = "\x1b[0m"
)

// Logger writes debug lines for enabled categories to one writer and
// warnings and errors to another. A nil *Logger discards everything.
type Logger struct {
	mu     sync.Mutex
	debug  bool
	cats   map[LogCategory]bool
	out    io.Writer
	errOut io.Writer
	color  bool
}

// colorWriter reports whether w is a terminal that should get colored
// output. NO_COLOR and TERM=dumb turn color off.
func colorWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// NewLogger creates a logger on stdout and stderr
func NewLogger(debug bool) *Logger {
	return &Logger{
		debug:  debug,
		cats:   make(map[LogCategory]bool),
		out:    os.Stdout,
		errOut: os.Stderr,
		color:  colorWriter(os.Stderr),
	}
}

// NewLoggerFromConfig applies cfg's debug switch, categories and color
// setting. A nil cfg means DefaultConfig.
func NewLoggerFromConfig(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	l := NewLogger(cfg.Debug)
	for _, cat := range cfg.LogCategories {
		if cat == "all" {
			l.EnableAllCategories()
		} else {
			l.EnableCategory(LogCategory(cat))
		}
	}
	l.color = l.color && !cfg.NoColor
	return l
}

// defaultLogger backs lists that were never given a logger. It drops
// debug output and prints warnings and errors to stderr.
var defaultLogger = NewLogger(false)

// SetOutput replaces both writers
func (l *Logger) SetOutput(out, errOut io.Writer) {
	l.mu.Lock()
	l.out, l.errOut = out, errOut
	l.color = colorWriter(errOut)
	l.mu.Unlock()
}

func (l *Logger) SetEnabled(debug bool) {
	l.mu.Lock()
	l.debug = debug
	l.mu.Unlock()
}

func (l *Logger) EnableCategory(cat LogCategory) {
	l.mu.Lock()
	l.cats[cat] = true
	l.mu.Unlock()
}

func (l *Logger) DisableCategory(cat LogCategory) {
	l.mu.Lock()
	delete(l.cats, cat)
	l.mu.Unlock()
}

func (l *Logger) EnableAllCategories() {
	l.mu.Lock()
	for _, cat := range AllCategories {
		l.cats[cat] = true
	}
	l.mu.Unlock()
}

func (l *Logger) IsCategoryEnabled(cat LogCategory) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cats[cat]
}

// Enabled reports whether DebugCat(cat, ...) would print
func (l *Logger) Enabled(cat LogCategory) bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debugOn(cat)
}

func (l *Logger) debugOn(cat LogCategory) bool {
	return l.debug && (cat == CatNone || l.cats[cat])
}

func (l *Logger) emit(level LogLevel, cat LogCategory, message string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if level == LevelDebug {
		if !l.debugOn(cat) {
			return
		}
		tag := level.String()
		if cat != CatNone {
			tag += ":" + string(cat)
		}
		fmt.Fprintf(l.out, "[%s] %s\n", tag, message)
		return
	}

	var b strings.Builder
	if l.color {
		b.WriteString(ansiYellow)
	}
	b.WriteString("[PawList")
	if cat != CatNone {
		b.WriteString(":" + string(cat))
	}
	b.WriteString(" " + level.String() + "] " + message)
	if l.color {
		b.WriteString(ansiReset)
	}
	b.WriteByte('\n')
	io.WriteString(l.errOut, b.String())
}

func (l *Logger) DebugCat(cat LogCategory, format string, args ...interface{}) {
	if l.Enabled(cat) {
		l.emit(LevelDebug, cat, fmt.Sprintf(format, args...))
	}
}

func (l *Logger) WarnCat(cat LogCategory, format string, args ...interface{}) {
	l.emit(LevelWarn, cat, fmt.Sprintf(format, args...))
}

func (l *Logger) ErrorCat(cat LogCategory, format string, args ...interface{}) {
	l.emit(LevelError, cat, fmt.Sprintf(format, args...))
}

// Fatal logs an uncategorized error. It does not exit.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.emit(LevelFatal, CatNone, fmt.Sprintf(format, args...))
}

// CommandError logs a failed shell command, prefixed with the command
// name in capitals when there is one
func (l *Logger) CommandError(cat LogCategory, cmdName, message string) {
	if cmdName != "" {
		message = strings.ToUpper(cmdName) + ": " + message
	}
	l.emit(LevelError, cat, message)
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phroun/pawlist"
	"golang.org/x/term"
)

var version = "dev" // set via -ldflags at build time

// errorPrintf prints an error message to stderr, in yellow on a terminal
func errorPrintf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		fmt.Fprintf(os.Stderr, "%s%s%s", colorYellow, message, colorReset)
	} else {
		fmt.Fprint(os.Stderr, message)
	}
}

func showUsage() {
	usage := `Usage: pawlist [options] [script]
       pawlist [options] < script
       pawlist -e "new a 3 1 2; sort b a; show"

Run list shell commands from a file, stdin, a -e argument, or interactively.

Options:
  -config FILE        Read configuration from FILE (default ~/.pawlist/config.yaml)
  -d, -debug          Enable debug output
  -log CATS           Comma separated log categories (list, memory, sort, iter, eval, command, all)
  -e COMMANDS         Run COMMANDS and exit
  -version            Print the version and exit

Type "help" in the shell for the command list.
`
	fmt.Fprint(os.Stderr, usage)
}

func main() {
	configFlag := flag.String("config", "", "Configuration file")
	debugFlag := flag.Bool("debug", false, "Enable debug output")
	flag.BoolVar(debugFlag, "d", false, "Enable debug output (short)")
	logFlag := flag.String("log", "", "Comma separated log categories")
	execFlag := flag.String("e", "", "Commands to run")
	versionFlag := flag.Bool("version", false, "Print the version")
	flag.Usage = showUsage
	flag.Parse()

	if *versionFlag {
		fmt.Println("pawlist", version)
		return
	}

	cfg, err := loadCLIConfig(*configFlag)
	if err != nil {
		errorPrintf("Error: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *logFlag != "" {
		cfg.Debug = true
		for _, cat := range strings.Split(*logFlag, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				cfg.LogCategories = append(cfg.LogCategories, cat)
			}
		}
		if err := cfg.Validate(); err != nil {
			errorPrintf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	sh := NewShell(cfg, os.Stdout)
	sh.logger.DebugCat(pawlist.CatConfig, "Config: categories %v, prompt %q, background %s",
		cfg.LogCategories, cfg.Prompt, cfg.TermBackground)
	os.Exit(run(sh, *execFlag, flag.Args()))
}

// run picks the input source and returns the exit code
func run(sh *Shell, commands string, args []string) int {
	defer func() {
		if err := sh.Close(); err != nil {
			errorPrintf("Error during teardown: %v\n", err)
		}
	}()

	switch {
	case commands != "":
		return runLines(sh, strings.NewReader(commands), "-e")
	case len(args) > 0:
		file, err := os.Open(args[0])
		if err != nil {
			errorPrintf("Error reading script file: %v\n", err)
			return 1
		}
		defer file.Close()
		return runLines(sh, file, args[0])
	case !term.IsTerminal(int(os.Stdin.Fd())):
		return runLines(sh, os.Stdin, "stdin")
	default:
		if err := runREPL(sh); err != nil {
			errorPrintf("Error: %v\n", err)
			return 1
		}
		return 0
	}
}

// runLines executes r line by line and stops at the first error
func runLines(sh *Shell, r io.Reader, source string) int {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := sh.Execute(scanner.Text()); err != nil {
			sh.logger.CommandError(pawlist.CatCommand, "", fmt.Sprintf("%s:%d: %v", source, lineNo, err))
			return 1
		}
	}
	if err := scanner.Err(); err != nil {
		sh.logger.ErrorCat(pawlist.CatIO, "Reading %s: %v", source, err)
		return 1
	}
	return 0
}

// runREPL reads commands from the terminal until exit, quit or EOF
func runREPL(sh *Shell) error {
	cfg := sh.config
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	// Restore the terminal on interrupt so it is not left in raw mode
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		if _, ok := <-sigChan; ok {
			term.Restore(fd, oldState)
			os.Exit(130) // Standard exit code for SIGINT
		}
	}()

	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	prompt := cfg.Prompt
	if !cfg.NoColor {
		prompt = cfg.promptColor() + prompt + colorReset
	}
	t := term.NewTerminal(screen, prompt)
	if w, h, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(w, h)
	}
	sh.SetOutput(t)

	fmt.Fprintf(t, "pawlist %s. Type 'help' for commands, 'exit' or 'quit' to leave.\n", version)
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(line)
		switch strings.ToLower(trimmed) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		if err := sh.Execute(trimmed); err != nil {
			sh.logger.CommandError(pawlist.CatCommand, "", err.Error())
		}
	}
}

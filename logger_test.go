package pawlist

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLogger(false)
	logger.SetOutput(&out, &errOut)

	logger.DebugCat(CatList, "hidden")
	if out.Len() != 0 {
		t.Errorf("Expected no debug output while disabled, got %q", out.String())
	}

	logger.SetEnabled(true)
	logger.DebugCat(CatList, "still hidden")
	if out.Len() != 0 {
		t.Errorf("Expected no output for a disabled category, got %q", out.String())
	}

	logger.EnableCategory(CatList)
	logger.DebugCat(CatList, "grew %d", 16)
	if got := out.String(); got != "[DEBUG:list] grew 16\n" {
		t.Errorf("Unexpected debug line %q", got)
	}

	logger.DisableCategory(CatList)
	out.Reset()
	logger.DebugCat(CatList, "hidden again")
	if out.Len() != 0 {
		t.Errorf("Expected no output after disabling, got %q", out.String())
	}
}

func TestLoggerWarningsAlwaysPrint(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLogger(false)
	logger.SetOutput(&out, &errOut)

	logger.WarnCat(CatMemory, "double release of %d", 3)
	logger.CommandError(CatCommand, "sort", "unknown comparator")
	logger.Fatal("bad")

	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	want := []string{
		"[PawList:memory WARN] double release of 3",
		"[PawList:command ERROR] SORT: unknown comparator",
		"[PawList ERROR] bad",
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %q", len(want), errOut.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
	if out.Len() != 0 {
		t.Errorf("Warnings should not go to the normal writer, got %q", out.String())
	}
}

func TestNilLoggerIsQuiet(t *testing.T) {
	var logger *Logger
	logger.DebugCat(CatList, "nothing")
	if logger.Enabled(CatList) {
		t.Error("A nil logger should report every category disabled")
	}
}

func TestBareListsUseDefaultLogger(t *testing.T) {
	l := NewList()
	if l.logger != defaultLogger {
		t.Fatal("Expected a bare list to log through defaultLogger")
	}
	if defaultLogger.Enabled(CatNone) || defaultLogger.Enabled(CatList) {
		t.Error("defaultLogger should not print debug output")
	}
}

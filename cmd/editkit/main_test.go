package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/editkit/internal/config"
	"github.com/dshills/editkit/internal/editor"
)

func runLines(t *testing.T, script string) string {
	t.Helper()
	ed := editor.New(config.Default(), nil)
	var out bytes.Buffer
	if err := runScript(ed, strings.NewReader(script), &out); err != nil {
		t.Fatalf("script failed: %v", err)
	}
	return out.String()
}

func TestScriptTypeAndPrint(t *testing.T) {
	out := runLines(t, "type hello\nprint\n")
	if out != "hello\n" {
		t.Errorf("output = %q", out)
	}
}

func TestScriptUndoRedo(t *testing.T) {
	out := runLines(t, `
type hello
undo
print
redo
print
`)
	if out != "\nhello\n" {
		t.Errorf("output = %q", out)
	}
}

func TestScriptDeleteRangeAndMove(t *testing.T) {
	out := runLines(t, `
insert Hello World
move buffer-start
delete 6
print
cursor
`)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 || lines[0] != "World" {
		t.Fatalf("output = %q", out)
	}
}

func TestScriptQuitStopsProcessing(t *testing.T) {
	out := runLines(t, "type a\nquit\nprint\n")
	if out != "" {
		t.Errorf("output after quit = %q", out)
	}
}

func TestScriptUnknownCommand(t *testing.T) {
	ed := editor.New(config.Default(), nil)
	var out bytes.Buffer
	err := runScript(ed, strings.NewReader("explode\n"), &out)
	if err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestScriptCommentsAndBlanksIgnored(t *testing.T) {
	out := runLines(t, "# a comment\n\ntype x\nprint\n")
	if out != "x\n" {
		t.Errorf("output = %q", out)
	}
}

// Package main is a line-oriented driver for the editkit engine. It
// reads editing commands from stdin (or a script file) and applies them
// to an in-memory document, printing the result on demand. It exists
// for scripting and for exercising the engine from the shell.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/editkit/internal/config"
	"github.com/dshills/editkit/internal/editor"
	"github.com/dshills/editkit/internal/engine/position"
	"github.com/dshills/editkit/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	scriptPath string
	logLevel   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Prefix: cfg.Logging.Prefix,
	})

	input := io.Reader(os.Stdin)
	if opts.scriptPath != "" {
		f, err := os.Open(opts.scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		input = f
	}

	ed := editor.New(cfg, log)
	if err := runScript(ed, input, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runScript executes one command per line until EOF or quit.
func runScript(ed *editor.Editor, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quit, err := execute(ed, line, out)
		if err != nil {
			return fmt.Errorf("%q: %w", line, err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// execute applies a single command line to the editor.
func execute(ed *editor.Editor, line string, out io.Writer) (quit bool, err error) {
	cmd, arg, _ := strings.Cut(line, " ")

	switch cmd {
	case "type":
		for _, r := range arg {
			if err := ed.InsertAtCursor(r); err != nil {
				return false, err
			}
		}
	case "insert":
		err = ed.InsertString(arg)
	case "paste":
		err = ed.Paste(arg)
	case "backspace":
		err = repeat(arg, ed.DeleteBackward)
	case "delete":
		err = repeat(arg, ed.DeleteForward)
	case "delete-range":
		var start, end int
		if _, serr := fmt.Sscanf(arg, "%d %d", &start, &end); serr != nil {
			return false, fmt.Errorf("delete-range wants START END: %w", serr)
		}
		err = ed.DeleteRange(start, end)
	case "move":
		m, merr := parseMovement(arg)
		if merr != nil {
			return false, merr
		}
		ed.Move(m)
	case "undo":
		_, err = ed.Undo()
	case "redo":
		_, err = ed.Redo()
	case "print":
		fmt.Fprintln(out, ed.Text())
	case "cursor":
		fmt.Fprintln(out, ed.Cursor())
	case "quit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q", cmd)
	}
	return false, err
}

// repeat runs fn n times; an empty count means once.
func repeat(arg string, fn func() error) error {
	n := 1
	if arg != "" {
		var err error
		if n, err = strconv.Atoi(arg); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

// parseMovement maps script names to movements.
func parseMovement(name string) (position.Movement, error) {
	switch name {
	case "forward", "right":
		return position.MoveForward, nil
	case "backward", "left":
		return position.MoveBackward, nil
	case "up":
		return position.MoveUp, nil
	case "down":
		return position.MoveDown, nil
	case "line-start", "home":
		return position.MoveLineStart, nil
	case "line-end", "end":
		return position.MoveLineEnd, nil
	case "buffer-start", "top":
		return position.MoveBufferStart, nil
	case "buffer-end", "bottom":
		return position.MoveBufferEnd, nil
	default:
		return 0, fmt.Errorf("unknown movement %q", name)
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.scriptPath, "script", "", "Read commands from a file instead of stdin")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "editkit - scriptable text editing engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: editkit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands (one per line on stdin):\n")
		fmt.Fprintf(os.Stderr, "  type TEXT, insert TEXT, paste TEXT\n")
		fmt.Fprintf(os.Stderr, "  backspace [N], delete [N], delete-range START END\n")
		fmt.Fprintf(os.Stderr, "  move KIND, undo, redo, print, cursor, quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("editkit %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts
}

// Rollconv rewrites game rules text into inline roll markup.
// Usage: rollconv [--version] [--plain] [--trace] [--conditions <dir>] [file...]
package main

import (
	"fmt"
	"os"

	"github.com/JTPenguin/inline-roll-macro-sub000/cli"
	"github.com/JTPenguin/inline-roll-macro-sub000/engine"
	"github.com/JTPenguin/inline-roll-macro-sub000/loader"
	"github.com/JTPenguin/inline-roll-macro-sub000/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	trace := false
	var conditionsDir string
	var files []string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("rollconv %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--conditions":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--conditions requires a directory path\n")
				os.Exit(1)
			}
			i++
			conditionsDir = args[i]
		default:
			files = append(files, args[i])
		}
	}

	// Condition table: Lua overrides on top of the built-in fallback.
	table := loader.Default()
	if conditionsDir != "" {
		var err error
		table, err = loader.Load(conditionsDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading conditions: %v\n", err)
			os.Exit(1)
		}
	}

	conv := engine.New(table.Resolve)

	// File mode: convert each file to stdout in order.
	if len(files) > 0 {
		for _, path := range files {
			if err := convertFile(conv, path, trace); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		return
	}

	// Use the plain filter if --plain or stdin is piped/redirected.
	if plain || !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		c := cli.New(conv)
		c.Trace = trace
		if err := c.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := tui.Run(conv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func convertFile(conv *engine.Converter, path string, trace bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	c := cli.New(conv)
	c.In = f
	c.Trace = trace
	return c.Run()
}

// isTerminal returns true if f is a terminal (not piped/redirected).
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

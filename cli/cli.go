// Package cli provides the plain, non-interactive converter front-end:
// read rules text from a stream, write the converted text to another.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JTPenguin/inline-roll-macro-sub000/engine"
	"github.com/JTPenguin/inline-roll-macro-sub000/engine/report"
)

// CLI converts one whole input stream per Run. The stream is treated
// as a single document so condition dedup spans all of it.
type CLI struct {
	Conv  *engine.Converter
	In    io.Reader
	Out   io.Writer
	Err   io.Writer
	Trace bool // emit a JSON finding report on Err after converting
}

// New creates a CLI wired to the given converter and standard streams.
func New(conv *engine.Converter) *CLI {
	return &CLI{
		Conv: conv,
		In:   os.Stdin,
		Out:  os.Stdout,
		Err:  os.Stderr,
	}
}

// Run reads the whole input, converts it, and writes the result.
func (c *CLI) Run() error {
	data, err := io.ReadAll(c.In)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	text := string(data)

	out := c.Conv.Convert(text)
	if _, err := io.WriteString(c.Out, out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	// Keep piped output line-terminated.
	if !strings.HasSuffix(out, "\n") {
		if _, err := io.WriteString(c.Out, "\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if c.Trace {
		findings := c.Conv.Report(text)
		payload, err := report.Marshal(findings)
		if err != nil {
			return fmt.Errorf("encoding trace report: %w", err)
		}
		fmt.Fprintf(c.Err, "%s\n", payload)
	}
	return nil
}

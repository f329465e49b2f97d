// Package engine provides the Convert() orchestrator that wires
// together detection, replacement construction, and reassembly into a
// single text conversion.
package engine

import (
	"log/slog"
	"sort"

	"github.com/JTPenguin/inline-roll-macro-sub000/engine/assemble"
	"github.com/JTPenguin/inline-roll-macro-sub000/engine/detect"
	"github.com/JTPenguin/inline-roll-macro-sub000/engine/linker"
	"github.com/JTPenguin/inline-roll-macro-sub000/engine/pattern"
	"github.com/JTPenguin/inline-roll-macro-sub000/engine/replace"
	"github.com/JTPenguin/inline-roll-macro-sub000/engine/report"
	"github.com/JTPenguin/inline-roll-macro-sub000/types"
)

// Converter holds the shared, read-only pattern registry and the
// injected condition resolver. A Converter is safe to reuse across
// calls: the only per-call state is the condition dedup set, which
// every Convert builds fresh.
type Converter struct {
	registry *pattern.Registry
	resolve  replace.Resolver
}

// New creates a converter with the built-in rules. resolve may be nil,
// in which case condition mentions are left as plain text.
func New(resolve replace.Resolver) *Converter {
	return &Converter{registry: pattern.Default(), resolve: resolve}
}

// Convert rewrites recognized phrases in text into inline-roll markup.
// It never fails: spans it cannot convert are left untouched, and text
// containing nothing recognizable comes back unchanged.
func (c *Converter) Convert(text string) string {
	reps, _ := c.build(text)
	return assemble.Apply(text, reps)
}

// Report returns one finding per detected replacement, in source
// order, without modifying the text.
func (c *Converter) Report(text string) []report.Finding {
	reps, matches := c.build(text)
	findings := make([]report.Finding, 0, len(reps))
	for i, r := range reps {
		sp := r.Span()
		findings = append(findings, report.Finding{
			Type:     string(matches[i].Type),
			Start:    sp.Start,
			End:      sp.End,
			Original: sp.Text,
			Rendered: r.Render(),
			Priority: r.Priority(),
			Enabled:  r.Enabled(),
			Valid:    r.Valid(),
		})
	}
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Start < findings[j].Start
	})
	return findings
}

// build runs detection and constructs replacement records. The two
// returned slices are parallel. Construction failures are contained
// per record: the match is skipped and the rest keep going.
func (c *Converter) build(text string) ([]replace.Replacement, []types.Match) {
	matches := detect.All(text, c.registry)
	// Construction order is textual order, not detection order, so the
	// linker always claims the first occurrence of each condition key.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Span.Start < matches[j].Span.Start
	})
	lk := linker.New()

	reps := make([]replace.Replacement, 0, len(matches))
	kept := make([]types.Match, 0, len(matches))
	for _, m := range matches {
		rep, err := replace.Build(m, c.resolve, lk)
		if err != nil {
			slog.Debug("skipping match", "type", string(m.Type), "err", err)
			continue
		}
		reps = append(reps, rep)
		kept = append(kept, m)
	}
	return reps, kept
}

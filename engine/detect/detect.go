// Package detect runs every registered grammar against the input text
// and resolves overlapping matches: highest priority wins, ties go to
// the leftmost start. Losing matches are dropped entirely.
package detect

import (
	"log/slog"
	"sort"

	"github.com/JTPenguin/inline-roll-macro-sub000/engine/pattern"
	"github.com/JTPenguin/inline-roll-macro-sub000/types"
)

// All collects every rule's matches, normalizes them, and returns the
// non-overlapping survivors. A malformed normalize result is dropped
// with a diagnostic; one bad rule never blocks the others.
func All(text string, reg *pattern.Registry) []types.Match {
	var found []types.Match
	for _, rule := range reg.Rules() {
		for _, loc := range rule.Grammar.FindAllStringSubmatchIndex(text, -1) {
			raw := pattern.Raw{Source: text, Index: loc}
			m, ok := rule.Apply(raw)
			if !ok || !wellFormed(m, len(text)) {
				slog.Debug("dropping malformed match",
					"rule", string(rule.Type), "offset", loc[0])
				continue
			}
			found = append(found, m)
		}
	}
	return resolve(found)
}

// wellFormed checks the normalized match carries a full-match string
// and a span inside the input.
func wellFormed(m types.Match, n int) bool {
	if len(m.Groups) == 0 || m.Groups[0] == "" {
		return false
	}
	return m.Span.Start >= 0 && m.Span.Start < m.Span.End && m.Span.End <= n
}

// resolve keeps matches greedily in (priority desc, start asc) order,
// skipping any whose span overlaps an already-kept span. Priority is
// the primary key, not length: a short high-priority match beats a
// longer low-priority one.
func resolve(ms []types.Match) []types.Match {
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].Priority != ms[j].Priority {
			return ms[i].Priority > ms[j].Priority
		}
		return ms[i].Span.Start < ms[j].Span.Start
	})

	var kept []types.Match
	for _, m := range ms {
		if overlapsAny(kept, m.Span) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

func overlapsAny(kept []types.Match, sp types.Span) bool {
	for _, k := range kept {
		if sp.Start < k.Span.End && sp.End > k.Span.Start {
			return true
		}
	}
	return false
}

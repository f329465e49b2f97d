// Package assemble splices rendered replacements back into the source
// text and runs the final legacy-vocabulary cleanup pass.
package assemble

import (
	"regexp"
	"sort"

	"github.com/JTPenguin/inline-roll-macro-sub000/engine/replace"
)

var legacyOffGuardRe = regexp.MustCompile(`(?i)flat-footed`)

// Apply splices every enabled, valid replacement into text, rightmost
// first so earlier splices never shift later offsets, then normalizes
// any remaining legacy condition alias the grammars did not cover.
func Apply(text string, reps []replace.Replacement) string {
	live := make([]replace.Replacement, 0, len(reps))
	for _, r := range reps {
		if r.Enabled() && r.Valid() {
			live = append(live, r)
		}
	}

	sort.SliceStable(live, func(i, j int) bool {
		return live[i].Span().Start > live[j].Span().Start
	})

	for _, r := range live {
		sp := r.Span()
		if sp.Start < 0 || sp.End > len(text) || sp.Start >= sp.End {
			continue
		}
		text = text[:sp.Start] + r.Render() + text[sp.End:]
	}

	return legacyOffGuardRe.ReplaceAllString(text, "off-guard")
}

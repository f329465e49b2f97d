// Package pattern implements the ordered registry of grammar rules the
// detector runs against input text. Each rule pairs a regular
// expression with a priority and a normalizer that collapses the raw
// match into one canonical shape.
package pattern

import (
	"regexp"

	"github.com/JTPenguin/inline-roll-macro-sub000/types"
)

// Raw is a single grammar match before normalization.
type Raw struct {
	Source string
	Index  []int // submatch byte offsets, as returned by FindAllStringSubmatchIndex
}

// Start returns the byte offset where the match begins.
func (r Raw) Start() int { return r.Index[0] }

// End returns the byte offset just past the match.
func (r Raw) End() int { return r.Index[1] }

// Group returns capture group n, or "" if it did not participate.
func (r Raw) Group(n int) string {
	if 2*n+1 >= len(r.Index) {
		return ""
	}
	lo, hi := r.Index[2*n], r.Index[2*n+1]
	if lo < 0 {
		return ""
	}
	return r.Source[lo:hi]
}

// GroupSpan returns the byte range of capture group n.
func (r Raw) GroupSpan(n int) (start, end int, ok bool) {
	if 2*n+1 >= len(r.Index) || r.Index[2*n] < 0 {
		return 0, 0, false
	}
	return r.Index[2*n], r.Index[2*n+1], true
}

// Groups returns all capture groups; index 0 is the full match.
func (r Raw) Groups() []string {
	out := make([]string, len(r.Index)/2)
	for i := range out {
		out[i] = r.Group(i)
	}
	return out
}

// Span returns the full match as a types.Span.
func (r Raw) Span() types.Span {
	return types.Span{Start: r.Start(), End: r.End(), Text: r.Source[r.Start():r.End()]}
}

// Normalizer turns a raw grammar match into a canonical match record.
// Returning false drops the match.
type Normalizer func(Raw) (types.Match, bool)

// Rule is one registered grammar with its priority and normalizer.
type Rule struct {
	Type      types.PatternType
	Grammar   *regexp.Regexp
	Priority  int
	Normalize Normalizer // nil means identity: raw groups pass through unchanged
}

// Apply normalizes raw through the rule. A nil normalizer yields the
// default match (raw groups, full span). Type and Priority always come
// from the rule, never from the normalizer.
func (r Rule) Apply(raw Raw) (types.Match, bool) {
	m := types.Match{Span: raw.Span(), Groups: raw.Groups()}
	if r.Normalize != nil {
		nm, ok := r.Normalize(raw)
		if !ok {
			return types.Match{}, false
		}
		nm.Groups = m.Groups
		if nm.Span.Text == "" {
			nm.Span = m.Span
		}
		m = nm
	}
	m.Type = r.Type
	m.Priority = r.Priority
	return m, true
}

// Registry is an ordered, append-only collection of rules. It is built
// once and safe to share across conversions; registration order never
// affects behavior, only priority and match offset do.
type Registry struct {
	rules []Rule
}

// New returns an empty registry.
func New() *Registry { return &Registry{} }

// Register appends a rule.
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns the registered rules.
func (r *Registry) Rules() []Rule { return r.rules }

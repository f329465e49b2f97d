// Package replace builds typed replacement records from normalized
// matches and renders each one into inline-roll markup. Construction
// parses the match into variant fields; rendering is a pure function
// of the record.
package replace

import (
	"fmt"
	"regexp"

	"github.com/JTPenguin/inline-roll-macro-sub000/engine/linker"
	"github.com/JTPenguin/inline-roll-macro-sub000/types"
)

// Resolver maps a lowercased condition name to a host identifier.
// Supplied by the host; absence means the mention degrades to plain text.
type Resolver func(name string) (string, bool)

// Replacement is one convertible span with its rendered form.
type Replacement interface {
	Span() types.Span
	Priority() int
	Enabled() bool
	Valid() bool
	Render() string
}

// base carries the fields shared by every variant.
type base struct {
	span     types.Span
	priority int
	enabled  bool
}

func newBase(m types.Match) base {
	return base{span: m.Span, priority: m.Priority, enabled: true}
}

func (b base) Span() types.Span { return b.span }
func (b base) Priority() int    { return b.priority }
func (b base) Enabled() bool    { return b.enabled }

var (
	wordBasic  = regexp.MustCompile(`(?i)\bbasic\b`)
	wordSecret = regexp.MustCompile(`(?i)\bsecret\b`)
)

// Build dispatches a normalized match to its variant constructor.
// An unknown type is an error for that match only; the caller skips it
// and keeps processing the rest.
func Build(m types.Match, resolve Resolver, lk *linker.Linker) (Replacement, error) {
	switch m.Type {
	case types.PatternDamage:
		return newDamage(m), nil
	case types.PatternHealing:
		return newHealing(m), nil
	case types.PatternSave, types.PatternCheck:
		return newCheck(m), nil
	case types.PatternCondition:
		return newCondition(m, resolve, lk), nil
	case types.PatternTemplate:
		return newTemplate(m), nil
	case types.PatternUtility:
		return newUtility(m), nil
	case types.PatternAction:
		return newAction(m), nil
	case types.PatternRewrite:
		return newRewrite(m), nil
	default:
		return nil, fmt.Errorf("unknown pattern type %q", m.Type)
	}
}

// capitalizeFirst uppercases only the first letter, leaving the rest of
// the word untouched.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}

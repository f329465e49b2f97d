package replace

import (
	"strings"

	"github.com/JTPenguin/inline-roll-macro-sub000/engine/lexicon"
	"github.com/JTPenguin/inline-roll-macro-sub000/types"
)

// Check is a saving throw, skill check, perception check, or flat
// check. The trailing description word is an explicit field: save
// grammars use "save", everything else "check".
type Check struct {
	base
	CheckType string
	DC        string
	Basic     bool
	Secret    bool
	Skills    []string // multi-skill form: one directive per skill
	Trailing  string
}

// newCheck prefers role-named extraction supplied by the rule's
// normalizer and falls back to positional capture groups (group 1 =
// type, group 2 = DC) when no roles were supplied.
func newCheck(m types.Match) *Check {
	c := &Check{base: newBase(m), Trailing: "check"}
	if m.Type == types.PatternSave {
		c.Trailing = "save"
	}

	switch {
	case len(m.Skills) > 0:
		c.Skills = m.Skills
		c.DC = m.Named["dc"]
	case m.Named != nil:
		c.CheckType = m.Named["type"]
		c.DC = m.Named["dc"]
	default:
		if len(m.Groups) > 1 {
			c.CheckType = lexicon.CanonicalSave(m.Groups[1])
		}
		if len(m.Groups) > 2 {
			c.DC = m.Groups[2]
		}
	}

	c.Basic = wordBasic.MatchString(m.Span.Text)
	c.Secret = wordSecret.MatchString(m.Span.Text)
	return c
}

// Valid requires a check type (or skills) and a DC.
func (c *Check) Valid() bool {
	if len(c.Skills) > 0 {
		return c.DC != ""
	}
	return c.CheckType != "" && c.DC != ""
}

func (c *Check) Render() string {
	if len(c.Skills) > 0 {
		parts := make([]string, len(c.Skills))
		for i, s := range c.Skills {
			parts[i] = c.directive(s)
		}
		return strings.Join(parts, " or ") + " " + c.Trailing
	}
	return c.directive(c.CheckType) + " " + c.Trailing
}

// directive builds one @Check token: type, then dc, then basic, joined
// with pipes.
func (c *Check) directive(kind string) string {
	params := []string{kind}
	if c.DC != "" {
		params = append(params, "dc:"+c.DC)
	}
	if c.Basic {
		params = append(params, "basic")
	}
	return "@Check[" + strings.Join(params, "|") + "]"
}

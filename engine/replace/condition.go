package replace

import (
	"github.com/JTPenguin/inline-roll-macro-sub000/engine/linker"
	"github.com/JTPenguin/inline-roll-macro-sub000/types"
)

// Condition is a status-condition mention linked to a host identifier.
// Only the first mention of each distinct (name, degree) pair in a run
// is linked; later records are constructed disabled and never flip back.
type Condition struct {
	base
	Name       string
	Degree     string
	ResolvedID string
}

func newCondition(m types.Match, resolve Resolver, lk *linker.Linker) *Condition {
	c := &Condition{base: newBase(m)}
	if len(m.Args) > 0 {
		c.Name = m.Args[0]
	}
	if len(m.Args) > 1 {
		c.Degree = m.Args[1]
	}

	if resolve != nil && c.Name != "" {
		if id, ok := resolve(c.Name); ok {
			c.ResolvedID = id
		}
	}
	if lk != nil {
		c.enabled = lk.Claim(c.Name, c.Degree)
	}
	return c
}

// Valid requires a name and a resolved identifier. An unresolvable
// condition is not an error: the span degrades to its original text.
func (c *Condition) Valid() bool {
	return c.Name != "" && c.ResolvedID != ""
}

func (c *Condition) Render() string {
	if c.ResolvedID == "" {
		return c.span.Text
	}
	label := capitalizeFirst(c.Name)
	if c.Degree != "" {
		label += " " + c.Degree
	}
	return "@UUID[" + c.ResolvedID + "]{" + label + "}"
}

package replace

import (
	"strconv"
	"strings"

	"github.com/JTPenguin/inline-roll-macro-sub000/engine/lexicon"
	"github.com/JTPenguin/inline-roll-macro-sub000/types"
)

// Template is an area template phrase ("30-foot cone").
type Template struct {
	base
	Shape    string
	Distance int
	Width    int // carried for line templates; not part of the rendered form
}

func newTemplate(m types.Match) *Template {
	distance, _ := strconv.Atoi(m.Named["distance"])
	return &Template{
		base:     newBase(m),
		Shape:    m.Named["shape"],
		Distance: distance,
		Width:    5,
	}
}

func (t *Template) Valid() bool {
	return lexicon.IsTemplateShape(t.Shape) && t.Distance > 0
}

func (t *Template) Render() string {
	return "@Template[type:" + t.Shape + "|distance:" + strconv.Itoa(t.Distance) + "]"
}

// Utility is a recharge expression rendered as a GM-only roll
// reference. The expression doubles as the display label.
type Utility struct {
	base
	Expression string
}

func newUtility(m types.Match) *Utility {
	return &Utility{base: newBase(m), Expression: m.Named["expr"]}
}

func (u *Utility) Valid() bool { return u.Expression != "" }

func (u *Utility) Render() string {
	return "[[/gmr " + u.Expression + " #Recharge]]{" + u.Expression + "}"
}

// Action is a linked action name rendered as a macro invocation.
type Action struct {
	base
	Name string
}

func newAction(m types.Match) *Action {
	return &Action{base: newBase(m), Name: m.Named["name"]}
}

func (a *Action) Valid() bool { return a.Name != "" }

func (a *Action) Render() string {
	slug := strings.ReplaceAll(strings.ToLower(a.Name), " ", "-")
	return "[[/act " + slug + "]]"
}

// Rewrite is a plain vocabulary substitution: a legacy term replaced by
// its modern equivalent with no directive wrapper.
type Rewrite struct {
	base
	Replacement string
}

func newRewrite(m types.Match) *Rewrite {
	return &Rewrite{base: newBase(m), Replacement: m.Named["to"]}
}

func (r *Rewrite) Valid() bool { return r.Replacement != "" }

func (r *Rewrite) Render() string { return r.Replacement }

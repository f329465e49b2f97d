// Package types defines the shared data structures for the converter
// pipeline. It holds only type definitions, no behavior.
package types

// PatternType tags which grammar family produced a match.
type PatternType string

const (
	PatternSave      PatternType = "save"
	PatternCheck     PatternType = "check" // skill, perception, and flat checks
	PatternDamage    PatternType = "damage"
	PatternHealing   PatternType = "healing"
	PatternUtility   PatternType = "utility"
	PatternAction    PatternType = "action"
	PatternRewrite   PatternType = "rewrite"
	PatternCondition PatternType = "condition"
	PatternTemplate  PatternType = "template"
)

// Span is a half-open [Start, End) byte range into the source text.
type Span struct {
	Start int
	End   int
	Text  string
}

// Match is a normalized grammar match: the originating span plus the
// fields a replacement needs. Only the fields for the match's Type are
// meaningful; the rest stay zero.
type Match struct {
	Type     PatternType
	Priority int
	Span     Span
	Groups   []string          // raw capture groups; index 0 is the full match
	Named    map[string]string // role name to extracted text ("type", "dc", "shape", ...)
	Skills   []string          // skill names for multi-skill check matches
	Args     []string          // condition name and optional degree
}

// DamageComponent is one dice/type pair inside a damage phrase.
type DamageComponent struct {
	Dice       string
	DamageType string
	Persistent bool
	Precision  bool
	Splash     bool
	Healing    bool
}

// Package lexicon holds the fixed vocabularies the converter recognizes:
// damage types, skills, saves, conditions, template shapes, and the
// legacy-to-remaster vocabulary remap. Pure data plus trivial lookups.
package lexicon

import "strings"

// DamageTypes are the current (remaster) damage type names.
var DamageTypes = []string{
	"acid", "bleed", "bludgeoning", "cold", "electricity", "fire",
	"force", "mental", "piercing", "poison", "slashing", "sonic",
	"spirit", "untyped", "vitality", "void",
}

// LegacyDamage maps superseded damage type names to their remaster
// equivalents. The four alignment types collapse to spirit; the two
// energy types map to distinct names.
var LegacyDamage = map[string]string{
	"chaotic":  "spirit",
	"evil":     "spirit",
	"good":     "spirit",
	"lawful":   "spirit",
	"positive": "vitality",
	"negative": "void",
}

// Skills are the check names usable in a skill check phrase. Perception
// is not a skill but is checked the same way; bare "Lore" is matched
// without its topic.
var Skills = []string{
	"acrobatics", "arcana", "athletics", "crafting", "deception",
	"diplomacy", "intimidation", "lore", "medicine", "nature",
	"occultism", "perception", "performance", "religion", "society",
	"stealth", "survival", "thievery",
}

// ValuedConditions take a numeric degree ("frightened 2").
var ValuedConditions = []string{
	"clumsy", "doomed", "drained", "dying", "enfeebled", "frightened",
	"sickened", "slowed", "stunned", "stupefied", "wounded",
}

// PlainConditions never take a degree.
var PlainConditions = []string{
	"blinded", "concealed", "confused", "controlled", "dazzled",
	"deafened", "encumbered", "fascinated", "fatigued", "fleeing",
	"grabbed", "hidden", "immobilized", "invisible", "paralyzed",
	"petrified", "prone", "quickened", "restrained", "unconscious",
	"undetected", "unnoticed", "off-guard",
}

// LegacyOffGuard is the superseded name for the off-guard condition.
// It is matched by its own grammar (it must never consume a trailing
// number) and normalized both in links and in the final cleanup pass.
const (
	LegacyOffGuard = "flat-footed"
	ModernOffGuard = "off-guard"
)

// TemplateShapes are the area template forms.
var TemplateShapes = []string{"burst", "cone", "emanation", "line"}

// TimeUnits are the durations recognized in recharge phrases.
var TimeUnits = []string{"round", "minute", "hour", "day"}

// Actions are the capitalized action names linked when followed by the
// word "action".
var Actions = []string{
	"Avert Gaze", "Take Cover", "Sense Motive", "Demoralize", "Disarm",
	"Escape", "Feint", "Grapple", "Hide", "Seek", "Shove", "Sneak", "Trip",
}

// ModernDamageType lowercases a damage type and applies the legacy
// remap. Unknown types pass through lowercased.
func ModernDamageType(t string) string {
	l := strings.ToLower(t)
	if m, ok := LegacyDamage[l]; ok {
		return m
	}
	return l
}

// CanonicalSave normalizes any inflection of a saving throw kind to one
// of fortitude, reflex, or will by prefix. Non-save input passes
// through lowercased.
func CanonicalSave(s string) string {
	l := strings.ToLower(s)
	switch {
	case strings.HasPrefix(l, "fort"):
		return "fortitude"
	case strings.HasPrefix(l, "ref"):
		return "reflex"
	case strings.HasPrefix(l, "will"):
		return "will"
	}
	return l
}

// IsTemplateShape reports whether s is a recognized template shape.
func IsTemplateShape(s string) bool {
	for _, shape := range TemplateShapes {
		if s == shape {
			return true
		}
	}
	return false
}

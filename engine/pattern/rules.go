package pattern

import (
	"regexp"
	"sort"
	"strings"

	"github.com/JTPenguin/inline-roll-macro-sub000/engine/lexicon"
	"github.com/JTPenguin/inline-roll-macro-sub000/types"
)

// Priority tiers. Higher wins overlap conflicts; ties go to the
// leftmost match. The invariant: structured save phrases beat
// everything, multi-skill beats its single-skill parts, generic
// catch-alls sit below their structured counterparts, and bare
// condition and template mentions come last.
const (
	PrioritySave            = 70
	PriorityMultiSkill      = 65
	PriorityDamage          = 60
	PrioritySkill           = 60
	PriorityFlat            = 60
	PriorityUtility         = 60
	PriorityAction          = 60
	PriorityHealing         = 50
	PriorityBasicSkill      = 50
	PriorityLegacyRemap     = 40
	PriorityLegacyCondition = 30
	PriorityCondition       = 20
	PriorityTemplate        = 10
)

// dicePat matches a dice expression ("8d6", "4d8+10") or a flat number.
const dicePat = `\d+d\d+(?:\s*[+-]\s*\d+)?|\d+`

func alt(words []string) string { return strings.Join(words, "|") }

func damageTypeAlt() string {
	words := make([]string, 0, len(lexicon.DamageTypes)+len(lexicon.LegacyDamage))
	words = append(words, lexicon.DamageTypes...)
	for legacy := range lexicon.LegacyDamage {
		words = append(words, legacy)
	}
	sort.Strings(words)
	return alt(words)
}

func legacyDamageAlt() string {
	words := make([]string, 0, len(lexicon.LegacyDamage))
	for legacy := range lexicon.LegacyDamage {
		words = append(words, legacy)
	}
	sort.Strings(words)
	return alt(words)
}

// dcSuffix matches a trailing DC in either layout: "(DC 25)" or ", DC 25".
// The two capture slots collapse to one value during normalization.
const dcSuffix = `(?:\s*\(\s*DC\s+(\d+)\s*\)|,?\s+DC\s+(\d+))`

var (
	savePreRe  = regexp.MustCompile(`(?i)\bDC\s+(\d+)\s+(?:basic\s+)?(fort(?:itude)?|ref(?:lex)?|will)\s+(?:saving\s+throw|save)\b`)
	savePostRe = regexp.MustCompile(`(?i)\b(?:basic\s+)?(fort(?:itude)?|ref(?:lex)?|will)\s+(?:saving\s+throw|save)` + dcSuffix)

	skillPreRe    = regexp.MustCompile(`(?i)\bDC\s+(\d+)\s+(` + alt(lexicon.Skills) + `)\s+check\b`)
	skillPostRe   = regexp.MustCompile(`(?i)\b(` + alt(lexicon.Skills) + `)\s+check` + dcSuffix)
	flatCheckRe   = regexp.MustCompile(`(?i)\bDC\s+(\d+)\s+flat\s+check\b`)
	basicSkillRe  = regexp.MustCompile(`(?i)\b(` + alt(lexicon.Skills) + `)\s+check\b`)
	multiSkillRe  = regexp.MustCompile(`(?i)\bDC\s+(\d+)\s+((?:` + alt(lexicon.Skills) + `)(?:(?:,\s*(?:or\s+)?|\s+or\s+)(?:` + alt(lexicon.Skills) + `))+)\s+check\b`)
	skillSplitRe  = regexp.MustCompile(`(?i),\s*(?:or\s+)?|\s+or\s+`)
	damageComp    = `(?:` + dicePat + `)(?:\s+(?:persistent|precision|splash))*(?:\s+(?:` + damageTypeAlt() + `))?(?:\s+splash)?`
	damageJoin    = `(?:,\s*(?:and\s+|or\s+)?|\s+(?:and|plus|or)\s+)`
	damageRe      = regexp.MustCompile(`(?i)\b(?:` + damageComp + `)(?:` + damageJoin + damageComp + `)*\s+damage\b`)
	healingRe     = regexp.MustCompile(`(?i)\b(` + dicePat + `)\s+(hit\s+points?|hp|healing)\b`)
	utilityRe     = regexp.MustCompile(`(?i)\brecharge\s+(` + dicePat + `)\s+(?:` + alt(lexicon.TimeUnits) + `)s?\b`)
	actionRe      = regexp.MustCompile(`\b(` + alt(lexicon.Actions) + `)\s+action\b`)
	legacyTypeRe  = regexp.MustCompile(`(?i)\b(` + legacyDamageAlt() + `)\s+(damage|resistance|weakness)\b`)
	condValuedRe  = regexp.MustCompile(`(?i)\b(` + alt(lexicon.ValuedConditions) + `)(?:\s+(\d+))?\b`)
	condPlainRe   = regexp.MustCompile(`(?i)\b(` + alt(lexicon.PlainConditions) + `)\b`)
	offGuardRe    = regexp.MustCompile(`(?i)\b` + lexicon.LegacyOffGuard + `\b`)
	templateRe    = regexp.MustCompile(`(?i)\b(\d+)[-\s]foot\s+(` + alt(lexicon.TemplateShapes) + `)\b`)
)

// Default builds the registry of built-in rules.
func Default() *Registry {
	r := New()

	r.Register(Rule{Type: types.PatternSave, Grammar: savePreRe, Priority: PrioritySave, Normalize: normalizeSavePre})
	r.Register(Rule{Type: types.PatternSave, Grammar: savePostRe, Priority: PrioritySave, Normalize: normalizeSavePost})

	r.Register(Rule{Type: types.PatternCheck, Grammar: multiSkillRe, Priority: PriorityMultiSkill, Normalize: normalizeMultiSkill})
	r.Register(Rule{Type: types.PatternCheck, Grammar: skillPreRe, Priority: PrioritySkill, Normalize: normalizeSkillPre})
	r.Register(Rule{Type: types.PatternCheck, Grammar: skillPostRe, Priority: PrioritySkill, Normalize: normalizeSkillPost})
	r.Register(Rule{Type: types.PatternCheck, Grammar: flatCheckRe, Priority: PriorityFlat, Normalize: normalizeFlatCheck})
	// Bare "<Skill> check" with no DC: positional fallback, identity
	// normalizer. Construction leaves the DC empty, so the record fails
	// validation and the span stays untouched.
	r.Register(Rule{Type: types.PatternCheck, Grammar: basicSkillRe, Priority: PriorityBasicSkill})

	// Damage phrases keep the raw match; component parsing re-scans the
	// span during replacement construction.
	r.Register(Rule{Type: types.PatternDamage, Grammar: damageRe, Priority: PriorityDamage})
	r.Register(Rule{Type: types.PatternHealing, Grammar: healingRe, Priority: PriorityHealing})

	r.Register(Rule{Type: types.PatternUtility, Grammar: utilityRe, Priority: PriorityUtility, Normalize: normalizeUtility})
	r.Register(Rule{Type: types.PatternAction, Grammar: actionRe, Priority: PriorityAction, Normalize: normalizeAction})
	r.Register(Rule{Type: types.PatternRewrite, Grammar: legacyTypeRe, Priority: PriorityLegacyRemap, Normalize: normalizeLegacyType})

	r.Register(Rule{Type: types.PatternCondition, Grammar: offGuardRe, Priority: PriorityLegacyCondition, Normalize: normalizeOffGuard})
	r.Register(Rule{Type: types.PatternCondition, Grammar: condValuedRe, Priority: PriorityCondition, Normalize: normalizeCondValued})
	r.Register(Rule{Type: types.PatternCondition, Grammar: condPlainRe, Priority: PriorityCondition, Normalize: normalizeCondPlain})

	r.Register(Rule{Type: types.PatternTemplate, Grammar: templateRe, Priority: PriorityTemplate, Normalize: normalizeTemplate})

	return r
}

func normalizeSavePre(raw Raw) (types.Match, bool) {
	return types.Match{Named: map[string]string{
		"dc":   raw.Group(1),
		"type": lexicon.CanonicalSave(raw.Group(2)),
	}}, true
}

func normalizeSavePost(raw Raw) (types.Match, bool) {
	dc := raw.Group(2)
	if dc == "" {
		dc = raw.Group(3)
	}
	return types.Match{Named: map[string]string{
		"dc":   dc,
		"type": lexicon.CanonicalSave(raw.Group(1)),
	}}, true
}

func normalizeSkillPre(raw Raw) (types.Match, bool) {
	return types.Match{Named: map[string]string{
		"dc":   raw.Group(1),
		"type": strings.ToLower(raw.Group(2)),
	}}, true
}

func normalizeSkillPost(raw Raw) (types.Match, bool) {
	dc := raw.Group(2)
	if dc == "" {
		dc = raw.Group(3)
	}
	return types.Match{Named: map[string]string{
		"dc":   dc,
		"type": strings.ToLower(raw.Group(1)),
	}}, true
}

func normalizeFlatCheck(raw Raw) (types.Match, bool) {
	return types.Match{Named: map[string]string{
		"dc":   raw.Group(1),
		"type": "flat",
	}}, true
}

func normalizeMultiSkill(raw Raw) (types.Match, bool) {
	parts := skillSplitRe.Split(raw.Group(2), -1)
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			skills = append(skills, p)
		}
	}
	if len(skills) < 2 {
		return types.Match{}, false
	}
	return types.Match{
		Named:  map[string]string{"dc": raw.Group(1)},
		Skills: skills,
	}, true
}

// normalizeUtility narrows the span to the dice expression so the
// surrounding "Recharge ... rounds" words survive the splice.
func normalizeUtility(raw Raw) (types.Match, bool) {
	lo, hi, ok := raw.GroupSpan(1)
	if !ok {
		return types.Match{}, false
	}
	return types.Match{
		Span:  types.Span{Start: lo, End: hi, Text: raw.Source[lo:hi]},
		Named: map[string]string{"expr": raw.Group(1)},
	}, true
}

// normalizeAction narrows the span to the action name, leaving the
// trailing " action" in place.
func normalizeAction(raw Raw) (types.Match, bool) {
	lo, hi, ok := raw.GroupSpan(1)
	if !ok {
		return types.Match{}, false
	}
	return types.Match{
		Span:  types.Span{Start: lo, End: hi, Text: raw.Source[lo:hi]},
		Named: map[string]string{"name": raw.Group(1)},
	}, true
}

func normalizeLegacyType(raw Raw) (types.Match, bool) {
	return types.Match{Named: map[string]string{
		"to": lexicon.ModernDamageType(raw.Group(1)) + " " + raw.Group(2),
	}}, true
}

func normalizeCondValued(raw Raw) (types.Match, bool) {
	return types.Match{Args: []string{strings.ToLower(raw.Group(1)), raw.Group(2)}}, true
}

func normalizeCondPlain(raw Raw) (types.Match, bool) {
	return types.Match{Args: []string{strings.ToLower(raw.Group(1))}}, true
}

// normalizeOffGuard handles the legacy alias. The grammar never
// consumes a trailing number: "flat-footed" takes no degree even though
// numerals often follow it in duration clauses.
func normalizeOffGuard(raw Raw) (types.Match, bool) {
	return types.Match{Args: []string{lexicon.ModernOffGuard}}, true
}

func normalizeTemplate(raw Raw) (types.Match, bool) {
	return types.Match{Named: map[string]string{
		"distance": raw.Group(1),
		"shape":    strings.ToLower(raw.Group(2)),
	}}, true
}

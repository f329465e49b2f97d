package replace

import (
	"regexp"
	"sort"
	"strings"

	"github.com/JTPenguin/inline-roll-macro-sub000/engine/lexicon"
	"github.com/JTPenguin/inline-roll-macro-sub000/types"
)

// Damage is a run of one or more dice/type pairs rendered as a single
// @Damage directive.
type Damage struct {
	base
	Components []types.DamageComponent
	Suffix     string // trailing word(s) re-emitted after the directive
}

// damagePairRe recovers individual (dice, type) pairs from a matched
// damage run. Flags come from substring checks on each pair's segment.
var damagePairRe = regexp.MustCompile(
	`(?i)\b(\d+d\d+(?:\s*[+-]\s*\d+)?|\d+)(?:\s+(?:persistent|precision|splash))*(?:\s+(` + pairTypeAlt() + `))?`)

func pairTypeAlt() string {
	words := make([]string, 0, len(lexicon.DamageTypes)+len(lexicon.LegacyDamage))
	words = append(words, lexicon.DamageTypes...)
	for legacy := range lexicon.LegacyDamage {
		words = append(words, legacy)
	}
	sort.Strings(words)
	return strings.Join(words, "|")
}

func newDamage(m types.Match) *Damage {
	return &Damage{
		base:       newBase(m),
		Components: parseComponents(m.Span.Text),
		Suffix:     "damage",
	}
}

// newHealing builds a single healing component from the healing
// grammar: group 1 is the dice, group 2 the source's own trailing words
// ("Hit Points", "HP", "healing"), which are preserved verbatim.
func newHealing(m types.Match) *Damage {
	d := &Damage{base: newBase(m)}
	if len(m.Groups) > 2 {
		d.Components = []types.DamageComponent{{
			Dice:    strings.ReplaceAll(m.Groups[1], " ", ""),
			Healing: true,
		}}
		d.Suffix = m.Groups[2]
	}
	return d
}

// parseComponents re-scans a matched damage run with the finer-grained
// pair grammar. Each pair's flags are checked against the lowercased
// segment between it and the next pair; any combination is legal.
func parseComponents(text string) []types.DamageComponent {
	locs := damagePairRe.FindAllStringSubmatchIndex(text, -1)
	comps := make([]types.DamageComponent, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		segment := strings.ToLower(text[loc[0]:end])

		c := types.DamageComponent{
			Dice: strings.ReplaceAll(text[loc[2]:loc[3]], " ", ""),
		}
		if loc[4] >= 0 {
			c.DamageType = lexicon.ModernDamageType(text[loc[4]:loc[5]])
		}
		c.Persistent = strings.Contains(segment, "persistent")
		c.Precision = strings.Contains(segment, "precision")
		c.Splash = strings.Contains(segment, "splash")
		c.Healing = strings.Contains(segment, "healing") ||
			strings.Contains(segment, "hit point") ||
			strings.Contains(segment, "hp")
		comps = append(comps, c)
	}
	return comps
}

// Valid requires at least one component, each with a dice expression.
func (d *Damage) Valid() bool {
	if len(d.Components) == 0 {
		return false
	}
	for _, c := range d.Components {
		if c.Dice == "" {
			return false
		}
	}
	return true
}

func (d *Damage) Render() string {
	parts := make([]string, len(d.Components))
	for i, c := range d.Components {
		parts[i] = renderComponent(c)
	}
	return "@Damage[" + strings.Join(parts, ",") + "] " + d.Suffix
}

// renderComponent applies the nested formatting rules. Healing
// suppresses all other formatting; precision and splash wraps compose
// in that order; persistent formatting is terminal.
func renderComponent(c types.DamageComponent) string {
	if c.Healing {
		return c.Dice + "[healing]"
	}
	formula := c.Dice
	if c.Precision {
		formula = "(" + formula + ")[precision]"
	}
	if c.Splash {
		formula = "(" + formula + ")[splash]"
	}
	switch {
	case c.Persistent && c.DamageType != "":
		return formula + "[persistent," + c.DamageType + "]"
	case c.DamageType != "":
		return "(" + formula + ")[" + c.DamageType + "]"
	default:
		return formula
	}
}

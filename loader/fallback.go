package loader

// fallbackIDs is the built-in condition-to-identifier table, keyed by
// lowercased condition name. Lua files loaded by Load override these
// per entry; hosts with a live compendium should prefer their own IDs.
var fallbackIDs = map[string]string{
	"blinded":     "Compendium.pf2e.conditionitems.Item.XgEqL1kFApUbl5Z2",
	"clumsy":      "Compendium.pf2e.conditionitems.Item.i3OJZU2nk64Df3xm",
	"concealed":   "Compendium.pf2e.conditionitems.Item.DmAIPqOBomZQHTYF",
	"confused":    "Compendium.pf2e.conditionitems.Item.yblD8fOR1J8rDwEQ",
	"controlled":  "Compendium.pf2e.conditionitems.Item.9qGBRpbX9NEwtAAr",
	"dazzled":     "Compendium.pf2e.conditionitems.Item.TkIyaNPgTZFBCCuh",
	"deafened":    "Compendium.pf2e.conditionitems.Item.9PR9y0bi4JPKnHPR",
	"doomed":      "Compendium.pf2e.conditionitems.Item.3uh1r86TzbQvosxv",
	"drained":     "Compendium.pf2e.conditionitems.Item.4D2KBtexWXa6oUMR",
	"dying":       "Compendium.pf2e.conditionitems.Item.yZRUzMqrMmfLu0V1",
	"encumbered":  "Compendium.pf2e.conditionitems.Item.D5mg6Tc7Jzrj6ro7",
	"enfeebled":   "Compendium.pf2e.conditionitems.Item.MIRkyAjyBeXivMa7",
	"fascinated":  "Compendium.pf2e.conditionitems.Item.AdPVz7rbaVSRxHFg",
	"fatigued":    "Compendium.pf2e.conditionitems.Item.HL2l2VRSaQHu9lUw",
	"fleeing":     "Compendium.pf2e.conditionitems.Item.sDPxOjQ9kx2RZE8D",
	"frightened":  "Compendium.pf2e.conditionitems.Item.TBSHQSfT1bj2AJTU",
	"grabbed":     "Compendium.pf2e.conditionitems.Item.kWc1fhmv9LBiTuei",
	"hidden":      "Compendium.pf2e.conditionitems.Item.iU0fEDdBp3rXpTMC",
	"immobilized": "Compendium.pf2e.conditionitems.Item.eIcWbB5o3pP6OIMe",
	"invisible":   "Compendium.pf2e.conditionitems.Item.zJxUflt9np0q4yML",
	"off-guard":   "Compendium.pf2e.conditionitems.Item.AJh5ex99aV6VTggg",
	"paralyzed":   "Compendium.pf2e.conditionitems.Item.6uEgoh53GbXuHpTF",
	"petrified":   "Compendium.pf2e.conditionitems.Item.dTwPJuKgBQCMxixg",
	"prone":       "Compendium.pf2e.conditionitems.Item.j91X7x0XSomq8d60",
	"quickened":   "Compendium.pf2e.conditionitems.Item.nlCjDvLMf2EkV2dl",
	"restrained":  "Compendium.pf2e.conditionitems.Item.VcDeM8A5oI6VqhbM",
	"sickened":    "Compendium.pf2e.conditionitems.Item.fBnFDH2MTzgFijKf",
	"slowed":      "Compendium.pf2e.conditionitems.Item.xYTAsEpcJE1Ccni3",
	"stunned":     "Compendium.pf2e.conditionitems.Item.dfCMdR4wnpbYNTix",
	"stupefied":   "Compendium.pf2e.conditionitems.Item.e1XGnhKNSQIm5IXg",
	"unconscious": "Compendium.pf2e.conditionitems.Item.fBnFDH2MTzgFijKg",
	"undetected":  "Compendium.pf2e.conditionitems.Item.VRSef5y1LmL2Hkjf",
	"unnoticed":   "Compendium.pf2e.conditionitems.Item.9evPzg9E6muFcoSk",
	"wounded":     "Compendium.pf2e.conditionitems.Item.Yl48xTdMh3aeQYL2",
}

package lexicon

import "testing"

func TestModernDamageType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fire", "fire"},
		{"Fire", "fire"},
		{"FORCE", "force"},
		{"chaotic", "spirit"},
		{"evil", "spirit"},
		{"good", "spirit"},
		{"lawful", "spirit"},
		{"positive", "vitality"},
		{"negative", "void"},
		{"Negative", "void"},
		{"bludgeoning", "bludgeoning"},
	}
	for _, tt := range tests {
		got := ModernDamageType(tt.in)
		if got != tt.want {
			t.Errorf("ModernDamageType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalSave(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fortitude", "fortitude"},
		{"fort", "fortitude"},
		{"FORT", "fortitude"},
		{"Reflex", "reflex"},
		{"ref", "reflex"},
		{"Will", "will"},
		{"will", "will"},
		{"Athletics", "athletics"}, // non-save input passes through lowercased
	}
	for _, tt := range tests {
		got := CanonicalSave(tt.in)
		if got != tt.want {
			t.Errorf("CanonicalSave(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsTemplateShape(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"burst", true},
		{"cone", true},
		{"emanation", true},
		{"line", true},
		{"square", false},
		{"Cone", false}, // callers lowercase before asking
		{"", false},
	}
	for _, tt := range tests {
		got := IsTemplateShape(tt.in)
		if got != tt.want {
			t.Errorf("IsTemplateShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConditionListsDisjoint(t *testing.T) {
	valued := map[string]bool{}
	for _, c := range ValuedConditions {
		valued[c] = true
	}
	for _, c := range PlainConditions {
		if valued[c] {
			t.Errorf("condition %q appears in both lists", c)
		}
	}
}

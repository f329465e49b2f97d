package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JTPenguin/inline-roll-macro-sub000/engine"
)

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"The target takes 8d6 fire damage and becomes frightened.", 30,
			"The target takes 8d6 fire\ndamage and becomes frightened."},
		{"", 80, ""},
		{"one", 80, "one"},
		{"a b c d e", 3, "a b\nc d\ne"},
		{"éé éé éé", 5, "éé éé\néé"}, // width counts runes, not bytes
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestPaneTitle(t *testing.T) {
	focused := paneTitle("Rules text", true)
	blurred := paneTitle("Rules text", false)
	if !strings.Contains(focused, "Rules text") || !strings.Contains(blurred, "Rules text") {
		t.Error("pane title lost its label")
	}
	if focused == blurred {
		t.Error("focused and blurred titles should render differently")
	}
}

func sized(t *testing.T) Model {
	t.Helper()
	m := New(engine.New(nil))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := sized(t)
	if !m.ready {
		t.Error("model should be ready after the first window size")
	}
	if m.width != 80 || m.height != 24 {
		t.Errorf("size = %dx%d, want 80x24", m.width, m.height)
	}
}

func TestUpdate_TabTogglesFocus(t *testing.T) {
	m := sized(t)
	if m.focus != focusInput {
		t.Fatal("input pane should start focused")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.focus != focusPreview {
		t.Error("tab should move focus to the preview")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.focus != focusInput {
		t.Error("tab should move focus back to the input")
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := sized(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)
	if !m.quitting {
		t.Error("ctrl+c should set quitting")
	}
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should return tea.Quit")
	}
}

func TestUpdate_TypingRefreshesFindings(t *testing.T) {
	m := sized(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Take 8d6 fire damage.")})
	m = updated.(Model)
	if m.findings != 1 {
		t.Errorf("findings = %d, want 1", m.findings)
	}
}

func TestRenderStatusBar_FindingCount(t *testing.T) {
	tests := []struct {
		findings int
		want     string
	}{
		{1, "1 finding"},
		{2, "2 findings"},
	}
	for _, tt := range tests {
		m := Model{width: 80, findings: tt.findings}
		got := m.renderStatusBar()
		if !strings.Contains(got, tt.want) {
			t.Errorf("status bar %q missing %q", got, tt.want)
		}
	}
	m := Model{width: 80}
	if got := m.renderStatusBar(); strings.Contains(got, "finding") {
		t.Errorf("status bar %q should omit the count at zero", got)
	}
}

func TestView_NotReady(t *testing.T) {
	m := New(engine.New(nil))
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() = %q before the first window size", got)
	}
}

func TestView_Quitting(t *testing.T) {
	m := sized(t)
	m.quitting = true
	if got := m.View(); got != "" {
		t.Errorf("View() = %q after quit, want empty", got)
	}
}

// Package tui implements the interactive converter: an editable input
// pane with a live preview of the converted text below it.
package tui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JTPenguin/inline-roll-macro-sub000/engine"
)

// focusArea identifies which pane receives key input.
type focusArea int

const (
	focusInput focusArea = iota
	focusPreview
)

// Model is the Bubble Tea model for the converter TUI.
type Model struct {
	conv *engine.Converter

	input   textarea.Model
	preview viewport.Model
	focus   focusArea

	width    int
	height   int
	ready    bool
	quitting bool
	findings int
}

// New creates a TUI model wired to the given converter.
func New(conv *engine.Converter) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste rules text here..."
	ta.CharLimit = 0
	ta.Focus()

	return Model{conv: conv, input: ta}
}

// Run starts the Bubble Tea program.
func Run(conv *engine.Converter) error {
	p := tea.NewProgram(New(conv), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init returns the initial blink command.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles key presses, window resizes, and input edits.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "tab":
			if m.focus == focusInput {
				m.focus = focusPreview
				m.input.Blur()
			} else {
				m.focus = focusInput
				m.input.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusInput {
		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.refreshPreview()
		}
	} else {
		m.preview, cmd = m.preview.Update(msg)
	}
	return m, cmd
}

// layout sizes the two panes: input takes the upper half, preview the
// rest minus the two pane titles and the status bar.
func (m *Model) layout() {
	contentHeight := m.height - 3
	if contentHeight < 2 {
		contentHeight = 2
	}
	inputHeight := contentHeight / 2
	if inputHeight < 1 {
		inputHeight = 1
	}
	previewHeight := contentHeight - inputHeight
	if previewHeight < 1 {
		previewHeight = 1
	}

	m.input.SetWidth(m.width)
	m.input.SetHeight(inputHeight)

	if !m.ready {
		m.preview = viewport.New(m.width, previewHeight)
		m.preview.KeyMap = previewKeyMap()
		m.ready = true
	} else {
		m.preview.Width = m.width
		m.preview.Height = previewHeight
	}
}

// refreshPreview re-converts the input and updates the preview pane.
func (m *Model) refreshPreview() {
	if !m.ready {
		return
	}
	text := m.input.Value()
	converted := m.conv.Convert(text)
	m.findings = len(m.conv.Report(text))

	width := m.width
	if width < 10 {
		width = 10
	}
	var styled []string
	for _, line := range strings.Split(converted, "\n") {
		styled = append(styled, styleDirective.Render(wordWrap(line, width)))
	}
	m.preview.SetContent(strings.Join(styled, "\n"))
}

// wordWrap wraps text at word boundaries to fit the given width.
// Width is measured in runes, not bytes.
func wordWrap(text string, width int) string {
	if width <= 0 || utf8.RuneCountInString(text) <= width {
		return text
	}

	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(text) {
		wLen := utf8.RuneCountInString(word)
		switch {
		case i == 0:
			lineLen = wLen
		case lineLen+1+wLen > width:
			result.WriteString("\n")
			lineLen = wLen
		default:
			result.WriteString(" ")
			lineLen += 1 + wLen
		}
		result.WriteString(word)
	}
	return result.String()
}

// View renders input pane, preview pane, and status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(paneTitle("Rules text", m.focus == focusInput))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(paneTitle("Converted", m.focus == focusPreview))
	b.WriteString("\n")
	b.WriteString(m.preview.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderStatusBar produces a full-width inverted status line with the
// finding count and key hints.
func (m Model) renderStatusBar() string {
	left := " rollconv"
	right := statusHint + " "
	mid := ""
	if m.findings == 1 {
		mid = "1 finding"
	} else if m.findings > 1 {
		mid = strconv.Itoa(m.findings) + " findings"
	}

	line := left
	if mid != "" {
		line += " | " + mid
	}
	gap := m.width - len(line) - len(right)
	if gap < 1 {
		gap = 1
	}
	return styleStatusBar.Width(m.width).Render(line + strings.Repeat(" ", gap) + right)
}

const statusHint = "tab: switch pane · ctrl+c: quit"

// previewKeyMap scrolls with the usual paging keys; arrow keys stay
// with the textarea.
func previewKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

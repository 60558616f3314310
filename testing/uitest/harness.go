package uitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing: it drives Update directly and
// simulates resizes and key presses without a terminal.
type Harness struct {
	t      *testing.T
	model  tea.Model
	width  int
	height int
}

// NewHarness creates a Harness for the given model, delivering an initial
// window size.
func NewHarness(t *testing.T, model tea.Model, size Size) *Harness {
	h := &Harness{
		t:      t,
		model:  model,
		width:  size.Width,
		height: size.Height,
	}
	h.SendMsg(tea.WindowSizeMsg{Width: size.Width, Height: size.Height})
	return h
}

// SendMsg sends a tea.Msg to the model and updates it.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey sends a key press message.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// Resize simulates a terminal resize.
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width = width
	h.height = height
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// View returns the current rendered view.
func (h *Harness) View() string {
	return h.model.View()
}

// Model returns the underlying model (for type assertions).
func (h *Harness) Model() tea.Model {
	return h.model
}

// Width returns the current width.
func (h *Harness) Width() int {
	return h.width
}

// Height returns the current height.
func (h *Harness) Height() int {
	return h.height
}

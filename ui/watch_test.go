package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewtrack/config"
	"viewtrack/testing/uitest"
	"viewtrack/viewport"
)

func terminalConfig() *config.Config {
	return &config.Config{Viewports: viewport.TerminalViewports()}
}

func TestWatchClassifiesOnFirstSize(t *testing.T) {
	h := uitest.NewHarness(t, NewWatch(terminalConfig()), uitest.Standard)

	m := h.Model().(WatchModel)
	vp, ok := m.tracker.ActiveViewport()
	require.True(t, ok)
	assert.Equal(t, "standard", vp.Name)
	assert.Contains(t, h.View(), "120 x 40")
}

func TestWatchRecordsChanges(t *testing.T) {
	h := uitest.NewHarness(t, NewWatch(terminalConfig()), uitest.Compact)

	h.Resize(uitest.WideWidth, uitest.WideHeight)
	m := h.Model().(WatchModel)

	require.Len(t, m.changes.entries, 1)
	e := m.changes.entries[0]
	assert.Equal(t, "compact", e.from)
	assert.Equal(t, "wide", e.to)
	assert.Equal(t, uitest.WideWidth, e.width)

	// Resizing within the same bucket records nothing.
	h.Resize(uitest.WideWidth+5, uitest.WideHeight)
	m = h.Model().(WatchModel)
	assert.Len(t, m.changes.entries, 1)
}

func TestWatchInitialFire(t *testing.T) {
	cfg := terminalConfig()
	cfg.FireOnChangeOnInit = true
	h := uitest.NewHarness(t, NewWatch(cfg), uitest.Compact)

	m := h.Model().(WatchModel)
	require.Len(t, m.changes.entries, 1)
	assert.True(t, m.changes.entries[0].initial)
	assert.Equal(t, "compact", m.changes.entries[0].to)
}

func TestWatchViewShowsLadder(t *testing.T) {
	h := uitest.NewHarness(t, NewWatch(terminalConfig()), uitest.Standard)

	view := h.View()
	for _, name := range []string{"tiny", "compact", "standard", "wide"} {
		assert.Contains(t, view, name)
	}
}

func TestWatchViewFitsWidth(t *testing.T) {
	h := uitest.NewHarness(t, NewWatch(terminalConfig()), uitest.Size{Width: 20, Height: 10})

	for _, line := range strings.Split(h.View(), "\n") {
		// Styled output: compare printable width, not byte length.
		assert.LessOrEqual(t, printableWidth(line), 20, "line overflows: %q", line)
	}
}

func printableWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

func TestWatchConfigReload(t *testing.T) {
	h := uitest.NewHarness(t, NewWatch(terminalConfig()), uitest.Standard)

	h.SendMsg(ConfigReloadedMsg{Config: &config.Config{
		Viewports: []viewport.Viewport{
			{Name: "small", MinWidth: 0},
			{Name: "big", MinWidth: 100},
		},
	}})

	m := h.Model().(WatchModel)
	vp, ok := m.tracker.ActiveViewport()
	require.True(t, ok)
	assert.Equal(t, "big", vp.Name, "reloaded ladder classifies width 120 as big")
	assert.Contains(t, h.View(), "config reloaded")
}

func TestWatchQuitKey(t *testing.T) {
	h := uitest.NewHarness(t, NewWatch(terminalConfig()), uitest.Standard)

	cmd := h.SendKey("q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestWatchBeforeFirstSize(t *testing.T) {
	m := NewWatch(terminalConfig())
	assert.Contains(t, m.View(), "measuring")
}

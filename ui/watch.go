// Package ui implements the watch screen: a live view of the terminal's
// dimensions, the breakpoint ladder and recent viewport changes.
package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"

	"viewtrack/config"
	"viewtrack/log"
	"viewtrack/viewport"
)

// maxEvents is how many viewport changes the log keeps.
const maxEvents = 50

// shownEvents is how many of them the screen shows.
const shownEvents = 5

// sizeFeed adapts bubbletea's WindowSizeMsg stream into a viewport.Source.
// Resize delivery happens through Update, so Notify has nothing to do.
type sizeFeed struct {
	mu     sync.Mutex
	width  int
	height int
}

func (f *sizeFeed) Size() (width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height
}

func (f *sizeFeed) Notify(chan<- struct{}) (cancel func()) {
	return func() {}
}

func (f *sizeFeed) set(width, height int) {
	f.mu.Lock()
	f.width = width
	f.height = height
	f.mu.Unlock()
}

// changeEntry is one recorded viewport change.
type changeEntry struct {
	at      time.Time
	from    string
	to      string
	width   int
	height  int
	initial bool
}

// changeLog collects viewport changes. Held by pointer so it survives the
// value copies bubbletea makes of the model.
type changeLog struct {
	entries []changeEntry
}

// record is the tracker's OnChange callback. It runs synchronously inside
// Update, so no locking is needed.
func (l *changeLog) record(active viewport.Viewport, previous *viewport.Viewport, width, height int, initial bool) {
	e := changeEntry{at: time.Now(), to: active.Name, width: width, height: height, initial: initial}
	if previous != nil {
		e.from = previous.Name
	}
	l.entries = append(l.entries, e)
	if len(l.entries) > maxEvents {
		l.entries = l.entries[len(l.entries)-maxEvents:]
	}
}

// ConfigReloadedMsg reports that the config file changed on disk. The watch
// command sends it from the config watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// clearFlashMsg expires the transient status line.
type clearFlashMsg struct{}

// WatchModel is the bubbletea model for the watch screen.
type WatchModel struct {
	cfg     *config.Config
	feed    *sizeFeed
	tracker *viewport.Tracker
	changes *changeLog

	width  int
	height int
	ready  bool

	flash string
}

// NewWatch creates the watch screen model. The tracker initializes on the
// first WindowSizeMsg so the initial classification uses real dimensions.
func NewWatch(cfg *config.Config) WatchModel {
	feed := &sizeFeed{}
	return WatchModel{
		cfg:     cfg,
		feed:    feed,
		tracker: viewport.NewTracker(feed),
		changes: &changeLog{},
	}
}

// Init implements tea.Model.
func (m WatchModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.feed.set(msg.Width, msg.Height)
		if !m.ready {
			m.ready = true
			m.tracker.Initialize(m.cfg.TrackerConfig(m.changes.record))
			return m, nil
		}
		m.tracker.CurrentViewport()
		return m, nil

	case ConfigReloadedMsg:
		// Initialize is once-only by design, so a new ladder means a new
		// tracker over the same feed and change log.
		m.tracker.Stop()
		m.cfg = msg.Config
		m.tracker = viewport.NewTracker(m.feed)
		if m.ready {
			m.tracker.Initialize(m.cfg.TrackerConfig(m.changes.record))
		}
		m.flash = "config reloaded"
		return m, clearFlashLater()

	case clearFlashMsg:
		m.flash = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.tracker.Stop()
			return m, tea.Quit
		case key.Matches(msg, keys.Copy):
			return m.copyActive()
		}
	}
	return m, nil
}

func (m WatchModel) copyActive() (tea.Model, tea.Cmd) {
	vp, ok := m.tracker.CurrentViewport()
	if !ok {
		return m, nil
	}
	if err := clipboard.WriteAll(vp.Name); err != nil {
		log.WarningLog.Printf("clipboard write failed: %v", err)
		m.flash = "clipboard unavailable"
	} else {
		m.flash = fmt.Sprintf("copied %q", vp.Name)
	}
	return m, clearFlashLater()
}

func clearFlashLater() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearFlashMsg{}
	})
}

// View implements tea.Model.
func (m WatchModel) View() string {
	if !m.ready {
		return "measuring terminal..."
	}

	active, _ := m.tracker.ActiveViewport()

	var b strings.Builder
	b.WriteString(m.line(titleStyle.Render("viewtrack")))
	b.WriteString(m.line(dimsStyle.Render(fmt.Sprintf("%d x %d", m.tracker.Width(), m.tracker.Height()))))
	b.WriteString(m.line(""))
	b.WriteString(m.line(m.ladderView(active.Name)))
	b.WriteString(m.line(""))

	for _, e := range m.recentChanges() {
		b.WriteString(m.line(eventStyle.Render(formatChange(e))))
	}

	if m.flash != "" {
		b.WriteString(m.line(flashStyle.Render(m.flash)))
	}
	b.WriteString(m.line(helpStyle.Render("c copy viewport name - q quit")))
	return b.String()
}

// ladderView renders every viewport with the active one highlighted. When
// the full form with thresholds overflows, fall back to names only.
func (m WatchModel) ladderView(active string) string {
	full := m.renderLadder(active, true)
	if ansi.PrintableRuneWidth(full) <= m.width {
		return full
	}
	return m.renderLadder(active, false)
}

func (m WatchModel) renderLadder(active string, thresholds bool) string {
	parts := make([]string, 0, len(m.cfg.Viewports))
	for _, vp := range m.cfg.Viewports {
		label := vp.Name
		if thresholds {
			label = fmt.Sprintf("%s >=%d", vp.Name, vp.MinWidth)
		}
		if vp.Name == active {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

// recentChanges returns the newest entries, newest first.
func (m WatchModel) recentChanges() []changeEntry {
	entries := m.changes.entries
	n := len(entries)
	if n > shownEvents {
		entries = entries[n-shownEvents:]
	}
	out := make([]changeEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}

func formatChange(e changeEntry) string {
	stamp := e.at.Format("15:04:05")
	if e.initial || e.from == "" {
		return fmt.Sprintf("%s  %s (%dx%d)", stamp, padName(e.to), e.width, e.height)
	}
	return fmt.Sprintf("%s  %s <- %s (%dx%d)", stamp, padName(e.to), e.from, e.width, e.height)
}

// padName right-pads viewport names to a stable column, wide runes included.
func padName(name string) string {
	const col = 8
	pad := col - runewidth.StringWidth(name)
	if pad <= 0 {
		return name
	}
	return name + strings.Repeat(" ", pad)
}

// line truncates to the terminal width and terminates with a newline.
func (m WatchModel) line(s string) string {
	if m.width > 0 {
		s = truncate.String(s, uint(m.width))
	}
	return s + "\n"
}

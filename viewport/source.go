package viewport

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Source supplies terminal dimensions and resize notifications.
type Source interface {
	// Size returns the current dimensions. Implementations must not cache:
	// the tracker re-reads on every recomputation.
	Size() (width, height int)

	// Notify delivers a signal on ch whenever the dimensions may have
	// changed. The returned cancel stops delivery and releases the
	// subscription; it must be safe to call more than once.
	Notify(ch chan<- struct{}) (cancel func())
}

// Fallback dimensions when every probe fails (classic 80x24 terminal).
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// TTY reads dimensions from a terminal. The probe order is evaluated fresh
// on every Size call: the attached file descriptor first, the controlling
// tty second, the COLUMNS/LINES environment third, then the 80x24 fallback.
type TTY struct {
	out *os.File
}

// NewTTY returns a TTY reading from stdout.
func NewTTY() *TTY {
	return &TTY{out: os.Stdout}
}

// NewTTYFile returns a TTY reading from the given terminal file.
func NewTTYFile(f *os.File) *TTY {
	return &TTY{out: f}
}

// Size implements Source.
func (t *TTY) Size() (width, height int) {
	if w, h, err := term.GetSize(int(t.out.Fd())); err == nil && w > 0 {
		return w, h
	}
	if w, h, ok := controllingTTYSize(); ok {
		return w, h
	}
	if w, h, ok := sizeFromEnv(); ok {
		return w, h
	}
	return fallbackWidth, fallbackHeight
}

// sizeFromEnv reads COLUMNS and LINES, set by most shells.
func sizeFromEnv() (width, height int, ok bool) {
	w, errW := strconv.Atoi(os.Getenv("COLUMNS"))
	h, errH := strconv.Atoi(os.Getenv("LINES"))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// Static is a Source with fixed dimensions and no resize stream, for
// non-interactive output or tests that never resize.
type Static struct {
	Width  int
	Height int
}

// Size implements Source.
func (s Static) Size() (width, height int) {
	return s.Width, s.Height
}

// Notify implements Source. Static dimensions never change, so nothing is
// ever delivered.
func (s Static) Notify(chan<- struct{}) (cancel func()) {
	return func() {}
}

// Package debounce collapses bursts of rapid calls into a single invocation.
// It is used for terminal resize storms and config file change events, but
// carries no knowledge of either.
package debounce

import (
	"sync"
	"time"
)

// Debouncer schedules a function to run once a burst of calls has settled.
//
// In the default (trailing) mode, each Call resets the timer; the function
// passed to the *last* Call in the burst runs wait after that call. In
// leading mode the function passed to the *first* Call runs immediately and
// later calls are suppressed until the window lapses.
type Debouncer struct {
	mu      sync.Mutex
	wait    time.Duration
	leading bool
	timer   *time.Timer
	pending func()
}

// New creates a trailing-edge debouncer with the given settle duration.
func New(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// NewLeading creates a leading-edge debouncer: the first call in a burst
// fires immediately, the rest are dropped until wait has elapsed without
// any calls.
func NewLeading(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait, leading: true}
}

// Call registers fn with the current burst. The closure captures whatever
// arguments the caller needs, so the invocation that ultimately runs carries
// the values from the call that won (last in trailing mode, first in
// leading mode).
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()

	if d.leading {
		fireNow := d.timer == nil
		if d.timer != nil {
			d.timer.Stop()
		}
		d.timer = time.AfterFunc(d.wait, d.lapse)
		d.mu.Unlock()
		if fireNow {
			fn()
		}
		return
	}

	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, d.fire)
	d.mu.Unlock()
}

// fire runs the pending trailing call once the window lapses.
func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// lapse closes a leading-mode window without invoking anything.
func (d *Debouncer) lapse() {
	d.mu.Lock()
	d.timer = nil
	d.mu.Unlock()
}

// Flush runs any pending trailing call immediately instead of waiting for
// the window to lapse. No-op in leading mode or when nothing is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop cancels any pending call and resets the window. The debouncer remains
// usable afterwards.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

//go:build windows

package viewport

import (
	"sync"
	"time"
)

// pollInterval is how often the Windows resize poller re-reads the size.
const pollInterval = 500 * time.Millisecond

// controllingTTYSize has no Windows equivalent; Size falls through to the
// environment probe.
func controllingTTYSize() (width, height int, ok bool) {
	return 0, 0, false
}

// Notify implements Source by polling, since Windows has no SIGWINCH.
func (t *TTY) Notify(ch chan<- struct{}) (cancel func()) {
	done := make(chan struct{})

	go func() {
		lastW, lastH := t.Size()
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				w, h := t.Size()
				if w == lastW && h == lastH {
					continue
				}
				lastW, lastH = w, h
				select {
				case ch <- struct{}{}:
				default:
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

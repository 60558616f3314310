//go:build !windows

package viewport

import (
	"os"
	"os/signal"
	"sync"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

// controllingTTYSize asks the controlling terminal for its size. Covers the
// case where stdout is redirected but the process still owns a tty.
func controllingTTYSize() (width, height int, ok bool) {
	f, err := os.Open("/dev/tty")
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()

	ws, err := pty.GetsizeFull(f)
	if err != nil || ws.Cols == 0 {
		return 0, 0, false
	}
	return int(ws.Cols), int(ws.Rows), true
}

// Notify implements Source using SIGWINCH.
func (t *TTY) Notify(ch chan<- struct{}) (cancel func()) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, unix.SIGWINCH)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-sig:
				select {
				case ch <- struct{}{}:
				default:
					// Receiver is behind; it will re-read the size anyway.
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sig)
			close(done)
		})
	}
}

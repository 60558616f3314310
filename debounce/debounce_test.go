package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const wait = 20 * time.Millisecond

func TestTrailingCollapsesBurst(t *testing.T) {
	d := New(wait)

	var calls atomic.Int32
	var last atomic.Int32
	for i := 1; i <= 10; i++ {
		n := int32(i)
		d.Call(func() {
			calls.Add(1)
			last.Store(n)
		})
	}

	time.Sleep(4 * wait)
	assert.Equal(t, int32(1), calls.Load(), "burst should collapse to one call")
	assert.Equal(t, int32(10), last.Load(), "the last call in the burst should win")
}

func TestTrailingFiresAgainAfterSettle(t *testing.T) {
	d := New(wait)

	var calls atomic.Int32
	d.Call(func() { calls.Add(1) })
	time.Sleep(4 * wait)
	d.Call(func() { calls.Add(1) })
	time.Sleep(4 * wait)

	assert.Equal(t, int32(2), calls.Load())
}

func TestLeadingFiresFirstAndSuppressesRest(t *testing.T) {
	d := NewLeading(wait)

	var calls atomic.Int32
	var first atomic.Int32
	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Call(func() {
			calls.Add(1)
			first.Store(n)
		})
	}

	assert.Equal(t, int32(1), calls.Load(), "only the first call in the burst fires")
	assert.Equal(t, int32(1), first.Load())

	// After the window lapses, a new burst fires again.
	time.Sleep(4 * wait)
	d.Call(func() { calls.Add(1) })
	assert.Equal(t, int32(2), calls.Load())
}

func TestStopCancelsPending(t *testing.T) {
	d := New(wait)

	var calls atomic.Int32
	d.Call(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(4 * wait)
	assert.Equal(t, int32(0), calls.Load())
}

func TestFlushRunsPendingNow(t *testing.T) {
	d := New(time.Hour)

	var calls atomic.Int32
	d.Call(func() { calls.Add(1) })
	d.Flush()

	assert.Equal(t, int32(1), calls.Load())

	// Flushing again is a no-op.
	d.Flush()
	assert.Equal(t, int32(1), calls.Load())
}

func TestStopLeavesDebouncerUsable(t *testing.T) {
	d := New(wait)

	var calls atomic.Int32
	d.Call(func() { calls.Add(1) })
	d.Stop()
	d.Call(func() { calls.Add(1) })

	time.Sleep(4 * wait)
	assert.Equal(t, int32(1), calls.Load())
}

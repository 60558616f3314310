package viewport

import (
	"sync"
	"time"

	"viewtrack/debounce"
	"viewtrack/log"
)

// DebounceInterval is how long a burst of resize notifications must settle
// before a tracked recomputation runs.
const DebounceInterval = 50 * time.Millisecond

// Tracker observes a dimension Source and keeps the active viewport
// current. Construct with NewTracker, then call Initialize; every other
// operation is a no-op or zero-valued until then.
//
// A Tracker is not a process-wide singleton: each instance owns its state,
// so independent trackers (and parallel tests) can coexist.
type Tracker struct {
	mu  sync.Mutex
	src Source

	initialized bool
	active      bool
	cfg         Config

	width  int
	height int

	// activeVP / previousVP are nil until a classification has produced
	// them ("none yet").
	activeVP   *Viewport
	previousVP *Viewport

	subs []*subscription
}

// subscription is one Track registration: a resize listener plus its own
// debouncer.
type subscription struct {
	cancel func()
	deb    *debounce.Debouncer
	done   chan struct{}
}

// changeEvent captures a pending OnChange invocation so it can run after
// the tracker lock is released.
type changeEvent struct {
	active   Viewport
	previous *Viewport
	width    int
	height   int
	initial  bool
}

// NewTracker returns an inactive tracker over src.
func NewTracker(src Source) *Tracker {
	return &Tracker{src: src}
}

// Initialize merges cfg over DefaultConfig, activates the tracker and
// performs the first classification. When FireOnChangeOnInit is set,
// OnChange runs exactly once with initial=true, regardless of whether a
// previous viewport exists. Idempotent: the second and later calls do
// nothing, keeping the first call's configuration and dimensions.
func (t *Tracker) Initialize(cfg Config) {
	t.mu.Lock()
	if t.initialized {
		t.mu.Unlock()
		return
	}
	t.initialized = true
	t.cfg = cfg.withDefaults()
	t.active = true

	ev := t.recomputeLocked()
	var initial *changeEvent
	if t.cfg.FireOnChangeOnInit {
		initial = &changeEvent{
			previous: t.previousVP,
			width:    t.width,
			height:   t.height,
			initial:  true,
		}
		if t.activeVP != nil {
			initial.active = *t.activeVP
		}
	}
	cb := t.cfg.OnChange
	t.mu.Unlock()

	// The first classification has no previous viewport, so ev is normally
	// nil here; the initial fire is the only callback Initialize produces.
	if ev != nil {
		fire(cb, ev)
	}
	if initial != nil {
		log.Debug("viewport: initial fire %q %dx%d", initial.active.Name, initial.width, initial.height)
		fire(cb, initial)
	}
}

// Matches reports whether id resolves to the currently active viewport.
// id is a name (string) or a MinWidth threshold (int). False when the
// tracker is inactive or id does not resolve.
func (t *Tracker) Matches(id any) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active || t.activeVP == nil {
		return false
	}
	vp := find(t.cfg.Viewports, id)
	return vp != nil && vp.Name == t.activeVP.Name
}

// MatchesName is a typed convenience for Matches with a name.
func (t *Tracker) MatchesName(name string) bool {
	return t.Matches(name)
}

// MatchesMinWidth is a typed convenience for Matches with a threshold.
func (t *Tracker) MatchesMinWidth(min int) bool {
	return t.Matches(min)
}

// Track subscribes to the source's resize stream. Notifications are
// debounced by DebounceInterval, so a resize storm collapses into one
// recomputation after the storm settles.
//
// Each call registers an independent subscription with its own debouncer;
// subscriptions are deliberately not deduplicated, so callers wanting a
// single one should call Track once. Stop cancels all of them. No-op when
// the tracker is inactive.
func (t *Tracker) Track() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}

	ch := make(chan struct{}, 1)
	sub := &subscription{
		cancel: t.src.Notify(ch),
		deb:    debounce.New(DebounceInterval),
		done:   make(chan struct{}),
	}
	t.subs = append(t.subs, sub)
	t.mu.Unlock()

	go func() {
		for {
			select {
			case <-sub.done:
				return
			case <-ch:
				sub.deb.Call(t.recompute)
			}
		}
	}()
}

// CurrentViewport recomputes and returns the active viewport. Not
// read-only: if the viewport changed since the last recomputation, OnChange
// fires from this call. ok is false when the tracker is inactive (no
// recomputation happens) or no viewport has classified.
func (t *Tracker) CurrentViewport() (vp Viewport, ok bool) {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return Viewport{}, false
	}
	ev := t.recomputeLocked()
	cb := t.cfg.OnChange
	if t.activeVP != nil {
		vp, ok = *t.activeVP, true
	}
	t.mu.Unlock()

	if ev != nil {
		fire(cb, ev)
	}
	return vp, ok
}

// ActiveViewport returns the result of the last recomputation without
// triggering a new one, unlike CurrentViewport. ok is false when the
// tracker is inactive or nothing has classified yet.
func (t *Tracker) ActiveViewport() (vp Viewport, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active || t.activeVP == nil {
		return Viewport{}, false
	}
	return *t.activeVP, true
}

// Width returns the last observed width, 0 before any observation.
func (t *Tracker) Width() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width
}

// Height returns the last observed height, 0 before any observation.
func (t *Tracker) Height() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.height
}

// Stop cancels every Track subscription and any pending debounced
// recomputation. The tracker remains queryable; Track may be called again
// to resubscribe.
func (t *Tracker) Stop() {
	t.mu.Lock()
	subs := t.subs
	t.subs = nil
	t.mu.Unlock()

	for _, sub := range subs {
		sub.cancel()
		sub.deb.Stop()
		close(sub.done)
	}
}

// recompute re-reads dimensions, reclassifies and fires OnChange when the
// active viewport's name changed. Runs from Track subscriptions after
// debouncing.
func (t *Tracker) recompute() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	ev := t.recomputeLocked()
	cb := t.cfg.OnChange
	t.mu.Unlock()

	if ev != nil {
		fire(cb, ev)
	}
}

// recomputeLocked is the classification step. Reads the source fresh,
// shifts activeVP into previousVP, scans the ladder from the highest
// threshold down. When no threshold qualifies the prior active viewport is
// retained. Returns the change to fire, or nil. Caller holds t.mu.
func (t *Tracker) recomputeLocked() *changeEvent {
	w, h := t.src.Size()
	t.width, t.height = w, h
	t.previousVP = t.activeVP

	if vp := classify(t.cfg.Viewports, w); vp != nil {
		t.activeVP = vp
	}

	if t.activeVP == nil || t.previousVP == nil || t.activeVP.Name == t.previousVP.Name {
		return nil
	}
	log.Debug("viewport: %q -> %q at %dx%d", t.previousVP.Name, t.activeVP.Name, w, h)
	prev := *t.previousVP
	return &changeEvent{
		active:   *t.activeVP,
		previous: &prev,
		width:    w,
		height:   h,
	}
}

// fire invokes the callback outside the tracker lock, so OnChange may call
// back into the tracker. Callback panics propagate to whoever triggered the
// recomputation; the tracker does no isolation.
func fire(cb ChangeFunc, ev *changeEvent) {
	cb(ev.active, ev.previous, ev.width, ev.height, ev.initial)
}

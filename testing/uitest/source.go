package uitest

import (
	"sync"
	"sync/atomic"
)

// FakeSource implements viewport.Source with scripted dimensions. Resize
// changes the reported size and pushes a notification to every subscriber,
// which is how tests simulate resize storms deterministically.
type FakeSource struct {
	mu     sync.Mutex
	width  int
	height int
	subs   map[int]chan<- struct{}
	nextID int

	reads atomic.Int64
}

// NewFakeSource returns a FakeSource reporting the given size.
func NewFakeSource(width, height int) *FakeSource {
	return &FakeSource{
		width:  width,
		height: height,
		subs:   make(map[int]chan<- struct{}),
	}
}

// Size implements viewport.Source.
func (s *FakeSource) Size() (width, height int) {
	s.reads.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Notify implements viewport.Source.
func (s *FakeSource) Notify(ch chan<- struct{}) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Resize changes the reported dimensions and notifies every subscriber.
func (s *FakeSource) Resize(width, height int) {
	s.mu.Lock()
	s.width = width
	s.height = height
	chans := make([]chan<- struct{}, 0, len(s.subs))
	for _, ch := range s.subs {
		chans = append(chans, ch)
	}
	s.mu.Unlock()

	for _, ch := range chans {
		ch <- struct{}{}
	}
}

// SetSize changes the reported dimensions without notifying, for tests that
// drive recomputation explicitly.
func (s *FakeSource) SetSize(width, height int) {
	s.mu.Lock()
	s.width = width
	s.height = height
	s.mu.Unlock()
}

// Reads reports how many times Size has been called, which is how tests
// count recomputations.
func (s *FakeSource) Reads() int64 {
	return s.reads.Load()
}

// Subscribers reports the number of live Notify registrations.
func (s *FakeSource) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

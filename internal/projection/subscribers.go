// Package projection holds the read models derived from the event log:
// collections, the entry union view with ghost rendering, and the narrow
// task list. Projections are caches; they re-fold the log on query after a
// store notification invalidates them, and re-notify their own subscribers.
package projection

import "sync"

// subscribers is the fan-out list a projection notifies after each store
// change.
type subscribers struct {
	mu   sync.Mutex
	subs map[int]func()
	next int
}

func newSubscribers() *subscribers {
	return &subscribers{subs: make(map[int]func())}
}

func (s *subscribers) add(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *subscribers) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

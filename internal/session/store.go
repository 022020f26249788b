package session

import (
	"sync"
	"time"
)

// Store is the persistence capability for sessions. The in-memory
// implementation below is the default; a durable store can be swapped in
// without touching orchestration logic.
type Store interface {
	Get(id string) (*Session, bool)
	Put(s *Session)
	Delete(id string)
}

type entry struct {
	session *Session
	touched time.Time
}

// InMemoryStore keeps sessions in a process-wide map keyed by session
// id, with idle-TTL eviction.
type InMemoryStore struct {
	mu     sync.Mutex
	items  map[string]*entry
	ttl    time.Duration
	now    func() time.Time
	stopCh chan struct{}
}

// NewInMemoryStore creates a store evicting sessions idle for longer
// than ttl. A ttl of zero disables eviction.
func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	return &InMemoryStore{
		items:  make(map[string]*entry),
		ttl:    ttl,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
}

func (s *InMemoryStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		return nil, false
	}
	e.touched = s.now()
	return e.session, true
}

func (s *InMemoryStore) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[sess.ID] = &entry{session: sess, touched: s.now()}
}

func (s *InMemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
}

// Len returns the number of live sessions.
func (s *InMemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// StartReaper starts a goroutine that periodically evicts idle sessions.
// Call Stop to terminate it.
func (s *InMemoryStore) StartReaper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopCh:
				return
			case <-ticker.C:
				s.reap()
			}
		}
	}()
}

// Stop terminates the reaper goroutine.
func (s *InMemoryStore) Stop() {
	close(s.stopCh)
}

func (s *InMemoryStore) reap() {
	if s.ttl <= 0 {
		return
	}
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.items {
		if now.Sub(e.touched) > s.ttl {
			delete(s.items, id)
		}
	}
}

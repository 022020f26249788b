package session

import (
	"testing"
	"time"
)

func TestStorePutGetDelete(t *testing.T) {
	s := NewInMemoryStore(time.Hour)

	sess := New(time.Now())
	s.Put(sess)

	got, ok := s.Get(sess.ID)
	if !ok {
		t.Fatalf("session not found after Put")
	}
	if got.ID != sess.ID {
		t.Fatalf("got id %s, want %s", got.ID, sess.ID)
	}

	s.Delete(sess.ID)
	if _, ok := s.Get(sess.ID); ok {
		t.Fatalf("session still present after Delete")
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d after delete", s.Len())
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := NewInMemoryStore(time.Hour)
	if _, ok := s.Get("nope"); ok {
		t.Fatalf("found a session that was never stored")
	}
}

func TestStoreReapEvictsIdleSessions(t *testing.T) {
	s := NewInMemoryStore(time.Hour)
	now := time.Now()
	s.now = func() time.Time { return now }

	stale := New(now)
	fresh := New(now)
	s.Put(stale)

	now = now.Add(45 * time.Minute)
	s.Put(fresh)

	now = now.Add(30 * time.Minute)
	s.reap()

	if _, ok := s.Get(stale.ID); ok {
		t.Fatalf("idle session survived the reaper")
	}
	if _, ok := s.Get(fresh.ID); !ok {
		t.Fatalf("fresh session was evicted")
	}
}

func TestStoreGetRefreshesIdleClock(t *testing.T) {
	s := NewInMemoryStore(time.Hour)
	now := time.Now()
	s.now = func() time.Time { return now }

	sess := New(now)
	s.Put(sess)

	// Touch the session just before it would expire.
	now = now.Add(55 * time.Minute)
	if _, ok := s.Get(sess.ID); !ok {
		t.Fatalf("session missing before expiry")
	}

	now = now.Add(55 * time.Minute)
	s.reap()
	if _, ok := s.Get(sess.ID); !ok {
		t.Fatalf("recently read session was evicted")
	}
}

func TestStoreZeroTTLNeverReaps(t *testing.T) {
	s := NewInMemoryStore(0)
	now := time.Now()
	s.now = func() time.Time { return now }

	sess := New(now)
	s.Put(sess)

	now = now.Add(1000 * time.Hour)
	s.reap()
	if _, ok := s.Get(sess.ID); !ok {
		t.Fatalf("session evicted with eviction disabled")
	}
}

func TestNewSessionInitialShape(t *testing.T) {
	sess := New(time.Now())

	if sess.ID == "" {
		t.Fatalf("session has no id")
	}
	if len(sess.Messages) != 0 {
		t.Fatalf("new session has messages: %v", sess.Messages)
	}
	if sess.Phase == "" {
		t.Fatalf("phase not initialized")
	}

	a := New(time.Now())
	if a.ID == sess.ID {
		t.Fatalf("two sessions share an id")
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	sess := New(time.Now())
	at := time.Now()
	sess.Append(NewMessage("user", "первое", at))
	sess.Append(NewMessage("assistant", "второе", at))

	if len(sess.Messages) != 2 {
		t.Fatalf("message count = %d", len(sess.Messages))
	}
	if sess.Messages[0].Content != "первое" || sess.Messages[1].Content != "второе" {
		t.Fatalf("order broken: %v", sess.Messages)
	}
	if sess.Messages[0].ID == sess.Messages[1].ID {
		t.Fatalf("messages share an id")
	}
}

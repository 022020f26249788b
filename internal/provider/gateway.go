package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Provider role labels used in SSE frames.
const (
	RolePrimary   = "primary"
	RoleSecondary = "secondary"
)

var rateLimitMarkers = []string{
	"429",
	"rate limit",
	"tokens per day limit",
}

// IsRateLimit reports whether an error is a backend capacity-exhaustion
// signal, matched against a fixed set of error-text markers.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, m := range rateLimitMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// Decision is the resolved route for one call: which backend to start
// with, decided up front so the caller can announce the active provider
// before streaming begins.
type Decision struct {
	UseFallback  bool
	RetryPrimary bool
}

// Provider returns the role label of the backend this decision routes to.
func (d Decision) Provider() string {
	if d.UseFallback {
		return RoleSecondary
	}
	return RolePrimary
}

// Events are the caller's notification hooks for one streaming call.
// OnDelta receives every text increment in arrival order; OnInfo and
// OnSwitch fire once on a mid-call provider switch.
type Events struct {
	OnDelta  func(delta string) error
	OnInfo   func(message string)
	OnSwitch func(provider string)
}

type fallbackRecord struct {
	since time.Time
}

// Gateway routes streaming calls across a primary and an optional
// secondary backend, tracking failover state independently per session.
type Gateway struct {
	primary       Backend
	secondary     Backend
	retryInterval time.Duration
	now           func() time.Time

	mu       sync.Mutex
	fallback map[string]fallbackRecord
}

// NewGateway builds a gateway. secondary may be nil, in which case
// fallback mode is never entered. retryInterval is how long a session
// stays on the secondary before the primary is optimistically retried.
func NewGateway(primary, secondary Backend, retryInterval time.Duration) *Gateway {
	return &Gateway{
		primary:       primary,
		secondary:     secondary,
		retryInterval: retryInterval,
		now:           time.Now,
		fallback:      make(map[string]fallbackRecord),
	}
}

// Decide resolves the route for the session's next call. A session in
// fallback mode goes straight to the secondary until the retry interval
// elapses, then retries the primary. A fallback record with no secondary
// configured is stale and is cleared.
func (g *Gateway) Decide(sessionID string) Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.fallback[sessionID]
	if !ok {
		return Decision{}
	}
	if g.secondary == nil {
		delete(g.fallback, sessionID)
		return Decision{}
	}
	if g.now().Sub(rec.since) >= g.retryInterval {
		return Decision{RetryPrimary: true}
	}
	return Decision{UseFallback: true}
}

// InFallback reports whether the session currently has a fallback record.
func (g *Gateway) InFallback(sessionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.fallback[sessionID]
	return ok
}

// Stream executes one logical streaming call following the decided
// route. Regardless of which backend serves the request, the caller sees
// a single stream of increments through ev.OnDelta; a mid-call switch is
// announced through ev.OnInfo and ev.OnSwitch.
func (g *Gateway) Stream(ctx context.Context, sessionID string, d Decision, messages []Message, ev Events) error {
	if d.UseFallback {
		return g.secondary.Stream(ctx, messages, ev.OnDelta)
	}

	err := g.primary.Stream(ctx, messages, ev.OnDelta)
	if err == nil {
		g.clearFallback(sessionID)
		return nil
	}
	if !IsRateLimit(err) {
		return err
	}
	if g.secondary == nil {
		return fmt.Errorf("primary provider rate limited and no fallback configured: %w", err)
	}

	// Enter (or refresh) fallback mode and retry once on the secondary
	// within the same call.
	g.markFallback(sessionID)
	if ev.OnInfo != nil {
		ev.OnInfo("Переключаюсь на резервный AI провайдер...")
	}
	if ev.OnSwitch != nil {
		ev.OnSwitch(RoleSecondary)
	}
	return g.secondary.Stream(ctx, messages, ev.OnDelta)
}

func (g *Gateway) markFallback(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.fallback[sessionID] = fallbackRecord{since: g.now()}
}

func (g *Gateway) clearFallback(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.fallback, sessionID)
}

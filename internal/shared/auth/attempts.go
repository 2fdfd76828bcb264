package auth

import (
	"strings"
	"sync"
	"time"
)

// AttemptStore counts failed logins per identity inside a sliding window.
type AttemptStore interface {
	// Allowed reports whether another attempt may be made now.
	Allowed(key string) bool
	// Fail records a failed attempt.
	Fail(key string)
	// Reset clears the history for key, e.g. after a successful login.
	Reset(key string)
}

// MemoryAttempts is an in-process AttemptStore.
type MemoryAttempts struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	now    func() time.Time
	fails  map[string][]time.Time
}

// NewMemoryAttempts allows at most max failures per window per key.
func NewMemoryAttempts(max int, window time.Duration, now func() time.Time) *MemoryAttempts {
	if max <= 0 {
		max = 5
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryAttempts{max: max, window: window, now: now, fails: make(map[string][]time.Time)}
}

func (m *MemoryAttempts) Allowed(key string) bool {
	key = normalizeAttemptKey(key)
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prune(key)) < m.max
}

func (m *MemoryAttempts) Fail(key string) {
	key = normalizeAttemptKey(key)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fails[key] = append(m.prune(key), m.now())
}

func (m *MemoryAttempts) Reset(key string) {
	key = normalizeAttemptKey(key)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.fails, key)
}

// prune drops failures older than the window. Caller holds mu.
func (m *MemoryAttempts) prune(key string) []time.Time {
	cutoff := m.now().Add(-m.window)
	kept := m.fails[key][:0]
	for _, at := range m.fails[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	if len(kept) == 0 {
		delete(m.fails, key)
		return nil
	}
	m.fails[key] = kept
	return kept
}

func normalizeAttemptKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

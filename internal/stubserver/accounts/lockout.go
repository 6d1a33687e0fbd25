package accounts

import (
	"sync"
	"time"
)

type attempts struct {
	count int
	last  time.Time
}

// Lockout counts failed logins per key. After max failures the key stays
// locked until window has passed since the last failure.
type Lockout struct {
	mu      sync.Mutex
	entries map[string]*attempts
	max     int
	window  time.Duration
	now     func() time.Time
}

func NewLockout(max int, window time.Duration, now func() time.Time) *Lockout {
	return &Lockout{
		entries: make(map[string]*attempts),
		max:     max,
		window:  window,
		now:     now,
	}
}

// Check returns the remaining lockout for key, or 0 when login may proceed.
func (l *Lockout) Check(key string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		return 0
	}
	elapsed := l.now().Sub(e.last)
	if elapsed > l.window {
		delete(l.entries, key)
		return 0
	}
	if e.count >= l.max {
		return l.window - elapsed
	}
	return 0
}

func (l *Lockout) Fail(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &attempts{}
		l.entries[key] = e
	}
	e.count++
	e.last = l.now()
}

func (l *Lockout) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
}

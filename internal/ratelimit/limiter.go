// Package ratelimit implements a fixed-window request counter keyed by
// client identity. Counting is O(1) per check and coarse by design: at the
// window boundary the counter restarts regardless of the mid-window arrival
// pattern, which is enough to deter abuse of the cheap endpoints it guards.
package ratelimit

import (
	"sync"
	"time"

	"github.com/wdthirty/solana-launchpad-sub004/pkg/logger"
)

// Decision is the outcome of a single admission check.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Checker is the admission seam consumed by the HTTP middleware. The
// in-process Limiter never returns an error; the middleware's fail-open
// handling exists for alternative backends.
type Checker interface {
	Check(key string) (Decision, error)
}

// entry holds the per-key window state. All reads and writes happen under
// the entry mutex, so increment-or-reset is a single atomic unit per key and
// unrelated keys never contend.
type entry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
	gone    bool // set by the sweeper after removal from the map
}

// Limiter admits up to max requests per key within a fixed window.
type Limiter struct {
	max     int
	window  time.Duration
	entries sync.Map // string -> *entry

	now    func() time.Time
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a limiter admitting max requests per window. Call Start to run
// the expiry sweep and Stop to shut it down.
func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:    max,
		window: window,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
}

// Check records a request for key and decides whether to admit it. The first
// request in a window resets the counter to 1; requests beyond max within
// the same window are rejected until ResetAt passes.
func (l *Limiter) Check(key string) (Decision, error) {
	for {
		v, _ := l.entries.LoadOrStore(key, &entry{})
		e := v.(*entry)

		e.mu.Lock()
		if e.gone {
			// Lost a race with the sweeper; the entry is no longer in the
			// map, so fetch a fresh one.
			e.mu.Unlock()
			continue
		}

		now := l.now()
		if e.resetAt.IsZero() || now.After(e.resetAt) {
			e.count = 1
			e.resetAt = now.Add(l.window)
		} else {
			e.count++
		}

		decision := Decision{
			Allowed: e.count <= l.max,
			ResetAt: e.resetAt,
		}
		if remaining := l.max - e.count; remaining > 0 {
			decision.Remaining = remaining
		}
		e.mu.Unlock()

		return decision, nil
	}
}

// Start launches the periodic sweep that evicts expired records. The sweep
// runs off the request path; a slow pass never delays Check.
func (l *Limiter) Start() {
	l.wg.Add(1)
	go l.run()
	logger.Info("rate limiter started", "max", l.max, "window", l.window)
}

// Stop terminates the sweep goroutine and waits for it to exit.
func (l *Limiter) Stop() {
	close(l.stopCh)
	l.wg.Wait()
	logger.Info("rate limiter stopped")
}

func (l *Limiter) run() {
	defer l.wg.Done()

	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.stopCh:
			return
		}
	}
}

// sweep removes records whose window has passed, bounding memory to the keys
// seen within the last window plus one sweep interval.
func (l *Limiter) sweep() {
	now := l.now()
	removed := 0

	l.entries.Range(func(key, v interface{}) bool {
		e := v.(*entry)
		e.mu.Lock()
		if !e.resetAt.IsZero() && now.After(e.resetAt) {
			e.gone = true
			l.entries.Delete(key)
			removed++
		}
		e.mu.Unlock()
		return true
	})

	if removed > 0 {
		logger.Debug("rate limiter sweep", "removed", removed)
	}
}

// Len reports the number of tracked keys.
func (l *Limiter) Len() int {
	count := 0
	l.entries.Range(func(_, _ interface{}) bool {
		count++
		return true
	})
	return count
}

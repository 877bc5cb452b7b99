package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiter_AdmitsUpToMax(t *testing.T) {
	l := New(10, time.Minute)

	for i := 0; i < 10; i++ {
		decision, err := l.Check("1.2.3.4")
		require.NoError(t, err)
		require.True(t, decision.Allowed, "request %d should be admitted", i+1)
		require.Equal(t, 10-(i+1), decision.Remaining)
	}

	decision, err := l.Check("1.2.3.4")
	require.NoError(t, err)
	require.False(t, decision.Allowed, "11th request should be rejected")
	require.Equal(t, 0, decision.Remaining)
}

func TestLimiter_WindowReset(t *testing.T) {
	now := time.Now()
	l := New(10, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < 10; i++ {
		decision, _ := l.Check("1.2.3.4")
		require.True(t, decision.Allowed)
	}
	decision, _ := l.Check("1.2.3.4")
	require.False(t, decision.Allowed)

	// 61 seconds later the window has passed and the counter restarts at 1.
	now = now.Add(61 * time.Second)
	decision, _ = l.Check("1.2.3.4")
	require.True(t, decision.Allowed)
	require.Equal(t, 9, decision.Remaining, "fresh window starts at count 1")
	require.Equal(t, now.Add(time.Minute), decision.ResetAt)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := New(1, time.Minute)

	decision, _ := l.Check("a")
	require.True(t, decision.Allowed)
	decision, _ = l.Check("a")
	require.False(t, decision.Allowed)

	decision, _ = l.Check("b")
	require.True(t, decision.Allowed, "other keys keep their own counter")
}

func TestLimiter_ConcurrentChecks_ExactlyMaxAdmits(t *testing.T) {
	const max = 50
	l := New(max, time.Minute)

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted, rejected := 0, 0

	for i := 0; i < 2*max; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			decision, err := l.Check("shared")
			require.NoError(t, err)

			mu.Lock()
			if decision.Allowed {
				admitted++
			} else {
				rejected++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Equal(t, max, admitted, "no double-admit beyond the limit, no lost increments")
	require.Equal(t, max, rejected)
}

func TestLimiter_SweepEvictsExpired(t *testing.T) {
	now := time.Now()
	l := New(5, time.Minute)
	l.now = func() time.Time { return now }

	l.Check("a")
	l.Check("b")
	require.Equal(t, 2, l.Len())

	// Nothing expired yet.
	l.sweep()
	require.Equal(t, 2, l.Len())

	now = now.Add(2 * time.Minute)
	l.Check("c")
	l.sweep()
	require.Equal(t, 1, l.Len(), "only the fresh key survives")

	// An evicted key is recreated on the next check.
	decision, _ := l.Check("a")
	require.True(t, decision.Allowed)
	require.Equal(t, 2, l.Len())
}

func TestLimiter_CheckAfterSweepRace(t *testing.T) {
	l := New(5, time.Minute)

	// A tombstoned entry forces Check to retry until the sweeper finishes
	// removing it from the map.
	e := &entry{gone: true}
	l.entries.Store("a", e)
	go func() {
		time.Sleep(5 * time.Millisecond)
		l.entries.Delete("a")
	}()

	decision, err := l.Check("a")
	require.NoError(t, err)
	require.True(t, decision.Allowed)
}

func TestLimiter_StartStop(t *testing.T) {
	l := New(5, 10*time.Millisecond)
	l.Start()

	l.Check("a")
	time.Sleep(50 * time.Millisecond)

	l.Stop()
	require.Equal(t, 0, l.Len(), "expired key swept while running")
}

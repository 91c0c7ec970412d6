package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond
	checkTimeout = 500 * time.Millisecond
)

// GoroutineChecker records the goroutine count before a block of work and
// fails the test if the count has grown by more than a tolerance afterwards.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check polls until the goroutine count is back within tolerance or the
// timeout elapses.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(checkTimeout)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(pollInterval)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if it left goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckNoAllocs fails the test if fn allocates on average per run
func CheckNoAllocs(t testing.TB, runs int, fn func()) {
	t.Helper()

	if allocs := testing.AllocsPerRun(runs, fn); allocs > 0 {
		t.Errorf("Unexpected allocations: %.1f per run", allocs)
	}
}

package radar

import "time"

// maxTickElapsed bounds the wall-clock delta applied in a single tick. A tab
// suspend/resume or debugger pause would otherwise decay every detection fade
// and spin the sweep through several rotations in one frame.
const maxTickElapsed = 250 * time.Millisecond

// DefaultThrottle is the minimum interval between geometry recomputations.
// Sweep rotation and fade decay still advance every tick.
const DefaultThrottle = 100 * time.Millisecond

// clampElapsed sanitises a per-tick elapsed duration: negative deltas (clock
// steps) become zero, oversized ones are capped at maxTickElapsed.
func clampElapsed(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > maxTickElapsed {
		return maxTickElapsed
	}
	return d
}

// updateGate throttles geometry recomputation to a minimum interval,
// decoupling projection/pool cost from the render frame rate. The first call
// always fires.
type updateGate struct {
	interval time.Duration
	accum    time.Duration
}

func newUpdateGate(interval time.Duration) updateGate {
	if interval <= 0 {
		interval = DefaultThrottle
	}
	// Pre-charged so the first update computes immediately.
	return updateGate{interval: interval, accum: interval}
}

// ready accumulates elapsed time and reports whether a geometry pass is due.
func (g *updateGate) ready(elapsed time.Duration) bool {
	g.accum += elapsed
	if g.accum < g.interval {
		return false
	}
	g.accum = 0
	return true
}

package radar

import (
	"math"
	"sort"
	"time"
)

// Sweep timing defaults. The rotation rate is wall-clock-bound so the sweep
// looks identical at 30 and 144 FPS.
const (
	DefaultSweepPeriod  = 4 * time.Second
	DefaultScanWidth    = 0.3 // radians
	DefaultFadeDuration = 1500 * time.Millisecond
)

// SweepTracker owns the rotating sweep angle and the per-entity detection
// fades of one sweep-enabled view. When the sweep line crosses an entity's
// angular position the entity gets a detection entry that decays from
// FadeDuration to zero; Pulse reports the remaining fraction for styling.
type SweepTracker struct {
	Period       time.Duration
	ScanWidth    float64
	FadeDuration time.Duration

	angle float64                // [0, 2π)
	fades map[int]time.Duration // entity id → fadeRemaining
}

// NewSweepTracker returns a tracker with the default period, scan width and
// fade duration. Fields may be tuned before the first Advance.
func NewSweepTracker() *SweepTracker {
	return &SweepTracker{
		Period:       DefaultSweepPeriod,
		ScanWidth:    DefaultScanWidth,
		FadeDuration: DefaultFadeDuration,
		fades:        make(map[int]time.Duration),
	}
}

// Advance moves the sweep by one tick's wall-clock delta and decays every
// active detection entry. Entries are removed exactly when they first reach
// zero. The elapsed duration is clamped so a suspended tab cannot skip whole
// rotations or wipe all fades in one frame.
func (t *SweepTracker) Advance(elapsed time.Duration) {
	elapsed = clampElapsed(elapsed)
	if elapsed <= 0 {
		return
	}

	t.angle += float64(elapsed) / float64(t.Period) * 2 * math.Pi
	t.angle = math.Mod(t.angle, 2*math.Pi)

	for id, remaining := range t.fades {
		remaining -= elapsed
		if remaining <= 0 {
			delete(t.fades, id)
			continue
		}
		t.fades[id] = remaining
	}
}

// Scan checks one visible entity against the sweep line. displayAngle is the
// entity's angular position on the display (atan2(x, -y)). When the
// shortest-arc distance to the sweep is within ScanWidth and the entity has
// no active entry, a fresh fade is created. An entity re-scanned while
// already fading keeps its running timer — restarting it would make markers
// flicker every crossing.
func (t *SweepTracker) Scan(id int, displayAngle float64) {
	if _, fading := t.fades[id]; fading {
		return
	}
	if angularDistance(t.angle, displayAngle) <= t.ScanWidth {
		t.fades[id] = t.FadeDuration
	}
}

// Pulse returns the detection highlight strength for an entity: 1 immediately
// after a scan, linearly down to 0 as the fade expires, 0 when inactive.
func (t *SweepTracker) Pulse(id int) float64 {
	remaining, ok := t.fades[id]
	if !ok {
		return 0
	}
	return float64(remaining) / float64(t.FadeDuration)
}

// PruneMissing discards fades for ids absent from the current entity list.
// An entity that disappears mid-fade drops its highlight immediately instead
// of haunting the display until the timer runs out.
func (t *SweepTracker) PruneMissing(present map[int]bool) {
	for id := range t.fades {
		if !present[id] {
			delete(t.fades, id)
		}
	}
}

// Angle returns the current sweep angle in [0, 2π).
func (t *SweepTracker) Angle() float64 { return t.angle }

// Active returns the ids with a live detection entry, sorted ascending.
func (t *SweepTracker) Active() []int {
	ids := make([]int, 0, len(t.fades))
	for id := range t.fades {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

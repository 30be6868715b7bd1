package radar

import (
	"sort"
	"time"
)

// DefaultCompassConfig is the short-range threat strip: a narrow forward
// cone, nearest-first selection, no rim clamping.
func DefaultCompassConfig() ViewConfig {
	return ViewConfig{
		Range:         60,
		DisplayRadius: 150,
		FOVHalfAngle:  1.0,
		MaxVisible:    8,
		PoolCapacity:  12,
	}
}

// CompassStrip is the short-range threat indicator. Entities outside the
// forward cone are culled outright — the strip shows nothing at the rim —
// and when more entities fit the cone than MaxVisible, only the nearest ones
// are shown this tick; the rest are dropped, not queued.
//
// Markers are rebuilt positionally on every geometry pass: the strip has no
// per-id marker continuity, so the whole pool is recycled each pass.
type CompassStrip struct {
	cfg     ViewConfig
	gate    updateGate
	pool    *Pool[*Marker]
	visible []*Marker
	dropped int
}

// NewCompassStrip constructs the view with its own pool. The configuration
// is fixed for the view's lifetime.
func NewCompassStrip(cfg ViewConfig) *CompassStrip {
	return &CompassStrip{
		cfg:  cfg,
		gate: newUpdateGate(cfg.Throttle),
		pool: NewPool(cfg.PoolCapacity, newMarker, (*Marker).hide),
	}
}

// candidate pairs a projected entity with its display distance for ranking.
type candidate struct {
	ent  TrackedEntity
	proj Projection
	mag2 float64 // squared display distance; scale is uniform, so ranking by it equals ranking by world distance
}

// Update recomputes the strip for this tick. Geometry work is throttled;
// calls inside the throttle window are free.
func (c *CompassStrip) Update(viewer Viewer, entities []TrackedEntity, elapsed time.Duration) {
	if !c.gate.ready(clampElapsed(elapsed)) {
		return
	}

	// Release the whole previous pass before any reuse.
	for _, m := range c.visible {
		c.pool.Release(m)
	}
	c.visible = c.visible[:0]
	c.dropped = 0

	cands := make([]candidate, 0, len(entities))
	for _, e := range entities {
		if e.Dead {
			continue
		}
		proj, ok := Project(viewer, e.X, e.Z, c.cfg)
		if !ok {
			continue
		}
		cands = append(cands, candidate{ent: e, proj: proj, mag2: proj.X*proj.X + proj.Y*proj.Y})
	}

	// Nearest first; ties broken by id so the selected set is independent of
	// input order.
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].mag2 != cands[j].mag2 {
			return cands[i].mag2 < cands[j].mag2
		}
		return cands[i].ent.ID < cands[j].ent.ID
	})

	if len(cands) > c.cfg.MaxVisible {
		c.dropped = len(cands) - c.cfg.MaxVisible
		cands = cands[:c.cfg.MaxVisible]
	}

	for _, cand := range cands {
		m, ok := c.pool.Acquire()
		if !ok {
			c.dropped++
			continue
		}
		m.EntityID = cand.ent.ID
		m.Category = cand.ent.Category
		m.X = cand.proj.X
		m.Y = cand.proj.Y
		m.ClampedToEdge = false
		m.Facing = normalizeAngle(cand.ent.Facing - viewer.Heading)
		m.HasFacing = cand.ent.HasFacing
		m.Style = StyleHint{}
		m.Visible = true
		c.visible = append(c.visible, m)
	}
}

// Placements returns the current snapshot for the rendering layer.
func (c *CompassStrip) Placements() []Placement {
	out := make([]Placement, 0, len(c.visible))
	for _, m := range c.visible {
		out = append(out, placementOf(m))
	}
	return out
}

// Dropped returns how many in-cone entities were not rendered on the last
// geometry pass (beyond MaxVisible, or pool exhausted).
func (c *CompassStrip) Dropped() int { return c.dropped }

// Config returns the view's fixed configuration.
func (c *CompassStrip) Config() ViewConfig { return c.cfg }

func newMarker() *Marker { return &Marker{} }

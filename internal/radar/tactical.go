package radar

import (
	"sort"
	"time"
)

// MaxBuildingMarkers caps the static-geometry slots on the tactical radar.
// Buildings beyond the cap are silently dropped for the tick.
const MaxBuildingMarkers = 64

// DefaultTacticalConfig is the 360° rotating radar: fixed range mapped onto a
// fixed disc, out-of-range contacts clamped to the rim.
func DefaultTacticalConfig() ViewConfig {
	return ViewConfig{
		Range:         250,
		DisplayRadius: 60,
		MaxVisible:    24,
		PoolCapacity:  32,
	}
}

// TacticalRadar is the rotating mid-range radar. Entity markers are acquired
// and released by entity id as contacts enter and leave the disc, so a
// contact keeps its handle while continuously visible. Static buildings use a
// flat slot array instead — they are numerous, anonymous and immobile, and
// per-id churn would buy nothing.
//
// The sweep advances on every call; projection and pooling run only on
// throttled geometry passes.
type TacticalRadar struct {
	cfg   ViewConfig
	sweep *SweepTracker
	gate  updateGate

	pool    *Pool[*Marker]
	markers map[int]*Marker // entity id → acquired marker

	buildingSlots [MaxBuildingMarkers]Marker
	buildingCount int

	dropped int
}

// NewTacticalRadar constructs the view with its own pool and sweep tracker.
func NewTacticalRadar(cfg ViewConfig) *TacticalRadar {
	return &TacticalRadar{
		cfg:     cfg,
		sweep:   NewSweepTracker(),
		gate:    newUpdateGate(cfg.Throttle),
		pool:    NewPool(cfg.PoolCapacity, newMarker, (*Marker).hide),
		markers: make(map[int]*Marker),
	}
}

// Sweep exposes the view's sweep tracker so callers can tune period, scan
// width and fade duration before the first update.
func (r *TacticalRadar) Sweep() *SweepTracker { return r.sweep }

// Update advances the radar by one tick. entities and buildings are borrowed
// for the duration of the call only.
func (r *TacticalRadar) Update(viewer Viewer, entities []TrackedEntity, buildings []Building, elapsed time.Duration) {
	elapsed = clampElapsed(elapsed)

	// The sweep is continuous — it must not stutter at the geometry cadence.
	r.sweep.Advance(elapsed)

	present := make(map[int]bool, len(entities))
	for _, e := range entities {
		if !e.Dead {
			present[e.ID] = true
		}
	}
	r.sweep.PruneMissing(present)

	if r.gate.ready(elapsed) {
		r.recompute(viewer, entities, buildings, present)
	}

	// Scan and restyle every tick so pulses track the moving sweep smoothly.
	for id, m := range r.markers {
		r.sweep.Scan(id, displayAngle(m.X, m.Y))
		m.Style.Pulse = r.sweep.Pulse(id)
	}
}

// recompute is the throttled geometry pass: cull, release, project, pool.
func (r *TacticalRadar) recompute(viewer Viewer, entities []TrackedEntity, buildings []Building, present map[int]bool) {
	r.dropped = 0

	// Release first: handles freed here are reusable later in the same pass.
	for id, m := range r.markers {
		if !present[id] {
			r.pool.Release(m)
			delete(r.markers, id)
		}
	}

	for _, e := range entities {
		if e.Dead {
			continue
		}
		proj, ok := Project(viewer, e.X, e.Z, r.cfg)
		if !ok {
			// Culling happens before pooling: a culled contact gives its
			// handle back immediately.
			if m, held := r.markers[e.ID]; held {
				r.pool.Release(m)
				delete(r.markers, e.ID)
			}
			continue
		}

		m, held := r.markers[e.ID]
		if !held {
			if len(r.markers) >= r.cfg.MaxVisible {
				r.dropped++
				continue
			}
			var ok bool
			m, ok = r.pool.Acquire()
			if !ok {
				r.dropped++
				continue
			}
			r.markers[e.ID] = m
		}
		m.EntityID = e.ID
		m.Category = e.Category
		m.X = proj.X
		m.Y = proj.Y
		m.ClampedToEdge = proj.ClampedToEdge
		m.Facing = normalizeAngle(e.Facing - viewer.Heading)
		m.HasFacing = e.HasFacing
		m.Visible = true
	}

	// Buildings: same transform, slot-indexed reuse, silent drop past the cap.
	n := len(buildings)
	if n > MaxBuildingMarkers {
		n = MaxBuildingMarkers
	}
	r.buildingCount = 0
	for i := 0; i < n; i++ {
		proj, ok := Project(viewer, buildings[i].X, buildings[i].Z, r.cfg)
		if !ok {
			continue
		}
		s := &r.buildingSlots[r.buildingCount]
		*s = Marker{
			EntityID:      r.buildingCount,
			Category:      CategoryBuilding,
			X:             proj.X,
			Y:             proj.Y,
			ClampedToEdge: proj.ClampedToEdge,
			Visible:       true,
		}
		r.buildingCount++
	}
}

// Placements returns the current entity snapshot, ordered by id.
func (r *TacticalRadar) Placements() []Placement {
	ids := make([]int, 0, len(r.markers))
	for id := range r.markers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]Placement, 0, len(ids))
	for _, id := range ids {
		out = append(out, placementOf(r.markers[id]))
	}
	return out
}

// BuildingPlacements returns the static-geometry snapshot. The ID field is
// the slot index, not an entity id.
func (r *TacticalRadar) BuildingPlacements() []Placement {
	out := make([]Placement, 0, r.buildingCount)
	for i := 0; i < r.buildingCount; i++ {
		out = append(out, placementOf(&r.buildingSlots[i]))
	}
	return out
}

// SweepAngle returns the sweep line's current angle in [0, 2π).
func (r *TacticalRadar) SweepAngle() float64 { return r.sweep.Angle() }

// Detections returns the ids currently carrying a detection highlight.
func (r *TacticalRadar) Detections() []int { return r.sweep.Active() }

// Dropped returns how many in-range contacts were not rendered on the last
// geometry pass.
func (r *TacticalRadar) Dropped() int { return r.dropped }

// Config returns the view's fixed configuration.
func (r *TacticalRadar) Config() ViewConfig { return r.cfg }

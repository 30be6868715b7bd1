package radar

import (
	"sort"
	"time"
)

// DefaultFullMapConfig is the persistent overview map: no range culling,
// Range only sets the world-to-display scale, rim clamping keeps distant
// contacts as directional hints.
func DefaultFullMapConfig() ViewConfig {
	return ViewConfig{
		Range:         1500,
		DisplayRadius: 280,
		Unbounded:     true,
		MaxVisible:    64,
		PoolCapacity:  64,
	}
}

// FullMap is the persistent overview surface. Markers are keyed by entity id
// for their whole on-map life: a specific enemy keeps the same handle across
// many ticks instead of round-robin reuse, so the renderer can animate it
// smoothly. The map also owns the exploration memory — every tick the
// viewer's current chunk is recorded, and the set never shrinks.
type FullMap struct {
	cfg  ViewConfig
	gate updateGate

	pool    *Pool[*Marker]
	markers map[int]*Marker

	explored *ChunkSet
	dropped  int
}

// NewFullMap constructs the view. chunkSize is the fog-of-war quantum in
// world units; non-positive selects DefaultChunkSize.
func NewFullMap(cfg ViewConfig, chunkSize float64) *FullMap {
	return &FullMap{
		cfg:      cfg,
		gate:     newUpdateGate(cfg.Throttle),
		pool:     NewPool(cfg.PoolCapacity, newMarker, (*Marker).hide),
		markers:  make(map[int]*Marker),
		explored: NewChunkSet(chunkSize),
	}
}

// Update advances the map by one tick. Exploration is recorded every call;
// marker geometry only on throttled passes.
func (f *FullMap) Update(viewer Viewer, entities []TrackedEntity, elapsed time.Duration) {
	f.explored.Visit(viewer.X, viewer.Z)

	if !f.gate.ready(clampElapsed(elapsed)) {
		return
	}

	present := make(map[int]bool, len(entities))
	for _, e := range entities {
		if !e.Dead {
			present[e.ID] = true
		}
	}

	f.dropped = 0
	for id, m := range f.markers {
		if !present[id] {
			f.pool.Release(m)
			delete(f.markers, id)
		}
	}

	for _, e := range entities {
		if e.Dead {
			continue
		}
		proj, ok := Project(viewer, e.X, e.Z, f.cfg)
		if !ok {
			// Unbounded view: only non-finite positions land here.
			if m, held := f.markers[e.ID]; held {
				f.pool.Release(m)
				delete(f.markers, e.ID)
			}
			continue
		}

		m, held := f.markers[e.ID]
		if !held {
			if len(f.markers) >= f.cfg.MaxVisible {
				f.dropped++
				continue
			}
			var ok bool
			m, ok = f.pool.Acquire()
			if !ok {
				f.dropped++
				continue
			}
			f.markers[e.ID] = m
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
}

// Placements returns the current snapshot, ordered by id.
func (f *FullMap) Placements() []Placement {
	ids := make([]int, 0, len(f.markers))
	for id := range f.markers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]Placement, 0, len(ids))
	for _, id := range ids {
		out = append(out, placementOf(f.markers[id]))
	}
	return out
}

// Explored returns the exploration memory's chunks in deterministic order.
func (f *FullMap) Explored() []Chunk { return f.explored.Chunks() }

// ExploredCount returns how many chunks have been visited.
func (f *FullMap) ExploredCount() int { return f.explored.Len() }

// Seen reports whether a chunk has been explored; renderers use it to decide
// whether to reveal terrain detail there.
func (f *FullMap) Seen(c Chunk) bool { return f.explored.Seen(c) }

// SeenAt reports exploration for a world position.
func (f *FullMap) SeenAt(wx, wz float64) bool { return f.explored.SeenAt(wx, wz) }

// ChunkSize returns the fog-of-war quantum in world units.
func (f *FullMap) ChunkSize() float64 { return f.explored.Size() }

// Dropped returns how many live entities were not rendered on the last
// geometry pass.
func (f *FullMap) Dropped() int { return f.dropped }

// Config returns the view's fixed configuration.
func (f *FullMap) Config() ViewConfig { return f.cfg }

package radar

import (
	"fmt"
	"math"
	"time"
)

// TestRig is a headless scenario harness used by tests and the report tool.
// It owns one of each view, scripts straight-line entity motion at a fixed
// tick duration, and diffs view state into a TraceLog after every tick.
type TestRig struct {
	Viewer   Viewer
	Compass  *CompassStrip
	Tactical *TacticalRadar
	Map      *FullMap
	Log      *TraceLog

	buildings []Building
	scripted  []*scriptedEntity

	tickDur time.Duration
	tick    int

	// Optional viewer motion.
	viewerTX, viewerTZ float64
	viewerSpeed        float64 // world units per second; 0 = stationary
	viewerSpin         float64 // radians per second applied to heading

	prevPulses map[int]bool
	prevChunks int
}

// scriptedEntity moves in a straight line from its spawn toward a target at a
// fixed speed, then holds position.
type scriptedEntity struct {
	ent    TrackedEntity
	tx, tz float64
	speed  float64 // world units per second
}

// rigOptionKind controls the pass in which an option is applied.
type rigOptionKind int

const (
	rigOptInfra rigOptionKind = iota // tick duration, configs, verbosity — applied first
	rigOptWorld                      // viewer, entities, buildings — applied after views exist
)

// RigOption is a builder function applied to a TestRig during construction.
type RigOption struct {
	kind rigOptionKind
	fn   func(*TestRig)
}

// WithTickDuration sets the simulated wall-clock delta per tick.
func WithTickDuration(d time.Duration) RigOption {
	return RigOption{rigOptInfra, func(r *TestRig) { r.tickDur = d }}
}

// WithVerboseLog enables per-tick placement/sweep trace entries.
func WithVerboseLog(v bool) RigOption {
	return RigOption{rigOptInfra, func(r *TestRig) { r.Log = NewTraceLog(v) }}
}

// WithCompassConfig replaces the compass strip configuration.
func WithCompassConfig(cfg ViewConfig) RigOption {
	return RigOption{rigOptInfra, func(r *TestRig) { r.Compass = NewCompassStrip(cfg) }}
}

// WithTacticalConfig replaces the tactical radar configuration.
func WithTacticalConfig(cfg ViewConfig) RigOption {
	return RigOption{rigOptInfra, func(r *TestRig) { r.Tactical = NewTacticalRadar(cfg) }}
}

// WithFullMapConfig replaces the full map configuration and chunk size.
func WithFullMapConfig(cfg ViewConfig, chunkSize float64) RigOption {
	return RigOption{rigOptInfra, func(r *TestRig) { r.Map = NewFullMap(cfg, chunkSize) }}
}

// WithViewer places the viewer at (x, z) with the given heading.
func WithViewer(x, z, heading float64) RigOption {
	return RigOption{rigOptWorld, func(r *TestRig) {
		r.Viewer = Viewer{X: x, Z: z, Heading: heading}
	}}
}

// WithViewerDrift moves the viewer toward (tx, tz) at speed world units/sec.
func WithViewerDrift(tx, tz, speed float64) RigOption {
	return RigOption{rigOptWorld, func(r *TestRig) {
		r.viewerTX, r.viewerTZ, r.viewerSpeed = tx, tz, speed
	}}
}

// WithViewerSpin rotates the viewer heading at radPerSec.
func WithViewerSpin(radPerSec float64) RigOption {
	return RigOption{rigOptWorld, func(r *TestRig) { r.viewerSpin = radPerSec }}
}

// WithEnemy adds a stationary enemy.
func WithEnemy(id int, x, z float64) RigOption {
	return withScripted(TrackedEntity{ID: id, X: x, Z: z, Category: CategoryEnemy}, x, z, 0)
}

// WithMovingEnemy adds an enemy advancing from (sx, sz) toward (tx, tz) at
// speed world units per second.
func WithMovingEnemy(id int, sx, sz, tx, tz, speed float64) RigOption {
	return withScripted(TrackedEntity{ID: id, X: sx, Z: sz, Category: CategoryEnemy}, tx, tz, speed)
}

// WithPOI adds a stationary point of interest.
func WithPOI(id int, x, z float64) RigOption {
	return withScripted(TrackedEntity{ID: id, X: x, Z: z, Category: CategoryPOI}, x, z, 0)
}

// WithPlayer adds a stationary allied player marker.
func WithPlayer(id int, x, z float64) RigOption {
	return withScripted(TrackedEntity{ID: id, X: x, Z: z, Category: CategoryPlayer}, x, z, 0)
}

// WithBuilding adds a static building.
func WithBuilding(x, z float64) RigOption {
	return RigOption{rigOptWorld, func(r *TestRig) {
		r.buildings = append(r.buildings, Building{X: x, Z: z})
	}}
}

func withScripted(ent TrackedEntity, tx, tz, speed float64) RigOption {
	return RigOption{rigOptWorld, func(r *TestRig) {
		r.scripted = append(r.scripted, &scriptedEntity{ent: ent, tx: tx, tz: tz, speed: speed})
	}}
}

// NewTestRig constructs a rig from the given options in two ordered passes:
//
//  1. Infrastructure (tick duration, view configs, verbosity)
//  2. World (viewer, entities, buildings)
func NewTestRig(opts ...RigOption) *TestRig {
	r := &TestRig{
		tickDur:    50 * time.Millisecond,
		Log:        NewTraceLog(false),
		prevPulses: map[int]bool{},
	}
	for _, o := range opts {
		if o.kind == rigOptInfra {
			o.fn(r)
		}
	}
	if r.Compass == nil {
		r.Compass = NewCompassStrip(DefaultCompassConfig())
	}
	if r.Tactical == nil {
		r.Tactical = NewTacticalRadar(DefaultTacticalConfig())
	}
	if r.Map == nil {
		r.Map = NewFullMap(DefaultFullMapConfig(), DefaultChunkSize)
	}
	for _, o := range opts {
		if o.kind == rigOptWorld {
			o.fn(r)
		}
	}
	return r
}

// Entities returns this tick's entity list, freshly assembled the way the
// game would supply it.
func (r *TestRig) Entities() []TrackedEntity {
	out := make([]TrackedEntity, 0, len(r.scripted))
	for _, s := range r.scripted {
		out = append(out, s.ent)
	}
	return out
}

// Kill marks a scripted entity dead; the views treat it as absent from the
// next tick on.
func (r *TestRig) Kill(id int) {
	for _, s := range r.scripted {
		if s.ent.ID == id {
			s.ent.Dead = true
		}
	}
}

// Remove drops a scripted entity from the supplied list entirely.
func (r *TestRig) Remove(id int) {
	kept := r.scripted[:0]
	for _, s := range r.scripted {
		if s.ent.ID != id {
			kept = append(kept, s)
		}
	}
	r.scripted = kept
}

// CurrentTick returns the tick counter.
func (r *TestRig) CurrentTick() int { return r.tick }

// RunTicks advances the scenario n ticks.
func (r *TestRig) RunTicks(n int) {
	for i := 0; i < n; i++ {
		r.tick++
		r.runOneTick()
	}
}

// RunUntil advances up to maxTicks, stopping early if predicate returns
// true. Returns the tick at which it was satisfied, or -1.
func (r *TestRig) RunUntil(predicate func(*TestRig) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		r.tick++
		r.runOneTick()
		if predicate(r) {
			return r.tick
		}
	}
	return -1
}

// runOneTick moves the world, updates all three views, and diffs state into
// the trace log.
func (r *TestRig) runOneTick() {
	dt := r.tickDur.Seconds()

	for _, s := range r.scripted {
		moveToward(&s.ent.X, &s.ent.Z, s.tx, s.tz, s.speed*dt)
	}
	if r.viewerSpeed > 0 {
		moveToward(&r.Viewer.X, &r.Viewer.Z, r.viewerTX, r.viewerTZ, r.viewerSpeed*dt)
	}
	if r.viewerSpin != 0 {
		r.Viewer.Heading = normalizeAngle(r.Viewer.Heading + r.viewerSpin*dt)
	}

	entities := r.Entities()
	r.Compass.Update(r.Viewer, entities, r.tickDur)
	r.Tactical.Update(r.Viewer, entities, r.buildings, r.tickDur)
	r.Map.Update(r.Viewer, entities, r.tickDur)

	// --- Post-tick logging ---

	pulses := map[int]bool{}
	for _, id := range r.Tactical.Detections() {
		pulses[id] = true
		if !r.prevPulses[id] {
			r.Log.Add(r.tick, "tactical", "pulse", "new",
				fmt.Sprintf("id=%d angle=%.2f", id, r.Tactical.SweepAngle()), float64(id))
		}
	}
	for id := range r.prevPulses {
		if !pulses[id] {
			r.Log.Add(r.tick, "tactical", "pulse", "expired",
				fmt.Sprintf("id=%d", id), float64(id))
		}
	}
	r.prevPulses = pulses

	if n := r.Compass.Dropped(); n > 0 {
		r.Log.AddVerbose(r.tick, "compass", "pool", "dropped", fmt.Sprintf("%d", n), float64(n))
	}
	if n := r.Tactical.Dropped(); n > 0 {
		r.Log.AddVerbose(r.tick, "tactical", "pool", "dropped", fmt.Sprintf("%d", n), float64(n))
	}
	if n := r.Map.Dropped(); n > 0 {
		r.Log.AddVerbose(r.tick, "map", "pool", "dropped", fmt.Sprintf("%d", n), float64(n))
	}

	if n := r.Map.ExploredCount(); n > r.prevChunks {
		r.Log.Add(r.tick, "map", "chunk", "visited",
			fmt.Sprintf("explored=%d", n), float64(n))
		r.prevChunks = n
	}

	r.Log.AddVerbose(r.tick, "compass", "placement", "count",
		fmt.Sprintf("%d", len(r.Compass.Placements())), float64(len(r.Compass.Placements())))
	r.Log.AddVerbose(r.tick, "tactical", "placement", "count",
		fmt.Sprintf("%d", len(r.Tactical.Placements())), float64(len(r.Tactical.Placements())))
	r.Log.AddVerbose(r.tick, "tactical", "placement", "sweep",
		fmt.Sprintf("%.3f", r.Tactical.SweepAngle()), r.Tactical.SweepAngle())
}

// moveToward steps (x, z) toward (tx, tz) by at most step, snapping on
// arrival.
func moveToward(x, z *float64, tx, tz, step float64) {
	dx := tx - *x
	dz := tz - *z
	dist := math.Sqrt(dx*dx + dz*dz)
	if dist <= step || dist == 0 {
		*x, *z = tx, tz
		return
	}
	*x += dx / dist * step
	*z += dz / dist * step
}

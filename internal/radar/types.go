package radar

import "time"

// Category classifies a tracked entity. It drives marker styling in the
// rendering layer and nothing else inside this package.
type Category int

const (
	CategoryEnemy Category = iota
	CategoryBuilding
	CategoryPOI
	CategoryPlayer
)

// String returns a short display name for a category.
func (c Category) String() string {
	switch c {
	case CategoryEnemy:
		return "enemy"
	case CategoryBuilding:
		return "building"
	case CategoryPOI:
		return "poi"
	case CategoryPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// ViewerMode distinguishes normal driving from aiming. The radar core carries
// it through to placements untouched; consumers may restyle on it.
type ViewerMode int

const (
	ModeNormal ViewerMode = iota
	ModeAiming
)

// Viewer is the pose all projections are anchored to: the tank's position on
// the ground plane and the heading the display rotates with (typically the
// turret direction). The game mutates it once per frame; this package never
// retains it across calls.
type Viewer struct {
	X, Z    float64
	Heading float64 // radians
	Mode    ViewerMode
}

// TrackedEntity is one world entity as supplied fresh on every update call.
// The radar holds no authoritative entity store — only derived per-id state
// (pool handles, detection fades) survives between calls.
//
// The zero value of Dead means the entity is alive and shown; callers that
// filter corpses out before the call never need to touch it.
type TrackedEntity struct {
	ID       int
	X, Z     float64
	Category Category
	Dead     bool

	// Facing is an optional secondary world-space angle (e.g. weapon
	// direction) rendered as a direction tick on the marker. Valid only when
	// HasFacing is set.
	Facing    float64
	HasFacing bool
}

// Building is a piece of static geometry shown on the tactical radar.
// Buildings carry no id: they are matched to marker slots positionally.
type Building struct {
	X, Z float64
}

// ViewConfig fixes one view's projection and pooling policy at construction.
type ViewConfig struct {
	Range         float64 // world units represented by DisplayRadius
	DisplayRadius float64 // output-space radius
	FOVHalfAngle  float64 // radians; 0 means full 360°
	Unbounded     bool    // skip range culling (full map); Range still sets the scale
	MaxVisible    int     // cap on simultaneously rendered entities
	PoolCapacity  int

	// Throttle is the minimum interval between geometry recomputations.
	// Zero selects DefaultThrottle.
	Throttle time.Duration
}

// StyleHint is the style state attached to every placement. Pulse runs from 1
// (just crossed by the sweep) down to 0 (baseline); views without a sweep
// always emit 0.
type StyleHint struct {
	Pulse float64
}

// Marker is the reusable render handle managed by a view's pool. A marker is
// owned by at most one visible entity at a time; release clears it completely
// so no styling or position leaks into the next occupant.
type Marker struct {
	EntityID      int
	Category      Category
	X, Y          float64
	ClampedToEdge bool
	Facing        float64
	HasFacing     bool
	Style         StyleHint
	Visible       bool
}

// hide blanks the marker before it returns to the free list.
func (m *Marker) hide() {
	*m = Marker{}
}

// Placement is the read-only snapshot record emitted to the rendering layer.
// Facing, when present, has already been rotated into the viewer frame: 0
// points up the display, matching the placement convention.
type Placement struct {
	ID            int
	Category      Category
	X, Y          float64
	ClampedToEdge bool
	Facing        float64
	HasFacing     bool
	Style         StyleHint
}

// placementOf copies a visible marker into a snapshot record.
func placementOf(m *Marker) Placement {
	return Placement{
		ID:            m.EntityID,
		Category:      m.Category,
		X:             m.X,
		Y:             m.Y,
		ClampedToEdge: m.ClampedToEdge,
		Facing:        m.Facing,
		HasFacing:     m.HasFacing,
		Style:         m.Style,
	}
}

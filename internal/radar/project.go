package radar

import "math"

// Projection is the result of mapping one world position into a view's
// display space. X/Y are display units relative to the view centre, with
// "ahead of the viewer" rendering upward (negative Y).
type Projection struct {
	X, Y          float64
	ClampedToEdge bool
}

// Project maps a world-space position into display space for the given viewer
// pose and view configuration. It returns ok=false when the position is
// culled: out of range (unless cfg.Unbounded), outside the FOV cone, or not
// finite. The function is pure — no state, no side effects.
//
// Convention, applied uniformly across every view: world +Z relative to the
// viewer heading is "ahead", display Y is inverted so ahead renders up, and
// the angular position of a placement is atan2(x, -y) with dead-ahead at 0.
func Project(viewer Viewer, ex, ez float64, cfg ViewConfig) (Projection, bool) {
	if !isFinite(ex) || !isFinite(ez) {
		return Projection{}, false
	}

	dx := ex - viewer.X
	dz := ez - viewer.Z

	dist := math.Sqrt(dx*dx + dz*dz)
	if !cfg.Unbounded && dist > cfg.Range {
		return Projection{}, false
	}

	// Rotate the offset into viewer-relative space.
	sin, cos := math.Sincos(viewer.Heading)
	rx := dx*cos - dz*sin
	rz := dx*sin + dz*cos

	if cfg.FOVHalfAngle > 0 {
		angle := math.Atan2(rx, rz) // 0 = dead ahead
		if math.Abs(angle) > cfg.FOVHalfAngle {
			return Projection{}, false
		}
	}

	scale := cfg.DisplayRadius / cfg.Range
	p := Projection{X: rx * scale, Y: -rz * scale}

	// Out-of-radius positions are pulled back to the rim so they still give a
	// directional hint, flagged for the renderer.
	if mag := math.Sqrt(p.X*p.X + p.Y*p.Y); mag > cfg.DisplayRadius {
		shrink := cfg.DisplayRadius / mag
		p.X *= shrink
		p.Y *= shrink
		p.ClampedToEdge = true
	}
	return p, true
}

// displayAngle returns the angular position of a display-space placement,
// 0 = straight up (dead ahead), increasing clockwise, in [-π, π].
func displayAngle(x, y float64) float64 {
	return math.Atan2(x, -y)
}

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// angularDistance returns the shortest-arc distance between two angles.
// Wrap-aware: 0.01 and 2π-0.01 are 0.02 apart, not 2π-0.02.
func angularDistance(a, b float64) float64 {
	return math.Abs(normalizeAngle(a - b))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

package radar

import (
	"math"
	"testing"
)

func tacticalCfg() ViewConfig {
	return ViewConfig{Range: 250, DisplayRadius: 60}
}

func TestProject_Deterministic(t *testing.T) {
	v := Viewer{X: 3, Z: -7, Heading: 0.37}
	cfg := tacticalCfg()
	a, okA := Project(v, 41, 100, cfg)
	b, okB := Project(v, 41, 100, cfg)
	if okA != okB || a != b {
		t.Fatalf("identical inputs produced different outputs: %+v/%v vs %+v/%v", a, okA, b, okB)
	}
}

func TestProject_Ahead_MapsUp(t *testing.T) {
	// Viewer at origin facing +Z; enemy 50 ahead on a 250-range, 60-radius
	// disc lands at (0, -12): ahead renders upward.
	p, ok := Project(Viewer{}, 0, 50, tacticalCfg())
	if !ok {
		t.Fatal("entity 50 ahead within range 250 must not be culled")
	}
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y+12) > 1e-9 {
		t.Fatalf("expected (0, -12), got (%.6f, %.6f)", p.X, p.Y)
	}
	if p.ClampedToEdge {
		t.Fatal("in-range placement must not be flagged as clamped")
	}
}

func TestProject_RangeCull(t *testing.T) {
	if _, ok := Project(Viewer{}, 0, 251, tacticalCfg()); ok {
		t.Fatal("entity beyond range should be culled")
	}
	if _, ok := Project(Viewer{}, 0, 249, tacticalCfg()); !ok {
		t.Fatal("entity within range should not be culled")
	}
}

func TestProject_HeadingRotation(t *testing.T) {
	// Heading π/2 turns world east into "ahead".
	p, ok := Project(Viewer{Heading: math.Pi / 2}, 50, 0, tacticalCfg())
	if !ok {
		t.Fatal("rotated in-range entity culled")
	}
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y+12) > 1e-9 {
		t.Fatalf("expected (0, -12) after rotation, got (%.6f, %.6f)", p.X, p.Y)
	}
}

func TestProject_FOVCull(t *testing.T) {
	cfg := ViewConfig{Range: 100, DisplayRadius: 100, FOVHalfAngle: math.Pi / 6}
	at := func(angle float64) (Projection, bool) {
		return Project(Viewer{}, 50*math.Sin(angle), 50*math.Cos(angle), cfg)
	}
	if _, ok := at(math.Pi / 4); ok {
		t.Fatal("entity at relative angle π/4 should be outside a π/6 half-cone")
	}
	if _, ok := at(math.Pi / 8); !ok {
		t.Fatal("entity at relative angle π/8 should be inside a π/6 half-cone")
	}
	if _, ok := at(-math.Pi / 8); !ok {
		t.Fatal("cone must be symmetric about dead ahead")
	}
}

func TestProject_Unbounded_ClampsToRim(t *testing.T) {
	cfg := ViewConfig{Range: 100, DisplayRadius: 60, Unbounded: true}
	p, ok := Project(Viewer{}, 0, 500, cfg)
	if !ok {
		t.Fatal("unbounded view must not range-cull")
	}
	if !p.ClampedToEdge {
		t.Fatal("off-radius placement must be flagged clamped")
	}
	mag := math.Sqrt(p.X*p.X + p.Y*p.Y)
	if mag > cfg.DisplayRadius+1e-9 {
		t.Fatalf("clamped magnitude %.6f exceeds display radius %.1f", mag, cfg.DisplayRadius)
	}
	// Direction preserved: still dead ahead.
	if math.Abs(p.X) > 1e-9 || p.Y >= 0 {
		t.Fatalf("clamp changed direction: (%.6f, %.6f)", p.X, p.Y)
	}
}

func TestProject_ClampInvariant(t *testing.T) {
	cfg := ViewConfig{Range: 120, DisplayRadius: 45, Unbounded: true}
	v := Viewer{X: 10, Z: -4, Heading: 1.1}
	for _, pos := range [][2]float64{{0, 0}, {300, 300}, {-900, 40}, {10, -4.001}, {0, 5000}} {
		p, ok := Project(v, pos[0], pos[1], cfg)
		if !ok {
			t.Fatalf("unbounded projection culled finite position %v", pos)
		}
		if mag := math.Sqrt(p.X*p.X + p.Y*p.Y); mag > cfg.DisplayRadius+1e-9 {
			t.Fatalf("placement for %v escapes the disc: mag=%.6f", pos, mag)
		}
	}
}

func TestProject_NonFiniteCulled(t *testing.T) {
	cfg := tacticalCfg()
	if _, ok := Project(Viewer{}, math.NaN(), 10, cfg); ok {
		t.Fatal("NaN X must be treated as culled")
	}
	if _, ok := Project(Viewer{}, 10, math.Inf(1), cfg); ok {
		t.Fatal("Inf Z must be treated as culled")
	}
	cfg.Unbounded = true
	if _, ok := Project(Viewer{}, math.NaN(), math.NaN(), cfg); ok {
		t.Fatal("non-finite positions must be culled even on unbounded views")
	}
}

func TestNormalizeAngle(t *testing.T) {
	if a := normalizeAngle(3 * math.Pi); math.Abs(math.Abs(a)-math.Pi) > 1e-9 {
		t.Fatalf("3π should normalize to ±π, got %.4f", a)
	}
	if normalizeAngle(0) != 0 {
		t.Fatal("0 should normalize to 0")
	}
}

func TestAngularDistance_WrapAware(t *testing.T) {
	d := angularDistance(2*math.Pi-0.01, 0.01)
	if math.Abs(d-0.02) > 1e-9 {
		t.Fatalf("expected shortest-arc 0.02 across the wrap, got %.6f", d)
	}
}

func TestDisplayAngle_AheadIsZero(t *testing.T) {
	if a := displayAngle(0, -12); math.Abs(a) > 1e-9 {
		t.Fatalf("placement straight up should be at angle 0, got %.6f", a)
	}
	if a := displayAngle(12, 0); math.Abs(a-math.Pi/2) > 1e-9 {
		t.Fatalf("placement right should be at angle π/2, got %.6f", a)
	}
}

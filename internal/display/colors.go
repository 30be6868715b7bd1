// Package display draws the three radar surfaces with Ebitengine. It is the
// rendering-layer collaborator of the radar core: it consumes placement
// snapshots and never retains anything across frames.
package display

import (
	"image/color"

	"github.com/dzoblin/tx-radar/internal/radar"
)

// categoryColors maps each entity category to its baseline marker colour.
var categoryColors = map[radar.Category]color.RGBA{
	radar.CategoryEnemy:    {R: 235, G: 64, B: 52, A: 255},  // red
	radar.CategoryBuilding: {R: 110, G: 110, B: 110, A: 255}, // grey
	radar.CategoryPOI:      {R: 240, G: 200, B: 40, A: 255}, // amber
	radar.CategoryPlayer:   {R: 60, G: 170, B: 255, A: 255}, // sky blue
}

// pulseColor is the "just scanned" highlight the detection fade decays from.
var pulseColor = color.RGBA{R: 140, G: 255, B: 140, A: 255}

// markerColor resolves a placement's on-screen colour: the baseline category
// colour blended toward the pulse highlight by the detection fade.
func markerColor(p radar.Placement) color.RGBA {
	base := categoryColors[p.Category]
	if p.Style.Pulse <= 0 {
		return base
	}
	return lerpColor(base, pulseColor, p.Style.Pulse)
}

// lerpColor blends a toward b by t in [0, 1].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// fade returns c with its alpha scaled by t in [0, 1].
func fade(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	c.A = uint8(float64(c.A) * t)
	return c
}

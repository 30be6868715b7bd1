package display

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/dzoblin/tx-radar/internal/radar"
)

var (
	mapFogColor    = color.RGBA{R: 4, G: 4, B: 6, A: 235}
	mapRevealColor = color.RGBA{R: 40, G: 56, B: 40, A: 255}
	mapViewerColor = color.RGBA{R: 240, G: 240, B: 255, A: 255}
	mapBorderColor = color.RGBA{R: 80, G: 100, B: 80, A: 200}
)

// MapView draws a FullMap as a square minimap centred on the viewer: explored
// chunks show terrain, everything else sits under fog, markers render on top.
// The panel is north-up; callers pass the viewer pose they fed the view.
type MapView struct {
	View       *radar.FullMap
	X, Y, Size float32
}

// NewMapView places a map panel with its top-left at (x, y).
func NewMapView(view *radar.FullMap, x, y, size float32) *MapView {
	return &MapView{View: view, X: x, Y: y, Size: size}
}

// Draw renders the panel. viewer must match the pose passed to the view's
// last update so fog chunks and markers line up.
func (v *MapView) Draw(screen *ebiten.Image, viewer radar.Viewer) {
	vector.DrawFilledRect(screen, v.X, v.Y, v.Size, v.Size, mapFogColor, false)

	cfg := v.View.Config()
	cx := v.X + v.Size/2
	cy := v.Y + v.Size/2
	k := (v.Size / 2) / float32(cfg.DisplayRadius)

	v.drawChunks(screen, viewer, cx, cy, k)

	for _, p := range v.View.Placements() {
		x := cx + float32(p.X)*k
		y := cy + float32(p.Y)*k
		col := markerColor(p)
		if p.ClampedToEdge {
			vector.StrokeCircle(screen, x, y, 2.5, 1, col, true)
			continue
		}
		vector.DrawFilledCircle(screen, x, y, 2, col, true)
	}

	// Viewer arrow at the centre, pointing along the heading.
	hx := float32(math.Sin(viewer.Heading))
	hy := -float32(math.Cos(viewer.Heading))
	vector.StrokeLine(screen, cx, cy, cx+hx*7, cy+hy*7, 2, mapViewerColor, true)
	vector.DrawFilledCircle(screen, cx, cy, 2.5, mapViewerColor, true)

	vector.StrokeRect(screen, v.X, v.Y, v.Size, v.Size, 1, mapBorderColor, false)
	text.Draw(screen, "MAP", basicfont.Face7x13, int(v.X), int(v.Y)-4, labelColor)
}

// drawChunks reveals terrain for explored chunks inside the panel window.
func (v *MapView) drawChunks(screen *ebiten.Image, viewer radar.Viewer, cx, cy, k float32) {
	cfg := v.View.Config()
	chunk := v.View.ChunkSize()
	// Display units per world unit, then chunk edge length in pixels.
	worldScale := cfg.DisplayRadius / cfg.Range
	px := float32(chunk*worldScale) * k

	// Window of chunks that can intersect the panel.
	span := int(math.Ceil(cfg.Range/chunk)) + 1
	ccx := int(math.Floor(viewer.X / chunk))
	ccz := int(math.Floor(viewer.Z / chunk))

	for dz := -span; dz <= span; dz++ {
		for dx := -span; dx <= span; dx++ {
			c := radar.Chunk{X: ccx + dx, Z: ccz + dz}
			if !v.View.Seen(c) {
				continue
			}
			// Chunk centre in world space → panel position.
			wx := (float64(c.X) + 0.5) * chunk
			wz := (float64(c.Z) + 0.5) * chunk
			rx := (wx - viewer.X) * worldScale
			rz := (wz - viewer.Z) * worldScale
			x := cx + float32(rx)*k
			y := cy - float32(rz)*k
			if x+px/2 < v.X || x-px/2 > v.X+v.Size || y+px/2 < v.Y || y-px/2 > v.Y+v.Size {
				continue
			}
			vector.DrawFilledRect(screen, x-px/2, y-px/2, px, px, mapRevealColor, false)
		}
	}
}

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

// sweepTrailSteps is how many fading segments trail the sweep line.
const sweepTrailSteps = 24

var (
	scopeDiscColor = color.RGBA{R: 8, G: 24, B: 12, A: 230}
	scopeRingColor = color.RGBA{R: 60, G: 130, B: 80, A: 160}
	scopeLineColor = color.RGBA{R: 120, G: 255, B: 140, A: 220}
	labelColor     = color.RGBA{R: 180, G: 220, B: 190, A: 255}
)

// Scope draws a TacticalRadar as a circular plan-position display: disc,
// range rings, rotating sweep with a trailing glow, building blocks and
// entity blips. Screen-space centre and pixel radius are fixed at
// construction.
type Scope struct {
	View     *radar.TacticalRadar
	CX, CY   float32
	RadiusPx float32
}

// NewScope places a scope for the given view.
func NewScope(view *radar.TacticalRadar, cx, cy, radiusPx float32) *Scope {
	return &Scope{View: view, CX: cx, CY: cy, RadiusPx: radiusPx}
}

// scale converts display units (view DisplayRadius) to pixels.
func (s *Scope) scale() float32 {
	return s.RadiusPx / float32(s.View.Config().DisplayRadius)
}

// Draw renders the scope onto screen.
func (s *Scope) Draw(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, s.CX, s.CY, s.RadiusPx, scopeDiscColor, true)
	for _, f := range []float32{1.0 / 3, 2.0 / 3, 1} {
		vector.StrokeCircle(screen, s.CX, s.CY, s.RadiusPx*f, 1, scopeRingColor, true)
	}
	// Cross hairs.
	vector.StrokeLine(screen, s.CX-s.RadiusPx, s.CY, s.CX+s.RadiusPx, s.CY, 1, fade(scopeRingColor, 0.5), false)
	vector.StrokeLine(screen, s.CX, s.CY-s.RadiusPx, s.CX, s.CY+s.RadiusPx, 1, fade(scopeRingColor, 0.5), false)

	s.drawSweep(screen)

	k := s.scale()
	for _, p := range s.View.BuildingPlacements() {
		x := s.CX + float32(p.X)*k
		y := s.CY + float32(p.Y)*k
		vector.DrawFilledRect(screen, x-2, y-2, 4, 4, markerColor(p), false)
	}
	for _, p := range s.View.Placements() {
		s.drawBlip(screen, p)
	}

	text.Draw(screen, "TAC", basicfont.Face7x13, int(s.CX-s.RadiusPx), int(s.CY-s.RadiusPx)-4, labelColor)
}

// drawSweep renders the sweep line and its trailing glow. The glow intensity
// falls off linearly behind the line, the same falloff the detection fade
// uses on blips.
func (s *Scope) drawSweep(screen *ebiten.Image) {
	head := s.View.SweepAngle()
	step := 2 * math.Pi / 180 // 2° per trail segment
	for i := sweepTrailSteps; i >= 0; i-- {
		a := head - float64(i)*step
		strength := 1 - float64(i)/float64(sweepTrailSteps+1)
		col := fade(scopeLineColor, strength*strength)
		// Sweep angle 0 points up; +angle turns clockwise.
		ex := s.CX + s.RadiusPx*float32(math.Sin(a))
		ey := s.CY - s.RadiusPx*float32(math.Cos(a))
		w := float32(1)
		if i == 0 {
			w = 2
		}
		vector.StrokeLine(screen, s.CX, s.CY, ex, ey, w, col, true)
	}
}

// drawBlip renders one entity placement: a filled dot, a hollow ring when
// pinned to the rim, and a direction tick when the entity has a facing.
func (s *Scope) drawBlip(screen *ebiten.Image, p radar.Placement) {
	k := s.scale()
	x := s.CX + float32(p.X)*k
	y := s.CY + float32(p.Y)*k
	col := markerColor(p)

	if p.ClampedToEdge {
		vector.StrokeCircle(screen, x, y, 3, 1.5, col, true)
		return
	}
	r := float32(2.5 + 1.5*p.Style.Pulse) // swell while the pulse is fresh
	vector.DrawFilledCircle(screen, x, y, r, col, true)

	if p.HasFacing {
		tx := x + 6*float32(math.Sin(p.Facing))
		ty := y - 6*float32(math.Cos(p.Facing))
		vector.StrokeLine(screen, x, y, tx, ty, 1, col, true)
	}
}

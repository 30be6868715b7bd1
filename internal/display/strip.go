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
	stripBgColor   = color.RGBA{R: 10, G: 10, B: 14, A: 210}
	stripEdgeColor = color.RGBA{R: 90, G: 90, B: 110, A: 200}
	stripZeroColor = color.RGBA{R: 200, G: 200, B: 220, A: 160}
)

// Strip draws a CompassStrip as a horizontal threat bar: the forward cone is
// unrolled left-to-right, dead ahead in the middle. Marker height tracks
// proximity — closer threats draw taller.
type Strip struct {
	View       *radar.CompassStrip
	X, Y, W, H float32
}

// NewStrip places a compass bar in the given screen rectangle.
func NewStrip(view *radar.CompassStrip, x, y, w, h float32) *Strip {
	return &Strip{View: view, X: x, Y: y, W: w, H: h}
}

// Draw renders the strip onto screen.
func (s *Strip) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, s.X, s.Y, s.W, s.H, stripBgColor, false)
	vector.StrokeRect(screen, s.X, s.Y, s.W, s.H, 1, stripEdgeColor, false)
	// Centre tick = dead ahead.
	vector.StrokeLine(screen, s.X+s.W/2, s.Y, s.X+s.W/2, s.Y+4, 1, stripZeroColor, false)

	cfg := s.View.Config()
	for _, p := range s.View.Placements() {
		// Angular position across the cone → horizontal position on the bar.
		angle := math.Atan2(p.X, -p.Y)
		frac := float32(angle/cfg.FOVHalfAngle)/2 + 0.5
		x := s.X + frac*s.W

		// Proximity → marker height.
		dist := math.Sqrt(p.X*p.X+p.Y*p.Y) / cfg.DisplayRadius
		h := s.H * float32(1-0.7*dist)

		col := markerColor(p)
		vector.DrawFilledRect(screen, x-1.5, s.Y+s.H-h, 3, h, col, false)
	}

	text.Draw(screen, "THREATS", basicfont.Face7x13, int(s.X), int(s.Y)-4, labelColor)
}

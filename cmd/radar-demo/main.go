// Command radar-demo runs an interactive battlefield with all three radar
// surfaces live: compass strip, tactical scope and fogged minimap. Drive the
// tank with WASD or the arrow keys, hold Shift to aim, press C to copy a
// debug report to the clipboard.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/dzoblin/tx-radar/internal/config"
	"github.com/dzoblin/tx-radar/internal/display"
	"github.com/dzoblin/tx-radar/internal/radar"
)

const (
	screenW = 1280
	screenH = 720

	// World panel fills the left side; the battlefield is a square of
	// worldSize units mapped onto worldPanelPx pixels.
	worldPanelPx = 720
	worldSize    = 2400.0

	tankSpeed = 120.0 // world units per second
	tankTurn  = 1.8   // radians per second
)

// wanderer is a hostile tank that drives between random waypoints.
type wanderer struct {
	ent    radar.TrackedEntity
	tx, tz float64
	speed  float64
}

type demo struct {
	settings config.Settings

	viewer   radar.Viewer
	enemies  []*wanderer
	allies   []radar.TrackedEntity
	pois     []radar.TrackedEntity
	walls    []radar.Building
	rng      *rand.Rand

	compass  *radar.CompassStrip
	tactical *radar.TacticalRadar
	fullMap  *radar.FullMap

	strip *display.Strip
	scope *display.Scope
	mini  *display.MapView

	lastUpdate time.Time
	prevKeys   map[ebiten.Key]bool
	copiedAt   time.Time
	copyErr    error
}

func newDemo(settings config.Settings, seed int64) *demo {
	d := &demo{
		settings: settings,
		viewer:   radar.Viewer{X: worldSize / 2, Z: worldSize / 2},
		rng:      rand.New(rand.NewSource(seed)), // #nosec G404 -- scenery only
		prevKeys: map[ebiten.Key]bool{},
	}

	d.compass = radar.NewCompassStrip(settings.CompassConfig())
	d.tactical = radar.NewTacticalRadar(settings.TacticalConfig())
	d.fullMap = radar.NewFullMap(settings.MapConfig(), settings.Map.ChunkSize)
	settings.ApplySweep(d.tactical.Sweep())

	d.strip = display.NewStrip(d.compass, 760, 36, 480, 46)
	d.scope = display.NewScope(d.tactical, 1000, 280, 150)
	d.mini = display.NewMapView(d.fullMap, 860, 460, 280)

	d.spawnWorld()
	return d
}

// spawnWorld scatters enemies, allies, points of interest and wall blocks
// around the battlefield.
func (d *demo) spawnWorld() {
	id := 1
	for i := 0; i < 10; i++ {
		w := &wanderer{
			ent: radar.TrackedEntity{
				ID:        id,
				X:         d.rng.Float64() * worldSize,
				Z:         d.rng.Float64() * worldSize,
				Category:  radar.CategoryEnemy,
				HasFacing: true,
			},
			speed: 40 + d.rng.Float64()*50,
		}
		w.pickTarget(d.rng)
		d.enemies = append(d.enemies, w)
		id++
	}
	for i := 0; i < 3; i++ {
		d.allies = append(d.allies, radar.TrackedEntity{
			ID:       id,
			X:        d.viewer.X + d.rng.Float64()*400 - 200,
			Z:        d.viewer.Z + d.rng.Float64()*400 - 200,
			Category: radar.CategoryPlayer,
		})
		id++
	}
	for i := 0; i < 4; i++ {
		d.pois = append(d.pois, radar.TrackedEntity{
			ID:       id,
			X:        d.rng.Float64() * worldSize,
			Z:        d.rng.Float64() * worldSize,
			Category: radar.CategoryPOI,
		})
		id++
	}
	for i := 0; i < 40; i++ {
		d.walls = append(d.walls, radar.Building{
			X: d.rng.Float64() * worldSize,
			Z: d.rng.Float64() * worldSize,
		})
	}
}

func (w *wanderer) pickTarget(rng *rand.Rand) {
	w.tx = rng.Float64() * worldSize
	w.tz = rng.Float64() * worldSize
}

// entities assembles this frame's tracked-entity list the way the game state
// would hand it over.
func (d *demo) entities() []radar.TrackedEntity {
	out := make([]radar.TrackedEntity, 0, len(d.enemies)+len(d.allies)+len(d.pois))
	for _, w := range d.enemies {
		out = append(out, w.ent)
	}
	out = append(out, d.allies...)
	out = append(out, d.pois...)
	return out
}

func (d *demo) Update() error {
	now := time.Now()
	var dt time.Duration
	if !d.lastUpdate.IsZero() {
		dt = now.Sub(d.lastUpdate)
	}
	d.lastUpdate = now
	sec := dt.Seconds()

	d.handleInput(sec)
	d.moveEnemies(sec)

	entities := d.entities()
	d.compass.Update(d.viewer, entities, dt)
	d.tactical.Update(d.viewer, entities, d.walls, dt)
	d.fullMap.Update(d.viewer, entities, dt)
	return nil
}

// handleInput applies tank controls and edge-triggered keys.
func (d *demo) handleInput(sec float64) {
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		d.viewer.Heading -= tankTurn * sec
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		d.viewer.Heading += tankTurn * sec
	}
	// Forward is the heading direction; +heading turns clockwise on screen.
	fx := math.Sin(d.viewer.Heading)
	fz := math.Cos(d.viewer.Heading)
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		d.viewer.X += fx * tankSpeed * sec
		d.viewer.Z += fz * tankSpeed * sec
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		d.viewer.X -= fx * tankSpeed * sec
		d.viewer.Z -= fz * tankSpeed * sec
	}
	d.viewer.X = clamp(d.viewer.X, 0, worldSize)
	d.viewer.Z = clamp(d.viewer.Z, 0, worldSize)

	d.viewer.Mode = radar.ModeNormal
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		d.viewer.Mode = radar.ModeAiming
	}

	currentKeys := map[ebiten.Key]bool{}
	currentKeys[ebiten.KeyC] = ebiten.IsKeyPressed(ebiten.KeyC)
	if currentKeys[ebiten.KeyC] && !d.prevKeys[ebiten.KeyC] {
		d.copyErr = clipboard.WriteAll(d.debugReport())
		d.copiedAt = time.Now()
	}
	d.prevKeys = currentKeys
}

// moveEnemies advances every wanderer toward its waypoint, re-rolling the
// waypoint on arrival.
func (d *demo) moveEnemies(sec float64) {
	for _, w := range d.enemies {
		dx := w.tx - w.ent.X
		dz := w.tz - w.ent.Z
		dist := math.Sqrt(dx*dx + dz*dz)
		step := w.speed * sec
		if dist <= step || dist == 0 {
			w.ent.X, w.ent.Z = w.tx, w.tz
			w.pickTarget(d.rng)
			continue
		}
		w.ent.X += dx / dist * step
		w.ent.Z += dz / dist * step
		w.ent.Facing = math.Atan2(dx, dz)
	}
}

func (d *demo) Draw(screen *ebiten.Image) {
	d.drawWorld(screen)

	d.strip.Draw(screen)
	d.scope.Draw(screen)
	d.mini.Draw(screen, d.viewer)

	d.drawStatus(screen)
}

// drawWorld renders the raw battlefield on the left panel: ground, walls,
// tanks and the player. This is the unfiltered truth the radar surfaces are
// abstracting.
func (d *demo) drawWorld(screen *ebiten.Image) {
	k := float32(worldPanelPx / worldSize)
	sx := func(x float64) float32 { return float32(x) * k }
	sy := func(z float64) float32 { return float32(worldPanelPx) - float32(z)*k }

	vector.DrawFilledRect(screen, 0, 0, worldPanelPx, worldPanelPx, groundColor, false)
	for _, b := range d.walls {
		vector.DrawFilledRect(screen, sx(b.X)-3, sy(b.Z)-3, 6, 6, wallColor, false)
	}
	for _, w := range d.enemies {
		vector.DrawFilledCircle(screen, sx(w.ent.X), sy(w.ent.Z), 4, enemyColor, true)
	}
	for _, a := range d.allies {
		vector.DrawFilledCircle(screen, sx(a.X), sy(a.Z), 4, allyColor, true)
	}
	for _, p := range d.pois {
		vector.StrokeCircle(screen, sx(p.X), sy(p.Z), 5, 1.5, poiColor, true)
	}

	// Player tank with a heading line.
	px, py := sx(d.viewer.X), sy(d.viewer.Z)
	hx := float32(math.Sin(d.viewer.Heading))
	hy := -float32(math.Cos(d.viewer.Heading))
	vector.DrawFilledCircle(screen, px, py, 6, playerColor, true)
	vector.StrokeLine(screen, px, py, px+hx*14, py+hy*14, 2, playerColor, true)
}

func (d *demo) drawStatus(screen *ebiten.Image) {
	mode := "NORMAL"
	if d.viewer.Mode == radar.ModeAiming {
		mode = "AIMING"
	}
	status := fmt.Sprintf(
		"pos=(%.0f, %.0f) hdg=%.2f mode=%s | contacts=%d detections=%d explored=%d",
		d.viewer.X, d.viewer.Z, d.viewer.Heading, mode,
		len(d.tactical.Placements()), len(d.tactical.Detections()),
		d.fullMap.ExploredCount())
	ebitenutil.DebugPrintAt(screen, status, 8, screenH-34)
	ebitenutil.DebugPrintAt(screen, "WASD/arrows drive  Shift aim  C copy report", 8, screenH-18)

	if !d.copiedAt.IsZero() && time.Since(d.copiedAt) < 2*time.Second {
		msg := "report copied to clipboard"
		if d.copyErr != nil {
			msg = "clipboard error: " + d.copyErr.Error()
		}
		ebitenutil.DebugPrintAt(screen, msg, 760, screenH-18)
	}
}

// debugReport assembles a plain-text snapshot of everything the surfaces are
// currently showing.
func (d *demo) debugReport() string {
	mode := "normal"
	if d.viewer.Mode == radar.ModeAiming {
		mode = "aiming"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "--- tx-radar debug report ---\n")
	fmt.Fprintf(&b, "viewer: pos=(%.1f, %.1f) heading=%.3f mode=%s\n",
		d.viewer.X, d.viewer.Z, d.viewer.Heading, mode)
	fmt.Fprintf(&b, "world: enemies=%d allies=%d pois=%d walls=%d\n\n",
		len(d.enemies), len(d.allies), len(d.pois), len(d.walls))

	writeView := func(name string, placements []radar.Placement, dropped int) {
		fmt.Fprintf(&b, "== %s == placements=%d dropped_total=%d\n", name, len(placements), dropped)
		for _, p := range placements {
			fmt.Fprintf(&b, "  id=%d cat=%s pos=(%.1f, %.1f) clamped=%t pulse=%.2f\n",
				p.ID, p.Category, p.X, p.Y, p.ClampedToEdge, p.Style.Pulse)
		}
		b.WriteByte('\n')
	}
	writeView("compass", d.compass.Placements(), d.compass.Dropped())
	writeView("tactical", d.tactical.Placements(), d.tactical.Dropped())
	writeView("map", d.fullMap.Placements(), d.fullMap.Dropped())

	fmt.Fprintf(&b, "tactical sweep=%.3f detections=%v buildings=%d\n",
		d.tactical.SweepAngle(), d.tactical.Detections(), len(d.tactical.BuildingPlacements()))
	fmt.Fprintf(&b, "explored chunks=%d (size=%.0f)\n",
		d.fullMap.ExploredCount(), d.fullMap.ChunkSize())
	return b.String()
}

func (d *demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func main() {
	var configPath string
	var seed int64
	flag.StringVar(&configPath, "config", "", "optional YAML settings file")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "battlefield RNG seed")
	flag.Parse()

	settings, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("TX Radar")
	ebiten.SetWindowSize(screenW, screenH)
	if err := ebiten.RunGame(newDemo(settings, seed)); err != nil {
		log.Fatal(err)
	}
}

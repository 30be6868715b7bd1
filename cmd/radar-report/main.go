package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/dzoblin/tx-radar/internal/radar"
)

type runStats struct {
	runIndex int
	seed     int64

	firstDetectionTick int
	firstChunkTick     int

	pulsesNew     int
	pulsesExpired int
	chunksVisited int

	finalTactical int
	finalCompass  int
	finalMap      int
	exploredCount int

	avgTacticalPlaced float64
	droppedEvents     int
}

func main() {
	var runs int
	var ticks int
	var tickMs int
	var seedBase int64
	var seedStep int64
	var scenario string

	flag.IntVar(&runs, "runs", 5, "number of headless scenario runs")
	flag.IntVar(&ticks, "ticks", 1200, "ticks per run")
	flag.IntVar(&tickMs, "tick-ms", 50, "simulated milliseconds per tick")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "assault", "scenario name (assault, patrol)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if scenario != "assault" && scenario != "patrol" {
		fmt.Printf("error: unsupported scenario %q (supported: assault, patrol)\n", scenario)
		return
	}

	fmt.Printf("=== Radar Scenario Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d tick_ms=%d seed_base=%d seed_step=%d\n\n",
		scenario, runs, ticks, tickMs, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScenario(scenario, i+1, seed, ticks, tickMs)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

// runScenario builds a rig for one seeded run and extracts its statistics.
func runScenario(scenario string, runIndex int, seed int64, ticks, tickMs int) runStats {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- scenario generation only

	opts := []radar.RigOption{
		radar.WithVerboseLog(true),
		radar.WithTickDuration(time.Duration(tickMs) * time.Millisecond),
		radar.WithViewer(0, 0, 0),
	}

	switch scenario {
	case "assault":
		// Enemies close in from a ring around a slowly spinning viewer.
		opts = append(opts, radar.WithViewerSpin(0.4))
		for id := 0; id < 12; id++ {
			angle := rng.Float64() * 2 * math.Pi
			dist := 400 + rng.Float64()*600
			sx := math.Sin(angle) * dist
			sz := math.Cos(angle) * dist
			speed := 20 + rng.Float64()*30
			opts = append(opts, radar.WithMovingEnemy(id, sx, sz, 0, 0, speed))
		}
	case "patrol":
		// Stationary garrison; the viewer sweeps across the battlefield.
		opts = append(opts, radar.WithViewerDrift(3000, 800, 60))
		for id := 0; id < 16; id++ {
			opts = append(opts, radar.WithEnemy(id,
				rng.Float64()*3000, rng.Float64()*1000))
		}
	}
	for i := 0; i < 20; i++ {
		opts = append(opts, radar.WithBuilding(
			rng.Float64()*800-400, rng.Float64()*800-400))
	}

	rig := radar.NewTestRig(opts...)
	rig.RunTicks(ticks)

	stats := runStats{
		runIndex:           runIndex,
		seed:               seed,
		firstDetectionTick: rig.Log.FirstTick("tactical", "pulse", "new"),
		firstChunkTick:     rig.Log.FirstTick("map", "chunk", "visited"),
		pulsesNew:          rig.Log.Count("tactical", "pulse", "new"),
		pulsesExpired:      rig.Log.Count("tactical", "pulse", "expired"),
		chunksVisited:      rig.Log.Count("map", "chunk", "visited"),
		finalTactical:      len(rig.Tactical.Placements()),
		finalCompass:       len(rig.Compass.Placements()),
		finalMap:           len(rig.Map.Placements()),
		exploredCount:      rig.Map.ExploredCount(),
		droppedEvents:      len(rig.Log.Filter("", "pool", "dropped")),
	}

	placed := rig.Log.Filter("tactical", "placement", "count")
	if len(placed) > 0 {
		sum := 0.0
		for _, e := range placed {
			sum += e.NumVal
		}
		stats.avgTacticalPlaced = sum / float64(len(placed))
	}
	return stats
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_detection=%d first_chunk=%d\n",
		rs.firstDetectionTick, rs.firstChunkTick)
	fmt.Printf("pulse_totals: new=%d expired=%d\n", rs.pulsesNew, rs.pulsesExpired)
	fmt.Printf("placements: tactical_avg=%.1f tactical_end=%d compass_end=%d map_end=%d\n",
		rs.avgTacticalPlaced, rs.finalTactical, rs.finalCompass, rs.finalMap)
	fmt.Printf("exploration: chunks=%d visit_events=%d\n", rs.exploredCount, rs.chunksVisited)
	fmt.Printf("pool: dropped_events=%d\n\n", rs.droppedEvents)
}

func printAggregate(all []runStats) {
	totalNew, totalExpired, totalChunks, totalDropped := 0, 0, 0, 0
	detectionTicks := make([]int, 0, len(all))
	sumAvgPlaced := 0.0
	for _, rs := range all {
		totalNew += rs.pulsesNew
		totalExpired += rs.pulsesExpired
		totalChunks += rs.exploredCount
		totalDropped += rs.droppedEvents
		sumAvgPlaced += rs.avgTacticalPlaced
		if rs.firstDetectionTick >= 0 {
			detectionTicks = append(detectionTicks, rs.firstDetectionTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_per_run: pulses_new=%.1f pulses_expired=%.1f explored_chunks=%.1f dropped_events=%.1f\n",
		avg(totalNew, len(all)), avg(totalExpired, len(all)),
		avg(totalChunks, len(all)), avg(totalDropped, len(all)))
	fmt.Printf("avg_tactical_placements=%.1f\n", sumAvgPlaced/float64(len(all)))
	fmt.Printf("first_detection_avg_tick=%s\n", avgTickString(detectionTicks))
}

func avg(sum, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

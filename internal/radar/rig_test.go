package radar

import (
	"testing"
)

func TestRig_PulseLifecycle(t *testing.T) {
	// Stationary enemy inside tactical range; 50ms ticks. One sweep rotation
	// is 4s = 80 ticks, the fade is 1.5s = 30 ticks, so over 200 ticks the
	// contact is detected at least twice and each pulse expires in between.
	rig := NewTestRig(
		WithViewer(0, 0, 0),
		WithEnemy(1, 0, 100),
	)
	rig.RunTicks(200)

	news := rig.Log.Count("tactical", "pulse", "new")
	if news < 2 {
		t.Fatalf("expected at least 2 detections over 200 ticks, got %d\n%s", news, rig.Log.Format())
	}
	expired := rig.Log.Count("tactical", "pulse", "expired")
	if expired < 1 {
		t.Fatalf("expected at least 1 expired pulse, got %d", expired)
	}
	firstNew := rig.Log.FirstTick("tactical", "pulse", "new")
	firstExpired := rig.Log.FirstTick("tactical", "pulse", "expired")
	if firstExpired <= firstNew {
		t.Fatal("a pulse expired before any was created")
	}
}

func TestRig_ApproachingEnemyEntersCompass(t *testing.T) {
	rig := NewTestRig(
		WithViewer(0, 0, 0),
		WithMovingEnemy(5, 0, 500, 0, 10, 100), // closes head-on at 100 u/s
	)
	tick := rig.RunUntil(func(r *TestRig) bool {
		return len(r.Compass.Placements()) > 0
	}, 400)
	if tick < 0 {
		t.Fatal("enemy never appeared on the compass strip")
	}
	// At 100 u/s and 50ms ticks it needs (500-60)/5 = 88 ticks to reach the
	// 60-unit compass range.
	if tick < 80 {
		t.Fatalf("enemy appeared while still out of range, tick %d", tick)
	}
}

func TestRig_ExplorationGrowsWithDrift(t *testing.T) {
	rig := NewTestRig(
		WithViewer(0, 0, 0),
		WithViewerDrift(4000, 0, 200),
	)
	rig.RunTicks(100) // 200 u/s * 5s = 1000 units ≈ 8 chunks of 128
	if n := rig.Map.ExploredCount(); n < 7 {
		t.Fatalf("expected at least 7 explored chunks after a 1000-unit drive, got %d", n)
	}
	if got := rig.Log.Count("map", "chunk", "visited"); got < 7 {
		t.Fatalf("chunk visits not traced: %d", got)
	}
}

func TestRig_PoolExhaustionTraced(t *testing.T) {
	cfg := DefaultTacticalConfig()
	cfg.PoolCapacity = 2
	cfg.MaxVisible = 2
	opts := []RigOption{
		WithVerboseLog(true),
		WithTacticalConfig(cfg),
		WithViewer(0, 0, 0),
	}
	for i := 0; i < 5; i++ {
		opts = append(opts, WithEnemy(i, float64(10*i), 50))
	}
	rig := NewTestRig(opts...)
	rig.RunTicks(10)
	if rig.Log.Count("tactical", "pool", "dropped") == 0 {
		t.Fatal("over-capacity contacts should be traced as dropped")
	}
	if n := len(rig.Tactical.Placements()); n != 2 {
		t.Fatalf("expected placements capped at 2, got %d", n)
	}
}

func TestRig_KillRemovesFromViews(t *testing.T) {
	rig := NewTestRig(
		WithViewer(0, 0, 0),
		WithEnemy(1, 0, 100),
	)
	rig.RunTicks(5)
	if len(rig.Tactical.Placements()) != 1 {
		t.Fatal("live enemy missing from tactical radar")
	}
	rig.Kill(1)
	rig.RunTicks(5)
	if len(rig.Tactical.Placements()) != 0 {
		t.Fatal("dead enemy still placed")
	}
	if len(rig.Map.Placements()) != 0 {
		t.Fatal("dead enemy still on the full map")
	}
}

func TestRig_SpinSweepsCompassCone(t *testing.T) {
	// An enemy due east is outside the forward cone until the viewer spins
	// toward it.
	rig := NewTestRig(
		WithViewer(0, 0, 0),
		WithEnemy(2, 40, 0),
		WithViewerSpin(1.0), // rad/s
	)
	if len(rig.Compass.Placements()) != 0 {
		t.Fatal("enemy should start outside the cone")
	}
	tick := rig.RunUntil(func(r *TestRig) bool {
		return len(r.Compass.Placements()) > 0
	}, 100)
	if tick < 0 {
		t.Fatal("spinning viewer never brought the enemy into the cone")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dzoblin/tx-radar/internal/radar"
)

func TestDefault_MatchesRadarDefaults(t *testing.T) {
	s := Default()
	if s.Tactical.Range != 250 || s.Tactical.DisplayRadius != 60 {
		t.Fatalf("unexpected tactical defaults: %+v", s.Tactical)
	}
	if s.Compass.FOVHalfAngle <= 0 {
		t.Fatal("compass must default to a forward cone")
	}
	if s.Map.ChunkSize != 128 {
		t.Fatalf("unexpected chunk size default: %.1f", s.Map.ChunkSize)
	}
	if !s.MapConfig().Unbounded {
		t.Fatal("map config must be unbounded")
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != Default() {
		t.Fatal("empty path should return defaults")
	}
}

func TestLoad_OverridesOverDefaults(t *testing.T) {
	doc := `
tactical:
  range: 300
  display_radius: 60
  max_visible: 24
  pool_capacity: 32
sweep:
  period_ms: 2000
map:
  chunk_size: 256
`
	path := filepath.Join(t.TempDir(), "radar.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if s.Tactical.Range != 300 {
		t.Fatalf("override lost: range=%.0f", s.Tactical.Range)
	}
	if s.Map.ChunkSize != 256 {
		t.Fatalf("override lost: chunk_size=%.0f", s.Map.ChunkSize)
	}
	if s.Sweep.PeriodMs != 2000 {
		t.Fatalf("override lost: period_ms=%d", s.Sweep.PeriodMs)
	}
	// Untouched sections keep their defaults.
	if s.Compass.Range != Default().Compass.Range {
		t.Fatal("unrelated section lost its default")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestApplySweep(t *testing.T) {
	s := Default()
	s.Sweep.PeriodMs = 1000
	s.Sweep.FadeMs = 500
	tr := radar.NewSweepTracker()
	s.ApplySweep(tr)
	if tr.Period != time.Second {
		t.Fatalf("period not applied: %v", tr.Period)
	}
	if tr.FadeDuration != 500*time.Millisecond {
		t.Fatalf("fade not applied: %v", tr.FadeDuration)
	}
}

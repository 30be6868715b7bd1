// Package config loads radar display settings from YAML, falling back to the
// compiled-in defaults for anything left unset.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dzoblin/tx-radar/internal/radar"
)

// ViewSettings mirrors radar.ViewConfig for one surface.
type ViewSettings struct {
	Range         float64 `yaml:"range"`
	DisplayRadius float64 `yaml:"display_radius"`
	FOVHalfAngle  float64 `yaml:"fov_half_angle"`
	MaxVisible    int     `yaml:"max_visible"`
	PoolCapacity  int     `yaml:"pool_capacity"`
	ThrottleMs    int     `yaml:"throttle_ms"`
}

// SweepSettings tunes the tactical radar's rotating sweep.
type SweepSettings struct {
	PeriodMs  int     `yaml:"period_ms"`
	ScanWidth float64 `yaml:"scan_width"`
	FadeMs    int     `yaml:"fade_ms"`
}

// MapSettings extends the full map's view settings with the fog-of-war
// chunk size.
type MapSettings struct {
	ViewSettings `yaml:",inline"`
	ChunkSize    float64 `yaml:"chunk_size"`
}

// Settings is the root document.
type Settings struct {
	Compass  ViewSettings  `yaml:"compass"`
	Tactical ViewSettings  `yaml:"tactical"`
	Map      MapSettings   `yaml:"map"`
	Sweep    SweepSettings `yaml:"sweep"`
}

// Default returns settings matching the radar package's compiled-in defaults.
func Default() Settings {
	return Settings{
		Compass:  fromViewConfig(radar.DefaultCompassConfig()),
		Tactical: fromViewConfig(radar.DefaultTacticalConfig()),
		Map: MapSettings{
			ViewSettings: fromViewConfig(radar.DefaultFullMapConfig()),
			ChunkSize:    radar.DefaultChunkSize,
		},
		Sweep: SweepSettings{
			PeriodMs:  int(radar.DefaultSweepPeriod / time.Millisecond),
			ScanWidth: radar.DefaultScanWidth,
			FadeMs:    int(radar.DefaultFadeDuration / time.Millisecond),
		},
	}
}

// Load reads a YAML settings file over the defaults. A missing or empty path
// returns the defaults unchanged.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// CompassConfig converts the compass section to a view configuration.
func (s Settings) CompassConfig() radar.ViewConfig {
	return s.Compass.viewConfig()
}

// TacticalConfig converts the tactical section to a view configuration.
func (s Settings) TacticalConfig() radar.ViewConfig {
	return s.Tactical.viewConfig()
}

// MapConfig converts the map section to a view configuration. The full map
// never range-culls regardless of the file contents.
func (s Settings) MapConfig() radar.ViewConfig {
	cfg := s.Map.viewConfig()
	cfg.Unbounded = true
	return cfg
}

// ApplySweep copies the sweep section onto a tracker.
func (s Settings) ApplySweep(t *radar.SweepTracker) {
	if s.Sweep.PeriodMs > 0 {
		t.Period = time.Duration(s.Sweep.PeriodMs) * time.Millisecond
	}
	if s.Sweep.ScanWidth > 0 {
		t.ScanWidth = s.Sweep.ScanWidth
	}
	if s.Sweep.FadeMs > 0 {
		t.FadeDuration = time.Duration(s.Sweep.FadeMs) * time.Millisecond
	}
}

func (v ViewSettings) viewConfig() radar.ViewConfig {
	return radar.ViewConfig{
		Range:         v.Range,
		DisplayRadius: v.DisplayRadius,
		FOVHalfAngle:  v.FOVHalfAngle,
		MaxVisible:    v.MaxVisible,
		PoolCapacity:  v.PoolCapacity,
		Throttle:      time.Duration(v.ThrottleMs) * time.Millisecond,
	}
}

func fromViewConfig(cfg radar.ViewConfig) ViewSettings {
	return ViewSettings{
		Range:         cfg.Range,
		DisplayRadius: cfg.DisplayRadius,
		FOVHalfAngle:  cfg.FOVHalfAngle,
		MaxVisible:    cfg.MaxVisible,
		PoolCapacity:  cfg.PoolCapacity,
		ThrottleMs:    int(cfg.Throttle / time.Millisecond),
	}
}

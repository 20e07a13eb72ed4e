package topcam

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {

	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}

	if cfg.Tracker.MinRadius != 2.5 {
		t.Errorf("expected default min radius 2.5, got %f", cfg.Tracker.MinRadius)
	}

	if cfg.Tracker.MaxMissedFrames != 0 {
		t.Errorf("expected eviction disabled by default, got %d", cfg.Tracker.MaxMissedFrames)
	}
}

func TestLoadConfig(t *testing.T) {

	yml := `
balls:
  min: {h: 24, s: 1, v: 1}
  max: {h: 51, s: 255, v: 255}
tracker:
  minRadius: 4
  maxMissedFrames: 30
`

	path := filepath.Join(t.TempDir(), "topcam.yml")

	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatalf("error writing config file: %v", err)
	}

	cfg, err := LoadConfig(path)

	if err != nil {
		t.Fatalf("error loading config: %v", err)
	}

	if cfg.Balls.Min.H != 24 || cfg.Balls.Max.H != 51 {
		t.Errorf("ball color range not loaded, got %+v", cfg.Balls)
	}

	if cfg.Tracker.MinRadius != 4 || cfg.Tracker.MaxMissedFrames != 30 {
		t.Errorf("tracker config not loaded, got %+v", cfg.Tracker)
	}

	// unset sections keep their defaults
	if cfg.RearMarker.Min.H != 116 {
		t.Errorf("expected default rear marker range, got %+v", cfg.RearMarker)
	}
}

func TestLoadConfigRejectsOutOfRange(t *testing.T) {

	yml := `
balls:
  min: {h: 200, s: 0, v: 0}
  max: {h: 50, s: 255, v: 255}
`

	path := filepath.Join(t.TempDir(), "topcam.yml")

	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatalf("error writing config file: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected validation error for hue above 180")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestColorClassScalars(t *testing.T) {

	c := ColorClass{
		Min: HSV{H: 10, S: 20, V: 30},
		Max: HSV{H: 40, S: 50, V: 60},
	}

	min, max := c.Scalars()

	if min.Val1 != 10 || min.Val2 != 20 || min.Val3 != 30 {
		t.Errorf("unexpected min scalar %+v", min)
	}

	if max.Val1 != 40 || max.Val2 != 50 || max.Val3 != 60 {
		t.Errorf("unexpected max scalar %+v", max)
	}
}

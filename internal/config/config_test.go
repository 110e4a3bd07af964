package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg FloodConfig
	if err := yaml.Unmarshal(defaultFloodYAML, &cfg); err != nil {
		t.Fatalf("Embedded default YAML does not parse: %v", err)
	}
	applyDefaults(&cfg)

	def := DefaultFloodConfig()
	if cfg.Spawn.GridIntervalMS != def.Spawn.GridIntervalMS {
		t.Errorf("Embedded grid interval = %d, expected %d", cfg.Spawn.GridIntervalMS, def.Spawn.GridIntervalMS)
	}
	if cfg.Rules.MinWordLength != def.Rules.MinWordLength {
		t.Errorf("Embedded min word length = %d, expected %d", cfg.Rules.MinWordLength, def.Rules.MinWordLength)
	}
}

func TestLoadFloodCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flood.yaml")
	content := `
spawn:
  grid_interval_ms: 2000
rules:
  points_per_letter: 25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlood(path)
	if err != nil {
		t.Fatalf("LoadFlood() failed: %v", err)
	}

	if cfg.Spawn.GridIntervalMS != 2000 {
		t.Errorf("Grid interval = %d, expected 2000", cfg.Spawn.GridIntervalMS)
	}
	if cfg.Rules.PointsPerLetter != 25 {
		t.Errorf("Points per letter = %d, expected 25", cfg.Rules.PointsPerLetter)
	}

	// Unset fields come from defaults
	if cfg.Spawn.TypedIntervalMS != 800 {
		t.Errorf("Typed interval = %d, expected default 800", cfg.Spawn.TypedIntervalMS)
	}
	if len(cfg.Letters.Weights) == 0 {
		t.Error("Letter weights should fall back to defaults")
	}
	if cfg.Dictionary.Endpoint == "" {
		t.Error("Dictionary endpoint should fall back to default")
	}
}

func TestLoadFloodMissingCustomPath(t *testing.T) {
	if _, err := LoadFlood("/nonexistent/flood.yaml"); err == nil {
		t.Error("Explicit missing config path should fail loudly")
	}
}

func TestDefaultWeightsCoverAlphabet(t *testing.T) {
	weights := DefaultLetterWeights()
	if len(weights) != 26 {
		t.Fatalf("Expected 26 letters, got %d", len(weights))
	}
	for letter, w := range weights {
		if w <= 0 {
			t.Errorf("Letter %s has non-positive weight %d", letter, w)
		}
	}
	// Common letters should outweigh rare ones
	if weights["S"] <= weights["Q"] {
		t.Error("S should outweigh Q")
	}
	if weights["E"] <= weights["Z"] {
		t.Error("E should outweigh Z")
	}
}

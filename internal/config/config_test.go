package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var flappy FlappyConfig
	if err := yaml.Unmarshal(GetDefaultYAML("flappy"), &flappy); err != nil {
		t.Fatalf("embedded flappy.yaml does not parse: %v", err)
	}
	if flappy.Pipes != DefaultFlappyConfig().Pipes {
		t.Errorf("embedded pipes = %+v, expected %+v", flappy.Pipes, DefaultFlappyConfig().Pipes)
	}
	if flappy.Pickups != DefaultFlappyConfig().Pickups {
		t.Errorf("embedded pickups = %+v, expected %+v", flappy.Pickups, DefaultFlappyConfig().Pickups)
	}

	var crossy CrossyConfig
	if err := yaml.Unmarshal(GetDefaultYAML("crossy"), &crossy); err != nil {
		t.Fatalf("embedded crossy.yaml does not parse: %v", err)
	}
	def := DefaultCrossyConfig()
	if len(crossy.Traffic.Lanes) != len(def.Traffic.Lanes) {
		t.Fatalf("embedded lanes = %d, expected %d", len(crossy.Traffic.Lanes), len(def.Traffic.Lanes))
	}
	for i := range def.Traffic.Lanes {
		if crossy.Traffic.Lanes[i] != def.Traffic.Lanes[i] {
			t.Errorf("lane %d = %+v, expected %+v", i, crossy.Traffic.Lanes[i], def.Traffic.Lanes[i])
		}
	}
	if crossy.Grid != def.Grid || crossy.Levels != def.Levels {
		t.Error("embedded crossy grid/levels differ from hardcoded defaults")
	}

	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadCustomPathOverridesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("physics:\n  gravity: -12\npipes:\n  spawn_seconds: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Physics.Gravity != -12 {
		t.Errorf("Gravity = %v, expected -12", cfg.Physics.Gravity)
	}
	if cfg.Pipes.SpawnSeconds != 2 {
		t.Errorf("SpawnSeconds = %v, expected 2", cfg.Pipes.SpawnSeconds)
	}
	// Keys absent from the file keep their defaults
	if cfg.Physics.FlapVelocity != 3.7 {
		t.Errorf("FlapVelocity = %v, expected default 3.7", cfg.Physics.FlapVelocity)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCrossy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadCrossy() with a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCrossy(bad); err == nil {
		t.Error("LoadCrossy() with malformed YAML should fail")
	}

	invalidPath := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalidPath, []byte("grid:\n  min_x: 5\n  max_x: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadCrossy(invalidPath)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadCrossy() error = %v, expected ErrInvalidConfig", err)
	}
	if cfg.Grid.MinX != DefaultCrossyConfig().Grid.MinX {
		t.Error("invalid config should fall back to defaults")
	}
}

func TestValidate(t *testing.T) {
	if err := ValidateFlappy(DefaultFlappyConfig()); err != nil {
		t.Errorf("default flappy config invalid: %v", err)
	}
	if err := ValidateCrossy(DefaultCrossyConfig()); err != nil {
		t.Errorf("default crossy config invalid: %v", err)
	}

	flappyCases := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero radius", func(c *FlappyConfig) { c.Physics.BodyRadius = 0 }},
		{"ceiling below floor", func(c *FlappyConfig) { c.World.WorldTop = -5 }},
		{"zero spawn interval", func(c *FlappyConfig) { c.Pipes.SpawnSeconds = 0 }},
		{"empty countdown range", func(c *FlappyConfig) { c.Pickups.MaxCountdown = 3 }},
		{"despawn ahead of spawn", func(c *FlappyConfig) { c.Pipes.DespawnX = 20 }},
	}
	for _, tc := range flappyCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			if err := ValidateFlappy(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ValidateFlappy() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	crossy := DefaultCrossyConfig()
	crossy.Traffic.Lanes[3].Direction = 0
	if err := ValidateCrossy(crossy); err == nil {
		t.Error("ValidateCrossy() should reject a zero lane direction")
	}
}

func TestPresets(t *testing.T) {
	cfg := DefaultFlappyConfig()
	ApplyFlappyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplyFlappyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable scaling")
	}

	crossy := DefaultCrossyConfig()
	ApplyCrossyPreset(&crossy, DifficultyHard)
	if crossy.Levels.LevelUpSeconds != 1.0 {
		t.Errorf("hard crossy level-up pause = %v, expected 1.0", crossy.Levels.LevelUpSeconds)
	}

	if ParsePreset("normal") != DifficultyNormal || ParsePreset("insane") != "" {
		t.Error("ParsePreset mapping is wrong")
	}
}

func TestDifficultyManager(t *testing.T) {
	disabled := NewDifficultyManager(DefaultFlappyConfig().Difficulty)
	if got := disabled.SpeedScale(Progress{Score: 100}); got != 1 {
		t.Errorf("disabled SpeedScale() = %v, expected 1", got)
	}
	if got := disabled.SpawnInterval(1.65, Progress{Score: 100}); got != 1.65 {
		t.Errorf("disabled SpawnInterval() = %v, expected 1.65", got)
	}

	var nilManager *DifficultyManager
	if nilManager.SpeedScale(Progress{}) != 1 {
		t.Error("nil manager should scale by 1")
	}

	tests := []struct {
		name     string
		cfg      DifficultyConfig
		progress Progress
		expected float64
	}{
		{
			name:     "score halfway",
			cfg:      DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "score", MaxAt: 50}},
			progress: Progress{Score: 25},
			expected: 0.5,
		},
		{
			name:     "level from initial",
			cfg:      DifficultyConfig{Enabled: true, InitialLevel: 0.5, Progression: ProgressionConfig{Type: "level", MaxAt: 4}},
			progress: Progress{Level: 3},
			expected: 0.75,
		},
		{
			name:     "time past max",
			cfg:      DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "time", MaxAt: 60}},
			progress: Progress{Elapsed: 600},
			expected: 1,
		},
		{
			name:     "none keeps initial",
			cfg:      DifficultyConfig{Enabled: true, InitialLevel: 0.3, Progression: ProgressionConfig{Type: "none"}},
			progress: Progress{Score: 1000},
			expected: 0.3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(tc.cfg)
			if got := d.Level(tc.progress); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Level() = %v, expected %v", got, tc.expected)
			}
		})
	}

	scaled := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5, SpawnReduction: 0.2},
	})
	if got := scaled.SpeedScale(Progress{Score: 10}); got != 1.5 {
		t.Errorf("SpeedScale() at max = %v, expected 1.5", got)
	}
	if got := scaled.SpawnInterval(2, Progress{Score: 10}); math.Abs(got-1.6) > 1e-9 {
		t.Errorf("SpawnInterval() at max = %v, expected 1.6", got)
	}
}

package config

import "math"

// Progress is the run state difficulty progression is measured against.
type Progress struct {
	Score   int
	Level   int     // 1-based
	Elapsed float64 // Seconds of play
}

// DifficultyManager calculates dynamic game parameters from run progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty scaling.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0).
// Disabled managers report 0 so every scale factor is exactly 1.
func (d *DifficultyManager) Level(p Progress) float64 {
	if d == nil || !d.cfg.Enabled {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(p.Score) / maxAt
	case "level":
		progress = float64(p.Level-1) / maxAt
	case "time":
		progress = p.Elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedScale returns the factor applied to obstacle or traffic speed.
func (d *DifficultyManager) SpeedScale(p Progress) float64 {
	if d == nil {
		return 1
	}
	return 1.0 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier
}

// SpawnInterval returns the obstacle spawn interval for the current progress.
func (d *DifficultyManager) SpawnInterval(base float64, p Progress) float64 {
	if d == nil {
		return base
	}
	reduction := clampF(d.cfg.Scaling.SpawnReduction, 0, 0.9)
	return base * (1.0 - d.Level(p)*reduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

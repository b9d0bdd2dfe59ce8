// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
//
// All distances are scene units and all durations are seconds of
// simulation time.
package config

import (
	"errors"
	"fmt"
)

// Vec3Config is a point in scene space.
type Vec3Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// FlappyConfig contains all configuration for the flight game.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	World      FlappyWorld      `yaml:"world"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Pickups    FlappyPickups    `yaml:"pickups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines body physics for the flight game.
type FlappyPhysics struct {
	Gravity          float64 `yaml:"gravity"`           // Vertical acceleration (negative = down)
	FlapVelocity     float64 `yaml:"flap_velocity"`     // Velocity set by a flap
	BodyRadius       float64 `yaml:"body_radius"`       // Collision radius of the body
	StartingDuration float64 `yaml:"starting_duration"` // Intro glide length
	EaseRate         float64 `yaml:"ease_rate"`         // Horizontal easing factor per second
}

// FlappyWorld defines the playfield bounds and anchor points.
type FlappyWorld struct {
	FloorY   float64    `yaml:"floor_y"`
	WorldTop float64    `yaml:"world_top"`
	BodyX    float64    `yaml:"body_x"` // In-track x in normal direction; mirrored in reverse
	Intro    Vec3Config `yaml:"intro"`  // Idle position before a round starts
}

// FlappyPipes defines obstacle spawning and movement.
type FlappyPipes struct {
	Width           float64 `yaml:"width"`
	Gap             float64 `yaml:"gap"` // Full gap height; half is the fixed half-height
	SpawnSeconds    float64 `yaml:"spawn_seconds"`
	StartX          float64 `yaml:"start_x"`   // Spawn x in normal direction
	DespawnX        float64 `yaml:"despawn_x"` // Removal x in normal direction
	GapCenterMin    float64 `yaml:"gap_center_min"`
	GapCenterRange  float64 `yaml:"gap_center_range"`
	BaseSpeed       float64 `yaml:"base_speed"`
	SpeedStep       float64 `yaml:"speed_step"`       // Added per score tier
	ScoreTier       int     `yaml:"score_tier"`       // Points per tier
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Applied after tiers
}

// FlappyPickups defines modifier pickup spawning.
type FlappyPickups struct {
	FirstCountdown int     `yaml:"first_countdown"` // Pipes before the first pickup
	MinCountdown   int     `yaml:"min_countdown"`
	MaxCountdown   int     `yaml:"max_countdown"`
	Radius         float64 `yaml:"radius"`      // Pickup reach on both axes
	JitterX        float64 `yaml:"jitter_x"`    // Max x offset from the pipe
	JitterY        float64 `yaml:"jitter_y"`    // Max y offset from the gap center
	EdgeMargin     float64 `yaml:"edge_margin"` // Keep-out distance from floor and ceiling
	SafetySeconds  float64 `yaml:"safety_seconds"`
}

// CrossyConfig contains all configuration for the lane-crossing game.
type CrossyConfig struct {
	Grid       CrossyGrid       `yaml:"grid"`
	Traffic    CrossyTraffic    `yaml:"traffic"`
	Levels     CrossyLevels     `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CrossyGrid defines the player grid.
type CrossyGrid struct {
	Step   float64 `yaml:"step"`
	StartX float64 `yaml:"start_x"`
	StartZ float64 `yaml:"start_z"`
	MinX   float64 `yaml:"min_x"`
	MaxX   float64 `yaml:"max_x"`
	MinZ   float64 `yaml:"min_z"` // Finish row
}

// LaneConfig describes one traffic lane.
type LaneConfig struct {
	Z         float64 `yaml:"z"`
	Speed     float64 `yaml:"speed"`
	Direction int     `yaml:"direction"` // +1 or -1
}

// CrossyTraffic defines lane actors.
type CrossyTraffic struct {
	ActorsPerLane int          `yaml:"actors_per_lane"`
	OriginX       float64      `yaml:"origin_x"`    // x of the first actor in lane 0
	Spacing       float64      `yaml:"spacing"`     // Gap between actors in a lane
	LaneOffset    float64      `yaml:"lane_offset"` // Extra stagger per lane index
	WrapX         float64      `yaml:"wrap_x"`
	HitX          float64      `yaml:"hit_x"`
	HitZ          float64      `yaml:"hit_z"`
	Lanes         []LaneConfig `yaml:"lanes"`
}

// CrossyLevels defines level progression.
type CrossyLevels struct {
	BaseMultiplier float64 `yaml:"base_multiplier"`
	MultiplierStep float64 `yaml:"multiplier_step"`
	MaxMultiplier  float64 `yaml:"max_multiplier"`
	LevelUpSeconds float64 `yaml:"levelup_seconds"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "level", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score, level or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Fraction added to speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction removed from spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// ValidateFlappy rejects configurations the flight simulation cannot run.
func ValidateFlappy(cfg FlappyConfig) error {
	switch {
	case cfg.Physics.BodyRadius <= 0:
		return invalid("physics.body_radius must be positive")
	case cfg.Physics.StartingDuration <= 0:
		return invalid("physics.starting_duration must be positive")
	case cfg.World.WorldTop <= cfg.World.FloorY:
		return invalid("world.world_top (%v) must be above world.floor_y (%v)", cfg.World.WorldTop, cfg.World.FloorY)
	case cfg.Pipes.Width <= 0 || cfg.Pipes.Gap <= 0:
		return invalid("pipes.width and pipes.gap must be positive")
	case cfg.Pipes.SpawnSeconds <= 0:
		return invalid("pipes.spawn_seconds must be positive")
	case cfg.Pipes.ScoreTier <= 0:
		return invalid("pipes.score_tier must be positive")
	case cfg.Pipes.DespawnX >= cfg.Pipes.StartX:
		return invalid("pipes.despawn_x must be behind pipes.start_x")
	case cfg.Pickups.MinCountdown <= 0 || cfg.Pickups.MaxCountdown < cfg.Pickups.MinCountdown:
		return invalid("pickups countdown range [%d, %d] is empty", cfg.Pickups.MinCountdown, cfg.Pickups.MaxCountdown)
	case cfg.Pickups.SafetySeconds < 0:
		return invalid("pickups.safety_seconds must not be negative")
	}
	return nil
}

// ValidateCrossy rejects configurations the lane simulation cannot run.
func ValidateCrossy(cfg CrossyConfig) error {
	switch {
	case cfg.Grid.Step <= 0:
		return invalid("grid.step must be positive")
	case cfg.Grid.MinX > cfg.Grid.MaxX:
		return invalid("grid.min_x (%v) is greater than grid.max_x (%v)", cfg.Grid.MinX, cfg.Grid.MaxX)
	case cfg.Grid.MinZ >= cfg.Grid.StartZ:
		return invalid("grid.min_z must be ahead of grid.start_z")
	case len(cfg.Traffic.Lanes) == 0:
		return invalid("traffic.lanes is empty")
	case cfg.Traffic.ActorsPerLane <= 0:
		return invalid("traffic.actors_per_lane must be positive")
	case cfg.Traffic.WrapX <= 0:
		return invalid("traffic.wrap_x must be positive")
	case cfg.Levels.LevelUpSeconds < 0:
		return invalid("levels.levelup_seconds must not be negative")
	}
	for i, lane := range cfg.Traffic.Lanes {
		if lane.Direction != 1 && lane.Direction != -1 {
			return invalid("traffic.lanes[%d].direction must be 1 or -1", i)
		}
	}
	return nil
}

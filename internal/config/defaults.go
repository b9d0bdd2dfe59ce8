package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/crossy.yaml
var defaultCrossyYAML []byte

// DefaultFlappyConfig returns the default flight game configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:          -9.8,
			FlapVelocity:     3.7,
			BodyRadius:       0.4,
			StartingDuration: 1.25,
			EaseRate:         8,
		},
		World: FlappyWorld{
			FloorY:   -3.35,
			WorldTop: 4.2,
			BodyX:    -2,
			Intro:    Vec3Config{X: 0.17, Y: -0.25, Z: 6},
		},
		Pipes: FlappyPipes{
			Width:           1.2,
			Gap:             3,
			SpawnSeconds:    1.65,
			StartX:          9,
			DespawnX:        -10,
			GapCenterMin:    -0.4,
			GapCenterRange:  2.6,
			BaseSpeed:       2.2,
			SpeedStep:       0.45,
			ScoreTier:       10,
			SpeedMultiplier: 1.1,
		},
		Pickups: FlappyPickups{
			FirstCountdown: 12,
			MinCountdown:   12,
			MaxCountdown:   16,
			Radius:         0.56,
			JitterX:        0.55,
			JitterY:        0.6,
			EdgeMargin:     0.9,
			SafetySeconds:  0.7,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  0.2,
			},
		},
	}
}

// DefaultCrossyConfig returns the default lane-crossing configuration.
func DefaultCrossyConfig() CrossyConfig {
	return CrossyConfig{
		Grid: CrossyGrid{
			Step:   1,
			StartX: -1.024,
			StartZ: 3,
			MinX:   -3.2,
			MaxX:   3.2,
			MinZ:   -9,
		},
		Traffic: CrossyTraffic{
			ActorsPerLane: 2,
			OriginX:       -8,
			Spacing:       6,
			LaneOffset:    0.6,
			WrapX:         10.5,
			HitX:          0.75,
			HitZ:          0.45,
			Lanes: []LaneConfig{
				{Z: 2, Speed: 2.2, Direction: 1},
				{Z: 1, Speed: 2.8, Direction: -1},
				{Z: 0, Speed: 3.1, Direction: 1},
				{Z: -1, Speed: 2.6, Direction: -1},
				{Z: -2, Speed: 3.4, Direction: 1},
				{Z: -3, Speed: 2.9, Direction: -1},
				{Z: -4, Speed: 3.5, Direction: 1},
				{Z: -5, Speed: 3.1, Direction: -1},
			},
		},
		Levels: CrossyLevels{
			BaseMultiplier: 0.65,
			MultiplierStep: 0.15,
			MaxMultiplier:  2.2,
			LevelUpSeconds: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	case "crossy":
		return defaultCrossyYAML
	default:
		return nil
	}
}

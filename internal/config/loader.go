package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the flight game configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg, err := load("flappy", customPath, defaultFlappyYAML, DefaultFlappyConfig)
	if err != nil {
		return cfg, err
	}
	if err := ValidateFlappy(cfg); err != nil {
		return DefaultFlappyConfig(), err
	}
	return cfg, nil
}

// LoadCrossy loads the lane-crossing configuration.
// Search order: customPath -> ~/.arcade/configs/crossy.yaml -> ./configs/crossy.yaml -> embedded default
func LoadCrossy(customPath string) (CrossyConfig, error) {
	cfg, err := load("crossy", customPath, defaultCrossyYAML, DefaultCrossyConfig)
	if err != nil {
		return cfg, err
	}
	if err := ValidateCrossy(cfg); err != nil {
		return DefaultCrossyConfig(), err
	}
	return cfg, nil
}

// load decodes the first config source found on top of the hardcoded
// defaults, so partial YAML files only override the keys they name.
func load[T any](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	// An explicit path must exist and parse
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyCrossyPreset modifies the config based on a difficulty preset.
// Hard runs also shorten the level-up pause.
func ApplyCrossyPreset(cfg *CrossyConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Levels.MaxMultiplier = 1.6
	case DifficultyHard:
		cfg.Levels.LevelUpSeconds = 1.0
	}
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

package config

import "math"

// ApplyPreset modifies the config based on a difficulty preset.
// Easy grants extra lives and time, hard takes them away.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Progression.Lives = 5
		cfg.Progression.LevelTime += 30
	case DifficultyHard:
		cfg.Progression.Lives = 2
		cfg.Progression.LevelTime = max(cfg.Progression.LevelTime-15, 10)
	}
}

// Scaling calculates level-dependent parameters.
type Scaling struct {
	platforms   PlatformConfig
	progression ProgressionConfig
}

// NewScaling creates a scaling helper for the given configuration.
func NewScaling(cfg GameConfig) Scaling {
	return Scaling{
		platforms:   cfg.Platforms,
		progression: cfg.Progression,
	}
}

// PlatformSpeed returns the moving platform speed for a level:
// base * (1 + step * (level - 1)).
func (s Scaling) PlatformSpeed(level int) float64 {
	if level < 1 {
		level = 1
	}
	return s.platforms.BaseSpeed * (1 + s.platforms.SpeedStep*float64(level-1))
}

// LevelTime returns the timer budget in seconds for a level.
func (s Scaling) LevelTime(level int) int {
	if level < 1 {
		level = 1
	}
	return s.progression.LevelTime + s.progression.LevelTimeStep*(level-1)
}

// UpgradeCost returns the price after the given number of purchases,
// applying floor(cost * growth) once per purchase.
func UpgradeCost(base int, growth float64, purchases int) int {
	cost := base
	for i := 0; i < purchases; i++ {
		cost = int(math.Floor(float64(cost) * growth))
	}
	return cost
}

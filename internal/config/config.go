// Package config provides YAML/TOML game configuration loading, difficulty
// presets and per-level scaling for piggyhop.
package config

import "fmt"

// GameConfig contains all tunable parameters of the simulation and frontends.
type GameConfig struct {
	World        WorldConfig       `yaml:"world" toml:"world"`
	Player       PlayerConfig      `yaml:"player" toml:"player"`
	Platforms    PlatformConfig    `yaml:"platforms" toml:"platforms"`
	Collectibles CollectibleConfig `yaml:"collectibles" toml:"collectibles"`
	Trampolines  TrampolineConfig  `yaml:"trampolines" toml:"trampolines"`
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Upgrades     UpgradeConfig     `yaml:"upgrades" toml:"upgrades"`
	Input        InputConfig       `yaml:"input" toml:"input"`
	Audio        AudioConfig       `yaml:"audio" toml:"audio"`
}

// WorldConfig defines the playing field in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player's body and base stats.
type PlayerConfig struct {
	StartX    float64 `yaml:"start_x" toml:"start_x"`
	StartY    float64 `yaml:"start_y" toml:"start_y"`
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	Speed     float64 `yaml:"speed" toml:"speed"`
	JumpForce float64 `yaml:"jump_force" toml:"jump_force"`
	Gravity   float64 `yaml:"gravity" toml:"gravity"`
}

// PlatformConfig defines moving platform behavior.
type PlatformConfig struct {
	BaseSpeed       float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedStep       float64 `yaml:"speed_step" toml:"speed_step"` // Fractional speed increase per level
	HorizontalRange float64 `yaml:"horizontal_range" toml:"horizontal_range"`
	VerticalRange   float64 `yaml:"vertical_range" toml:"vertical_range"`
}

// CollectibleConfig defines coin size, animation and random placement.
type CollectibleConfig struct {
	Size        float64 `yaml:"size" toml:"size"`
	FloatSpeed  float64 `yaml:"float_speed" toml:"float_speed"`
	FloatHeight float64 `yaml:"float_height" toml:"float_height"`
	MaxExtra    int     `yaml:"max_extra" toml:"max_extra"` // Extra random coins at most per level
	SpawnMinX   float64 `yaml:"spawn_min_x" toml:"spawn_min_x"`
	SpawnWidth  float64 `yaml:"spawn_width" toml:"spawn_width"`
	SpawnMinY   float64 `yaml:"spawn_min_y" toml:"spawn_min_y"`
	SpawnHeight float64 `yaml:"spawn_height" toml:"spawn_height"`
}

// TrampolineConfig defines trampoline size and bounce strength.
type TrampolineConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	BounceFactor float64 `yaml:"bounce_factor" toml:"bounce_factor"` // Multiplier on jump force
}

// ProgressionConfig defines lives, levels, timers, combo and rating.
type ProgressionConfig struct {
	Levels                int  `yaml:"levels" toml:"levels"`
	Lives                 int  `yaml:"lives" toml:"lives"`
	LevelTime             int  `yaml:"level_time" toml:"level_time"`           // Seconds for level 1
	LevelTimeStep         int  `yaml:"level_time_step" toml:"level_time_step"` // Extra seconds per level
	ComboWindowMs         int  `yaml:"combo_window_ms" toml:"combo_window_ms"`
	CoinsPerStar          int  `yaml:"coins_per_star" toml:"coins_per_star"`
	MaxStars              int  `yaml:"max_stars" toml:"max_stars"`
	RestartResetsUpgrades bool `yaml:"restart_resets_upgrades" toml:"restart_resets_upgrades"`
}

// UpgradeConfig defines shop prices and stat increments.
type UpgradeConfig struct {
	BaseCost      int     `yaml:"base_cost" toml:"base_cost"`
	CostGrowth    float64 `yaml:"cost_growth" toml:"cost_growth"`
	JumpForceStep float64 `yaml:"jump_force_step" toml:"jump_force_step"`
	SpeedStep     float64 `yaml:"speed_step" toml:"speed_step"`
}

// InputConfig tunes key-press emulation for terminals without key-up events.
type InputConfig struct {
	HoldMs int `yaml:"hold_ms" toml:"hold_ms"`
}

// AudioConfig defines the sound effect and music defaults.
type AudioConfig struct {
	Sound      bool    `yaml:"sound" toml:"sound"`
	Music      bool    `yaml:"music" toml:"music"`
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
	Gain       float64 `yaml:"gain" toml:"gain"`
}

// Validate reports the first setting that would make the game unplayable.
func (c GameConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.Progression.Levels <= 0:
		return fmt.Errorf("config: levels must be positive, got %d", c.Progression.Levels)
	case c.Progression.Lives <= 0:
		return fmt.Errorf("config: lives must be positive, got %d", c.Progression.Lives)
	case c.Upgrades.CostGrowth <= 1:
		return fmt.Errorf("config: upgrade cost growth must exceed 1, got %v", c.Upgrades.CostGrowth)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

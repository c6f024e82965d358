package config

import (
	_ "embed"
)

//go:embed defaults/piggyhop.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default piggyhop configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:  800,
			Height: 400,
		},
		Player: PlayerConfig{
			StartX:    50,
			StartY:    300,
			Width:     40,
			Height:    40,
			Speed:     5,
			JumpForce: 12,
			Gravity:   0.5,
		},
		Platforms: PlatformConfig{
			BaseSpeed:       1,
			SpeedStep:       0.1,
			HorizontalRange: 100,
			VerticalRange:   50,
		},
		Collectibles: CollectibleConfig{
			Size:        20,
			FloatSpeed:  0.05,
			FloatHeight: 5,
			MaxExtra:    5,
			SpawnMinX:   50,
			SpawnWidth:  700,
			SpawnMinY:   50,
			SpawnHeight: 250,
		},
		Trampolines: TrampolineConfig{
			Width:        60,
			Height:       20,
			BounceFactor: 1.5,
		},
		Progression: ProgressionConfig{
			Levels:        20,
			Lives:         3,
			LevelTime:     60,
			LevelTimeStep: 5,
			ComboWindowMs: 2000,
			CoinsPerStar:  200,
			MaxStars:      5,
		},
		Upgrades: UpgradeConfig{
			BaseCost:      5,
			CostGrowth:    1.5,
			JumpForceStep: 1,
			SpeedStep:     0.5,
		},
		Input: InputConfig{
			HoldMs: 180,
		},
		Audio: AudioConfig{
			Sound:      true,
			Music:      false,
			SampleRate: 44100,
			Gain:       0.1,
		},
	}
}

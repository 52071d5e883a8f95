package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultConfig returns the built-in game configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:           800,
			Height:          600,
			CameraSmoothing: 0.1,
		},
		Physics: PhysicsConfig{
			Gravity:      0.5,
			JumpStrength: -12,
		},
		Player: PlayerConfig{
			Speed:                5,
			Lives:                3,
			Width:                64,
			Height:               64,
			SpawnX:               100,
			SpawnY:               400,
			JumpBufferFrames:     5,
			SwitchDebounceFrames: 10,
			AttackCooldownMS:     300,
			BoostFrames:          600,
		},
		Attacks: AttackConfig{
			HairballSpeed:    12,
			MeowSpeed:        6,
			MeowLifetime:     25,
			OmniMeowLifetime: 40,
			PoundFallSpeed:   8,
			AnimationFrames:  20,
			SpinFrames:       30,
		},
		Level: LevelConfig{
			BaseLength:    10000,
			LengthGrowth:  0.05,
			FurnitureMin:  25,
			FurnitureMax:  35,
			ShelfMin:      8,
			ShelfMax:      12,
			WindowsillMin: 5,
			WindowsillMax: 8,
			TreatMin:      40,
			TreatMax:      55,
			PlantMin:      8,
			PlantMax:      12,
		},
		Enemies: EnemyConfig{
			BaseSpeed:   2,
			CountMin:    25,
			CountMax:    35,
			CountGrowth: 0.2,
			SpeedGrowth: 0.3,
		},
		Scoring: ScoringConfig{
			KillPoints:   50,
			TreatPoints:  10,
			PlantPoints:  20,
			UnlockPoints: 100,
			RoundBonus:   1000,
			DeathPenalty: 200,
		},
		Session: SessionConfig{
			NotificationFrames: 180,
			NameLimit:          15,
			CursorBlinkFrames:  30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}

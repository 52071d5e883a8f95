// Package config provides YAML-based game configuration loading and
// difficulty management for Oma's Adventure.
package config

// GameConfig contains every tunable of a run: world and physics constants,
// per-character stats, the attack table, generator bounds, enemy policy,
// scoring, and session timings.
type GameConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Attacks AttackConfig  `yaml:"attacks"`
	Level   LevelConfig   `yaml:"level"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Scoring ScoringConfig `yaml:"scoring"`
	Session SessionConfig `yaml:"session"`
}

// WorldConfig defines the viewport and camera behavior.
// World units are level-space pixels; the viewport is projected onto the
// terminal grid at render time.
type WorldConfig struct {
	Width           float64 `yaml:"width"`            // Viewport width in world px
	Height          float64 `yaml:"height"`           // Viewport height in world px
	CameraSmoothing float64 `yaml:"camera_smoothing"` // Fraction of the gap closed per frame
}

// PhysicsConfig defines gravity and jump strength shared by all characters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"` // Negative: y grows downward
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed                float64 `yaml:"speed"`
	Lives                int     `yaml:"lives"` // Per character on unlock
	Width                float64 `yaml:"width"`
	Height               float64 `yaml:"height"`
	SpawnX               float64 `yaml:"spawn_x"`
	SpawnY               float64 `yaml:"spawn_y"`
	JumpBufferFrames     int     `yaml:"jump_buffer_frames"`
	SwitchDebounceFrames int     `yaml:"switch_debounce_frames"`
	AttackCooldownMS     int     `yaml:"attack_cooldown_ms"`
	BoostFrames          int     `yaml:"boost_frames"` // Florence plant powerup duration
}

// AttackConfig defines projectile and attack-effect parameters.
type AttackConfig struct {
	HairballSpeed    float64 `yaml:"hairball_speed"`
	MeowSpeed        float64 `yaml:"meow_speed"`
	MeowLifetime     int     `yaml:"meow_lifetime"`      // Frames, directional wave
	OmniMeowLifetime int     `yaml:"omni_meow_lifetime"` // Frames, each of the 8 omni waves
	PoundFallSpeed   float64 `yaml:"pound_fall_speed"`
	AnimationFrames  int     `yaml:"animation_frames"` // Attack pose timer
	SpinFrames       int     `yaml:"spin_frames"`      // Sue pound spin timer
}

// LevelConfig defines generator counts and round growth.
type LevelConfig struct {
	BaseLength   int     `yaml:"base_length"`
	LengthGrowth float64 `yaml:"length_growth"` // Added per round past the first

	FurnitureMin  int `yaml:"furniture_min"`
	FurnitureMax  int `yaml:"furniture_max"`
	ShelfMin      int `yaml:"shelf_min"`
	ShelfMax      int `yaml:"shelf_max"`
	WindowsillMin int `yaml:"windowsill_min"`
	WindowsillMax int `yaml:"windowsill_max"`
	TreatMin      int `yaml:"treat_min"`
	TreatMax      int `yaml:"treat_max"`
	PlantMin      int `yaml:"plant_min"`
	PlantMax      int `yaml:"plant_max"`
}

// EnemyConfig defines enemy counts, speed, and round growth.
type EnemyConfig struct {
	BaseSpeed   float64 `yaml:"base_speed"`
	CountMin    int     `yaml:"count_min"` // Base bounds, scaled per round
	CountMax    int     `yaml:"count_max"`
	CountGrowth float64 `yaml:"count_growth"` // Added per round past the first
	SpeedGrowth float64 `yaml:"speed_growth"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	KillPoints   int `yaml:"kill_points"`
	TreatPoints  int `yaml:"treat_points"`
	PlantPoints  int `yaml:"plant_points"`
	UnlockPoints int `yaml:"unlock_points"`
	RoundBonus   int `yaml:"round_bonus"`
	DeathPenalty int `yaml:"death_penalty"`
}

// SessionConfig defines outer-loop timings and limits.
type SessionConfig struct {
	NotificationFrames int `yaml:"notification_frames"` // Unlock toast duration
	NameLimit          int `yaml:"name_limit"`          // High-score name length
	CursorBlinkFrames  int `yaml:"cursor_blink_frames"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset returns true for a known preset name.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

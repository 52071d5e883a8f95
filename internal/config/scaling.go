package config

// RoundScaling computes per-round parameter scaling for a configured run.
// Round 1 is the baseline; growth rates come from the config so difficulty
// presets can flatten or steepen the curve.
type RoundScaling struct {
	level   LevelConfig
	enemies EnemyConfig
}

// NewRoundScaling creates a scaling helper for the given config.
func NewRoundScaling(cfg GameConfig) RoundScaling {
	return RoundScaling{
		level:   cfg.Level,
		enemies: cfg.Enemies,
	}
}

// LengthScale returns the level-length multiplier for a round.
func (s RoundScaling) LengthScale(round int) float64 {
	return 1.0 + float64(roundIndex(round))*s.level.LengthGrowth
}

// Length returns the level length in world pixels for a round.
func (s RoundScaling) Length(round int) int {
	return int(float64(s.level.BaseLength) * s.LengthScale(round))
}

// EnemyScale returns the enemy-count multiplier for a round.
func (s RoundScaling) EnemyScale(round int) float64 {
	return 1.0 + float64(roundIndex(round))*s.enemies.CountGrowth
}

// EnemyBounds returns the scaled [min, max] enemy count for a round.
func (s RoundScaling) EnemyBounds(round int) (int, int) {
	scale := s.EnemyScale(round)
	return int(float64(s.enemies.CountMin) * scale), int(float64(s.enemies.CountMax) * scale)
}

// SpeedScale returns the enemy-speed multiplier for a round, before the
// per-enemy jitter is applied.
func (s RoundScaling) SpeedScale(round int) float64 {
	return 1.0 + float64(roundIndex(round))*s.enemies.SpeedGrowth
}

// EnemySpeed returns the base enemy speed for a round.
func (s RoundScaling) EnemySpeed(round int) float64 {
	return s.enemies.BaseSpeed * s.SpeedScale(round)
}

// roundIndex converts a 1-based round number to growth steps.
func roundIndex(round int) int {
	if round < 1 {
		return 0
	}
	return round - 1
}

package game

// Snapshot captures the simulation state in a comparable struct for
// determinism testing: two games stepped identically from the same seed
// must produce equal snapshots.
type Snapshot struct {
	Tick           uint64
	Round          int
	RoundScore     int
	TotalScore     int
	Treats         int
	PlayerX        float64
	PlayerY        float64
	PlayerVY       float64
	Active         CharacterName
	RosterLen      int
	ActiveLives    int
	OmniCharges    int
	SueTreatCount  int
	EnemyCount     int
	ProjectileLive int
	PoundLive      int
	CameraX        float64
	GameOver       bool
	RoundComplete  bool
}

// Snapshot returns the current state for determinism verification.
func (g *Game) Snapshot() Snapshot {
	// The roster empties on game over.
	var active CharacterName
	lives := 0
	if len(g.player.Roster) > 0 {
		active = g.player.ActiveChar().Name
		lives = g.player.ActiveChar().Lives
	}

	return Snapshot{
		Tick:           g.tick,
		Round:          g.round,
		RoundScore:     g.roundScore,
		TotalScore:     g.totalScore,
		Treats:         g.treats,
		PlayerX:        g.player.Rect.X,
		PlayerY:        g.player.Rect.Y,
		PlayerVY:       g.player.VY,
		Active:         active,
		RosterLen:      len(g.player.Roster),
		ActiveLives:    lives,
		OmniCharges:    g.player.OmniCharges,
		SueTreatCount:  g.player.TreatCount,
		EnemyCount:     len(g.enemies),
		ProjectileLive: len(g.player.Projectiles),
		PoundLive:      len(g.player.Pounds),
		CameraX:        g.camera.X,
		GameOver:       g.gameOver,
		RoundComplete:  g.roundComplete,
	}
}

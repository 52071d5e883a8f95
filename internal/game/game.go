package game

import (
	"math/rand"

	"github.com/catnip-games/omas-adventure/internal/config"
	"github.com/catnip-games/omas-adventure/internal/core"
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	if config.ValidPreset(config.DifficultyPreset(preset)) {
		difficultyPreset = config.DifficultyPreset(preset)
	} else {
		difficultyPreset = ""
	}
}

// SwitchEvent records an active-character change for analytics.
type SwitchEvent struct {
	From CharacterName
	To   CharacterName
}

// StepResult reports what one frame produced beyond raw state: the events
// the session layer turns into notifications and analytics.
type StepResult struct {
	State         core.GameState
	Switches      []SwitchEvent
	Unlocks       []CharacterName
	RoundComplete bool
}

// Game is the full platformer simulation for one session: the current
// level, player, enemies, camera, and score/round bookkeeping. It is not
// safe for concurrent use; the host loop drives it from one goroutine.
type Game struct {
	rng   *rand.Rand
	clock core.Clock
	tick  uint64

	runtime core.RuntimeConfig
	cfg     config.GameConfig

	round          int
	totalScore     int // banked by completed rounds
	roundScore     int
	lastRoundScore int // most recently banked round, bonus included
	treats         int

	level   Level
	player  *Player
	camera  *Camera
	enemies []*Enemy

	gameOver      bool
	roundComplete bool
}

// New creates a game driven by the system clock.
func New() *Game {
	return NewWithClock(core.SystemClock{})
}

// NewWithClock creates a game with an injected clock. Tests use it to pin
// the wall-clock attack rate limit.
func NewWithClock(clock core.Clock) *Game {
	return &Game{clock: clock}
}

// Reset starts a fresh session at round one, seeded from the runtime
// config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.round = 1
	g.totalScore = 0
	g.lastRoundScore = 0
	g.gameOver = false
	g.newRound()
}

// newRound builds the level, player, camera, and enemy set for the
// current round. Round score and the treat counter restart per round; the
// roster restarts too, so every round begins with Shoogie alone.
func (g *Game) newRound() {
	g.level = GenerateLevel(g.rng, g.cfg, g.round)
	g.enemies = GenerateEnemies(g.rng, g.cfg, g.level.Length, g.round)
	g.player = NewPlayer(g.cfg)
	g.camera = NewCamera(g.cfg.World.Width, g.cfg.World.CameraSmoothing)
	g.roundScore = 0
	g.treats = 0
	g.roundComplete = false
}

// Step advances the simulation one frame. Once the round completes or the
// game ends, Step freezes until AdvanceRound or Reset.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.tick++

	res := StepResult{}
	if g.gameOver || g.roundComplete {
		res.State = g.State()
		res.RoundComplete = g.roundComplete
		return res
	}

	// Player intents, then physics against the platform set.
	if in.Has(core.ActionAttack) {
		g.player.Attack(g.clock, &g.cfg)
	}
	if ev := g.player.Control(in, &g.cfg); ev != nil {
		res.Switches = append(res.Switches, *ev)
	}
	g.player.StepPhysics(&g.cfg, g.level.Platforms, g.camera.X)

	g.camera.Update(g.player.Rect.X)

	g.stepPickupAnimations()
	g.stepAttacks()
	g.stepCollectibles(&res)
	g.stepEnemies()
	g.stepBed()

	res.State = g.State()
	res.RoundComplete = g.roundComplete
	return res
}

// stepPickupAnimations advances the cosmetic hover on character pickups.
func (g *Game) stepPickupAnimations() {
	for i := range g.level.Collectibles {
		c := &g.level.Collectibles[i]
		if c.Kind == CollectCharacter {
			c.BobTimer += 0.1
		}
	}
}

// stepAttacks advances projectiles and ground pounds, prunes the ones
// that left play, and resolves kills. Dead enemies are nil-marked during
// the pass and compacted at the end, so indices stay stable while both
// attack lists scan the set.
func (g *Game) stepAttacks() {
	camX := g.camera.X
	worldW := g.cfg.World.Width
	worldH := g.cfg.World.Height

	kept := g.player.Projectiles[:0]
	for _, p := range g.player.Projectiles {
		p.Update(g.cfg.Physics.Gravity)
		if p.Rect.Y > worldH || p.Rect.X < camX-100 || p.Rect.X > camX+worldW+100 {
			continue
		}
		if p.Expired() {
			continue
		}
		if i := g.firstEnemyHit(p.Rect); i >= 0 {
			g.killEnemy(i)
			if p.Kind == AttackMeow {
				g.player.BankOmniCharge()
			}
			continue
		}
		kept = append(kept, p)
	}
	g.player.Projectiles = kept

	keptPounds := g.player.Pounds[:0]
	for _, gp := range g.player.Pounds {
		gp.Update()
		if gp.Rect.Y > worldH {
			continue
		}
		// The pound persists, so it can take out several enemies on the
		// way down.
		for i, e := range g.enemies {
			if e != nil && gp.Rect.Intersects(e.Rect) {
				g.killEnemy(i)
			}
		}
		keptPounds = append(keptPounds, gp)
	}
	g.player.Pounds = keptPounds

	g.compactEnemies()
}

// firstEnemyHit returns the index of the first live enemy overlapping r,
// or -1.
func (g *Game) firstEnemyHit(r core.Rect) int {
	for i, e := range g.enemies {
		if e != nil && r.Intersects(e.Rect) {
			return i
		}
	}
	return -1
}

// killEnemy nil-marks the enemy and scores the kill.
func (g *Game) killEnemy(i int) {
	if g.enemies[i] == nil {
		return
	}
	g.enemies[i] = nil
	g.roundScore += g.cfg.Scoring.KillPoints
}

// compactEnemies drops nil-marked slots after an attack phase.
func (g *Game) compactEnemies() {
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if e != nil {
			kept = append(kept, e)
		}
	}
	g.enemies = kept
}

// stepCollectibles resolves first-touch pickups: treats, plants, and the
// two character unlocks. Each collectible awards score exactly once.
func (g *Game) stepCollectibles(res *StepResult) {
	for i := range g.level.Collectibles {
		c := &g.level.Collectibles[i]
		if c.Collected || !g.player.Rect.Intersects(c.Rect) {
			continue
		}
		c.Collected = true
		switch c.Kind {
		case CollectTreat:
			g.treats++
			g.roundScore += g.cfg.Scoring.TreatPoints
			g.player.CollectTreat()
		case CollectPlant:
			g.roundScore += g.cfg.Scoring.PlantPoints
			g.player.ActivatePlantBoost(g.cfg.Player.BoostFrames)
		case CollectCharacter:
			if g.player.Unlock(c.Character, g.cfg.Player.Lives) {
				g.roundScore += g.cfg.Scoring.UnlockPoints
				if ev := g.player.SwitchTo(len(g.player.Roster) - 1); ev != nil {
					res.Switches = append(res.Switches, *ev)
				}
				res.Unlocks = append(res.Unlocks, c.Character)
			}
		}
	}
}

// stepEnemies moves every enemy, then applies at most one contact damage
// per frame.
func (g *Game) stepEnemies() {
	for _, e := range g.enemies {
		e.Update()
	}
	for _, e := range g.enemies {
		if e.Rect.Intersects(g.player.Rect) {
			g.applyDamage()
			break
		}
	}
}

// applyDamage runs the contact sequence: life loss, score penalty floored
// at zero, teleport back to spawn with the camera reset, roster removal
// when the active character dies, and a fresh enemy set.
func (g *Game) applyDamage() {
	ch := g.player.ActiveChar()
	ch.Lives--

	g.roundScore = core.Max(0, g.roundScore-g.cfg.Scoring.DeathPenalty)

	g.player.Rect.X = g.cfg.Player.SpawnX
	g.player.Rect.Y = g.cfg.Player.SpawnY
	g.camera.X = 0

	if ch.Lives <= 0 {
		if !g.player.RemoveActive() {
			g.gameOver = true
			return
		}
	}

	g.enemies = GenerateEnemies(g.rng, g.cfg, g.level.Length, g.round)
}

// stepBed checks the goal. Reaching the bed banks the round score plus
// the completion bonus into the total and freezes the simulation until
// the session decides to advance or quit.
func (g *Game) stepBed() {
	if g.roundComplete || !g.player.Rect.Intersects(g.level.Bed) {
		return
	}
	g.roundScore += g.cfg.Scoring.RoundBonus
	g.lastRoundScore = g.roundScore
	g.totalScore += g.roundScore
	g.roundScore = 0
	g.roundComplete = true
}

// AdvanceRound starts the next, harder round after a completed one. The
// random stream continues, so one seed drives a whole session's levels.
func (g *Game) AdvanceRound() {
	if !g.roundComplete {
		return
	}
	g.round++
	g.newRound()
}

// State reports the HUD-level view of the game. Score is the current
// round's score; the banked total lives in TotalScore.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.roundScore,
		Round:    g.round,
		GameOver: g.gameOver,
	}
}

// FinalScore is the banked total plus whatever the current round earned.
func (g *Game) FinalScore() int {
	return g.totalScore + g.roundScore
}

// TotalScore is the score banked by completed rounds.
func (g *Game) TotalScore() int {
	return g.totalScore
}

// LastRoundScore is what the most recently completed round earned,
// completion bonus included.
func (g *Game) LastRoundScore() int {
	return g.lastRoundScore
}

// Round is the current round number, starting at 1.
func (g *Game) Round() int {
	return g.round
}

// TreatsCollected is the treat count for the current round.
func (g *Game) TreatsCollected() int {
	return g.treats
}

// Player exposes the player for rendering and the HUD.
func (g *Game) Player() *Player {
	return g.player
}

// CameraX is the current horizontal scroll offset.
func (g *Game) CameraX() float64 {
	return g.camera.X
}

// Level exposes the static level data for rendering.
func (g *Game) Level() *Level {
	return &g.level
}

// Enemies exposes the live enemy set for rendering.
func (g *Game) Enemies() []*Enemy {
	return g.enemies
}

// Config returns the loaded game config after preset application.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

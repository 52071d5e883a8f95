package game

import (
	"math"
	"math/rand"

	"github.com/catnip-games/omas-adventure/internal/config"
	"github.com/catnip-games/omas-adventure/internal/core"
)

const (
	enemyW, enemyH = 32.0, 32.0

	// Patrol distance rolled per side for horizontal/vertical enemies.
	minPatrol = 50
	maxPatrol = 300

	orbitRadius  = 120.0
	baseAngular  = 0.05
	selfSpinStep = 0.1
)

// Enemy is one patrolling hazard. Movement state depends on Kind:
// horizontal and vertical enemies bounce between patrol bounds, circular
// enemies orbit a fixed center.
type Enemy struct {
	Rect core.Rect
	Kind EnemyKind

	VX, VY float64

	LeftBound, RightBound float64
	TopBound, BottomBound float64

	CenterX, CenterY float64
	Radius           float64
	Angle            float64
	AngularSpeed     float64

	// Cosmetic self-spin, advanced only while orbiting.
	Rotation float64
}

// Update advances the enemy one frame along its patrol.
func (e *Enemy) Update() {
	switch e.Kind {
	case EnemyHorizontal:
		e.Rect.X += e.VX
		// Turn a little inside the bound so the enemy cannot jitter
		// exactly on it.
		if (e.VX < 0 && e.Rect.X <= e.LeftBound+5) ||
			(e.VX > 0 && e.Rect.Right() >= e.RightBound-5) {
			e.VX = -e.VX
		}
	case EnemyVertical:
		e.Rect.Y += e.VY
		if (e.VY < 0 && e.Rect.Y <= e.TopBound+5) ||
			(e.VY > 0 && e.Rect.Bottom() >= e.BottomBound-5) {
			e.VY = -e.VY
		}
	case EnemyCircular:
		e.Angle += e.AngularSpeed
		e.Rect.X = e.CenterX + math.Cos(e.Angle)*e.Radius
		e.Rect.Y = e.CenterY + math.Sin(e.Angle)*e.Radius
		e.Rotation += selfSpinStep
	}
}

// GenerateEnemies builds a fresh enemy set for the round. It runs at
// round start and again wholesale whenever the player takes damage. The
// movement mix shifts toward nastier kinds in later rounds: round 1 is
// all horizontal, rounds 2-3 add vertical, round 4 on adds circular.
func GenerateEnemies(rng *rand.Rand, cfg config.GameConfig, length, round int) []*Enemy {
	scaling := config.NewRoundScaling(cfg)
	minCount, maxCount := scaling.EnemyBounds(round)
	total := randRange(rng, minCount, maxCount)

	var horizontal, vertical int
	switch {
	case round <= 1:
		horizontal = total
	case round <= 3:
		horizontal = int(float64(total) * 0.7)
		vertical = total - horizontal
	default:
		horizontal = int(float64(total) * 0.5)
		vertical = int(float64(total) * 0.3)
	}
	circular := total - horizontal - vertical

	speedScale := scaling.SpeedScale(round)
	// Per-enemy jitter, sampled once and fixed for the enemy's life.
	jitter := func() float64 { return speedScale * (0.7 + rng.Float64()*0.6) }

	enemies := make([]*Enemy, 0, total)

	for i := 0; i < horizontal; i++ {
		x := float64(randRange(rng, 300, length-300))
		y := float64(randRange(rng, 200, 520))
		left := math.Max(0, x-float64(randRange(rng, minPatrol, maxPatrol)))
		right := math.Min(float64(length), x+float64(randRange(rng, minPatrol, maxPatrol)))
		enemies = append(enemies, &Enemy{
			Rect:       core.NewRect(x, y, enemyW, enemyH),
			Kind:       EnemyHorizontal,
			VX:         cfg.Enemies.BaseSpeed * jitter(),
			LeftBound:  left,
			RightBound: right,
		})
	}

	for i := 0; i < vertical; i++ {
		x := float64(randRange(rng, 300, length-300))
		y := float64(randRange(rng, 300, 450))
		top := math.Max(100, y-float64(randRange(rng, minPatrol, maxPatrol)))
		bottom := math.Min(520, y+float64(randRange(rng, minPatrol, maxPatrol)))
		enemies = append(enemies, &Enemy{
			Rect:        core.NewRect(x, y, enemyW, enemyH),
			Kind:        EnemyVertical,
			VY:          cfg.Enemies.BaseSpeed * jitter(),
			TopBound:    top,
			BottomBound: bottom,
		})
	}

	for i := 0; i < circular; i++ {
		x := float64(randRange(rng, 400, length-400))
		y := float64(randRange(rng, 250, 400))
		enemies = append(enemies, &Enemy{
			Rect:         core.NewRect(x, y, enemyW, enemyH),
			Kind:         EnemyCircular,
			CenterX:      x,
			CenterY:      y,
			Radius:       orbitRadius,
			AngularSpeed: baseAngular * jitter(),
		})
	}

	return enemies
}

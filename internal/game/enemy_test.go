package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/catnip-games/omas-adventure/internal/config"
	"github.com/catnip-games/omas-adventure/internal/core"
)

func TestRoundOneEnemiesAllHorizontal(t *testing.T) {
	cfg := config.DefaultConfig()
	enemies := GenerateEnemies(rand.New(rand.NewSource(10)), cfg, 10000, 1)

	if n := len(enemies); n < cfg.Enemies.CountMin || n > cfg.Enemies.CountMax {
		t.Errorf("round 1 count = %d, want within [%d, %d]", n, cfg.Enemies.CountMin, cfg.Enemies.CountMax)
	}
	for i, e := range enemies {
		if e.Kind != EnemyHorizontal {
			t.Errorf("enemy %d is %s, want horizontal in round 1", i, e.Kind)
		}
		if e.VX <= 0 {
			t.Errorf("enemy %d has no patrol speed", i)
		}
	}
}

func TestEnemyMixShiftsWithRound(t *testing.T) {
	cfg := config.DefaultConfig()

	// Rounds 2-3 mix in vertical patrols.
	round2 := GenerateEnemies(rand.New(rand.NewSource(11)), cfg, 10000, 2)
	total := len(round2)
	if total < 30 || total > 42 {
		t.Errorf("round 2 count = %d, want within [30, 42]", total)
	}
	h, v, c := countEnemyKinds(round2)
	if wantH := int(float64(total) * 0.7); h != wantH || v != total-wantH || c != 0 {
		t.Errorf("round 2 mix = %d/%d/%d, want %d horizontal and the rest vertical", h, v, c, wantH)
	}

	// Round 4 on adds circular fliers.
	round4 := GenerateEnemies(rand.New(rand.NewSource(11)), cfg, 10000, 4)
	total = len(round4)
	if total < 40 || total > 56 {
		t.Errorf("round 4 count = %d, want within [40, 56]", total)
	}
	h, v, c = countEnemyKinds(round4)
	wantH := int(float64(total) * 0.5)
	wantV := int(float64(total) * 0.3)
	if h != wantH || v != wantV || c != total-wantH-wantV {
		t.Errorf("round 4 mix = %d/%d/%d, want %d/%d/%d",
			h, v, c, wantH, wantV, total-wantH-wantV)
	}
	if c == 0 {
		t.Error("round 4 should include circular enemies")
	}
}

func TestEnemySpeedScalesWithRound(t *testing.T) {
	cfg := config.DefaultConfig()

	for _, round := range []int{1, 4} {
		scale := 1.0 + float64(round-1)*cfg.Enemies.SpeedGrowth
		lo := cfg.Enemies.BaseSpeed*scale*0.7 - 1e-9
		hi := cfg.Enemies.BaseSpeed*scale*1.3 + 1e-9

		enemies := GenerateEnemies(rand.New(rand.NewSource(12)), cfg, 10000, round)
		for i, e := range enemies {
			switch e.Kind {
			case EnemyHorizontal:
				if e.VX < lo || e.VX > hi {
					t.Errorf("round %d enemy %d VX=%v, want within [%v, %v]", round, i, e.VX, lo, hi)
				}
			case EnemyVertical:
				if e.VY < lo || e.VY > hi {
					t.Errorf("round %d enemy %d VY=%v, want within [%v, %v]", round, i, e.VY, lo, hi)
				}
			case EnemyCircular:
				alo := 0.05*scale*0.7 - 1e-9
				ahi := 0.05*scale*1.3 + 1e-9
				if e.AngularSpeed < alo || e.AngularSpeed > ahi {
					t.Errorf("round %d enemy %d angular speed %v, want within [%v, %v]",
						round, i, e.AngularSpeed, alo, ahi)
				}
			}
		}
	}
}

func TestPatrolBoundsStayInLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	enemies := GenerateEnemies(rand.New(rand.NewSource(13)), cfg, 10000, 3)

	for i, e := range enemies {
		switch e.Kind {
		case EnemyHorizontal:
			if e.LeftBound < 0 || e.RightBound > 10000 {
				t.Errorf("enemy %d patrol [%v, %v] leaves the level", i, e.LeftBound, e.RightBound)
			}
			if e.Rect.X < e.LeftBound || e.Rect.X > e.RightBound {
				t.Errorf("enemy %d spawns at %v outside its patrol [%v, %v]",
					i, e.Rect.X, e.LeftBound, e.RightBound)
			}
		case EnemyVertical:
			if e.TopBound < 100 || e.BottomBound > 520 {
				t.Errorf("enemy %d patrol [%v, %v] leaves the play band", i, e.TopBound, e.BottomBound)
			}
		}
	}
}

func TestHorizontalEnemyTurnsAtBounds(t *testing.T) {
	e := &Enemy{
		Rect:       core.NewRect(100, 300, 32, 32),
		Kind:       EnemyHorizontal,
		VX:         2,
		LeftBound:  50,
		RightBound: 150,
	}

	flips := 0
	prev := e.VX
	for i := 0; i < 300; i++ {
		e.Update()
		if (e.VX > 0) != (prev > 0) {
			flips++
			prev = e.VX
		}
		if e.Rect.X < e.LeftBound || e.Rect.Right() > e.RightBound {
			t.Fatalf("frame %d: enemy spans [%v, %v], escaped patrol [%v, %v]",
				i, e.Rect.X, e.Rect.Right(), e.LeftBound, e.RightBound)
		}
	}
	if flips < 2 {
		t.Errorf("flips = %d, want a full patrol cycle", flips)
	}
}

func TestVerticalEnemyTurnsAtBounds(t *testing.T) {
	e := &Enemy{
		Rect:        core.NewRect(400, 150, 32, 32),
		Kind:        EnemyVertical,
		VY:          2,
		TopBound:    100,
		BottomBound: 200,
	}

	flips := 0
	prev := e.VY
	for i := 0; i < 300; i++ {
		e.Update()
		if (e.VY > 0) != (prev > 0) {
			flips++
			prev = e.VY
		}
		if e.Rect.Y < e.TopBound || e.Rect.Bottom() > e.BottomBound {
			t.Fatalf("frame %d: enemy spans [%v, %v], escaped patrol [%v, %v]",
				i, e.Rect.Y, e.Rect.Bottom(), e.TopBound, e.BottomBound)
		}
	}
	if flips < 2 {
		t.Errorf("flips = %d, want a full patrol cycle", flips)
	}
}

func TestCircularEnemyHoldsOrbit(t *testing.T) {
	e := &Enemy{
		Rect:         core.NewRect(620, 300, 32, 32),
		Kind:         EnemyCircular,
		CenterX:      500,
		CenterY:      300,
		Radius:       120,
		AngularSpeed: 0.05,
	}

	for i := 0; i < 200; i++ {
		e.Update()
		dx := e.Rect.X - e.CenterX
		dy := e.Rect.Y - e.CenterY
		if r := math.Hypot(dx, dy); math.Abs(r-120) > 1e-9 {
			t.Fatalf("frame %d: orbit radius %v, want 120", i, r)
		}
	}
	if e.Rotation <= 0 {
		t.Errorf("rotation = %v, want steady self-spin", e.Rotation)
	}
}

func countEnemyKinds(enemies []*Enemy) (h, v, c int) {
	for _, e := range enemies {
		switch e.Kind {
		case EnemyHorizontal:
			h++
		case EnemyVertical:
			v++
		case EnemyCircular:
			c++
		}
	}
	return h, v, c
}

package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/catnip-games/omas-adventure/internal/config"
	"github.com/catnip-games/omas-adventure/internal/core"
)

func isFurnitureKind(k PlatformKind) bool {
	for _, f := range furnitureKinds {
		if f == k {
			return true
		}
	}
	return false
}

func TestGenerateLevelDeterminism(t *testing.T) {
	// The same seed must reproduce the level exactly.
	cfg := config.DefaultConfig()

	lvl1 := GenerateLevel(rand.New(rand.NewSource(12345)), cfg, 1)
	lvl2 := GenerateLevel(rand.New(rand.NewSource(12345)), cfg, 1)

	if lvl1.Length != lvl2.Length {
		t.Errorf("lengths differ: %d vs %d", lvl1.Length, lvl2.Length)
	}
	if len(lvl1.Platforms) != len(lvl2.Platforms) {
		t.Fatalf("platform counts differ: %d vs %d", len(lvl1.Platforms), len(lvl2.Platforms))
	}
	for i := range lvl1.Platforms {
		if lvl1.Platforms[i] != lvl2.Platforms[i] {
			t.Errorf("platform %d differs: %+v vs %+v", i, lvl1.Platforms[i], lvl2.Platforms[i])
		}
	}
	if len(lvl1.Collectibles) != len(lvl2.Collectibles) {
		t.Fatalf("collectible counts differ: %d vs %d", len(lvl1.Collectibles), len(lvl2.Collectibles))
	}
	for i := range lvl1.Collectibles {
		if lvl1.Collectibles[i] != lvl2.Collectibles[i] {
			t.Errorf("collectible %d differs: %+v vs %+v", i, lvl1.Collectibles[i], lvl2.Collectibles[i])
		}
	}
	if lvl1.Bed != lvl2.Bed {
		t.Errorf("beds differ: %+v vs %+v", lvl1.Bed, lvl2.Bed)
	}
}

func TestFloorCoversLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	lvl := GenerateLevel(rand.New(rand.NewSource(1)), cfg, 1)

	floors := 0
	for _, p := range lvl.Platforms {
		if p.Kind != PlatformFloor {
			continue
		}
		wantX := float64(floors) * 400
		if p.Rect.X != wantX || p.Rect.Y != 550 || p.Rect.W != 400 || p.Rect.H != 50 {
			t.Errorf("floor segment %d = %+v, want (%v, 550, 400, 50)", floors, p.Rect, wantX)
		}
		floors++
	}

	want := lvl.Length/400 + 1
	if floors != want {
		t.Errorf("floor segments = %d, want %d", floors, want)
	}
	if end := float64(floors) * 400; end < float64(lvl.Length) {
		t.Errorf("floor ends at %v, level is %d long", end, lvl.Length)
	}
}

func TestLevelLengthScalesWithRound(t *testing.T) {
	cfg := config.DefaultConfig()

	r1 := GenerateLevel(rand.New(rand.NewSource(2)), cfg, 1)
	if r1.Length != cfg.Level.BaseLength {
		t.Errorf("round 1 length = %d, want %d", r1.Length, cfg.Level.BaseLength)
	}

	r3 := GenerateLevel(rand.New(rand.NewSource(2)), cfg, 3)
	if r3.Length != 11000 {
		t.Errorf("round 3 length = %d, want 11000", r3.Length)
	}
}

func TestFurnitureKeepOutRespected(t *testing.T) {
	cfg := config.DefaultConfig()
	lvl := GenerateLevel(rand.New(rand.NewSource(3)), cfg, 1)

	var furniture []core.Rect
	for _, p := range lvl.Platforms {
		if isFurnitureKind(p.Kind) {
			furniture = append(furniture, p.Rect)
		}
	}
	if len(furniture) == 0 {
		t.Fatal("no furniture generated")
	}

	// Each accepted platform keeps a padded border clear of everything
	// placed after it.
	for i, early := range furniture {
		pad := core.NewRect(early.X-50, early.Y-50, early.W+100, 100)
		for j := i + 1; j < len(furniture); j++ {
			if furniture[j].Intersects(pad) {
				t.Errorf("furniture %d at %+v inside keep-out of furniture %d at %+v",
					j, furniture[j], i, early)
			}
		}
	}
}

func TestPlatformCountsWithinBounds(t *testing.T) {
	cfg := config.DefaultConfig()
	lvl := GenerateLevel(rand.New(rand.NewSource(4)), cfg, 1)

	shelves, sills, furniture := 0, 0, 0
	for _, p := range lvl.Platforms {
		switch {
		case p.Kind == PlatformShelf:
			shelves++
		case p.Kind == PlatformWindowsill:
			sills++
		case isFurnitureKind(p.Kind):
			furniture++
		}
	}

	if shelves < cfg.Level.ShelfMin || shelves > cfg.Level.ShelfMax {
		t.Errorf("shelves = %d, want within [%d, %d]", shelves, cfg.Level.ShelfMin, cfg.Level.ShelfMax)
	}
	if sills < cfg.Level.WindowsillMin || sills > cfg.Level.WindowsillMax {
		t.Errorf("windowsills = %d, want within [%d, %d]", sills, cfg.Level.WindowsillMin, cfg.Level.WindowsillMax)
	}
	// Furniture slots that cannot find room are dropped, so only the
	// upper bound is hard.
	if furniture == 0 || furniture > cfg.Level.FurnitureMax {
		t.Errorf("furniture = %d, want within (0, %d]", furniture, cfg.Level.FurnitureMax)
	}
}

func TestPlatformsStayInsideLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	lvl := GenerateLevel(rand.New(rand.NewSource(5)), cfg, 1)

	for i, p := range lvl.Platforms {
		if p.Kind == PlatformFloor || p.Kind == PlatformBedWall {
			continue
		}
		if p.Rect.X < 200 || p.Rect.Right() > float64(lvl.Length) {
			t.Errorf("platform %d spans [%v, %v], outside the level margin",
				i, p.Rect.X, p.Rect.Right())
		}
	}
}

func TestFirstFurnitureReachableFromGround(t *testing.T) {
	cfg := config.DefaultConfig()
	lvl := GenerateLevel(rand.New(rand.NewSource(6)), cfg, 1)

	var first *Platform
	for i := range lvl.Platforms {
		if isFurnitureKind(lvl.Platforms[i].Kind) {
			first = &lvl.Platforms[i]
			break
		}
	}
	if first == nil {
		t.Fatal("no furniture generated")
	}
	if first.Rect.Y < 480 || first.Rect.Y > 500 {
		t.Errorf("first furniture at y=%v, want a single ground jump away [480, 500]", first.Rect.Y)
	}
}

func TestCollectibleMix(t *testing.T) {
	cfg := config.DefaultConfig()
	lvl := GenerateLevel(rand.New(rand.NewSource(7)), cfg, 1)

	treats, plants, chars := 0, 0, 0
	for i, c := range lvl.Collectibles {
		if c.Collected {
			t.Errorf("collectible %d starts collected", i)
		}
		switch c.Kind {
		case CollectTreat:
			treats++
			if c.Rect.Y <= 0 || c.Rect.Y > 500 {
				t.Errorf("treat %d at y=%v, outside (0, 500]", i, c.Rect.Y)
			}
		case CollectPlant:
			plants++
			if c.Rect.Y <= 0 || c.Rect.Y > 500 {
				t.Errorf("plant %d at y=%v, outside (0, 500]", i, c.Rect.Y)
			}
		case CollectCharacter:
			chars++
		}
	}

	if treats < cfg.Level.TreatMin || treats > cfg.Level.TreatMax {
		t.Errorf("treats = %d, want within [%d, %d]", treats, cfg.Level.TreatMin, cfg.Level.TreatMax)
	}
	if plants < cfg.Level.PlantMin || plants > cfg.Level.PlantMax {
		t.Errorf("plants = %d, want within [%d, %d]", plants, cfg.Level.PlantMin, cfg.Level.PlantMax)
	}
	if chars != 2 {
		t.Errorf("character pickups = %d, want 2", chars)
	}
}

func TestCharacterPickupPlacement(t *testing.T) {
	cfg := config.DefaultConfig()
	lvl := GenerateLevel(rand.New(rand.NewSource(8)), cfg, 1)

	var pickups []Collectible
	for _, c := range lvl.Collectibles {
		if c.Kind == CollectCharacter {
			pickups = append(pickups, c)
		}
	}
	if len(pickups) != 2 {
		t.Fatalf("character pickups = %d, want 2", len(pickups))
	}
	if pickups[0].Character != CharFlorence || pickups[1].Character != CharSue {
		t.Fatalf("pickup order = %s, %s, want Florence then Sue",
			pickups[0].Character, pickups[1].Character)
	}

	florenceX := float64(lvl.Length) * 0.3
	sueX := float64(lvl.Length) * 0.6
	if math.Abs(pickups[0].Rect.X-florenceX) > 100 {
		t.Errorf("Florence at x=%v, want within 100 of %v", pickups[0].Rect.X, florenceX)
	}
	if math.Abs(pickups[1].Rect.X-sueX) > 100 {
		t.Errorf("Sue at x=%v, want within 100 of %v", pickups[1].Rect.X, sueX)
	}
	for _, p := range pickups {
		if p.Rect.Y < 70 || p.Rect.Y > 470 {
			t.Errorf("%s pickup at y=%v, outside [70, 470]", p.Character, p.Rect.Y)
		}
	}
}

func TestBedSealsLevelEnd(t *testing.T) {
	cfg := config.DefaultConfig()
	lvl := GenerateLevel(rand.New(rand.NewSource(9)), cfg, 1)

	wantBed := core.NewRect(float64(lvl.Length)-350, 370, 300, 180)
	if lvl.Bed != wantBed {
		t.Errorf("bed = %+v, want %+v", lvl.Bed, wantBed)
	}

	wall := lvl.Platforms[len(lvl.Platforms)-1]
	if wall.Kind != PlatformBedWall {
		t.Fatalf("last platform kind = %v, want the bed wall", wall.Kind)
	}
	wantWall := core.NewRect(lvl.Bed.Right(), lvl.Bed.Y-100, 20, 120)
	if wall.Rect != wantWall {
		t.Errorf("bed wall = %+v, want %+v", wall.Rect, wantWall)
	}
}

package game

import (
	"math"
	"math/rand"

	"github.com/catnip-games/omas-adventure/internal/config"
	"github.com/catnip-games/omas-adventure/internal/core"
)

// World layout constants, in level-space pixels. The viewport is 800x600
// of that space; levels extend horizontally.
const (
	groundY       = 550.0
	floorSegmentW = 400.0
	floorH        = 50.0

	singleJumpReach = 120.0 // conservative single-jump height
	doubleJumpReach = 180.0 // single jump plus Sue's 80% second jump

	furnitureH   = 20.0
	shelfH       = 15.0
	windowsillH  = 20.0
	placementPad = 50.0 // keep-out border around accepted furniture

	treatW, treatH   = 48.0, 32.0
	plantW, plantH   = 48.0, 50.0
	pickupW, pickupH = 64.0, 64.0

	bedW, bedH         = 300.0, 180.0
	bedWallW, bedWallH = 20.0, 120.0
)

// randRange returns a uniform int in [lo, hi] inclusive.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// GenerateLevel builds the platform layout, collectibles, unlock pickups,
// and bed for one round. All randomness comes from rng, so a fixed seed
// reproduces the level exactly. Generation never fails: every randomized
// placement has a fallback, and a furniture slot that cannot find room is
// silently skipped.
func GenerateLevel(rng *rand.Rand, cfg config.GameConfig, round int) Level {
	scaling := config.NewRoundScaling(cfg)
	length := scaling.Length(round)

	lvl := Level{Length: length}

	// Floor: contiguous segments covering the whole level.
	segments := length/int(floorSegmentW) + 1
	for i := 0; i < segments; i++ {
		lvl.Platforms = append(lvl.Platforms, Platform{
			Rect: core.NewRect(float64(i)*floorSegmentW, groundY, floorSegmentW, floorH),
			Kind: PlatformFloor,
		})
	}

	// The unlock pickups anchor the difficulty curve: past the Sue
	// threshold the course may demand a double jump.
	florenceX := float64(length) * 0.3
	sueX := float64(length) * 0.6

	placeFurniture(rng, cfg, &lvl, sueX)
	placeShelves(rng, cfg, &lvl)
	placeWindowsills(rng, cfg, &lvl)
	placeTreats(rng, cfg, &lvl)
	placePlants(rng, cfg, &lvl)
	placePickups(rng, &lvl, florenceX, sueX)

	// Bed at the level end, plus the wall that stops the player running
	// past it. The wall collides but is never drawn.
	lvl.Bed = core.NewRect(float64(length)-350, 370, bedW, bedH)
	lvl.Platforms = append(lvl.Platforms, Platform{
		Rect: core.NewRect(lvl.Bed.Right(), lvl.Bed.Y-100, bedWallW, bedWallH),
		Kind: PlatformBedWall,
	})

	return lvl
}

// placeFurniture scatters free-standing furniture platforms, each placed
// within the vertical reach of the ground or of some platform within
// 300px horizontally. Up to 50 attempts per slot; a slot whose every
// attempt lands inside another platform's keep-out border is dropped.
func placeFurniture(rng *rand.Rand, cfg config.GameConfig, lvl *Level, sueX float64) {
	count := randRange(rng, cfg.Level.FurnitureMin, cfg.Level.FurnitureMax)

	type placed struct{ x, y, w float64 }
	var accepted []placed

	for i := 0; i < count; i++ {
		for attempt := 0; attempt < 50; attempt++ {
			x := float64(randRange(rng, 200, lvl.Length-300))

			// Past the Sue pickup the course may demand a double jump.
			doubleZone := x > sueX
			reach := singleJumpReach
			if doubleZone {
				reach = doubleJumpReach
			}

			var y float64
			if len(accepted) == 0 {
				// The first platform must be reachable straight off the
				// ground with a single jump.
				y = float64(randRange(rng, int(groundY-singleJumpReach)+50, 500))
			} else {
				// The ceiling is the harsher of "reachable from some
				// platform within 300px" and "reachable from the ground".
				fromPlatforms := math.Inf(1)
				nearby := false
				for _, p := range lvl.Platforms {
					if math.Abs(p.Rect.X-x) < 300 {
						nearby = true
						if top := p.Rect.Y - reach + 30; top < fromPlatforms {
							fromPlatforms = top
						}
					}
				}
				ceiling := groundY - reach + 50
				if nearby && fromPlatforms > ceiling {
					ceiling = fromPlatforms
				}

				if doubleZone && rng.Float64() < 0.3 {
					// Deliberately hard jump near the top of the band.
					y = float64(randRange(rng, int(ceiling), int(ceiling)+50))
				} else {
					y = float64(randRange(rng, int(ceiling), 500))
				}
			}

			w := float64(randRange(rng, 120, 220))
			cand := core.NewRect(x, y, w, furnitureH)

			overlap := false
			for _, p := range accepted {
				pad := core.NewRect(p.x-placementPad, p.y-placementPad, p.w+2*placementPad, 2*placementPad)
				if cand.Intersects(pad) {
					overlap = true
					break
				}
			}
			if overlap {
				continue
			}

			lvl.Platforms = append(lvl.Platforms, Platform{
				Rect: cand,
				Kind: furnitureKinds[rng.Intn(len(furnitureKinds))],
			})
			accepted = append(accepted, placed{x, y, w})
			break
		}
	}
}

// placeShelves adds wall-mounted shelves high up. No overlap check.
func placeShelves(rng *rand.Rand, cfg config.GameConfig, lvl *Level) {
	count := randRange(rng, cfg.Level.ShelfMin, cfg.Level.ShelfMax)
	for i := 0; i < count; i++ {
		x := float64(randRange(rng, 300, lvl.Length-300))
		y := float64(randRange(rng, 150, 350))
		w := float64(randRange(rng, 80, 150))
		lvl.Platforms = append(lvl.Platforms, Platform{
			Rect: core.NewRect(x, y, w, shelfH),
			Kind: PlatformShelf,
		})
	}
}

// placeWindowsills adds windowsills at mid height. No overlap check.
func placeWindowsills(rng *rand.Rand, cfg config.GameConfig, lvl *Level) {
	count := randRange(rng, cfg.Level.WindowsillMin, cfg.Level.WindowsillMax)
	for i := 0; i < count; i++ {
		x := float64(randRange(rng, 400, lvl.Length-400))
		y := float64(randRange(rng, 250, 400))
		w := float64(randRange(rng, 120, 180))
		lvl.Platforms = append(lvl.Platforms, Platform{
			Rect: core.NewRect(x, y, w, windowsillH),
			Kind: PlatformWindowsill,
		})
	}
}

// bucketPlatforms partitions the non-floor platforms by height band.
func bucketPlatforms(lvl *Level) (high, mid, low []core.Rect) {
	for _, p := range lvl.Platforms {
		if p.Kind == PlatformFloor {
			continue
		}
		switch {
		case p.Rect.Y < 300:
			high = append(high, p.Rect)
		case p.Rect.Y < 450:
			mid = append(mid, p.Rect)
		default:
			low = append(low, p.Rect)
		}
	}
	return high, mid, low
}

// platformSpot picks a random spot on p clear of its edges, at height dy
// above the surface.
func platformSpot(rng *rand.Rand, p core.Rect, dy float64) (float64, float64) {
	x := p.X + float64(randRange(rng, 10, core.Max(10, int(p.W)-58)))
	return x, p.Y - dy
}

// placeTreats distributes treats one third per height band, with a fixed
// height fallback for an empty band, then sprinkles the remainder mostly
// onto platforms.
func placeTreats(rng *rand.Rand, cfg config.GameConfig, lvl *Level) {
	count := randRange(rng, cfg.Level.TreatMin, cfg.Level.TreatMax)
	high, mid, low := bucketPlatforms(lvl)

	addTreat := func(x, y float64) {
		lvl.Collectibles = append(lvl.Collectibles, Collectible{
			Rect: core.NewRect(x, y, treatW, treatH),
			Kind: CollectTreat,
		})
	}

	perBand := count / 3
	bands := []struct {
		platforms []core.Rect
		fallbackY func() float64
	}{
		{high, func() float64 { return float64(randRange(rng, 200, 280)) }},
		{mid, func() float64 { return float64(randRange(rng, 350, 430)) }},
		{low, func() float64 { return 500 }},
	}

	for _, band := range bands {
		for i := 0; i < perBand; i++ {
			if len(band.platforms) > 0 {
				p := band.platforms[rng.Intn(len(band.platforms))]
				x, y := platformSpot(rng, p, 35)
				addTreat(x, y)
			} else {
				addTreat(float64(randRange(rng, 100, lvl.Length-100)), band.fallbackY())
			}
		}
	}

	nonFloor := append(append(append([]core.Rect(nil), high...), mid...), low...)
	for i := 0; i < count-perBand*3; i++ {
		if rng.Float64() < 0.8 && len(nonFloor) > 0 {
			p := nonFloor[rng.Intn(len(nonFloor))]
			x, y := platformSpot(rng, p, 35)
			addTreat(x, y)
		} else {
			addTreat(float64(randRange(rng, 100, lvl.Length-100)), 500)
		}
	}
}

// placePlants spreads plants across height bands: two high, two mid, two
// on any non-floor platform, the rest on the ground. A tier whose band is
// empty places on the ground instead.
func placePlants(rng *rand.Rand, cfg config.GameConfig, lvl *Level) {
	count := randRange(rng, cfg.Level.PlantMin, cfg.Level.PlantMax)
	high, mid, low := bucketPlatforms(lvl)
	nonFloor := append(append(append([]core.Rect(nil), high...), mid...), low...)

	for i := 0; i < count; i++ {
		var pool []core.Rect
		switch {
		case i < 2:
			pool = high
		case i < 4:
			pool = mid
		case i < 6:
			pool = nonFloor
		}

		var x, y float64
		if len(pool) > 0 {
			x, y = platformSpot(rng, pool[rng.Intn(len(pool))], 50)
		} else {
			x = float64(randRange(rng, 100, lvl.Length-100))
			y = 500
		}
		lvl.Collectibles = append(lvl.Collectibles, Collectible{
			Rect: core.NewRect(x, y, plantW, plantH),
			Kind: CollectPlant,
		})
	}
}

// placePickups sets the two character unlocks: Florence near 30% of the
// level, Sue near 60%. Each sits above a platform near its target x, or
// at a fixed height when none is close enough.
func placePickups(rng *rand.Rand, lvl *Level, florenceX, sueX float64) {
	place := func(targetX float64, name CharacterName) {
		x := targetX + float64(randRange(rng, -100, 100))

		var nearby []core.Rect
		for _, p := range lvl.Platforms {
			if math.Abs(p.Rect.X-x) < 200 {
				nearby = append(nearby, p.Rect)
			}
		}
		y := 470.0
		if len(nearby) > 0 {
			y = nearby[rng.Intn(len(nearby))].Y - 80
		}

		lvl.Collectibles = append(lvl.Collectibles, Collectible{
			Rect:      core.NewRect(x, y, pickupW, pickupH),
			Kind:      CollectCharacter,
			Character: name,
		})
	}
	place(florenceX, CharFlorence)
	place(sueX, CharSue)
}

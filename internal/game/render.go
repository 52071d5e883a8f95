package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/catnip-games/omas-adventure/internal/core"
)

// World glyphs. Every entity is drawable without external art.
const (
	floorGlyph      = '█'
	furnitureGlyph  = '▓'
	shelfGlyph      = '─'
	windowsillGlyph = '═'
	bedGlyph        = '▒'
	treatGlyph      = '∞' // dog bone
	plantGlyph      = '♣'
	enemyGlyph      = 'x'
	meowGlyph       = ')'
	meowLeftGlyph   = '('
	hairballGlyph   = '●'
	poundGlyph      = '▼'
	playerGlyph     = '@'
)

// furnitureColor maps a platform kind to its tint.
func furnitureColor(kind PlatformKind) core.Color {
	switch kind {
	case PlatformTable, PlatformBookshelf:
		return core.ColorOrange
	case PlatformSofa, PlatformLeatherCouch:
		return core.ColorRed
	case PlatformGreyCouch:
		return core.ColorGray
	case PlatformChair:
		return core.ColorYellow
	case PlatformShelf:
		return core.ColorWhite
	case PlatformWindowsill:
		return core.ColorCyan
	default:
		return core.ColorDefault
	}
}

// characterColor is the tint each cat is drawn in.
func characterColor(name CharacterName) core.Color {
	switch name {
	case CharShoogie:
		return core.ColorBrightYellow
	case CharFlorence:
		return core.ColorOrange
	case CharSue:
		return core.ColorBrightWhite
	default:
		return core.ColorDefault
	}
}

// Render draws the world onto dst, projecting level space through the
// camera onto the cell grid, and overlays the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, p := range g.level.Platforms {
		switch p.Kind {
		case PlatformBedWall:
			// Collision only, never drawn.
		case PlatformFloor:
			g.fillWorldRect(dst, p.Rect, floorGlyph, core.ColorGray)
		case PlatformShelf:
			g.fillWorldRect(dst, p.Rect, shelfGlyph, furnitureColor(p.Kind))
		case PlatformWindowsill:
			g.fillWorldRect(dst, p.Rect, windowsillGlyph, furnitureColor(p.Kind))
		default:
			g.fillWorldRect(dst, p.Rect, furnitureGlyph, furnitureColor(p.Kind))
		}
	}

	for i := range g.level.Collectibles {
		c := &g.level.Collectibles[i]
		if c.Collected {
			continue
		}
		switch c.Kind {
		case CollectTreat:
			g.fillWorldRect(dst, c.Rect, treatGlyph, core.ColorBrightYellow)
		case CollectPlant:
			g.fillWorldRect(dst, c.Rect, plantGlyph, core.ColorGreen)
		case CollectCharacter:
			// Hovering pickup, drawn as the cat's initial.
			bob := c.Rect.Translated(0, math.Sin(c.BobTimer)*5)
			g.fillWorldRect(dst, bob, rune(c.Character[0]), characterColor(c.Character))
		}
	}

	for _, e := range g.enemies {
		g.fillWorldRect(dst, e.Rect, enemyGlyph, core.ColorBrightRed)
	}

	for _, p := range g.player.Projectiles {
		glyph := meowGlyph
		col := core.ColorBrightCyan
		if p.Kind == AttackHairball {
			glyph = hairballGlyph
			col = core.ColorOrange
		} else if p.Dir < 0 {
			glyph = meowLeftGlyph
		}
		g.fillWorldRect(dst, p.Rect, glyph, col)
	}
	for _, gp := range g.player.Pounds {
		g.fillWorldRect(dst, gp.Rect, poundGlyph, core.ColorGray)
	}

	playerCol := core.ColorBrightYellow
	if len(g.player.Roster) > 0 {
		playerCol = characterColor(g.player.ActiveChar().Name)
	}
	g.fillWorldRect(dst, g.player.Rect, playerGlyph, playerCol)

	g.fillWorldRect(dst, g.level.Bed, bedGlyph, core.ColorMagenta)

	g.renderHUD(dst)
}

// fillWorldRect paints the projection of world rect r with one glyph.
// Degenerate projections still get one cell, so small entities never
// vanish on coarse grids.
func (g *Game) fillWorldRect(dst *core.Screen, r core.Rect, ch rune, col core.Color) {
	x0 := g.projectX(dst, r.X)
	x1 := g.projectX(dst, r.Right())
	y0 := g.projectY(dst, r.Y)
	y1 := g.projectY(dst, r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	dst.FillRect(x0, y0, x1-x0, y1-y0, ch, col)
}

// projectX maps a world x through the camera onto a cell column.
func (g *Game) projectX(dst *core.Screen, wx float64) int {
	return int((wx - g.camera.X) * float64(dst.Width()) / g.cfg.World.Width)
}

// projectY maps a world y onto a cell row.
func (g *Game) projectY(dst *core.Screen, wy float64) int {
	return int(wy * float64(dst.Height()) / g.cfg.World.Height)
}

// renderHUD draws score, treats, round, the roster with lives, and any
// live power-ups across the top rows.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Treats: %d  Round: %d ", g.roundScore, g.treats, g.round)
	dst.DrawTextWithColor(0, 0, hud, core.ColorWhite)

	// Roster with lives; the active cat is bracketed.
	x := len(hud) + 1
	for i, ch := range g.player.Roster {
		label := fmt.Sprintf("%s:%d", ch.Name, ch.Lives)
		col := core.ColorGray
		if i == g.player.Active {
			label = "[" + label + "]"
			col = characterColor(ch.Name)
		}
		dst.DrawTextWithColor(x, 0, label, col)
		x += len(label) + 1
	}

	var ups []string
	if g.player.SpeedBoost > 0 {
		ups = append(ups, fmt.Sprintf("Boost %ds", g.player.SpeedBoost/60+1))
	}
	if g.player.OmniCharges > 0 {
		ups = append(ups, fmt.Sprintf("Omni x%d", g.player.OmniCharges))
	}
	if g.player.TreatCount > 0 {
		ups = append(ups, fmt.Sprintf("Jump +%d%%", g.player.TreatCount*2))
	}
	if len(ups) > 0 {
		dst.DrawTextWithColor(1, 1, strings.Join(ups, "  "), core.ColorBrightGreen)
	}
}

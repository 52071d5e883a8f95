package game

import (
	"github.com/catnip-games/omas-adventure/internal/core"
)

const (
	meowW, meowH         = 40.0, 30.0
	hairballW, hairballH = 24.0, 24.0
	poundW, poundH       = 60.0, 60.0

	hairballLaunchVY = -4.0
	hairballGravity  = 0.3 // fraction of world gravity
)

// Projectile is a live attack in flight: a Shoogie meow wave or a
// Florence hairball. Meow waves fly straight and expire by lifetime;
// hairballs arc under reduced gravity and live until they leave play.
type Projectile struct {
	Kind     AttackKind
	Rect     core.Rect
	VX, VY   float64
	Dir      float64 // horizontal facing, < 0 means left
	Lifetime int     // frames remaining, meow waves only
}

// Update moves the projectile one frame.
func (p *Projectile) Update(gravity float64) {
	switch p.Kind {
	case AttackHairball:
		p.Rect.X += p.VX
		p.VY += gravity * hairballGravity
		p.Rect.Y += p.VY
	case AttackMeow:
		p.Rect.X += p.VX
		p.Rect.Y += p.VY
		p.Lifetime--
	}
}

// Expired reports whether a meow wave has run out of lifetime.
func (p *Projectile) Expired() bool {
	return p.Kind == AttackMeow && p.Lifetime <= 0
}

// GroundPound is Sue's attack effect: a shockwave dropped from her feet
// that falls straight down, destroying every enemy it touches until it
// leaves the level.
type GroundPound struct {
	Rect core.Rect
	VY   float64
}

// Update drops the effect one frame.
func (g *GroundPound) Update() {
	g.Rect.Y += g.VY
}

package game

import (
	"math"
	"time"

	"github.com/catnip-games/omas-adventure/internal/config"
	"github.com/catnip-games/omas-adventure/internal/core"
)

// allCharacters returns the full cast in unlock order with the configured
// life count. Jump multipliers are per character: Florence jumps highest,
// Sue trades height for the double jump.
func allCharacters(lives int) []Character {
	return []Character{
		{Name: CharShoogie, Attack: AttackMeow, JumpMult: 1.0, Lives: lives},
		{Name: CharFlorence, Attack: AttackHairball, JumpMult: 1.2, Lives: lives},
		{Name: CharSue, Attack: AttackPound, JumpMult: 1.1, Lives: lives},
	}
}

// characterTemplate returns the stat block for name.
func characterTemplate(name CharacterName, lives int) (Character, bool) {
	for _, c := range allCharacters(lives) {
		if c.Name == name {
			return c, true
		}
	}
	return Character{}, false
}

// Player carries the roster of unlocked cats and everything that belongs
// to the player side of the simulation: movement state, input buffers,
// live attacks, and power-up counters. Power-ups persist across character
// switches; they only act while the matching character is active.
type Player struct {
	Rect   core.Rect
	VX, VY float64

	Roster []Character // unlocked, in unlock order
	Active int         // index into Roster

	FacingRight  bool
	Grounded     bool
	DoubleJumped bool

	JumpBuffer     int // frames a buffered jump press stays valid
	SwitchDebounce int // frames until the next switch is accepted

	SpinTimer  int // Sue pound pose
	AttackAnim int // attack pose, any character
	lastAttack time.Time

	SpeedBoost  int // Florence, frames remaining
	JumpBoost   int // Florence, frames remaining
	OmniCharges int // Shoogie
	TreatCount  int // Sue

	Projectiles []*Projectile
	Pounds      []*GroundPound
}

// NewPlayer spawns a fresh player at the configured spawn point with only
// Shoogie unlocked.
func NewPlayer(cfg config.GameConfig) *Player {
	all := allCharacters(cfg.Player.Lives)
	return &Player{
		Rect:        core.NewRect(cfg.Player.SpawnX, cfg.Player.SpawnY, cfg.Player.Width, cfg.Player.Height),
		Roster:      []Character{all[0]},
		FacingRight: true,
	}
}

// ActiveChar returns the character currently being played.
func (p *Player) ActiveChar() *Character {
	return &p.Roster[p.Active]
}

// Unlock adds name to the roster with fresh lives. Reports whether the
// character was newly added.
func (p *Player) Unlock(name CharacterName, lives int) bool {
	for _, c := range p.Roster {
		if c.Name == name {
			return false
		}
	}
	tmpl, ok := characterTemplate(name, lives)
	if !ok {
		return false
	}
	p.Roster = append(p.Roster, tmpl)
	return true
}

// SwitchTo selects roster index i and returns the switch event for
// analytics, or nil when i is out of range or already active.
func (p *Player) SwitchTo(i int) *SwitchEvent {
	if i < 0 || i >= len(p.Roster) || i == p.Active {
		return nil
	}
	ev := &SwitchEvent{From: p.ActiveChar().Name, To: p.Roster[i].Name}
	p.Active = i
	return ev
}

// RemoveActive drops the active character from the roster. The selection
// index stays put, so play passes to the next cat in unlock order,
// wrapping to the front when the dead cat was last. Reports whether any
// characters remain.
func (p *Player) RemoveActive() bool {
	p.Roster = append(p.Roster[:p.Active], p.Roster[p.Active+1:]...)
	if len(p.Roster) == 0 {
		return false
	}
	if p.Active >= len(p.Roster) {
		p.Active = 0
	}
	return true
}

// Control applies one frame of movement, jump, and switch intents.
// Attacks are handled separately by Attack. Returns the switch event if a
// character switch happened this frame.
func (p *Player) Control(in core.InputFrame, cfg *config.GameConfig) *SwitchEvent {
	speed := cfg.Player.Speed
	switch {
	case p.ActiveChar().Name == CharSue:
		speed *= 1.3
	case p.ActiveChar().Name == CharFlorence && p.SpeedBoost > 0:
		speed *= 2
	}

	p.VX = 0
	if in.Has(core.ActionLeft) {
		p.VX = -speed
		p.FacingRight = false
	}
	if in.Has(core.ActionRight) {
		p.VX = speed
		p.FacingRight = true
	}

	// A jump press stays valid for a short window, so a press just
	// before landing still fires on touchdown.
	if in.Has(core.ActionJump) {
		p.JumpBuffer = cfg.Player.JumpBufferFrames
	}
	if p.JumpBuffer > 0 {
		p.JumpBuffer--
		p.tryJump(cfg)
	}

	var ev *SwitchEvent
	if p.SwitchDebounce > 0 {
		p.SwitchDebounce--
	}
	if in.Has(core.ActionSwitch) && p.SwitchDebounce == 0 && len(p.Roster) > 1 {
		ev = p.SwitchTo((p.Active + 1) % len(p.Roster))
		p.SwitchDebounce = cfg.Player.SwitchDebounceFrames
	}
	return ev
}

// tryJump consumes the jump buffer if the player can jump right now.
// Sue alone gets a weaker second jump while airborne.
func (p *Player) tryJump(cfg *config.GameConfig) {
	ch := p.ActiveChar()
	switch {
	case p.Grounded:
		mult := ch.JumpMult
		if ch.Name == CharFlorence && p.JumpBoost > 0 {
			mult *= 1.5
		} else if ch.Name == CharSue && p.TreatCount > 0 {
			mult *= 1 + float64(p.TreatCount)*0.02
		}
		p.VY = cfg.Physics.JumpStrength * mult
		p.DoubleJumped = false
		p.JumpBuffer = 0
	case ch.Name == CharSue && !p.DoubleJumped:
		mult := ch.JumpMult * 0.8
		if p.TreatCount > 0 {
			mult *= 1 + float64(p.TreatCount)*0.02
		}
		p.VY = cfg.Physics.JumpStrength * mult
		p.DoubleJumped = true
		p.JumpBuffer = 0
	}
}

// StepPhysics integrates one frame of movement against the platforms:
// horizontal move and push-out, then gravity, vertical move and push-out.
// Landing zeroes fall speed, sets grounded, and restores the double jump.
// The player can never pass the camera's left edge.
func (p *Player) StepPhysics(cfg *config.GameConfig, platforms []Platform, cameraX float64) {
	p.Rect.X += p.VX
	for _, plat := range platforms {
		if !p.Rect.Intersects(plat.Rect) {
			continue
		}
		if p.VX > 0 {
			p.Rect.X = plat.Rect.X - p.Rect.W
		} else if p.VX < 0 {
			p.Rect.X = plat.Rect.Right()
		}
	}

	p.VY += cfg.Physics.Gravity
	p.Rect.Y += p.VY

	p.Grounded = false
	for _, plat := range platforms {
		if !p.Rect.Intersects(plat.Rect) {
			continue
		}
		if p.VY > 0 {
			p.Rect.Y = plat.Rect.Y - p.Rect.H
			p.VY = 0
			p.Grounded = true
			p.DoubleJumped = false
		} else if p.VY < 0 {
			p.Rect.Y = plat.Rect.Bottom()
			p.VY = 0
		}
	}

	if p.Rect.X < cameraX {
		p.Rect.X = cameraX
	}

	if p.SpinTimer > 0 {
		p.SpinTimer--
	}
	if p.AttackAnim > 0 {
		p.AttackAnim--
	}
	if p.SpeedBoost > 0 {
		p.SpeedBoost--
	}
	if p.JumpBoost > 0 {
		p.JumpBoost--
	}
}

// Attack fires the active character's attack. Issuance is rate-limited by
// wall-clock time, so frame rate does not change attack cadence.
func (p *Player) Attack(clock core.Clock, cfg *config.GameConfig) {
	now := clock.Now()
	if now.Sub(p.lastAttack) < time.Duration(cfg.Player.AttackCooldownMS)*time.Millisecond {
		return
	}
	p.lastAttack = now
	p.AttackAnim = cfg.Attacks.AnimationFrames

	cx, cy := p.Rect.Center()
	dir := 1.0
	if !p.FacingRight {
		dir = -1
	}

	switch p.ActiveChar().Attack {
	case AttackHairball:
		p.Projectiles = append(p.Projectiles, &Projectile{
			Kind: AttackHairball,
			Rect: core.NewRect(cx, cy, hairballW, hairballH),
			VX:   cfg.Attacks.HairballSpeed * dir,
			VY:   hairballLaunchVY,
			Dir:  dir,
		})
	case AttackMeow:
		if p.OmniCharges > 0 {
			// Spend a banked charge: eight waves at 45 degree steps.
			p.OmniCharges--
			for i := 0; i < 8; i++ {
				angle := float64(i) * 45 * math.Pi / 180
				p.Projectiles = append(p.Projectiles, &Projectile{
					Kind:     AttackMeow,
					Rect:     core.NewRect(cx, cy, meowW, meowH),
					VX:       cfg.Attacks.MeowSpeed * math.Cos(angle),
					VY:       cfg.Attacks.MeowSpeed * math.Sin(angle),
					Dir:      math.Cos(angle),
					Lifetime: cfg.Attacks.OmniMeowLifetime,
				})
			}
		} else {
			p.Projectiles = append(p.Projectiles, &Projectile{
				Kind:     AttackMeow,
				Rect:     core.NewRect(cx, cy, meowW, meowH),
				VX:       cfg.Attacks.MeowSpeed * dir,
				Dir:      dir,
				Lifetime: cfg.Attacks.MeowLifetime,
			})
		}
	case AttackPound:
		p.SpinTimer = cfg.Attacks.SpinFrames
		p.Pounds = append(p.Pounds, &GroundPound{
			Rect: core.NewRect(cx-poundW/2, p.Rect.Bottom(), poundW, poundH),
			VY:   cfg.Attacks.PoundFallSpeed,
		})
	}
}

// CollectTreat credits Sue's jump bonus when she is the one eating.
func (p *Player) CollectTreat() {
	if p.ActiveChar().Name == CharSue {
		p.TreatCount++
	}
}

// ActivatePlantBoost arms Florence's twin speed and jump boosts when she
// is active; any other cat wastes the plant.
func (p *Player) ActivatePlantBoost(frames int) {
	if p.ActiveChar().Name == CharFlorence {
		p.SpeedBoost = frames
		p.JumpBoost = frames
	}
}

// BankOmniCharge gives Shoogie one omnidirectional meow.
func (p *Player) BankOmniCharge() {
	if p.ActiveChar().Name == CharShoogie {
		p.OmniCharges++
	}
}

package game

import (
	"math"
	"testing"
	"time"

	"github.com/catnip-games/omas-adventure/internal/config"
	"github.com/catnip-games/omas-adventure/internal/core"
)

// manualClock returns a fixed instant until the test moves it.
type manualClock struct{ t time.Time }

func (c *manualClock) Now() time.Time { return c.t }

func TestJumpBufferFiresOnLanding(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)

	// Press jump in midair: nothing fires, the press is buffered.
	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	p.Control(jump, &cfg)
	if p.VY != 0 {
		t.Fatalf("airborne jump fired, VY=%v", p.VY)
	}

	// Two coasting frames, then touch down inside the buffer window.
	empty := core.NewInputFrame()
	p.Control(empty, &cfg)
	p.Control(empty, &cfg)
	p.Grounded = true
	p.Control(empty, &cfg)

	if p.VY != cfg.Physics.JumpStrength {
		t.Errorf("buffered jump on landing: VY=%v, want %v", p.VY, cfg.Physics.JumpStrength)
	}
	if p.JumpBuffer != 0 {
		t.Errorf("buffer = %d, want consumed", p.JumpBuffer)
	}
}

func TestJumpBufferExpires(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	p.Control(jump, &cfg)

	// Burn the whole window in the air.
	empty := core.NewInputFrame()
	for i := 0; i < cfg.Player.JumpBufferFrames-1; i++ {
		p.Control(empty, &cfg)
	}
	if p.JumpBuffer != 0 {
		t.Fatalf("buffer = %d, want exhausted", p.JumpBuffer)
	}

	p.Grounded = true
	p.Control(empty, &cfg)
	if p.VY != 0 {
		t.Errorf("expired press fired a jump, VY=%v", p.VY)
	}
}

func TestSueDoubleJump(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.Unlock(CharSue, cfg.Player.Lives)
	p.SwitchTo(1)
	p.TreatCount = 5

	// Ground jump: Sue's multiplier times the treat bonus.
	p.Grounded = true
	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	p.Control(jump, &cfg)

	want := cfg.Physics.JumpStrength * 1.1 * (1 + 5*0.02)
	if math.Abs(p.VY-want) > 1e-9 {
		t.Errorf("ground jump VY=%v, want %v", p.VY, want)
	}

	// Second press in midair fires at 80% strength.
	p.Grounded = false
	p.Control(jump, &cfg)

	want = cfg.Physics.JumpStrength * (1.1 * 0.8) * (1 + 5*0.02)
	if math.Abs(p.VY-want) > 1e-9 {
		t.Errorf("double jump VY=%v, want %v", p.VY, want)
	}
	if !p.DoubleJumped {
		t.Error("double jump flag not set")
	}

	// A third midair press does nothing.
	p.VY = 0
	p.Control(jump, &cfg)
	if p.VY != 0 {
		t.Errorf("third midair jump fired, VY=%v", p.VY)
	}
}

func TestDoubleJumpOnlySue(t *testing.T) {
	cfg := config.DefaultConfig()

	for _, name := range []CharacterName{CharShoogie, CharFlorence} {
		p := NewPlayer(cfg)
		p.Unlock(CharFlorence, cfg.Player.Lives)
		if name == CharFlorence {
			p.SwitchTo(1)
		}

		jump := core.NewInputFrame()
		jump.Set(core.ActionJump)
		p.Control(jump, &cfg)
		if p.VY != 0 {
			t.Errorf("%s jumped in midair, VY=%v", name, p.VY)
		}
	}
}

func TestFlorenceBoostedJump(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.Unlock(CharFlorence, cfg.Player.Lives)
	p.SwitchTo(1)
	p.JumpBoost = 100
	p.Grounded = true

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	p.Control(jump, &cfg)

	want := cfg.Physics.JumpStrength * 1.2 * 1.5
	if math.Abs(p.VY-want) > 1e-9 {
		t.Errorf("boosted jump VY=%v, want %v", p.VY, want)
	}
}

func TestCharacterSpeeds(t *testing.T) {
	cfg := config.DefaultConfig()
	right := core.NewInputFrame()
	right.Set(core.ActionRight)

	p := NewPlayer(cfg)
	p.Control(right, &cfg)
	if p.VX != cfg.Player.Speed {
		t.Errorf("Shoogie VX=%v, want %v", p.VX, cfg.Player.Speed)
	}
	if !p.FacingRight {
		t.Error("moving right should face right")
	}

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	p.Control(left, &cfg)
	if p.VX != -cfg.Player.Speed {
		t.Errorf("Shoogie VX=%v, want %v", p.VX, -cfg.Player.Speed)
	}
	if p.FacingRight {
		t.Error("moving left should face left")
	}

	p.Unlock(CharSue, cfg.Player.Lives)
	p.SwitchTo(1)
	p.Control(right, &cfg)
	if want := cfg.Player.Speed * 1.3; p.VX != want {
		t.Errorf("Sue VX=%v, want %v", p.VX, want)
	}

	p2 := NewPlayer(cfg)
	p2.Unlock(CharFlorence, cfg.Player.Lives)
	p2.SwitchTo(1)
	p2.Control(right, &cfg)
	if p2.VX != cfg.Player.Speed {
		t.Errorf("Florence VX=%v, want %v without a boost", p2.VX, cfg.Player.Speed)
	}
	p2.SpeedBoost = 100
	p2.Control(right, &cfg)
	if want := cfg.Player.Speed * 2; p2.VX != want {
		t.Errorf("boosted Florence VX=%v, want %v", p2.VX, want)
	}
}

func TestSwitchDebounce(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.Unlock(CharFlorence, cfg.Player.Lives)

	sw := core.NewInputFrame()
	sw.Set(core.ActionSwitch)

	// Holding the key produces one switch per debounce window.
	switches := 0
	for i := 0; i < 11; i++ {
		if ev := p.Control(sw, &cfg); ev != nil {
			switches++
		}
	}
	if switches != 2 {
		t.Errorf("held switch fired %d times over 11 frames, want 2", switches)
	}
	if p.Active != 0 {
		t.Errorf("active = %d, want back on 0 after two switches", p.Active)
	}
}

func TestSwitchEventNamesCats(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.Unlock(CharFlorence, cfg.Player.Lives)
	p.Unlock(CharSue, cfg.Player.Lives)

	ev := p.SwitchTo(2)
	if ev == nil || ev.From != CharShoogie || ev.To != CharSue {
		t.Errorf("switch event = %+v, want Shoogie to Sue", ev)
	}
	if ev := p.SwitchTo(5); ev != nil {
		t.Errorf("out-of-range switch = %+v, want nil", ev)
	}
	if ev := p.SwitchTo(2); ev != nil {
		t.Errorf("switch to the active cat = %+v, want nil", ev)
	}
}

func TestLandingRestoresDoubleJump(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.Unlock(CharSue, cfg.Player.Lives)
	p.SwitchTo(1)

	floor := []Platform{{Rect: core.NewRect(0, 550, 2000, 50), Kind: PlatformFloor}}
	p.DoubleJumped = true
	p.Rect.Y = 480
	p.VY = 10

	p.StepPhysics(&cfg, floor, 0)

	if !p.Grounded {
		t.Fatal("player should have landed")
	}
	if p.DoubleJumped {
		t.Error("landing should restore the double jump")
	}
	if want := 550 - p.Rect.H; p.Rect.Y != want {
		t.Errorf("player rests at y=%v, want %v", p.Rect.Y, want)
	}
	if p.VY != 0 {
		t.Errorf("fall speed = %v, want 0 after landing", p.VY)
	}
}

func TestHeadBumpStopsRise(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)

	shelf := []Platform{{Rect: core.NewRect(80, 320, 200, 20), Kind: PlatformShelf}}
	p.Rect.Y = 345
	p.VY = -10

	p.StepPhysics(&cfg, shelf, 0)

	if p.Rect.Y != 340 {
		t.Errorf("player pushed to y=%v, want 340 under the shelf", p.Rect.Y)
	}
	if p.VY != 0 {
		t.Errorf("rise should stop on the bump, VY=%v", p.VY)
	}
}

func TestWallPushOut(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)

	wall := []Platform{{Rect: core.NewRect(200, 380, 50, 120), Kind: PlatformBookshelf}}
	p.Rect = core.NewRect(150, 400, 64, 64)
	p.VX = 5

	p.StepPhysics(&cfg, wall, 0)

	if want := 200 - p.Rect.W; p.Rect.X != want {
		t.Errorf("player pushed to x=%v, want %v against the wall", p.Rect.X, want)
	}
}

func TestPlayerBlockedAtCameraEdge(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.Rect.X = 480
	p.VX = -cfg.Player.Speed

	p.StepPhysics(&cfg, nil, 500)

	if p.Rect.X != 500 {
		t.Errorf("player at x=%v, want held at the camera edge 500", p.Rect.X)
	}
}

func TestBoostsTickDown(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.SpeedBoost = 2
	p.JumpBoost = 1
	p.SpinTimer = 3
	p.AttackAnim = 1

	p.StepPhysics(&cfg, nil, 0)

	if p.SpeedBoost != 1 || p.JumpBoost != 0 || p.SpinTimer != 2 || p.AttackAnim != 0 {
		t.Errorf("timers = %d/%d/%d/%d, want 1/0/2/0",
			p.SpeedBoost, p.JumpBoost, p.SpinTimer, p.AttackAnim)
	}
}

func TestAttackCooldown(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	clock := &manualClock{t: time.Unix(100, 0)}

	p.Attack(clock, &cfg)
	if len(p.Projectiles) != 1 {
		t.Fatalf("first attack fired %d projectiles, want 1", len(p.Projectiles))
	}
	if p.AttackAnim != cfg.Attacks.AnimationFrames {
		t.Errorf("attack animation = %d, want %d", p.AttackAnim, cfg.Attacks.AnimationFrames)
	}

	// Inside the cooldown nothing fires, at the boundary it does.
	clock.t = clock.t.Add(299 * time.Millisecond)
	p.Attack(clock, &cfg)
	if len(p.Projectiles) != 1 {
		t.Errorf("attack inside the cooldown fired, %d projectiles", len(p.Projectiles))
	}
	clock.t = clock.t.Add(1 * time.Millisecond)
	p.Attack(clock, &cfg)
	if len(p.Projectiles) != 2 {
		t.Errorf("attack at the cooldown boundary blocked, %d projectiles", len(p.Projectiles))
	}
}

func TestMeowWave(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.FacingRight = false
	clock := &manualClock{t: time.Unix(100, 0)}

	p.Attack(clock, &cfg)
	if len(p.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(p.Projectiles))
	}

	m := p.Projectiles[0]
	if m.Kind != AttackMeow {
		t.Errorf("kind = %v, want meow", m.Kind)
	}
	if m.VX != -cfg.Attacks.MeowSpeed {
		t.Errorf("wave VX=%v, want %v facing left", m.VX, -cfg.Attacks.MeowSpeed)
	}
	if m.Lifetime != cfg.Attacks.MeowLifetime {
		t.Errorf("lifetime = %d, want %d", m.Lifetime, cfg.Attacks.MeowLifetime)
	}
	cx, cy := p.Rect.Center()
	if m.Rect.X != cx || m.Rect.Y != cy {
		t.Errorf("wave starts at (%v, %v), want the player center (%v, %v)", m.Rect.X, m.Rect.Y, cx, cy)
	}

	for i := 0; i < cfg.Attacks.MeowLifetime; i++ {
		if m.Expired() {
			t.Fatalf("wave expired early at frame %d", i)
		}
		m.Update(cfg.Physics.Gravity)
	}
	if !m.Expired() {
		t.Error("wave should expire after its lifetime")
	}
}

func TestHairballArcs(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.Unlock(CharFlorence, cfg.Player.Lives)
	p.SwitchTo(1)
	clock := &manualClock{t: time.Unix(100, 0)}

	p.Attack(clock, &cfg)
	if len(p.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(p.Projectiles))
	}

	hb := p.Projectiles[0]
	if hb.Kind != AttackHairball {
		t.Errorf("kind = %v, want hairball", hb.Kind)
	}
	if hb.VX != cfg.Attacks.HairballSpeed {
		t.Errorf("VX=%v, want %v", hb.VX, cfg.Attacks.HairballSpeed)
	}
	if hb.VY != -4 {
		t.Errorf("launch VY=%v, want -4", hb.VY)
	}

	// Reduced gravity pulls the arc down a little each frame.
	x0 := hb.Rect.X
	hb.Update(cfg.Physics.Gravity)
	if hb.Rect.X != x0+cfg.Attacks.HairballSpeed {
		t.Errorf("hairball x=%v, want %v", hb.Rect.X, x0+cfg.Attacks.HairballSpeed)
	}
	want := -4 + cfg.Physics.Gravity*0.3
	if math.Abs(hb.VY-want) > 1e-9 {
		t.Errorf("VY after one frame = %v, want %v", hb.VY, want)
	}
	if hb.Expired() {
		t.Error("hairballs do not time out")
	}
}

func TestOmniMeowSpendsCharge(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.OmniCharges = 2
	clock := &manualClock{t: time.Unix(100, 0)}

	p.Attack(clock, &cfg)

	if p.OmniCharges != 1 {
		t.Errorf("charges = %d, want 1 after spending one", p.OmniCharges)
	}
	if len(p.Projectiles) != 8 {
		t.Fatalf("omni burst fired %d waves, want 8", len(p.Projectiles))
	}
	for i, w := range p.Projectiles {
		if w.Lifetime != cfg.Attacks.OmniMeowLifetime {
			t.Errorf("wave %d lifetime = %d, want %d", i, w.Lifetime, cfg.Attacks.OmniMeowLifetime)
		}
		if speed := math.Hypot(w.VX, w.VY); math.Abs(speed-cfg.Attacks.MeowSpeed) > 1e-9 {
			t.Errorf("wave %d speed = %v, want %v", i, speed, cfg.Attacks.MeowSpeed)
		}
		angle := float64(i) * 45 * math.Pi / 180
		if math.Abs(w.VX-cfg.Attacks.MeowSpeed*math.Cos(angle)) > 1e-9 {
			t.Errorf("wave %d VX=%v, want along the %d degree ray", i, w.VX, i*45)
		}
	}
}

func TestPoundDropsFromFeet(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.Unlock(CharSue, cfg.Player.Lives)
	p.SwitchTo(1)
	clock := &manualClock{t: time.Unix(100, 0)}

	p.Attack(clock, &cfg)
	if len(p.Pounds) != 1 {
		t.Fatalf("pounds = %d, want 1", len(p.Pounds))
	}

	gp := p.Pounds[0]
	cx, _ := p.Rect.Center()
	if gp.Rect.X != cx-30 {
		t.Errorf("pound x=%v, want centered under the player at %v", gp.Rect.X, cx-30)
	}
	if gp.Rect.Y != p.Rect.Bottom() {
		t.Errorf("pound y=%v, want the player's feet %v", gp.Rect.Y, p.Rect.Bottom())
	}
	if gp.VY != cfg.Attacks.PoundFallSpeed {
		t.Errorf("VY=%v, want %v", gp.VY, cfg.Attacks.PoundFallSpeed)
	}
	if p.SpinTimer != cfg.Attacks.SpinFrames {
		t.Errorf("spin timer = %d, want %d", p.SpinTimer, cfg.Attacks.SpinFrames)
	}

	y0 := gp.Rect.Y
	gp.Update()
	if gp.Rect.Y != y0+cfg.Attacks.PoundFallSpeed {
		t.Errorf("pound y=%v after one frame, want %v", gp.Rect.Y, y0+cfg.Attacks.PoundFallSpeed)
	}
}

func TestUnlockAndRosterOrder(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)

	if !p.Unlock(CharFlorence, cfg.Player.Lives) {
		t.Error("first Florence unlock failed")
	}
	if p.Unlock(CharFlorence, cfg.Player.Lives) {
		t.Error("repeat unlock reported true")
	}
	if p.Unlock("Garfield", cfg.Player.Lives) {
		t.Error("unknown cat unlocked")
	}
	if !p.Unlock(CharSue, cfg.Player.Lives) {
		t.Error("Sue unlock failed")
	}

	if len(p.Roster) != 3 {
		t.Fatalf("roster size = %d, want 3", len(p.Roster))
	}
	names := []CharacterName{CharShoogie, CharFlorence, CharSue}
	for i, want := range names {
		if p.Roster[i].Name != want {
			t.Errorf("roster[%d] = %s, want %s", i, p.Roster[i].Name, want)
		}
		if p.Roster[i].Lives != cfg.Player.Lives {
			t.Errorf("roster[%d] lives = %d, want %d", i, p.Roster[i].Lives, cfg.Player.Lives)
		}
	}
}

func TestRemoveActivePassesToNextCat(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.Unlock(CharFlorence, cfg.Player.Lives)
	p.Unlock(CharSue, cfg.Player.Lives)
	p.SwitchTo(1)

	// Florence dies: Sue, next in unlock order, takes over.
	if !p.RemoveActive() {
		t.Fatal("cats remain, RemoveActive should report true")
	}
	if p.ActiveChar().Name != CharSue {
		t.Errorf("active = %s, want Sue", p.ActiveChar().Name)
	}

	// Sue is last in the roster now, so removal wraps to the front.
	if !p.RemoveActive() {
		t.Fatal("cats remain, RemoveActive should report true")
	}
	if p.ActiveChar().Name != CharShoogie {
		t.Errorf("active = %s, want Shoogie", p.ActiveChar().Name)
	}

	// The last cat empties the roster.
	if p.RemoveActive() {
		t.Error("empty roster reported a survivor")
	}
	if len(p.Roster) != 0 {
		t.Errorf("roster size = %d, want 0", len(p.Roster))
	}
}

func TestPowerUpsGateOnActiveCat(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.Unlock(CharFlorence, cfg.Player.Lives)
	p.Unlock(CharSue, cfg.Player.Lives)

	// Shoogie holds omni charges but no treat or plant bonuses.
	p.CollectTreat()
	p.ActivatePlantBoost(cfg.Player.BoostFrames)
	p.BankOmniCharge()
	if p.TreatCount != 0 || p.SpeedBoost != 0 || p.JumpBoost != 0 {
		t.Errorf("Shoogie took power-ups: treats=%d boosts=%d/%d",
			p.TreatCount, p.SpeedBoost, p.JumpBoost)
	}
	if p.OmniCharges != 1 {
		t.Errorf("Shoogie omni charges = %d, want 1", p.OmniCharges)
	}

	// Florence takes plant boosts but cannot bank charges.
	p.SwitchTo(1)
	p.ActivatePlantBoost(cfg.Player.BoostFrames)
	p.BankOmniCharge()
	if p.SpeedBoost != cfg.Player.BoostFrames || p.JumpBoost != cfg.Player.BoostFrames {
		t.Errorf("Florence boosts = %d/%d, want %d", p.SpeedBoost, p.JumpBoost, cfg.Player.BoostFrames)
	}
	if p.OmniCharges != 1 {
		t.Errorf("charges = %d, want still 1 after Florence's kill", p.OmniCharges)
	}

	// Sue keeps treats.
	p.SwitchTo(2)
	p.CollectTreat()
	p.CollectTreat()
	if p.TreatCount != 2 {
		t.Errorf("Sue treat count = %d, want 2", p.TreatCount)
	}
}

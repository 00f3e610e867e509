package sim

import (
	"github.com/vovakirdan/ontop/internal/config"
	"github.com/vovakirdan/ontop/internal/core"
)

// Facing is the horizontal direction the player looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// DeathPhase is the player's position in the death sequence.
type DeathPhase int

const (
	Alive DeathPhase = iota
	DyingPrimary // Static death pose
	DyingSmoke   // Smoke animation
)

func (p DeathPhase) String() string {
	switch p {
	case DyingPrimary:
		return "dying"
	case DyingSmoke:
		return "smoke"
	default:
		return "alive"
	}
}

// Player is the user-controlled character.
type Player struct {
	Body
	Facing     Facing
	HasJavelin bool

	javelin    JavelinID // Owned javelin while it is out of hand
	phase      DeathPhase
	deathTimer float64
	smokeFrame int
	deathDone  bool
	walkFrame  int // Walk animation frame
	walkTicks  int // Ticks spent on the current walk frame
	cfg        config.PlayerConfig
}

// NewPlayer creates a player standing with its top-left corner at spawn.
func NewPlayer(spawn core.Vec, cfg config.PlayerConfig) *Player {
	return &Player{
		Body:       Body{Rect: core.NewRect(spawn.X, spawn.Y, cfg.Width, cfg.Height)},
		HasJavelin: true,
		javelin:    NoJavelin,
		cfg:        cfg,
	}
}

// Update advances the player one tick. Horizontal velocity follows the held
// directions (left wins when both are held), then gravity and the two-phase
// collision resolution run. A dying player only advances its death timers.
func (p *Player) Update(held core.InputFrame, reg *Registry, dt float64) {
	if p.phase != Alive {
		p.updateDeath(dt)
		return
	}

	p.Vel.X = 0
	switch {
	case held.Has(core.ActionLeft):
		p.Vel.X = -p.cfg.Speed
		p.Facing = FacingLeft
	case held.Has(core.ActionRight):
		p.Vel.X = p.cfg.Speed
		p.Facing = FacingRight
	}

	p.MoveX(reg)
	p.ApplyGravity(p.cfg.Gravity, p.cfg.MaxFallSpeed)
	p.MoveY(reg)

	p.animateWalk(held)
}

// animateWalk cycles the walk frames while a direction is held on the ground.
func (p *Player) animateWalk(held core.InputFrame) {
	moving := held.Has(core.ActionLeft) || held.Has(core.ActionRight)
	if !moving || !p.Grounded || p.cfg.WalkFrames <= 0 {
		p.walkFrame = 0
		p.walkTicks = 0
		return
	}
	p.walkTicks++
	if p.walkTicks >= p.cfg.WalkFrameTicks {
		p.walkTicks = 0
		p.walkFrame = (p.walkFrame + 1) % p.cfg.WalkFrames
	}
}

// Jump sets the jump velocity if the player stands on a platform.
// It returns whether the jump happened.
func (p *Player) Jump() bool {
	if p.phase != Alive || !p.Grounded {
		return false
	}
	p.Vel.Y = p.cfg.JumpVelocity
	p.Grounded = false
	return true
}

// Die starts the death sequence. Calling it again while dying is a no-op;
// it returns true only when the sequence actually started.
func (p *Player) Die() bool {
	if p.phase != Alive {
		return false
	}
	p.phase = DyingPrimary
	p.deathTimer = 0
	p.Vel = core.Vec{}
	return true
}

func (p *Player) updateDeath(dt float64) {
	if p.deathDone {
		return
	}
	p.deathTimer += dt
	switch p.phase {
	case DyingPrimary:
		if p.deathTimer >= p.cfg.DeathPoseSeconds {
			p.phase = DyingSmoke
			p.deathTimer = 0
			p.smokeFrame = 0
		}
	case DyingSmoke:
		if p.deathTimer >= p.cfg.SmokeFrameSeconds {
			p.deathTimer = 0
			p.smokeFrame++
			if p.smokeFrame >= p.cfg.SmokeFrames {
				p.smokeFrame = p.cfg.SmokeFrames - 1
				p.deathDone = true
			}
		}
	}
}

// Alive reports whether the player accepts input and collides with hazards.
func (p *Player) Alive() bool {
	return p.phase == Alive
}

// Phase returns the death-sequence phase.
func (p *Player) Phase() DeathPhase {
	return p.phase
}

// DeathFinished reports whether the smoke animation has played out.
func (p *Player) DeathFinished() bool {
	return p.deathDone
}

// Javelin returns the ID of the javelin the player has thrown, if any.
func (p *Player) Javelin() (JavelinID, bool) {
	return p.javelin, p.javelin != NoJavelin
}

// RetrieveJavelin puts the javelin back in hand.
func (p *Player) RetrieveJavelin() {
	p.HasJavelin = true
	p.javelin = NoJavelin
}

// Sprite returns the draw request for the current state.
func (p *Player) Sprite() core.Sprite {
	flip := p.Facing == FacingLeft
	switch p.phase {
	case DyingPrimary:
		return core.Sprite{Kind: core.SpritePlayerDead, Flip: flip}
	case DyingSmoke:
		return core.Sprite{Kind: core.SpriteSmoke, Frame: p.smokeFrame, Flip: flip}
	default:
		return core.Sprite{Kind: core.SpritePlayer, Frame: p.walkFrame, Flip: flip}
	}
}

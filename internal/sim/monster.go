package sim

import (
	"math"

	"github.com/vovakirdan/ontop/internal/config"
	"github.com/vovakirdan/ontop/internal/core"
	"github.com/vovakirdan/ontop/internal/level"
)

// Monster is a walking enemy. Plain monsters turn around when they bump into
// a platform; zombies also turn after covering WalkDistance from the point
// of their last turn.
type Monster struct {
	Rect         core.Rect
	Speed        float64 // Pixels per second
	Dir          float64 // +1 right, -1 left
	Zombie       bool
	WalkDistance float64
	AnchorX      float64 // X at the last turn

	dead       bool
	removed    bool
	deathFrame int
	deathTimer float64
	walkFrame  int
	walkTimer  float64
	cfg        config.MonsterConfig
}

// NewMonster creates a monster from a map spawn. Zero speed or walk distance
// in the spawn falls back to the configured defaults.
func NewMonster(spawn level.MonsterSpawn, cfg config.MonsterConfig) *Monster {
	speed := spawn.Speed
	if speed <= 0 {
		speed = cfg.Speed
	}
	walk := spawn.WalkDistance
	if walk <= 0 {
		walk = cfg.WalkDistance
	}
	return &Monster{
		Rect:         core.NewRect(spawn.Pos.X, spawn.Pos.Y, cfg.Width, cfg.Height),
		Speed:        speed,
		Dir:          1,
		Zombie:       spawn.Zombie,
		WalkDistance: walk,
		AnchorX:      spawn.Pos.X,
		cfg:          cfg,
	}
}

// Update advances the monster by dt seconds.
func (m *Monster) Update(reg *Registry, dt float64) {
	if m.dead {
		m.updateDeath(dt)
		return
	}

	dx := m.Dir * m.Speed * dt
	m.Rect.X += dx
	if reg.Any(m.Rect) {
		m.Rect.X -= dx
		m.Dir = -m.Dir
	}

	if m.Zombie && math.Abs(m.Rect.X-m.AnchorX) >= m.WalkDistance {
		m.Turn()
	}

	m.walkTimer += dt
	if m.cfg.WalkFrames > 0 && m.walkTimer >= m.cfg.WalkFrameSeconds {
		m.walkTimer = 0
		m.walkFrame = (m.walkFrame + 1) % m.cfg.WalkFrames
	}
}

// Turn reverses the walking direction and restarts the walk distance count.
func (m *Monster) Turn() {
	m.Dir = -m.Dir
	m.AnchorX = m.Rect.X
}

// Die starts the death animation. It returns false if already dead.
func (m *Monster) Die() bool {
	if m.dead {
		return false
	}
	m.dead = true
	m.deathFrame = 0
	m.deathTimer = 0
	return true
}

func (m *Monster) updateDeath(dt float64) {
	if m.removed {
		return
	}
	m.deathTimer += dt
	if m.deathTimer < m.cfg.DeathFrameSeconds {
		return
	}
	m.deathTimer = 0
	m.deathFrame++
	if m.deathFrame >= m.cfg.DeathFrames {
		m.removed = true
	}
}

// Alive reports whether the monster still kills on contact.
func (m *Monster) Alive() bool {
	return !m.dead
}

// Removed reports whether the death animation has finished.
func (m *Monster) Removed() bool {
	return m.removed
}

// Sprite returns the draw request for the current state.
func (m *Monster) Sprite() core.Sprite {
	if m.dead {
		return core.Sprite{Kind: core.SpriteMonsterDead, Frame: m.deathFrame, Flip: m.Dir < 0}
	}
	return core.Sprite{Kind: core.SpriteMonster, Frame: m.walkFrame, Flip: m.Dir < 0}
}

package sim

import (
	"testing"

	"github.com/vovakirdan/ontop/internal/config"
	"github.com/vovakirdan/ontop/internal/core"
	"github.com/vovakirdan/ontop/internal/level"
)

func TestZombieTurnsAfterWalkDistance(t *testing.T) {
	cfg := config.DefaultConfig().Monster
	m := NewMonster(level.MonsterSpawn{
		Pos:          core.V(235, 100),
		Speed:        80,
		WalkDistance: 110,
		Zombie:       true,
	}, cfg)
	reg := NewRegistry()

	for i := 0; i < 200 && m.Dir > 0; i++ {
		m.Update(reg, dt)
	}
	if m.Dir > 0 {
		t.Fatal("zombie never turned")
	}

	traveled := m.Rect.X - 235
	if traveled < 110 || traveled > 110+80*dt+1e-9 {
		t.Errorf("turned after %v px, expected just past 110", traveled)
	}
	if m.AnchorX != m.Rect.X {
		t.Errorf("AnchorX = %v, expected reset to %v", m.AnchorX, m.Rect.X)
	}

	// Walks the full distance back before turning again
	turnX := m.Rect.X
	for i := 0; i < 200 && m.Dir < 0; i++ {
		m.Update(reg, dt)
	}
	if back := turnX - m.Rect.X; back < 110 {
		t.Errorf("walked back %v px, expected at least 110", back)
	}
}

func TestMonsterBouncesOffWall(t *testing.T) {
	reg := NewRegistry()
	reg.Add(core.NewRect(131, 0, 40, 200), PlatformStatic)

	m := NewMonster(level.MonsterSpawn{Pos: core.V(100, 100), Speed: 120}, config.DefaultConfig().Monster)
	m.Update(reg, 0.1)

	if m.Dir != -1 {
		t.Errorf("Dir = %v, expected -1 after hitting the wall", m.Dir)
	}
	if m.Rect.X != 100 {
		t.Errorf("X = %v, blocked move should be undone", m.Rect.X)
	}

	m.Update(reg, 0.1)
	if m.Rect.X >= 100 {
		t.Errorf("X = %v, expected to walk away from the wall", m.Rect.X)
	}
}

func TestMonsterDefaultsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig().Monster
	m := NewMonster(level.MonsterSpawn{Pos: core.V(0, 0)}, cfg)
	if m.Speed != cfg.Speed || m.WalkDistance != cfg.WalkDistance {
		t.Errorf("speed=%v walk=%v, expected config defaults", m.Speed, m.WalkDistance)
	}
	if m.Rect.W != cfg.Width || m.Rect.H != cfg.Height {
		t.Errorf("size = %vx%v", m.Rect.W, m.Rect.H)
	}
}

func TestMonsterDeath(t *testing.T) {
	cfg := config.DefaultConfig().Monster
	m := NewMonster(level.MonsterSpawn{Pos: core.V(0, 0)}, cfg)
	reg := NewRegistry()

	if !m.Die() {
		t.Fatal("first Die() should succeed")
	}
	if m.Die() {
		t.Error("second Die() should be a no-op")
	}
	x := m.Rect.X

	for i := 0; i < cfg.DeathFrames; i++ {
		if m.Removed() {
			t.Fatalf("removed after %d frames, expected %d", i, cfg.DeathFrames)
		}
		if s := m.Sprite(); s.Kind != core.SpriteMonsterDead || s.Frame != i {
			t.Errorf("sprite = %+v, expected death frame %d", s, i)
		}
		m.Update(reg, cfg.DeathFrameSeconds)
	}
	if !m.Removed() {
		t.Error("monster should be removed after the death animation")
	}
	if m.Rect.X != x {
		t.Error("a dead monster must not move")
	}
}

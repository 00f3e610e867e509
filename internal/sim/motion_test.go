package sim

import (
	"testing"

	"github.com/vovakirdan/ontop/internal/core"
)

func TestRegistryAddRemove(t *testing.T) {
	reg := NewRegistry()
	a := reg.Add(core.NewRect(0, 0, 10, 10), PlatformStatic)
	b := reg.Add(core.NewRect(20, 0, 10, 10), PlatformJavelin)

	if a == b {
		t.Fatal("IDs must be unique")
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", reg.Len())
	}
	if !reg.Remove(a) {
		t.Error("Remove() of a registered ID should succeed")
	}
	if reg.Remove(a) {
		t.Error("second Remove() should report false")
	}
	if reg.Contains(a) || !reg.Contains(b) {
		t.Error("Contains() disagrees with the registry contents")
	}
	if hits := reg.Hits(core.NewRect(0, 0, 30, 10)); len(hits) != 1 || hits[0].ID != b {
		t.Errorf("remaining platforms = %+v", hits)
	}

	// IDs are not reused after removal
	c := reg.Add(core.NewRect(40, 0, 10, 10), PlatformStatic)
	if c == a || c == b {
		t.Errorf("reused ID %d", c)
	}
}

func TestRegistryHits(t *testing.T) {
	reg := NewRegistry()
	reg.Add(core.NewRect(0, 0, 10, 10), PlatformStatic)
	reg.Add(core.NewRect(10, 0, 10, 10), PlatformStatic)
	reg.Add(core.NewRect(100, 100, 10, 10), PlatformStatic)

	hits := reg.Hits(core.NewRect(5, 5, 10, 2))
	if len(hits) != 2 {
		t.Fatalf("Hits() returned %d platforms, expected 2", len(hits))
	}
	if hits[0].Rect.X != 0 || hits[1].Rect.X != 10 {
		t.Errorf("Hits() should preserve insertion order, got %+v", hits)
	}
	// Touching edges are not collisions
	if reg.Any(core.NewRect(20, 0, 5, 5)) {
		t.Error("Any() should ignore touching edges")
	}
}

func TestMoveY(t *testing.T) {
	floor := core.NewRect(0, 100, 200, 40)

	tests := []struct {
		name         string
		y, vy        float64
		wantY        float64
		wantVY       float64
		wantGrounded bool
	}{
		{"lands on floor", 59, 5, 60, 0, true},
		{"free fall", 0, 5, 5, 5, false},
		{"hits ceiling", 145, -10, 140, 0, false},
		{"resting contact", 60, 0.8, 60, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := NewRegistry()
			reg.Add(floor, PlatformStatic)

			b := Body{Rect: core.NewRect(50, tc.y, 20, 40), Vel: core.V(0, tc.vy), Grounded: true}
			b.MoveY(reg)

			if b.Rect.Y != tc.wantY {
				t.Errorf("Y = %v, expected %v", b.Rect.Y, tc.wantY)
			}
			if b.Vel.Y != tc.wantVY {
				t.Errorf("Vel.Y = %v, expected %v", b.Vel.Y, tc.wantVY)
			}
			if b.Grounded != tc.wantGrounded {
				t.Errorf("Grounded = %v, expected %v", b.Grounded, tc.wantGrounded)
			}
			if b.Rect.Intersects(floor) {
				t.Errorf("body %+v still overlaps the floor", b.Rect)
			}
		})
	}
}

func TestMoveX(t *testing.T) {
	wall := core.NewRect(100, 0, 40, 200)

	tests := []struct {
		name  string
		x, vx float64
		wantX float64
	}{
		{"blocked moving right", 78, 5, 80},
		{"blocked moving left", 142, -5, 140},
		{"free", 0, 5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := NewRegistry()
			reg.Add(wall, PlatformStatic)

			b := Body{Rect: core.NewRect(tc.x, 50, 20, 40), Vel: core.V(tc.vx, 0)}
			b.MoveX(reg)

			if b.Rect.X != tc.wantX {
				t.Errorf("X = %v, expected %v", b.Rect.X, tc.wantX)
			}
			if b.Rect.Intersects(wall) {
				t.Errorf("body %+v still overlaps the wall", b.Rect)
			}
		})
	}
}

func TestApplyGravityClamp(t *testing.T) {
	b := Body{Vel: core.V(0, 14.5)}
	b.ApplyGravity(0.8, 15)
	if b.Vel.Y != 15 {
		t.Errorf("Vel.Y = %v, expected clamp to 15", b.Vel.Y)
	}

	b.Vel.Y = -14
	b.ApplyGravity(0.5, 15)
	if b.Vel.Y != -13.5 {
		t.Errorf("Vel.Y = %v, expected -13.5", b.Vel.Y)
	}
}

func TestCameraFollow(t *testing.T) {
	tests := []struct {
		name   string
		target core.Rect
		want   core.Vec
	}{
		{"clamped to top-left", core.NewRect(10, 10, 20, 40), core.V(0, 0)},
		{"centered", core.NewRect(490, 480, 20, 40), core.V(400, 450)},
		{"clamped to bottom-right", core.NewRect(990, 990, 20, 40), core.V(800, 900)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera(1000, 1000, 200, 100)
			cam.Follow(tc.target)
			if cam.Pos != tc.want {
				t.Errorf("Pos = %v, expected %v", cam.Pos, tc.want)
			}
		})
	}

	small := NewCamera(100, 50, 800, 600)
	small.Follow(core.NewRect(90, 40, 10, 10))
	if small.Pos != (core.Vec{}) {
		t.Errorf("map smaller than view should pin camera at origin, got %v", small.Pos)
	}
}

func TestCameraConversions(t *testing.T) {
	cam := NewCamera(1000, 1000, 200, 100)
	cam.Pos = core.V(300, 400)

	if got := cam.ScreenToWorld(core.V(10, 20)); got != core.V(310, 420) {
		t.Errorf("ScreenToWorld() = %v", got)
	}
	if got := cam.Apply(core.NewRect(310, 420, 5, 5)); got != core.NewRect(10, 20, 5, 5) {
		t.Errorf("Apply() = %+v", got)
	}
	if cam.Visible(core.NewRect(0, 0, 10, 10)) {
		t.Error("rect far outside the view reported visible")
	}
	if !cam.Visible(core.NewRect(350, 450, 10, 10)) {
		t.Error("rect inside the view reported invisible")
	}
}

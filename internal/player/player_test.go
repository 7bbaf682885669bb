package player

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSpawn(t *testing.T) {
	p := NewPlayer(10, 0.001)
	if p.Position != (mgl32.Vec3{0, 17, 0}) {
		t.Fatalf("unexpected spawn %v", p.Position)
	}
	if p.LookAt().Y() >= 0 {
		t.Fatal("spawn should look slightly down")
	}
}

func TestVectorsOrthonormal(t *testing.T) {
	p := NewPlayer(10, 0.001)
	for _, yaw := range []float32{0, 0.7, -2.5, math.Pi} {
		p.Yaw = yaw
		p.Pitch = 0.3
		p.updateVectors()

		if !mgl32.FloatEqualThreshold(p.LookAt().Len(), 1, 1e-5) {
			t.Errorf("yaw %v: look vector not unit", yaw)
		}
		if !mgl32.FloatEqualThreshold(p.Right().Dot(p.LookAt()), 0, 1e-5) {
			t.Errorf("yaw %v: right not perpendicular to look", yaw)
		}
		if p.Up().Y() <= 0 {
			t.Errorf("yaw %v: up should point upward, got %v", yaw, p.Up())
		}
		if p.Forward().Y() != 0 {
			t.Errorf("yaw %v: forward must stay horizontal", yaw)
		}
	}
}

func TestLookClampsAndWraps(t *testing.T) {
	p := NewPlayer(10, 1)

	p.Look(0, -10)
	if p.Pitch != math.Pi/2 {
		t.Fatalf("pitch should clamp to +π/2, got %v", p.Pitch)
	}
	p.Look(0, 10)
	if p.Pitch != -math.Pi/2 {
		t.Fatalf("pitch should clamp to -π/2, got %v", p.Pitch)
	}

	p.Yaw = 3
	p.Look(-0.5, 0)
	if p.Yaw > math.Pi || p.Yaw < -math.Pi {
		t.Fatalf("yaw should wrap into [-π, π], got %v", p.Yaw)
	}
}

func TestUpdateMoves(t *testing.T) {
	p := NewPlayer(10, 0.001)
	start := p.Position

	p.Update(MoveForward, 0.5)
	if got := p.Position.Sub(start); !got.ApproxEqual(mgl32.Vec3{0, 0, 5}) {
		t.Fatalf("forward at yaw 0 should move +Z by 5, moved %v", got)
	}

	p.Update(MoveUp|MoveDown, 1)
	if got := p.Position.Sub(start); !got.ApproxEqual(mgl32.Vec3{0, 0, 5}) {
		t.Fatalf("up and down should cancel, moved %v", got)
	}

	p.Update(MoveRight, 0.1)
	if got := p.Position.Sub(start); !got.ApproxEqual(mgl32.Vec3{-1, 0, 5}) {
		t.Fatalf("right at yaw 0 is -X, moved %v", got)
	}
}

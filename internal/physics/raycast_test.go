package physics_test

import (
	"testing"

	"voxel/internal/physics"
	"voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func emptyWorld() *world.World {
	return world.NewWithSize(world.Size{X: 2, Y: 2, Z: 2}, 1)
}

func TestRaycast(t *testing.T) {
	w := emptyWorld()
	w.SetBlock(5, 0, 0, world.BlockTypeStone)

	start := mgl32.Vec3{0.5, 0.5, 0.5}
	dir := mgl32.Vec3{1, 0, 0}

	result := physics.Raycast(start, dir, 0.1, 10, w)
	if !result.Hit {
		t.Fatalf("Expected hit, got miss")
	}
	if result.HitPosition != [3]int{5, 0, 0} {
		t.Errorf("Expected hit at {5,0,0}, got %v", result.HitPosition)
	}
	if result.AdjacentPosition != [3]int{4, 0, 0} {
		t.Errorf("Expected adjacent at {4,0,0}, got %v", result.AdjacentPosition)
	}
	// Ray starts at X=0.5 and enters the block at X=5.
	if result.Distance < 4.49 || result.Distance > 4.51 {
		t.Errorf("Expected distance 4.5, got %f", result.Distance)
	}

	if r := physics.Raycast(start, dir, 0.1, 4, w); r.Hit {
		t.Errorf("Expected miss due to maxDist, got hit at %v", r.HitPosition)
	}
	if r := physics.Raycast(start, mgl32.Vec3{0, 1, 0}, 0.1, 10, w); r.Hit {
		t.Errorf("Expected miss, got hit at %v", r.HitPosition)
	}
	if r := physics.Raycast(start, mgl32.Vec3{}, 0.1, 10, w); r.Hit {
		t.Error("zero direction should never hit")
	}
}

func TestRaycastDiagonal(t *testing.T) {
	w := emptyWorld()
	w.SetBlock(2, 2, 2, world.BlockTypeStone)

	r := physics.Raycast(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 1, 1}, 0.1, 10, w)
	if !r.Hit || r.HitPosition != [3]int{2, 2, 2} {
		t.Fatalf("Expected hit at {2,2,2}, got %+v", r)
	}
	// Enters the cell through the x=2 plane first: 1.5 * sqrt(3).
	if r.Distance < 2.59 || r.Distance > 2.61 {
		t.Errorf("Expected distance 2.598, got %f", r.Distance)
	}
}

func TestRaycastNegativeCoordinates(t *testing.T) {
	w := emptyWorld()
	w.SetBlock(-3, 0, 0, world.BlockTypeBrick)

	r := physics.Raycast(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{-1, 0, 0}, 0.1, 10, w)
	if !r.Hit || r.HitPosition != [3]int{-3, 0, 0} {
		t.Fatalf("Expected hit at {-3,0,0}, got %+v", r)
	}
	if r.AdjacentPosition != [3]int{-2, 0, 0} {
		t.Errorf("Expected adjacent {-2,0,0}, got %v", r.AdjacentPosition)
	}
}

func TestRaycastLookingDown(t *testing.T) {
	w := world.NewWithSize(world.Size{X: 2, Y: 2, Z: 2}, 1, world.WithGenerator(world.NewFlatGenerator(4)))
	w.GenerateAll()

	r := physics.Raycast(mgl32.Vec3{3.5, 10, 3.5}, mgl32.Vec3{0, -1, 0}, 0.1, 20, w)
	if !r.Hit || r.HitPosition != [3]int{3, 3, 3} {
		t.Fatalf("Expected to hit the grass surface at y=3, got %+v", r)
	}
	if w.Block(3, 3, 3) != world.BlockTypeGrass {
		t.Fatalf("surface should be grass, got %v", w.Block(3, 3, 3))
	}
	if r.AdjacentPosition != [3]int{3, 4, 3} {
		t.Errorf("Expected placement above the surface, got %v", r.AdjacentPosition)
	}
}

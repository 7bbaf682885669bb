package physics

import (
	"math"

	"voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 8.0
)

// BlockSource answers world-space block lookups.
type BlockSource interface {
	Block(x, y, z int) world.BlockType
}

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition [3]int
	// AdjacentPosition is the last empty cell before the hit, where a new
	// block would be placed.
	AdjacentPosition [3]int
	Distance         float32
	Hit              bool
}

// Raycast walks the voxel cells pierced by the ray, in order, and stops at
// the first solid block between minDist and maxDist. Cell (x,y,z) spans
// [x, x+1) on each axis.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, blocks BlockSource) RaycastResult {
	if direction.Len() == 0 {
		return RaycastResult{}
	}
	dir := direction.Normalize()

	var (
		cell   [3]int
		step   [3]int
		tMax   [3]float32
		tDelta [3]float32
	)
	inf := float32(math.Inf(1))
	for i := 0; i < 3; i++ {
		cell[i] = int(math.Floor(float64(start[i])))
		switch {
		case dir[i] > 0:
			step[i] = 1
			tMax[i] = (float32(cell[i]+1) - start[i]) / dir[i]
			tDelta[i] = 1 / dir[i]
		case dir[i] < 0:
			step[i] = -1
			tMax[i] = (start[i] - float32(cell[i])) / -dir[i]
			tDelta[i] = -1 / dir[i]
		default:
			tMax[i] = inf
			tDelta[i] = inf
		}
	}

	prev := cell
	var t float32
	for t <= maxDist {
		if t >= minDist && blocks.Block(cell[0], cell[1], cell[2]).IsSolid() {
			return RaycastResult{
				HitPosition:      cell,
				AdjacentPosition: prev,
				Distance:         t,
				Hit:              true,
			}
		}

		prev = cell
		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}
		t = tMax[axis]
		cell[axis] += step[axis]
		tMax[axis] += tDelta[axis]
	}
	return RaycastResult{}
}

package player

import (
	"math"

	"voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Move is a bit set of held movement keys.
type Move uint8

const (
	MoveForward Move = 1 << iota
	MoveLeft
	MoveBackward
	MoveRight
	MoveUp
	MoveDown
)

// Player is a free-flying camera. Yaw and pitch are radians; yaw 0 looks
// down +Z.
type Player struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	MoveSpeed  float32
	MouseSpeed float32

	forward mgl32.Vec3
	right   mgl32.Vec3
	lookAt  mgl32.Vec3
	up      mgl32.Vec3
}

// NewPlayer spawns just above the top of the center chunk, looking slightly down.
func NewPlayer(moveSpeed, mouseSpeed float32) *Player {
	p := &Player{
		Position:   mgl32.Vec3{0, world.ChunkSizeY + 1, 0},
		Pitch:      -0.5,
		MoveSpeed:  moveSpeed,
		MouseSpeed: mouseSpeed,
	}
	p.updateVectors()
	return p
}

func (p *Player) updateVectors() {
	sy, cy := sincos(p.Yaw)
	sp, cp := sincos(p.Pitch)

	p.forward = mgl32.Vec3{sy, 0, cy}
	p.right = mgl32.Vec3{-cy, 0, sy}
	p.lookAt = mgl32.Vec3{sy * cp, sp, cy * cp}
	p.up = p.right.Cross(p.lookAt)
}

// Forward is the horizontal walking direction.
func (p *Player) Forward() mgl32.Vec3 { return p.forward }

// Right is the horizontal strafe direction.
func (p *Player) Right() mgl32.Vec3 { return p.right }

// LookAt is the unit view direction.
func (p *Player) LookAt() mgl32.Vec3 { return p.lookAt }

// Up is the camera up vector.
func (p *Player) Up() mgl32.Vec3 { return p.up }

// Look turns the camera by a mouse offset in pixels from the window center.
// Pitch is clamped to straight up/down and yaw wraps to [-π, π].
func (p *Player) Look(dx, dy float64) {
	p.Yaw -= float32(dx) * p.MouseSpeed
	p.Pitch -= float32(dy) * p.MouseSpeed

	if p.Yaw < -math.Pi {
		p.Yaw += 2 * math.Pi
	}
	if p.Yaw > math.Pi {
		p.Yaw -= 2 * math.Pi
	}
	p.Pitch = mgl32.Clamp(p.Pitch, -math.Pi/2, math.Pi/2)
	p.updateVectors()
}

// Update moves the camera for the held keys over dt seconds.
func (p *Player) Update(keys Move, dt float64) {
	step := p.MoveSpeed * float32(dt)
	if keys&MoveForward != 0 {
		p.Position = p.Position.Add(p.forward.Mul(step))
	}
	if keys&MoveLeft != 0 {
		p.Position = p.Position.Sub(p.right.Mul(step))
	}
	if keys&MoveBackward != 0 {
		p.Position = p.Position.Sub(p.forward.Mul(step))
	}
	if keys&MoveRight != 0 {
		p.Position = p.Position.Add(p.right.Mul(step))
	}
	if keys&MoveUp != 0 {
		p.Position[1] += step
	}
	if keys&MoveDown != 0 {
		p.Position[1] -= step
	}
}

// ViewMatrix looks from the position along LookAt.
func (p *Player) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(p.Position, p.Position.Add(p.lookAt), p.up)
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}

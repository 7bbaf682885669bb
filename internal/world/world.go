package world

import (
	"time"
)

const (
	// Default grid dimensions in chunks.
	WorldSizeX = 8
	WorldSizeY = 8
	WorldSizeZ = 8
)

// Size is the grid extent in chunks.
type Size struct {
	X, Y, Z int
}

// DefaultSize is the grid used by New.
var DefaultSize = Size{WorldSizeX, WorldSizeY, WorldSizeZ}

// Volume returns the number of chunks in the grid.
func (s Size) Volume() int {
	return s.X * s.Y * s.Z
}

// World owns a fixed 3-D grid of chunks. Grid index (0,0,0) is chunk
// coordinate (-X/2, -Y/2, -Z/2).
type World struct {
	size   Size
	chunks []*Chunk
	seed   int64
	gen    TerrainGenerator
}

// Option configures a World at construction.
type Option func(*World)

// WithGenerator replaces the default noise terrain generator.
func WithGenerator(g TerrainGenerator) Option {
	return func(w *World) {
		w.gen = g
	}
}

// New creates a world of DefaultSize seeded from the current time.
func New(opts ...Option) *World {
	return NewWithSize(DefaultSize, time.Now().Unix(), opts...)
}

// NewWithSize creates a world with explicit dimensions and seed.
// Non-positive dimensions are raised to one chunk.
func NewWithSize(size Size, seed int64, opts ...Option) *World {
	size.X = max(size.X, 1)
	size.Y = max(size.Y, 1)
	size.Z = max(size.Z, 1)

	w := &World{
		size:   size,
		chunks: make([]*Chunk, size.Volume()),
		seed:   seed,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.gen == nil {
		w.gen = NewGenerator(seed)
	}

	for gx := 0; gx < size.X; gx++ {
		for gy := 0; gy < size.Y; gy++ {
			for gz := 0; gz < size.Z; gz++ {
				i := w.gridIndex(gx, gy, gz)
				w.chunks[i] = newChunk(w, i, ChunkCoord{
					X: gx - size.X/2,
					Y: gy - size.Y/2,
					Z: gz - size.Z/2,
				})
			}
		}
	}
	w.linkNeighbors()
	return w
}

func (w *World) linkNeighbors() {
	for gx := 0; gx < w.size.X; gx++ {
		for gy := 0; gy < w.size.Y; gy++ {
			for gz := 0; gz < w.size.Z; gz++ {
				c := w.chunks[w.gridIndex(gx, gy, gz)]
				for _, d := range Directions {
					dx, dy, dz := d.Offset()
					if i, ok := w.gridIndexChecked(gx+dx, gy+dy, gz+dz); ok {
						c.links[d] = int32(i)
					}
				}
			}
		}
	}
}

func (w *World) gridIndex(gx, gy, gz int) int {
	return (gx*w.size.Y+gy)*w.size.Z + gz
}

func (w *World) gridIndexChecked(gx, gy, gz int) (int, bool) {
	if gx < 0 || gx >= w.size.X || gy < 0 || gy >= w.size.Y || gz < 0 || gz >= w.size.Z {
		return 0, false
	}
	return w.gridIndex(gx, gy, gz), true
}

// Size returns the grid dimensions.
func (w *World) Size() Size {
	return w.size
}

// Seed returns the immutable generation seed.
func (w *World) Seed() int64 {
	return w.seed
}

// Generator returns the terrain generator.
func (w *World) Generator() TerrainGenerator {
	return w.gen
}

// Chunks returns every chunk in grid order (x, then y, then z).
// The slice is owned by the world and must not be modified.
func (w *World) Chunks() []*Chunk {
	return w.chunks
}

// ChunkAt returns the chunk at signed chunk coordinates, or nil outside the grid.
func (w *World) ChunkAt(coord ChunkCoord) *Chunk {
	i, ok := w.gridIndexChecked(coord.X+w.size.X/2, coord.Y+w.size.Y/2, coord.Z+w.size.Z/2)
	if !ok {
		return nil
	}
	return w.chunks[i]
}

// ChunkFromBlockCoords returns the chunk containing a world-space block, or nil.
func (w *World) ChunkFromBlockCoords(x, y, z int) *Chunk {
	return w.ChunkAt(ChunkCoord{
		X: floorDiv(x, ChunkSizeX),
		Y: floorDiv(y, ChunkSizeY),
		Z: floorDiv(z, ChunkSizeZ),
	})
}

// Block returns the block at world-space coordinates; air outside the grid.
func (w *World) Block(x, y, z int) BlockType {
	c := w.ChunkFromBlockCoords(x, y, z)
	if c == nil {
		return BlockTypeAir
	}
	return c.Block(x&(ChunkSizeX-1), y&(ChunkSizeY-1), z&(ChunkSizeZ-1))
}

// IsAir checks if the block at world-space coordinates is air.
func (w *World) IsAir(x, y, z int) bool {
	return w.Block(x, y, z) == BlockTypeAir
}

// SetBlock writes a block at world-space coordinates; no-op outside the grid.
func (w *World) SetBlock(x, y, z int, t BlockType) {
	c := w.ChunkFromBlockCoords(x, y, z)
	if c == nil {
		return
	}
	c.SetBlock(x&(ChunkSizeX-1), y&(ChunkSizeY-1), z&(ChunkSizeZ-1), t)
}

// Generate runs procedural fill on c once. Later calls are no-ops.
func (w *World) Generate(c *Chunk) {
	if c == nil || c.generated {
		return
	}
	w.gen.PopulateChunk(c)
	c.generated = true
	c.dirty = true
}

// Populate generates c and each existing neighbor so its boundary faces are
// culled correctly on the first mesh build, then marks c initialized.
func (w *World) Populate(c *Chunk) {
	if c == nil {
		return
	}
	w.Generate(c)
	for _, d := range Directions {
		w.Generate(c.Neighbor(d))
	}
	c.initialized = true
}

// GenerateAll populates every chunk in the grid.
func (w *World) GenerateAll() {
	for _, c := range w.chunks {
		w.Populate(c)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

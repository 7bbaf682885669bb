package world

const (
	// Chunk dimensions. Must stay powers of two: world lookups mask with size-1.
	ChunkSizeX = 16
	ChunkSizeY = 16
	ChunkSizeZ = 16

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// noChunk marks a missing neighbor link at the world boundary.
const noChunk int32 = -1

// ChunkCoord is a signed chunk coordinate relative to the world center.
type ChunkCoord struct {
	X, Y, Z int
}

// Origin returns the world-space block coordinate of the chunk's (0,0,0) corner.
func (c ChunkCoord) Origin() (x, y, z int) {
	return c.X * ChunkSizeX, c.Y * ChunkSizeY, c.Z * ChunkSizeZ
}

// BlockField is the dense block storage of one chunk volume.
type BlockField [ChunkVolume]BlockType

func fieldIndex(x, y, z int) int {
	return x*ChunkSizeY*ChunkSizeZ + y*ChunkSizeZ + z
}

func inChunk(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// At reads an in-range cell.
func (f *BlockField) At(x, y, z int) BlockType {
	return f[fieldIndex(x, y, z)]
}

// Put writes an in-range cell without any bookkeeping.
func (f *BlockField) Put(x, y, z int, t BlockType) {
	f[fieldIndex(x, y, z)] = t
}

// Empty reports whether every cell is air.
func (f *BlockField) Empty() bool {
	for _, b := range f {
		if b != BlockTypeAir {
			return false
		}
	}
	return true
}

// Chunk is one fixed-size cube of the world grid.
// Neighbor links are indices into the owning world's chunk storage; the world
// owns every chunk and a chunk never outlives it.
type Chunk struct {
	Coord ChunkCoord

	world *World
	index int
	links [NumDirections]int32

	blocks BlockField

	generated   bool
	dirty       bool
	initialized bool
}

func newChunk(w *World, index int, coord ChunkCoord) *Chunk {
	c := &Chunk{Coord: coord, world: w, index: index}
	for i := range c.links {
		c.links[i] = noChunk
	}
	return c
}

// Index is the chunk's position in the world's grid-order storage.
func (c *Chunk) Index() int {
	return c.index
}

// Neighbor returns the face-adjacent chunk in direction d, or nil at the world edge.
func (c *Chunk) Neighbor(d Direction) *Chunk {
	l := c.links[d]
	if l == noChunk {
		return nil
	}
	return c.world.chunks[l]
}

// OnBoundary reports whether the chunk sits at the outer edge of the grid on side d.
func (c *Chunk) OnBoundary(d Direction) bool {
	return c.links[d] == noChunk
}

// Block returns the block at chunk-local coordinates. A coordinate outside the
// chunk on one axis is looked up in the neighbor on that side; missing
// neighbors read as air.
func (c *Chunk) Block(x, y, z int) BlockType {
	if inChunk(x, y, z) {
		return c.blocks.At(x, y, z)
	}
	nb, nx, ny, nz := c.redirect(x, y, z)
	if nb == nil {
		return BlockTypeAir
	}
	return nb.Block(nx, ny, nz)
}

// SetBlock writes a block at chunk-local coordinates, following the same
// redirection as Block. Writes to a missing neighbor are dropped.
func (c *Chunk) SetBlock(x, y, z int, t BlockType) {
	if !inChunk(x, y, z) {
		nb, nx, ny, nz := c.redirect(x, y, z)
		if nb != nil {
			nb.SetBlock(nx, ny, nz, t)
		}
		return
	}

	c.blocks.Put(x, y, z, t)
	c.dirty = true

	// Neighbor faces touching this block may change visibility.
	if x == 0 {
		c.markNeighborDirty(DirLeft)
	}
	if x == ChunkSizeX-1 {
		c.markNeighborDirty(DirRight)
	}
	if y == 0 {
		c.markNeighborDirty(DirBottom)
	}
	if y == ChunkSizeY-1 {
		c.markNeighborDirty(DirTop)
	}
	if z == 0 {
		c.markNeighborDirty(DirFront)
	}
	if z == ChunkSizeZ-1 {
		c.markNeighborDirty(DirBack)
	}
}

func (c *Chunk) markNeighborDirty(d Direction) {
	if nb := c.Neighbor(d); nb != nil {
		nb.dirty = true
	}
}

// redirect maps an out-of-range coordinate to the neighbor on the first
// offending axis. Callers never overflow on more than one axis.
func (c *Chunk) redirect(x, y, z int) (*Chunk, int, int, int) {
	switch {
	case x < 0:
		return c.Neighbor(DirLeft), x + ChunkSizeX, y, z
	case x >= ChunkSizeX:
		return c.Neighbor(DirRight), x - ChunkSizeX, y, z
	case y < 0:
		return c.Neighbor(DirBottom), x, y + ChunkSizeY, z
	case y >= ChunkSizeY:
		return c.Neighbor(DirTop), x, y - ChunkSizeY, z
	case z < 0:
		return c.Neighbor(DirFront), x, y, z + ChunkSizeZ
	default:
		return c.Neighbor(DirBack), x, y, z - ChunkSizeZ
	}
}

// Blocks exposes the chunk's field for generators.
func (c *Chunk) Blocks() *BlockField {
	return &c.blocks
}

// IsEmpty reports whether the chunk holds no solid blocks.
func (c *Chunk) IsEmpty() bool {
	return c.blocks.Empty()
}

// IsDirty returns whether the chunk's mesh is stale.
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// MarkDirty flags the mesh as stale.
func (c *Chunk) MarkDirty() {
	c.dirty = true
}

// SetClean marks the mesh as rebuilt.
func (c *Chunk) SetClean() {
	c.dirty = false
}

// IsGenerated reports whether procedural fill has run.
func (c *Chunk) IsGenerated() bool {
	return c.generated
}

// IsInitialized reports whether the chunk has been selected for rendering.
func (c *Chunk) IsInitialized() bool {
	return c.initialized
}

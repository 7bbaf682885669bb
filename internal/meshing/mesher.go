package meshing

import (
	"voxel/internal/world"
)

// Vertex is one packed mesh vertex: chunk-local corner x, y, z and a material code.
type Vertex [4]uint8

const (
	// VerticesPerFace is two triangles.
	VerticesPerFace = 6
	// MaxVerticesPerBlock is six faces of a fully exposed block.
	MaxVerticesPerBlock = world.NumDirections * VerticesPerFace

	// VerticalMaterialOffset is added to the block code on bottom and top faces.
	VerticalMaterialOffset = 128
)

// faceCorners holds the six corner offsets of each face, counter-clockwise
// when seen from outside the block.
var faceCorners = [world.NumDirections][VerticesPerFace][3]uint8{
	world.DirFront: {
		{0, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{1, 1, 0}, {1, 0, 0}, {0, 0, 0},
	},
	world.DirBack: {
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1},
		{1, 1, 1}, {0, 1, 1}, {0, 0, 1},
	},
	world.DirLeft: {
		{0, 0, 0}, {0, 0, 1}, {0, 1, 1},
		{0, 1, 1}, {0, 1, 0}, {0, 0, 0},
	},
	world.DirRight: {
		{1, 0, 0}, {1, 1, 0}, {1, 1, 1},
		{1, 1, 1}, {1, 0, 1}, {1, 0, 0},
	},
	world.DirBottom: {
		{0, 0, 0}, {1, 0, 0}, {1, 0, 1},
		{1, 0, 1}, {0, 0, 1}, {0, 0, 0},
	},
	world.DirTop: {
		{0, 1, 0}, {0, 1, 1}, {1, 1, 1},
		{1, 1, 1}, {1, 1, 0}, {0, 1, 0},
	},
}

// Mesher turns a chunk into a culled triangle list. It keeps one scratch
// buffer that grows to the largest mesh built so far.
type Mesher struct {
	buf []Vertex
}

// NewMesher creates a mesher with a small initial buffer.
func NewMesher() *Mesher {
	return &Mesher{buf: make([]Vertex, 0, 4096)}
}

// Build emits every visible face of c. A face is visible when the adjacent
// cell, possibly in a neighbor chunk, is air. Faces on the outer side of the
// world grid are never emitted. The returned slice aliases the mesher's buffer
// and stays valid until the next call.
func (m *Mesher) Build(c *world.Chunk) []Vertex {
	m.buf = m.buf[:0]
	if c == nil {
		return m.buf
	}

	for x := 0; x < world.ChunkSizeX; x++ {
		for y := 0; y < world.ChunkSizeY; y++ {
			for z := 0; z < world.ChunkSizeZ; z++ {
				t := c.Block(x, y, z)
				if !t.IsSolid() {
					continue
				}
				for _, d := range world.Directions {
					if faceVisible(c, x, y, z, d) {
						m.emitFace(x, y, z, d, t)
					}
				}
			}
		}
	}
	return m.buf
}

// Count returns the vertex count of the last Build.
func (m *Mesher) Count() int {
	return len(m.buf)
}

func faceVisible(c *world.Chunk, x, y, z int, d world.Direction) bool {
	if atChunkEdge(x, y, z, d) && c.OnBoundary(d) {
		return false
	}
	dx, dy, dz := d.Offset()
	return !c.Block(x+dx, y+dy, z+dz).IsSolid()
}

func atChunkEdge(x, y, z int, d world.Direction) bool {
	switch d {
	case world.DirFront:
		return z == 0
	case world.DirBack:
		return z == world.ChunkSizeZ-1
	case world.DirLeft:
		return x == 0
	case world.DirRight:
		return x == world.ChunkSizeX-1
	case world.DirBottom:
		return y == 0
	case world.DirTop:
		return y == world.ChunkSizeY-1
	}
	panic("meshing: invalid direction " + d.String())
}

func (m *Mesher) emitFace(x, y, z int, d world.Direction, t world.BlockType) {
	material := uint8(t)
	if d.Vertical() {
		material += VerticalMaterialOffset
	}
	bx, by, bz := uint8(x), uint8(y), uint8(z)
	for _, corner := range faceCorners[d] {
		m.buf = append(m.buf, Vertex{bx + corner[0], by + corner[1], bz + corner[2], material})
	}
}

// Mesh is an owned copy of a built vertex list.
type Mesh struct {
	Coord    world.ChunkCoord
	Vertices []Vertex
}

// BuildMesh builds c and copies the result out of the scratch buffer.
func (m *Mesher) BuildMesh(c *world.Chunk) Mesh {
	if c == nil {
		return Mesh{}
	}
	verts := m.Build(c)
	out := make([]Vertex, len(verts))
	copy(out, verts)
	return Mesh{Coord: c.Coord, Vertices: out}
}

// Triangles returns the number of triangles in the mesh.
func (m Mesh) Triangles() int {
	return len(m.Vertices) / 3
}

package terrain

import (
	"math"

	renderer "voxel/internal/graphics/renderer"
	"voxel/internal/logging"
	"voxel/internal/meshing"
	"voxel/internal/profiling"
	"voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Chunk-local reference point projected for visibility.
var chunkCenter = mgl32.Vec4{world.ChunkSizeX / 2, world.ChunkSizeY / 2, world.ChunkSizeZ / 2, 1}

// chunkMesh is the cached device-side mesh of one chunk.
type chunkMesh struct {
	buf    renderer.Buffer
	hasBuf bool
	count  int
	built  bool
}

// FrameStats summarizes one sweep over the grid.
type FrameStats struct {
	Visible  int
	Drawn    int
	Rebuilt  int
	Vertices int
	// Populated is the chunk generated after the sweep, if any.
	Populated *world.ChunkCoord
}

// Terrain renders a world chunk by chunk and streams in terrain as it
// becomes visible, one chunk per frame.
type Terrain struct {
	world  *world.World
	device renderer.Device
	mesher *meshing.Mesher
	meshes []chunkMesh
	prof   *profiling.Profiler
	log    *logging.Logger
	last   FrameStats
}

// New creates a terrain renderable. prof and log may be nil.
func New(w *world.World, device renderer.Device, prof *profiling.Profiler, log *logging.Logger) *Terrain {
	if log == nil {
		log = logging.Discard()
	}
	return &Terrain{
		world:  w,
		device: device,
		mesher: meshing.NewMesher(),
		meshes: make([]chunkMesh, len(w.Chunks())),
		prof:   prof,
		log:    log,
	}
}

// Init implements renderer.Renderable.
func (t *Terrain) Init() error {
	return nil
}

// Render implements renderer.Renderable.
func (t *Terrain) Render(ctx renderer.RenderContext) {
	t.Frame(ctx.ViewProj)
}

// SetViewport implements renderer.Renderable. Culling works in clip space.
func (t *Terrain) SetViewport(width, height int) {}

// Dispose releases every device buffer.
func (t *Terrain) Dispose() {
	for i := range t.meshes {
		m := &t.meshes[i]
		if m.hasBuf {
			t.device.DeleteBuffer(m.buf)
		}
		*m = chunkMesh{}
	}
}

// LastFrame returns the statistics of the most recent Frame.
func (t *Terrain) LastFrame() FrameStats {
	return t.last
}

// Frame draws every visible initialized chunk and populates the nearest
// visible chunk that has not been initialized yet.
func (t *Terrain) Frame(viewProj mgl32.Mat4) FrameStats {
	defer t.prof.Track("terrain.Frame")()

	var (
		stats     FrameStats
		candidate *world.Chunk
		best      float32
	)

	for _, c := range t.world.Chunks() {
		mvp, dist, ok := project(viewProj, c.Coord)
		if !ok {
			continue
		}
		stats.Visible++

		if !c.IsInitialized() {
			if candidate == nil || dist < best {
				candidate, best = c, dist
			}
			continue
		}

		m := &t.meshes[c.Index()]
		if c.IsDirty() || !m.built {
			t.rebuild(c, m)
			stats.Rebuilt++
		}
		if m.count == 0 {
			continue
		}
		t.device.Draw(m.buf, mvp, m.count)
		stats.Drawn++
		stats.Vertices += m.count
	}

	if candidate != nil {
		func() {
			defer t.prof.Track("terrain.populate")()
			t.world.Populate(candidate)
		}()
		coord := candidate.Coord
		stats.Populated = &coord
		t.log.Debugf("populated chunk %d,%d,%d", coord.X, coord.Y, coord.Z)
	}

	t.prof.Count("terrain.drawn", stats.Drawn)
	t.prof.Count("terrain.rebuilt", stats.Rebuilt)
	t.last = stats
	return stats
}

// rebuild re-meshes c and uploads the result. Device failures leave the
// chunk with an empty mesh until its next mutation.
func (t *Terrain) rebuild(c *world.Chunk, m *chunkMesh) {
	defer t.prof.Track("terrain.rebuild")()

	verts := t.mesher.Build(c)
	c.SetClean()
	m.built = true
	m.count = 0
	if len(verts) == 0 {
		return
	}

	if !m.hasBuf {
		buf, err := t.device.CreateBuffer()
		if err != nil {
			t.log.Warnf("chunk %v: create buffer: %v", c.Coord, err)
			return
		}
		m.buf, m.hasBuf = buf, true
	}
	if err := t.device.Upload(m.buf, verts); err != nil {
		t.log.Warnf("chunk %v: upload %d vertices: %v", c.Coord, len(verts), err)
		return
	}
	m.count = len(verts)
}

// MeshCount returns the cached vertex count for a chunk, or 0 when unbuilt.
func (t *Terrain) MeshCount(c *world.Chunk) int {
	return t.meshes[c.Index()].count
}

// project transforms the chunk's center into clip space. It reports the
// chunk model-view-projection, the clip-space distance used to rank
// candidates, and whether the chunk is on screen. The screen bounds are
// widened by a margin that grows as the chunk gets closer.
func project(viewProj mgl32.Mat4, coord world.ChunkCoord) (mgl32.Mat4, float32, bool) {
	ox, oy, oz := coord.Origin()
	mvp := viewProj.Mul4(mgl32.Translate3D(float32(ox), float32(oy), float32(oz)))

	p := mvp.Mul4x1(chunkCenter)
	dist := p.Len()

	// behind the camera
	if p.Z() < -world.ChunkSizeY/2 {
		return mvp, dist, false
	}

	x := p.X() / p.W()
	y := p.Y() / p.W()
	margin := 1 + abs32(world.ChunkSizeY*2/p.W())
	if abs32(x) > margin || abs32(y) > margin {
		return mvp, dist, false
	}
	return mvp, dist, true
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

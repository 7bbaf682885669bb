package terrain

import (
	"errors"
	"testing"

	renderer "voxel/internal/graphics/renderer"
	"voxel/internal/meshing"
	"voxel/internal/profiling"
	"voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeDevice struct {
	next      renderer.Buffer
	created   int
	deleted   int
	uploads   map[renderer.Buffer]int
	draws     []int
	uploadErr error
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{uploads: map[renderer.Buffer]int{}}
}

func (d *fakeDevice) CreateBuffer() (renderer.Buffer, error) {
	d.next++
	d.created++
	return d.next, nil
}

func (d *fakeDevice) Upload(buf renderer.Buffer, vertices []meshing.Vertex) error {
	if d.uploadErr != nil {
		return d.uploadErr
	}
	d.uploads[buf] = len(vertices)
	return nil
}

func (d *fakeDevice) Draw(buf renderer.Buffer, mvp mgl32.Mat4, count int) {
	d.draws = append(d.draws, count)
}

func (d *fakeDevice) DeleteBuffer(buf renderer.Buffer) {
	d.deleted++
}

func viewProj(eye, target mgl32.Vec3) mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 1000)
	view := mgl32.LookAtV(eye, target, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

func flatWorld(size world.Size) *world.World {
	return world.NewWithSize(size, 1, world.WithGenerator(world.NewFlatGenerator(4)))
}

func TestFramePopulatesBeforeDrawing(t *testing.T) {
	w := flatWorld(world.Size{X: 1, Y: 1, Z: 1})
	dev := newFakeDevice()
	tr := New(w, dev, profiling.New(), nil)
	pv := viewProj(mgl32.Vec3{8, 30, 40}, mgl32.Vec3{8, 8, 8})

	stats := tr.Frame(pv)
	if stats.Visible != 1 {
		t.Fatalf("expected 1 visible chunk, got %d", stats.Visible)
	}
	if stats.Drawn != 0 || len(dev.draws) != 0 {
		t.Fatalf("uninitialized chunk must not be drawn, got %d draws", len(dev.draws))
	}
	if stats.Populated == nil || *stats.Populated != (world.ChunkCoord{}) {
		t.Fatalf("expected chunk 0,0,0 populated, got %v", stats.Populated)
	}
	c := w.Chunks()[0]
	if !c.IsInitialized() || !c.IsGenerated() {
		t.Fatal("populated chunk should be generated and initialized")
	}

	stats = tr.Frame(pv)
	if stats.Populated != nil {
		t.Fatalf("nothing left to populate, got %v", *stats.Populated)
	}
	if stats.Rebuilt != 1 || stats.Drawn != 1 {
		t.Fatalf("expected one rebuild and one draw, got %+v", stats)
	}
	// A 16x4x16 slab filling a single-chunk world shows only its top layer;
	// every other face is either buried or on the world boundary.
	want := world.ChunkSizeX * world.ChunkSizeZ * meshing.VerticesPerFace
	if stats.Vertices != want {
		t.Fatalf("expected %d vertices, got %d", want, stats.Vertices)
	}
	if c.IsDirty() {
		t.Fatal("chunk should be clean after rebuild")
	}

	stats = tr.Frame(pv)
	if stats.Rebuilt != 0 || stats.Drawn != 1 {
		t.Fatalf("clean chunk should draw from cache, got %+v", stats)
	}
	if dev.created != 1 {
		t.Fatalf("expected one buffer, got %d", dev.created)
	}
}

func TestFrameRebuildsAfterEdit(t *testing.T) {
	w := flatWorld(world.Size{X: 1, Y: 1, Z: 1})
	dev := newFakeDevice()
	tr := New(w, dev, nil, nil)
	pv := viewProj(mgl32.Vec3{8, 30, 40}, mgl32.Vec3{8, 8, 8})

	tr.Frame(pv)
	before := tr.Frame(pv).Vertices

	// A block on top of the slab adds its top and four sides and hides one top face.
	w.SetBlock(8, 4, 8, world.BlockTypeBrick)
	stats := tr.Frame(pv)
	if stats.Rebuilt != 1 {
		t.Fatalf("edited chunk should rebuild, got %+v", stats)
	}
	if got, want := stats.Vertices, before+4*meshing.VerticesPerFace; got != want {
		t.Fatalf("expected %d vertices, got %d", want, got)
	}
	if tr.MeshCount(w.Chunks()[0]) != stats.Vertices {
		t.Fatal("cached count should match drawn vertices")
	}
	if dev.created != 1 {
		t.Fatalf("rebuild should reuse the buffer, created %d", dev.created)
	}
}

func TestFramePicksNearestCandidate(t *testing.T) {
	w := flatWorld(world.Size{X: 1, Y: 1, Z: 2})
	tr := New(w, newFakeDevice(), nil, nil)
	pv := viewProj(mgl32.Vec3{8, 8, 60}, mgl32.Vec3{8, 8, 0})

	stats := tr.Frame(pv)
	if stats.Visible != 2 {
		t.Fatalf("expected 2 visible chunks, got %d", stats.Visible)
	}
	near := world.ChunkCoord{X: 0, Y: 0, Z: 0}
	if stats.Populated == nil || *stats.Populated != near {
		t.Fatalf("expected nearest chunk %v populated, got %v", near, stats.Populated)
	}

	far := w.ChunkAt(world.ChunkCoord{X: 0, Y: 0, Z: -1})
	if !far.IsGenerated() {
		t.Fatal("neighbor of a populated chunk should be generated")
	}
	if far.IsInitialized() {
		t.Fatal("neighbor should not be initialized")
	}

	stats = tr.Frame(pv)
	if stats.Populated == nil || *stats.Populated != far.Coord {
		t.Fatalf("expected far chunk populated second, got %v", stats.Populated)
	}
	if stats.Drawn != 1 {
		t.Fatalf("expected the near chunk drawn, got %d", stats.Drawn)
	}
}

func TestFrameSkipsChunksBehindCamera(t *testing.T) {
	w := flatWorld(world.Size{X: 1, Y: 1, Z: 1})
	tr := New(w, newFakeDevice(), nil, nil)
	pv := viewProj(mgl32.Vec3{8, 8, 60}, mgl32.Vec3{8, 8, 100})

	stats := tr.Frame(pv)
	if stats.Visible != 0 || stats.Populated != nil {
		t.Fatalf("chunk behind the camera should be ignored, got %+v", stats)
	}
	if w.Chunks()[0].IsGenerated() {
		t.Fatal("invisible chunk should not be generated")
	}
}

func TestProjectMargin(t *testing.T) {
	pv := viewProj(mgl32.Vec3{8, 8, 60}, mgl32.Vec3{8, 8, 0})

	if _, _, ok := project(pv, world.ChunkCoord{}); !ok {
		t.Fatal("chunk in front of the camera should be visible")
	}
	// Far off to the side at the same depth.
	if _, _, ok := project(pv, world.ChunkCoord{X: 40}); ok {
		t.Fatal("chunk far outside the frustum should be culled")
	}
}

func TestUploadFailureRendersNothing(t *testing.T) {
	w := flatWorld(world.Size{X: 1, Y: 1, Z: 1})
	dev := newFakeDevice()
	dev.uploadErr = errors.New("out of memory")
	tr := New(w, dev, nil, nil)
	pv := viewProj(mgl32.Vec3{8, 30, 40}, mgl32.Vec3{8, 8, 8})

	tr.Frame(pv)
	stats := tr.Frame(pv)
	if stats.Drawn != 0 || len(dev.draws) != 0 {
		t.Fatalf("failed upload should not be drawn, got %+v", stats)
	}
	if w.Chunks()[0].IsDirty() {
		t.Fatal("failed upload should not be retried every frame")
	}
	if stats = tr.Frame(pv); stats.Rebuilt != 0 {
		t.Fatalf("expected no retry, got %+v", stats)
	}
}

func TestDisposeDeletesBuffers(t *testing.T) {
	w := flatWorld(world.Size{X: 1, Y: 1, Z: 1})
	dev := newFakeDevice()
	tr := New(w, dev, nil, nil)
	pv := viewProj(mgl32.Vec3{8, 30, 40}, mgl32.Vec3{8, 8, 8})

	tr.Frame(pv)
	tr.Frame(pv)
	tr.Dispose()
	if dev.deleted != dev.created || dev.created == 0 {
		t.Fatalf("created %d buffers, deleted %d", dev.created, dev.deleted)
	}
	if tr.MeshCount(w.Chunks()[0]) != 0 {
		t.Fatal("dispose should reset cached meshes")
	}
}

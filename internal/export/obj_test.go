package export

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"voxel/internal/world"
)

func flatWorld() *world.World {
	w := world.NewWithSize(world.Size{X: 1, Y: 1, Z: 1}, 7, world.WithGenerator(world.NewFlatGenerator(4)))
	w.GenerateAll()
	return w
}

func countPrefix(text, prefix string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestWriteOBJFlatSlab(t *testing.T) {
	var buf bytes.Buffer
	stats, err := WriteOBJ(&buf, flatWorld())
	if err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}

	// Only the 16x16 grass top is exposed in a single-chunk world.
	if stats.Chunks != 1 || stats.Triangles != 16*16*2 || stats.Vertices != 16*16*6 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	out := buf.String()
	if got := countPrefix(out, "v "); got != stats.Vertices {
		t.Errorf("expected %d vertex lines, got %d", stats.Vertices, got)
	}
	if got := countPrefix(out, "f "); got != stats.Triangles {
		t.Errorf("expected %d face lines, got %d", stats.Triangles, got)
	}
	if !strings.Contains(out, "usemtl grass\n") {
		t.Error("top faces should use the grass material")
	}
	if !strings.HasPrefix(out, "# voxel world seed 7") {
		t.Errorf("missing header: %q", out[:min(len(out), 40)])
	}
}

func TestWriteOBJSkipsUngenerated(t *testing.T) {
	w := world.NewWithSize(world.Size{X: 2, Y: 1, Z: 1}, 1, world.WithGenerator(world.NewFlatGenerator(4)))
	var buf bytes.Buffer
	stats, err := WriteOBJ(&buf, w)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Chunks != 0 || countPrefix(buf.String(), "o ") != 0 {
		t.Fatalf("nothing generated, nothing exported: %+v", stats)
	}
}

func TestWriteFileCompressed(t *testing.T) {
	w := flatWorld()
	dir := t.TempDir()

	plainPath := filepath.Join(dir, "world.obj")
	zstPath := filepath.Join(dir, "world.obj.zst")
	if _, err := WriteFile(plainPath, w, false); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteFile(zstPath, w, true); err != nil {
		t.Fatal(err)
	}

	read := func(path string) []byte {
		rc, err := Open(path)
		if err != nil {
			t.Fatalf("Open %s: %v", path, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		return data
	}

	if !bytes.Equal(read(plainPath), read(zstPath)) {
		t.Fatal("compressed export should decode to the plain export")
	}
}

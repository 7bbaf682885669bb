// Package export writes world meshes to Wavefront OBJ files.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"voxel/internal/meshing"
	"voxel/internal/world"

	"github.com/klauspost/compress/zstd"
)

// Stats counts what an export wrote.
type Stats struct {
	Chunks    int
	Vertices  int
	Triangles int
}

// WriteOBJ writes the mesh of every generated chunk in world space. Faces
// are grouped per chunk and tagged with the block kind name as material.
func WriteOBJ(w io.Writer, wd *world.World) (Stats, error) {
	var stats Stats
	bw := bufio.NewWriterSize(w, 256*1024)
	m := meshing.NewMesher()

	size := wd.Size()
	fmt.Fprintf(bw, "# voxel world seed %d, %dx%dx%d chunks\n", wd.Seed(), size.X, size.Y, size.Z)

	for _, c := range wd.Chunks() {
		if !c.IsGenerated() {
			continue
		}
		verts := m.Build(c)
		if len(verts) == 0 {
			continue
		}
		stats.Chunks++

		ox, oy, oz := c.Coord.Origin()
		fmt.Fprintf(bw, "o chunk_%d_%d_%d\n", c.Coord.X, c.Coord.Y, c.Coord.Z)

		material := -1
		for i := 0; i+2 < len(verts); i += 3 {
			if code := materialCode(verts[i][3]); code != material {
				material = code
				fmt.Fprintf(bw, "usemtl %s\n", mtlName(world.BlockType(code)))
			}
			for _, v := range verts[i : i+3] {
				fmt.Fprintf(bw, "v %d %d %d\n", ox+int(v[0]), oy+int(v[1]), oz+int(v[2]))
			}
			// OBJ indices are 1-based and global.
			base := stats.Vertices + i + 1
			fmt.Fprintf(bw, "f %d %d %d\n", base, base+1, base+2)
		}
		stats.Vertices += len(verts)
		stats.Triangles += len(verts) / 3
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("write obj: %w", err)
	}
	return stats, nil
}

// WriteFile exports to path, zstd-compressing when compress is set.
func WriteFile(path string, wd *world.World, compress bool) (Stats, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Stats{}, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return Stats{}, err
	}
	defer f.Close()

	if !compress {
		return WriteOBJ(f, wd)
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return Stats{}, err
	}
	stats, err := WriteOBJ(enc, wd)
	if err != nil {
		enc.Close()
		return stats, err
	}
	if err := enc.Close(); err != nil {
		return stats, fmt.Errorf("zstd close: %w", err)
	}
	return stats, nil
}

// Open returns a reader over an export, decompressing .zst files.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &zstdFile{Decoder: dec, f: f}, nil
}

type zstdFile struct {
	*zstd.Decoder
	f *os.File
}

func (z *zstdFile) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

func materialCode(m uint8) int {
	if m >= meshing.VerticalMaterialOffset {
		m -= meshing.VerticalMaterialOffset
	}
	return int(m)
}

func mtlName(t world.BlockType) string {
	return strings.ReplaceAll(t.String(), "-", "_")
}

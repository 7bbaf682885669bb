package graphics

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"voxel/internal/world"
)

func TestFlatAtlasLayout(t *testing.T) {
	img := FlatAtlas(8)
	if got := img.Bounds().Size(); got != (image.Point{X: 8 * AtlasTiles, Y: 8}) {
		t.Fatalf("unexpected atlas size %v", got)
	}

	if a := img.RGBAAt(3, 3).A; a != 0 {
		t.Errorf("air tile should be transparent, alpha %d", a)
	}

	stone := int(world.BlockTypeStone) * 8
	px := img.RGBAAt(stone+2, 0)
	if px.A != 255 {
		t.Errorf("stone should be opaque, alpha %d", px.A)
	}
	base := world.Kinds[world.BlockTypeStone].Color[0]
	if px.R != base && px.R != darken(base) {
		t.Errorf("stone tile red %d does not match kind color %d", px.R, base)
	}
}

func TestNormalizeAtlas(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 3))
	for x := 0; x < 20; x++ {
		for y := 0; y < 3; y++ {
			src.SetRGBA(x, y, color.RGBA{R: uint8(x), A: 255})
		}
	}

	dst := NormalizeAtlas(src)
	if got := dst.Bounds().Size(); got != (image.Point{X: 4 * AtlasTiles, Y: 4}) {
		t.Fatalf("expected 64x4 atlas, got %v", got)
	}
	if dst.RGBAAt(0, 0).R != 0 || dst.RGBAAt(dst.Bounds().Dx()-1, 3).R != 19 {
		t.Error("nearest-neighbor scaling should keep the strip ends")
	}
}

func TestLoadAtlas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, FlatAtlas(16)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := LoadAtlas(path)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{X: 16 * AtlasTiles, Y: 16}) {
		t.Fatalf("unexpected atlas size %v", got)
	}

	if _, err := LoadAtlas(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"voxel/internal/world"

	xdraw "golang.org/x/image/draw"
)

// AtlasTiles is the number of square tiles in the horizontal atlas strip,
// one per block code.
const AtlasTiles = world.NumBlockTypes

// DefaultTileSize is the tile edge of the generated atlas.
const DefaultTileSize = 16

// FlatAtlas paints one tile per block kind from the kind table colors. Tiles
// get a faint checker so faces read as blocks; cutout and liquid kinds are
// given alpha the fragment shader understands.
func FlatAtlas(tile int) *image.RGBA {
	tile = max(tile, 1)
	cell := max(tile/4, 1)
	img := image.NewRGBA(image.Rect(0, 0, tile*AtlasTiles, tile))

	for code := 0; code < AtlasTiles; code++ {
		k := world.KindOf(world.BlockType(code))
		for y := 0; y < tile; y++ {
			for x := 0; x < tile; x++ {
				checker := (x/cell+y/cell)%2 == 0
				img.SetRGBA(code*tile+x, y, tilePixel(k, checker))
			}
		}
	}
	return img
}

func tilePixel(k world.Kind, checker bool) color.RGBA {
	r, g, b := k.Color[0], k.Color[1], k.Color[2]
	if checker {
		r, g, b = darken(r), darken(g), darken(b)
	}

	var a uint8
	switch k.Transparency {
	case world.TransparencyInvisible:
		a = 0
	case world.TransparencyCutout:
		// holes in every other cell
		if checker {
			a = 255
		}
	case world.TransparencyLiquid:
		a = 180
	case world.TransparencyTranslucent:
		a = 128
	default:
		a = 255
	}
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func darken(v uint8) uint8 {
	return uint8(int(v) * 7 / 8)
}

// NormalizeAtlas rescales an arbitrary strip image to AtlasTiles square
// tiles whose edge is the source height rounded up to a power of two.
func NormalizeAtlas(src image.Image) *image.RGBA {
	tile := nextPow2(src.Bounds().Dy())
	dst := image.NewRGBA(image.Rect(0, 0, tile*AtlasTiles, tile))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// LoadAtlas decodes an image file and normalizes it into an atlas strip.
func LoadAtlas(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open atlas: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode atlas %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode atlas %s: empty image", path)
	}
	return NormalizeAtlas(img), nil
}

func nextPow2(v int) int {
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}

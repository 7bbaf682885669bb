package world

const (
	// SeaLevel is the world-space Y below which open columns fill with water.
	SeaLevel = 4

	heightOctaves  = 6
	heightScale    = 256.0
	densityOctaves = 3
	densityScale   = 16.0
	densityWeight  = 5.0
)

// TerrainGenerator fills chunk block fields.
type TerrainGenerator interface {
	// HeightAt returns the surface threshold for a world-space column.
	HeightAt(worldX, worldZ int) int
	// PopulateChunk writes terrain into c's block field.
	PopulateChunk(c *Chunk)
}

// Generator is the layered simplex-noise terrain generator.
type Generator struct {
	seed  int64
	noise *Simplex
}

// NewGenerator creates a noise generator for seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:  seed,
		noise: NewSimplex(seed),
	}
}

// Seed returns the generator seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// columnNoise is the scaled 2D height noise for a column.
func (g *Generator) columnNoise(worldX, worldZ int) float64 {
	return g.noise.Octaves2(heightOctaves, float64(worldX)/heightScale, float64(worldZ)/heightScale) * SeaLevel
}

// HeightAt computes the integer height threshold at world X,Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	return int(g.columnNoise(worldX, worldZ) * 2)
}

// PopulateChunk fills a chunk from the height and density noise.
func (g *Generator) PopulateChunk(c *Chunk) {
	baseX, baseY, baseZ := c.Coord.Origin()
	f := c.Blocks()

	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			wx := baseX + lx
			wz := baseZ + lz
			n := g.columnNoise(wx, wz)
			h := int(n * 2)

			for ly := 0; ly < ChunkSizeY; ly++ {
				wy := baseY + ly
				if wy >= h {
					if wy < SeaLevel {
						f.Put(lx, ly, lz, BlockTypeWater)
						continue
					}
					break
				}

				r := g.noise.Octaves3(densityOctaves,
					float64(wx)/densityScale, float64(wy)/densityScale, float64(wz)/densityScale)

				switch {
				case n+r*densityWeight >= 2*SeaLevel:
					f.Put(lx, ly, lz, BlockTypeStone)
				case h < SeaLevel || wy < h-1:
					f.Put(lx, ly, lz, BlockTypeDirt)
				default:
					f.Put(lx, ly, lz, BlockTypeGrass)
				}
			}
		}
	}
}

// FlatGenerator fills every column up to a fixed world height.
type FlatGenerator struct {
	height int
}

// NewFlatGenerator creates a generator whose surface is at world Y = height-1.
func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{height: height}
}

// HeightAt returns the fixed height.
func (g *FlatGenerator) HeightAt(worldX, worldZ int) int {
	return g.height
}

// PopulateChunk fills stone, a dirt layer and grass on top.
func (g *FlatGenerator) PopulateChunk(c *Chunk) {
	_, baseY, _ := c.Coord.Origin()
	top := min(g.height-baseY, ChunkSizeY)
	if top <= 0 {
		return
	}
	f := c.Blocks()
	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			for ly := 0; ly < top; ly++ {
				wy := baseY + ly
				switch {
				case wy == g.height-1:
					f.Put(lx, ly, lz, BlockTypeGrass)
				case wy >= g.height-3:
					f.Put(lx, ly, lz, BlockTypeDirt)
				default:
					f.Put(lx, ly, lz, BlockTypeStone)
				}
			}
		}
	}
}

// ColumnHeights samples HeightAt for every column of a chunk, indexed [x][z].
func ColumnHeights(g TerrainGenerator, coord ChunkCoord) [ChunkSizeX][ChunkSizeZ]int {
	var out [ChunkSizeX][ChunkSizeZ]int
	baseX, _, baseZ := coord.Origin()
	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			out[lx][lz] = g.HeightAt(baseX+lx, baseZ+lz)
		}
	}
	return out
}

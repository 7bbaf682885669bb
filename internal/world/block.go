package world

// BlockType is an 8-bit block code. Zero is air.
type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeDirt
	BlockTypeTopsoil
	BlockTypeGrass
	BlockTypeLeaves
	BlockTypeWood
	BlockTypeStone
	BlockTypeSand
	BlockTypeWater
	BlockTypeGlass
	BlockTypeBrick
	BlockTypeOre
	BlockTypeWoodRings
	BlockTypeWhite
	BlockTypeBlack
	BlockTypeXY

	// NumBlockTypes is the size of the kind table.
	NumBlockTypes = 16
)

// Transparency classifies how a block lets light and sight through.
type Transparency uint8

const (
	TransparencyOpaque Transparency = iota
	TransparencyCutout
	TransparencyInvisible
	TransparencyLiquid
	TransparencyTranslucent
)

func (t Transparency) String() string {
	switch t {
	case TransparencyOpaque:
		return "opaque"
	case TransparencyCutout:
		return "cutout"
	case TransparencyInvisible:
		return "invisible"
	case TransparencyLiquid:
		return "liquid"
	case TransparencyTranslucent:
		return "translucent"
	default:
		return "unknown"
	}
}

// Kind describes a block code for material selection outside the core.
type Kind struct {
	Name         string
	Transparency Transparency
	// Color is the base RGB used when no texture atlas is available.
	Color [3]uint8
}

// Kinds is the fixed block kind table indexed by block code.
var Kinds = [NumBlockTypes]Kind{
	BlockTypeAir:       {"air", TransparencyInvisible, [3]uint8{0, 0, 0}},
	BlockTypeDirt:      {"dirt", TransparencyOpaque, [3]uint8{134, 96, 67}},
	BlockTypeTopsoil:   {"topsoil", TransparencyOpaque, [3]uint8{110, 82, 52}},
	BlockTypeGrass:     {"grass", TransparencyOpaque, [3]uint8{95, 159, 53}},
	BlockTypeLeaves:    {"leaves", TransparencyCutout, [3]uint8{60, 120, 40}},
	BlockTypeWood:      {"wood", TransparencyOpaque, [3]uint8{102, 81, 51}},
	BlockTypeStone:     {"stone", TransparencyOpaque, [3]uint8{125, 125, 125}},
	BlockTypeSand:      {"sand", TransparencyOpaque, [3]uint8{219, 207, 163}},
	BlockTypeWater:     {"water", TransparencyLiquid, [3]uint8{47, 67, 244}},
	BlockTypeGlass:     {"glass", TransparencyTranslucent, [3]uint8{200, 230, 240}},
	BlockTypeBrick:     {"brick", TransparencyOpaque, [3]uint8{150, 74, 58}},
	BlockTypeOre:       {"ore", TransparencyOpaque, [3]uint8{140, 130, 110}},
	BlockTypeWoodRings: {"woodrings", TransparencyOpaque, [3]uint8{160, 130, 80}},
	BlockTypeWhite:     {"white", TransparencyOpaque, [3]uint8{240, 240, 240}},
	BlockTypeBlack:     {"black", TransparencyOpaque, [3]uint8{20, 20, 20}},
	BlockTypeXY:        {"x-y", TransparencyOpaque, [3]uint8{255, 0, 255}},
}

var unknownKind = Kind{Name: "unknown", Transparency: TransparencyOpaque, Color: [3]uint8{255, 0, 255}}

// KindOf returns the table entry for a block code.
func KindOf(t BlockType) Kind {
	if int(t) >= NumBlockTypes {
		return unknownKind
	}
	return Kinds[t]
}

// IsSolid reports whether the block takes part in meshing and hides faces.
func (t BlockType) IsSolid() bool {
	return t != BlockTypeAir
}

func (t BlockType) String() string {
	return KindOf(t).Name
}

package world

import "testing"

func TestKindTable(t *testing.T) {
	tests := []struct {
		code BlockType
		name string
		tr   Transparency
	}{
		{BlockTypeAir, "air", TransparencyInvisible},
		{BlockTypeDirt, "dirt", TransparencyOpaque},
		{BlockTypeLeaves, "leaves", TransparencyCutout},
		{BlockTypeWater, "water", TransparencyLiquid},
		{BlockTypeGlass, "glass", TransparencyTranslucent},
		{BlockTypeXY, "x-y", TransparencyOpaque},
		{BlockType(200), "unknown", TransparencyOpaque},
	}
	for _, tt := range tests {
		k := KindOf(tt.code)
		if k.Name != tt.name || k.Transparency != tt.tr {
			t.Errorf("KindOf(%d) = %s/%v, want %s/%v", tt.code, k.Name, k.Transparency, tt.name, tt.tr)
		}
		if tt.code.String() != tt.name {
			t.Errorf("String() = %s, want %s", tt.code.String(), tt.name)
		}
	}
}

func TestOnlyAirIsNonSolid(t *testing.T) {
	if BlockTypeAir.IsSolid() {
		t.Fatal("air must not be solid")
	}
	for code := 1; code < 256; code++ {
		if !BlockType(code).IsSolid() {
			t.Fatalf("code %d should be solid", code)
		}
	}
}

func TestDirections(t *testing.T) {
	for _, d := range Directions {
		dx, dy, dz := d.Offset()
		ox, oy, oz := d.Opposite().Offset()
		if dx+ox != 0 || dy+oy != 0 || dz+oz != 0 {
			t.Errorf("%v and its opposite do not cancel", d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite is not an involution", d)
		}
		if d.Vertical() != (dy != 0) {
			t.Errorf("%v: Vertical() mismatch", d)
		}
	}
	if DirFront.String() != "front" || Direction(9).String() != "Direction(9)" {
		t.Fatal("unexpected direction names")
	}
}

func TestInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an invalid direction")
		}
	}()
	Direction(NumDirections).Offset()
}

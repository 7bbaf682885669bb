package graphics

import "testing"

func TestBakeFont(t *testing.T) {
	atlas, err := BakeFont(nil, 16)
	if err != nil {
		t.Fatalf("BakeFont: %v", err)
	}
	for r := rune(32); r < 127; r++ {
		if _, ok := atlas.Characters[r]; !ok {
			t.Fatalf("missing glyph %q", r)
		}
	}

	a := atlas.Characters['A']
	if a.Width == 0 || a.Height == 0 {
		t.Fatal("'A' should have a bitmap")
	}
	if int(a.AtlasX+a.Width) > atlas.Image.Rect.Dx() || int(a.AtlasY+a.Height) > atlas.Image.Rect.Dy() {
		t.Fatal("glyph outside atlas")
	}

	// Go Mono has a single advance.
	if got, want := atlas.Measure("abc", 1), 3*float32(a.Advance); got != want {
		t.Fatalf("Measure = %v, want %v", got, want)
	}
	if got := len(atlas.vertices(nil, "ab", 0, 0, 1)); got != 2*6*4 {
		t.Fatalf("expected 48 floats for two glyphs, got %d", got)
	}
}

func TestBakeFontRejectsGarbage(t *testing.T) {
	if _, err := BakeFont([]byte("not a font"), 16); err == nil {
		t.Fatal("expected parse error")
	}
}

package ui

import "testing"

func TestRectVerticesCoverViewport(t *testing.T) {
	v := rectVertices(0, 0, 800, 600, 800, 600)
	want := [12]float32{-1, 1, -1, -1, 1, -1, -1, 1, 1, -1, 1, 1}
	if v != want {
		t.Fatalf("full-screen rect: got %v", v)
	}
}

func TestRectVerticesTopLeftOrigin(t *testing.T) {
	v := rectVertices(200, 150, 400, 300, 800, 600)
	// x 200..600 and y 150..450 map to the middle half of clip space.
	if v[0] != -0.5 || v[1] != 0.5 || v[4] != 0.5 || v[5] != -0.5 {
		t.Fatalf("centered rect: got %v", v)
	}
}

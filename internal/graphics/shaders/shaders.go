// Package shaders holds the GLSL sources compiled at startup.
package shaders

import _ "embed"

var (
	//go:embed terrain.vert
	TerrainVert string
	//go:embed terrain.frag
	TerrainFrag string

	//go:embed wireframe.vert
	WireframeVert string
	//go:embed wireframe.frag
	WireframeFrag string

	//go:embed crosshair.vert
	CrosshairVert string
	//go:embed crosshair.frag
	CrosshairFrag string

	//go:embed font.vert
	FontVert string
	//go:embed font.frag
	FontFrag string

	//go:embed ui.vert
	UIVert string
	//go:embed ui.frag
	UIFrag string
)

package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"voxel/internal/graphics/shaders"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	Advance  int
}

// FontAtlas is a baked ASCII glyph sheet.
type FontAtlas struct {
	Image      *image.Alpha
	LineHeight int
	Characters map[rune]FontCharacter
}

const fontAtlasWidth = 512

// BakeFont rasterizes printable ASCII from an OpenType/TrueType font into a
// single-channel atlas. A nil ttf uses the bundled Go Mono face.
func BakeFont(ttf []byte, fontPixels int) (*FontAtlas, error) {
	if ttf == nil {
		ttf = gomono.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	padding := 1
	rowH := face.Metrics().Height.Ceil() + padding

	// First pass: pack rows to size the atlas.
	offsetX, requiredH := 0, rowH
	for r := rune(32); r < 127; r++ {
		dr, _, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		if offsetX+dr.Dx()+padding > fontAtlasWidth {
			requiredH += rowH
			offsetX = 0
		}
		offsetX += dr.Dx() + padding
	}

	atlas := &FontAtlas{
		Image:      image.NewAlpha(image.Rect(0, 0, fontAtlasWidth, nextPow2(requiredH))),
		LineHeight: rowH,
		Characters: make(map[rune]FontCharacter, 95),
	}

	offsetX, offsetY := 0, 0
	for r := rune(32); r < 127; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		gw, gh := dr.Dx(), dr.Dy()
		if offsetX+gw+padding > fontAtlasWidth {
			offsetX = 0
			offsetY += rowH
		}

		fc := FontCharacter{
			AtlasX:   float32(offsetX),
			AtlasY:   float32(offsetY),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  int(math.Round(float64(advance) / 64.0)),
		}
		atlas.Characters[r] = fc
		if gw == 0 || gh == 0 || mask == nil {
			continue
		}

		dstRect := image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh)
		draw.Draw(atlas.Image, dstRect, mask, maskp, draw.Src)
		offsetX += gw + padding
	}
	return atlas, nil
}

// Measure returns the width in pixels of text at the given scale.
func (a *FontAtlas) Measure(text string, scale float32) float32 {
	var width float32
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			fc = a.Characters[' ']
		}
		width += float32(fc.Advance) * scale
	}
	return width
}

// vertices appends two textured triangles per glyph, in pixel space with a
// top-left origin.
func (a *FontAtlas) vertices(dst []float32, text string, x, y, scale float32) []float32 {
	aw := float32(a.Image.Rect.Dx())
	ah := float32(a.Image.Rect.Dy())
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			x += float32(a.Characters[' '].Advance) * scale
			continue
		}

		xPos := x + fc.BearingX*scale
		yPos := y - fc.BearingY*scale
		w := fc.Width * scale
		h := fc.Height * scale
		u0, v0 := fc.AtlasX/aw, fc.AtlasY/ah
		u1, v1 := (fc.AtlasX+fc.Width)/aw, (fc.AtlasY+fc.Height)/ah

		dst = append(dst,
			xPos, yPos+h, u0, v1,
			xPos, yPos, u0, v0,
			xPos+w, yPos, u1, v0,

			xPos, yPos+h, u0, v1,
			xPos+w, yPos, u1, v0,
			xPos+w, yPos+h, u1, v1,
		)
		x += float32(fc.Advance) * scale
	}
	return dst
}

// FontRenderer draws text from a baked atlas in screen pixels.
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	texture    uint32
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
	scratch    []float32
}

// NewFontRenderer uploads the atlas and compiles the text program.
func NewFontRenderer(atlas *FontAtlas, width, height int) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(shaders.FontVert, shaders.FontFrag)
	if err != nil {
		return nil, fmt.Errorf("font program: %w", err)
	}
	fr := &FontRenderer{atlas: atlas, shader: shader}
	fr.SetViewport(width, height)

	size := atlas.Image.Rect.Size()
	gl.GenTextures(1, &fr.texture)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(size.X), int32(size.Y), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return fr, nil
}

// SetViewport updates the pixel-space projection.
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// LineHeight returns the unscaled line advance in pixels.
func (fr *FontRenderer) LineHeight() float32 {
	return float32(fr.atlas.LineHeight)
}

// Measure returns the width in pixels of text at the given scale.
func (fr *FontRenderer) Measure(text string, scale float32) float32 {
	return fr.atlas.Measure(text, scale)
}

// RenderLines draws lines of text starting at the baseline (x, yStart).
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	fr.scratch = fr.scratch[:0]
	y := yStart
	for _, line := range lines {
		fr.scratch = fr.atlas.vertices(fr.scratch, line, x, y, scale)
		y += lineStep
	}
	if len(fr.scratch) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	fr.shader.SetMatrix4("projection", &fr.projection[0])
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(fr.scratch)*4, gl.Ptr(fr.scratch), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(fr.scratch)/4))

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// Dispose frees the GL objects.
func (fr *FontRenderer) Dispose() {
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	if fr.texture != 0 {
		gl.DeleteTextures(1, &fr.texture)
	}
	fr.shader.Delete()
}

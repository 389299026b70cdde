package desktop

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"fishchase/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Background program.
	bgProg    uint32
	bgVAO     uint32
	bgVBO     uint32
	bgUTop    int32
	bgUBottom int32
	bgUTime   int32

	// Sprite program.
	spriteProg    uint32
	spriteVAO     uint32
	spriteVBO     uint32
	spUResolution int32
	spUTex        int32
	spUAlpha      int32

	// Sprite textures.
	playerTex   uint32
	obstacleTex uint32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	layers scene.Layers
}

func NewRenderer() (*Renderer, error) {
	bgProg, err := linkProgram(backgroundVertSrc, backgroundFragSrc)
	if err != nil {
		return nil, fmt.Errorf("background program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(bgProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &Renderer{
		bgProg:     bgProg,
		spriteProg: spriteProg,
	}

	// Background VAO/VBO: a unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &r.bgVAO)
	gl.GenBuffers(1, &r.bgVBO)
	gl.BindVertexArray(r.bgVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.bgVBO)
	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(bgProg)
	r.bgUTop = gl.GetUniformLocation(bgProg, gl.Str("uTop\x00"))
	r.bgUBottom = gl.GetUniformLocation(bgProg, gl.Str("uBottom\x00"))
	r.bgUTime = gl.GetUniformLocation(bgProg, gl.Str("uTime\x00"))

	// Sprite VAO/VBO: pos(2) + uv(2) per vertex, streamed every frame.
	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	stride := int32(scene.FloatsPerVertex * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 64*scene.FloatsPerQuad*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))

	gl.UseProgram(spriteProg)
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))
	r.spUTex = gl.GetUniformLocation(spriteProg, gl.Str("uTex\x00"))
	r.spUAlpha = gl.GetUniformLocation(spriteProg, gl.Str("uAlpha\x00"))
	gl.Uniform1i(r.spUTex, 0)
	gl.Uniform1f(r.spUAlpha, 1)

	gl.BindVertexArray(0)
	return r, nil
}

// uploadTexture creates an RGBA texture from img. Sprites are sampled
// linearly, the font atlas with nearest filtering.
func uploadTexture(img *image.NRGBA, filter int32) uint32 {
	b := img.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return tex
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.bgVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.bgVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.bgProg, r.spriteProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.fontTex, r.playerTex, r.obstacleTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.ActiveTexture(gl.TEXTURE0)
}

// DrawBackground fills the screen with the water gradient.
func (r *Renderer) DrawBackground(t float64) {
	gl.UseProgram(r.bgProg)
	gl.BindVertexArray(r.bgVAO)
	tr, tg, tb := Palette.SkyTop.Floats()
	br, bg, bb := Palette.DeepWater.Floats()
	gl.Uniform3f(r.bgUTop, tr, tg, tb)
	gl.Uniform3f(r.bgUBottom, br, bg, bb)
	gl.Uniform1f(r.bgUTime, float32(t))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

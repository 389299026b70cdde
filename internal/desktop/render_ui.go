package desktop

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"fishchase/internal/game"
	"fishchase/internal/scene"
)

// InitFont rasterises the font atlas and sets up the text rendering pipeline.
func (r *Renderer) InitFont() error {
	atlas := scene.NewAtlas()
	r.fontTex = uploadTexture(atlas.Image, gl.NEAREST)

	// Text shader program.
	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 128*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// DrawString queues a string at screen pixel position (sx, sy) with given scale.
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col RGB) {
	cr, cg, cb := col.Floats()
	r.textBuf = scene.AppendText(r.textBuf, text, sx, sy, scale, cr, cg, cb)
}

// drawShadowed queues text with a one-step drop shadow.
func (r *Renderer) drawShadowed(text string, sx, sy int, scale float32, col RGB) {
	off := int(scale)
	if off < 1 {
		off = 1
	}
	r.DrawString(text, sx+off, sy+off, scale, Palette.Shadow)
	r.DrawString(text, sx, sy, scale, col)
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}

// DrawBubbles queues capture bubbles into the text batch; they share the
// font atlas 'o' glyph and are flushed with the HUD.
func (r *Renderer) DrawBubbles(bs *scene.Bubbles, viewScale float64) {
	cr, cg, cb := Palette.Bubble.Floats()
	r.textBuf = scene.AppendBubbles(r.textBuf, bs, float32(viewScale*1.5), cr, cg, cb)
}

// RenderHUD draws the score, or the loading banner while sprites load.
func (r *Renderer) RenderHUD(state game.GameState, s game.Snapshot, fbW, fbH int) {
	h := scene.LayoutHUD(state, s.Score, s.Scale, fbW, fbH)
	for _, line := range h.Lines {
		col := Palette.Text
		if line.Banner {
			col = Palette.Loading
		}
		r.drawShadowed(line.Text, line.X, line.Y, line.Scale, col)
	}
	r.FlushText(fbW, fbH)
}

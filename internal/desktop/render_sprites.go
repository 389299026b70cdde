package desktop

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"fishchase/internal/assets"
	"fishchase/internal/game"
	"fishchase/internal/scene"
)

// InitSprites uploads the loaded fish sprites. Called once the loader is
// ready; until then DrawScene draws nothing.
func (r *Renderer) InitSprites(set assets.Set) {
	if set.Player != nil {
		r.playerTex = uploadTexture(set.Player.Image, gl.LINEAR)
	}
	if set.Obstacle != nil {
		r.obstacleTex = uploadTexture(set.Obstacle.Image, gl.LINEAR)
	}
}

// SpritesReady reports whether InitSprites has run.
func (r *Renderer) SpritesReady() bool { return r.playerTex != 0 && r.obstacleTex != 0 }

// DrawScene draws obstacles, then followers (the red fish mirrored), then
// the player on top.
func (r *Renderer) DrawScene(s game.Snapshot, fbW, fbH int) {
	if !r.SpritesReady() {
		return
	}
	r.layers.Build(s)

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.drawQuads(r.layers.Obstacles, r.obstacleTex)
	r.drawQuads(r.layers.Followers, r.obstacleTex)
	r.drawQuads(r.layers.Player, r.playerTex)

	gl.Disable(gl.BLEND)
}

func (r *Renderer) drawQuads(buf []float32, tex uint32) {
	n := scene.Quads(buf)
	if n == 0 {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(n*scene.VertsPerQuad))
}

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"fishchase/internal/game"
)

// keyBindings maps arrows and WASD onto movement intents.
var keyBindings = []struct {
	key  glfw.Key
	move game.Key
}{
	{glfw.KeyUp, game.KeyUp},
	{glfw.KeyW, game.KeyUp},
	{glfw.KeyDown, game.KeyDown},
	{glfw.KeyS, game.KeyDown},
	{glfw.KeyLeft, game.KeyLeft},
	{glfw.KeyA, game.KeyLeft},
	{glfw.KeyRight, game.KeyRight},
	{glfw.KeyD, game.KeyRight},
}

type Input struct {
	prevKeys    map[glfw.Key]bool
	prevCursorX float64
	prevCursorY float64
	pointer     game.Point
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Poll samples held keys and, while the left button is held, the cursor as
// a drag pointer in framebuffer pixels.
func (in *Input) Poll(window *glfw.Window, fbW, fbH int) game.Input {
	var ks game.KeySet
	for _, b := range keyBindings {
		if window.GetKey(b.key) == glfw.Press {
			ks = ks.With(b.move)
		}
	}
	out := game.Input{Keys: ks}

	cx, cy := window.GetCursorPos()
	moved := cx != in.prevCursorX || cy != in.prevCursorY
	in.prevCursorX, in.prevCursorY = cx, cy
	if window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press && moved {
		in.pointer = cursorFramebufferPos(window, cx, cy, fbW, fbH)
		out.Pointer = &in.pointer
	}
	return out
}

// cursorFramebufferPos converts window cursor coordinates to framebuffer
// pixels, which differ on HiDPI displays.
func cursorFramebufferPos(window *glfw.Window, cx, cy float64, fbW, fbH int) game.Point {
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return game.Point{X: cx, Y: cy}
	}
	scaleX := float64(fbW) / float64(winW)
	scaleY := float64(fbH) / float64(winH)
	return game.Point{X: cx * scaleX, Y: cy * scaleY}
}

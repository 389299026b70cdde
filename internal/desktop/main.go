// Package desktop is the glfw + OpenGL frontend. It steps the simulation
// once per display refresh and draws each snapshot.
package desktop

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"fishchase/internal/app"
	"fishchase/internal/assets"
	"fishchase/internal/game"
	"fishchase/internal/scene"
)

// Run opens the window and blocks until it is closed.
func Run(cfg app.Config) error {
	runtime.LockOSThread()
	log := cfg.Log.With().Str("frontend", "desktop").Logger()

	window, err := initWindow(log)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Debug().Str("gl", gl.GoStr(gl.GetString(gl.VERSION))).Msg("context ready")

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0, 0, 0, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loader := assets.Start(ctx, log, cfg.Assets)

	bus := game.NewEventBus()
	app.AttachLogging(bus, log)

	fbW, fbH := window.GetFramebufferSize()
	world := game.NewWorld(cfg.Tuning, cfg.Seed, float64(fbW), float64(fbH), bus)
	session := game.NewGameSession(world, loader.Ready())
	bubbles := scene.NewBubbles(scene.MaxBubbles, cfg.Seed^0xB0BB1E)
	bubbles.Attach(bus, world)
	input := NewInput()

	log.Info().Uint64("seed", cfg.Seed).Int("width", fbW).Int("height", fbH).Msg("starting")
	defer app.LogFinal(log, world)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if input.JustPressed(window, glfw.KeyEscape) {
			window.SetShouldClose(true)
			continue
		}
		if err := loader.Err(); err != nil {
			return fmt.Errorf("load sprites: %w", err)
		}

		fbW, fbH = window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			// Minimised.
			continue
		}
		if world.Resize(float64(fbW), float64(fbH)) {
			log.Debug().Int("width", fbW).Int("height", fbH).Float64("scale", world.Scale()).Msg("resize")
		}

		snap, _ := session.Frame(input.Poll(window, fbW, fbH))
		if session.State == game.StatePlaying && !rend.SpritesReady() {
			set, err := loader.Result()
			if err != nil {
				return fmt.Errorf("load sprites: %w", err)
			}
			rend.InitSprites(set)
		}
		bubbles.Update(dt)

		rend.BeginFrame(fbW, fbH)
		rend.DrawBackground(now)
		rend.DrawScene(snap, fbW, fbH)
		rend.DrawBubbles(bubbles, snap.Scale)
		rend.RenderHUD(session.State, snap, fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}

// Package term is the tcell frontend. Each terminal cell stands for a block
// of simulation pixels; the simulation itself is unchanged.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"fishchase/internal/app"
	"fishchase/internal/assets"
	"fishchase/internal/game"
	"fishchase/internal/scene"
)

// FrameDuration paces the simulation at one tick per 60 Hz refresh.
const FrameDuration = time.Second / 60

// Run takes over the terminal and blocks until the player quits.
func Run(cfg app.Config) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()
	s.HideCursor()
	s.EnableMouse()

	return run(s, cfg)
}

func run(s tcell.Screen, cfg app.Config) error {
	log := cfg.Log.With().Str("frontend", "term").Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// Cells are drawn as glyphs, but sprite loading still gates play.
	loader := assets.Start(ctx, log, cfg.Assets)

	bus := game.NewEventBus()
	app.AttachLogging(bus, log)

	cols, rows := s.Size()
	vw, vh := ViewSize(cols, rows)
	world := game.NewWorld(cfg.Tuning, cfg.Seed, vw, vh, bus)
	session := game.NewGameSession(world, loader.Ready())
	bubbles := scene.NewBubbles(scene.MaxBubbles, cfg.Seed^0xB0BB1E)
	bubbles.Attach(bus, world)
	log.Info().Uint64("seed", cfg.Seed).Int("cols", cols).Int("rows", rows).Msg("starting")
	defer app.LogFinal(log, world)

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				// Screen finalised.
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	keys := NewKeyHold()
	var pointer *game.Point

	tick := time.NewTicker(FrameDuration)
	defer tick.Stop()

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				cols, rows = s.Size()
				if world.Resize(ViewSize(cols, rows)) {
					log.Debug().Int("cols", cols).Int("rows", rows).Float64("scale", world.Scale()).Msg("resize")
				}
				s.Sync()
			case *tcell.EventKey:
				if isQuit(e) {
					return nil
				}
				if k, ok := moveKey(e); ok {
					keys.Press(k, time.Now())
				}
			case *tcell.EventMouse:
				if e.Buttons()&tcell.Button1 != 0 {
					pt := CellCentre(e.Position())
					pointer = &pt
				}
			}
		case <-tick.C:
			if err := loader.Err(); err != nil {
				return fmt.Errorf("load sprites: %w", err)
			}
			snap, _ := session.Frame(game.Input{Keys: keys.Held(time.Now()), Pointer: pointer})
			pointer = nil
			bubbles.Update(FrameDuration.Seconds())
			Draw(s, session.State, snap, bubbles)
		}
	}
}

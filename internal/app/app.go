// Package app holds what both frontends share: run configuration, seed
// resolution and event logging.
package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"fishchase/internal/assets"
	"fishchase/internal/game"
)

// SeedEnv overrides the clock seed when -seed is not given.
const SeedEnv = "FISHCHASE_SEED"

// Config is everything a frontend needs to start a run.
type Config struct {
	Tuning game.Tuning
	Seed   uint64
	Assets assets.Paths
	Log    zerolog.Logger
}

// ResolveSeed picks the flag value, then the env value, then the clock.
// A malformed explicit seed is an error.
func ResolveSeed(flagVal, envVal string, now time.Time) (uint64, error) {
	for _, s := range []string{flagVal, envVal} {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("seed %q: %w", s, err)
		}
		return v, nil
	}
	return uint64(now.UnixNano()), nil
}

// AttachLogging subscribes debug/info lines for simulation events.
func AttachLogging(bus *game.EventBus, log zerolog.Logger) {
	bus.Subscribe(game.EventCapture, func(e game.Event) {
		log.Debug().Uint64("tick", e.Tick).Int("score", e.Data).
			Float64("x", e.X).Float64("y", e.Y).Msg("capture")
	})
	bus.Subscribe(game.EventChainFull, func(e game.Event) {
		log.Info().Uint64("tick", e.Tick).Int("followers", e.Data).Msg("follower chain full")
	})
	bus.Subscribe(game.EventObstacleSpawned, func(e game.Event) {
		log.Trace().Uint64("tick", e.Tick).Float64("y", e.Y).Msg("obstacle spawned")
	})
	bus.Subscribe(game.EventObstacleCulled, func(e game.Event) {
		log.Trace().Uint64("tick", e.Tick).Msg("obstacle culled")
	})
}

// LogFinal writes the end-of-run summary line.
func LogFinal(log zerolog.Logger, w *game.World) {
	log.Info().
		Int("score", w.Score).
		Int("followers", w.Chain.Len()).
		Uint64("ticks", w.Tick).
		Msg("run finished")
}

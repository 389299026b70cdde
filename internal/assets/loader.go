// Package assets loads the two fish sprites and exposes their readiness as
// a latch the frame loop can poll.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"fishchase/internal/game"
)

// Default sprite files, looked up relative to the working directory.
const (
	DefaultPlayerPath   = "swimmy.gif"
	DefaultObstaclePath = "red.gif"
)

// Set holds both sprites the game needs before its first tick.
type Set struct {
	Player   *Sprite
	Obstacle *Sprite
}

// Paths names the sprite files.
type Paths struct {
	Player   string
	Obstacle string
}

func DefaultPaths() Paths {
	return Paths{Player: DefaultPlayerPath, Obstacle: DefaultObstaclePath}
}

// Loader decodes both sprites concurrently. Ready opens once both are
// decoded, in whichever order they finish.
type Loader struct {
	latch *Latch
	done  chan struct{}
	set   Set
	err   error
}

// Start begins loading in the background.
func Start(ctx context.Context, log zerolog.Logger, p Paths) *Loader {
	l := &Loader{latch: NewLatch(2), done: make(chan struct{})}
	go func() {
		defer close(l.done)
		l.err = l.run(ctx, log, p)
	}()
	return l
}

func (l *Loader) run(ctx context.Context, log zerolog.Logger, p Paths) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := loadSprite(ctx, log, "player", p.Player, func() *image.NRGBA {
			return DrawFish(int(game.FishWidth), int(game.FishHeight), SwimmyBody, SwimmyFin, true)
		})
		if err != nil {
			return err
		}
		l.set.Player = s
		l.latch.Signal()
		return nil
	})
	g.Go(func() error {
		s, err := loadSprite(ctx, log, "obstacle", p.Obstacle, func() *image.NRGBA {
			return DrawFish(int(game.FishWidth), int(game.FishHeight), RedBody, RedFin, false)
		})
		if err != nil {
			return err
		}
		l.set.Obstacle = s
		l.latch.Signal()
		return nil
	})
	return g.Wait()
}

// Ready is closed once both sprites are available.
func (l *Loader) Ready() <-chan struct{} { return l.latch.Done() }

// Finished is closed when loading ended, successfully or not.
func (l *Loader) Finished() <-chan struct{} { return l.done }

// Result blocks until loading ends.
func (l *Loader) Result() (Set, error) {
	<-l.done
	return l.set, l.err
}

// Err returns the load error without blocking; nil while still loading.
func (l *Loader) Err() error {
	select {
	case <-l.done:
		return l.err
	default:
		return nil
	}
}

// Load is the blocking form of Start + Result.
func Load(ctx context.Context, log zerolog.Logger, p Paths) (Set, error) {
	return Start(ctx, log, p).Result()
}

// loadSprite decodes path. A missing file falls back to a generated sprite;
// any other failure is an error.
func loadSprite(ctx context.Context, log zerolog.Logger, name, path string, fallback func() *image.NRGBA) (*Sprite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		return &Sprite{Name: name, Image: fallback(), Generated: true}, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("sprite", name).Str("path", path).Msg("sprite file missing, using generated fish")
		return &Sprite{Name: name, Image: fallback(), Generated: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s sprite: %w", name, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s sprite %s: %w", name, path, err)
	}
	s := &Sprite{Name: name, Image: toNRGBA(img)}
	w, h := s.Size()
	log.Debug().Str("sprite", name).Str("path", path).Str("format", format).Int("w", w).Int("h", h).Msg("sprite loaded")
	return s, nil
}

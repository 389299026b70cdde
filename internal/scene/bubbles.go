package scene

import (
	"math"

	"fishchase/internal/game"
)

const (
	MaxBubbles     = 256
	bubbleBurst    = 6
	bubbleLife     = 0.9  // seconds
	bubbleRise     = 90.0 // px/s at scale 1
	bubbleDrag     = 1.8
	bubbleSpreadVX = 60.0
)

// Bubble is a cosmetic particle released when a red fish is caught. It is
// never fed back into the simulation.
type Bubble struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // negative = delayed start
	MaxLife float64
	Size    float64
}

// Bubbles is a fixed-capacity pool that overwrites the oldest entries
// once full.
type Bubbles struct {
	Max    int
	P      []Bubble
	rng    *game.Rand
	ovrIdx int
}

func NewBubbles(maxBubbles int, seed uint64) *Bubbles {
	if maxBubbles <= 0 {
		maxBubbles = MaxBubbles
	}
	return &Bubbles{
		Max: maxBubbles,
		P:   make([]Bubble, 0, maxBubbles),
		rng: game.NewRand(seed),
	}
}

func (bs *Bubbles) Clear() {
	bs.P = bs.P[:0]
	bs.ovrIdx = 0
}

func (bs *Bubbles) Add(b Bubble) {
	if len(bs.P) < bs.Max {
		bs.P = append(bs.P, b)
		return
	}
	// Circular overwrite.
	if bs.ovrIdx >= bs.Max {
		bs.ovrIdx = 0
	}
	bs.P[bs.ovrIdx] = b
	bs.ovrIdx++
}

// Burst releases a handful of bubbles around (x, y), staggered slightly.
func (bs *Bubbles) Burst(x, y, scale float64) {
	for i := 0; i < bubbleBurst; i++ {
		bs.Add(Bubble{
			X:       x + bs.rng.RangeF(-8, 8)*scale,
			Y:       y + bs.rng.RangeF(-6, 6)*scale,
			VX:      bs.rng.RangeF(-bubbleSpreadVX, bubbleSpreadVX) * scale,
			VY:      -bubbleRise * bs.rng.RangeF(0.6, 1.2) * scale,
			Life:    -float64(i) * 0.03,
			MaxLife: bubbleLife * bs.rng.RangeF(0.8, 1.2),
			Size:    bs.rng.RangeF(0.7, 1.3),
		})
	}
}

// Attach releases a burst at every capture. The capture event carries the
// caught fish's top-left corner.
func (bs *Bubbles) Attach(bus *game.EventBus, w *game.World) {
	bus.Subscribe(game.EventCapture, func(e game.Event) {
		s := w.Scale()
		bs.Burst(e.X+w.Tuning.FishWidth*s/2, e.Y+w.Tuning.FishHeight*s/2, s)
	})
}

// Update advances bubbles by dt seconds and drops expired ones.
func (bs *Bubbles) Update(dt float64) {
	if dt <= 0 {
		return
	}
	drag := math.Exp(-bubbleDrag * dt)
	for i := 0; i < len(bs.P); {
		b := &bs.P[i]
		b.Life += dt
		if b.Life >= b.MaxLife {
			last := len(bs.P) - 1
			bs.P[i] = bs.P[last]
			bs.P = bs.P[:last]
			continue
		}
		if b.Life >= 0 {
			b.VX *= drag
			b.X += b.VX * dt
			b.Y += b.VY * dt
		}
		i++
	}
	if bs.ovrIdx > len(bs.P) {
		bs.ovrIdx = 0
	}
}

// Alpha fades a bubble out over its life; delayed bubbles are invisible.
func (b Bubble) Alpha() float64 {
	if b.Life < 0 || b.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, 1-b.Life/b.MaxLife)
}

// AppendBubbles lays out visible bubbles as 'o' glyph quads in the text
// vertex format.
func AppendBubbles(buf []float32, bs *Bubbles, scale float32, r, g, b float32) []float32 {
	u0, v0, u1, v1, _ := GlyphUV('o')
	for _, p := range bs.P {
		a := float32(p.Alpha())
		if a <= 0 {
			continue
		}
		s := scale * float32(p.Size)
		w, h := float32(FontCellW)*s, float32(FontCellH)*s
		x, y := float32(p.X)-w/2, float32(p.Y)-h/2
		buf = append(buf,
			x, y, u0, v0, r, g, b, a,
			x+w, y, u1, v0, r, g, b, a,
			x, y+h, u0, v1, r, g, b, a,
			x+w, y, u1, v0, r, g, b, a,
			x+w, y+h, u1, v1, r, g, b, a,
			x, y+h, u0, v1, r, g, b, a,
		)
	}
	return buf
}

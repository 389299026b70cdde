// Package scene turns simulation snapshots into GPU-ready vertex data and
// text layouts. It has no GL dependency so it can be tested headless.
package scene

import "fishchase/internal/game"

// FloatsPerVertex is x, y, u, v.
const (
	FloatsPerVertex = 4
	VertsPerQuad    = 6
	FloatsPerQuad   = FloatsPerVertex * VertsPerQuad
)

// AppendSpriteQuad appends two triangles covering r in screen pixels.
// mirrored flips the texture horizontally.
func AppendSpriteQuad(buf []float32, r game.Rect, mirrored bool) []float32 {
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.Width), float32(r.Y+r.Height)
	u0, u1 := float32(0), float32(1)
	if mirrored {
		u0, u1 = 1, 0
	}
	// TL, TR, BL then TR, BR, BL.
	return append(buf,
		x0, y0, u0, 0,
		x1, y0, u1, 0,
		x0, y1, u0, 1,
		x1, y0, u1, 0,
		x1, y1, u1, 1,
		x0, y1, u0, 1,
	)
}

// Layers holds one vertex buffer per sprite batch, drawn back to front:
// obstacles, followers (mirrored red fish), player.
type Layers struct {
	Obstacles []float32
	Followers []float32
	Player    []float32
}

// Build refills l from a snapshot, reusing its buffers.
func (l *Layers) Build(s game.Snapshot) {
	l.Obstacles = l.Obstacles[:0]
	for _, r := range s.Obstacles {
		l.Obstacles = AppendSpriteQuad(l.Obstacles, r, false)
	}
	l.Followers = l.Followers[:0]
	// Tail first so the follower nearest the player is drawn on top.
	for i := len(s.Followers) - 1; i >= 0; i-- {
		l.Followers = AppendSpriteQuad(l.Followers, s.Followers[i], true)
	}
	l.Player = AppendSpriteQuad(l.Player[:0], s.Player, false)
}

// Quads returns how many quads a buffer holds.
func Quads(buf []float32) int { return len(buf) / FloatsPerQuad }

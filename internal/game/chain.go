package game

// Follower trails the entity ahead of it in the chain.
type Follower struct {
	X, Y          float64
	Width, Height float64
}

func (f *Follower) Bounds(scale float64) Rect {
	return Rect{X: f.X, Y: f.Y, Width: f.Width * scale, Height: f.Height * scale}
}

// Chain is the ordered follower list. Followers[0] chases the leader,
// Followers[i] chases Followers[i-1].
type Chain struct {
	Followers []Follower
	Cap       int
	Factor    float64

	w, h float64
}

func NewChain(t Tuning) *Chain {
	return &Chain{
		Followers: make([]Follower, 0, t.MaxFollowers),
		Cap:       t.MaxFollowers,
		Factor:    t.FollowFactor,
		w:         t.FishWidth,
		h:         t.FishHeight,
	}
}

func (c *Chain) Len() int { return len(c.Followers) }

// Full reports whether the chain reached its capacity.
func (c *Chain) Full() bool { return len(c.Followers) >= c.Cap }

// Add appends a follower at the tail, or at (leaderX, leaderY) when empty.
// It reports whether the chain grew.
func (c *Chain) Add(leaderX, leaderY float64) bool {
	if c.Full() {
		return false
	}
	x, y := leaderX, leaderY
	if n := len(c.Followers); n > 0 {
		x, y = c.Followers[n-1].X, c.Followers[n-1].Y
	}
	c.Followers = append(c.Followers, Follower{X: x, Y: y, Width: c.w, Height: c.h})
	return true
}

// Update pulls each follower toward the one ahead of it. Index order matters:
// each follower sees its predecessor's position from this same tick.
func (c *Chain) Update(leaderX, leaderY float64) {
	tx, ty := leaderX, leaderY
	for i := range c.Followers {
		f := &c.Followers[i]
		f.X += (tx - f.X) * c.Factor
		f.Y += (ty - f.Y) * c.Factor
		tx, ty = f.X, f.Y
	}
}

// Clear drops every follower.
func (c *Chain) Clear() { c.Followers = c.Followers[:0] }

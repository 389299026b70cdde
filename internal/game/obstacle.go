package game

// Obstacle is a red fish swimming right to left at a fixed speed.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	BaseSpeed     float64
}

func (o *Obstacle) Bounds(scale float64) Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.Width * scale, Height: o.Height * scale}
}

func (o *Obstacle) Update(scale float64) {
	o.X -= o.BaseSpeed * scale
}

// OffScreen reports whether the fish has fully left through the left edge.
func (o *Obstacle) OffScreen(scale float64) bool {
	return o.X < -o.Width*scale
}

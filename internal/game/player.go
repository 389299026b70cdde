package game

// Player is the fish steered by the user. X, Y is the top-left corner in
// viewport pixels; Width and Height are logical (pre-scale).
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64

	// Intent for the current tick only.
	DX, DY float64
}

func NewPlayer(x, y float64, t Tuning) Player {
	return Player{
		X:      x,
		Y:      y,
		Width:  t.FishWidth,
		Height: t.FishHeight,
		Speed:  t.PlayerSpeed,
	}
}

func (p *Player) Bounds(scale float64) Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width * scale, Height: p.Height * scale}
}

// ApplyInput resets the intent and sets it from the held keys.
// Both axes are independent, so diagonals move Speed*√2 per tick.
func (p *Player) ApplyInput(keys KeySet) {
	p.DX = 0
	p.DY = 0
	if keys.Has(KeyLeft) {
		p.DX = -p.Speed
	}
	if keys.Has(KeyRight) {
		p.DX = p.Speed
	}
	if keys.Has(KeyUp) {
		p.DY = -p.Speed
	}
	if keys.Has(KeyDown) {
		p.DY = p.Speed
	}
}

// Update moves by the intent and clamps the scaled box into the viewport.
func (p *Player) Update(scale, viewW, viewH float64) {
	p.X += p.DX * scale
	p.Y += p.DY * scale
	p.Clamp(scale, viewW, viewH)
}

// Clamp keeps the scaled box inside [0, viewW] x [0, viewH]. A viewport
// smaller than the fish pins it to the top-left corner.
func (p *Player) Clamp(scale, viewW, viewH float64) {
	p.X = clampF(p.X, 0, maxF(0, viewW-p.Width*scale))
	p.Y = clampF(p.Y, 0, maxF(0, viewH-p.Height*scale))
}

// PointTo centres the player on a pointer position. No clamping happens
// here; the next Update reclamps.
func (p *Player) PointTo(pt Point, scale float64) {
	p.X = pt.X - p.Width*scale/2
	p.Y = pt.Y - p.Height*scale/2
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

package game

// World owns the whole simulation state. It is single-writer: only the
// frame loop calls Step, Resize and PointerMove.
type World struct {
	Tuning    Tuning
	View      Viewport
	Player    Player
	Obstacles []Obstacle
	Chain     *Chain
	Spawner   *Spawner
	Score     int
	Tick      uint64

	bus  *EventBus
	snap Snapshot
}

// Snapshot is the per-tick view handed to renderers. Its slices are reused
// by the next Step; copy them to keep them longer.
type Snapshot struct {
	Tick      uint64
	Scale     float64
	Width     float64
	Height    float64
	Score     int
	Player    Rect
	Obstacles []Rect
	Followers []Rect
}

// NewWorld places the player a quarter of the way in and halfway down.
func NewWorld(t Tuning, seed uint64, viewW, viewH float64, bus *EventBus) *World {
	rng := NewRand(seed)
	w := &World{
		Tuning:  t,
		View:    NewViewport(viewW, viewH),
		Chain:   NewChain(t),
		Spawner: NewSpawner(t, rng),
		bus:     bus,
	}
	w.Player = NewPlayer(w.View.Width/4, w.View.Height/2, t)
	return w
}

// Scale is the current viewport scale.
func (w *World) Scale() float64 { return w.View.Scale }

// Resize applies a new surface size. The player is reclamped by the next
// Step, not here.
func (w *World) Resize(viewW, viewH float64) bool {
	return w.View.Resize(viewW, viewH)
}

// PointerMove places the player under a pointer between ticks.
func (w *World) PointerMove(pt Point) {
	w.Player.PointTo(pt, w.View.Scale)
}

// Step runs one tick:
//  1. input intent (pointer override first)
//  2. player move + clamp
//  3. obstacles: move, cull off-screen, capture on overlap
//  4. follower chain pursuit
//  5. spawner
func (w *World) Step(in Input) Snapshot {
	w.Tick++
	scale := w.View.Scale
	vw, vh := w.View.Width, w.View.Height

	if in.Pointer != nil {
		w.Player.PointTo(*in.Pointer, scale)
	}
	w.Player.ApplyInput(in.Keys)
	w.Player.Update(scale, vw, vh)

	w.updateObstacles(scale)

	w.Chain.Update(w.Player.X, w.Player.Y)

	if o, ok := w.Spawner.Tick(scale, vw, vh); ok {
		w.Obstacles = append(w.Obstacles, o)
		w.bus.Emit(Event{Type: EventObstacleSpawned, Tick: w.Tick, X: o.X, Y: o.Y})
	}

	return w.Snapshot()
}

// updateObstacles compacts survivors in place. An obstacle culled this tick
// is never collision-tested; each capture scores once.
func (w *World) updateObstacles(scale float64) {
	pr := w.Player.Bounds(scale)
	kept := w.Obstacles[:0]
	for i := range w.Obstacles {
		o := w.Obstacles[i]
		o.Update(scale)
		if o.OffScreen(scale) {
			w.bus.Emit(Event{Type: EventObstacleCulled, Tick: w.Tick, X: o.X, Y: o.Y})
			continue
		}
		if o.Bounds(scale).Intersects(pr) {
			w.capture(o)
			continue
		}
		kept = append(kept, o)
	}
	// Drop stale tail references.
	for i := len(kept); i < len(w.Obstacles); i++ {
		w.Obstacles[i] = Obstacle{}
	}
	w.Obstacles = kept
}

func (w *World) capture(o Obstacle) {
	w.Score++
	grew := w.Chain.Add(w.Player.X, w.Player.Y)
	w.bus.Emit(Event{Type: EventCapture, Tick: w.Tick, X: o.X, Y: o.Y, Data: w.Score})
	if grew && w.Chain.Full() {
		w.bus.Emit(Event{Type: EventChainFull, Tick: w.Tick, Data: w.Chain.Len()})
	}
}

// Snapshot fills the reusable snapshot from the current state.
func (w *World) Snapshot() Snapshot {
	scale := w.View.Scale
	s := &w.snap
	s.Tick = w.Tick
	s.Scale = scale
	s.Width = w.View.Width
	s.Height = w.View.Height
	s.Score = w.Score
	s.Player = w.Player.Bounds(scale)
	s.Obstacles = s.Obstacles[:0]
	for i := range w.Obstacles {
		s.Obstacles = append(s.Obstacles, w.Obstacles[i].Bounds(scale))
	}
	s.Followers = s.Followers[:0]
	for i := range w.Chain.Followers {
		s.Followers = append(s.Followers, w.Chain.Followers[i].Bounds(scale))
	}
	return *s
}

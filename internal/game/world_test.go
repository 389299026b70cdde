package game

import "testing"

// newTestWorld returns an 800x600 world (scale 1) with spawning disabled.
func newTestWorld(t *testing.T, bus *EventBus) *World {
	t.Helper()
	w := NewWorld(DefaultTuning(), 1, 800, 600, bus)
	w.Spawner.Interval = 1 << 30
	return w
}

func redFish(x, y, speed float64) Obstacle {
	return Obstacle{X: x, Y: y, Width: FishWidth, Height: FishHeight, BaseSpeed: speed}
}

func TestNewWorldPlacesPlayer(t *testing.T) {
	w := NewWorld(DefaultTuning(), 1, 800, 600, nil)
	if w.Player.X != 200 || w.Player.Y != 300 {
		t.Fatalf("player at (%v, %v), want (200, 300)", w.Player.X, w.Player.Y)
	}
	if w.Scale() != 1 {
		t.Fatalf("scale = %v, want 1", w.Scale())
	}
}

func TestStepObstacleLifecycle(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Player.X, w.Player.Y = 0, 0
	w.Obstacles = append(w.Obstacles, redFish(800+ObstacleSpawnOffset, 400, 3))

	// ceil((800+20+72)/3) = 298
	ticks := 0
	for len(w.Obstacles) > 0 {
		w.Step(Input{})
		ticks++
		if ticks > 1000 {
			t.Fatalf("obstacle never culled")
		}
	}
	if ticks != 298 {
		t.Fatalf("culled after %d ticks, want 298", ticks)
	}
	if w.Score != 0 || w.Chain.Len() != 0 {
		t.Fatalf("score=%d followers=%d, want no capture", w.Score, w.Chain.Len())
	}
}

func TestStepLifecycleNeverCollidesAtLeftEdge(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Player.X, w.Player.Y = 0, 300
	// The lane below shares only an edge with the player.
	w.Obstacles = append(w.Obstacles, redFish(820, 300+FishHeight, 3))
	for len(w.Obstacles) > 0 {
		w.Step(Input{})
	}
	if w.Score != 0 {
		t.Fatalf("edge-touching lanes should never collide, score=%d", w.Score)
	}
}

func TestStepCapture(t *testing.T) {
	var captures []Event
	bus := NewEventBus()
	bus.Subscribe(EventCapture, func(e Event) { captures = append(captures, e) })

	w := newTestWorld(t, bus)
	w.Player.X, w.Player.Y = 100, 100
	w.Obstacles = append(w.Obstacles, redFish(110, 100, 2))

	snap := w.Step(Input{})
	if snap.Score != 1 || w.Score != 1 {
		t.Fatalf("score = %d, want 1", snap.Score)
	}
	if len(snap.Obstacles) != 0 {
		t.Fatalf("captured obstacle still present: %v", snap.Obstacles)
	}
	if len(snap.Followers) != 1 {
		t.Fatalf("followers = %d, want 1", len(snap.Followers))
	}
	if len(captures) != 1 || captures[0].Data != 1 {
		t.Fatalf("capture events = %+v", captures)
	}
}

func TestStepMultipleCapturesInOneTick(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Player.X, w.Player.Y = 100, 100
	for i := 0; i < 3; i++ {
		w.Obstacles = append(w.Obstacles, redFish(110+float64(i), 100, 2))
	}
	w.Obstacles = append(w.Obstacles, redFish(600, 500, 2))

	before := w.Score
	w.Step(Input{})
	if got := w.Score - before; got != 3 {
		t.Fatalf("score delta = %d, want 3", got)
	}
	if w.Chain.Len() != 3 {
		t.Fatalf("followers = %d, want 3", w.Chain.Len())
	}
	if len(w.Obstacles) != 1 || w.Obstacles[0].Y != 500 {
		t.Fatalf("survivors = %+v, want only the far fish", w.Obstacles)
	}
}

func TestStepFollowerCapAfter31Captures(t *testing.T) {
	var full []Event
	bus := NewEventBus()
	bus.Subscribe(EventChainFull, func(e Event) { full = append(full, e) })

	w := newTestWorld(t, bus)
	w.Player.X, w.Player.Y = 300, 300
	for i := 0; i < 31; i++ {
		w.Obstacles = append(w.Obstacles, redFish(w.Player.X+10, w.Player.Y, 2))
		w.Step(Input{})
	}
	if w.Score != 31 {
		t.Fatalf("score = %d, want 31", w.Score)
	}
	if w.Chain.Len() != MaxFollowers {
		t.Fatalf("followers = %d, want %d", w.Chain.Len(), MaxFollowers)
	}
	if len(full) != 1 {
		t.Fatalf("chain_full events = %d, want 1", len(full))
	}
}

func TestStepCappedCaptureStillScores(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Player.X, w.Player.Y = 100, 100
	for i := 0; i < MaxFollowers; i++ {
		w.Chain.Add(w.Player.X, w.Player.Y)
	}
	for i := 0; i < 3; i++ {
		w.Obstacles = append(w.Obstacles, redFish(110, 100, 2))
	}
	w.Step(Input{})
	if w.Score != 3 || w.Chain.Len() != MaxFollowers {
		t.Fatalf("score=%d followers=%d, want 3 and %d", w.Score, w.Chain.Len(), MaxFollowers)
	}
}

func TestStepScoreNeverDecreases(t *testing.T) {
	w := NewWorld(DefaultTuning(), 12345, 800, 600, nil)
	w.Spawner.Interval = 5
	keys := []KeySet{Keys(KeyRight), Keys(KeyDown), Keys(KeyLeft), Keys(KeyUp), Keys(KeyUp, KeyRight)}
	last := 0
	for i := 0; i < 5000; i++ {
		s := w.Step(Input{Keys: keys[(i/40)%len(keys)]})
		if s.Score < last {
			t.Fatalf("score dropped from %d to %d at tick %d", last, s.Score, s.Tick)
		}
		last = s.Score
		if len(s.Followers) > MaxFollowers {
			t.Fatalf("followers = %d beyond cap", len(s.Followers))
		}
	}
}

func TestStepSpawnCadence(t *testing.T) {
	var spawned []uint64
	bus := NewEventBus()
	bus.Subscribe(EventObstacleSpawned, func(e Event) { spawned = append(spawned, e.Tick) })

	w := NewWorld(DefaultTuning(), 3, 800, 600, bus)
	for i := 0; i < 81*3; i++ {
		w.Step(Input{})
	}
	want := []uint64{81, 162, 243}
	if len(spawned) != len(want) {
		t.Fatalf("spawned on ticks %v, want %v", spawned, want)
	}
	for i := range want {
		if spawned[i] != want[i] {
			t.Fatalf("spawned on ticks %v, want %v", spawned, want)
		}
	}
}

func TestStepCulledObstacleIsNotCaptured(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Player.X, w.Player.Y = 0, 0
	// Overlaps the player before moving but lands fully off-screen this tick.
	w.Obstacles = append(w.Obstacles, redFish(-70, 0, 3))
	w.Step(Input{})
	if len(w.Obstacles) != 0 {
		t.Fatalf("obstacle should be culled")
	}
	if w.Score != 0 {
		t.Fatalf("culled obstacle was captured, score=%d", w.Score)
	}
}

func TestStepPointerOverride(t *testing.T) {
	w := newTestWorld(t, nil)
	pt := Point{X: 400, Y: 300}
	s := w.Step(Input{Pointer: &pt, Keys: Keys(KeyRight)})
	// Pointer places, then the key intent still moves and clamps.
	if s.Player.X != 364+PlayerSpeed || s.Player.Y != 282 {
		t.Fatalf("player at (%v, %v), want (%v, 282)", s.Player.X, s.Player.Y, 364+PlayerSpeed)
	}

	w.PointerMove(Point{X: 2000, Y: 2000})
	if w.Player.X <= 800 {
		t.Fatalf("pointer move between ticks should not clamp")
	}
	s = w.Step(Input{})
	if s.Player.Right() != 800 || s.Player.Bottom() != 600 {
		t.Fatalf("player box %v should be reclamped to the corner", s.Player)
	}
}

func TestStepResizeRescales(t *testing.T) {
	w := newTestWorld(t, nil)
	if !w.Resize(1600, 1200) {
		t.Fatalf("resize reported no change")
	}
	if w.Scale() != 2 {
		t.Fatalf("scale = %v, want 2", w.Scale())
	}
	w.Player.X, w.Player.Y = 0, 0
	s := w.Step(Input{Keys: Keys(KeyRight)})
	if s.Player.X != 2*PlayerSpeed {
		t.Fatalf("x = %v, want %v", s.Player.X, 2*PlayerSpeed)
	}
	if s.Player.Width != 2*FishWidth || s.Player.Height != 2*FishHeight {
		t.Fatalf("player box %v not scaled", s.Player)
	}

	if w.Resize(0, 600) {
		t.Fatalf("zero width should be ignored")
	}
	if w.Scale() != 2 {
		t.Fatalf("scale changed to %v after ignored resize", w.Scale())
	}
}

func TestStepFollowersTrailPlayer(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Player.X, w.Player.Y = 100, 100
	w.Chain.Add(100, 100)
	w.Chain.Add(100, 100)
	for i := 0; i < 20; i++ {
		w.Step(Input{Keys: Keys(KeyRight)})
	}
	f := w.Chain.Followers
	if !(f[1].X < f[0].X && f[0].X < w.Player.X) {
		t.Fatalf("chain not trailing: player=%v f0=%v f1=%v", w.Player.X, f[0].X, f[1].X)
	}
}

func TestSnapshotMatchesState(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Obstacles = append(w.Obstacles, redFish(500, 50, 2), redFish(600, 450, 3))
	w.Chain.Add(10, 10)
	s := w.Step(Input{})
	if s.Tick != 1 || len(s.Obstacles) != 2 || len(s.Followers) != 1 {
		t.Fatalf("snapshot = %+v", s)
	}
	if s.Obstacles[0].X != 498 || s.Obstacles[1].X != 597 {
		t.Fatalf("obstacle xs = %v, %v", s.Obstacles[0].X, s.Obstacles[1].X)
	}
	if s.Width != 800 || s.Height != 600 || s.Scale != 1 {
		t.Fatalf("view = %vx%v@%v", s.Width, s.Height, s.Scale)
	}
}

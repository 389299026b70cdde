package game

type GameState int

const (
	StateLoading GameState = iota // waiting for sprites
	StatePlaying                  // main gameplay
)

func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	}
	return "unknown"
}

// GameSession gates the World behind asset readiness and drives it once
// per frame callback.
type GameSession struct {
	State GameState
	World *World

	ready  <-chan struct{}
	frames uint64
}

// NewGameSession starts in StateLoading until ready is closed. A nil ready
// channel means there is nothing to wait for.
func NewGameSession(w *World, ready <-chan struct{}) *GameSession {
	s := &GameSession{State: StateLoading, World: w, ready: ready}
	if ready == nil {
		s.State = StatePlaying
	}
	return s
}

// Frame is the per-refresh callback. It returns the new snapshot and true
// when a tick ran; during loading it returns the idle snapshot and false.
func (s *GameSession) Frame(in Input) (Snapshot, bool) {
	s.frames++
	if s.State == StateLoading {
		select {
		case <-s.ready:
			s.State = StatePlaying
		default:
			return s.World.Snapshot(), false
		}
	}
	return s.World.Step(in), true
}

// Frames counts every Frame call, loading frames included.
func (s *GameSession) Frames() uint64 { return s.frames }

package game

type EventType int

const (
	EventCapture EventType = iota
	EventObstacleSpawned
	EventObstacleCulled
	EventChainFull
)

func (t EventType) String() string {
	switch t {
	case EventCapture:
		return "capture"
	case EventObstacleSpawned:
		return "obstacle_spawned"
	case EventObstacleCulled:
		return "obstacle_culled"
	case EventChainFull:
		return "chain_full"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	Tick uint64
	X, Y float64
	Data int // Score on capture, chain length on chain_full.
}

type EventHandler func(Event)

// EventBus fans simulation events out to frontends. Handlers run
// synchronously inside the step and must not touch the World.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

package game

// Spawner releases one obstacle each time its timer passes the interval.
// With interval 80 the first fish appears on tick 81 and then every 81 ticks.
type Spawner struct {
	Timer    int
	Interval int

	rng *Rand
	t   Tuning
}

func NewSpawner(t Tuning, rng *Rand) *Spawner {
	return &Spawner{Interval: t.SpawnInterval, rng: rng, t: t}
}

// Tick advances the timer and returns a new obstacle when one is due.
func (s *Spawner) Tick(scale, viewW, viewH float64) (Obstacle, bool) {
	s.Timer++
	if s.Timer <= s.Interval {
		return Obstacle{}, false
	}
	s.Timer = 0
	return s.Spawn(scale, viewW, viewH), true
}

// Spawn builds an obstacle just beyond the right edge with a random lane
// and speed.
func (s *Spawner) Spawn(scale, viewW, viewH float64) Obstacle {
	h := s.t.FishHeight * scale
	return Obstacle{
		X:         viewW + s.t.ObstacleSpawnOffset,
		Y:         s.rng.RangeF(0, viewH-h),
		Width:     s.t.FishWidth,
		Height:    s.t.FishHeight,
		BaseSpeed: s.rng.RangeF(s.t.ObstacleSpeedMin, s.t.ObstacleSpeedMax),
	}
}

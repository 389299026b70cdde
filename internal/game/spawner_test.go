package game

import "testing"

func TestSpawnerCadence(t *testing.T) {
	s := NewSpawner(DefaultTuning(), NewRand(1))
	var spawnedAt []int
	for tick := 1; tick <= 81*3; tick++ {
		if _, ok := s.Tick(1, 800, 600); ok {
			spawnedAt = append(spawnedAt, tick)
		}
	}
	want := []int{81, 162, 243}
	if len(spawnedAt) != len(want) {
		t.Fatalf("spawned at %v, want %v", spawnedAt, want)
	}
	for i := range want {
		if spawnedAt[i] != want[i] {
			t.Fatalf("spawned at %v, want %v", spawnedAt, want)
		}
	}
	if s.Timer != 0 {
		t.Fatalf("timer after spawn = %d, want 0", s.Timer)
	}
}

func TestSpawnerPlacement(t *testing.T) {
	s := NewSpawner(DefaultTuning(), NewRand(99))
	for _, scale := range []float64{0.5, 1, 2} {
		vw, vh := 800*scale, 600*scale
		for i := 0; i < 200; i++ {
			o := s.Spawn(scale, vw, vh)
			if o.X != vw+ObstacleSpawnOffset {
				t.Fatalf("x = %v, want %v", o.X, vw+ObstacleSpawnOffset)
			}
			if o.Y < 0 || o.Y >= vh-FishHeight*scale {
				t.Fatalf("y = %v outside [0, %v)", o.Y, vh-FishHeight*scale)
			}
			if o.BaseSpeed < ObstacleSpeedMin || o.BaseSpeed >= ObstacleSpeedMax {
				t.Fatalf("speed = %v outside [%v, %v)", o.BaseSpeed, ObstacleSpeedMin, ObstacleSpeedMax)
			}
			if o.Width != FishWidth || o.Height != FishHeight {
				t.Fatalf("size = %vx%v, want logical %vx%v", o.Width, o.Height, FishWidth, FishHeight)
			}
		}
	}
}

func TestSpawnerDeterministicPerSeed(t *testing.T) {
	a := NewSpawner(DefaultTuning(), NewRand(5))
	b := NewSpawner(DefaultTuning(), NewRand(5))
	for i := 0; i < 10; i++ {
		oa, ob := a.Spawn(1, 800, 600), b.Spawn(1, 800, 600)
		if oa != ob {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, oa, ob)
		}
	}
}

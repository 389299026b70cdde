package game

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Reference resolution. Every logical size and speed is authored against it
// and multiplied by the viewport scale at runtime.
const (
	ReferenceWidth  = 800
	ReferenceHeight = 600
)

// Window defaults.
const (
	WindowWidth  = ReferenceWidth
	WindowHeight = ReferenceHeight
)

// Fish sprites share one logical size.
const (
	FishWidth  = 72.0
	FishHeight = 36.0
)

// Player constants.
const (
	PlayerSpeed = 5.0 // pre-scale units per tick
)

// Obstacle (red fish) constants.
const (
	ObstacleSpeedMin    = 2.0
	ObstacleSpeedMax    = 3.5 // exclusive
	ObstacleSpawnOffset = 20.0
	SpawnInterval       = 80 // ticks; spawn fires once the timer exceeds this
)

// Follower chain constants.
const (
	MaxFollowers = 30
	FollowFactor = 0.2 // share of the gap closed per tick
)

// ErrInvalidTuning is returned when a tuning file holds unusable values.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning carries every gameplay constant so a YAML file can override them.
// Fields absent from the file keep their defaults; explicit zeros are kept
// and validated like any other value.
type Tuning struct {
	PlayerSpeed         float64 `yaml:"player_speed"`
	FishWidth           float64 `yaml:"fish_width"`
	FishHeight          float64 `yaml:"fish_height"`
	ObstacleSpeedMin    float64 `yaml:"obstacle_speed_min"`
	ObstacleSpeedMax    float64 `yaml:"obstacle_speed_max"`
	ObstacleSpawnOffset float64 `yaml:"obstacle_spawn_offset"`
	SpawnInterval       int     `yaml:"spawn_interval"`
	MaxFollowers        int     `yaml:"max_followers"`
	FollowFactor        float64 `yaml:"follow_factor"`
}

// DefaultTuning returns the shipped gameplay constants.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:         PlayerSpeed,
		FishWidth:           FishWidth,
		FishHeight:          FishHeight,
		ObstacleSpeedMin:    ObstacleSpeedMin,
		ObstacleSpeedMax:    ObstacleSpeedMax,
		ObstacleSpawnOffset: ObstacleSpawnOffset,
		SpawnInterval:       SpawnInterval,
		MaxFollowers:        MaxFollowers,
		FollowFactor:        FollowFactor,
	}
}

// Validate reports the first unusable value.
func (t Tuning) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"player_speed", t.PlayerSpeed},
		{"fish_width", t.FishWidth},
		{"fish_height", t.FishHeight},
		{"obstacle_speed_min", t.ObstacleSpeedMin},
		{"obstacle_speed_max", t.ObstacleSpeedMax},
		{"obstacle_spawn_offset", t.ObstacleSpawnOffset},
		{"follow_factor", t.FollowFactor},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidTuning, f.name, f.v)
		}
	}
	switch {
	case t.PlayerSpeed <= 0:
		return fmt.Errorf("%w: player_speed must be positive, got %v", ErrInvalidTuning, t.PlayerSpeed)
	case t.FishWidth <= 0 || t.FishHeight <= 0:
		return fmt.Errorf("%w: fish size must be positive, got %vx%v", ErrInvalidTuning, t.FishWidth, t.FishHeight)
	case t.ObstacleSpeedMin <= 0:
		return fmt.Errorf("%w: obstacle_speed_min must be positive, got %v", ErrInvalidTuning, t.ObstacleSpeedMin)
	case t.ObstacleSpeedMax <= t.ObstacleSpeedMin:
		return fmt.Errorf("%w: obstacle_speed_max %v must exceed obstacle_speed_min %v", ErrInvalidTuning, t.ObstacleSpeedMax, t.ObstacleSpeedMin)
	case t.ObstacleSpawnOffset < 0:
		return fmt.Errorf("%w: obstacle_spawn_offset must not be negative, got %v", ErrInvalidTuning, t.ObstacleSpawnOffset)
	case t.SpawnInterval < 0:
		return fmt.Errorf("%w: spawn_interval must not be negative, got %d", ErrInvalidTuning, t.SpawnInterval)
	case t.MaxFollowers < 0:
		return fmt.Errorf("%w: max_followers must not be negative, got %d", ErrInvalidTuning, t.MaxFollowers)
	case t.FollowFactor <= 0 || t.FollowFactor > 1:
		return fmt.Errorf("%w: follow_factor must be in (0, 1], got %v", ErrInvalidTuning, t.FollowFactor)
	}
	return nil
}

// ParseTuning decodes YAML data over the defaults.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// LoadTuning reads a tuning file. An empty path yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	if path == "" {
		return DefaultTuning(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return DefaultTuning(), fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(b)
}

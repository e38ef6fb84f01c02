package maze

import (
	"fmt"
	"time"
)

// MazeType selects the dynamic-topology behavior a maze is wrapped with.
type MazeType string

const (
	TypeLinear       MazeType = "linear"
	TypeShadow       MazeType = "shadow"
	TypeMemory       MazeType = "memory"
	TypeMultiLayered MazeType = "multi_layered"
	TypeTimeChanging MazeType = "time_changing"
)

// Behavior defaults applied when the configuration leaves them zero.
const (
	DefaultVisibilityRadius = 3
	DefaultFadeDelay        = 2 * time.Second
	DefaultChangeInterval   = 5 * time.Second
)

// Config describes the maze to build. ObstacleCount and CollectibleCount
// are accepted for the placement collaborators but not consumed here.
type Config struct {
	Type             MazeType
	Difficulty       int
	Width            int
	Height           int
	Layers           int
	ObstacleCount    int
	CollectibleCount int
	UseTemplate      bool
	Template         [][]*Cell

	VisibilityRadius int           // Shadow only; DefaultVisibilityRadius when zero
	FadeDelay        time.Duration // Memory only; DefaultFadeDelay when zero
	ChangeInterval   time.Duration // TimeChanging only; DefaultChangeInterval when zero
}

// TickInput carries the per-tick inputs a behavior update may consume.
// Behaviors read only the fields they care about.
type TickInput struct {
	PlayerPosition Position
	Elapsed        time.Duration
}

// Behavior is a dynamic-topology strategy holding a reference to the maze
// it mutates. At most one behavior may ever be active per maze instance:
// behaviors freely write visibility and wall state in place, so composing
// two would interleave their writes. Update is invoked exactly once per
// external tick, is not reentrant, and never fails; invalid positions are
// ignored.
type Behavior interface {
	Type() MazeType
	Update(in TickInput)
}

// CreateMaze builds a maze from the configuration, choosing template
// cloning when a template is supplied and procedural generation otherwise.
// Requesting template generation without a template fails before any
// generation work.
func CreateMaze(cfg Config, rng Rand) (*Maze, error) {
	if cfg.UseTemplate && cfg.Template == nil {
		return nil, ErrNilTemplate
	}

	var generator Generator
	var err error
	if cfg.Template != nil {
		generator, err = NewHybridGenerator(cfg.Template, cfg.Width, cfg.Height, cfg.Layers, rng)
	} else {
		generator, err = NewDFSGenerator(cfg.Width, cfg.Height, cfg.Layers, rng)
	}
	if err != nil {
		return nil, err
	}
	return generator.Generate()
}

// WrapMaze attaches the behavior matching the configured maze type.
// Linear mazes get no behavior and return nil.
func WrapMaze(m *Maze, cfg Config, rng Rand) (Behavior, error) {
	switch cfg.Type {
	case TypeLinear, "":
		return nil, nil
	case TypeShadow:
		radius := cfg.VisibilityRadius
		if radius <= 0 {
			radius = DefaultVisibilityRadius
		}
		return NewShadowBehavior(m, radius), nil
	case TypeMemory:
		fadeDelay := cfg.FadeDelay
		if fadeDelay <= 0 {
			fadeDelay = DefaultFadeDelay
		}
		return NewMemoryBehavior(m, fadeDelay), nil
	case TypeMultiLayered:
		return NewMultiLayeredBehavior(m, rng), nil
	case TypeTimeChanging:
		interval := cfg.ChangeInterval
		if interval <= 0 {
			interval = DefaultChangeInterval
		}
		return NewTimeChangingBehavior(m, interval, rng), nil
	default:
		return nil, fmt.Errorf("unknown maze type: %q", cfg.Type)
	}
}

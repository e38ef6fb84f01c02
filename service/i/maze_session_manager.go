package i

import (
	"time"

	"github.com/beka-birhanu/vinom-maze-engine/maze"
	"github.com/google/uuid"
)

// Snapshot is a caller-owned copy of a session's observable state, taken
// under the session lock so it never tears against a concurrent tick.
// The behavior-specific fields are meaningful only for the matching type.
type Snapshot struct {
	Maze *maze.Maze // Deep copy; mutating it never touches the session.
	Type maze.MazeType

	VisibilityRadius    int                    // Shadow
	FadeDelay           time.Duration          // Memory
	CurrentLayer        int                    // MultiLayered
	Transitions         []maze.LayerTransition // MultiLayered
	TimeUntilNextChange time.Duration          // TimeChanging
}

// MazeSessionManager manages live maze sessions and drives their per-tick
// behavior updates.
type MazeSessionManager interface {
	// CreateSession generates a maze from the configuration, wraps it with
	// the behavior matching its type and returns the session ID. A zero
	// seed means "pick one".
	CreateSession(cfg maze.Config, seed int64) (uuid.UUID, error)

	// Snapshot returns a copy of the session's observable state.
	Snapshot(id uuid.UUID) (*Snapshot, error)

	// Tick drives the session's behavior update exactly once. A no-op for
	// linear mazes.
	Tick(id uuid.UUID, in maze.TickInput) error

	// UseTransition attempts a layer switch at the given position and
	// reports whether it happened along with the resulting layer. Fails
	// for sessions that are not multi-layered.
	UseTransition(id uuid.UUID, pos maze.Position) (switched bool, currentLayer int, err error)

	// EndSession discards the session.
	EndSession(id uuid.UUID) error
}

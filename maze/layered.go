package maze

// TransitionType labels the direction of a layer transition.
type TransitionType string

const (
	TransitionUp   TransitionType = "up"
	TransitionDown TransitionType = "down"
)

// LayerTransition joins two adjacent layers at a single grid position.
// Transitions are created in matching forward/backward pairs at
// construction time and are immutable afterward.
type LayerTransition struct {
	Position  Position
	FromLayer int
	ToLayer   int
	Type      TransitionType
}

// MultiLayeredBehavior stacks the maze into layers joined by transitions.
// All layers currently share the one grid; callers must not assume
// per-layer wall or obstacle isolation.
type MultiLayeredBehavior struct {
	maze         *Maze
	currentLayer int
	transitions  []LayerTransition
}

// NewMultiLayeredBehavior initializes the behavior and generates one
// bidirectional transition pair per adjacent layer pair, each anchored at
// a uniformly random empty cell, falling back to (0,0) when the grid has
// no empty cell.
func NewMultiLayeredBehavior(m *Maze, rng Rand) *MultiLayeredBehavior {
	b := &MultiLayeredBehavior{maze: m}

	for layer := 0; layer < m.Layers-1; layer++ {
		pos := b.randomEmptyPosition(rng)
		b.transitions = append(b.transitions,
			LayerTransition{Position: pos, FromLayer: layer, ToLayer: layer + 1, Type: TransitionUp},
			LayerTransition{Position: pos, FromLayer: layer + 1, ToLayer: layer, Type: TransitionDown},
		)
	}
	return b
}

// randomEmptyPosition picks a uniformly random empty cell, or (0,0) when
// none exists.
func (b *MultiLayeredBehavior) randomEmptyPosition(rng Rand) Position {
	var empty []Position
	for row := 0; row < b.maze.Height; row++ {
		for col := 0; col < b.maze.Width; col++ {
			if b.maze.Grid[row][col].Type == CellEmpty {
				empty = append(empty, Position{Row: row, Col: col})
			}
		}
	}
	if len(empty) == 0 {
		return Position{Row: 0, Col: 0}
	}
	return empty[rng.Intn(len(empty))]
}

// Type returns TypeMultiLayered.
func (b *MultiLayeredBehavior) Type() MazeType {
	return TypeMultiLayered
}

// CurrentLayer returns the layer the player currently occupies.
func (b *MultiLayeredBehavior) CurrentLayer() int {
	return b.currentLayer
}

// Transitions returns the generated layer transitions.
func (b *MultiLayeredBehavior) Transitions() []LayerTransition {
	return b.transitions
}

// UseTransition switches the current layer when a transition exists at
// the given position departing from the current layer. Any other position
// is a no-op returning false.
func (b *MultiLayeredBehavior) UseTransition(pos Position) bool {
	for _, t := range b.transitions {
		if t.Position == pos && t.FromLayer == b.currentLayer {
			b.currentLayer = t.ToLayer
			return true
		}
	}
	return false
}

// Update is a no-op: layer switching happens through UseTransition, not
// on the tick.
func (b *MultiLayeredBehavior) Update(TickInput) {}

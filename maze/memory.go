package maze

import "time"

// MemoryBehavior implements time-decaying visibility: cells the player
// has walked past stay lit until they have not been revisited for longer
// than the fade delay. Only visited cells are tracked, so an update never
// scans the full grid.
type MemoryBehavior struct {
	maze      *Maze
	fadeDelay time.Duration
	clock     time.Duration
	lastVisit map[Position]time.Duration
}

// NewMemoryBehavior initializes a memory behavior over the given maze.
func NewMemoryBehavior(m *Maze, fadeDelay time.Duration) *MemoryBehavior {
	return &MemoryBehavior{
		maze:      m,
		fadeDelay: fadeDelay,
		lastVisit: make(map[Position]time.Duration),
	}
}

// Type returns TypeMemory.
func (b *MemoryBehavior) Type() MazeType {
	return TypeMemory
}

// FadeDelay returns how long a cell stays lit after its last visit.
func (b *MemoryBehavior) FadeDelay() time.Duration {
	return b.fadeDelay
}

// Update advances the internal clock by the elapsed tick duration, stamps
// the player's cell and its orthogonal neighbors as just visited, then
// fades every tracked cell whose last visit is older than the fade delay.
// Fading only clears Visible; Revealed is sticky. An out-of-bounds player
// position stamps nothing but time still passes.
func (b *MemoryBehavior) Update(in TickInput) {
	b.clock += in.Elapsed

	if b.maze.InBound(in.PlayerPosition.Row, in.PlayerPosition.Col) {
		b.visit(in.PlayerPosition)
		for _, d := range directions {
			if next, ok := b.maze.neighbor(in.PlayerPosition, d); ok {
				b.visit(next)
			}
		}
	}

	for pos, visitedAt := range b.lastVisit {
		if b.clock-visitedAt > b.fadeDelay {
			b.maze.Grid[pos.Row][pos.Col].Visible = false
		}
	}
}

// visit records the current timestamp for pos and lights the cell.
func (b *MemoryBehavior) visit(pos Position) {
	b.lastVisit[pos] = b.clock
	cell := b.maze.Grid[pos.Row][pos.Col]
	cell.Visible = true
	cell.Revealed = true
}

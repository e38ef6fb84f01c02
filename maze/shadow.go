package maze

// ShadowBehavior implements distance-limited visibility (fog of war):
// only cells within a Manhattan radius of the player are lit.
type ShadowBehavior struct {
	maze   *Maze
	radius int
}

// NewShadowBehavior initializes a shadow behavior over the given maze.
func NewShadowBehavior(m *Maze, radius int) *ShadowBehavior {
	return &ShadowBehavior{maze: m, radius: radius}
}

// Type returns TypeShadow.
func (b *ShadowBehavior) Type() MazeType {
	return TypeShadow
}

// VisibilityRadius returns the Manhattan radius inside which cells are lit.
func (b *ShadowBehavior) VisibilityRadius() int {
	return b.radius
}

// Update recomputes visibility around the player position: every cell is
// darkened, then cells within the radius are lit and permanently revealed.
// The full-grid sweep is O(width*height) per tick, which is fine for the
// grid sizes this engine serves. An out-of-bounds player position leaves
// the grid untouched.
func (b *ShadowBehavior) Update(in TickInput) {
	player := in.PlayerPosition
	if !b.maze.InBound(player.Row, player.Col) {
		return
	}

	for row := 0; row < b.maze.Height; row++ {
		for col := 0; col < b.maze.Width; col++ {
			cell := b.maze.Grid[row][col]
			cell.Visible = false
			if cell.Position.ManhattanDistance(player) <= b.radius {
				cell.Visible = true
				cell.Revealed = true
			}
		}
	}
}

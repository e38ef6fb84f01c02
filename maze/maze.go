/*
Package maze provides the maze topology engine: creation of traversable
rectangular grids and the runtime behaviors that alter what is visible or
walkable in them over time.

It defines the Maze structure, composed of Cell objects with 4-way wall
configurations, a breadth-first connectivity validator, a randomized
depth-first generator producing perfect mazes, a hybrid generator for
hand-authored templates, and four dynamic-topology behaviors (shadow,
memory, multi-layered, time-changing) driven once per external tick.

Utility functions enable neighbor detection, symmetric wall manipulation,
and ASCII visualization of the maze.
*/
package maze

import (
	"errors"
	"strings"
)

// Maze-related errors.
var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrNilTemplate       = errors.New("template generation requested without a template")
	ErrInvalidTemplate   = errors.New("template grid is not rectangular")
)

// Maze represents a rectangular maze consisting of cells with walls and
// visibility state. Dimensions, entrance and exit never change after
// creation; grid contents are mutated only through the maze's own methods
// or a single active behavior.
type Maze struct {
	Width    int       // Width of the maze (number of columns)
	Height   int       // Height of the maze (number of rows)
	Layers   int       // Number of stacked layers sharing this grid
	Grid     [][]*Cell // 2D grid of cells forming the maze
	Entrance Position  // Fixed entrance position
	Exit     Position  // Fixed exit position
}

// newMaze allocates a maze of the given dimensions with every cell empty
// and fully walled.
func newMaze(width, height, layers int) *Maze {
	if layers < 1 {
		layers = 1
	}

	grid := make([][]*Cell, height)
	for row := range grid {
		grid[row] = make([]*Cell, width)
		for col := range grid[row] {
			grid[row][col] = &Cell{
				Position:  Position{Row: row, Col: col},
				Type:      CellEmpty,
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	return &Maze{
		Width:    width,
		Height:   height,
		Layers:   layers,
		Grid:     grid,
		Entrance: Position{Row: 0, Col: 0},
		Exit:     Position{Row: height - 1, Col: width - 1},
	}
}

// InBound checks if the given row and column are within the maze bounds.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.Height && col >= 0 && col < m.Width
}

// CellAt returns the cell at the given position, or nil if the position
// is out of bounds.
func (m *Maze) CellAt(pos Position) *Cell {
	if !m.InBound(pos.Row, pos.Col) {
		return nil
	}
	return m.Grid[pos.Row][pos.Col]
}

// IsWalkable reports whether a mover may occupy the given position.
// Walls, phasing walls in their solid state and locked puzzle doors all
// block; out-of-bounds positions are never walkable.
func (m *Maze) IsWalkable(pos Position) bool {
	cell := m.CellAt(pos)
	if cell == nil {
		return false
	}
	switch cell.Type {
	case CellWall, CellPhasingWall, CellPuzzleDoor:
		return false
	default:
		return true
	}
}

// IsSolvable reports whether a path exists from the entrance to the exit
// under the current wall configuration.
func (m *Maze) IsSolvable() bool {
	return FindPath(m, m.Entrance, m.Exit) != nil
}

// neighbor returns the position adjacent to pos in the given direction
// and whether it lies inside the grid.
func (m *Maze) neighbor(pos Position, d Direction) (Position, bool) {
	next := Position{Row: pos.Row + delta[d].Row, Col: pos.Col + delta[d].Col}
	return next, m.InBound(next.Row, next.Col)
}

// OpenWall removes the wall between the cell at pos and its neighbor in
// the given direction, on both sides of the shared edge. Out-of-bounds
// edges are ignored.
func (m *Maze) OpenWall(pos Position, d Direction) {
	next, ok := m.neighbor(pos, d)
	if !m.InBound(pos.Row, pos.Col) || !ok {
		return
	}
	m.Grid[pos.Row][pos.Col].setWall(d, false)
	m.Grid[next.Row][next.Col].setWall(d.opposite(), false)
}

// CloseWall raises the wall between the cell at pos and its neighbor in
// the given direction, on both sides of the shared edge. Out-of-bounds
// edges are ignored.
func (m *Maze) CloseWall(pos Position, d Direction) {
	next, ok := m.neighbor(pos, d)
	if !m.InBound(pos.Row, pos.Col) || !ok {
		return
	}
	m.Grid[pos.Row][pos.Col].setWall(d, true)
	m.Grid[next.Row][next.Col].setWall(d.opposite(), true)
}

// Clone returns a deep copy of the maze sharing no cell or wall state
// with the receiver, for callers that need a stable view of a grid that
// a behavior keeps mutating.
func (m *Maze) Clone() *Maze {
	grid := make([][]*Cell, m.Height)
	for row := range m.Grid {
		grid[row] = make([]*Cell, m.Width)
		for col, cell := range m.Grid[row] {
			grid[row][col] = cell.clone()
		}
	}

	return &Maze{
		Width:    m.Width,
		Height:   m.Height,
		Layers:   m.Layers,
		Grid:     grid,
		Entrance: m.Entrance,
		Exit:     m.Exit,
	}
}

// openPassages counts the open passages of the maze. Each shared edge is
// counted once.
func (m *Maze) openPassages() int {
	count := 0
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]
			if !cell.EastWall && col+1 < m.Width {
				count++
			}
			if !cell.SouthWall && row+1 < m.Height {
				count++
			}
		}
	}
	return count
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", m.Width) + "\n"

	for row := 0; row < m.Height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]

			// Display a marker for non-empty cell types
			switch cell.Type {
			case CellWall:
				cellRow += " # "
			case CellPhasingWall:
				cellRow += " ~ "
			case CellPuzzleDoor:
				cellRow += " D "
			case CellCheckpoint:
				cellRow += " C "
			default:
				cellRow += "   "
			}

			// Add east wall or space
			if cell.EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]

			// Add south wall or space
			if cell.SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}

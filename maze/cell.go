package maze

// CellType classifies what occupies a grid location.
type CellType int

const (
	CellEmpty CellType = iota
	CellWall
	CellPhasingWall
	CellPuzzleDoor
	CellCheckpoint
)

// String returns the lowercase name of the cell type.
func (t CellType) String() string {
	switch t {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellPhasingWall:
		return "phasing_wall"
	case CellPuzzleDoor:
		return "puzzle_door"
	case CellCheckpoint:
		return "checkpoint"
	default:
		return "unknown"
	}
}

// ParseCellType maps the lowercase name of a cell type back to its
// value, reporting false for unknown names.
func ParseCellType(name string) (CellType, bool) {
	switch name {
	case "", "empty":
		return CellEmpty, true
	case "wall":
		return CellWall, true
	case "phasing_wall":
		return CellPhasingWall, true
	case "puzzle_door":
		return CellPuzzleDoor, true
	case "checkpoint":
		return CellCheckpoint, true
	default:
		return CellEmpty, false
	}
}

// Position represents the position of a cell in the maze grid.
type Position struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// ManhattanDistance returns |Δrow| + |Δcol| between two positions.
func (p Position) ManhattanDistance(other Position) int {
	dRow := p.Row - other.Row
	if dRow < 0 {
		dRow = -dRow
	}
	dCol := p.Col - other.Col
	if dCol < 0 {
		dCol = -dCol
	}
	return dRow + dCol
}

// Direction identifies one of the four cardinal edges of a cell.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// directions lists the four cardinal directions in a fixed order, used
// wherever a deterministic iteration order matters.
var directions = [4]Direction{North, South, East, West}

// delta maps a direction to its row/col offset.
var delta = [4]Position{
	North: {Row: -1, Col: 0},
	South: {Row: 1, Col: 0},
	East:  {Row: 0, Col: 1},
	West:  {Row: 0, Col: -1},
}

// opposite returns the direction pointing back across the same edge.
func (d Direction) opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Cell represents a single cell in a maze grid.
// It includes the cell's position, its type, walls on each side and the
// two visibility flags driven by behaviors.
type Cell struct {
	Position  Position // Position of the cell inside the grid
	Type      CellType // Type indicates what occupies the cell.
	NorthWall bool     // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool     // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool     // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool     // WestWall indicates whether there is a wall on the west side of the cell.
	Visible   bool     // Visible indicates whether the cell is currently rendered/lit.
	Revealed  bool     // Revealed indicates whether the cell has ever been seen. Sticky: never reset.
}

// HasWall reports whether the cell has a wall on the given side.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	default:
		return c.WestWall
	}
}

// setWall sets the presence of a wall on the given side of the cell.
func (c *Cell) setWall(d Direction, hasWall bool) {
	switch d {
	case North:
		c.NorthWall = hasWall
	case South:
		c.SouthWall = hasWall
	case East:
		c.EastWall = hasWall
	default:
		c.WestWall = hasWall
	}
}

// clone returns an independent copy of the cell, sharing no state with
// the receiver.
func (c *Cell) clone() *Cell {
	copied := *c
	return &copied
}

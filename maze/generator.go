package maze

import "fmt"

const minDimension = 2

// Generator produces a fully constructed maze.
type Generator interface {
	Generate() (*Maze, error)
}

// DFSGenerator builds a perfect maze with randomized depth-first
// spanning-tree construction: the open-passage graph is fully connected
// and has exactly width*height-1 passages and no cycles, so every
// generated maze is solvable by construction.
type DFSGenerator struct {
	width  int
	height int
	layers int
	rng    Rand
}

// NewDFSGenerator initializes a generator for mazes of the given
// dimensions.
func NewDFSGenerator(width, height, layers int, rng Rand) (*DFSGenerator, error) {
	if width < minDimension || height < minDimension {
		return nil, ErrInvalidDimensions
	}
	return &DFSGenerator{
		width:  width,
		height: height,
		layers: layers,
		rng:    rng,
	}, nil
}

// frame is one level of the carving walk: the cell being expanded, its
// shuffled direction order and the index of the next direction to try.
type frame struct {
	pos  Position
	dirs [4]Direction
	next int
}

// Generate carves a maze starting from the entrance at (0,0), with the
// exit at the far corner. The walk is the classic recursive backtracker
// expressed with an explicit stack, so its depth no longer grows with the
// cell count; visitation and backtracking order are identical to the
// recursive form.
func (g *DFSGenerator) Generate() (*Maze, error) {
	m := newMaze(g.width, g.height, g.layers)

	visited := make(map[Position]struct{}, g.width*g.height)
	visited[m.Entrance] = struct{}{}
	stack := []frame{{pos: m.Entrance, dirs: g.shuffledDirections()}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		carved := false
		for top.next < len(top.dirs) {
			d := top.dirs[top.next]
			top.next++

			next, ok := m.neighbor(top.pos, d)
			if !ok {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}

			m.OpenWall(top.pos, d)
			visited[next] = struct{}{}
			stack = append(stack, frame{pos: next, dirs: g.shuffledDirections()})
			carved = true
			break
		}

		if !carved {
			stack = stack[:len(stack)-1]
		}
	}

	// Verified rather than assumed, even though the spanning tree makes
	// it a certainty.
	if !m.IsSolvable() {
		return nil, fmt.Errorf("generated maze is not solvable")
	}
	return m, nil
}

// shuffledDirections returns the four cardinal directions in a uniformly
// random order via an unbiased Fisher-Yates permutation.
func (g *DFSGenerator) shuffledDirections() [4]Direction {
	dirs := directions
	for i := len(dirs) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}

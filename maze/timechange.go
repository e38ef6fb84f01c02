package maze

import "time"

const (
	// candidateProb is the probability an interior cell joins the fixed
	// candidate set at construction.
	candidateProb = 0.20

	// mutateFraction is the share of candidates transformed per change.
	mutateFraction = 0.30

	// minEmptyNeighbors is the local safety heuristic for raising a wall:
	// a cell may turn solid only while at least this many of its
	// orthogonal neighbors are empty. This approximates "won't disconnect
	// the maze" without re-running the connectivity validator, and can in
	// principle still disconnect distant regions.
	minEmptyNeighbors = 2
)

// TimeChangingBehavior periodically toggles a random subset of a fixed
// candidate set of interior cells between empty and wall.
type TimeChangingBehavior struct {
	maze       *Maze
	rng        Rand
	interval   time.Duration
	elapsed    time.Duration
	candidates []Position
}

// NewTimeChangingBehavior initializes the behavior and samples the
// candidate set once: every non-border cell joins with candidateProb.
// The set never grows or shrinks afterward.
func NewTimeChangingBehavior(m *Maze, interval time.Duration, rng Rand) *TimeChangingBehavior {
	b := &TimeChangingBehavior{
		maze:     m,
		rng:      rng,
		interval: interval,
	}

	for row := 1; row < m.Height-1; row++ {
		for col := 1; col < m.Width-1; col++ {
			if rng.Float32() < candidateProb {
				b.candidates = append(b.candidates, Position{Row: row, Col: col})
			}
		}
	}
	return b
}

// Type returns TypeTimeChanging.
func (b *TimeChangingBehavior) Type() MazeType {
	return TypeTimeChanging
}

// ChangeInterval returns the period between wall mutations.
func (b *TimeChangingBehavior) ChangeInterval() time.Duration {
	return b.interval
}

// TimeUntilNextChange returns how much tick time remains before the next
// mutation fires.
func (b *TimeChangingBehavior) TimeUntilNextChange() time.Duration {
	return b.interval - b.elapsed
}

// Update accumulates elapsed tick time and, once the change interval is
// reached, resets the accumulator and mutates the maze.
func (b *TimeChangingBehavior) Update(in TickInput) {
	b.elapsed += in.Elapsed
	if b.elapsed >= b.interval {
		b.elapsed = 0
		b.mutate()
	}
}

// mutate transforms mutateFraction of the candidate set, each pick drawn
// independently with replacement, toggling wall cells back to empty and
// empty cells to wall when the safety heuristic allows. Cells holding
// other types are left alone.
func (b *TimeChangingBehavior) mutate() {
	if len(b.candidates) == 0 {
		return
	}

	picks := int(float64(len(b.candidates)) * mutateFraction)
	if picks < 1 {
		picks = 1
	}

	for i := 0; i < picks; i++ {
		pos := b.candidates[b.rng.Intn(len(b.candidates))]
		cell := b.maze.Grid[pos.Row][pos.Col]

		switch cell.Type {
		case CellWall:
			cell.Type = CellEmpty
		case CellEmpty:
			if b.countEmptyNeighbors(pos) >= minEmptyNeighbors {
				cell.Type = CellWall
			}
		}
	}
}

// countEmptyNeighbors counts the orthogonal neighbors of pos that are
// currently empty.
func (b *TimeChangingBehavior) countEmptyNeighbors(pos Position) int {
	count := 0
	for _, d := range directions {
		next, ok := b.maze.neighbor(pos, d)
		if !ok {
			continue
		}
		if b.maze.Grid[next.Row][next.Col].Type == CellEmpty {
			count++
		}
	}
	return count
}

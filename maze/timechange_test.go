package maze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeChangingBehavior(t *testing.T) {
	newChangingMaze := func(t *testing.T) *Maze {
		g, err := NewDFSGenerator(10, 10, 1, NewRand(66))
		assert.NoError(t, err)
		m, err := g.Generate()
		assert.NoError(t, err)
		return m
	}

	t.Run("candidates are interior cells only", func(t *testing.T) {
		m := newChangingMaze(t)
		changing := NewTimeChangingBehavior(m, time.Second, NewRand(4))

		assert.NotEmpty(t, changing.candidates)
		for _, pos := range changing.candidates {
			assert.Greater(t, pos.Row, 0)
			assert.Less(t, pos.Row, m.Height-1)
			assert.Greater(t, pos.Col, 0)
			assert.Less(t, pos.Col, m.Width-1)
		}
	})

	t.Run("the candidate set is fixed after construction", func(t *testing.T) {
		m := newChangingMaze(t)
		changing := NewTimeChangingBehavior(m, time.Second, NewRand(4))

		before := make([]Position, len(changing.candidates))
		copy(before, changing.candidates)

		for i := 0; i < 20; i++ {
			changing.Update(TickInput{Elapsed: time.Second})
		}
		assert.Equal(t, before, changing.candidates)
	})

	t.Run("mutations fire on the interval and reset the accumulator", func(t *testing.T) {
		m := newChangingMaze(t)
		changing := NewTimeChangingBehavior(m, 5*time.Second, NewRand(4))

		changing.Update(TickInput{Elapsed: 3 * time.Second})
		assert.Equal(t, 2*time.Second, changing.TimeUntilNextChange())

		changing.Update(TickInput{Elapsed: 2 * time.Second})
		assert.Equal(t, 5*time.Second, changing.TimeUntilNextChange())
	})

	t.Run("never walls a cell with fewer than two empty neighbors", func(t *testing.T) {
		m := newChangingMaze(t)
		target := Position{Row: 5, Col: 5}

		// Leave the target exactly one empty orthogonal neighbor.
		m.Grid[4][5].Type = CellWall
		m.Grid[6][5].Type = CellWall
		m.Grid[5][4].Type = CellWall

		changing := &TimeChangingBehavior{
			maze:       m,
			rng:        NewRand(8),
			interval:   time.Second,
			candidates: []Position{target},
		}

		for i := 0; i < 100; i++ {
			changing.Update(TickInput{Elapsed: time.Second})
			assert.Equal(t, CellEmpty, m.Grid[target.Row][target.Col].Type)
		}
	})

	t.Run("walls a cell once enough neighbors are empty", func(t *testing.T) {
		m := newChangingMaze(t)
		target := Position{Row: 5, Col: 5}

		changing := &TimeChangingBehavior{
			maze:       m,
			rng:        NewRand(8),
			interval:   time.Second,
			candidates: []Position{target},
		}

		changing.Update(TickInput{Elapsed: time.Second})
		assert.Equal(t, CellWall, m.Grid[target.Row][target.Col].Type)

		// The next mutation toggles the wall straight back.
		changing.Update(TickInput{Elapsed: time.Second})
		assert.Equal(t, CellEmpty, m.Grid[target.Row][target.Col].Type)
	})

	t.Run("mutations leave edge walls and their symmetry alone", func(t *testing.T) {
		m := newChangingMaze(t)
		changing := NewTimeChangingBehavior(m, time.Second, NewRand(4))

		for i := 0; i < 10; i++ {
			changing.Update(TickInput{Elapsed: time.Second})
		}
		assertWallSymmetry(t, m)
	})

	t.Run("non-toggleable cell types are skipped", func(t *testing.T) {
		m := newChangingMaze(t)
		target := Position{Row: 3, Col: 3}
		m.Grid[target.Row][target.Col].Type = CellCheckpoint

		changing := &TimeChangingBehavior{
			maze:       m,
			rng:        NewRand(8),
			interval:   time.Second,
			candidates: []Position{target},
		}

		for i := 0; i < 10; i++ {
			changing.Update(TickInput{Elapsed: time.Second})
		}
		assert.Equal(t, CellCheckpoint, m.Grid[target.Row][target.Col].Type)
	})
}

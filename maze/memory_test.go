package maze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryBehavior(t *testing.T) {
	newTrackedMaze := func(t *testing.T) *Maze {
		g, err := NewDFSGenerator(10, 10, 1, NewRand(33))
		assert.NoError(t, err)
		m, err := g.Generate()
		assert.NoError(t, err)
		return m
	}

	t.Run("visited cells fade after the delay, revealed stays", func(t *testing.T) {
		m := newTrackedMaze(t)
		memory := NewMemoryBehavior(m, 2000*time.Millisecond)

		memory.Update(TickInput{PlayerPosition: Position{Row: 1, Col: 1}})

		// Player walks far away; the old cell is not revisited.
		memory.Update(TickInput{PlayerPosition: Position{Row: 8, Col: 8}, Elapsed: 1999 * time.Millisecond})
		assert.True(t, m.Grid[1][1].Visible, "1999ms since visit must still be lit")
		assert.True(t, m.Grid[1][1].Revealed)

		memory.Update(TickInput{PlayerPosition: Position{Row: 8, Col: 8}, Elapsed: 2 * time.Millisecond})
		assert.False(t, m.Grid[1][1].Visible, "2001ms since visit must be faded")
		assert.True(t, m.Grid[1][1].Revealed)
	})

	t.Run("stamps the player's cell and its orthogonal neighbors", func(t *testing.T) {
		m := newTrackedMaze(t)
		memory := NewMemoryBehavior(m, time.Second)

		memory.Update(TickInput{PlayerPosition: Position{Row: 4, Col: 4}})

		for _, pos := range []Position{{4, 4}, {3, 4}, {5, 4}, {4, 3}, {4, 5}} {
			assert.True(t, m.Grid[pos.Row][pos.Col].Visible, "cell %v", pos)
			assert.True(t, m.Grid[pos.Row][pos.Col].Revealed, "cell %v", pos)
		}
		assert.False(t, m.Grid[3][3].Visible, "diagonal neighbor is not stamped")
	})

	t.Run("revisiting a cell restarts its fade timer", func(t *testing.T) {
		m := newTrackedMaze(t)
		memory := NewMemoryBehavior(m, 2000*time.Millisecond)

		memory.Update(TickInput{PlayerPosition: Position{Row: 1, Col: 1}})
		memory.Update(TickInput{PlayerPosition: Position{Row: 1, Col: 1}, Elapsed: 1500 * time.Millisecond})
		memory.Update(TickInput{PlayerPosition: Position{Row: 8, Col: 8}, Elapsed: 1500 * time.Millisecond})

		// 3000ms since the first visit but only 1500ms since the second.
		assert.True(t, m.Grid[1][1].Visible)
	})

	t.Run("clips neighbor stamping at the grid border", func(t *testing.T) {
		m := newTrackedMaze(t)
		memory := NewMemoryBehavior(m, time.Second)

		memory.Update(TickInput{PlayerPosition: Position{Row: 0, Col: 0}})
		assert.True(t, m.Grid[0][0].Visible)
		assert.True(t, m.Grid[0][1].Visible)
		assert.True(t, m.Grid[1][0].Visible)
	})

	t.Run("time passes even when the player position is invalid", func(t *testing.T) {
		m := newTrackedMaze(t)
		memory := NewMemoryBehavior(m, 2000*time.Millisecond)

		memory.Update(TickInput{PlayerPosition: Position{Row: 1, Col: 1}})
		memory.Update(TickInput{PlayerPosition: Position{Row: -1, Col: -1}, Elapsed: 2001 * time.Millisecond})

		assert.False(t, m.Grid[1][1].Visible)
		assert.True(t, m.Grid[1][1].Revealed)
	})
}

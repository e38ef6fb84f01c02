package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShadowBehavior(t *testing.T) {
	newLitMaze := func(t *testing.T) *Maze {
		g, err := NewDFSGenerator(12, 12, 1, NewRand(21))
		assert.NoError(t, err)
		m, err := g.Generate()
		assert.NoError(t, err)
		return m
	}

	t.Run("lights cells up to the radius and no further", func(t *testing.T) {
		m := newLitMaze(t)
		shadow := NewShadowBehavior(m, 3)

		shadow.Update(TickInput{PlayerPosition: Position{Row: 5, Col: 5}})

		assert.True(t, m.Grid[5][8].Visible, "distance 3 must be lit")
		assert.True(t, m.Grid[5][8].Revealed)
		assert.False(t, m.Grid[5][9].Visible, "distance 4 must be dark")
		assert.False(t, m.Grid[5][9].Revealed)

		// Diagonal distance is Manhattan, not Chebyshev.
		assert.True(t, m.Grid[7][6].Visible)
		assert.False(t, m.Grid[7][7].Visible)
	})

	t.Run("revealed is sticky when the player moves away", func(t *testing.T) {
		m := newLitMaze(t)
		shadow := NewShadowBehavior(m, 2)

		shadow.Update(TickInput{PlayerPosition: Position{Row: 0, Col: 0}})
		assert.True(t, m.Grid[0][1].Visible)

		shadow.Update(TickInput{PlayerPosition: Position{Row: 11, Col: 11}})
		assert.False(t, m.Grid[0][1].Visible)
		assert.True(t, m.Grid[0][1].Revealed)
	})

	t.Run("ignores an out-of-bounds player position", func(t *testing.T) {
		m := newLitMaze(t)
		shadow := NewShadowBehavior(m, 3)

		shadow.Update(TickInput{PlayerPosition: Position{Row: 5, Col: 5}})
		shadow.Update(TickInput{PlayerPosition: Position{Row: -4, Col: 50}})

		// The previous tick's visibility is untouched.
		assert.True(t, m.Grid[5][5].Visible)
	})

	t.Run("updates never touch walls", func(t *testing.T) {
		m := newLitMaze(t)
		before := m.String()

		shadow := NewShadowBehavior(m, 3)
		shadow.Update(TickInput{PlayerPosition: Position{Row: 5, Col: 5}})

		assert.Equal(t, before, m.String())
		assertWallSymmetry(t, m)
	})
}

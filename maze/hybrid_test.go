package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// openTemplate builds a fully open width x height template grid.
func openTemplate(width, height int) [][]*Cell {
	m := newMaze(width, height, 1)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			pos := Position{Row: row, Col: col}
			m.OpenWall(pos, East)
			m.OpenWall(pos, South)
		}
	}
	return m.Grid
}

func TestHybridGenerator(t *testing.T) {
	t.Run("clones the template without aliasing", func(t *testing.T) {
		template := openTemplate(4, 4)
		g, err := NewHybridGenerator(template, 4, 4, 1, NewRand(0))
		assert.NoError(t, err)

		m, err := g.Generate()
		assert.NoError(t, err)
		assert.Equal(t, 4, m.Width)
		assert.Equal(t, 4, m.Height)
		assert.True(t, m.IsSolvable())

		// Mutating the produced maze must not leak into the template,
		// templates are reused across generations.
		m.CloseWall(Position{Row: 1, Col: 1}, East)
		m.Grid[2][2].Type = CellWall
		assert.False(t, template[1][1].EastWall)
		assert.Equal(t, CellEmpty, template[2][2].Type)
	})

	t.Run("delegates to the procedural generator without a template", func(t *testing.T) {
		g, err := NewHybridGenerator(nil, 6, 6, 1, NewRand(11))
		assert.NoError(t, err)

		m, err := g.Generate()
		assert.NoError(t, err)
		assert.Equal(t, 6*6-1, m.openPassages())
		assert.True(t, m.IsSolvable())
	})

	t.Run("rejects ragged templates", func(t *testing.T) {
		template := openTemplate(4, 4)
		template[2] = template[2][:3]
		g, err := NewHybridGenerator(template, 0, 0, 1, NewRand(0))
		assert.NoError(t, err)

		_, err = g.Generate()
		assert.ErrorIs(t, err, ErrInvalidTemplate)
	})
}

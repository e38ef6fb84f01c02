package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindPath(t *testing.T) {
	t.Run("finds the shortest path in an open corridor", func(t *testing.T) {
		m := newMaze(4, 1, 1)
		for col := 0; col < 3; col++ {
			m.OpenWall(Position{Row: 0, Col: col}, East)
		}

		path := FindPath(m, Position{Row: 0, Col: 0}, Position{Row: 0, Col: 3})
		assert.Equal(t, []Position{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
		}, path)
	})

	t.Run("returns nil when the goal is unreachable", func(t *testing.T) {
		m := newMaze(3, 3, 1)

		// All walls are still up, so nothing is reachable.
		assert.Nil(t, FindPath(m, Position{Row: 0, Col: 0}, Position{Row: 2, Col: 2}))
		assert.False(t, m.IsSolvable())
	})

	t.Run("returns nil for out-of-bounds positions", func(t *testing.T) {
		m := newMaze(3, 3, 1)

		assert.Nil(t, FindPath(m, Position{Row: -1, Col: 0}, Position{Row: 2, Col: 2}))
		assert.Nil(t, FindPath(m, Position{Row: 0, Col: 0}, Position{Row: 3, Col: 3}))
	})

	t.Run("start equal to goal yields a single-cell path", func(t *testing.T) {
		m := newMaze(3, 3, 1)

		path := FindPath(m, Position{Row: 1, Col: 1}, Position{Row: 1, Col: 1})
		assert.Equal(t, []Position{{Row: 1, Col: 1}}, path)
	})

	t.Run("walling off the exit makes a generated maze unsolvable", func(t *testing.T) {
		g, err := NewDFSGenerator(6, 6, 1, NewRand(77))
		assert.NoError(t, err)
		m, err := g.Generate()
		assert.NoError(t, err)
		assert.True(t, m.IsSolvable())

		for _, d := range directions {
			m.CloseWall(m.Exit, d)
		}

		assert.False(t, m.IsSolvable())
		assertWallSymmetry(t, m)
	})

	t.Run("prefers the shorter of two routes", func(t *testing.T) {
		// 3x3 grid with a direct open corridor along the top row and a
		// longer detour through the bottom row.
		m := newMaze(3, 3, 1)
		m.OpenWall(Position{Row: 0, Col: 0}, East)
		m.OpenWall(Position{Row: 0, Col: 1}, East)
		m.OpenWall(Position{Row: 0, Col: 0}, South)
		m.OpenWall(Position{Row: 1, Col: 0}, South)
		m.OpenWall(Position{Row: 2, Col: 0}, East)
		m.OpenWall(Position{Row: 2, Col: 1}, East)
		m.OpenWall(Position{Row: 2, Col: 2}, North)
		m.OpenWall(Position{Row: 1, Col: 2}, North)

		path := FindPath(m, Position{Row: 0, Col: 0}, Position{Row: 0, Col: 2})
		assert.Len(t, path, 3)
	})
}

package maze

// FindPath runs a breadth-first search from start to goal and returns the
// shortest hop-count path as an ordered sequence of positions, start and
// goal included. Two cells are adjacent iff they are grid-neighbors and no
// wall blocks the shared edge. Returns nil when the goal is unreachable or
// either position is out of bounds; unreachability is a normal outcome,
// not an error.
func FindPath(m *Maze, start, goal Position) []Position {
	if !m.InBound(start.Row, start.Col) || !m.InBound(goal.Row, goal.Col) {
		return nil
	}

	if start == goal {
		return []Position{start}
	}

	prev := make(map[Position]Position, m.Width*m.Height)
	visited := make(map[Position]struct{}, m.Width*m.Height)
	visited[start] = struct{}{}
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range directions {
			next, ok := m.neighbor(current, d)
			if !ok {
				continue
			}
			if m.Grid[current.Row][current.Col].HasWall(d) || m.Grid[next.Row][next.Col].HasWall(d.opposite()) {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			prev[next] = current

			if next == goal {
				return reconstructPath(prev, start, goal)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

// reconstructPath walks the predecessor map back from goal to start and
// returns the path in forward order.
func reconstructPath(prev map[Position]Position, start, goal Position) []Position {
	path := []Position{goal}
	for current := goal; current != start; {
		current = prev[current]
		path = append(path, current)
	}

	// Reverse in place: the walk above produced goal -> start.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

package maze

// HybridGenerator produces a maze from a hand-authored template grid when
// one is supplied, and delegates to the procedural DFSGenerator otherwise.
// Template-derived mazes carry no spanning-tree guarantee, so solvability
// must always be checked through the connectivity validator.
type HybridGenerator struct {
	template [][]*Cell
	width    int
	height   int
	layers   int
	rng      Rand
}

// NewHybridGenerator initializes a hybrid generator. The template may be
// nil, in which case generation falls through to the procedural path.
func NewHybridGenerator(template [][]*Cell, width, height, layers int, rng Rand) (*HybridGenerator, error) {
	if template == nil && (width < minDimension || height < minDimension) {
		return nil, ErrInvalidDimensions
	}
	return &HybridGenerator{
		template: template,
		width:    width,
		height:   height,
		layers:   layers,
		rng:      rng,
	}, nil
}

// Generate clones the template into a fresh maze, or delegates to the
// procedural generator when no template is present.
func (g *HybridGenerator) Generate() (*Maze, error) {
	if g.template == nil {
		procedural, err := NewDFSGenerator(g.width, g.height, g.layers, g.rng)
		if err != nil {
			return nil, err
		}
		return procedural.Generate()
	}
	return g.fromTemplate()
}

// fromTemplate deep-clones every template cell. Templates are reused
// across many generations, so the produced maze must share no cell or
// wall state with the template.
func (g *HybridGenerator) fromTemplate() (*Maze, error) {
	height := len(g.template)
	if height < minDimension || len(g.template[0]) < minDimension {
		return nil, ErrInvalidDimensions
	}
	width := len(g.template[0])

	grid := make([][]*Cell, height)
	for row := range g.template {
		if len(g.template[row]) != width {
			return nil, ErrInvalidTemplate
		}
		grid[row] = make([]*Cell, width)
		for col, cell := range g.template[row] {
			cloned := cell.clone()
			cloned.Position = Position{Row: row, Col: col}
			grid[row][col] = cloned
		}
	}

	layers := g.layers
	if layers < 1 {
		layers = 1
	}

	return &Maze{
		Width:    width,
		Height:   height,
		Layers:   layers,
		Grid:     grid,
		Entrance: Position{Row: 0, Col: 0},
		Exit:     Position{Row: height - 1, Col: width - 1},
	}, nil
}

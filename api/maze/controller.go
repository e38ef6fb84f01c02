// Package mazeapi handles maze session creation, inspection and ticking.
package mazeapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-maze-engine/maze"
	"github.com/beka-birhanu/vinom-maze-engine/service"
	"github.com/beka-birhanu/vinom-maze-engine/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze session operations.
type MazeController struct {
	sessionManager i.MazeSessionManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(sm i.MazeSessionManager) (*MazeController, error) {
	return &MazeController{sessionManager: sm}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.GET("/:ID", mc.snapshot)
		mazes.POST("/:ID/tick", mc.tick)
		mazes.POST("/:ID/transition", mc.transition)
		mazes.DELETE("/:ID", mc.end)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {}

// create handles maze session creation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := templateGrid(request.Template)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := maze.Config{
		Type:             maze.MazeType(request.Type),
		Difficulty:       request.Difficulty,
		Width:            request.Width,
		Height:           request.Height,
		Layers:           request.Layers,
		ObstacleCount:    request.ObstacleCount,
		CollectibleCount: request.CollectibleCount,
		UseTemplate:      request.UseTemplate,
		Template:         template,
		VisibilityRadius: request.VisibilityRadius,
		FadeDelay:        time.Duration(request.FadeDelayMs) * time.Millisecond,
		ChangeInterval:   time.Duration(request.ChangeIntervalMs) * time.Millisecond,
	}

	id, err := mc.sessionManager.CreateSession(cfg, request.Seed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, &CreateMazeResponse{ID: id.String()})
}

// snapshot retrieves the full observable state of a maze session.
func (mc *MazeController) snapshot(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	snap, err := mc.sessionManager.Snapshot(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(id, snap))
}

// tick drives one behavior update of a maze session.
func (mc *MazeController) tick(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	var request TickRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := maze.TickInput{
		PlayerPosition: maze.Position{Row: request.PlayerRow, Col: request.PlayerCol},
		Elapsed:        time.Duration(request.ElapsedMs) * time.Millisecond,
	}
	if err := mc.sessionManager.Tick(id, in); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// transition attempts a layer switch for a multi-layered maze session.
func (mc *MazeController) transition(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	var request TransitionRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switched, currentLayer, err := mc.sessionManager.UseTransition(id, maze.Position{Row: request.Row, Col: request.Col})
	if err != nil {
		status := http.StatusNotFound
		if err == service.ErrNotMultiLayered {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &TransitionResponse{
		Switched:     switched,
		CurrentLayer: currentLayer,
	})
}

// end discards a maze session.
func (mc *MazeController) end(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	if err := mc.sessionManager.EndSession(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// sessionID parses the session ID path parameter, writing the error
// response itself when parsing fails.
func (mc *MazeController) sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	idString := ctx.Params.ByName("ID")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

// templateGrid converts request template cells to maze cells. An empty
// request template maps to nil so the procedural path is taken.
func templateGrid(template [][]TemplateCell) ([][]*maze.Cell, error) {
	if len(template) == 0 {
		return nil, nil
	}

	grid := make([][]*maze.Cell, len(template))
	for row := range template {
		grid[row] = make([]*maze.Cell, len(template[row]))
		for col, cell := range template[row] {
			cellType, ok := maze.ParseCellType(cell.Type)
			if !ok {
				return nil, fmt.Errorf("unknown cell type %q at (%d,%d)", cell.Type, row, col)
			}
			grid[row][col] = &maze.Cell{
				Position:  maze.Position{Row: row, Col: col},
				Type:      cellType,
				NorthWall: cell.NorthWall,
				SouthWall: cell.SouthWall,
				EastWall:  cell.EastWall,
				WestWall:  cell.WestWall,
			}
		}
	}
	return grid, nil
}

// newMazeResponse converts a session snapshot to the response shape.
func newMazeResponse(id uuid.UUID, snap *i.Snapshot) *MazeResponse {
	m := snap.Maze
	grid := make([][]CellResponse, m.Height)
	for row := 0; row < m.Height; row++ {
		grid[row] = make([]CellResponse, m.Width)
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]
			grid[row][col] = CellResponse{
				Type:      cell.Type.String(),
				NorthWall: cell.NorthWall,
				SouthWall: cell.SouthWall,
				EastWall:  cell.EastWall,
				WestWall:  cell.WestWall,
				Visible:   cell.Visible,
				Revealed:  cell.Revealed,
			}
		}
	}

	response := &MazeResponse{
		ID:       id.String(),
		Type:     string(snap.Type),
		Width:    m.Width,
		Height:   m.Height,
		Layers:   m.Layers,
		Entrance: PositionResponse{Row: m.Entrance.Row, Col: m.Entrance.Col},
		Exit:     PositionResponse{Row: m.Exit.Row, Col: m.Exit.Col},
		Solvable: m.IsSolvable(),
		Grid:     grid,
	}

	switch snap.Type {
	case maze.TypeShadow:
		radius := snap.VisibilityRadius
		response.VisibilityRadius = &radius
	case maze.TypeMemory:
		fadeDelayMs := snap.FadeDelay.Milliseconds()
		response.FadeDelayMs = &fadeDelayMs
	case maze.TypeMultiLayered:
		currentLayer := snap.CurrentLayer
		response.CurrentLayer = &currentLayer
		for _, t := range snap.Transitions {
			response.Transitions = append(response.Transitions, TransitionInfo{
				Position:  PositionResponse{Row: t.Position.Row, Col: t.Position.Col},
				FromLayer: t.FromLayer,
				ToLayer:   t.ToLayer,
				Type:      string(t.Type),
			})
		}
	case maze.TypeTimeChanging:
		remainingMs := snap.TimeUntilNextChange.Milliseconds()
		response.TimeUntilNextChangeMs = &remainingMs
	}

	return response
}

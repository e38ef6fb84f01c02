// Package mazeapi provides structures and utilities for managing maze
// session requests and responses.
package mazeapi

// TemplateCell is one hand-authored cell of a template grid in a
// creation request. Wall flags default to open edges.
type TemplateCell struct {
	Type      string `json:"type"`
	NorthWall bool   `json:"north_wall"`
	SouthWall bool   `json:"south_wall"`
	EastWall  bool   `json:"east_wall"`
	WestWall  bool   `json:"west_wall"`
}

// CreateMazeRequest represents a request to create a new maze session.
// Supplying a template grid clones it instead of generating procedurally;
// use_template set without a template is rejected.
type CreateMazeRequest struct {
	Type             string           `json:"type"`
	Difficulty       int              `json:"difficulty"`
	Width            int              `json:"width" binding:"required"`
	Height           int              `json:"height" binding:"required"`
	Layers           int              `json:"layers"`
	ObstacleCount    int              `json:"obstacle_count"`
	CollectibleCount int              `json:"collectible_count"`
	UseTemplate      bool             `json:"use_template"`
	Template         [][]TemplateCell `json:"template"`
	Seed             int64            `json:"seed"`
	VisibilityRadius int              `json:"visibility_radius"`
	FadeDelayMs      int64            `json:"fade_delay_ms"`
	ChangeIntervalMs int64            `json:"change_interval_ms"`
}

// CreateMazeResponse carries the ID of a freshly created session.
type CreateMazeResponse struct {
	ID string `json:"id"`
}

// TickRequest drives one behavior update of a session.
type TickRequest struct {
	PlayerRow int   `json:"player_row"`
	PlayerCol int   `json:"player_col"`
	ElapsedMs int64 `json:"elapsed_ms"`
}

// TransitionRequest attempts a layer switch at a grid position.
type TransitionRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// TransitionResponse reports the outcome of a layer switch attempt.
type TransitionResponse struct {
	Switched     bool `json:"switched"`
	CurrentLayer int  `json:"current_layer"`
}

// PositionResponse is a grid position in a response body.
type PositionResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellResponse is one grid cell in a response body.
type CellResponse struct {
	Type      string `json:"type"`
	NorthWall bool   `json:"north_wall"`
	SouthWall bool   `json:"south_wall"`
	EastWall  bool   `json:"east_wall"`
	WestWall  bool   `json:"west_wall"`
	Visible   bool   `json:"visible"`
	Revealed  bool   `json:"revealed"`
}

// TransitionInfo is one layer transition in a response body.
type TransitionInfo struct {
	Position  PositionResponse `json:"position"`
	FromLayer int              `json:"from_layer"`
	ToLayer   int              `json:"to_layer"`
	Type      string           `json:"type"`
}

// MazeResponse represents the full observable state of a maze session.
// Behavior-specific fields are only present for the matching maze type.
type MazeResponse struct {
	ID                    string           `json:"id"`
	Type                  string           `json:"type"`
	Width                 int              `json:"width"`
	Height                int              `json:"height"`
	Layers                int              `json:"layers"`
	Entrance              PositionResponse `json:"entrance"`
	Exit                  PositionResponse `json:"exit"`
	Solvable              bool             `json:"solvable"`
	Grid                  [][]CellResponse `json:"grid"`
	VisibilityRadius      *int             `json:"visibility_radius,omitempty"`
	FadeDelayMs           *int64           `json:"fade_delay_ms,omitempty"`
	CurrentLayer          *int             `json:"current_layer,omitempty"`
	Transitions           []TransitionInfo `json:"transitions,omitempty"`
	TimeUntilNextChangeMs *int64           `json:"time_until_next_change_ms,omitempty"`
}

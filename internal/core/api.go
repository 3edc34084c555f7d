package core

// Request types

type CreateGameRequest struct {
	White PlayerConfig `json:"white" validate:"required"`
	Black PlayerConfig `json:"black" validate:"required"`
	// Optional starting position in board text form, row 0 first
	Position string `json:"position,omitempty" validate:"omitempty,max=80"`
	// Side to move in Position, "w" (default) or "b"
	Turn string `json:"turn,omitempty" validate:"omitempty,oneof=w b"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,max=32"` // "col row col row" 1-based, or "bot" for a computer turn
}

// Response types

type GameResponse struct {
	GameID        string          `json:"gameId"`
	Position      string          `json:"position"`
	Turn          string          `json:"turn"` // "w" or "b"
	Round         int             `json:"round"`
	State         string          `json:"state"`
	WhiteCaptures int             `json:"whiteCaptures"`
	BlackCaptures int             `json:"blackCaptures"`
	Chain         string          `json:"chain,omitempty"` // square that must keep capturing, "col row"
	Moves         []string        `json:"moves"`
	Players       PlayersResponse `json:"players"`
	LastMove      *MoveInfo       `json:"lastMove,omitempty"`
}

type MoveInfo struct {
	Move        string `json:"move"`
	PlayerColor string `json:"playerColor"` // "w" or "b"
	Kind        string `json:"kind"`
	Captured    string `json:"captured,omitempty"`
	Promoted    bool   `json:"promoted,omitempty"`
}

type BoardResponse struct {
	Position string `json:"position"`
	Board    string `json:"board"` // ASCII representation
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

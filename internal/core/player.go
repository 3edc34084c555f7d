package core

import (
	"github.com/google/uuid"
)

type PlayerType int

const (
	PlayerHuman PlayerType = iota + 1
	PlayerComputer
)

func (t PlayerType) String() string {
	switch t {
	case PlayerHuman:
		return "human"
	case PlayerComputer:
		return "computer"
	default:
		return "unknown"
	}
}

// Player is one seat of a game
type Player struct {
	ID    string     `json:"id"`
	Color Color      `json:"color"`
	Type  PlayerType `json:"type"`
}

// PlayerConfig for API requests
type PlayerConfig struct {
	Type PlayerType `json:"type" validate:"required,oneof=1 2"`
}

// PlayersResponse for API responses
type PlayersResponse struct {
	White *Player `json:"white"`
	Black *Player `json:"black"`
}

// NewPlayer creates a Player from PlayerConfig
func NewPlayer(config PlayerConfig, color Color) *Player {
	return &Player{
		ID:    uuid.New().String(),
		Color: color,
		Type:  config.Type,
	}
}

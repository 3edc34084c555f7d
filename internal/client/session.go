package client

import (
	"context"
	"errors"
	"fmt"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"
)

// botMove asks the server to play the computer seat
const botMove = "bot"

// Session plays a hosted game: the local Player answers for human seats and
// the server is asked to move for computer seats
type Session struct {
	Client *Client
	GameID string
	Player game.Player
	// OnMove is called with every move the server reports as applied
	OnMove func(core.MoveInfo)
}

// Run plays until the hosted game is over, returning its final state
func (s *Session) Run(ctx context.Context) (*core.GameResponse, error) {
	g, err := s.Client.GetGame(ctx, s.GameID)
	if err != nil {
		return nil, err
	}

	for g.State == core.StateOngoing.String() {
		if err := ctx.Err(); err != nil {
			return g, err
		}

		seat := g.Players.White
		if g.Turn == core.ColorBlack.String() {
			seat = g.Players.Black
		}

		var next *core.GameResponse
		if seat != nil && seat.Type == core.PlayerComputer {
			next, err = s.Client.MakeMove(ctx, s.GameID, botMove)
		} else {
			next, err = s.humanMove(ctx, g)
		}
		if err != nil {
			return g, err
		}
		if next == nil {
			continue
		}

		g = next
		if g.LastMove != nil && s.OnMove != nil {
			s.OnMove(*g.LastMove)
		}
	}
	return g, nil
}

// humanMove returns a nil response when the server refused the move
func (s *Session) humanMove(ctx context.Context, g *core.GameResponse) (*core.GameResponse, error) {
	turn, err := TurnOf(g)
	if err != nil {
		return nil, err
	}

	m, err := s.Player.ProposeMove(ctx, turn)
	if err != nil {
		return nil, err
	}

	next, err := s.Client.MakeMove(ctx, s.GameID, m.String())
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Code == core.ErrInvalidMove {
		if l, ok := s.Player.(game.RejectionListener); ok {
			l.MoveRejected(m, err)
		}
		return nil, nil
	}
	return next, err
}

// TurnOf rebuilds the player's view from a game response
func TurnOf(g *core.GameResponse) (game.Turn, error) {
	b, err := board.Parse(g.Position)
	if err != nil {
		return game.Turn{}, err
	}
	side, ok := core.ParseColor(g.Turn)
	if !ok {
		return game.Turn{}, fmt.Errorf("unknown side %q", g.Turn)
	}

	t := game.Turn{Board: b, Side: side, Round: g.Round}
	if g.Chain != "" {
		sq, err := board.ParseSquare(g.Chain)
		if err != nil {
			return game.Turn{}, err
		}
		t.Chain = &sq
	}
	return t, nil
}

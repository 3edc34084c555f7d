package game

import (
	"context"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/rules"
)

// Turn is what a player sees when asked for a move
type Turn struct {
	Board board.Board
	Side  core.Color
	Round int
	// Chain is set while a capture chain is in progress. The next move must
	// be a capture by the piece on this square.
	Chain *board.Square
}

// LegalMoves lists the moves Game.Play would accept for this turn
func (t Turn) LegalMoves() []board.Move {
	if t.Chain != nil {
		return rules.CapturesFrom(&t.Board, *t.Chain)
	}
	return rules.LegalMoves(&t.Board, t.Side)
}

// Player supplies moves for one side. Proposals may be illegal; the
// controller asks again after each rejection.
type Player interface {
	ProposeMove(ctx context.Context, t Turn) (board.Move, error)
}

// RejectionListener is implemented by players that want to hear why a
// proposal was refused
type RejectionListener interface {
	MoveRejected(m board.Move, err error)
}

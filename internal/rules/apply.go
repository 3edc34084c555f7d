package rules

import (
	"fmt"

	"checkers/internal/board"
)

// Effect describes what Apply did to the board
type Effect struct {
	Captured     *board.Square // nil for simple moves
	CapturedCell board.Cell
	Promoted     bool
	// Continue is set when the same piece must keep capturing
	Continue bool
}

// Apply mutates b according to a move already classified as kind. Passing
// Rejected or a kind that was not produced for m is a programming error.
func Apply(b *board.Board, m board.Move, kind MoveKind) Effect {
	switch kind {
	case WhiteMan, BlackMan:
		return Effect{Promoted: relocate(b, m)}
	case WhiteKing, BlackKing:
		relocate(b, m)
		return Effect{}
	case WhiteManCaptures, BlackManCaptures, WhiteKingCaptures, BlackKingCaptures:
		return capture(b, m)
	default:
		panic(fmt.Sprintf("rules: cannot apply %s move %s", kind, m))
	}
}

func capture(b *board.Board, m board.Move) Effect {
	dr, dc := m.Step()
	hit, ok := Ray(b, m.From, dr, dc)
	if !ok || hit.Distance >= m.Distance() {
		panic(fmt.Sprintf("rules: no piece to capture on %s", m))
	}

	b.Clear(hit.Square)
	captured := hit.Square
	effect := Effect{
		Captured:     &captured,
		CapturedCell: hit.Cell,
		Promoted:     relocate(b, m),
	}
	// A man crowned by its capture ends the turn
	if !effect.Promoted {
		effect.Continue = CanCaptureFrom(b, m.To)
	}
	return effect
}

// relocate moves the piece and crowns a man that reaches its farthest row
func relocate(b *board.Board, m board.Move) bool {
	piece := b.At(m.From)
	b.Clear(m.From)

	promoted := false
	if side, ok := piece.Owner(); ok && piece.IsMan() && m.To.Row == side.PromotionRow() {
		piece = piece.Promoted()
		promoted = true
	}
	b.Set(m.To, piece)
	return promoted
}

package rules

import (
	"checkers/internal/board"
	"checkers/internal/core"
)

// Classify decides which kind of move m is for side, or Rejected.
// It never mutates the board.
func Classify(b *board.Board, side core.Color, m board.Move) MoveKind {
	kind, _ := classify(b, side, m)
	return kind
}

// ClassifyWhite is Classify with white to move
func ClassifyWhite(b *board.Board, m board.Move) MoveKind {
	return Classify(b, core.ColorWhite, m)
}

// ClassifyBlack is Classify with black to move
func ClassifyBlack(b *board.Board, m board.Move) MoveKind {
	return Classify(b, core.ColorBlack, m)
}

// Check is Classify returning an *IllegalMoveError for rejected moves
func Check(b *board.Board, side core.Color, m board.Move) (MoveKind, error) {
	kind, reason := classify(b, side, m)
	if kind == Rejected {
		return Rejected, &IllegalMoveError{Move: m, Reason: reason}
	}
	return kind, nil
}

func classify(b *board.Board, side core.Color, m board.Move) (MoveKind, string) {
	// Geometry first, so nothing below touches the board out of range
	if !m.InBounds() {
		return Rejected, reasonOffBoard
	}
	if !m.IsDiagonal() {
		return Rejected, reasonNotDiagonal
	}

	piece := b.At(m.From)
	if piece.IsEmpty() {
		return Rejected, reasonEmptyStart
	}
	if !piece.BelongsTo(side) {
		return Rejected, reasonOpponentPiece
	}
	if !b.At(m.To).IsEmpty() {
		return Rejected, reasonOccupied
	}

	if piece.IsKing() {
		return classifyKing(b, side, m)
	}
	return classifyMan(b, side, m)
}

func classifyMan(b *board.Board, side core.Color, m board.Move) (MoveKind, string) {
	if (m.To.Row-m.From.Row)*side.Forward() < 0 {
		return Rejected, reasonBackward
	}

	switch m.Distance() {
	case 1:
		return manKind(side, false), ""
	case 2:
		mid := board.Square{
			Row: (m.From.Row + m.To.Row) / 2,
			Col: (m.From.Col + m.To.Col) / 2,
		}
		if b.At(mid).BelongsTo(core.OppositeColor(side)) {
			return manKind(side, true), ""
		}
		return Rejected, reasonNothingToTake
	default:
		return Rejected, reasonTooFar
	}
}

func classifyKing(b *board.Board, side core.Color, m board.Move) (MoveKind, string) {
	dr, dc := m.Step()
	dist := m.Distance()

	first, ok := Ray(b, m.From, dr, dc)
	if !ok || first.Distance >= dist {
		return kingKind(side, false), ""
	}
	if first.Cell.BelongsTo(side) {
		return Rejected, reasonOwnInPath
	}

	second, ok := Ray(b, first.Square, dr, dc)
	if ok && first.Distance+second.Distance < dist {
		return Rejected, reasonTwoInPath
	}
	return kingKind(side, true), ""
}

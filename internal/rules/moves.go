package rules

import (
	"checkers/internal/board"
	"checkers/internal/core"
)

// LegalMoves enumerates every move Classify accepts for side, ordered by
// start square then direction then distance.
func LegalMoves(b *board.Board, side core.Color) []board.Move {
	var moves []board.Move
	for _, from := range b.Pieces(side) {
		for _, dir := range Diagonals {
			for d := 1; d < board.Size; d++ {
				to := from.Add(d*dir[0], d*dir[1])
				if !to.InBounds() {
					break
				}
				m := board.Move{From: from, To: to}
				if Classify(b, side, m) != Rejected {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

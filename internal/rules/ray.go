package rules

import (
	"checkers/internal/board"
	"checkers/internal/core"
)

// Diagonals lists the four unit directions as (drow, dcol)
var Diagonals = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// Hit is the first occupied square found along a ray
type Hit struct {
	Square   board.Square
	Cell     board.Cell
	Distance int
}

// Ray walks from start (exclusive) in direction (dr, dc) and returns the
// first non-empty cell. ok is false when the ray leaves the board first.
func Ray(b *board.Board, start board.Square, dr, dc int) (Hit, bool) {
	for d := 1; ; d++ {
		sq := start.Add(d*dr, d*dc)
		if !sq.InBounds() {
			return Hit{}, false
		}
		if c := b.At(sq); !c.IsEmpty() {
			return Hit{Square: sq, Cell: c, Distance: d}, true
		}
	}
}

// CanCaptureFrom reports whether the piece on sq has a capture available
func CanCaptureFrom(b *board.Board, sq board.Square) bool {
	return len(CapturesFrom(b, sq)) > 0
}

// CapturesFrom lists every capture available to the piece on sq. Men only
// look at their two forward diagonals; kings scan all four rays and may land
// on any empty square behind the captured piece.
func CapturesFrom(b *board.Board, sq board.Square) []board.Move {
	piece := b.At(sq)
	side, ok := piece.Owner()
	if !ok {
		return nil
	}
	opponent := core.OppositeColor(side)

	var moves []board.Move
	if piece.IsMan() {
		dr := side.Forward()
		for _, dc := range []int{-1, 1} {
			mid := sq.Add(dr, dc)
			land := sq.Add(2*dr, 2*dc)
			if !land.InBounds() {
				continue
			}
			if b.At(mid).BelongsTo(opponent) && b.At(land).IsEmpty() {
				moves = append(moves, board.Move{From: sq, To: land})
			}
		}
		return moves
	}

	for _, dir := range Diagonals {
		hit, ok := Ray(b, sq, dir[0], dir[1])
		if !ok || !hit.Cell.BelongsTo(opponent) {
			continue
		}
		for land := hit.Square.Add(dir[0], dir[1]); land.InBounds() && b.At(land).IsEmpty(); land = land.Add(dir[0], dir[1]) {
			moves = append(moves, board.Move{From: sq, To: land})
		}
	}
	return moves
}

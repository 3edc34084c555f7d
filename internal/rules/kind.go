package rules

import "checkers/internal/core"

// MoveKind tags a classified move with the mutation path Apply must take
type MoveKind int

const (
	Rejected MoveKind = iota
	WhiteMan
	WhiteManCaptures
	WhiteKing
	WhiteKingCaptures
	BlackMan
	BlackManCaptures
	BlackKing
	BlackKingCaptures
)

func (k MoveKind) String() string {
	switch k {
	case WhiteMan:
		return "white man"
	case WhiteManCaptures:
		return "white man captures"
	case WhiteKing:
		return "white king"
	case WhiteKingCaptures:
		return "white king captures"
	case BlackMan:
		return "black man"
	case BlackManCaptures:
		return "black man captures"
	case BlackKing:
		return "black king"
	case BlackKingCaptures:
		return "black king captures"
	default:
		return "rejected"
	}
}

// MarshalText keeps serialized history readable
func (k MoveKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Side returns the mover. Undefined for Rejected.
func (k MoveKind) Side() core.Color {
	if k >= BlackMan {
		return core.ColorBlack
	}
	return core.ColorWhite
}

func (k MoveKind) IsCapture() bool {
	switch k {
	case WhiteManCaptures, WhiteKingCaptures, BlackManCaptures, BlackKingCaptures:
		return true
	}
	return false
}

func (k MoveKind) IsKing() bool {
	switch k {
	case WhiteKing, WhiteKingCaptures, BlackKing, BlackKingCaptures:
		return true
	}
	return false
}

func manKind(side core.Color, capture bool) MoveKind {
	switch {
	case side == core.ColorWhite && capture:
		return WhiteManCaptures
	case side == core.ColorWhite:
		return WhiteMan
	case capture:
		return BlackManCaptures
	default:
		return BlackMan
	}
}

func kingKind(side core.Color, capture bool) MoveKind {
	switch {
	case side == core.ColorWhite && capture:
		return WhiteKingCaptures
	case side == core.ColorWhite:
		return WhiteKing
	case capture:
		return BlackKingCaptures
	default:
		return BlackKing
	}
}

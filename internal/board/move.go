package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Square addresses a cell, 0-based
type Square struct {
	Row int
	Col int
}

func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// IsDark reports whether pieces may stand on s
func (s Square) IsDark() bool {
	return (s.Row+s.Col)%2 == 1
}

func (s Square) Add(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String renders the square in wire order, 1-based "col row"
func (s Square) String() string {
	return fmt.Sprintf("%d %d", s.Col+1, s.Row+1)
}

// Move is a request to relocate the piece on From to To
type Move struct {
	From Square
	To   Square
}

// ParseMove reads four 1-based integers in the order column, row, column,
// row. Fields may be separated by spaces or commas. Range is not checked here.
func ParseMove(s string) (Move, error) {
	n, err := parseFields(s, 4, "col row col row")
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %w", err)
	}
	return Move{
		From: Square{Col: n[0], Row: n[1]},
		To:   Square{Col: n[2], Row: n[3]},
	}, nil
}

// ParseSquare reads the "col row" form produced by Square.String
func ParseSquare(s string) (Square, error) {
	n, err := parseFields(s, 2, "col row")
	if err != nil {
		return Square{}, fmt.Errorf("invalid square %w", err)
	}
	return Square{Col: n[0], Row: n[1]}, nil
}

// parseFields splits s into count integers and converts them to 0-based
func parseFields(s string, count int, layout string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != count {
		return nil, fmt.Errorf("%q: expected %d numbers (%s)", s, count, layout)
	}

	n := make([]int, count)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q: %q is not a number", s, f)
		}
		n[i] = v - 1
	}
	return n, nil
}

// String renders the move in the same wire format ParseMove accepts
func (m Move) String() string {
	return m.From.String() + " " + m.To.String()
}

func (m Move) InBounds() bool {
	return m.From.InBounds() && m.To.InBounds()
}

// IsDiagonal reports a non-zero displacement with |drow| == |dcol|
func (m Move) IsDiagonal() bool {
	dr, dc := m.To.Row-m.From.Row, m.To.Col-m.From.Col
	return dr != 0 && abs(dr) == abs(dc)
}

// Distance is the number of diagonal steps for a diagonal move
func (m Move) Distance() int {
	return abs(m.To.Row - m.From.Row)
}

// Step returns the unit direction of a diagonal move
func (m Move) Step() (dr, dc int) {
	return sign(m.To.Row - m.From.Row), sign(m.To.Col - m.From.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

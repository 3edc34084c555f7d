package board

import (
	"fmt"
	"strings"

	"checkers/internal/core"
)

const Size = 8

// Cell is the content of one square. Empty cells keep the colour of their
// square so the grid always reflects the checkerboard pattern.
type Cell byte

const (
	EmptyLight Cell = ','
	EmptyDark  Cell = '.'
	WhiteMan   Cell = 'o'
	WhiteKing  Cell = 'O'
	BlackMan   Cell = 'x'
	BlackKing  Cell = 'X'
)

func (c Cell) IsEmpty() bool {
	return c == EmptyLight || c == EmptyDark
}

func (c Cell) IsMan() bool {
	return c == WhiteMan || c == BlackMan
}

func (c Cell) IsKing() bool {
	return c == WhiteKing || c == BlackKing
}

// Owner returns the side a piece belongs to, ok is false for empty cells
func (c Cell) Owner() (core.Color, bool) {
	switch c {
	case WhiteMan, WhiteKing:
		return core.ColorWhite, true
	case BlackMan, BlackKing:
		return core.ColorBlack, true
	default:
		return 0, false
	}
}

// BelongsTo reports whether the cell holds a piece of side
func (c Cell) BelongsTo(side core.Color) bool {
	owner, ok := c.Owner()
	return ok && owner == side
}

// Promoted returns the king for a man, any other cell unchanged
func (c Cell) Promoted() Cell {
	switch c {
	case WhiteMan:
		return WhiteKing
	case BlackMan:
		return BlackKing
	default:
		return c
	}
}

func (c Cell) String() string {
	return string(c)
}

// ManOf and KingOf return the piece symbols for a side
func ManOf(side core.Color) Cell {
	if side == core.ColorWhite {
		return WhiteMan
	}
	return BlackMan
}

func KingOf(side core.Color) Cell {
	if side == core.ColorWhite {
		return WhiteKing
	}
	return BlackKing
}

func validCell(c Cell) bool {
	switch c {
	case EmptyLight, EmptyDark, WhiteMan, WhiteKing, BlackMan, BlackKing:
		return true
	}
	return false
}

// Board is an owned 8x8 grid indexed [row][col]. Row 0 is black's back rank.
type Board struct {
	squares [Size][Size]Cell
}

// New returns the standard starting position
func New() Board {
	var b Board
	b.Initialize()
	return b
}

// Initialize resets every cell to its square colour, then places black men on
// the dark squares of rows 0-2 and white men on the dark squares of rows 5-7.
func (b *Board) Initialize() {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.squares[r][c] = emptyFor(Square{Row: r, Col: c})
		}
	}
	for r := 0; r < 3; r++ {
		for c := (r + 1) % 2; c < Size; c += 2 {
			b.squares[r][c] = BlackMan
		}
	}
	for r := 5; r < Size; r++ {
		for c := (r + 1) % 2; c < Size; c += 2 {
			b.squares[r][c] = WhiteMan
		}
	}
}

// Empty returns a board with no pieces
func Empty() Board {
	var b Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.squares[r][c] = emptyFor(Square{Row: r, Col: c})
		}
	}
	return b
}

func emptyFor(sq Square) Cell {
	if sq.IsDark() {
		return EmptyDark
	}
	return EmptyLight
}

// At returns the occupant of sq. Callers validate bounds first.
func (b *Board) At(sq Square) Cell {
	return b.squares[sq.Row][sq.Col]
}

// Set places c on sq. Callers validate bounds first.
func (b *Board) Set(sq Square, c Cell) {
	b.squares[sq.Row][sq.Col] = c
}

// Clear resets sq to the empty cell of its colour
func (b *Board) Clear(sq Square) {
	b.squares[sq.Row][sq.Col] = emptyFor(sq)
}

// Count returns the number of pieces side has on the board
func (b *Board) Count(side core.Color) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.squares[r][c].BelongsTo(side) {
				n++
			}
		}
	}
	return n
}

// Pieces returns the squares occupied by side in row-major order
func (b *Board) Pieces(side core.Color) []Square {
	var out []Square
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.squares[r][c].BelongsTo(side) {
				out = append(out, Square{Row: r, Col: c})
			}
		}
	}
	return out
}

// Parse reads the compact position text produced by String: eight rows of
// eight cells separated by '/', row 0 first. Whitespace is ignored. Empty
// symbols are normalised to the colour of their square.
func Parse(text string) (Board, error) {
	text = strings.Join(strings.Fields(text), "")
	rows := strings.Split(text, "/")
	if len(rows) != Size {
		return Board{}, fmt.Errorf("invalid position: expected %d rows, got %d", Size, len(rows))
	}

	var b Board
	for r, row := range rows {
		if len(row) != Size {
			return Board{}, fmt.Errorf("invalid position: row %d has %d cells", r+1, len(row))
		}
		for c := 0; c < Size; c++ {
			sq := Square{Row: r, Col: c}
			cell := Cell(row[c])
			if !validCell(cell) {
				return Board{}, fmt.Errorf("invalid position: unknown symbol %q at row %d col %d", row[c], r+1, c+1)
			}
			if cell.IsEmpty() {
				b.Clear(sq)
				continue
			}
			if !sq.IsDark() {
				return Board{}, fmt.Errorf("invalid position: piece on light square at row %d col %d", r+1, c+1)
			}
			b.Set(sq, cell)
		}
	}
	return b, nil
}

// String returns the compact position text accepted by Parse
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < Size; c++ {
			sb.WriteByte(byte(b.squares[r][c]))
		}
	}
	return sb.String()
}

// ToASCII creates an ASCII representation of the board: each row prefixed by
// its 1-based index, cells separated by spaces, column indexes on the last line.
func (b Board) ToASCII() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		sb.WriteString(fmt.Sprintf("%d ", r+1))
		for c := 0; c < Size; c++ {
			sb.WriteString(fmt.Sprintf("%c ", b.squares[r][c]))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  ")
	for c := 0; c < Size; c++ {
		sb.WriteString(fmt.Sprintf("%d ", c+1))
	}
	return sb.String()
}

package display

import (
	"fmt"
	"io"

	"checkers/internal/board"

	"github.com/fatih/color"
)

var (
	indexColor = color.New(color.FgCyan)
	whiteColor = color.New(color.FgBlue, color.Bold)
	blackColor = color.New(color.FgRed, color.Bold)
	emptyColor = color.New(color.Faint)
)

// RenderBoard writes the board in the same layout as board.ToASCII, with
// pieces and indexes coloured. Colour output follows color.NoColor.
func RenderBoard(w io.Writer, b board.Board) {
	for r := 0; r < board.Size; r++ {
		fmt.Fprintf(w, "%s ", indexColor.Sprint(r+1))
		for c := 0; c < board.Size; c++ {
			fmt.Fprintf(w, "%s ", colorFor(b.At(board.Square{Row: r, Col: c})))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, "  ")
	for c := 0; c < board.Size; c++ {
		fmt.Fprintf(w, "%s ", indexColor.Sprint(c+1))
	}
	fmt.Fprintln(w)
}

func colorFor(c board.Cell) string {
	switch c {
	case board.WhiteMan, board.WhiteKing:
		return whiteColor.Sprint(c.String())
	case board.BlackMan, board.BlackKing:
		return blackColor.Sprint(c.String())
	default:
		return emptyColor.Sprint(c.String())
	}
}

// SideName returns a coloured side label
func SideName(name string, white bool) string {
	if white {
		return whiteColor.Sprint(name)
	}
	return blackColor.Sprint(name)
}

// Prompt returns a coloured prompt string
func Prompt(text string) string {
	return color.YellowString(text + " > ")
}

// Errorf formats an error line in red
func Errorf(format string, args ...any) string {
	return color.RedString(format, args...)
}

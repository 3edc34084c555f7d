package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/display"
	"checkers/internal/game"
	"checkers/internal/rules"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// ErrQuit is returned when the player asks to leave the game
var ErrQuit = errors.New("player quit")

const movePrompt = "move"

type lineReader interface {
	Readline() (string, error)
	Close() error
}

// scanReader is used when input is not a terminal
type scanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

func (r *scanReader) Readline() (string, error) {
	fmt.Fprint(r.out, r.prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *scanReader) Close() error {
	return nil
}

// Human reads moves for one side from a console
type Human struct {
	in       lineReader
	out      io.Writer
	rejected bool
}

// NewHuman uses readline when in is a terminal and a plain line scanner
// otherwise. historyFile may be empty to disable history.
func NewHuman(in io.Reader, out io.Writer, historyFile string) (*Human, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          display.Prompt(movePrompt),
			HistoryFile:     historyFile,
			InterruptPrompt: "^C",
			EOFPrompt:       "quit",
			Stdout:          out,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize readline: %w", err)
		}
		return &Human{in: rl, out: out}, nil
	}

	return &Human{
		in: &scanReader{
			scanner: bufio.NewScanner(in),
			out:     out,
			prompt:  display.Prompt(movePrompt),
		},
		out: out,
	}, nil
}

func (h *Human) Close() error {
	return h.in.Close()
}

// ProposeMove shows the board and reads the next move line
func (h *Human) ProposeMove(ctx context.Context, t game.Turn) (board.Move, error) {
	if !h.rejected {
		fmt.Fprintln(h.out)
		display.RenderBoard(h.out, t.Board)
		fmt.Fprintf(h.out, "Round %d, %s to move\n", t.Round, display.SideName(t.Side.Name(), t.Side == core.ColorWhite))
		if t.Chain != nil {
			fmt.Fprintf(h.out, "Keep capturing with the piece on %s\n", t.Chain)
		}
	}
	h.rejected = false

	for {
		if err := ctx.Err(); err != nil {
			return board.Move{}, err
		}

		line, err := h.in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return board.Move{}, ErrQuit
		}
		if err != nil {
			return board.Move{}, err
		}

		line = strings.TrimSpace(line)
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return board.Move{}, ErrQuit
		case "help", "?":
			h.showHelp()
			continue
		case "board":
			display.RenderBoard(h.out, t.Board)
			continue
		case "moves":
			h.showMoves(t)
			continue
		}

		m, err := board.ParseMove(line)
		if err != nil {
			fmt.Fprintln(h.out, display.Errorf("%v", err))
			continue
		}
		return m, nil
	}
}

// MoveRejected reports an illegal move; the controller asks again
func (h *Human) MoveRejected(m board.Move, err error) {
	h.rejected = true
	fmt.Fprintln(h.out, display.Errorf("Move is illegal! Make another."))

	var illegal *rules.IllegalMoveError
	if errors.As(err, &illegal) {
		fmt.Fprintf(h.out, "  %s\n", illegal.Reason)
	} else if err != nil {
		fmt.Fprintf(h.out, "  %v\n", err)
	}
	logrus.WithField("move", m.String()).Debug(err)
}

func (h *Human) showMoves(t game.Turn) {
	moves := t.LegalMoves()
	if len(moves) == 0 {
		fmt.Fprintln(h.out, "No legal moves")
		return
	}
	for _, m := range moves {
		fmt.Fprintf(h.out, "  %s\n", m)
	}
}

func (h *Human) showHelp() {
	help := `Enter a move as four numbers: column row column row (1-based)
  e.g. "3 6 4 5" moves the piece in column 3, row 6 to column 4, row 5
Commands:
  board       - Show the board again
  moves       - List legal moves
  help/?      - Show this help message
  quit/exit   - Leave the game`
	fmt.Fprintln(h.out, help)
}

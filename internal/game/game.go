package game

import (
	"errors"
	"fmt"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/rules"

	"github.com/sirupsen/logrus"
)

// WinningCaptures is one full set of opposing pieces
const WinningCaptures = 12

var ErrGameOver = errors.New("game is over")

// Snapshot records one applied move
type Snapshot struct {
	Position string         `json:"position"` // board after the move
	Move     string         `json:"move"`
	Side     core.Color     `json:"side"`
	Kind     rules.MoveKind `json:"kind"`
	Round    int            `json:"round"`
}

// Outcome tracks the result of a single Play call
type Outcome struct {
	Move   board.Move
	Kind   rules.MoveKind
	Side   core.Color
	Round  int
	Effect rules.Effect
	State  core.State
}

// Continues reports whether the same side moves again
func (o Outcome) Continues() bool {
	return o.Effect.Continue && !o.State.IsOver()
}

// Game owns the board, the round counter and both capture tallies. Odd
// rounds belong to white, even rounds to black.
type Game struct {
	board         board.Board
	round         int
	whiteCaptures int
	blackCaptures int
	state         core.State
	chain         *board.Square
	history       []Snapshot
}

// New starts a game from the standard layout, white to move in round 1
func New() *Game {
	return &Game{
		board: board.New(),
		round: 1,
		state: core.StateOngoing,
	}
}

// Restore creates a game from an arbitrary position and counters
func Restore(b board.Board, round, whiteCaptures, blackCaptures int) (*Game, error) {
	if round < 1 {
		return nil, fmt.Errorf("invalid round: %d", round)
	}
	for _, n := range []int{whiteCaptures, blackCaptures} {
		if n < 0 || n > WinningCaptures {
			return nil, fmt.Errorf("invalid capture count: %d", n)
		}
	}

	g := &Game{
		board:         b,
		round:         round,
		whiteCaptures: whiteCaptures,
		blackCaptures: blackCaptures,
		state:         core.StateOngoing,
	}
	switch {
	case whiteCaptures == WinningCaptures:
		g.state = core.StateWhiteWins
	case blackCaptures == WinningCaptures:
		g.state = core.StateBlackWins
	}
	return g, nil
}

// Turn returns the side to move
func (g *Game) Turn() core.Color {
	if g.round%2 == 1 {
		return core.ColorWhite
	}
	return core.ColorBlack
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) State() core.State {
	return g.state
}

// Board returns a copy of the current position
func (g *Game) Board() board.Board {
	return g.board
}

// Captures returns how many opposing pieces side has taken
func (g *Game) Captures(side core.Color) int {
	if side == core.ColorWhite {
		return g.whiteCaptures
	}
	return g.blackCaptures
}

// Chain returns the square that must continue capturing, if any
func (g *Game) Chain() (board.Square, bool) {
	if g.chain == nil {
		return board.Square{}, false
	}
	return *g.chain, true
}

func (g *Game) Winner() (core.Color, bool) {
	switch g.state {
	case core.StateWhiteWins:
		return core.ColorWhite, true
	case core.StateBlackWins:
		return core.ColorBlack, true
	default:
		return 0, false
	}
}

func (g *Game) History() []Snapshot {
	return append([]Snapshot(nil), g.history...)
}

// Moves returns the applied moves in wire format
func (g *Game) Moves() []string {
	moves := make([]string, 0, len(g.history))
	for _, s := range g.history {
		moves = append(moves, s.Move)
	}
	return moves
}

// View returns the read-only information a player needs to move
func (g *Game) View() Turn {
	t := Turn{
		Board: g.board,
		Side:  g.Turn(),
		Round: g.round,
	}
	if g.chain != nil {
		sq := *g.chain
		t.Chain = &sq
	}
	return t
}

// Play attempts one move for the side to move. An illegal move returns an
// error matching rules.ErrIllegalMove and leaves the game untouched.
func (g *Game) Play(m board.Move) (Outcome, error) {
	if g.state.IsOver() {
		return Outcome{}, ErrGameOver
	}

	side := g.Turn()
	kind, err := rules.Check(&g.board, side, m)
	if err != nil {
		return Outcome{}, err
	}
	if g.chain != nil && (m.From != *g.chain || !kind.IsCapture()) {
		return Outcome{}, &rules.IllegalMoveError{
			Move:   m,
			Reason: fmt.Sprintf("capture must continue from %s", g.chain),
		}
	}

	effect := rules.Apply(&g.board, m, kind)
	if effect.Captured != nil {
		if side == core.ColorWhite {
			g.whiteCaptures++
		} else {
			g.blackCaptures++
		}
	}

	out := Outcome{
		Move:   m,
		Kind:   kind,
		Side:   side,
		Round:  g.round,
		Effect: effect,
	}
	g.history = append(g.history, Snapshot{
		Position: g.board.String(),
		Move:     m.String(),
		Side:     side,
		Kind:     kind,
		Round:    g.round,
	})

	switch {
	case g.Captures(side) >= WinningCaptures:
		g.state = core.WinState(side)
		g.chain = nil
	case effect.Continue:
		to := m.To
		g.chain = &to
	default:
		g.chain = nil
		g.round++
	}
	out.State = g.state

	logrus.WithFields(logrus.Fields{
		"round": out.Round,
		"side":  side.Name(),
		"move":  m.String(),
		"kind":  kind.String(),
	}).Debug("move applied")

	return out, nil
}

package console

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"
	"checkers/internal/rules"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newHuman(t *testing.T, input string) (*Human, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	h, err := NewHuman(strings.NewReader(input), &out, "")
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h, &out
}

func TestHumanReadsMove(t *testing.T) {
	h, out := newHuman(t, "\nhelp\nc6 d5\n3 6 4 5\n")

	m, err := h.ProposeMove(context.Background(), game.New().View())
	require.NoError(t, err)
	assert.Equal(t, board.Move{From: board.Square{Row: 5, Col: 2}, To: board.Square{Row: 4, Col: 3}}, m)

	text := out.String()
	assert.Contains(t, text, "Round 1, White to move")
	assert.Contains(t, text, "8 o , o , o , o , ")
	assert.Contains(t, text, "column row column row")
	assert.Contains(t, text, "expected 4 numbers")
}

func TestHumanCommands(t *testing.T) {
	h, out := newHuman(t, "moves\nquit\n")

	_, err := h.ProposeMove(context.Background(), game.New().View())
	assert.ErrorIs(t, err, ErrQuit)
	assert.Contains(t, out.String(), "  3 6 4 5\n")
}

func TestHumanEndOfInput(t *testing.T) {
	h, _ := newHuman(t, "")
	_, err := h.ProposeMove(context.Background(), game.New().View())
	assert.ErrorIs(t, err, io.EOF)
}

func TestHumanRejection(t *testing.T) {
	h, out := newHuman(t, "3 6 3 5\n3 6 4 5\n")
	black := &scripted{moves: []board.Move{{From: board.Square{Row: 2, Col: 1}, To: board.Square{Row: 3, Col: 2}}}}

	c := &game.Controller{White: h, Black: black, MaxRounds: 1}
	_, err := c.Run(context.Background())
	require.ErrorIs(t, err, game.ErrRoundLimit)

	text := out.String()
	assert.Contains(t, text, "Move is illegal! Make another.")
	assert.Contains(t, text, "move is not diagonal")
	assert.Equal(t, 1, strings.Count(text, "Round 1, White to move"), "board is not redrawn after a rejection")
}

func TestHumanChainNotice(t *testing.T) {
	h, out := newHuman(t, "5 4 7 2\n")
	chain := board.Square{Row: 3, Col: 4}

	_, err := h.ProposeMove(context.Background(), game.Turn{Board: board.Empty(), Side: core.ColorWhite, Round: 3, Chain: &chain})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Keep capturing with the piece on 5 4")
}

func TestReporter(t *testing.T) {
	var out bytes.Buffer
	r := &Reporter{Out: &out, Quiet: core.ColorWhite}

	captured := board.Square{Row: 3, Col: 2}
	r.OnMove(game.Outcome{
		Move:   board.Move{From: board.Square{Row: 2, Col: 1}, To: board.Square{Row: 4, Col: 3}},
		Kind:   rules.BlackManCaptures,
		Side:   core.ColorBlack,
		Effect: rules.Effect{Captured: &captured},
	})
	r.OnMove(game.Outcome{
		Move: board.Move{From: board.Square{Row: 5, Col: 2}, To: board.Square{Row: 4, Col: 1}},
		Kind: rules.WhiteMan,
		Side: core.ColorWhite,
	})
	r.Announce(game.Result{State: core.StateBlackWins, Rounds: 42})

	assert.Equal(t, "Black: 2 3 4 5 takes 3 4\nBLACK WIN! The game lasted 42 rounds!\n", out.String())
}

func TestThinkingDelegates(t *testing.T) {
	inner := &scripted{moves: []board.Move{{From: board.Square{Row: 2, Col: 1}, To: board.Square{Row: 3, Col: 2}}}}
	th := &Thinking{Player: inner, Out: io.Discard}

	m, err := th.ProposeMove(context.Background(), game.Turn{Side: core.ColorBlack})
	require.NoError(t, err)
	assert.Equal(t, board.Square{Row: 3, Col: 2}, m.To)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	th.Delay = time.Minute
	_, err = th.ProposeMove(ctx, game.Turn{Side: core.ColorBlack})
	assert.ErrorIs(t, err, context.Canceled)
}

type scripted struct {
	moves []board.Move
}

func (s *scripted) ProposeMove(context.Context, game.Turn) (board.Move, error) {
	if len(s.moves) == 0 {
		return board.Move{}, io.EOF
	}
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, nil
}

func TestReporterMoveInfo(t *testing.T) {
	var out bytes.Buffer
	r := &Reporter{Out: &out, Quiet: core.ColorWhite}

	r.OnMoveInfo(core.MoveInfo{Move: "3 6 4 5", PlayerColor: "w", Kind: "white man"})
	r.OnMoveInfo(core.MoveInfo{Move: "2 7 1 8", PlayerColor: "b", Kind: "black man", Promoted: true})

	assert.Equal(t, "Black: 2 7 1 8 and is crowned\n", out.String())
}

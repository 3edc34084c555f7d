package bot

import (
	"context"
	"errors"
	"testing"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// watched counts rejected proposals
type watched struct {
	*Random
	rejections int
}

func (w *watched) MoveRejected(board.Move, error) {
	w.rejections++
}

func TestRandomOnlyProposesLegalMoves(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		white := &watched{Random: NewRandom(seed)}
		black := &watched{Random: NewRandom(seed * 31)}

		c := &game.Controller{White: white, Black: black, MaxRounds: 300}
		res, err := c.Run(context.Background())
		if err != nil {
			require.True(t,
				errors.Is(err, game.ErrRoundLimit) || errors.Is(err, ErrNoLegalMoves),
				"seed %d: unexpected error %v", seed, err)
		}

		assert.Zero(t, white.rejections, "seed %d", seed)
		assert.Zero(t, black.rejections, "seed %d", seed)
		assert.LessOrEqual(t, res.WhiteCaptures, game.WinningCaptures)
		assert.LessOrEqual(t, res.BlackCaptures, game.WinningCaptures)
	}
}

func TestRandomIsDeterministic(t *testing.T) {
	play := func(seed uint64) []string {
		c := &game.Controller{White: NewRandom(seed), Black: NewRandom(seed + 1), MaxRounds: 40}
		_, _ = c.Run(context.Background())
		return c.Game.Moves()
	}
	assert.Equal(t, play(7), play(7))
}

func TestRandomFollowsChain(t *testing.T) {
	b := board.Empty()
	b.Set(board.Square{Row: 3, Col: 4}, board.WhiteMan)
	b.Set(board.Square{Row: 5, Col: 2}, board.WhiteMan)
	b.Set(board.Square{Row: 2, Col: 5}, board.BlackMan)
	chain := board.Square{Row: 3, Col: 4}

	turn := game.Turn{Board: b, Side: core.ColorWhite, Round: 1, Chain: &chain}
	r := NewRandom(3)
	for i := 0; i < 10; i++ {
		m, err := r.ProposeMove(context.Background(), turn)
		require.NoError(t, err)
		assert.Equal(t, board.Move{From: chain, To: board.Square{Row: 1, Col: 6}}, m)
	}
}

func TestRandomNoLegalMoves(t *testing.T) {
	b := board.Empty()
	b.Set(board.Square{Row: 0, Col: 1}, board.WhiteMan)

	_, err := NewRandom(1).ProposeMove(context.Background(), game.Turn{Board: b, Side: core.ColorWhite, Round: 1})
	assert.ErrorIs(t, err, ErrNoLegalMoves)
}

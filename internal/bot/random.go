package bot

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"checkers/internal/board"
	"checkers/internal/game"
)

var ErrNoLegalMoves = errors.New("no legal moves")

// Random picks uniformly among the legal moves of the turn. It never
// proposes a move the game would reject.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom creates a bot with a deterministic source for the given seed
func NewRandom(seed uint64) *Random {
	return &Random{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (r *Random) ProposeMove(_ context.Context, t game.Turn) (board.Move, error) {
	moves := t.LegalMoves()
	if len(moves) == 0 {
		return board.Move{}, ErrNoLegalMoves
	}

	r.mu.Lock()
	i := r.rng.IntN(len(moves))
	r.mu.Unlock()

	return moves[i], nil
}

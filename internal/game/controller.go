package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"checkers/internal/core"
	"checkers/internal/rules"
)

var ErrRoundLimit = errors.New("round limit reached")

// Result summarises a finished (or interrupted) game
type Result struct {
	State         core.State
	Rounds        int
	WhiteCaptures int
	BlackCaptures int
}

func (r Result) Winner() (core.Color, bool) {
	switch r.State {
	case core.StateWhiteWins:
		return core.ColorWhite, true
	case core.StateBlackWins:
		return core.ColorBlack, true
	default:
		return 0, false
	}
}

// String is the end-of-game announcement
func (r Result) String() string {
	winner, ok := r.Winner()
	if !ok {
		return fmt.Sprintf("No winner after %d rounds.", r.Rounds)
	}
	return fmt.Sprintf("%s WIN! The game lasted %d rounds!", strings.ToUpper(winner.Name()), r.Rounds)
}

// Controller alternates the two players until one side has captured a full set
type Controller struct {
	Game  *Game
	White Player
	Black Player
	// MaxRounds stops the game with ErrRoundLimit once exceeded, 0 disables
	MaxRounds int
	// OnMove is called after every applied move
	OnMove func(Outcome)
}

// Run plays until a tally reaches WinningCaptures. Errors from players end the
// game early and are returned with the partial result.
func (c *Controller) Run(ctx context.Context) (Result, error) {
	if c.Game == nil {
		c.Game = New()
	}

	for !c.Game.State().IsOver() {
		if c.MaxRounds > 0 && c.Game.Round() > c.MaxRounds {
			return c.result(), fmt.Errorf("%w: %d", ErrRoundLimit, c.MaxRounds)
		}
		if err := c.step(ctx); err != nil {
			return c.result(), err
		}
	}
	return c.result(), nil
}

// step obtains and applies exactly one legal move for the side to move
func (c *Controller) step(ctx context.Context) error {
	side := c.Game.Turn()
	player := c.playerFor(side)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m, err := player.ProposeMove(ctx, c.Game.View())
		if err != nil {
			return fmt.Errorf("%s player: %w", strings.ToLower(side.Name()), err)
		}

		out, err := c.Game.Play(m)
		if errors.Is(err, rules.ErrIllegalMove) {
			if l, ok := player.(RejectionListener); ok {
				l.MoveRejected(m, err)
			}
			continue
		}
		if err != nil {
			return err
		}

		if c.OnMove != nil {
			c.OnMove(out)
		}
		return nil
	}
}

func (c *Controller) playerFor(side core.Color) Player {
	if side == core.ColorWhite {
		return c.White
	}
	return c.Black
}

func (c *Controller) result() Result {
	return Result{
		State:         c.Game.State(),
		Rounds:        c.Game.Round(),
		WhiteCaptures: c.Game.Captures(core.ColorWhite),
		BlackCaptures: c.Game.Captures(core.ColorBlack),
	}
}

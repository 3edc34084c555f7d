package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/display"
	"checkers/internal/game"

	"github.com/briandowns/spinner"
)

// Reporter prints applied moves and the final announcement
type Reporter struct {
	Out io.Writer
	// Quiet suppresses the per-move lines for this side
	Quiet core.Color
}

// OnMove matches game.Controller.OnMove
func (r *Reporter) OnMove(o game.Outcome) {
	if o.Side == r.Quiet {
		return
	}
	line := fmt.Sprintf("%s: %s", display.SideName(o.Side.Name(), o.Side == core.ColorWhite), o.Move)
	if o.Effect.Captured != nil {
		line += fmt.Sprintf(" takes %s", o.Effect.Captured)
	}
	if o.Effect.Promoted {
		line += " and is crowned"
	}
	fmt.Fprintln(r.Out, line)
}

// OnMoveInfo is OnMove for moves reported by a game server
func (r *Reporter) OnMoveInfo(m core.MoveInfo) {
	side, ok := core.ParseColor(m.PlayerColor)
	if !ok || side == r.Quiet {
		return
	}
	line := fmt.Sprintf("%s: %s", display.SideName(side.Name(), side == core.ColorWhite), m.Move)
	if m.Captured != "" {
		line += fmt.Sprintf(" takes %s", m.Captured)
	}
	if m.Promoted {
		line += " and is crowned"
	}
	fmt.Fprintln(r.Out, line)
}

// Announce prints the winner and the number of rounds
func (r *Reporter) Announce(res game.Result) {
	fmt.Fprintln(r.Out, res.String())
}

// Thinking shows a spinner for Delay before delegating to Player
type Thinking struct {
	Player game.Player
	Delay  time.Duration
	Out    io.Writer
}

func (t *Thinking) ProposeMove(ctx context.Context, turn game.Turn) (board.Move, error) {
	if t.Delay > 0 {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(t.Out))
		s.Suffix = fmt.Sprintf(" %s is thinking", turn.Side.Name())
		s.Start()

		timer := time.NewTimer(t.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.Stop()
			return board.Move{}, ctx.Err()
		case <-timer.C:
		}
		s.Stop()
	}
	return t.Player.ProposeMove(ctx, turn)
}

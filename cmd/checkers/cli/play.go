package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"checkers/internal/bot"
	"checkers/internal/console"
	"checkers/internal/core"
	"checkers/internal/display"
	"checkers/internal/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Play() *cobra.Command {
	var (
		noColor   bool
		history   bool
		botDelay  time.Duration
		seed      uint64
		maxRounds int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play white against a computer black",
		Long: heredoc.Doc(`
			play starts an interactive game. You play white, the computer
			plays black and picks a random legal move each turn.

			Enter moves as "column row column row", e.g. "3 6 4 5".
			Type "help" during the game for more commands.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			out := cmd.OutOrStdout()

			historyFile := ""
			if history {
				path, err := xdg.StateFile("checkers/history")
				if err != nil {
					logrus.Warnf("readline history disabled: %v", err)
				} else {
					historyFile = path
				}
			}

			human, err := console.NewHuman(os.Stdin, out, historyFile)
			if err != nil {
				return err
			}
			defer human.Close()

			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			logrus.Debugf("bot seed %d", seed)

			reporter := &console.Reporter{Out: out, Quiet: core.ColorWhite}
			ctrl := &game.Controller{
				White: human,
				Black: &console.Thinking{
					Player: bot.NewRandom(seed),
					Delay:  botDelay,
					Out:    out,
				},
				MaxRounds: maxRounds,
				OnMove:    reporter.OnMove,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			res, err := ctrl.Run(ctx)
			switch {
			case errors.Is(err, console.ErrQuit), errors.Is(err, io.EOF):
				fmt.Fprintln(out, "Bye.")
				return nil
			case errors.Is(err, bot.ErrNoLegalMoves):
				fmt.Fprintln(out, "Black has no legal moves left.")
				reporter.Announce(res)
				return nil
			case errors.Is(err, game.ErrRoundLimit):
				reporter.Announce(res)
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintln(out)
			display.RenderBoard(out, ctrl.Game.Board())
			reporter.Announce(res)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	cmd.Flags().BoolVar(&history, "history", true, "Keep readline history in the XDG state directory")
	cmd.Flags().DurationVar(&botDelay, "bot-delay", 500*time.Millisecond, "Pause before each computer move")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the computer player (0 picks one)")
	cmd.Flags().IntVar(&maxRounds, "max-rounds", 0, "Stop after this many rounds (0 means no limit)")

	return cmd
}

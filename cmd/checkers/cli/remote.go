package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"checkers/internal/board"
	"checkers/internal/client"
	"checkers/internal/console"
	"checkers/internal/core"
	"checkers/internal/display"
	"checkers/internal/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Remote() *cobra.Command {
	var (
		url     string
		gameID  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Play white against the computer on a game server",
		Long: heredoc.Doc(`
			remote plays a game hosted by "checkers serve". Without --game a
			new game is created with you as white and the server's computer
			as black.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			out := cmd.OutOrStdout()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			c := client.New(url)
			if _, err := c.Health(ctx); err != nil {
				return fmt.Errorf("server %s is not reachable: %w", url, err)
			}

			if gameID == "" {
				g, err := c.CreateGame(ctx, core.CreateGameRequest{
					White: core.PlayerConfig{Type: core.PlayerHuman},
					Black: core.PlayerConfig{Type: core.PlayerComputer},
				})
				if err != nil {
					return fmt.Errorf("failed to create game: %w", err)
				}
				gameID = g.GameID
			}
			logrus.Infof("Playing game %s", gameID)

			human, err := console.NewHuman(os.Stdin, out, "")
			if err != nil {
				return err
			}
			defer human.Close()

			reporter := &console.Reporter{Out: out, Quiet: core.ColorWhite}
			session := &client.Session{
				Client: c,
				GameID: gameID,
				Player: human,
				OnMove: reporter.OnMoveInfo,
			}

			final, err := session.Run(ctx)
			switch {
			case errors.Is(err, console.ErrQuit), errors.Is(err, io.EOF):
				fmt.Fprintf(out, "Bye. Resume with --game %s\n", gameID)
				return nil
			case err != nil:
				return err
			}

			if b, err := board.Parse(final.Position); err == nil {
				fmt.Fprintln(out)
				display.RenderBoard(out, b)
			}
			reporter.Announce(resultOf(final))
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "http://localhost:8080", "Game server base URL")
	cmd.Flags().StringVar(&gameID, "game", "", "Join an existing game instead of creating one")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	return cmd
}

func resultOf(g *core.GameResponse) game.Result {
	res := game.Result{
		State:         core.StateOngoing,
		Rounds:        g.Round,
		WhiteCaptures: g.WhiteCaptures,
		BlackCaptures: g.BlackCaptures,
	}
	switch g.State {
	case core.StateWhiteWins.String():
		res.State = core.StateWhiteWins
	case core.StateBlackWins.String():
		res.State = core.StateBlackWins
	}
	return res
}

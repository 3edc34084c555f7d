package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"checkers/internal/bot"
	"checkers/internal/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// simulation outcome labels
const (
	outcomeWin     = "win"
	outcomeLimit   = "round limit"
	outcomeStalled = "no legal moves"
)

func Simulate() *cobra.Command {
	var (
		games     int
		maxRounds int
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play computer against computer",
		Long: heredoc.Doc(`
			simulate plays a number of games between two random players and
			prints how each one ended. A game whose side to move has no legal
			move left is reported as stalled.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if games < 1 {
				return fmt.Errorf("--games must be at least 1")
			}
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			logrus.Debugf("simulation seed %d", seed)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "GAME\tOUTCOME\tWINNER\tROUNDS\tWHITE\tBLACK")

			tally := map[string]int{}
			for i := 1; i <= games; i++ {
				ctrl := &game.Controller{
					White:     bot.NewRandom(seed + uint64(2*i)),
					Black:     bot.NewRandom(seed + uint64(2*i+1)),
					MaxRounds: maxRounds,
				}

				res, err := ctrl.Run(cmd.Context())
				outcome, err := classifyRun(err)
				if err != nil {
					return fmt.Errorf("game %d: %w", i, err)
				}

				winner := "-"
				if side, ok := res.Winner(); ok {
					winner = side.Name()
					tally[winner]++
				}
				tally[outcome]++

				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\n",
					i, outcome, winner, res.Rounds, res.WhiteCaptures, res.BlackCaptures)
			}
			fmt.Fprintf(tw, "\nwhite wins: %d\tblack wins: %d\tround limit: %d\tstalled: %d\n",
				tally["White"], tally["Black"], tally[outcomeLimit], tally[outcomeStalled])

			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&games, "games", "n", 10, "Number of games to play")
	cmd.Flags().IntVar(&maxRounds, "max-rounds", 500, "Stop a game after this many rounds (0 means no limit)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Base seed for both players (0 picks one)")

	return cmd
}

// classifyRun maps the controller's error onto an outcome label. Errors that
// are not an expected way for a bot game to end are returned.
func classifyRun(err error) (string, error) {
	switch {
	case err == nil:
		return outcomeWin, nil
	case errors.Is(err, game.ErrRoundLimit):
		return outcomeLimit, nil
	case errors.Is(err, bot.ErrNoLegalMoves):
		return outcomeStalled, nil
	default:
		return "", err
	}
}

package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Root builds the command tree
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "checkers",
		Short: "Draughts on an 8x8 board",
		Long: heredoc.Doc(`
			checkers plays draughts on an 8x8 board. White moves toward row 1,
			black toward row 8; a side wins by capturing all twelve opposing
			pieces.

			Moves are written as four 1-based numbers: column row column row.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case cmd.Flag("trace").Changed:
				logrus.SetLevel(logrus.TraceLevel)
			case cmd.Flag("debug").Changed:
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolP("debug", "d", false, "Show debug information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show trace information")

	root.Version = "v0.1.0"
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(Play())
	root.AddCommand(Serve())
	root.AddCommand(Remote())
	root.AddCommand(Simulate())

	return root
}

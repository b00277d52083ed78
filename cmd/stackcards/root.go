package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	logFile string
	deck    deckFlags
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "stackcards",
		Short: "Stacked cards: an accordion of cards driven by hover, wheel and keyboard",
		Long: `Stackcards shows a deck of cards as an accordion. The card under the
pointer expands while the others collapse to their short titles; the mouse
wheel steps through the deck and briefly locks hover selection.

Without a subcommand the interactive demo starts on --file, or on the
embedded demo deck when no file is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file (the terminal belongs to the UI)")
	flags.deck.register(cmd)

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

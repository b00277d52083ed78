package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stackcards/internal/brightness"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [deck-file]",
		Short: "Check a deck file without starting the UI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				root.deck.file = args[0]
			}
			return runValidate(cmd, root)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, root *rootFlags) error {
	cfg, source, err := root.deck.load(cmd)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	deck := cfg.Deck()
	steps := brightness.NewMapper(opts.Brightness).StepsFor(len(deck))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Deck %s is valid\n", source)
	fmt.Fprintf(out, "cards: %d\n", len(deck))
	fmt.Fprintf(out, "orientation: %s\n", opts.Orientation)
	fmt.Fprintf(out, "brightness: %.2f..%.2f over %d steps", opts.Brightness.Min, opts.Brightness.Max, steps)
	if opts.Brightness.Invert {
		fmt.Fprint(out, " (inverted)")
	}
	fmt.Fprintln(out)

	labels := make([]string, 0, len(deck))
	for _, c := range deck {
		labels = append(labels, c.Label())
	}
	fmt.Fprintf(out, "labels: %s\n", strings.Join(labels, " "))

	return nil
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stackcards/internal/stackcards"
)

const fallbackWidth = 80

type renderOptions struct {
	Active int
	Width  int
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a single frame of the deck",
		Long: `Render prints the deck once, with the card at --active expanded, and exits.
The terminal width decides the layout for "auto" orientation unless --width
is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Active, "active", 0, "Index of the active card (clamped to the deck)")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Viewport width in columns; defaults to the terminal width")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
	log, closer, err := newLogger(root)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, _, err := root.deck.load(cmd)
	if err != nil {
		return err
	}

	widgetOpts := cfg.Options()
	widgetOpts.DisableTransitions = true
	widgetOpts.Logger = log

	m, err := stackcards.New(cfg.Deck(), widgetOpts)
	if err != nil {
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = terminalWidth()
	}
	m, _ = m.Update(tea.WindowSizeMsg{Width: width})
	m.SetActive(opts.Active)

	fmt.Fprintln(cmd.OutOrStdout(), m.View())
	return nil
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

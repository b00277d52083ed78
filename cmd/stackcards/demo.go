package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stackcards/internal/config"
	"github.com/alexisbeaulieu97/stackcards/internal/tui"
)

func runDemo(cmd *cobra.Command, flags *rootFlags) error {
	log, closer, err := newLogger(flags)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, source, err := flags.deck.load(cmd)
	if err != nil {
		log.Error(err, "failed to load deck")
		return err
	}
	log.WithFields(map[string]any{"source": source, "cards": len(cfg.Cards)}).Info("deck loaded")

	opts := tui.Options{Logger: log}
	if source != config.DefaultSource {
		opts.Source = source
	}

	m, err := tui.FromConfig(cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Error(err, "demo execution failed")
		return fmt.Errorf("failed to run demo: %w", err)
	}

	log.Info("demo closed")
	return nil
}

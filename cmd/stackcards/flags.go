package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stackcards/internal/config"
)

// deckFlags override the style section of the loaded deck. Only flags the
// user actually set are applied.
type deckFlags struct {
	file            string
	orientation     string
	invert          bool
	wheel           bool
	minBrightness   float64
	maxBrightness   float64
	steps           int
	hideShortTitles bool
	noTransitions   bool
}

func (f *deckFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.file, "file", "f", "", "Deck file (YAML); defaults to the embedded demo deck")
	pf.StringVar(&f.orientation, "orientation", "", "Layout: horizontal, vertical or auto")
	pf.BoolVar(&f.invert, "invert", false, "Dim the active card instead of the distant ones")
	pf.BoolVar(&f.wheel, "wheel", true, "Step through cards with the mouse wheel")
	pf.Float64Var(&f.minBrightness, "min", 0, "Lower intensity bound (0..1)")
	pf.Float64Var(&f.maxBrightness, "max", 0, "Upper intensity bound (0..1)")
	pf.IntVar(&f.steps, "steps", 0, "Gradient steps; 0 uses the card count")
	pf.BoolVar(&f.hideShortTitles, "hide-short-titles", false, "Hide short titles on collapsed cards")
	pf.BoolVar(&f.noTransitions, "no-transitions", false, "Disable expand/collapse transitions")
}

// load reads the deck, applies overrides and validates the result.
func (f *deckFlags) load(cmd *cobra.Command) (*config.Config, string, error) {
	var (
		cfg    *config.Config
		source = config.DefaultSource
		err    error
	)

	if strings.TrimSpace(f.file) == "" {
		cfg, err = config.Default()
	} else {
		if err := validateDeckPath(f.file); err != nil {
			return nil, "", err
		}
		source = f.file
		cfg, err = config.ParseConfig(f.file)
	}
	if err != nil {
		return nil, "", err
	}

	f.apply(cmd, cfg)
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, "", fmt.Errorf("invalid flag overrides: %w", err)
	}

	return cfg, source, nil
}

func (f *deckFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	s := &cfg.Style

	if changed("orientation") {
		s.Orientation = config.Orientation(f.orientation)
	}
	if changed("invert") {
		s.Invert = f.invert
	}
	if changed("wheel") {
		wheel := f.wheel
		s.EnableWheelScroll = &wheel
	}
	if changed("min") {
		lo := f.minBrightness
		s.MinBrightness = &lo
	}
	if changed("max") {
		hi := f.maxBrightness
		s.MaxBrightness = &hi
	}
	if changed("steps") {
		s.GradientSteps = f.steps
	}
	if changed("hide-short-titles") {
		s.HideShortTitleWhenCollapsed = f.hideShortTitles
	}
	if changed("no-transitions") {
		transitions := !f.noTransitions
		s.Transitions = &transitions
	}
}

func validateDeckPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve deck path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("deck file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("deck path %s is a directory", abs)
	}

	return nil
}

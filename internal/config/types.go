package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stackcards/internal/brightness"
	"github.com/alexisbeaulieu97/stackcards/internal/cards"
	"github.com/alexisbeaulieu97/stackcards/internal/stackcards"
)

// Config represents a deck file: the cards to show and how to style them.
type Config struct {
	Cards []CardConfig `yaml:"cards" validate:"required,min=1,dive"`
	Style StyleConfig  `yaml:"style,omitempty"`
}

// CardConfig describes one card.
type CardConfig struct {
	Title      string   `yaml:"title" validate:"required"`
	ShortTitle string   `yaml:"short_title,omitempty" validate:"max=16"`
	Items      []string `yaml:"items,omitempty" validate:"omitempty,dive,required"`
}

// StyleConfig holds the widget styling parameters. Pointer fields distinguish
// "unset" from an explicit zero so defaults can apply.
type StyleConfig struct {
	CardColor                   string      `yaml:"card_color,omitempty" validate:"omitempty,colour"`
	OverlayColor                string      `yaml:"overlay_color,omitempty" validate:"omitempty,colour"`
	Orientation                 Orientation `yaml:"orientation,omitempty" validate:"orientation"`
	MinBrightness               *float64    `yaml:"min_brightness,omitempty" validate:"omitempty,gte=0,lte=1"`
	MaxBrightness               *float64    `yaml:"max_brightness,omitempty" validate:"omitempty,gte=0,lte=1"`
	Invert                      bool        `yaml:"invert,omitempty"`
	GradientSteps               int         `yaml:"gradient_steps,omitempty" validate:"gte=0"`
	HideShortTitleWhenCollapsed bool        `yaml:"hide_short_title_when_collapsed,omitempty"`
	EnableWheelScroll           *bool       `yaml:"enable_wheel_scroll,omitempty"`
	Transitions                 *bool       `yaml:"transitions,omitempty"`
	CooldownMS                  int         `yaml:"cooldown_ms,omitempty" validate:"gte=0"`
	Gap                         int         `yaml:"gap,omitempty" validate:"gte=0"`
	Size                        SizeConfig  `yaml:"size,omitempty"`
}

// SizeConfig holds layout dimensions in terminal cells; zero means default.
type SizeConfig struct {
	Width         int `yaml:"width,omitempty" validate:"gte=0"`
	Height        int `yaml:"height,omitempty" validate:"gte=0"`
	ExpandedSize  int `yaml:"expanded_size,omitempty" validate:"gte=0"`
	CollapsedSize int `yaml:"collapsed_size,omitempty" validate:"gte=0"`
}

// Orientation is the raw orientation setting. Deck files may spell it as a
// boolean (true for vertical) or as "horizontal", "vertical" or "auto".
type Orientation string

// UnmarshalYAML accepts boolean and string scalars alike.
func (o *Orientation) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: orientation must be a scalar", value.Line)
	}
	*o = Orientation(value.Value)
	return nil
}

// Resolve converts the setting into a widget orientation.
func (o Orientation) Resolve() (stackcards.Orientation, error) {
	return stackcards.ParseOrientation(string(o))
}

// Deck converts the card definitions into widget cards.
func (c *Config) Deck() []cards.Card {
	out := make([]cards.Card, len(c.Cards))
	for i, card := range c.Cards {
		out[i] = cards.Card{
			Title:      card.Title,
			ShortTitle: card.ShortTitle,
			Items:      append([]string(nil), card.Items...),
		}
	}
	return out
}

// Options converts the style section into widget options on top of the
// widget defaults. The configuration is expected to have been validated.
func (c *Config) Options() stackcards.Options {
	opts := stackcards.DefaultOptions()
	s := c.Style

	if s.CardColor != "" {
		opts.CardColor = s.CardColor
	}
	if s.OverlayColor != "" {
		opts.OverlayColor = s.OverlayColor
	}
	if o, err := s.Orientation.Resolve(); err == nil {
		opts.Orientation = o
	}

	opts.Brightness = brightness.Params{
		Steps:  s.GradientSteps,
		Min:    opts.Brightness.Min,
		Max:    opts.Brightness.Max,
		Invert: s.Invert,
	}
	if s.MinBrightness != nil {
		opts.Brightness.Min = *s.MinBrightness
	}
	if s.MaxBrightness != nil {
		opts.Brightness.Max = *s.MaxBrightness
	}

	opts.HideShortTitleWhenCollapsed = s.HideShortTitleWhenCollapsed
	if s.EnableWheelScroll != nil {
		opts.EnableWheelScroll = *s.EnableWheelScroll
	}
	if s.Transitions != nil {
		opts.DisableTransitions = !*s.Transitions
	}
	if s.CooldownMS > 0 {
		opts.Cooldown = time.Duration(s.CooldownMS) * time.Millisecond
	}
	opts.Gap = s.Gap
	opts.Size = stackcards.Size{
		Width:         s.Size.Width,
		Height:        s.Size.Height,
		ExpandedSize:  s.Size.ExpandedSize,
		CollapsedSize: s.Size.CollapsedSize,
	}

	return opts
}

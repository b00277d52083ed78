// Package tui hosts the stacked cards widget in a full-screen Bubble Tea
// program with a header, status line, help footer and deck reloading.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stackcards/internal/config"
	"github.com/alexisbeaulieu97/stackcards/internal/controller"
	"github.com/alexisbeaulieu97/stackcards/internal/logger"
	"github.com/alexisbeaulieu97/stackcards/internal/stackcards"
)

// Minimum terminal size for a usable layout.
const (
	minWidth  = 40
	minHeight = 16
)

// Options configures the host program.
type Options struct {
	// Source is the deck file path; empty means the embedded deck, which
	// cannot be reloaded.
	Source string
	Logger *logger.Logger
}

// Model is the host program model.
type Model struct {
	cards stackcards.Model
	help  help.Model
	keys  keyMap

	source string
	log    *logger.Logger

	// Last notification from the widget
	lastSource controller.Source
	changes    int

	showError bool
	errorMsg  string

	width  int
	height int
}

type keyMap struct {
	cards  stackcards.KeyMap
	Quit   key.Binding
	Help   key.Binding
	Reload key.Binding
	Clear  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.cards.ShortHelp(), k.Reload, k.Help, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.cards.FullHelp(), []key.Binding{k.Reload, k.Clear, k.Help, k.Quit})
}

func newKeyMap(cards stackcards.KeyMap) keyMap {
	return keyMap{
		cards: cards,
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload deck"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x", "dismiss error"),
		),
	}
}

// NewModel wraps an already constructed widget.
func NewModel(cards stackcards.Model, opts Options) Model {
	cards.SetOrigin(widgetLeft, widgetTop)
	return Model{
		cards:  cards,
		help:   help.New(),
		keys:   newKeyMap(cards.KeyMap()),
		source: opts.Source,
		log:    opts.Logger.With("component", "tui"),
	}
}

// FromConfig builds the widget from a validated deck and wraps it.
func FromConfig(cfg *config.Config, opts Options) (Model, error) {
	widgetOpts := cfg.Options()
	widgetOpts.Logger = opts.Logger

	cards, err := stackcards.New(cfg.Deck(), widgetOpts)
	if err != nil {
		return Model{}, err
	}
	return NewModel(cards, opts), nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.cards.Init()
}

// Cards exposes the hosted widget.
func (m Model) Cards() stackcards.Model {
	return m.cards
}

// Reloadable reports whether the deck came from a file.
func (m Model) Reloadable() bool {
	return m.source != ""
}

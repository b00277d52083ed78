package tui

import (
	"github.com/alexisbeaulieu97/stackcards/internal/config"
)

// DeckLoadedMsg carries a freshly parsed deck file.
type DeckLoadedMsg struct {
	Config *config.Config
}

// DeckErrorMsg reports a deck file that failed to load.
type DeckErrorMsg struct {
	Err error
}

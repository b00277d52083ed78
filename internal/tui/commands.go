package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stackcards/internal/config"
)

// reloadCmd re-reads the deck file off the event loop.
func reloadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.ParseConfig(path)
		if err != nil {
			return DeckErrorMsg{Err: err}
		}
		return DeckLoadedMsg{Config: cfg}
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stackcards/internal/stackcards"
)

const sizeErrorPrefix = "Terminal too small"

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if m.width < minWidth || m.height < minHeight {
			m.log.WithFields(map[string]any{"width": m.width, "height": m.height}).Warn("terminal below minimum size")
			m.showError = true
			m.errorMsg = fmt.Sprintf("%s (%dx%d). Minimum size: %dx%d",
				sizeErrorPrefix, m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, sizeErrorPrefix) {
			m.showError = false
			m.errorMsg = ""
		}

		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case stackcards.ActiveChangedMsg:
		if msg.WidgetID != m.cards.ID() {
			return m, nil
		}
		m.lastSource = msg.Source
		m.changes++
		return m, nil

	case DeckLoadedMsg:
		cmd := m.cards.SetCards(msg.Config.Deck())
		m.log.With("cards", m.cards.Len()).Info("deck reloaded")
		if m.showError && !strings.HasPrefix(m.errorMsg, sizeErrorPrefix) {
			m.showError = false
			m.errorMsg = ""
		}
		return m, cmd

	case DeckErrorMsg:
		m.log.Error(msg.Err, "deck reload failed")
		m.showError = true
		m.errorMsg = fmt.Sprintf("Reload failed: %s", msg.Err.Error())
		return m, nil
	}

	// Mouse, cooldown and transition frames belong to the widget.
	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.cards, cmd = m.cards.Update(msg)
	return m, cmd
}

// handleKeyPress resolves host bindings before passing keys to the widget.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cards.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		if m.showError {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if !m.Reloadable() {
			m.log.Warn("reload requested for the embedded deck")
			m.showError = true
			m.errorMsg = "Nothing to reload: the embedded deck is in use"
			return m, nil
		}
		return m, reloadCmd(m.source)
	}

	return m.forward(msg)
}

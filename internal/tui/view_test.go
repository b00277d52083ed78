package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_Initializing(t *testing.T) {
	m := newTestModel(t, "")
	assert.Equal(t, "Initializing...", m.View())
}

func TestView_Layout(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	lines := strings.Split(view, "\n")

	assert.Contains(t, lines[0], "Stacked Cards")
	assert.Contains(t, lines[0], "embedded deck")
	assert.Contains(t, view, "1/3 Alpha")

	// The widget starts where hit testing expects it.
	cardsView := m.Cards().View()
	first := strings.Split(cardsView, "\n")[0]
	assert.Equal(t, strings.Repeat(" ", widgetLeft)+first, lines[widgetTop])
}

func TestView_ErrorBannerKeepsWidgetRow(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.True(t, m.showError)

	lines := strings.Split(m.View(), "\n")
	assert.Contains(t, lines[widgetTop-1], "Nothing to reload")

	first := strings.Split(m.Cards().View(), "\n")[0]
	assert.Equal(t, strings.Repeat(" ", widgetLeft)+first, lines[widgetTop])
}

func TestView_StatusShowsLock(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m, _ = update(t, m, tea.MouseMsg{
		X:      widgetLeft + 1,
		Y:      widgetTop + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelDown,
	})
	assert.True(t, m.Cards().Locked())
	assert.Contains(t, m.renderStatus(), "hover locked")
	assert.Equal(t, 1, lipgloss.Height(m.renderStatus()))
}

func TestView_MultilineReloadErrorStaysOnOneRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(threeCards), 0o600))

	m := newTestModel(t, path)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	require.NoError(t, os.WriteFile(path, []byte("cards: 5\n"), 0o600))
	deckErr, ok := reloadCmd(path)().(DeckErrorMsg)
	require.True(t, ok)

	m, _ = update(t, m, deckErr)
	require.True(t, m.showError)
	require.Contains(t, m.errorMsg, "\n", "yaml decode errors span several lines")

	lines := strings.Split(m.View(), "\n")
	assert.Contains(t, lines[widgetTop-1], "Reload failed")

	first := strings.Split(m.Cards().View(), "\n")[0]
	assert.Equal(t, strings.Repeat(" ", widgetLeft)+first, lines[widgetTop])

	// The banner row is not part of the widget.
	m, _ = update(t, m, tea.MouseMsg{
		X:      widgetLeft + 37,
		Y:      widgetTop - 1,
		Action: tea.MouseActionMotion,
		Button: tea.MouseButtonNone,
	})
	assert.Equal(t, 0, m.Cards().Active())
}

func TestView_ErrorBannerFitsNarrowTerminal(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	require.True(t, m.showError)

	banner := m.renderErrorBanner()
	assert.Equal(t, 1, lipgloss.Height(banner))
	assert.LessOrEqual(t, lipgloss.Width(banner), 30)

	lines := strings.Split(m.View(), "\n")
	assert.Contains(t, lines[widgetTop-1], "Terminal too small")
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	// The banner takes the spacer row so the widget stays at widgetTop.
	if m.showError {
		content.WriteString(m.renderErrorBanner())
	}
	content.WriteString("\n")

	content.WriteString(m.renderCards())
	content.WriteString("\n\n")

	content.WriteString(m.renderStatus())
	content.WriteString("\n")
	content.WriteString(m.renderFooter())

	return content.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("Stacked Cards")
	source := m.source
	if source == "" {
		source = "embedded deck"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", sourceStyle.Render(source))
}

// renderErrorBanner always fits on a single row.
func (m Model) renderErrorBanner() string {
	msg := strings.Join(strings.Fields(m.errorMsg), " ")
	return errorBannerStyle.
		MaxWidth(m.width).
		MaxHeight(1).
		Render("⚠ " + msg + "  (x to dismiss)")
}

func (m Model) renderCards() string {
	view := m.cards.View()
	if view == "" {
		view = statusStyle.Render("No cards to show.")
	}
	return lipgloss.NewStyle().PaddingLeft(widgetLeft).Render(view)
}

func (m Model) renderStatus() string {
	if m.cards.Len() == 0 {
		return statusStyle.Render("0 cards")
	}

	card := m.cards.Cards()[m.cards.Active()]
	status := fmt.Sprintf("%d/%d %s · %s", m.cards.Active()+1, m.cards.Len(), card.Title, m.cards.Orientation())
	if m.changes > 0 {
		status += fmt.Sprintf(" · last change: %s", m.lastSource)
	}

	parts := []string{statusStyle.Render(status)}
	if m.cards.Locked() {
		parts = append(parts, lockedStyle.Render("hover locked"))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	return footerStyle.Render(m.help.View(m.keys))
}

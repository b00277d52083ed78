package stackcards

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stackcards/internal/brightness"
	"github.com/alexisbeaulieu97/stackcards/internal/cards"
)

// CardView is the per-card view model the renderer binds to.
type CardView struct {
	Index     int
	Card      cards.Card
	Active    bool
	Expanded  bool
	ShowLabel bool
	Intensity float64
	Shade     brightness.Shade
	Size      int
}

// CardViews derives the view model for every card from the current state.
func (m Model) CardViews() []CardView {
	n := m.deck.Len()
	if n == 0 {
		return nil
	}

	active := m.ctrl.Active()
	gradient := m.mapper.Gradient(active, n)
	sizes := mainSizes(n, active, m.size(), m.tr)

	views := make([]CardView, n)
	for i := range views {
		card, _ := m.deck.At(i)

		expanded := false
		switch {
		case i == active:
			expanded = m.tr.entered()
		case m.tr.running && i == m.tr.from:
			expanded = !m.tr.entered()
		}

		views[i] = CardView{
			Index:     i,
			Card:      card,
			Active:    i == active,
			Expanded:  expanded,
			ShowLabel: !expanded && (i == active || !m.opts.HideShortTitleWhenCollapsed),
			Intensity: gradient[i],
			Shade:     brightness.Blend(m.opts.CardColor, m.opts.OverlayColor, gradient[i]),
			Size:      sizes[i],
		}
	}
	return views
}

// View renders the cards. An empty deck renders nothing.
func (m Model) View() string {
	views := m.CardViews()
	if len(views) == 0 {
		return ""
	}

	o := m.Orientation()
	s := m.size()

	blocks := make([]string, 0, len(views))
	for _, v := range views {
		blocks = append(blocks, renderCard(v, o, s))
	}

	if o == OrientationVertical {
		return joinVertical(blocks, m.opts.Gap)
	}
	return joinHorizontal(blocks, m.opts.Gap)
}

func renderCard(v CardView, o Orientation, s Size) string {
	w, h := v.Size, s.Height
	if o == OrientationVertical {
		w, h = s.Width, v.Size
	}

	base := lipgloss.NewStyle().Background(lipgloss.Color(v.Shade.Background))
	if v.Shade.Foreground != "" {
		base = base.Foreground(lipgloss.Color(v.Shade.Foreground))
	}
	frame := base.Width(w).Height(h).MaxWidth(w).MaxHeight(h)

	switch {
	case v.Expanded:
		return frame.Render(expandedBody(v.Card, base, w))
	case v.ShowLabel && o == OrientationVertical:
		return frame.PaddingLeft(1).AlignVertical(lipgloss.Center).Render(v.Card.Label())
	case v.ShowLabel:
		return frame.Align(lipgloss.Center).Render("\n" + verticalText(v.Card.Label()))
	default:
		return frame.Render("")
	}
}

func expandedBody(card cards.Card, base lipgloss.Style, w int) string {
	pad := 0
	if w >= 4 {
		pad = 1
	}
	line := base.Width(w).Padding(0, pad)

	parts := []string{line.Bold(true).Render(card.Title)}
	if len(card.Items) > 0 {
		bullets := make([]string, len(card.Items))
		for i, item := range card.Items {
			bullets[i] = "• " + item
		}
		parts = append(parts, line.Render(""), line.Render(strings.Join(bullets, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// verticalText stacks the runes of s one per line for narrow columns.
func verticalText(s string) string {
	runes := []rune(s)
	lines := make([]string, len(runes))
	for i, r := range runes {
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n")
}

func joinHorizontal(blocks []string, gap int) string {
	if gap == 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	}

	spacer := strings.Repeat(" ", gap)
	joined := make([]string, 0, len(blocks)*2-1)
	for i, b := range blocks {
		if i > 0 {
			joined = append(joined, spacer)
		}
		joined = append(joined, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...)
}

func joinVertical(blocks []string, gap int) string {
	if gap == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}

	// A block of n-1 newlines occupies n rows.
	spacer := strings.Repeat("\n", gap-1)
	joined := make([]string, 0, len(blocks)*2-1)
	for i, b := range blocks {
		if i > 0 {
			joined = append(joined, spacer)
		}
		joined = append(joined, b)
	}
	return lipgloss.JoinVertical(lipgloss.Left, joined...)
}

// Package stackcards implements the stacked cards widget: a row or column of
// collapsible panels where exactly one card is expanded and the others are
// dimmed according to their distance from it.
//
// The widget is a Bubble Tea component. Hosts forward messages to Update and
// place View in their own layout:
//
//	deck, err := stackcards.New(cs, stackcards.DefaultOptions())
//	...
//	deck, cmd = deck.Update(msg)
//
// Mouse motion over a card expands it unless wheel input has just locked
// hover; wheel ticks step through the cards; keyboard focus moves freely.
// Every change of the active card is announced with an ActiveChangedMsg.
package stackcards

import (
	"strconv"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/stackcards/internal/brightness"
	"github.com/alexisbeaulieu97/stackcards/internal/cards"
	"github.com/alexisbeaulieu97/stackcards/internal/controller"
	"github.com/alexisbeaulieu97/stackcards/internal/debounce"
	"github.com/alexisbeaulieu97/stackcards/internal/logger"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Model is the stacked cards component.
type Model struct {
	id      int
	deck    cards.Deck
	ctrl    controller.Controller
	mapper  brightness.Mapper
	opts    Options
	tr      transition
	focused bool

	viewportWidth int

	log *logger.Logger
}

// New builds a widget over cs. Invalid options are rejected; an empty card
// sequence is accepted and renders nothing.
func New(cs []cards.Card, opts Options) (Model, error) {
	if err := opts.Validate(); err != nil {
		return Model{}, err
	}
	if len(opts.KeyMap.Next.Keys()) == 0 {
		opts.KeyMap = DefaultKeyMap()
	}

	deck := cards.NewDeck(cs)
	m := Model{
		id:   nextID(),
		deck: deck,
		ctrl: controller.New(deck.Len(), controller.Options{
			WheelEnabled: opts.EnableWheelScroll,
			Cooldown:     opts.Cooldown,
		}),
		mapper:  brightness.NewMapper(opts.Brightness),
		opts:    opts,
		tr:      newTransition(!opts.DisableTransitions),
		focused: true,
		log:     opts.Logger.With("component", "stackcards"),
	}

	if !m.log.Enabled(zerolog.DebugLevel) {
		return m, nil
	}

	m.log.WithFields(map[string]any{
		"cards":       deck.Len(),
		"orientation": opts.Orientation.String(),
		"steps":       m.mapper.StepsFor(deck.Len()),
		"wheel":       opts.EnableWheelScroll,
	}).Debug("stacked cards created")

	if !brightness.Blend(opts.CardColor, opts.OverlayColor, 0).Blended {
		m.log.WithFields(map[string]any{
			"card_color":    opts.CardColor,
			"overlay_color": opts.OverlayColor,
		}).Debug("colours are not hex; intensity will not be blended")
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles pointer, wheel, keyboard and timer messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		before := m.Orientation()
		m.viewportWidth = msg.Width
		if after := m.Orientation(); after != before {
			m.log.With("orientation", after.String()).Debug("orientation resolved")
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKey(msg)

	case debounce.ExpiredMsg:
		if m.ctrl.Expire(msg) {
			m.log.Debug("hover lock released")
		}
		return m, nil

	case frameMsg:
		return m, m.tr.advance(m.id, msg)
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	index, inside := m.cardAt(msg.X, msg.Y)
	if !inside {
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone:
		if index < 0 {
			return m, nil
		}
		change, ok := m.ctrl.Hover(index)
		return m, m.changed(change, ok)

	case msg.Action != tea.MouseActionPress:
		return m, nil

	case msg.Button == tea.MouseButtonLeft:
		if index < 0 {
			return m, nil
		}
		change, ok := m.ctrl.Focus(index)
		return m, m.changed(change, ok)

	case msg.Button == tea.MouseButtonWheelUp, msg.Button == tea.MouseButtonWheelLeft:
		return m, m.wheel(1)

	case msg.Button == tea.MouseButtonWheelDown, msg.Button == tea.MouseButtonWheelRight:
		return m, m.wheel(-1)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.opts.KeyMap
	target := m.ctrl.Active()

	switch {
	case key.Matches(msg, km.Next):
		target++
	case key.Matches(msg, km.Prev):
		target--
	case key.Matches(msg, km.First):
		target = 0
	case key.Matches(msg, km.Last):
		target = m.deck.Len() - 1
	case key.Matches(msg, km.Jump):
		n, ok := jumpIndex(msg.String())
		if !ok {
			return m, nil
		}
		target = n
	default:
		return m, nil
	}

	change, ok := m.ctrl.Focus(target)
	return m, m.changed(change, ok)
}

// jumpIndex reads the trailing digit of a key such as "3" or "alt+3" as a
// 1-based card number. "0" selects the tenth card.
func jumpIndex(keyName string) (int, bool) {
	runes := []rune(keyName)
	if len(runes) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(string(runes[len(runes)-1]))
	if err != nil {
		return 0, false
	}
	if n == 0 {
		n = 10
	}
	return n - 1, true
}

func (m *Model) wheel(deltaSign int) tea.Cmd {
	change, ok, cooldown := m.ctrl.Wheel(deltaSign)
	if cooldown == nil {
		return nil
	}
	m.log.Debug("hover locked by wheel input")
	return tea.Batch(cooldown, m.changed(change, ok))
}

// changed starts the hand-over transition and announces the change. It
// returns nil when nothing changed so repeated requests stay silent.
func (m *Model) changed(change controller.Change, ok bool) tea.Cmd {
	if !ok {
		return nil
	}

	if m.log.Enabled(zerolog.DebugLevel) {
		m.log.WithFields(map[string]any{
			"from":   change.Previous,
			"to":     change.Current,
			"source": change.Source.String(),
		}).Debug("active card changed")
	}

	var frame tea.Cmd
	if change.Previous < m.deck.Len() {
		frame = m.tr.start(m.id, change.Previous)
	} else {
		m.tr.stop()
	}

	notice := ActiveChangedMsg{
		WidgetID: m.id,
		Index:    change.Current,
		Previous: change.Previous,
		Source:   change.Source,
	}
	return tea.Batch(frame, func() tea.Msg { return notice })
}

// SetActive programmatically moves to the clamped index.
func (m *Model) SetActive(index int) tea.Cmd {
	change, ok := m.ctrl.SetActive(index)
	return m.changed(change, ok)
}

// SetCards replaces the card sequence. The active index is re-clamped rather
// than reset, so shrinking the deck does not jump back to the first card.
func (m *Model) SetCards(cs []cards.Card) tea.Cmd {
	m.deck = cards.NewDeck(cs)
	if m.tr.from >= m.deck.Len() {
		m.tr.stop()
	}
	change, ok := m.ctrl.Resize(m.deck.Len())
	m.log.With("cards", m.deck.Len()).Debug("cards replaced")
	return m.changed(change, ok)
}

// Close tears the widget down, cancelling the hover cooldown and any running
// transition. A closed widget ignores further input.
func (m *Model) Close() {
	m.ctrl.Close()
	m.tr.stop()
	m.log.Debug("stacked cards closed")
}

// Focus enables keyboard navigation.
func (m *Model) Focus() {
	m.focused = true
}

// Blur disables keyboard navigation.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether keyboard input is handled.
func (m Model) Focused() bool {
	return m.focused
}

// SetOrigin records where the host draws the widget so mouse coordinates can
// be mapped to cards.
func (m *Model) SetOrigin(x, y int) {
	m.opts.Origin = Origin{X: x, Y: y}
}

// ID identifies the widget in ActiveChangedMsg.
func (m Model) ID() int {
	return m.id
}

// Active returns the active card index.
func (m Model) Active() int {
	return m.ctrl.Active()
}

// Len returns the number of cards.
func (m Model) Len() int {
	return m.deck.Len()
}

// Cards returns a copy of the card sequence.
func (m Model) Cards() []cards.Card {
	return m.deck.All()
}

// Locked reports whether hover input is suppressed by a wheel cooldown.
func (m Model) Locked() bool {
	return m.ctrl.Locked()
}

// Animating reports whether a transition is in progress.
func (m Model) Animating() bool {
	return m.tr.running
}

// KeyMap returns the active key bindings for help rendering.
func (m Model) KeyMap() KeyMap {
	return m.opts.KeyMap
}

// Orientation returns the orientation resolved against the last known
// viewport width.
func (m Model) Orientation() Orientation {
	return m.opts.Orientation.Resolve(m.viewportWidth)
}

func (m Model) size() Size {
	o := m.Orientation()
	s := m.opts.Size.withDefaults(o)
	if o == OrientationVertical && m.viewportWidth > 0 {
		if avail := m.viewportWidth - m.opts.Origin.X; avail > 0 && s.Width > avail {
			s.Width = avail
		}
	}
	return s
}

func (m Model) layout() []extent {
	sizes := mainSizes(m.deck.Len(), m.ctrl.Active(), m.size(), m.tr)
	return extents(sizes, m.opts.Gap)
}

// cardAt maps screen coordinates to a card index. inside reports whether the
// point lies within the widget's bounds; index is -1 over a gap.
func (m Model) cardAt(x, y int) (index int, inside bool) {
	ex := m.layout()
	if len(ex) == 0 {
		return -1, false
	}

	s := m.size()
	mainPos, crossPos, cross := x-m.opts.Origin.X, y-m.opts.Origin.Y, s.Height
	if m.Orientation() == OrientationVertical {
		mainPos, crossPos, cross = y-m.opts.Origin.Y, x-m.opts.Origin.X, s.Width
	}

	if crossPos < 0 || crossPos >= cross || mainPos < 0 || mainPos >= span(ex) {
		return -1, false
	}
	return hitTest(ex, mainPos), true
}

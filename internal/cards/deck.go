// Package cards holds the ordered, caller-supplied card sequence shown by the
// stacked cards widget.
package cards

import "unicode/utf8"

// Card is a single panel. It has no identity beyond its position in a Deck.
type Card struct {
	ShortTitle string
	Title      string
	Items      []string
}

// Label returns the text shown on a collapsed card: the short title, or the
// first rune of the title when no short title was supplied.
func (c Card) Label() string {
	if c.ShortTitle != "" {
		return c.ShortTitle
	}
	if c.Title == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(c.Title)
	return string(r)
}

// Deck is a read-only view over an ordered card sequence.
// The zero value is an empty deck.
type Deck struct {
	cards []Card
}

// NewDeck copies cards into a new Deck so later caller mutations do not leak in.
func NewDeck(cards []Card) Deck {
	owned := make([]Card, len(cards))
	for i, c := range cards {
		c.Items = append([]string(nil), c.Items...)
		owned[i] = c
	}
	return Deck{cards: owned}
}

// Len returns the number of cards.
func (d Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether the deck has no cards.
func (d Deck) Empty() bool {
	return len(d.cards) == 0
}

// At returns the card at index i and whether i was in range.
func (d Deck) At(i int) (Card, bool) {
	if i < 0 || i >= len(d.cards) {
		return Card{}, false
	}
	return d.cards[i], true
}

// All returns a copy of the card sequence.
func (d Deck) All() []Card {
	return append([]Card(nil), d.cards...)
}

package domain

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var ErrBrokenPair = errors.New("identity does not appear exactly twice")

// Layout places cards on screen.
type Layout struct {
	Origin   image.Point // top-left corner of the first card
	CardSize int
	Gap      int
}

// Board is an ordered grid of cards.
type Board struct {
	Cards   []*Card
	Columns int
}

// Columns returns the grid width for a board built from n identities: ceil(sqrt(2n)).
func Columns(n int) int {
	return columnsForDeck(2 * n)
}

func columnsForDeck(size int) int {
	return int(math.Ceil(math.Sqrt(float64(size))))
}

// CenteredLayout returns a layout that centers a deck of the given size inside
// area. Cards shrink below cardSize when the grid would not fit.
func CenteredLayout(area image.Rectangle, deckSize, cardSize, gap int) Layout {
	cols := columnsForDeck(deckSize)
	if cols == 0 {
		return Layout{Origin: area.Min, CardSize: cardSize, Gap: gap}
	}
	rows := (deckSize + cols - 1) / cols
	if fit := (area.Dx() - (cols-1)*gap) / cols; fit < cardSize {
		cardSize = fit
	}
	if fit := (area.Dy() - (rows-1)*gap) / rows; fit < cardSize {
		cardSize = fit
	}
	cardSize = max(cardSize, 1)
	width := cols*cardSize + (cols-1)*gap
	height := rows*cardSize + (rows-1)*gap
	origin := image.Pt(
		area.Min.X+(area.Dx()-width)/2,
		area.Min.Y+(area.Dy()-height)/2,
	)
	return Layout{Origin: origin, CardSize: cardSize, Gap: gap}
}

// NewBoard lays out the deck row-major, all cards face down and disabled.
func NewBoard(deck []string, layout Layout) *Board {
	cols := columnsForDeck(len(deck))
	step := layout.CardSize + layout.Gap
	size := image.Pt(layout.CardSize, layout.CardSize)

	cards := make([]*Card, len(deck))
	for i, identity := range deck {
		min := layout.Origin.Add(image.Pt((i%cols)*step, (i/cols)*step))
		cards[i] = &Card{
			Index:    i,
			Identity: identity,
			Bounds:   image.Rectangle{Min: min, Max: min.Add(size)},
			Disabled: true,
		}
	}
	return &Board{Cards: cards, Columns: cols}
}

// Validate checks that every identity appears exactly twice.
func (b *Board) Validate() error {
	if len(b.Cards) == 0 {
		return ErrNoIdentities
	}
	counts := make(map[string]int, len(b.Cards)/2)
	for _, c := range b.Cards {
		counts[c.Identity]++
	}
	for id, n := range counts {
		if n != 2 {
			return fmt.Errorf("%w: %q appears %d times", ErrBrokenPair, id, n)
		}
	}
	return nil
}

// Pairs returns the number of identities on the board.
func (b *Board) Pairs() int {
	return len(b.Cards) / 2
}

// Card returns the card at index, or nil when out of range.
func (b *Board) Card(index int) *Card {
	if index < 0 || index >= len(b.Cards) {
		return nil
	}
	return b.Cards[index]
}

// CardAt returns the card whose bounds contain pt, or nil.
func (b *Board) CardAt(pt image.Point) *Card {
	for _, c := range b.Cards {
		if pt.In(c.Bounds) {
			return c
		}
	}
	return nil
}

// Unflipped returns the face-down cards in board order.
func (b *Board) Unflipped() []*Card {
	out := make([]*Card, 0, len(b.Cards))
	for _, c := range b.Cards {
		if !c.Flipped {
			out = append(out, c)
		}
	}
	return out
}

// AllFlipped reports whether every card is face up.
func (b *Board) AllFlipped() bool {
	for _, c := range b.Cards {
		if !c.Flipped {
			return false
		}
	}
	return true
}

// SetDisabled enables or disables every card.
func (b *Board) SetDisabled(disabled bool) {
	for _, c := range b.Cards {
		c.Disabled = disabled
	}
}

// RevealIdentity turns every card with the identity face up.
func (b *Board) RevealIdentity(identity string) {
	for _, c := range b.Cards {
		if c.Identity == identity {
			c.Flipped = true
		}
	}
}

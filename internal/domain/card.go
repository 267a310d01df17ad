package domain

import "image"

// Card is a single tile on a memory board.
type Card struct {
	Index    int             // position on the board, row-major
	Identity string          // the animal shown on the face
	Bounds   image.Rectangle // screen area used for drawing and hit-testing
	Flipped  bool
	Disabled bool
}

// Selectable reports whether a player may turn the card face up.
func (c *Card) Selectable() bool {
	return !c.Flipped && !c.Disabled
}

// Matches reports whether two distinct cards share an identity.
func (c *Card) Matches(other *Card) bool {
	return other != nil && c != other && c.Identity == other.Identity
}

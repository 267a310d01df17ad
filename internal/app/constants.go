package app

import (
	"image"
	"time"

	"memorygame/internal/domain"
)

const (
	// DefaultMismatchDelay is how long a missed pair stays face up before it is hidden again.
	DefaultMismatchDelay = 1000 * time.Millisecond
	// DefaultOpponentDelay is how long the computer waits before turning its pair.
	DefaultOpponentDelay = 500 * time.Millisecond
)

// Board placement used when no window-specific layout is supplied.
var (
	DefaultSinglePlayerLayout = domain.Layout{Origin: image.Pt(310, 120), CardSize: 100, Gap: 10}
	DefaultMultiplayerLayouts = [2]domain.Layout{
		{Origin: image.Pt(130, 160), CardSize: 80, Gap: 10},
		{Origin: image.Pt(615, 160), CardSize: 80, Gap: 10},
	}
)

const (
	singlePlayerCardSize = 100
	multiplayerCardSize  = 80
	cardGap              = 10

	// Space reserved above the boards for the banner and scores, and below for the key hint.
	singlePlayerTop = 110
	multiplayerTop  = 150
	footerHeight    = 60
)

// WindowLayouts fits the boards for a deck of deckSize cards into a window:
// one centered board for single-player, one per window half for multiplayer.
func WindowLayouts(width, height, deckSize int) (domain.Layout, [2]domain.Layout) {
	bottom := height - footerHeight
	single := domain.CenteredLayout(image.Rect(0, singlePlayerTop, width, bottom), deckSize, singlePlayerCardSize, cardGap)
	multi := [2]domain.Layout{
		domain.CenteredLayout(image.Rect(0, multiplayerTop, width/2, bottom), deckSize, multiplayerCardSize, cardGap),
		domain.CenteredLayout(image.Rect(width/2, multiplayerTop, width, bottom), deckSize, multiplayerCardSize, cardGap),
	}
	return single, multi
}

// MinPlayableCardSize is the smallest card edge, in pixels, that still shows its picture legibly.
const MinPlayableCardSize = 24

// Cramped reports whether any board layout has cards below MinPlayableCardSize.
func (r Rules) Cramped() bool {
	smallest := r.SinglePlayerLayout.CardSize
	for _, l := range r.MultiplayerLayouts {
		smallest = min(smallest, l.CardSize)
	}
	return smallest < MinPlayableCardSize
}

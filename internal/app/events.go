package app

import "memorygame/internal/domain"

// EventKind identifies events emitted by a session for the presentation layer.
type EventKind string

const (
	EventGameStarted EventKind = "game_started"
	EventCardFlipped EventKind = "card_flipped"
	EventPairMatched EventKind = "pair_matched"
	EventPairMissed  EventKind = "pair_missed"
	EventCardsHidden EventKind = "cards_hidden"
	EventTurnPassed  EventKind = "turn_passed"
	EventGameEnded   EventKind = "game_ended"
)

// Event is a session event with its payload.
type Event struct {
	Kind    EventKind
	Payload any
}

type GameStartedPayload struct {
	SessionID string
	Mode      Mode
	Cards     int
	FirstTurn domain.Side
}

type CardFlippedPayload struct {
	Side     domain.Side
	Index    int
	Identity string
}

type PairMatchedPayload struct {
	Side     domain.Side
	Identity string
	Score    int
}

type PairMissedPayload struct {
	Side   domain.Side
	First  string
	Second string
}

type CardsHiddenPayload struct {
	Side    domain.Side
	Indices [2]int
}

type TurnPassedPayload struct {
	From domain.Side
	To   domain.Side
}

type GameEndedPayload struct {
	Outcome domain.Outcome
	Scores  [2]int
}

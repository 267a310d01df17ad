package app

import (
	"fmt"
	"image"
	"time"

	"memorygame/internal/bot"
	"memorygame/internal/domain"

	"github.com/benbjohnson/clock"
)

// Controller runs the turn state machine of one session. It is driven from a
// single frame loop and is not safe for concurrent use.
type Controller struct {
	sessionID string
	mode      Mode

	// boards[side] is the board that side plays on. In single-player both
	// entries point at the same board.
	boards [2]*domain.Board

	phase   domain.Phase
	turn    domain.Side
	pending []*domain.Card
	scores  [2]int

	repeatOnMatch bool
	opponent      *bot.Agent

	clock         clock.Clock
	mismatchDelay time.Duration
	opponentDelay time.Duration
	hideAt        time.Time
	opponentAt    time.Time
}

func (c *Controller) SessionID() string       { return c.sessionID }
func (c *Controller) Mode() Mode              { return c.mode }
func (c *Controller) Phase() domain.Phase     { return c.phase }
func (c *Controller) Turn() domain.Side       { return c.turn }
func (c *Controller) Scores() [2]int          { return c.scores }
func (c *Controller) Score(s domain.Side) int { return c.scores[s] }
func (c *Controller) Opponent() *bot.Agent    { return c.opponent }

// Board returns the board the side plays on.
func (c *Controller) Board(s domain.Side) *domain.Board {
	return c.boards[s]
}

// Boards returns each distinct board once.
func (c *Controller) Boards() []*domain.Board {
	if c.shared() {
		return []*domain.Board{c.boards[0]}
	}
	return []*domain.Board{c.boards[0], c.boards[1]}
}

// Pending returns the cards turned this turn that are not yet resolved.
func (c *Controller) Pending() []*domain.Card {
	return append([]*domain.Card(nil), c.pending...)
}

// Outcome reports the result once the game is over.
func (c *Controller) Outcome() (domain.Outcome, bool) {
	if c.phase != domain.PhaseGameOver {
		return "", false
	}
	return domain.DecideOutcome(c.scores[domain.SidePlayer], c.scores[domain.SideOpponent]), true
}

// Click selects the card under pt for the side to move.
func (c *Controller) Click(pt image.Point) ([]Event, error) {
	if c.phase != domain.PhaseSelecting {
		return nil, ErrNotSelecting
	}
	if card := c.boards[c.turn].CardAt(pt); card != nil {
		return c.Select(c.turn, card.Index)
	}
	if !c.shared() && c.boards[c.turn.Other()].CardAt(pt) != nil {
		return nil, ErrNotYourTurn
	}
	return nil, ErrNoCardAtPoint
}

// Select turns the card at index face up on behalf of a human side.
func (c *Controller) Select(side domain.Side, index int) ([]Event, error) {
	if c.phase != domain.PhaseSelecting {
		return nil, ErrNotSelecting
	}
	if side != c.turn || c.isBot(side) {
		return nil, ErrNotYourTurn
	}
	card := c.boards[side].Card(index)
	if card == nil || !card.Selectable() {
		return nil, fmt.Errorf("%w: index %d", ErrCardUnavailable, index)
	}
	return c.flip(card), nil
}

// Update advances time-driven transitions: hiding a missed pair once its delay
// has passed and letting the computer play when it is its turn.
func (c *Controller) Update() ([]Event, error) {
	now := c.clock.Now()

	switch c.phase {
	case domain.PhaseResolving:
		if now.Before(c.hideAt) {
			return nil, nil
		}
		return c.hidePending(), nil

	case domain.PhaseSelecting:
		if !c.isBot(c.turn) || now.Before(c.opponentAt) {
			return nil, nil
		}
		move, err := c.opponent.Play(c.boards[c.turn])
		if err != nil {
			return nil, fmt.Errorf("opponent move: %w", err)
		}
		events := c.flip(c.boards[c.turn].Cards[move.First])
		events = append(events, c.flip(c.boards[c.turn].Cards[move.Second])...)
		return events, nil
	}
	return nil, nil
}

func (c *Controller) start() []Event {
	c.syncDisabled()
	return []Event{{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			SessionID: c.sessionID,
			Mode:      c.mode,
			Cards:     len(c.boards[0].Cards),
			FirstTurn: c.turn,
		},
	}}
}

func (c *Controller) flip(card *domain.Card) []Event {
	card.Flipped = true
	c.pending = append(c.pending, card)
	events := []Event{{
		Kind:    EventCardFlipped,
		Payload: CardFlippedPayload{Side: c.turn, Index: card.Index, Identity: card.Identity},
	}}
	if len(c.pending) == 2 {
		events = append(events, c.resolve()...)
	}
	return events
}

func (c *Controller) resolve() []Event {
	c.phase = domain.PhaseResolving
	c.syncDisabled()
	first, second := c.pending[0], c.pending[1]

	if !domain.IsMatch(first, second) {
		c.hideAt = c.clock.Now().Add(c.mismatchDelay)
		return []Event{{
			Kind:    EventPairMissed,
			Payload: PairMissedPayload{Side: c.turn, First: first.Identity, Second: second.Identity},
		}}
	}

	c.scores[c.turn]++
	if !c.shared() {
		c.boards[c.turn.Other()].RevealIdentity(first.Identity)
	}
	c.pending = nil
	events := []Event{{
		Kind:    EventPairMatched,
		Payload: PairMatchedPayload{Side: c.turn, Identity: first.Identity, Score: c.scores[c.turn]},
	}}

	if c.allFlipped() {
		return append(events, c.finish())
	}
	next := c.turn
	if !c.repeatOnMatch {
		next = c.turn.Other()
	}
	return append(events, c.beginTurn(next)...)
}

func (c *Controller) hidePending() []Event {
	ev := CardsHiddenPayload{Side: c.turn}
	for i, card := range c.pending {
		card.Flipped = false
		ev.Indices[i] = card.Index
	}
	c.pending = nil
	events := []Event{{Kind: EventCardsHidden, Payload: ev}}
	return append(events, c.beginTurn(c.turn.Other())...)
}

func (c *Controller) beginTurn(side domain.Side) []Event {
	prev := c.turn
	c.turn = side
	c.phase = domain.PhaseSelecting
	c.pending = nil
	if c.isBot(side) {
		c.opponentAt = c.clock.Now().Add(c.opponentDelay)
	}
	c.syncDisabled()

	if prev == side {
		return nil
	}
	return []Event{{Kind: EventTurnPassed, Payload: TurnPassedPayload{From: prev, To: side}}}
}

func (c *Controller) finish() Event {
	c.phase = domain.PhaseGameOver
	c.syncDisabled()
	outcome, _ := c.Outcome()
	return Event{Kind: EventGameEnded, Payload: GameEndedPayload{Outcome: outcome, Scores: c.scores}}
}

// syncDisabled enables only the cards the side to move may click.
func (c *Controller) syncDisabled() {
	if c.phase != domain.PhaseSelecting {
		for _, b := range c.Boards() {
			b.SetDisabled(true)
		}
		return
	}
	if c.shared() {
		c.boards[0].SetDisabled(c.isBot(c.turn))
		return
	}
	c.boards[c.turn].SetDisabled(false)
	c.boards[c.turn.Other()].SetDisabled(true)
}

func (c *Controller) allFlipped() bool {
	for _, b := range c.Boards() {
		if !b.AllFlipped() {
			return false
		}
	}
	return true
}

func (c *Controller) isBot(side domain.Side) bool {
	return c.opponent != nil && side == domain.SideOpponent
}

func (c *Controller) shared() bool {
	return c.boards[0] == c.boards[1]
}

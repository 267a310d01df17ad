package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"memorygame/internal/bot"
	"memorygame/internal/domain"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// Mode is the kind of session being played.
type Mode string

const (
	ModeSinglePlayer Mode = "singleplayer"
	ModeMultiplayer  Mode = "multiplayer"
)

var (
	ErrNotSelecting     = errors.New("session is not accepting selections")
	ErrNotYourTurn      = errors.New("not this side's turn")
	ErrCardUnavailable  = errors.New("card cannot be selected")
	ErrNoCardAtPoint    = errors.New("no card at point")
	ErrOpponentRequired = errors.New("single-player session needs an opponent")
)

// Rules holds the tunable session policy.
type Rules struct {
	Deal          domain.DealMode
	MismatchDelay time.Duration
	OpponentDelay time.Duration

	// A side that finds a pair moves again when its mode's flag is set.
	SinglePlayerRepeatOnMatch bool
	MultiplayerRepeatOnMatch  bool

	SinglePlayerLayout domain.Layout
	MultiplayerLayouts [2]domain.Layout
}

// DefaultRules returns the stock game rules.
func DefaultRules() Rules {
	return Rules{
		Deal:                      domain.DealModePermutations,
		MismatchDelay:             DefaultMismatchDelay,
		OpponentDelay:             DefaultOpponentDelay,
		SinglePlayerRepeatOnMatch: true,
		MultiplayerRepeatOnMatch:  false,
		SinglePlayerLayout:        DefaultSinglePlayerLayout,
		MultiplayerLayouts:        DefaultMultiplayerLayouts,
	}
}

// Service starts memory game sessions.
type Service struct {
	rng   *rand.Rand
	clock clock.Clock
	rules Rules
}

// NewService constructs a Service with provided rng and clock or time-based defaults.
func NewService(rng *rand.Rand, clk clock.Clock, rules Rules) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Service{rng: rng, clock: clk, rules: rules}
}

// Rules returns the policy sessions are started with.
func (s *Service) Rules() Rules {
	return s.rules
}

// StartSinglePlayer deals one board shared by the player and the computer opponent.
func (s *Service) StartSinglePlayer(identities []string, opponent *bot.Agent) (*Controller, []Event, error) {
	if opponent == nil {
		return nil, nil, ErrOpponentRequired
	}
	deck, err := domain.Deal(s.rules.Deal, identities, s.rng)
	if err != nil {
		return nil, nil, fmt.Errorf("deal single-player board: %w", err)
	}

	board := domain.NewBoard(deck, s.rules.SinglePlayerLayout)
	c := s.newController(ModeSinglePlayer, [2]*domain.Board{board, board}, s.rules.SinglePlayerRepeatOnMatch)
	c.opponent = opponent
	return c, c.start(), nil
}

// StartMultiplayer deals one deck and lays it out twice, one board per player.
func (s *Service) StartMultiplayer(identities []string) (*Controller, []Event, error) {
	deck, err := domain.Deal(s.rules.Deal, identities, s.rng)
	if err != nil {
		return nil, nil, fmt.Errorf("deal multiplayer boards: %w", err)
	}

	boards := [2]*domain.Board{
		domain.NewBoard(deck, s.rules.MultiplayerLayouts[domain.SidePlayer1]),
		domain.NewBoard(deck, s.rules.MultiplayerLayouts[domain.SidePlayer2]),
	}
	c := s.newController(ModeMultiplayer, boards, s.rules.MultiplayerRepeatOnMatch)
	return c, c.start(), nil
}

func (s *Service) newController(mode Mode, boards [2]*domain.Board, repeat bool) *Controller {
	return &Controller{
		sessionID:     uuid.NewString(),
		mode:          mode,
		boards:        boards,
		phase:         domain.PhaseSelecting,
		turn:          domain.SidePlayer,
		repeatOnMatch: repeat,
		clock:         s.clock,
		mismatchDelay: s.rules.MismatchDelay,
		opponentDelay: s.rules.OpponentDelay,
	}
}

package app

import (
	"math/rand"
	"testing"

	"memorygame/internal/bot"
	"memorygame/internal/domain"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

// pairBrain always turns the first face-down pair it can find.
type pairBrain struct{}

func (pairBrain) CalculateMove(b *domain.Board) (bot.Move, error) {
	down := b.Unflipped()
	for i, c := range down {
		for _, o := range down[i+1:] {
			if c.Identity == o.Identity {
				return bot.Move{First: c.Index, Second: o.Index}, nil
			}
		}
	}
	return bot.Move{}, bot.ErrNoMove
}

// missBrain always turns two face-down cards that do not match.
type missBrain struct{}

func (missBrain) CalculateMove(b *domain.Board) (bot.Move, error) {
	first, second, ok := mismatch(b)
	if !ok {
		return pairBrain{}.CalculateMove(b)
	}
	return bot.Move{First: first, Second: second}, nil
}

func newTestService(seed int64) (*Service, *clock.Mock) {
	mock := clock.NewMock()
	return NewService(rand.New(rand.NewSource(seed)), mock, DefaultRules()), mock
}

func randomAgent(t *testing.T, seed int64) *bot.Agent {
	t.Helper()
	agent, err := bot.NewAgent("", bot.BotLevelRandom, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return agent
}

func indicesOf(b *domain.Board, identity string) []int {
	var out []int
	for _, c := range b.Cards {
		if c.Identity == identity {
			out = append(out, c.Index)
		}
	}
	return out
}

func mismatch(b *domain.Board) (int, int, bool) {
	down := b.Unflipped()
	for i, c := range down {
		for _, o := range down[i+1:] {
			if c.Identity != o.Identity {
				return c.Index, o.Index, true
			}
		}
	}
	return 0, 0, false
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func selectPair(t *testing.T, c *Controller, side domain.Side, first, second int) []Event {
	t.Helper()
	evs, err := c.Select(side, first)
	require.NoError(t, err)
	more, err := c.Select(side, second)
	require.NoError(t, err)
	return append(evs, more...)
}

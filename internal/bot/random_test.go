package bot

import (
	"math/rand"
	"testing"

	"memorygame/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(ids ...string) *domain.Board {
	return domain.NewBoard(ids, domain.Layout{CardSize: 10})
}

func TestRandomBotPicksDistinctFaceDownCards(t *testing.T) {
	board := newBoard("cat", "dog", "fox", "cat", "dog", "fox")
	board.RevealIdentity("dog")

	bot := NewRandomBot(rand.New(rand.NewSource(42)))
	for i := 0; i < 200; i++ {
		move, err := bot.CalculateMove(board)
		require.NoError(t, err)
		assert.NotEqual(t, move.First, move.Second)
		assert.False(t, board.Cards[move.First].Flipped)
		assert.False(t, board.Cards[move.Second].Flipped)
	}
}

func TestRandomBotPairsAreUniform(t *testing.T) {
	board := newBoard("cat", "dog", "fox", "cat", "dog", "fox")
	bot := NewRandomBot(rand.New(rand.NewSource(5)))

	const draws = 15000
	counts := make(map[[2]int]int)
	for i := 0; i < draws; i++ {
		move, err := bot.CalculateMove(board)
		require.NoError(t, err)
		pair := [2]int{min(move.First, move.Second), max(move.First, move.Second)}
		counts[pair]++
	}

	// 6 cards give 15 unordered pairs
	require.Len(t, counts, 15)
	expected := float64(draws) / 15
	var chi2 float64
	for pair, n := range counts {
		d := float64(n) - expected
		chi2 += d * d / expected
		assert.Greater(t, n, 0, "pair %v", pair)
	}
	// 99.9th percentile of chi-square with 14 degrees of freedom
	assert.Less(t, chi2, 36.12)
}

func TestRandomBotLastTwoIsDeterministic(t *testing.T) {
	board := newBoard("cat", "dog", "cat", "dog")
	board.RevealIdentity("cat")

	move, err := NewRandomBot(nil).CalculateMove(board)
	require.NoError(t, err)
	assert.Equal(t, Move{First: 1, Second: 3}, move)
}

func TestRandomBotNoMove(t *testing.T) {
	board := newBoard("cat", "cat")
	board.RevealIdentity("cat")

	_, err := NewRandomBot(nil).CalculateMove(board)
	assert.ErrorIs(t, err, ErrNoMove)
}

func TestNewBrain(t *testing.T) {
	brain, err := NewBrain(BotLevelRandom, nil)
	require.NoError(t, err)
	assert.IsType(t, &RandomBot{}, brain)

	_, err = NewBrain("god", nil)
	assert.Error(t, err)
}

type stubBrain struct{ move Move }

func (s stubBrain) CalculateMove(*domain.Board) (Move, error) { return s.move, nil }

func TestAgentRejectsInvalidMoves(t *testing.T) {
	board := newBoard("cat", "dog", "cat", "dog")
	board.Cards[0].Flipped = true

	tests := []struct {
		name string
		move Move
	}{
		{name: "same card twice", move: Move{First: 1, Second: 1}},
		{name: "face-up card", move: Move{First: 0, Second: 1}},
		{name: "out of range", move: Move{First: 1, Second: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := &Agent{Name: "stub", Strategy: stubBrain{move: tt.move}}
			_, err := agent.Play(board)
			assert.Error(t, err)
		})
	}

	agent, err := NewAgent("", BotLevelRandom, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, DefaultName, agent.Name)
	move, err := agent.Play(board)
	require.NoError(t, err)
	assert.NotEqual(t, 0, move.First)
	assert.NotEqual(t, 0, move.Second)
}

package bot

import (
	"fmt"
	"math/rand"

	"memorygame/internal/domain"
)

// DefaultName is shown for the computer opponent.
const DefaultName = "Computer"

// Agent represents an autonomous opponent.
type Agent struct {
	Name     string
	Strategy Brain
}

// NewAgent builds an agent playing at the given level.
func NewAgent(name string, level BotLevel, rng *rand.Rand) (*Agent, error) {
	brain, err := NewBrain(level, rng)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = DefaultName
	}
	return &Agent{Name: name, Strategy: brain}, nil
}

// Play asks the agent for its next pair and checks it against the board.
func (a *Agent) Play(board *domain.Board) (Move, error) {
	move, err := a.Strategy.CalculateMove(board)
	if err != nil {
		return Move{}, err
	}
	if move.First == move.Second {
		return Move{}, fmt.Errorf("%s chose card %d twice", a.Name, move.First)
	}
	for _, idx := range []int{move.First, move.Second} {
		c := board.Card(idx)
		if c == nil || c.Flipped {
			return Move{}, fmt.Errorf("%s chose unavailable card %d", a.Name, idx)
		}
	}
	return move, nil
}

package bot

import (
	"fmt"
	"math/rand"
)

// BotLevel names a strategy.
type BotLevel string

const (
	// BotLevelRandom guesses uniformly among the face-down cards.
	BotLevelRandom BotLevel = "random"
)

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel, rng *rand.Rand) (Brain, error) {
	switch level {
	case BotLevelRandom, "":
		return NewRandomBot(rng), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
}

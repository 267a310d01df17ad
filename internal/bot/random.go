package bot

import (
	"math/rand"
	"time"

	"memorygame/internal/domain"
)

// RandomBot picks two face-down cards at random.
type RandomBot struct {
	rng *rand.Rand
}

// NewRandomBot constructs a RandomBot with the provided rng or a time-seeded default.
func NewRandomBot(rng *rand.Rand) *RandomBot {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomBot{rng: rng}
}

func (b *RandomBot) CalculateMove(board *domain.Board) (Move, error) {
	candidates := board.Unflipped()
	n := len(candidates)
	if n < 2 {
		return Move{}, ErrNoMove
	}
	if n == 2 {
		return Move{First: candidates[0].Index, Second: candidates[1].Index}, nil
	}

	i := b.rng.Intn(n)
	j := b.rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return Move{First: candidates[i].Index, Second: candidates[j].Index}, nil
}

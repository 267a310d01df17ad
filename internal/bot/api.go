package bot

import (
	"errors"

	"memorygame/internal/domain"
)

var ErrNoMove = errors.New("fewer than two face-down cards")

// Move is the pair of board indices chosen by the AI.
type Move struct {
	First  int
	Second int
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(board *domain.Board) (Move, error)
}

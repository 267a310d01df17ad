package domain

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrNoIdentities      = errors.New("no card identities")
	ErrDuplicateIdentity = errors.New("duplicate card identity")
	ErrUnknownDealMode   = errors.New("unknown deal mode")
)

// DealMode selects how the doubled identity set is ordered on the board.
type DealMode string

const (
	// DealModePermutations concatenates two independent permutations of the identities.
	DealModePermutations DealMode = "permutations"
	// DealModeShuffle shuffles the whole doubled deck uniformly.
	DealModeShuffle DealMode = "shuffle"
)

// Deal returns a deck holding every identity exactly twice, ordered according to mode.
func Deal(mode DealMode, identities []string, rng *rand.Rand) ([]string, error) {
	if err := checkIdentities(identities); err != nil {
		return nil, err
	}

	switch mode {
	case DealModePermutations, "":
		deck := make([]string, 0, len(identities)*2)
		deck = append(deck, permute(identities, rng)...)
		deck = append(deck, permute(identities, rng)...)
		return deck, nil
	case DealModeShuffle:
		deck := make([]string, 0, len(identities)*2)
		deck = append(deck, identities...)
		deck = append(deck, identities...)
		ShuffleDeck(deck, rng)
		return deck, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDealMode, mode)
	}
}

// ShuffleDeck shuffles the deck in place.
func ShuffleDeck(deck []string, rng *rand.Rand) {
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}

func permute(identities []string, rng *rand.Rand) []string {
	out := make([]string, len(identities))
	for i, j := range rng.Perm(len(identities)) {
		out[i] = identities[j]
	}
	return out
}

func checkIdentities(identities []string) error {
	if len(identities) == 0 {
		return ErrNoIdentities
	}
	seen := make(map[string]bool, len(identities))
	for _, id := range identities {
		if seen[id] {
			return fmt.Errorf("%w: %q", ErrDuplicateIdentity, id)
		}
		seen[id] = true
	}
	return nil
}

package domain

// Outcome is the result of a finished session.
type Outcome string

const (
	OutcomeFirstWins  Outcome = "first_wins"
	OutcomeSecondWins Outcome = "second_wins"
	OutcomeTie        Outcome = "tie"
)

// DecideOutcome compares the two running scores. Only a strictly higher score wins.
func DecideOutcome(first, second int) Outcome {
	switch {
	case first > second:
		return OutcomeFirstWins
	case second > first:
		return OutcomeSecondWins
	default:
		return OutcomeTie
	}
}

// Winner returns the winning side, or false on a tie.
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case OutcomeFirstWins:
		return SidePlayer, true
	case OutcomeSecondWins:
		return SideOpponent, true
	default:
		return 0, false
	}
}

// IsMatch reports whether the two selected cards form a pair.
func IsMatch(a, b *Card) bool {
	return a != nil && a.Matches(b)
}

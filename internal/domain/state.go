package domain

// Phase represents the lifecycle stage of a memory game session.
type Phase string

const (
	// PhaseSelecting is the state where the side to move turns cards face up.
	PhaseSelecting Phase = "selecting"
	// PhaseResolving is the state where two face-up cards are being compared.
	PhaseResolving Phase = "resolving"
	// PhaseGameOver is the state after every card has been matched.
	PhaseGameOver Phase = "game_over"
)

// Side identifies one of the two participants of a session.
type Side int

const (
	// SidePlayer is the human in single-player mode.
	SidePlayer Side = iota
	// SideOpponent is the computer in single-player mode.
	SideOpponent
)

// Multiplayer names for the same two sides.
const (
	SidePlayer1 = SidePlayer
	SidePlayer2 = SideOpponent
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}

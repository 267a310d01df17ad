package app

import (
	"fmt"
	"strings"

	"memorygame/internal/bot"
	"memorygame/internal/domain"
)

// Banner selects the picture shown on the results screen.
type Banner string

const (
	BannerWin  Banner = "win"
	BannerLose Banner = "lose"
	BannerTie  Banner = "tie"
)

// Result is the summary of a finished session.
type Result struct {
	SessionID    string
	Mode         Mode
	Outcome      domain.Outcome
	Scores       [2]int
	OpponentName string
}

// ScoreLine is one score row on the results screen.
type ScoreLine struct {
	Side domain.Side
	Text string
}

// NewResult summarizes a finished session. It returns false while the game is still running.
func NewResult(c *Controller) (Result, bool) {
	outcome, ok := c.Outcome()
	if !ok {
		return Result{}, false
	}
	r := Result{
		SessionID: c.SessionID(),
		Mode:      c.Mode(),
		Outcome:   outcome,
		Scores:    c.Scores(),
	}
	if c.Opponent() != nil {
		r.OpponentName = c.Opponent().Name
	}
	return r, true
}

// Banner picks win, lose or tie artwork. Only losing to the computer shows the lose picture.
func (r Result) Banner() Banner {
	winner, ok := r.Outcome.Winner()
	switch {
	case !ok:
		return BannerTie
	case r.Mode == ModeSinglePlayer && winner == domain.SideOpponent:
		return BannerLose
	default:
		return BannerWin
	}
}

// Headline is the large text at the top of the results screen.
func (r Result) Headline() string {
	winner, ok := r.Outcome.Winner()
	if !ok {
		return "TIE!"
	}
	if r.Mode == ModeMultiplayer {
		return fmt.Sprintf("PLAYER %d WON!", int(winner)+1)
	}
	if winner == domain.SidePlayer {
		return "YOU WON!"
	}
	return fmt.Sprintf("THE %s WON!", strings.ToUpper(r.opponentName()))
}

// ScoreLines returns the score rows in display order.
func (r Result) ScoreLines() []ScoreLine {
	if r.Mode == ModeMultiplayer {
		return []ScoreLine{
			{Side: domain.SidePlayer1, Text: fmt.Sprintf("Player1 Score: %d", r.Scores[domain.SidePlayer1])},
			{Side: domain.SidePlayer2, Text: fmt.Sprintf("Player2 Score: %d", r.Scores[domain.SidePlayer2])},
		}
	}
	return []ScoreLine{
		{Side: domain.SideOpponent, Text: fmt.Sprintf("%s Score: %d", r.opponentName(), r.Scores[domain.SideOpponent])},
		{Side: domain.SidePlayer, Text: fmt.Sprintf("Player Score: %d", r.Scores[domain.SidePlayer])},
	}
}

func (r Result) opponentName() string {
	if r.OpponentName == "" {
		return bot.DefaultName
	}
	return r.OpponentName
}

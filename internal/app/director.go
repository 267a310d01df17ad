package app

import (
	"fmt"
	"image"
	"log/slog"

	"memorygame/internal/bot"
	"memorygame/internal/domain"
	"memorygame/internal/ports"
)

// DirectorConfig collects what a Director needs to run sessions.
type DirectorConfig struct {
	Service    *Service
	Opponent   *bot.Agent
	Identities []string
	Sound      ports.SoundPort
	Logger     *slog.Logger
}

// Director owns the application flow and the running session. A shell feeds
// it input each frame and renders whatever scene and session it holds.
type Director struct {
	service    *Service
	opponent   *bot.Agent
	identities []string
	sound      ports.SoundPort
	logger     *slog.Logger

	flow    *Flow
	session *Controller
	result  Result
}

// NewDirector starts at the menu. onEnter runs after every scene change, once
// the session of a left mode has been discarded.
func NewDirector(cfg DirectorConfig, onEnter func(from, to Scene)) *Director {
	d := &Director{
		service:    cfg.Service,
		opponent:   cfg.Opponent,
		identities: cfg.Identities,
		sound:      cfg.Sound,
		logger:     cfg.Logger,
	}
	if d.sound == nil {
		d.sound = ports.NopSound{}
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}

	d.flow = NewFlow(func(from, to Scene) {
		if to == SceneMenu || to == SceneVictory {
			d.session = nil
		}
		d.logger.Debug("scene changed", "from", from, "to", to)
		if onEnter != nil {
			onEnter(from, to)
		}
	})
	return d
}

func (d *Director) Scene() Scene         { return d.flow.Scene() }
func (d *Director) Session() *Controller { return d.session }
func (d *Director) Result() Result       { return d.result }

// Start begins a session in mode and moves the flow into its scene.
func (d *Director) Start(mode Mode) error {
	var (
		session *Controller
		events  []Event
		err     error
		flowEv  string
	)
	switch mode {
	case ModeSinglePlayer:
		session, events, err = d.service.StartSinglePlayer(d.identities, d.opponent)
		flowEv = FlowStartSingle
	case ModeMultiplayer:
		session, events, err = d.service.StartMultiplayer(d.identities)
		flowEv = FlowStartMulti
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		return fmt.Errorf("failed to start %s session: %w", mode, err)
	}

	if err := d.flow.Fire(flowEv); err != nil {
		return err
	}
	d.session = session
	d.handleEvents(events)
	return nil
}

// Click forwards a pointer press to the running session. Rejected clicks are
// logged and otherwise ignored.
func (d *Director) Click(pt image.Point) {
	if d.session == nil {
		return
	}
	events, err := d.session.Click(pt)
	if err != nil {
		d.logger.Debug("click ignored", "session_id", d.session.SessionID(), "err", err)
	}
	d.handleEvents(events)
}

// Update advances the running session and shows the result once it is over.
func (d *Director) Update() error {
	s := d.session
	if s == nil {
		return nil
	}
	events, err := s.Update()
	if err != nil {
		return fmt.Errorf("session %s: %w", s.SessionID(), err)
	}
	d.handleEvents(events)

	if s.Phase() != domain.PhaseGameOver {
		return nil
	}
	result, ok := NewResult(s)
	if !ok {
		return nil
	}
	d.result = result
	return d.flow.Fire(FlowFinish)
}

// Quit abandons the running session and returns to the menu.
func (d *Director) Quit() error {
	if !d.flow.Can(FlowQuit) {
		return nil
	}
	d.logger.Info("session abandoned", "session_id", d.session.SessionID())
	return d.flow.Fire(FlowQuit)
}

// Back leaves the results screen for the menu.
func (d *Director) Back() error {
	if !d.flow.Can(FlowBack) {
		return nil
	}
	return d.flow.Fire(FlowBack)
}

func (d *Director) handleEvents(events []Event) {
	if len(events) == 0 {
		return
	}
	logger := d.logger.With(slog.String("session_id", d.session.SessionID()))

	for _, ev := range events {
		switch ev.Kind {
		case EventGameStarted:
			if p, ok := ev.Payload.(GameStartedPayload); ok {
				logger.Info("session started", "mode", p.Mode, "cards", p.Cards)
			}
		case EventCardFlipped:
			if p, ok := ev.Payload.(CardFlippedPayload); ok {
				logger.Debug("card flipped", "side", p.Side, "index", p.Index, "identity", p.Identity)
			}
		case EventPairMatched:
			d.sound.PlayMatch()
			if p, ok := ev.Payload.(PairMatchedPayload); ok {
				logger.Debug("pair matched", "side", p.Side, "identity", p.Identity, "score", p.Score)
			}
		case EventPairMissed:
			if p, ok := ev.Payload.(PairMissedPayload); ok {
				logger.Debug("pair missed", "side", p.Side, "first", p.First, "second", p.Second)
			}
		case EventCardsHidden:
			if p, ok := ev.Payload.(CardsHiddenPayload); ok {
				logger.Debug("cards hidden", "side", p.Side, "indices", p.Indices)
			}
		case EventTurnPassed:
			if p, ok := ev.Payload.(TurnPassedPayload); ok {
				logger.Debug("turn passed", "from", p.From, "to", p.To)
			}
		case EventGameEnded:
			if p, ok := ev.Payload.(GameEndedPayload); ok {
				logger.Info("session ended", "outcome", p.Outcome, "scores", p.Scores)
			}
		default:
			logger.Warn("unhandled session event", "kind", ev.Kind)
		}
	}
}

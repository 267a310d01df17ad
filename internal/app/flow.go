package app

import (
	"context"

	"github.com/looplab/fsm"
)

// Scene is a top-level screen of the application.
type Scene string

const (
	SceneMenu         Scene = "menu"
	SceneSinglePlayer Scene = "singleplayer"
	SceneMultiplayer  Scene = "multiplayer"
	SceneVictory      Scene = "victory"
)

// Flow events.
const (
	FlowStartSingle = "start_single"
	FlowStartMulti  = "start_multi"
	FlowFinish      = "finish"
	FlowQuit        = "quit"
	FlowBack        = "back"
)

// Flow is the application state machine. Screens never call each other; they
// fire an event and the dispatcher swaps the active screen on the transition.
type Flow struct {
	machine *fsm.FSM
}

// NewFlow starts at the menu. onEnter runs after every transition.
func NewFlow(onEnter func(from, to Scene)) *Flow {
	callbacks := fsm.Callbacks{}
	if onEnter != nil {
		callbacks["enter_state"] = func(_ context.Context, e *fsm.Event) {
			onEnter(Scene(e.Src), Scene(e.Dst))
		}
	}

	machine := fsm.NewFSM(
		string(SceneMenu),
		fsm.Events{
			{Name: FlowStartSingle, Src: []string{string(SceneMenu)}, Dst: string(SceneSinglePlayer)},
			{Name: FlowStartMulti, Src: []string{string(SceneMenu)}, Dst: string(SceneMultiplayer)},
			{Name: FlowFinish, Src: []string{string(SceneSinglePlayer), string(SceneMultiplayer)}, Dst: string(SceneVictory)},
			{Name: FlowQuit, Src: []string{string(SceneSinglePlayer), string(SceneMultiplayer)}, Dst: string(SceneMenu)},
			{Name: FlowBack, Src: []string{string(SceneVictory)}, Dst: string(SceneMenu)},
		},
		callbacks,
	)
	return &Flow{machine: machine}
}

// Scene returns the active screen.
func (f *Flow) Scene() Scene {
	return Scene(f.machine.Current())
}

// Fire triggers a transition.
func (f *Flow) Fire(event string) error {
	return f.machine.Event(context.Background(), event)
}

// Can reports whether event is allowed from the active screen.
func (f *Flow) Can(event string) bool {
	return f.machine.Can(event)
}

package systems

import (
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/pixeldojo/shadowboxer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates syncs the per-state tag components after the state machine
// has run, so queries can filter on state without reading StateData.
func UpdateStates(ecs *ecs.ECS) {
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		updateFighterStateTags(e, state)
	})
}

func updateFighterStateTags(e *donburi.Entry, state *components.StateData) {
	if state.CurrentState == state.PreviousState {
		return
	}

	removeAllStateTags(e)

	switch state.CurrentState {
	case cfg.Idle:
		donburi.Add(e, components.Idle, &components.IdleState{})
	case cfg.Punch:
		donburi.Add(e, components.Punching, &components.PunchingState{})
	case cfg.Kick:
		donburi.Add(e, components.Kicking, &components.KickingState{})
	case cfg.Forward:
		donburi.Add(e, components.WalkingForward, &components.WalkingForwardState{})
	case cfg.Backward:
		donburi.Add(e, components.WalkingBackward, &components.WalkingBackwardState{})
	case cfg.Block:
		donburi.Add(e, components.Blocking, &components.BlockingState{})
	}

	state.PreviousState = state.CurrentState
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.PunchingState](e, components.Punching)
	donburi.Remove[components.KickingState](e, components.Kicking)
	donburi.Remove[components.WalkingForwardState](e, components.WalkingForward)
	donburi.Remove[components.WalkingBackwardState](e, components.WalkingBackward)
	donburi.Remove[components.BlockingState](e, components.Blocking)
}

package systems

import (
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/pixeldojo/shadowboxer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighter drives the fighter state machine. It consumes queued actions
// while the current state is interruptible, sustains hold-driven states from
// the raw pressed flags, and applies walk movement.
// Must run AFTER UpdateActions in the system order.
func UpdateFighter(ecs *ecs.ECS) {
	entry, ok := tags.Fighter.First(ecs.World)
	if !ok {
		return
	}

	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	updateSingleFighter(ecs, entry, input)
}

func updateSingleFighter(e *ecs.ECS, entry *donburi.Entry, input *components.InputData) {
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)
	queue := components.ActionQueue.Get(entry)

	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update()
	}
	state.StateTimer++

	next := nextFighterState(state.CurrentState, anim, queue, input)
	if next != state.CurrentState {
		enterState(e, entry, state, anim, next)
	}

	applyMovement(entry, state, input)
}

// nextFighterState decides the state for this tick. One-shot attacks are
// never interrupted; everything else yields to the queue first, then to the
// held keys.
func nextFighterState(current cfg.StateID, anim *components.AnimationData, queue *components.ActionQueueData, input *components.InputData) cfg.StateID {
	if isOneShot(current) {
		if anim.CurrentAnimation == nil || anim.CurrentAnimation.Completed() {
			return consumeQueueOrHeld(current, queue, input)
		}
		return current
	}

	if queue.Len() > 0 {
		return consumeQueueOrHeld(current, queue, input)
	}

	// Hold-driven states fall back when their key is released.
	switch current {
	case cfg.Block:
		if !input.Action(cfg.ActionBlock).Pressed {
			return heldMovementOrIdle(input)
		}
	case cfg.Forward:
		if !input.Action(cfg.ActionForward).Pressed {
			return heldMovementOrIdle(input)
		}
	case cfg.Backward:
		if !input.Action(cfg.ActionBackward).Pressed {
			return heldMovementOrIdle(input)
		}
	}

	return current
}

// consumeQueueOrHeld pops the next queued action; with nothing queued it
// falls back to whatever direction is still held.
func consumeQueueOrHeld(current cfg.StateID, queue *components.ActionQueueData, input *components.InputData) cfg.StateID {
	if action, ok := queue.Dequeue(); ok {
		if next, ok := cfg.ActionToState[action]; ok {
			return next
		}
	}
	if current == cfg.Block && input.Action(cfg.ActionBlock).Pressed {
		return cfg.Block
	}
	return heldMovementOrIdle(input)
}

// heldMovementOrIdle maps the currently held direction keys to a movement
// state. Both directions held cancel out.
func heldMovementOrIdle(input *components.InputData) cfg.StateID {
	forward := input.Action(cfg.ActionForward).Pressed
	backward := input.Action(cfg.ActionBackward).Pressed
	switch {
	case forward && !backward:
		return cfg.Forward
	case backward && !forward:
		return cfg.Backward
	default:
		return cfg.Idle
	}
}

func isOneShot(state cfg.StateID) bool {
	return state == cfg.Punch || state == cfg.Kick
}

// enterState switches the fighter into next, restarts its animation and
// raises the matching sound request.
func enterState(e *ecs.ECS, entry *donburi.Entry, state *components.StateData, anim *components.AnimationData, next cfg.StateID) {
	state.CurrentState = next
	state.StateTimer = 0
	anim.SetAnimation(next)

	var sound cfg.SoundID
	switch next {
	case cfg.Punch:
		sound = cfg.SoundPunch
	case cfg.Kick:
		sound = cfg.SoundKick
	case cfg.Block:
		sound = cfg.SoundBlock
	default:
		return
	}
	if sq, ok := components.SoundQueue.First(e.World); ok {
		components.SoundQueue.Get(sq).Push(sound)
	}
}

// applyMovement walks the fighter in the movement states, clamped against
// the stage walls.
func applyMovement(entry *donburi.Entry, state *components.StateData, input *components.InputData) {
	var dx float64
	fighter := components.Fighter.Get(entry)

	switch state.CurrentState {
	case cfg.Forward:
		dx = fighter.WalkSpeed
	case cfg.Backward:
		dx = -fighter.WalkSpeed
	default:
		return
	}

	// Both directions held: stand still.
	if input.Action(cfg.ActionForward).Pressed && input.Action(cfg.ActionBackward).Pressed {
		return
	}

	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}

	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dx = check.ContactWithObject(solids[0]).X()
		}
	}
	obj.X += dx
	obj.Update()
}

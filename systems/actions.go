package systems

import (
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/pixeldojo/shadowboxer/events"
	"github.com/pixeldojo/shadowboxer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	donburievents "github.com/yohamta/donburi/features/events"
)

// fightActions are the actions that go onto the bus. Menu and pause actions
// are consumed directly by their own systems.
var fightActions = []cfg.ActionID{
	cfg.ActionPunch,
	cfg.ActionKick,
	cfg.ActionForward,
	cfg.ActionBackward,
	cfg.ActionBlock,
}

// UpdateActions edge-detects the polled input and publishes action events.
// It is the only bridge from raw input to the bus; nothing here knows what
// an action does.
func UpdateActions(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	source := "keyboard"
	if input.LastInputMethod == components.InputGamepad {
		source = "gamepad"
	}

	for _, id := range fightActions {
		if input.Action(id).JustPressed {
			events.ActionEvent.Publish(ecs.World, events.Action{ID: id, Source: source})
		}
	}

	donburievents.ProcessAllEvents(ecs.World)
}

// SubscribeActions registers the queue-feeding subscriber. Published actions
// land on the fighter's bounded queue; a full queue drops the new action.
func SubscribeActions(w donburi.World) {
	events.ActionEvent.Subscribe(w, func(w donburi.World, a events.Action) {
		entry, ok := tags.Fighter.First(w)
		if !ok {
			return
		}
		queue := components.ActionQueue.Get(entry)
		queue.Enqueue(a.ID)
	})
}

package factory

import (
	"github.com/pixeldojo/shadowboxer/archetypes"
	"github.com/pixeldojo/shadowboxer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMessage spawns the singleton banner entity.
func CreateMessage(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Message.Spawn(ecs)
}

// CreateSoundQueue spawns the singleton sound request queue.
func CreateSoundQueue(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.SoundQueue.Spawn(ecs)
}

// CreateControls spawns the on-screen button panel entity. The UI itself is
// built lazily on the first UpdateControls tick.
func CreateControls(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Controls.Spawn(ecs)
	components.Controls.SetValue(entry, components.ControlsData{Visible: true})
	return entry
}

package archetypes

import (
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/pixeldojo/shadowboxer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Animation,
		components.State,
		components.ActionQueue,
	)
	Stage = newArchetype(
		tags.Stage,
		components.Stage,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Message = newArchetype(
		components.Message,
	)
	SoundQueue = newArchetype(
		components.SoundQueue,
	)
	Controls = newArchetype(
		components.Controls,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

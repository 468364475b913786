package factory

import (
	"github.com/pixeldojo/shadowboxer/archetypes"
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/pixeldojo/shadowboxer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns the fighter at the stage spawn point. Animation frame
// load failures are returned so the scene can surface them.
func CreateFighter(ecs *ecs.ECS) (*donburi.Entry, []error) {
	fighter := archetypes.Fighter.Spawn(ecs)

	w := float64(cfg.Fighter.CollisionWidth)
	h := float64(cfg.Fighter.CollisionHeight)
	x := cfg.Fighter.SpawnX - w/2
	y := cfg.Fighter.FloorY - h

	obj := resolv.NewObject(x, y, w, h, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Fighter.SetValue(fighter, components.FighterData{
		Direction: components.Vector{X: cfg.DirectionRight, Y: 0},
		WalkSpeed: cfg.Fighter.WalkSpeed,
	})
	components.State.SetValue(fighter, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.ActionQueue.SetValue(fighter, components.ActionQueueData{
		Cap: cfg.Fighter.QueueCap,
	})

	animData, errs := GenerateAnimations()
	components.Animation.Set(fighter, animData)

	return fighter, errs
}

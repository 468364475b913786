package systems

import (
	"testing"

	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/pixeldojo/shadowboxer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPauseDiscardsQueuedActions(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	inputEntry := e.World.Entry(e.World.Create(components.Input))
	input := components.Input.Get(inputEntry)
	input.Current[cfg.ActionPause] = true

	fighter := e.World.Entry(e.World.Create(tags.Fighter, components.ActionQueue))
	queue := components.ActionQueue.Get(fighter)
	queue.Cap = cfg.Fighter.QueueCap
	queue.Enqueue(cfg.ActionPunch)
	queue.Enqueue(cfg.ActionKick)

	UpdatePause(e)

	if !IsPaused(e) {
		t.Fatal("pause key press did not pause")
	}
	if queue.Len() != 0 {
		t.Fatalf("queue still holds %d actions after pausing", queue.Len())
	}
}

func TestPauseToggleResumes(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	inputEntry := e.World.Entry(e.World.Create(components.Input))
	input := components.Input.Get(inputEntry)
	input.Current[cfg.ActionPause] = true

	UpdatePause(e)
	if !IsPaused(e) {
		t.Fatal("first press did not pause")
	}

	// Release, then press again.
	input.Previous = input.Current
	input.Current[cfg.ActionPause] = false
	UpdatePause(e)
	input.Previous = input.Current
	input.Current[cfg.ActionPause] = true
	UpdatePause(e)

	if IsPaused(e) {
		t.Fatal("second press did not resume")
	}
}

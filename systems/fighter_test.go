package systems

import (
	"testing"

	"github.com/pixeldojo/shadowboxer/assets/animations"
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/pixeldojo/shadowboxer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func pressedInput(ids ...cfg.ActionID) *components.InputData {
	input := &components.InputData{}
	for _, id := range ids {
		input.Current[id] = true
	}
	return input
}

func queueOf(ids ...cfg.ActionID) *components.ActionQueueData {
	q := &components.ActionQueueData{Cap: cfg.Fighter.QueueCap}
	for _, id := range ids {
		q.Enqueue(id)
	}
	return q
}

// runningAnim returns animation data mid-playback for the given state.
func runningAnim(state cfg.StateID) *components.AnimationData {
	anim := animations.NewAnimation(0, 5, 1, 2, false)
	return &components.AnimationData{
		CurrentAnimation: anim,
		Animations:       map[cfg.StateID]*animations.Animation{state: anim},
		CurrentState:     state,
	}
}

// completedAnim returns animation data whose one-shot has finished.
func completedAnim(state cfg.StateID) *components.AnimationData {
	anim := animations.NewAnimation(0, 0, 1, 0, false)
	anim.Update()
	data := &components.AnimationData{
		CurrentAnimation: anim,
		Animations:       map[cfg.StateID]*animations.Animation{state: anim},
		CurrentState:     state,
	}
	return data
}

func TestNextFighterState(t *testing.T) {
	tests := []struct {
		name    string
		current cfg.StateID
		anim    *components.AnimationData
		queue   *components.ActionQueueData
		input   *components.InputData
		want    cfg.StateID
	}{
		{
			name:    "idle_consumes_queued_punch",
			current: cfg.Idle,
			anim:    runningAnim(cfg.Idle),
			queue:   queueOf(cfg.ActionPunch),
			input:   pressedInput(),
			want:    cfg.Punch,
		},
		{
			name:    "punch_in_progress_is_not_interrupted",
			current: cfg.Punch,
			anim:    runningAnim(cfg.Punch),
			queue:   queueOf(cfg.ActionKick),
			input:   pressedInput(),
			want:    cfg.Punch,
		},
		{
			name:    "completed_punch_consumes_queued_kick",
			current: cfg.Punch,
			anim:    completedAnim(cfg.Punch),
			queue:   queueOf(cfg.ActionKick),
			input:   pressedInput(),
			want:    cfg.Kick,
		},
		{
			name:    "completed_punch_returns_to_idle",
			current: cfg.Punch,
			anim:    completedAnim(cfg.Punch),
			queue:   queueOf(),
			input:   pressedInput(),
			want:    cfg.Idle,
		},
		{
			name:    "completed_punch_resumes_held_walk",
			current: cfg.Punch,
			anim:    completedAnim(cfg.Punch),
			queue:   queueOf(),
			input:   pressedInput(cfg.ActionForward),
			want:    cfg.Forward,
		},
		{
			name:    "forward_holds_while_pressed",
			current: cfg.Forward,
			anim:    runningAnim(cfg.Forward),
			queue:   queueOf(),
			input:   pressedInput(cfg.ActionForward),
			want:    cfg.Forward,
		},
		{
			name:    "forward_release_returns_to_idle",
			current: cfg.Forward,
			anim:    runningAnim(cfg.Forward),
			queue:   queueOf(),
			input:   pressedInput(),
			want:    cfg.Idle,
		},
		{
			name:    "forward_release_switches_to_held_backward",
			current: cfg.Forward,
			anim:    runningAnim(cfg.Forward),
			queue:   queueOf(),
			input:   pressedInput(cfg.ActionBackward),
			want:    cfg.Backward,
		},
		{
			name:    "block_holds_while_pressed",
			current: cfg.Block,
			anim:    completedAnim(cfg.Block),
			queue:   queueOf(),
			input:   pressedInput(cfg.ActionBlock),
			want:    cfg.Block,
		},
		{
			name:    "block_release_returns_to_idle",
			current: cfg.Block,
			anim:    completedAnim(cfg.Block),
			queue:   queueOf(),
			input:   pressedInput(),
			want:    cfg.Idle,
		},
		{
			name:    "walk_interrupted_by_queued_attack",
			current: cfg.Forward,
			anim:    runningAnim(cfg.Forward),
			queue:   queueOf(cfg.ActionKick),
			input:   pressedInput(cfg.ActionForward),
			want:    cfg.Kick,
		},
		{
			name:    "both_directions_keep_current_walk_state",
			current: cfg.Forward,
			anim:    runningAnim(cfg.Forward),
			queue:   queueOf(),
			input:   pressedInput(cfg.ActionForward, cfg.ActionBackward),
			want:    cfg.Forward,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextFighterState(tt.current, tt.anim, tt.queue, tt.input)
			if got != tt.want {
				t.Errorf("nextFighterState(%v) = %v, want %v", tt.current, got, tt.want)
			}
		})
	}
}

func TestHeldMovementOrIdle(t *testing.T) {
	tests := []struct {
		name  string
		input *components.InputData
		want  cfg.StateID
	}{
		{"nothing_held", pressedInput(), cfg.Idle},
		{"forward_held", pressedInput(cfg.ActionForward), cfg.Forward},
		{"backward_held", pressedInput(cfg.ActionBackward), cfg.Backward},
		{"both_held_cancel", pressedInput(cfg.ActionForward, cfg.ActionBackward), cfg.Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := heldMovementOrIdle(tt.input); got != tt.want {
				t.Errorf("heldMovementOrIdle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConsumeQueueDrainsInOrder(t *testing.T) {
	queue := queueOf(cfg.ActionPunch, cfg.ActionKick)
	input := pressedInput()

	got := consumeQueueOrHeld(cfg.Idle, queue, input)
	if got != cfg.Punch {
		t.Fatalf("first consume = %v, want %v", got, cfg.Punch)
	}
	got = consumeQueueOrHeld(cfg.Punch, queue, input)
	if got != cfg.Kick {
		t.Fatalf("second consume = %v, want %v", got, cfg.Kick)
	}
	if queue.Len() != 0 {
		t.Fatalf("queue should be empty, has %d", queue.Len())
	}
}

// walledFighter builds a fighter object standing between the stage walls,
// mirroring the factory spawn layout.
func walledFighter(x float64) *donburi.Entry {
	world := donburi.NewWorld()

	w := float64(cfg.Fighter.CollisionWidth)
	h := float64(cfg.Fighter.CollisionHeight)

	space := resolv.NewSpace(cfg.C.Width, cfg.C.Height, cfg.Stage.TileSize, cfg.Stage.TileSize)
	space.Add(
		resolv.NewObject(cfg.Stage.LeftWall-32, 0, 32, float64(cfg.C.Height), tags.ResolvSolid),
		resolv.NewObject(cfg.Stage.RightWall, 0, 32, float64(cfg.C.Height), tags.ResolvSolid),
	)

	obj := resolv.NewObject(x, cfg.Fighter.FloorY-h, w, h, tags.ResolvFighter)
	space.Add(obj)

	entry := world.Entry(world.Create(components.Fighter, components.Object))
	components.Fighter.SetValue(entry, components.FighterData{WalkSpeed: cfg.Fighter.WalkSpeed})
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return entry
}

func TestApplyMovementStaysInsideWalls(t *testing.T) {
	w := float64(cfg.Fighter.CollisionWidth)

	t.Run("forward_stops_at_right_wall", func(t *testing.T) {
		start := cfg.Stage.RightWall - w - 1
		entry := walledFighter(start)
		state := &components.StateData{CurrentState: cfg.Forward}
		input := pressedInput(cfg.ActionForward)

		for i := 0; i < 10; i++ {
			applyMovement(entry, state, input)
		}

		obj := components.Object.Get(entry)
		if obj.X <= start {
			t.Fatalf("fighter did not move from %0.1f", start)
		}
		if obj.X+w > cfg.Stage.RightWall {
			t.Fatalf("fighter right edge %0.1f past wall at %0.1f", obj.X+w, cfg.Stage.RightWall)
		}
	})

	t.Run("backward_stops_at_left_wall", func(t *testing.T) {
		start := cfg.Stage.LeftWall + 1
		entry := walledFighter(start)
		state := &components.StateData{CurrentState: cfg.Backward}
		input := pressedInput(cfg.ActionBackward)

		for i := 0; i < 10; i++ {
			applyMovement(entry, state, input)
		}

		obj := components.Object.Get(entry)
		if obj.X >= start {
			t.Fatalf("fighter did not move from %0.1f", start)
		}
		if obj.X < cfg.Stage.LeftWall {
			t.Fatalf("fighter left edge %0.1f past wall at %0.1f", obj.X, cfg.Stage.LeftWall)
		}
	})

	t.Run("both_directions_stand_still", func(t *testing.T) {
		start := cfg.Fighter.SpawnX - w/2
		entry := walledFighter(start)
		state := &components.StateData{CurrentState: cfg.Forward}
		input := pressedInput(cfg.ActionForward, cfg.ActionBackward)

		applyMovement(entry, state, input)

		if obj := components.Object.Get(entry); obj.X != start {
			t.Fatalf("x = %0.1f, want %0.1f", obj.X, start)
		}
	})
}

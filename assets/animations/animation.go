package animations

// Animation steps through a frame sequence at a fixed tick rate. It holds no
// image data; frame indices are resolved against the cached frame images by
// the render system.
type Animation struct {
	First        int
	Last         int
	Step         int     // how many indices we move per frame
	SpeedInTps   float32 // how many ticks before the next frame
	Loop         bool
	frameCounter float32
	frame        int
	completed    bool
}

// NewAnimation creates an animation over [first, last] advancing by step.
func NewAnimation(first, last, step int, speed float32, loop bool) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		Loop:         loop,
		frameCounter: speed,
		frame:        first,
	}
}

// Update advances the animation by one tick. Call once per game update.
func (a *Animation) Update() {
	if a.completed && !a.Loop {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.completed = true
		if a.Loop {
			a.frame = a.First
		} else {
			// Stay on the last frame
			a.frame = a.Last
		}
	}
}

// Frame returns the current frame index.
func (a *Animation) Frame() int {
	return a.frame
}

// Completed reports whether the sequence has run past its last frame at
// least once. Looping animations keep playing but still report completion.
func (a *Animation) Completed() bool {
	return a.completed
}

// Restart rewinds to the first frame.
func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.completed = false
}

// FrameCount returns the number of frames the sequence visits.
func (a *Animation) FrameCount() int {
	step := a.Step
	if step <= 0 {
		step = 1
	}
	if a.Last < a.First {
		return 0
	}
	return (a.Last-a.First)/step + 1
}

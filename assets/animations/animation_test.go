package animations

import "testing"

func TestAnimationAdvance(t *testing.T) {
	cases := []struct {
		name      string
		first     int
		last      int
		step      int
		speed     float32
		loop      bool
		ticks     int
		wantFrame int
		wantDone  bool
	}{
		{"holds_first_frame", 0, 5, 1, 4, true, 4, 0, false},
		{"advances_after_speed_ticks", 0, 5, 1, 4, true, 5, 1, false},
		{"loops_back_to_first", 0, 2, 1, 0, true, 3, 0, true},
		{"freezes_on_last", 0, 2, 1, 0, false, 10, 2, true},
		{"step_two_skips_frames", 0, 4, 2, 0, false, 1, 2, false},
		{"single_frame_completes", 0, 0, 1, 0, false, 1, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAnimation(c.first, c.last, c.step, c.speed, c.loop)
			for i := 0; i < c.ticks; i++ {
				a.Update()
			}
			if a.Frame() != c.wantFrame {
				t.Fatalf("after %d ticks: frame = %d, want %d", c.ticks, a.Frame(), c.wantFrame)
			}
			if a.Completed() != c.wantDone {
				t.Fatalf("after %d ticks: completed = %v, want %v", c.ticks, a.Completed(), c.wantDone)
			}
		})
	}
}

func TestAnimationDeterministicFrameHold(t *testing.T) {
	// A sequence with SpeedInTps = s shows each frame for exactly s+1 ticks.
	const speed = 3
	a := NewAnimation(0, 3, 1, speed, false)

	held := 0
	prev := a.Frame()
	for i := 0; i < speed+1; i++ {
		if a.Frame() != prev {
			break
		}
		held++
		a.Update()
	}
	if held != speed+1 {
		t.Fatalf("frame 0 held for %d ticks, want %d", held, speed+1)
	}
	if a.Frame() != 1 {
		t.Fatalf("frame after hold = %d, want 1", a.Frame())
	}
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(2, 6, 2, 0, false)
	for i := 0; i < 4; i++ {
		a.Update()
	}
	if !a.Completed() {
		t.Fatal("expected completion before restart")
	}
	a.Restart()
	if a.Frame() != 2 || a.Completed() {
		t.Fatalf("restart: frame = %d completed = %v, want frame 2 and not completed", a.Frame(), a.Completed())
	}
}

func TestAnimationFrameCount(t *testing.T) {
	cases := []struct {
		name  string
		anim  *Animation
		count int
	}{
		{"six_frames", NewAnimation(0, 5, 1, 4, true), 6},
		{"stepped", NewAnimation(0, 4, 2, 0, false), 3},
		{"single", NewAnimation(3, 3, 1, 0, false), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.anim.FrameCount(); got != c.count {
				t.Fatalf("FrameCount() = %d, want %d", got, c.count)
			}
		})
	}
}

package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixeldojo/shadowboxer/assets/animations"
	"github.com/pixeldojo/shadowboxer/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	// Frames holds each state's decoded PNG sequence in playback order.
	Frames       map[config.StateID][]*ebiten.Image
	Animations   map[config.StateID]*animations.Animation
	CurrentState config.StateID
	FrameWidth   int
	FrameHeight  int
	// Placeholder is set when a sequence failed to load and flat-color
	// stand-in frames are shown instead.
	Placeholder bool
}

// SetAnimation switches playback to the given state's sequence and restarts
// it. Switching to the already-active state is a no-op.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentState == state && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[state]
	if ok {
		a.CurrentAnimation = anim
		a.CurrentState = state
		a.CurrentAnimation.Restart()
	} else {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentState = state
	}
}

// CurrentFrame returns the image for the active animation frame, or nil.
func (a *AnimationData) CurrentFrame() *ebiten.Image {
	if a.CurrentAnimation == nil {
		return nil
	}
	frames := a.Frames[a.CurrentState]
	idx := a.CurrentAnimation.Frame()
	if idx < 0 || idx >= len(frames) {
		return nil
	}
	return frames[idx]
}

var Animation = donburi.NewComponentType[AnimationData]()

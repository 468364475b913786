package factory

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixeldojo/shadowboxer/assets"
	"github.com/pixeldojo/shadowboxer/assets/animations"
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
)

// GenerateAnimations builds the fighter's AnimationData from the animation
// definition table. States whose frames fail to load get flat placeholder
// frames instead so the demo stays playable; the returned errors feed the
// on-screen banner.
func GenerateAnimations() (*components.AnimationData, []error) {
	animData := &components.AnimationData{
		Frames:       make(map[cfg.StateID][]*ebiten.Image),
		Animations:   make(map[cfg.StateID]*animations.Animation),
		CurrentState: cfg.Idle,
		FrameWidth:   cfg.Fighter.FrameWidth,
		FrameHeight:  cfg.Fighter.FrameHeight,
	}

	var errs []error
	for _, state := range cfg.AllStates {
		def, ok := cfg.FighterAnimations[state]
		if !ok {
			continue
		}

		frames, err := assets.FighterFrames(state)
		if err != nil || len(frames) == 0 {
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", state, err))
			} else {
				errs = append(errs, fmt.Errorf("%s: no frames", state))
			}
			frames = assets.PlaceholderFrames(state, def.Last-def.First+1)
			animData.Placeholder = true
		}

		last := def.Last
		if last > len(frames)-1 {
			last = len(frames) - 1
		}

		animData.Frames[state] = frames
		animData.Animations[state] = animations.NewAnimation(def.First, last, def.Step, def.Speed, def.Loop)
	}

	animData.CurrentAnimation = animData.Animations[cfg.Idle]
	return animData, errs
}

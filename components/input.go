package components

import (
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are computed on demand by comparing
// frames. Keyboard and gamepad inputs are merged.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

// Action computes the temporal state for one action.
func (i *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      i.Current[id],
		JustPressed:  i.Current[id] && !i.Previous[id],
		JustReleased: !i.Current[id] && i.Previous[id],
	}
}

var Input = donburi.NewComponentType[InputData]()

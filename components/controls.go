package components

import (
	"github.com/ebitenui/ebitenui"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/yohamta/donburi"
)

// ControlsData owns the on-screen button panel. Button click handlers append
// to Clicked; the input system folds those into the frame's action state so
// pointer input goes through the same path as keyboard and gamepad.
type ControlsData struct {
	UI      *ebitenui.UI
	Visible bool
	Clicked []cfg.ActionID
}

// TakeClicked returns the clicks collected since the last tick and clears
// the buffer.
func (c *ControlsData) TakeClicked() []cfg.ActionID {
	out := c.Clicked
	c.Clicked = nil
	return out
}

var Controls = donburi.NewComponentType[ControlsData]()

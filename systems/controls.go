package systems

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

// buttonActions is the on-screen panel, in display order.
var buttonActions = []cfg.ActionID{
	cfg.ActionBackward,
	cfg.ActionForward,
	cfg.ActionPunch,
	cfg.ActionKick,
	cfg.ActionBlock,
}

// NewControlsUI builds the bottom-right button strip. Clicks are buffered on
// the Controls component and folded into the next input poll.
func NewControlsUI(controls *components.ControlsData) *ebitenui.UI {
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xdd})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xdd})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	strip := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 6, Right: 6}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	for _, id := range buttonActions {
		action := id
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Pressed: btnPressed}),
			widget.ButtonOpts.Text(cfg.ActionNames[action], &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				controls.Clicked = append(controls.Clicked, action)
			}),
		)
		strip.AddChild(btn)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(strip)

	return &ebitenui.UI{Container: root}
}

// UpdateControls pumps the button UI. Runs before UpdateInput so clicks from
// this tick are visible to the same tick's poll.
func UpdateControls(e *ecs.ECS) {
	entry, ok := components.Controls.First(e.World)
	if !ok {
		return
	}
	controls := components.Controls.Get(entry)
	if controls.UI == nil {
		controls.UI = NewControlsUI(controls)
		controls.Visible = true
	}
	controls.UI.Update()
}

// DrawControls renders the button strip on top of the scene.
func DrawControls(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Controls.First(e.World)
	if !ok {
		return
	}
	controls := components.Controls.Get(entry)
	if controls.UI == nil || !controls.Visible {
		return
	}
	controls.UI.Draw(screen)
}

package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShowMessage puts a banner on screen, replacing any current one.
func ShowMessage(w donburi.World, text string, isError bool) {
	entry, ok := components.Message.First(w)
	if !ok {
		return
	}
	components.Message.Get(entry).Show(text, isError, cfg.Message.DisplayTicks)
}

// UpdateMessage counts the banner down and fades it out with a tween once
// the display time is up.
func UpdateMessage(ecs *ecs.ECS) {
	entry, ok := components.Message.First(ecs.World)
	if !ok {
		return
	}
	msg := components.Message.Get(entry)
	if !msg.Active() {
		return
	}

	if msg.DisplayTimer > 0 {
		msg.DisplayTimer--
		return
	}

	if msg.FadeTween == nil {
		msg.FadeTween = gween.New(1, 0, cfg.Message.FadeSeconds, ease.OutQuad)
	}

	alpha, finished := msg.FadeTween.Update(1.0 / float32(cfg.C.TPS))
	msg.Alpha = float64(alpha)
	if finished {
		msg.Text = ""
		msg.Alpha = 0
		msg.FadeTween = nil
	}
}

// DrawMessage renders the banner box at the top center of the screen.
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Message.First(ecs.World)
	if !ok {
		return
	}
	msg := components.Message.Get(entry)
	if !msg.Active() {
		return
	}

	textColor := cfg.Message.TextColor
	if msg.IsError {
		textColor = cfg.Message.ErrorColor
	}

	w, h := ebtext.Measure(msg.Text, hudFace, 0)
	pad := cfg.Message.BoxPadding
	boxW := w + pad*2
	boxH := h + pad*2
	boxX := (float64(cfg.C.Width) - boxW) / 2
	boxY := cfg.Message.TopMargin

	alpha := float32(msg.Alpha)

	box := cfg.Message.BoxColor
	vector.DrawFilledRect(screen,
		float32(boxX), float32(boxY), float32(boxW), float32(boxH),
		scaleAlpha(box.R, box.G, box.B, box.A, alpha), false)

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(boxX+pad, boxY+pad)
	op.ColorScale.ScaleWithColor(textColor)
	op.ColorScale.ScaleAlpha(alpha)
	ebtext.Draw(screen, msg.Text, hudFace, op)
}

// scaleAlpha premultiplies the banner color by the current fade alpha.
func scaleAlpha(r, g, b, a uint8, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(r) * alpha),
		G: uint8(float32(g) * alpha),
		B: uint8(float32(b) * alpha),
		A: uint8(float32(a) * alpha),
	}
}

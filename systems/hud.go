package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pixeldojo/shadowboxer/assets"
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/pixeldojo/shadowboxer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

var hudFace = ebtext.NewGoXFace(basicfont.Face7x13)

// DrawHUD renders the fighter's current state, the pending action queue and
// the frame counters in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Fighter.First(ecs.World)
	if !ok {
		return
	}
	state := components.State.Get(entry)
	queue := components.ActionQueue.Get(entry)

	margin := float64(cfg.HUD.Margin)
	line := float64(cfg.HUD.LineHeight)
	y := margin

	drawText(screen, fmt.Sprintf("state: %s", state.CurrentState), margin, y, cfg.HUD.TextColor)
	y += line

	drawText(screen, "queue: "+formatQueue(queue), margin, y, cfg.HUD.QueueColor)
	y += line

	if queue.Dropped > 0 {
		drawText(screen, fmt.Sprintf("dropped: %d", queue.Dropped), margin, y, cfg.HUD.DimColor)
		y += line
	}

	drawText(screen, fmt.Sprintf("tps: %.0f  fps: %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), margin, y, cfg.HUD.DimColor)
	y += line

	if cfg.Debug.Overlay {
		drawDebugOverlay(screen, entry, margin, y)
	}

	drawControlsHelp(screen)
}

func formatQueue(queue *components.ActionQueueData) string {
	if queue.Len() == 0 {
		return "-"
	}
	names := make([]string, 0, queue.Len())
	for _, id := range queue.Pending {
		names = append(names, cfg.ActionNames[id])
	}
	return strings.Join(names, ", ")
}

func drawDebugOverlay(screen *ebiten.Image, entry *donburi.Entry, margin, y float64) {
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)
	queue := components.ActionQueue.Get(entry)

	drawText(screen, fmt.Sprintf("timer: %d", state.StateTimer), margin, y, cfg.HUD.DimColor)
	y += float64(cfg.HUD.LineHeight)

	if anim.CurrentAnimation != nil {
		drawText(screen, fmt.Sprintf("frame: %d", anim.CurrentAnimation.Frame()), margin, y, cfg.HUD.DimColor)
		y += float64(cfg.HUD.LineHeight)
	}

	if next, ok := queue.Peek(); ok {
		drawText(screen, fmt.Sprintf("next: %s", cfg.ActionNames[next]), margin, y, cfg.HUD.DimColor)
		y += float64(cfg.HUD.LineHeight)
	}

	if anim.Placeholder {
		drawText(screen, "placeholder frames", margin, y, cfg.HUD.DimColor)
		y += float64(cfg.HUD.LineHeight)
	}

	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil {
			drawText(screen, fmt.Sprintf("x: %0.1f", obj.X), margin, y, cfg.HUD.DimColor)
			y += float64(cfg.HUD.LineHeight)
		}
	}

	drawText(screen, fmt.Sprintf("cached frames: %d", assets.FrameCacheSize()), margin, y, cfg.HUD.DimColor)
}

func drawControlsHelp(screen *ebiten.Image) {
	help := "z punch  x kick  arrows walk  c block  esc pause"
	y := float64(cfg.C.Height) - float64(cfg.HUD.LineHeight) - float64(cfg.HUD.Margin)
	drawText(screen, help, float64(cfg.HUD.Margin), y, cfg.HUD.DimColor)
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, hudFace, op)
}

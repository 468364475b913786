package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawStage draws the pre-rendered tile map background. No camera: the whole
// stage fits the logical screen.
func DrawStage(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(entry)
	if stage.Background == nil {
		return
	}
	screen.DrawImage(stage.Background, drawOp)
	drawOp.GeoM.Reset()
}

// DrawFighter renders the fighter's current animation frame, anchored at
// bottom-center so the feet line up with the collision box.
func DrawFighter(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		animData := components.Animation.Get(e)
		img := animData.CurrentFrame()
		if img == nil {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight))
		drawOp.GeoM.Scale(cfg.Fighter.ScaleX, cfg.Fighter.ScaleY)

		// Flip the sprite if facing left.
		if e.HasComponent(components.Fighter) {
			fighter := components.Fighter.Get(e)
			if fighter.Direction.X < 0 {
				drawOp.GeoM.Scale(-1, 1)
			}
		}

		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Object != nil {
				// Anchor at the bottom-center of the collision box.
				drawOp.GeoM.Translate(obj.X+obj.W/2, obj.Y+obj.H)
			}
		}

		screen.DrawImage(img, drawOp)
		drawOp.GeoM.Reset()
	})
}

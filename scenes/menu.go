package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixeldojo/shadowboxer/assets"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/pixeldojo/shadowboxer/systems"
	"github.com/pixeldojo/shadowboxer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new title menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	assets.PreloadAllSFX()

	ms.ecs = ecs.NewECS(donburi.NewWorld())
	factory.CreateSoundQueue(ms.ecs)

	createDojoScene := func() interface{} {
		return NewDojoScene(ms.sceneChanger)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createDojoScene))
	ms.ecs.AddSystem(systems.UpdateSettingsMenu)
	ms.ecs.AddSystem(systems.UpdateAudio)

	// Settings draws on top of the menu
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawSettingsMenu)
}

package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixeldojo/shadowboxer/assets"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/pixeldojo/shadowboxer/systems"
	"github.com/pixeldojo/shadowboxer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DojoScene is the training demo: one fighter, one stage, the action queue.
type DojoScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewDojoScene creates the demo scene
func NewDojoScene(sc SceneChanger) *DojoScene {
	return &DojoScene{sceneChanger: sc}
}

func (ds *DojoScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
}

func (ds *DojoScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DojoScene) configure() {
	assets.PreloadAllSFX()

	// The manifest overrides the built-in animation table before any frames
	// are wired up.
	if m, err := assets.LoadManifest(); err == nil {
		m.Apply(cfg.FighterAnimations)
	} else {
		log.Printf("manifest: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Input runs first so the whole tick sees one consistent snapshot.
	e.AddSystem(systems.UpdateControls)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Gameplay systems skip while paused
	e.AddSystem(systems.WithPauseCheck(systems.UpdateActions))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateFighter))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateStates))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMessage))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateManifest))

	// These run even when paused
	e.AddSystem(systems.UpdateSettingsMenu)
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawStage)
	e.AddRenderer(cfg.Default, systems.DrawFighter)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawControls)
	e.AddRenderer(cfg.Default, systems.DrawMessage)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	ds.ecs = e

	systems.SubscribeActions(e.World)
	systems.SubscribeManifest(e.World)

	factory.CreateSpace(ds.ecs, cfg.C.Width, cfg.C.Height, cfg.Stage.TileSize, cfg.Stage.TileSize)
	factory.CreateMessage(ds.ecs)
	factory.CreateSoundQueue(ds.ecs)
	factory.CreateControls(ds.ecs)

	if _, err := factory.CreateStage(ds.ecs); err != nil {
		log.Printf("stage: %v", err)
		systems.ShowMessage(e.World, "failed to load stage map", true)
	}

	_, errs := factory.CreateFighter(ds.ecs)
	if len(errs) > 0 {
		for _, err := range errs {
			log.Printf("fighter frames: %v", err)
		}
		systems.ShowMessage(e.World, "some animation frames failed to load", true)
	}

	if cfg.Debug.WatchManifest {
		systems.StartManifestWatch()
	}
}

package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixeldojo/shadowboxer/config"
	"github.com/pixeldojo/shadowboxer/scenes"
	"github.com/pixeldojo/shadowboxer/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewDojoScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "jump straight into the demo scene")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "show the debug overlay")
	flag.BoolVar(&config.Debug.WatchManifest, "watch", false, "hot-reload assets/fighter.yaml on change")
	flag.Parse()

	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowTitle(config.C.Title)
	// Open at the same scale the settings menu reports as current.
	defaultScale := config.SettingsMenu.WindowScales[config.SettingsMenu.DefaultScaleIndex]
	ebiten.SetWindowSize(config.C.Width*defaultScale.Factor, config.C.Height*defaultScale.Factor)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Persistence is best-effort: a sandboxed or read-only environment just
	// runs with defaults.
	if err := systems.InitPersistence(); err == nil {
		if saved := systems.LoadSettings(); saved != nil {
			applyAtStartup(saved)
		}
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

// applyAtStartup applies what can be applied before any scene exists.
func applyAtStartup(saved *systems.SavedSettings) {
	if saved.ScaleIndex >= 0 && saved.ScaleIndex < len(config.SettingsMenu.WindowScales) {
		scale := config.SettingsMenu.WindowScales[saved.ScaleIndex]
		ebiten.SetWindowSize(config.C.Width*scale.Factor, config.C.Height*scale.Factor)
	}
	if saved.Muted {
		systems.SetSFXVolume(0)
	} else {
		systems.SetSFXVolume(saved.SFXVolume)
	}
}

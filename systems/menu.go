package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/yohamta/donburi/ecs"
)

var menuOptions = []struct {
	option components.MainMenuOption
	label  string
}{
	{components.MainMenuStart, "Start"},
	{components.MainMenuSettings, "Settings"},
	{components.MainMenuExit, "Exit"},
}

// NewUpdateMenu creates the title menu system. startScene is called when the
// player picks Start.
func NewUpdateMenu(sceneChanger SceneChanger, startScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		// Settings overlay gets the input while open
		if IsSettingsOpen(e) {
			return
		}

		menu := getOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menuOptions)
		if input.Action(cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if input.Action(cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if input.Action(cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch menuOptions[menu.SelectedIndex].option {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(startScene())
			case components.MainMenuSettings:
				OpenSettings(e, false)
			case components.MainMenuExit:
				StopManifestWatch()
				os.Exit(0)
			}
		}

		if input.Action(cfg.ActionMenuBack).JustPressed {
			StopManifestWatch()
			os.Exit(0)
		}
	}
}

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// DrawMenu renders the title menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := getOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	title := cfg.Menu.Title
	w, _ := ebtext.Measure(title, hudFace, 0)
	drawText(screen, title, (width-w)/2, cfg.Menu.TitleY, cfg.Menu.TitleColor)

	for i, entry := range menuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		w, _ := ebtext.Measure(entry.label, hudFace, 0)
		drawText(screen, entry.label, (width-w)/2, y, textColor)
	}

	hint := "up/down: navigate   enter: select"
	w, _ = ebtext.Measure(hint, hudFace, 0)
	drawText(screen, hint, (width-w)/2, height-24, cfg.Menu.TextColorNormal)
}

func getOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}

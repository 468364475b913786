package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/pixeldojo/shadowboxer/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle and menu navigation.
// Runs AFTER UpdateInput but BEFORE the gameplay systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	// Settings menu gets the input while open; escape there means "back",
	// not "unpause".
	if IsSettingsOpen(ecs) {
		return
	}

	if input.Action(cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.SelectedOption = components.MenuResume
			clearPendingActions(ecs)
		}
	}

	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around
	numOptions := int(components.MenuExit) + 1
	if input.Action(cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}
	if input.Action(cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}

	if input.Action(cfg.ActionMenuSelect).JustPressed {
		PlaySFX(ecs, cfg.SoundMenuSelect)
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuSettings:
			OpenSettings(ecs, true)
		case components.MenuExit:
			StopManifestWatch()
			os.Exit(0)
		}
	}
}

// clearPendingActions discards queued actions so inputs buffered just before
// the pause don't fire on resume.
func clearPendingActions(ecs *ecs.ECS) {
	entry, ok := tags.Fighter.First(ecs.World)
	if !ok {
		return
	}
	components.ActionQueue.Get(entry).Clear()
}

// IsPaused reports whether the pause overlay is up.
func IsPaused(ecs *ecs.ECS) bool {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).IsPaused
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}
	if IsSettingsOpen(ecs) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		w, _ := ebtext.Measure(option, hudFace, 0)
		drawText(screen, option, (width-w)/2, y, textColor)
	}

	hint := "up/down: navigate   enter: select   esc: resume"
	w, _ := ebtext.Measure(hint, hudFace, 0)
	drawText(screen, hint, (width-w)/2, height-24, cfg.Pause.TextColorNormal)
}

// PlaySFX queues a sound from anywhere a system has the ECS in hand.
func PlaySFX(ecs *ecs.ECS, id cfg.SoundID) {
	entry, ok := components.SoundQueue.First(ecs.World)
	if !ok {
		return
	}
	components.SoundQueue.Get(entry).Push(id)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

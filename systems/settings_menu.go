package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}

	input := getOrCreateInput(e)

	if input.Action(cfg.ActionMenuUp).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if input.Action(cfg.ActionMenuDown).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) + 1) % numSettingsOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	// The walk keys double as left/right while a menu is up.
	if input.Action(cfg.ActionBackward).JustPressed {
		adjustValue(e, settings, -1)
	}
	if input.Action(cfg.ActionForward).JustPressed {
		adjustValue(e, settings, +1)
	}

	if input.Action(cfg.ActionMenuSelect).JustPressed {
		handleSelect(e, settings)
	}

	if input.Action(cfg.ActionMenuBack).JustPressed || input.Action(cfg.ActionPause).JustPressed {
		closeSettings(e, settings)
	}
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptSFXVolume:
		s.SFXVolume = adjustVolumeStep(s.SFXVolume, direction)
		if !s.Muted {
			SetSFXVolume(s.SFXVolume)
		}
		PlaySFX(e, cfg.SoundMenuNavigate)

	case components.SettingsOptWindowScale:
		n := len(cfg.SettingsMenu.WindowScales)
		s.ScaleIndex = (s.ScaleIndex + direction + n) % n
		applyWindowScale(s.ScaleIndex)
		PlaySFX(e, cfg.SoundMenuNavigate)

	case components.SettingsOptMute:
		toggleMute(s)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
}

// handleSelect activates the selected option
func handleSelect(e *ecs.ECS, s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptMute:
		toggleMute(s)
		PlaySFX(e, cfg.SoundMenuSelect)
	case components.SettingsOptBack:
		closeSettings(e, s)
	}
}

func toggleMute(s *components.SettingsMenuData) {
	s.Muted = !s.Muted
	if s.Muted {
		s.PreMuteSFXVol = s.SFXVolume
		SetSFXVolume(0)
	} else {
		SetSFXVolume(s.PreMuteSFXVol)
	}
}

// adjustVolumeStep snaps the volume to the nearest configured step and moves
// one step in the given direction.
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	idx := 0
	for i, v := range steps {
		if current >= v {
			idx = i
		}
	}
	idx += direction
	if idx < 0 {
		idx = 0
	}
	if idx >= len(steps) {
		idx = len(steps) - 1
	}
	return steps[idx]
}

func applyWindowScale(index int) {
	scale := cfg.SettingsMenu.WindowScales[index]
	ebiten.SetWindowSize(cfg.C.Width*scale.Factor, cfg.C.Height*scale.Factor)
}

// OpenSettings opens the settings overlay, remembering where it was opened
// from for Back navigation.
func OpenSettings(e *ecs.ECS, fromPause bool) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.OpenedFromPause = fromPause
	settings.SelectedOption = components.SettingsOptSFXVolume
}

// IsSettingsOpen reports whether the settings overlay is up.
func IsSettingsOpen(e *ecs.ECS) bool {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		return false
	}
	return components.SettingsMenu.Get(entry).IsOpen
}

func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveSettings(e)
}

// GetOrCreateSettingsMenu returns the singleton settings menu component,
// initialized from the defaults on first use.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SettingsMenu))
		settings := components.SettingsMenu.Get(entry)
		settings.SFXVolume = cfg.Audio.DefaultSFXVol
		settings.ScaleIndex = cfg.SettingsMenu.DefaultScaleIndex
		if saved := loadedSettings; saved != nil {
			settings.SFXVolume = saved.SFXVolume
			settings.Muted = saved.Muted
			settings.PreMuteSFXVol = saved.SFXVolume
			if saved.ScaleIndex >= 0 && saved.ScaleIndex < len(cfg.SettingsMenu.WindowScales) {
				settings.ScaleIndex = saved.ScaleIndex
			}
		}
		return settings
	}
	return components.SettingsMenu.Get(entry)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	rows := settingsRows(settings)
	totalHeight := float64(len(rows)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalHeight) / 2

	for i, row := range rows {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.SettingsMenuOption(i) == settings.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		w, _ := ebtext.Measure(row, hudFace, 0)
		drawText(screen, row, (width-w)/2, y, textColor)
	}
}

func settingsRows(s *components.SettingsMenuData) []string {
	mute := "off"
	if s.Muted {
		mute = "on"
	}
	return []string{
		fmt.Sprintf("SFX Volume  < %d%% >", int(s.SFXVolume*100)),
		"Mute  " + mute,
		fmt.Sprintf("Window Size  < %s >", cfg.SettingsMenu.WindowScales[s.ScaleIndex].Label),
		"Back",
	}
}

package config

import "image/color"

// PauseConfig contains pause menu layout and colors
type PauseConfig struct {
	MenuOptions       []string
	MenuItemHeight    float64
	MenuItemGap       float64
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
}

var Pause PauseConfig

func init() {
	Pause = PauseConfig{
		MenuOptions:       []string{"Resume", "Settings", "Exit"},
		MenuItemHeight:    20,
		MenuItemGap:       8,
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
	}
}

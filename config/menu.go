package config

import "image/color"

// MenuConfig contains title menu layout and colors
type MenuConfig struct {
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
}

var Menu MenuConfig

func init() {
	Menu = MenuConfig{
		Title:             "SHADOWBOXER",
		TitleY:            100,
		MenuStartY:        170,
		MenuItemHeight:    20,
		MenuItemGap:       8,
		BackgroundColor:   color.RGBA{R: 16, G: 16, B: 24, A: 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
	}
}
